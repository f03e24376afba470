// Package console is the interactive front end of the warehouse. A Session
// owns the operator's input and output and drives an inventory.Store; the
// store never sees unvalidated input.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"bookwarehouse/internal/inventory"

	"golang.org/x/term"
)

// Options controls presentation only.
type Options struct {
	Color bool
	Clear bool
}

// Session is the explicit console context: one per process, built in main.
type Session struct {
	store  *inventory.Store
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
	opts   Options
	tty    bool
}

func NewSession(store *inventory.Store, in io.Reader, out io.Writer, logger *slog.Logger, opts Options) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
		opts:   opts,
		tty:    isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type menuItem struct {
	key    string
	label  string
	action func(*Session) error
}

var menu = []menuItem{
	{"1", "Add book", (*Session).addBook},
	{"2", "Remove book", (*Session).removeBook},
	{"3", "Search book by ISBN", (*Session).searchByISBN},
	{"4", "Search books by title and/or author", (*Session).searchBooks},
	{"5", "Print inventory", (*Session).printInventory},
	{"6", "Exit", nil},
}

// Run shows the menu until the operator exits or input ends, then asks
// whether to save. It returns an error only when a confirmed save fails.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started", "books", s.store.Len())

	for {
		s.clearScreen()
		s.renderMenu()

		choice, err := s.readLine("Enter your choice: ")
		if err != nil {
			break
		}
		choice = strings.TrimSpace(choice)

		item, ok := lookup(choice)
		if ok && item.action == nil {
			break
		}
		if !ok {
			s.printf("%s\n", s.paint(styleError, fmt.Sprintf("Unknown option %q", choice)))
		} else {
			s.logger.Debug("menu action", "choice", choice, "action", item.label)
			if err := item.action(s); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return err
			}
		}

		if _, err := s.readLine("Press Enter to continue..."); err != nil {
			break
		}
	}

	return s.finish(ctx)
}

func lookup(choice string) (menuItem, bool) {
	for _, item := range menu {
		if item.key == choice {
			return item, true
		}
	}
	return menuItem{}, false
}

// finish asks for save confirmation. Declining, or closing the input,
// discards the session's changes.
func (s *Session) finish(ctx context.Context) error {
	save, err := s.confirm("Do you want to save the inventory?")
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if !save {
		s.printf("%s\n", s.paint(styleError, "Inventory not saved!"))
		s.logger.Info("session ended without saving")
		return nil
	}

	if err := s.store.Save(ctx); err != nil {
		s.printf("%s\n", s.paint(styleError, "Inventory could not be saved; the previous file was kept."))
		s.logger.Error("save failed", "error", err)
		return err
	}
	s.printf("%s\n", s.paint(styleOK, "Inventory saved!"))
	return nil
}
