package console

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"bookwarehouse/internal/inventory"
)

type style string

const (
	styleTitle   style = "\033[1;4;32m"
	styleHeader  style = "\033[1;36m"
	styleOK      style = "\033[1;32m"
	styleError   style = "\033[1;31m"
	styleDefault style = "\033[90m"
	styleReset         = "\033[0m"
)

func (s *Session) paint(st style, text string) string {
	if !s.opts.Color {
		return text
	}
	return string(st) + text + styleReset
}

func (s *Session) clearScreen() {
	if s.opts.Clear && s.tty {
		s.printf("\033[H\033[2J")
	}
}

// table aligns rows with tabwriter first and colors afterwards, so escape
// codes never count towards column widths.
func (s *Session) table(title string, header []string, rows [][]string) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	if title != "" {
		s.printf("%s\n", s.paint(styleTitle, title))
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		if i == 0 {
			line = s.paint(styleHeader, line)
		}
		s.printf("%s\n", line)
	}
}

func (s *Session) renderMenu() {
	s.printf("%s\n\n", s.paint(styleTitle, "Book Warehouse"))
	rows := make([][]string, 0, len(menu))
	for _, item := range menu {
		rows = append(rows, []string{item.key, item.label})
	}
	s.table("Menu", []string{"Option", "Description"}, rows)
	s.printf("\n")
}

func (s *Session) renderBooks(title string, books []inventory.Book) {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			b.ISBN,
			b.Title,
			b.Author,
			strconv.FormatFloat(b.Price, 'f', 2, 64),
			strconv.Itoa(b.Quantity),
		})
	}
	s.table(title, []string{"ISBN", "Title", "Author", "Price", "Quantity"}, rows)
}
