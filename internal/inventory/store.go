package inventory

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Store holds the in-memory inventory and enforces key-existence rules.
// Duplicate and missing ISBNs are reported through boolean results, never
// through errors. A Store is not safe for concurrent use.
type Store struct {
	books  Inventory
	repo   Repository
	logger *slog.Logger
}

// NewStore creates a store over an existing inventory. A nil inventory starts empty.
func NewStore(repo Repository, books Inventory, logger *slog.Logger) *Store {
	if books == nil {
		books = Inventory{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{books: books, repo: repo, logger: logger}
}

// Open loads the inventory through repo. Any record that breaks the record
// constraints makes the whole load fail with ErrCorrupt.
func Open(ctx context.Context, repo Repository, logger *slog.Logger) (*Store, error) {
	books, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	if books == nil {
		books = Inventory{}
	}
	if err := books.normalize(); err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	for key, b := range books {
		if err := Validate(b); err != nil {
			return nil, fmt.Errorf("load inventory: %w: record %q: %v", ErrCorrupt, key, err)
		}
	}
	return NewStore(repo, books, logger), nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.books)
}

// Create inserts b when its ISBN is not yet present.
func (s *Store) Create(b Book) (bool, error) {
	if err := Validate(b); err != nil {
		return false, err
	}
	if _, ok := s.books[b.ISBN]; ok {
		s.logger.Debug("create rejected, isbn exists", "isbn", b.ISBN)
		return false, nil
	}
	s.books[b.ISBN] = b
	s.logger.Debug("book created", "isbn", b.ISBN)
	return true, nil
}

// ReadOne looks a record up by exact ISBN.
func (s *Store) ReadOne(isbn string) (Book, bool) {
	b, ok := s.books[isbn]
	return b, ok
}

// ReadMany returns the records whose title and author contain the given
// substrings, ignoring case. An empty filter matches everything. The result is
// sorted by author, then title, then ISBN, and is never nil.
func (s *Store) ReadMany(title, author string) []Book {
	title = strings.ToLower(title)
	author = strings.ToLower(author)

	out := make([]Book, 0, len(s.books))
	for _, b := range s.books {
		if title != "" && !strings.Contains(strings.ToLower(b.Title), title) {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(b.Author), author) {
			continue
		}
		out = append(out, b)
	}

	slices.SortFunc(out, func(a, b Book) int {
		return cmp.Or(
			strings.Compare(a.Author, b.Author),
			strings.Compare(a.Title, b.Title),
			strings.Compare(a.ISBN, b.ISBN),
		)
	})
	return out
}

// Update replaces the whole record when its ISBN is present. Fields are not merged.
func (s *Store) Update(b Book) (bool, error) {
	if err := Validate(b); err != nil {
		return false, err
	}
	if _, ok := s.books[b.ISBN]; !ok {
		s.logger.Debug("update rejected, isbn missing", "isbn", b.ISBN)
		return false, nil
	}
	s.books[b.ISBN] = b
	s.logger.Debug("book updated", "isbn", b.ISBN)
	return true, nil
}

// Delete removes the record for isbn if present.
func (s *Store) Delete(isbn string) bool {
	if _, ok := s.books[isbn]; !ok {
		return false
	}
	delete(s.books, isbn)
	s.logger.Debug("book deleted", "isbn", isbn)
	return true
}

// Save writes the full inventory through the repository, replacing what was
// persisted before.
func (s *Store) Save(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.books.clone()); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	s.logger.Info("inventory saved", "books", len(s.books))
	return nil
}
