package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bookwarehouse/internal/inventory"
)

// TestBook is the record used by the add/remove scenario.
var TestBook = inventory.Book{
	ISBN:     "123",
	Title:    "Dune",
	Author:   "Herbert",
	Price:    9.99,
	Quantity: 3,
}

// AustenBooks share an author and differ by title.
var AustenBooks = []inventory.Book{
	{ISBN: "0141439513", Title: "Pride and Prejudice", Author: "Jane Austen", Price: 5.99, Quantity: 100},
	{ISBN: "0141439661", Title: "Emma", Author: "Jane Austen", Price: 6.49, Quantity: 12},
}

// OtherBooks are records with distinct authors.
var OtherBooks = []inventory.Book{
	{ISBN: "0451524934", Title: "1984", Author: "George Orwell", Price: 8.5, Quantity: 7},
	{ISBN: "0060850523", Title: "Brave New World", Author: "Aldous Huxley", Price: 10, Quantity: 1},
}

// NewInventory builds an inventory keyed by ISBN from books.
func NewInventory(books ...inventory.Book) inventory.Inventory {
	inv := make(inventory.Inventory, len(books))
	for _, b := range books {
		inv[b.ISBN] = b
	}
	return inv
}

// SampleInventory returns the Austen and other fixtures together.
func SampleInventory() inventory.Inventory {
	books := append([]inventory.Book{}, AustenBooks...)
	books = append(books, OtherBooks...)
	return NewInventory(books...)
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Input joins lines into a reader that feeds a console session.
func Input(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// Output collects what a console session prints.
type Output struct {
	bytes.Buffer
}

// Contains reports whether s was printed.
func (o *Output) Contains(s string) bool {
	return strings.Contains(o.String(), s)
}
