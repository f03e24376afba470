package console

import (
	"fmt"

	"bookwarehouse/internal/inventory"
)

// Prompt defaults offered when adding a book.
const (
	defaultTitle    = "Pride and Prejudice"
	defaultAuthor   = "Jane Austen"
	defaultISBN     = "0684801221"
	defaultPrice    = "5.99"
	defaultQuantity = "100"
)

func (s *Session) readBook() (inventory.Book, error) {
	var (
		b   inventory.Book
		err error
	)
	if b.Title, err = ask(s, "Enter book title", defaultTitle, text("Title")); err != nil {
		return b, err
	}
	if b.Author, err = ask(s, "Enter book author", defaultAuthor, text("Author")); err != nil {
		return b, err
	}
	if b.ISBN, err = ask(s, "Enter book ISBN", defaultISBN, inventory.ParseISBN); err != nil {
		return b, err
	}
	if b.Price, err = ask(s, "Enter book price", defaultPrice, inventory.ParsePrice); err != nil {
		return b, err
	}
	if b.Quantity, err = ask(s, "Enter book quantity", defaultQuantity, inventory.ParseQuantity); err != nil {
		return b, err
	}
	return b, nil
}

// addBook creates the entered record, or offers to replace the existing one
// when its ISBN is taken.
func (s *Session) addBook() error {
	b, err := s.readBook()
	if err != nil {
		return err
	}

	created, err := s.store.Create(b)
	if err != nil {
		s.printf("%s\n", s.paint(styleError, describe(err)))
		return nil
	}
	if created {
		s.printf("Book %s added to inventory\n", s.paint(styleOK, b.Title))
		return nil
	}

	s.printf("Book %s already exists in inventory\n", s.paint(styleError, b.Title))
	replace, err := s.confirm("Do you want to update the book?")
	if err != nil {
		return err
	}
	if !replace {
		s.printf("Book %s not updated in inventory\n", s.paint(styleError, b.Title))
		return nil
	}

	updated, err := s.store.Update(b)
	switch {
	case err != nil:
		s.printf("%s\n", s.paint(styleError, describe(err)))
	case updated:
		s.printf("Book %s updated in inventory\n", s.paint(styleOK, b.Title))
	default:
		s.printf("Book %s not updated in inventory\n", s.paint(styleError, b.Title))
	}
	return nil
}

func (s *Session) removeBook() error {
	isbn, err := ask(s, "Enter book ISBN", defaultISBN, inventory.ParseISBN)
	if err != nil {
		return err
	}
	if s.store.Delete(isbn) {
		s.printf("Book with ISBN %s removed from inventory\n", s.paint(styleOK, isbn))
	} else {
		s.printf("Book with ISBN %s does not exist in inventory\n", s.paint(styleError, isbn))
	}
	return nil
}

func (s *Session) searchByISBN() error {
	isbn, err := ask(s, "Enter book ISBN", defaultISBN, inventory.ParseISBN)
	if err != nil {
		return err
	}
	b, ok := s.store.ReadOne(isbn)
	if !ok {
		s.printf("Book with ISBN %s does not exist in inventory\n", s.paint(styleError, isbn))
		return nil
	}
	s.renderBooks("", []inventory.Book{b})
	return nil
}

// searchBooks filters by title and author; either may be left blank.
func (s *Session) searchBooks() error {
	title, err := s.prompt("Enter book title", "")
	if err != nil {
		return err
	}
	author, err := s.prompt("Enter book author", "")
	if err != nil {
		return err
	}

	books := s.store.ReadMany(title, author)
	if len(books) == 0 {
		s.printf("Book with title %s and author %s does not exist in inventory\n",
			s.paint(styleError, title), s.paint(styleError, author))
		return nil
	}
	s.renderBooks(fmt.Sprintf("Search results (%d)", len(books)), books)
	return nil
}

func (s *Session) printInventory() error {
	books := s.store.ReadMany("", "")
	if len(books) == 0 {
		s.printf("Inventory is empty\n")
		return nil
	}
	s.renderBooks("Inventory", books)
	return nil
}
