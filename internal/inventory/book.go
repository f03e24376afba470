package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBook is wrapped by ValidationErrors returned from Create and Update.
	ErrInvalidBook = errors.New("invalid book")
	// ErrCorrupt is returned when a persisted inventory cannot be decoded.
	ErrCorrupt = errors.New("inventory data is malformed")
	// ErrUnknownDriver is returned by NewRepository for an unsupported backend name.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Book represents one stock-keeping record in the warehouse.
type Book struct {
	ISBN     string  `json:"ISBN" validate:"required,isbn"`
	Title    string  `json:"title" validate:"required,notblank"`
	Author   string  `json:"author" validate:"required,notblank"`
	Price    float64 `json:"price" validate:"finite,gte=0"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

// Inventory maps an ISBN to its record.
type Inventory map[string]Book

// normalize fills missing ISBNs from the key and rejects records whose ISBN
// disagrees with it.
func (inv Inventory) normalize() error {
	for key, b := range inv {
		switch b.ISBN {
		case "":
			b.ISBN = key
		case key:
		default:
			return fmt.Errorf("%w: record %q carries ISBN %q", ErrCorrupt, key, b.ISBN)
		}
		inv[key] = b
	}
	return nil
}

func (inv Inventory) clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}
