package inventory

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks bookwarehouse/internal/inventory Repository

// Repository defines the contract for inventory persistence.
// Load returns an empty inventory when nothing has been persisted yet.
type Repository interface {
	Load(ctx context.Context) (Inventory, error)
	Save(ctx context.Context, inv Inventory) error
}
