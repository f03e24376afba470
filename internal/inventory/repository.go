package inventory

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Drivers lists the supported storage backends.
var Drivers = []string{DriverJSON, DriverSQLite}

// NewRepository opens the backend named by driver. The returned closer must be
// closed when the repository is no longer needed.
func NewRepository(driver, path string, logger *slog.Logger) (Repository, io.Closer, error) {
	switch strings.ToLower(driver) {
	case DriverJSON:
		return NewJSONRepo(path, logger), nopCloser{}, nil
	case DriverSQLite:
		repo, err := NewSQLiteRepo(path, 5*time.Second)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
