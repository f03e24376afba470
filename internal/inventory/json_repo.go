package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// JSONRepo persists the inventory as one JSON object keyed by ISBN.
type JSONRepo struct {
	path   string
	logger *slog.Logger
}

func NewJSONRepo(path string, logger *slog.Logger) *JSONRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONRepo{path: path, logger: logger}
}

// jsonBook is the on-disk record. ISBN stays raw so a JSON number, as written
// by older versions of the file, can be told apart from a string.
type jsonBook struct {
	Book
	ISBN json.RawMessage `json:"ISBN"`
}

// book reconciles the record with its key. A string ISBN must equal the key.
// A numeric ISBN may have lost its leading zeros, so it is compared without
// them and replaced by the key.
func (rec jsonBook) book(key string) (Book, error) {
	b := rec.Book
	raw := bytes.TrimSpace(rec.ISBN)

	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		b.ISBN = key
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &b.ISBN); err != nil {
			return Book{}, fmt.Errorf("%w: record %q: ISBN: %v", ErrCorrupt, key, err)
		}
		if b.ISBN != key {
			return Book{}, fmt.Errorf("%w: record %q carries ISBN %q", ErrCorrupt, key, b.ISBN)
		}
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return Book{}, fmt.Errorf("%w: record %q: ISBN: %v", ErrCorrupt, key, err)
		}
		if strings.TrimLeft(n.String(), "0") != strings.TrimLeft(key, "0") {
			return Book{}, fmt.Errorf("%w: record %q carries ISBN %s", ErrCorrupt, key, n)
		}
		b.ISBN = key
	}
	return b, nil
}

// Load reads the whole file. A missing or blank file is an empty inventory.
func (r *JSONRepo) Load(ctx context.Context) (Inventory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Info("inventory file not found, starting empty", "path", r.path)
			return Inventory{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Inventory{}, nil
	}

	var records map[string]jsonBook
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrCorrupt, r.path, err)
	}
	inv := make(Inventory, len(records))
	for key, rec := range records {
		b, err := rec.book(key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.path, err)
		}
		inv[key] = b
	}

	r.logger.Info("inventory file read", "path", r.path, "books", len(inv), "size", humanize.Bytes(uint64(len(data))))
	return inv, nil
}

// Save writes to a temporary file next to the target and renames it into
// place, so a failed save leaves the previous file untouched.
func (r *JSONRepo) Save(ctx context.Context, inv Inventory) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if inv == nil {
		inv = Inventory{}
	}

	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", r.path, err)
	}

	r.logger.Info("inventory file written", "path", r.path, "books", len(inv), "size", humanize.Bytes(uint64(len(data))))
	return nil
}
