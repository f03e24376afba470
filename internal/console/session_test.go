package console_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"bookwarehouse/internal/console"
	"bookwarehouse/internal/inventory"
	"bookwarehouse/internal/inventory/mocks"
	"bookwarehouse/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, store *inventory.Store, lines ...string) (*testutil.Output, error) {
	t.Helper()
	out := &testutil.Output{}
	s := console.NewSession(store, testutil.Input(lines...), out, nil, console.Options{})
	err := s.Run(context.Background())
	return out, err
}

func TestSession_AddThenSave(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewJSONRepo(filepath.Join(t.TempDir(), "data.json"), nil)
	store, err := inventory.Open(ctx, repo, nil)
	require.NoError(t, err)

	out, err := run(t, store,
		"1", "Dune", "Herbert", "123", "9.99", "3", "",
		"6", "y",
	)
	require.NoError(t, err)
	assert.True(t, out.Contains("Book Dune added to inventory"))
	assert.True(t, out.Contains("Inventory saved!"))

	saved, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testutil.NewInventory(testutil.TestBook), saved)
}

func TestSession_AddUsesDefaults(t *testing.T) {
	store := inventory.NewStore(nil, nil, nil)

	_, err := run(t, store, "1", "", "", "", "", "", "", "6", "n")
	require.NoError(t, err)

	b, ok := store.ReadOne("0684801221")
	require.True(t, ok)
	assert.Equal(t, inventory.Book{
		ISBN: "0684801221", Title: "Pride and Prejudice", Author: "Jane Austen", Price: 5.99, Quantity: 100,
	}, b)
}

func TestSession_AddRepromptsInvalidFields(t *testing.T) {
	store := inventory.NewStore(nil, nil, nil)

	out, err := run(t, store,
		"1", "Dune", "Herbert",
		"12a", "123",
		"-1", "free", "0",
		"0", "2.5", "1",
		"", "6", "n",
	)
	require.NoError(t, err)
	assert.True(t, out.Contains("ISBN must contain digits only"))
	assert.True(t, out.Contains("Price must be at least 0"))
	assert.True(t, out.Contains("Price must be a number"))
	assert.True(t, out.Contains("Quantity must be at least 1"))

	b, ok := store.ReadOne("123")
	require.True(t, ok)
	assert.Equal(t, 0.0, b.Price)
	assert.Equal(t, 1, b.Quantity)
}

func TestSession_AddDuplicate(t *testing.T) {
	t.Run("update replaces the record", func(t *testing.T) {
		store := inventory.NewStore(nil, testutil.NewInventory(testutil.TestBook), nil)

		out, err := run(t, store,
			"1", "Dune Messiah", "Frank Herbert", "123", "12.50", "8", "y", "",
			"6", "n",
		)
		require.NoError(t, err)
		assert.True(t, out.Contains("Book Dune Messiah already exists in inventory"))
		assert.True(t, out.Contains("Book Dune Messiah updated in inventory"))

		b, _ := store.ReadOne("123")
		assert.Equal(t, inventory.Book{ISBN: "123", Title: "Dune Messiah", Author: "Frank Herbert", Price: 12.5, Quantity: 8}, b)
	})

	t.Run("declining keeps the record", func(t *testing.T) {
		store := inventory.NewStore(nil, testutil.NewInventory(testutil.TestBook), nil)

		out, err := run(t, store,
			"1", "Other", "Someone", "123", "1", "1", "n", "",
			"6", "n",
		)
		require.NoError(t, err)
		assert.True(t, out.Contains("Book Other not updated in inventory"))

		b, _ := store.ReadOne("123")
		assert.Equal(t, testutil.TestBook, b)
	})
}

func TestSession_Remove(t *testing.T) {
	store := inventory.NewStore(nil, testutil.NewInventory(testutil.TestBook), nil)

	out, err := run(t, store,
		"2", "123", "",
		"2", "123", "",
		"6", "n",
	)
	require.NoError(t, err)
	assert.True(t, out.Contains("Book with ISBN 123 removed from inventory"))
	assert.True(t, out.Contains("Book with ISBN 123 does not exist in inventory"))
	assert.Equal(t, 0, store.Len())
}

func TestSession_Searches(t *testing.T) {
	store := inventory.NewStore(nil, testutil.SampleInventory(), nil)

	t.Run("by isbn", func(t *testing.T) {
		out, err := run(t, store, "3", "0451524934", "", "3", "999", "", "6", "n")
		require.NoError(t, err)
		assert.True(t, out.Contains("George Orwell"))
		assert.True(t, out.Contains("8.50"))
		assert.True(t, out.Contains("Book with ISBN 999 does not exist in inventory"))
	})

	t.Run("by author ignores case and sorts", func(t *testing.T) {
		out, err := run(t, store, "4", "", "austen", "", "6", "n")
		require.NoError(t, err)
		assert.True(t, out.Contains("Search results (2)"))

		emma := strings.Index(out.String(), "Emma")
		pride := strings.Index(out.String(), "Pride and Prejudice  ")
		require.True(t, emma >= 0 && pride >= 0)
		assert.Less(t, emma, pride)
		assert.False(t, out.Contains("Orwell"))
	})

	t.Run("no match", func(t *testing.T) {
		out, err := run(t, store, "4", "zzz", "", "", "6", "n")
		require.NoError(t, err)
		assert.True(t, out.Contains("Book with title zzz and author  does not exist in inventory"))
	})

	t.Run("print inventory", func(t *testing.T) {
		out, err := run(t, store, "5", "", "6", "n")
		require.NoError(t, err)
		for _, b := range testutil.SampleInventory() {
			assert.True(t, out.Contains(b.Title), b.Title)
		}
	})
}

func TestSession_PrintEmptyInventory(t *testing.T) {
	out, err := run(t, inventory.NewStore(nil, nil, nil), "5", "", "6", "n")
	require.NoError(t, err)
	assert.True(t, out.Contains("Inventory is empty"))
}

func TestSession_UnknownOption(t *testing.T) {
	out, err := run(t, inventory.NewStore(nil, nil, nil), "9", "", "6", "n")
	require.NoError(t, err)
	assert.True(t, out.Contains(`Unknown option "9"`))
}

func TestSession_Exit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("declining discards changes", func(t *testing.T) {
		repo := mocks.NewMockRepository(ctrl)
		store := inventory.NewStore(repo, nil, nil)

		out, err := run(t, store, "1", "Dune", "Herbert", "123", "9.99", "3", "", "6", "maybe", "n")
		require.NoError(t, err)
		assert.True(t, out.Contains("Please answer y or n."))
		assert.True(t, out.Contains("Inventory not saved!"))
	})

	t.Run("end of input exits without saving", func(t *testing.T) {
		repo := mocks.NewMockRepository(ctrl)
		store := inventory.NewStore(repo, nil, nil)

		out, err := run(t, store, "1", "Dune")
		require.NoError(t, err)
		assert.True(t, out.Contains("Inventory not saved!"))
	})

	t.Run("save failure is reported", func(t *testing.T) {
		repo := mocks.NewMockRepository(ctrl)
		store := inventory.NewStore(repo, nil, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("read-only file system"))

		out, err := run(t, store, "6", "y")
		assert.Error(t, err)
		assert.True(t, out.Contains("Inventory could not be saved"))
	})
}
