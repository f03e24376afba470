package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"bookwarehouse/internal/config"
	"bookwarehouse/internal/inventory"
	"bookwarehouse/internal/logging"

	"github.com/dustin/go-humanize"
)

func main() {
	var (
		count    = flag.Int("count", 1000, "Number of books to generate")
		dataPath = flag.String("data", "", "Inventory file, overrides storage.path")
		driver   = flag.String("driver", "", "Storage driver: json or sqlite, overrides storage.driver")
	)
	flag.Parse()

	cfg, err := config.Load(config.Options{})
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	if *dataPath != "" {
		cfg.Storage.Path = *dataPath
	}
	if *driver != "" {
		cfg.Storage.Driver = *driver
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	logger := logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	ctx := context.Background()
	repo, closer, err := inventory.NewRepository(cfg.Storage.Driver, cfg.Storage.Path, logger)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer closer.Close()

	store, err := inventory.Open(ctx, repo, logger)
	if err != nil {
		log.Fatalf("Failed to load inventory: %v", err)
	}

	log.Printf("Generating %s books...", humanize.Comma(int64(*count)))
	added := seed(store, rand.New(rand.NewSource(rand.Int63())), *count)

	if err := store.Save(ctx); err != nil {
		log.Fatalf("Failed to save inventory: %v", err)
	}
	log.Printf("Added %s books, inventory now holds %s (%s)",
		humanize.Comma(int64(added)), humanize.Comma(int64(store.Len())), cfg.Storage.Path)
}

// seed creates up to count random books and returns how many were new.
// Generated ISBNs that already exist are skipped.
func seed(store *inventory.Store, rng *rand.Rand, count int) int {
	added := 0
	for i := 0; i < count; i++ {
		b := inventory.Book{
			ISBN:     fmt.Sprintf("978%010d", rng.Int63n(10_000_000_000)),
			Title:    fmt.Sprintf("%s of %s", randomWord(rng), randomWord(rng)),
			Author:   fmt.Sprintf("%s %s", randomFirstName(rng), randomLastName(rng)),
			Price:    float64(100+rng.Intn(4900)) / 100,
			Quantity: 1 + rng.Intn(200),
		}
		ok, err := store.Create(b)
		if err != nil {
			log.Printf("skipping generated book %s: %v", b.ISBN, err)
			continue
		}
		if ok {
			added++
		}

		if (i+1)%1000 == 0 {
			log.Printf("Generated %s/%s books", humanize.Comma(int64(i+1)), humanize.Comma(int64(count)))
		}
	}
	return added
}

func randomWord(rng *rand.Rand) string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[rng.Intn(len(words))]
}

func randomFirstName(rng *rand.Rand) string {
	names := []string{"Jane", "George", "Ernest", "Virginia", "Leo", "Toni", "Frank", "Mary", "Italo", "Ursula"}
	return names[rng.Intn(len(names))]
}

func randomLastName(rng *rand.Rand) string {
	names := []string{"Austen", "Orwell", "Hemingway", "Woolf", "Tolstoy", "Morrison", "Herbert", "Shelley", "Calvino", "Le Guin"}
	return names[rng.Intn(len(names))]
}
