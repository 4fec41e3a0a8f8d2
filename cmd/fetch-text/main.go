// Command fetch-text downloads pages, strips their HTML, caches them in a
// SQLite database, and writes the combined plain text as a corpus file for
// the distsem command.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/cognicore/distsem/internal/docstore"
	"github.com/cognicore/distsem/internal/textsource"
)

func main() {
	var (
		cachePath = flag.String("cache", "testdata/documents.db", "SQLite document cache")
		out       = flag.String("out", "corpus.txt", "Output corpus file")
		refresh   = flag.Bool("refresh", false, "Re-download URLs already cached")
	)
	flag.Parse()

	urls := flag.Args()
	if len(urls) == 0 {
		log.Fatal("usage: fetch-text [flags] URL...")
	}

	ctx := context.Background()

	store, err := docstore.Open(ctx, *cachePath)
	if err != nil {
		log.Fatal("Failed to open document cache:", err)
	}
	defer store.Close()

	fetched := 0
	var docs []textsource.Document
	for _, url := range urls {
		if !*refresh {
			if doc, found, err := store.Get(ctx, url); err != nil {
				log.Fatal("Cache lookup failed:", err)
			} else if found {
				log.Printf("cached: %s", url)
				docs = append(docs, doc)
				continue
			}
		}

		fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		doc, err := textsource.Fetch(fetchCtx, url)
		cancel()
		if err != nil {
			log.Printf("Failed to fetch %s: %v", url, err)
			continue
		}

		if err := store.Put(ctx, doc); err != nil {
			log.Fatal("Failed to cache document:", err)
		}
		docs = append(docs, doc)
		fetched++

		// Be nice to the servers
		time.Sleep(50 * time.Millisecond)
	}

	if len(docs) == 0 {
		log.Fatal("No documents available")
	}

	corpus := textsource.Join(docs)
	if err := os.WriteFile(*out, []byte(corpus), 0644); err != nil {
		log.Fatal("Failed to write corpus file:", err)
	}

	log.Printf("✓ Wrote %d documents (%d newly fetched) to %s", len(docs), fetched, *out)
}
