// Command distsem builds a distributional model from a text corpus and
// prints the words most similar to a query.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cognicore/distsem/internal/textsource"
	"github.com/cognicore/distsem/pkg/distsem"
	"github.com/cognicore/distsem/pkg/distsem/config"
	"github.com/cognicore/distsem/pkg/distsem/report"
	"github.com/cognicore/distsem/pkg/distsem/stats"
)

func main() {
	var (
		configPath = flag.String("config", "", "Optional: YAML config file")
		text       = flag.String("text", "", "Corpus text given inline")
		file       = flag.String("file", "", "Plain-text corpus file")
		jsonl      = flag.String("jsonl", "", "JSONL document file")
		url        = flag.String("url", "", "Page to fetch as the corpus")
		query      = flag.String("query", "", "Query word (required)")
		window     = flag.Int("window", 0, "Override: co-occurrence window size")
		topK       = flag.Int("topk", 0, "Override: number of results")
		weighting  = flag.String("weighting", "", "Override: counts or ppmi")
		asJSON     = flag.Bool("json", false, "Emit a JSON report instead of a table")
	)
	flag.Parse()

	if *query == "" {
		log.Fatal("--query required")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *window > 0 {
		cfg.WindowSize = *window
	}
	if *topK > 0 {
		cfg.TopK = *topK
	}
	if *weighting != "" {
		cfg.Weighting = *weighting
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	corpus, err := loadCorpus(*text, *file, *jsonl, *url)
	if err != nil {
		log.Fatal(err)
	}

	model, err := distsem.Build(corpus, cfg.Options())
	if err != nil {
		log.Fatal(err)
	}

	results := model.MostSimilar(*query, cfg.TopK)

	if *asJSON {
		summary := stats.Summarize(model.Corpus(), model.Counts())
		rep := report.New().Build(*query, cfg.Weighting, cfg.WindowSize, results, summary)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			log.Fatal(err)
		}
		return
	}

	if len(results) == 0 {
		fmt.Printf("%q is not in the vocabulary (%d words)\n", *query, model.VocabSize())
		return
	}

	fmt.Printf("[query] %s  (window=%d, weighting=%s, vocab=%d)\n",
		*query, cfg.WindowSize, cfg.Weighting, model.VocabSize())
	for i, r := range results {
		fmt.Printf("%3d. %-20s %.6f\n", i+1, r.Word, r.Score)
	}
}

func loadCorpus(text, file, jsonl, url string) (string, error) {
	switch {
	case text != "":
		return text, nil
	case file != "":
		return textsource.LoadFile(file)
	case jsonl != "":
		docs, err := textsource.LoadJSONL(jsonl)
		if err != nil {
			return "", err
		}
		return textsource.Join(docs), nil
	case url != "":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		doc, err := textsource.Fetch(ctx, url)
		if err != nil {
			return "", err
		}
		return doc.Body, nil
	default:
		return "", fmt.Errorf("one of --text, --file, --jsonl, --url required")
	}
}
