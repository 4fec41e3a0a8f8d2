package rank

import (
	"math"
	"testing"

	"github.com/cognicore/distsem/pkg/distsem/cooc"
	"github.com/cognicore/distsem/pkg/distsem/ppmi"
	"github.com/cognicore/distsem/pkg/distsem/vocab"
)

func buildFixture(t *testing.T) (vocab.WordToID, vocab.IDToWord, *cooc.Matrix) {
	t.Helper()
	corpus, wordToID, idToWord := vocab.Build("You say goodbye and I say hello.")
	m, err := cooc.Build(corpus, 1)
	if err != nil {
		t.Fatalf("cooc.Build: %v", err)
	}
	return wordToID, idToWord, m
}

func TestCosineKnownValue(t *testing.T) {
	wordToID, _, m := buildFixture(t)

	you, _ := wordToID.Lookup("you")
	i, _ := wordToID.Lookup("i")

	got := Cosine(m.Row(you), m.Row(i))
	if math.Abs(got-0.70710665) > 1e-7 {
		t.Errorf("cosine(you, i) = %v, want ~0.70710665", got)
	}
}

func TestCosineZeroVector(t *testing.T) {
	zero := []float64{0, 0, 0}
	v := []float64{1, 2, 3}

	if got := Cosine(zero, v); got != 0 {
		t.Errorf("cosine(0, v) = %v, want 0", got)
	}
	if got := Cosine(zero, zero); got != 0 {
		t.Errorf("cosine(0, 0) = %v, want 0", got)
	}
}

func TestCosineIdenticalVectors(t *testing.T) {
	v := []float64{3, 4}
	got := Cosine(v, v)
	if math.Abs(got-1) > 1e-6 {
		t.Errorf("cosine(v, v) = %v, want ~1", got)
	}
}

func TestMostSimilarReferenceOrdering(t *testing.T) {
	wordToID, idToWord, m := buildFixture(t)

	results := MostSimilar("you", wordToID, idToWord, m)
	if len(results) != 6 {
		t.Fatalf("result count = %d, want 6", len(results))
	}

	wantTop := []struct {
		word  string
		score float64
	}{
		{"hello", 0.70710665},
		{"i", 0.70710665},
		{"goodbye", 0.70710665},
		{".", 0.0},
		{"and", 0.0},
	}
	for i, want := range wantTop {
		if results[i].Word != want.word {
			t.Errorf("result[%d] = %q, want %q", i, results[i].Word, want.word)
		}
		if math.Abs(results[i].Score-want.score) > 1e-7 {
			t.Errorf("result[%d] score = %v, want ~%v", i, results[i].Score, want.score)
		}
	}
	if results[5].Word != "say" {
		t.Errorf("result[5] = %q, want %q", results[5].Word, "say")
	}
}

func TestMostSimilarExcludesQuery(t *testing.T) {
	wordToID, idToWord, m := buildFixture(t)

	results := MostSimilar("say", wordToID, idToWord, m)
	seen := make(map[string]int)
	for _, r := range results {
		if r.Word == "say" {
			t.Error("query word appeared in its own results")
		}
		seen[r.Word]++
	}

	// every other vocabulary word exactly once
	if len(results) != wordToID.Size()-1 {
		t.Errorf("result count = %d, want %d", len(results), wordToID.Size()-1)
	}
	for w, n := range seen {
		if n != 1 {
			t.Errorf("word %q appeared %d times", w, n)
		}
	}
}

func TestMostSimilarUnknownQuery(t *testing.T) {
	wordToID, idToWord, m := buildFixture(t)

	if results := MostSimilar("banana", wordToID, idToWord, m); results != nil {
		t.Errorf("unknown query returned %v, want nil", results)
	}
}

func TestMostSimilarOverPPMI(t *testing.T) {
	wordToID, idToWord, m := buildFixture(t)

	weights, err := ppmi.Transform(m)
	if err != nil {
		t.Fatalf("ppmi.Transform: %v", err)
	}

	results := MostSimilar("you", wordToID, idToWord, weights)
	if len(results) != 6 {
		t.Fatalf("result count = %d, want 6", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not in descending score order at %d: %v > %v", i, results[i].Score, results[i-1].Score)
		}
	}
}

func TestMostSimilarDeterministic(t *testing.T) {
	wordToID, idToWord, m := buildFixture(t)

	first := MostSimilar("you", wordToID, idToWord, m)
	for run := 0; run < 10; run++ {
		again := MostSimilar("you", wordToID, idToWord, m)
		for i := range first {
			if first[i] != again[i] {
				t.Fatalf("run %d: result[%d] = %v, first run had %v", run, i, again[i], first[i])
			}
		}
	}
}
