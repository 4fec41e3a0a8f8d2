package vocab

import (
	"reflect"
	"testing"
)

func TestBuildAssignsDenseIDs(t *testing.T) {
	corpus, wordToID, _ := Build("You say goodbye and I say hello.")

	want := Corpus{0, 1, 2, 3, 4, 1, 5, 6}
	if !reflect.DeepEqual(corpus, want) {
		t.Fatalf("corpus = %v, want %v", corpus, want)
	}

	if wordToID.Size() != 7 {
		t.Errorf("vocabulary size = %d, want 7", wordToID.Size())
	}

	words := []string{"you", "say", "goodbye", "and", "i", "hello", "."}
	for i, w := range words {
		id, ok := wordToID.Lookup(w)
		if !ok {
			t.Fatalf("word %q missing from vocabulary", w)
		}
		if id != WordID(i) {
			t.Errorf("id of %q = %d, want %d", w, id, i)
		}
	}
}

func TestBuildBijection(t *testing.T) {
	_, wordToID, idToWord := Build("the quick brown fox jumps over the lazy dog.")

	if len(wordToID) != len(idToWord) {
		t.Fatalf("mapping sizes differ: %d vs %d", len(wordToID), len(idToWord))
	}
	for w, id := range wordToID {
		if idToWord[id] != w {
			t.Errorf("idToWord[wordToID[%q]] = %q, want %q", w, idToWord[id], w)
		}
	}

	// ids must be exactly 0..n-1
	seen := make(map[WordID]bool)
	for _, id := range wordToID {
		if id < 0 || int(id) >= len(wordToID) {
			t.Errorf("id %d out of dense range [0,%d)", id, len(wordToID))
		}
		if seen[id] {
			t.Errorf("id %d assigned twice", id)
		}
		seen[id] = true
	}
}

func TestBuildDeterministic(t *testing.T) {
	text := "a b c a b. c. a"
	c1, w1, i1 := Build(text)
	c2, w2, i2 := Build(text)

	if !reflect.DeepEqual(c1, c2) {
		t.Errorf("corpus differs between runs: %v vs %v", c1, c2)
	}
	if !reflect.DeepEqual(w1, w2) {
		t.Errorf("word->id differs between runs")
	}
	if !reflect.DeepEqual(i1, i2) {
		t.Errorf("id->word differs between runs")
	}
}

func TestBuildEmptyInput(t *testing.T) {
	corpus, wordToID, idToWord := Build("")

	if len(corpus) != 0 {
		t.Errorf("corpus = %v, want empty", corpus)
	}
	if len(wordToID) != 0 || len(idToWord) != 0 {
		t.Errorf("mappings not empty: %d, %d entries", len(wordToID), len(idToWord))
	}
}

func TestBuildPeriodIsOwnToken(t *testing.T) {
	corpus, wordToID, _ := Build("end. start")

	if _, ok := wordToID.Lookup("."); !ok {
		t.Fatal("period not tokenized separately")
	}
	if _, ok := wordToID.Lookup("end."); ok {
		t.Error("found token \"end.\", period should have been split off")
	}
	if len(corpus) != 3 {
		t.Errorf("token count = %d, want 3", len(corpus))
	}
}

func TestBuildOtherPunctuationKept(t *testing.T) {
	// Only "." is isolated; commas and the rest ride along with their word.
	_, wordToID, _ := Build("hello, world")

	if _, ok := wordToID.Lookup("hello,"); !ok {
		t.Error("expected token \"hello,\" with trailing comma intact")
	}
	if _, ok := wordToID.Lookup("hello"); ok {
		t.Error("comma was stripped, want it preserved")
	}
}

func TestBuildCollapsesDelimiterRuns(t *testing.T) {
	corpus, wordToID, _ := Build("a  b\t c \n d.")

	if len(corpus) != 5 {
		t.Errorf("token count = %d, want 5", len(corpus))
	}
	if _, ok := wordToID.Lookup(""); ok {
		t.Error("empty token leaked into the vocabulary")
	}
}

func TestCorpusMaxID(t *testing.T) {
	if got := (Corpus{}).MaxID(); got != -1 {
		t.Errorf("MaxID of empty corpus = %d, want -1", got)
	}
	if got := (Corpus{0, 3, 1, 3}).MaxID(); got != 3 {
		t.Errorf("MaxID = %d, want 3", got)
	}
}
