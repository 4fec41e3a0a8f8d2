// Package vocab turns raw text into a dense, integer-indexed corpus.
package vocab

import "strings"

// WordID identifies a distinct token. IDs are assigned densely in
// first-occurrence order starting at 0, so for a vocabulary of size n the
// assigned ids are exactly 0..n-1.
type WordID int

// Corpus is the tokenized text, one WordID per token in input order.
type Corpus []WordID

// WordToID maps a token to its WordID.
type WordToID map[string]WordID

// IDToWord maps a WordID back to its token. It is the inverse of WordToID.
type IDToWord map[WordID]string

// Build tokenizes text and assigns dense ids.
//
// Normalization: the text is lowercased and every "." becomes its own token.
// Tokens are split on whitespace; runs of delimiters produce no empty tokens.
// Other punctuation is not split out and stays attached to its word.
//
// Empty input yields an empty corpus and empty mappings.
func Build(text string) (Corpus, WordToID, IDToWord) {
	normalized := strings.ReplaceAll(strings.ToLower(text), ".", " .")
	words := strings.Fields(normalized)

	corpus := make(Corpus, 0, len(words))
	wordToID := make(WordToID)
	idToWord := make(IDToWord)

	for _, w := range words {
		id, ok := wordToID[w]
		if !ok {
			id = WordID(len(wordToID))
			wordToID[w] = id
			idToWord[id] = w
		}
		corpus = append(corpus, id)
	}

	return corpus, wordToID, idToWord
}

// Size returns the number of distinct tokens.
func (m WordToID) Size() int { return len(m) }

// Lookup returns the id for a token and whether the token is known.
func (m WordToID) Lookup(word string) (WordID, bool) {
	id, ok := m[word]
	return id, ok
}

// MaxID returns the largest id in the corpus, or -1 for an empty corpus.
func (c Corpus) MaxID() WordID {
	max := WordID(-1)
	for _, id := range c {
		if id > max {
			max = id
		}
	}
	return max
}
