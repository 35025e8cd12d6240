// Package vocab holds the vocabulary the bot quizzes on. The store is
// built once at startup and never mutated afterwards, so reads need no
// synchronization.
package vocab

import (
	"fmt"

	"vocaquiz/internal/domain"
)

// Store is an immutable word-to-translation mapping
type Store struct {
	translations map[string]string
	words        []string
}

// NewStore builds a store from loaded word pairs. It fails if the list is
// empty or contains an empty word; a non-empty vocabulary is a startup
// requirement. Duplicate words resolve last-one-wins.
func NewStore(pairs []domain.WordPair) (*Store, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}

	translations := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if p.Word == "" {
			return nil, fmt.Errorf("vocabulary contains an empty word")
		}
		translations[p.Word] = p.Translation
	}

	words := make([]string, 0, len(translations))
	for word := range translations {
		words = append(words, word)
	}

	return &Store{translations: translations, words: words}, nil
}

// Words returns all words. Callers must not modify the returned slice.
func (s *Store) Words() []string {
	return s.words
}

// Translation returns the translation for word. Calling it with a word
// that is not in the store is a programming error.
func (s *Store) Translation(word string) string {
	return s.translations[word]
}

// Len returns the number of distinct words
func (s *Store) Len() int {
	return len(s.words)
}
