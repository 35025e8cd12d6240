package testutil

import (
	"vocaquiz/internal/domain"
	"vocaquiz/internal/vocab"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestVocab builds a store from a plain word->translation map
func NewTestVocab(entries map[string]string) *vocab.Store {
	pairs := make([]domain.WordPair, 0, len(entries))
	for word, translation := range entries {
		pairs = append(pairs, domain.WordPair{Word: word, Translation: translation})
	}

	store, err := vocab.NewStore(pairs)
	if err != nil {
		panic(err)
	}
	return store
}
