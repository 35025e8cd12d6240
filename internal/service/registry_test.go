package service

import (
	"sync"
	"testing"

	"vocaquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestSessionRegistry_PutGetRemove(t *testing.T) {
	vocab := testutil.NewTestVocab(map[string]string{"kot": "kot"})
	registry := NewSessionRegistry()

	_, ok := registry.Get(1)
	assert.False(t, ok)

	first := NewQuizSession(1, vocab)
	prev := registry.Put(1, first)
	assert.Nil(t, prev)
	assert.Equal(t, 1, registry.Len())

	got, ok := registry.Get(1)
	assert.True(t, ok)
	assert.Same(t, first, got)

	second := NewQuizSession(1, vocab)
	prev = registry.Put(1, second)
	assert.Same(t, first, prev)
	assert.Equal(t, 1, registry.Len())

	registry.Remove(1, second)
	_, ok = registry.Get(1)
	assert.False(t, ok)
}

func TestSessionRegistry_RemoveOnlyCurrentSession(t *testing.T) {
	vocab := testutil.NewTestVocab(map[string]string{"kot": "kot"})
	registry := NewSessionRegistry()

	stale := NewQuizSession(1, vocab)
	registry.Put(1, stale)

	replacement := NewQuizSession(1, vocab)
	registry.Put(1, replacement)

	// A stale session finishing must not evict its replacement
	registry.Remove(1, stale)

	got, ok := registry.Get(1)
	assert.True(t, ok)
	assert.Same(t, replacement, got)
}

func TestSessionRegistry_RemoveAbsentUserIsNoop(t *testing.T) {
	vocab := testutil.NewTestVocab(map[string]string{"kot": "kot"})
	registry := NewSessionRegistry()

	registry.Remove(99, NewQuizSession(99, vocab))
	assert.Equal(t, 0, registry.Len())
}

func TestSessionRegistry_ConcurrentUsers(t *testing.T) {
	vocab := testutil.NewTestVocab(map[string]string{"kot": "kot"})
	registry := NewSessionRegistry()

	const users = 100
	var wg sync.WaitGroup

	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()

			s := NewQuizSession(userID, vocab)
			registry.Put(userID, s)

			got, ok := registry.Get(userID)
			assert.True(t, ok)
			assert.Same(t, s, got)

			if userID%2 == 0 {
				registry.Remove(userID, s)
			}
		}(int64(i))
	}

	wg.Wait()
	assert.Equal(t, users/2, registry.Len())
}
