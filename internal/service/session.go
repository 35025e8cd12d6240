package service

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/vocab"
)

// QuizSession is the per-user quiz state machine. A session is created
// unconfigured, becomes in-progress once a question limit is set, and
// finishes when the limit is reached, the vocabulary runs out, or the user
// stops. All methods are safe for concurrent use; the internal mutex
// linearizes events for one user without blocking other users' sessions.
type QuizSession struct {
	mu sync.Mutex

	userID int64
	vocab  *vocab.Store

	limit    int
	limitSet bool
	finished bool

	questionsAsked int
	totalQuestions int
	attempts       int

	asked map[string]struct{}

	// order is the full word list shuffled at creation; next indexes the
	// first undrawn word. Drawing in shuffled order is uniform over words
	// not yet asked and avoids recomputing a set difference per draw.
	order []string
	next  int

	currentWord   string
	currentAnswer string
}

// NewQuizSession creates a fresh unconfigured session for userID
func NewQuizSession(userID int64, store *vocab.Store) *QuizSession {
	order := make([]string, len(store.Words()))
	copy(order, store.Words())
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return &QuizSession{
		userID: userID,
		vocab:  store,
		asked:  make(map[string]struct{}),
		order:  order,
	}
}

// SetLimit parses and fixes the question limit, then immediately advances
// to the first question. A limit of 0 finishes the session on the spot.
// Returns ErrInvalidLimit for unparseable or negative input and
// ErrLimitAlreadySet if the session is already configured.
func (s *QuizSession) SetLimit(text string) (string, *domain.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limitSet || s.finished {
		return "", nil, ErrLimitAlreadySet
	}

	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return "", nil, ErrInvalidLimit
	}

	s.limit = n
	s.limitSet = true

	word, summary := s.nextLocked()
	return word, summary, nil
}

// NextQuestion draws the next unseen word, or finishes the session and
// returns its summary when the limit is reached or the vocabulary is
// exhausted. Exactly one of the return values is meaningful.
func (s *QuizSession) NextQuestion() (string, *domain.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextLocked()
}

func (s *QuizSession) nextLocked() (string, *domain.Summary) {
	if s.finished {
		summary := s.summaryLocked()
		return "", &summary
	}

	if s.questionsAsked >= s.limit || s.next >= len(s.order) {
		summary := s.stopLocked()
		return "", &summary
	}

	word := s.order[s.next]
	s.next++

	s.currentWord = word
	s.currentAnswer = s.vocab.Translation(word)
	s.questionsAsked++
	s.totalQuestions++
	s.asked[word] = struct{}{}

	return word, nil
}

// SubmitAnswer judges the user's answer against the outstanding question.
// Every submission counts as an attempt, correct or not. A correct answer
// clears the current question; an incorrect one leaves it outstanding for
// a retry. Returns ErrNoActiveQuestion when nothing is outstanding.
func (s *QuizSession) SubmitAnswer(text string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished || s.currentWord == "" {
		return false, ErrNoActiveQuestion
	}

	s.attempts++

	if !strings.EqualFold(strings.TrimSpace(text), s.currentAnswer) {
		return false, nil
	}

	s.currentWord = ""
	s.currentAnswer = ""
	return true, nil
}

// Stop finishes the session from any state and returns its summary.
// Stopping an already finished session returns the same summary.
func (s *QuizSession) Stop() domain.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return s.summaryLocked()
	}
	return s.stopLocked()
}

func (s *QuizSession) stopLocked() domain.Summary {
	s.finished = true
	s.currentWord = ""
	s.currentAnswer = ""
	return s.summaryLocked()
}

func (s *QuizSession) summaryLocked() domain.Summary {
	return domain.Summary{
		TotalQuestions: s.totalQuestions,
		Attempts:       s.attempts,
	}
}

// AwaitingLimit reports whether the session still needs its question limit
func (s *QuizSession) AwaitingLimit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.limitSet && !s.finished
}

// Finished reports whether the session is terminal
func (s *QuizSession) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// UserID returns the owning user's identifier
func (s *QuizSession) UserID() int64 {
	return s.userID
}
