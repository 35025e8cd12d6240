package domain

// Summary is the final report of a quiz session
type Summary struct {
	// TotalQuestions counts questions actually presented. Kept as its own
	// counter next to the session's questionsAsked so the two can diverge
	// later (e.g. lifetime totals) without a schema change.
	TotalQuestions int
	// Attempts counts every submitted answer, correct or not.
	Attempts int
}
