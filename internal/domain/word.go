package domain

// WordPair is a word with its translation, as loaded from the vocabulary source
type WordPair struct {
	Word        string
	Translation string
}
