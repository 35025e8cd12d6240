package postgres

import (
	"database/sql"

	"vocaquiz/internal/domain"
)

// VocabRepo implements repository.VocabRepository
type VocabRepo struct {
	db *sql.DB
}

// NewVocabRepo creates a new vocabulary repository
func NewVocabRepo(db *sql.DB) *VocabRepo {
	return &VocabRepo{db: db}
}

// LoadAll returns every word-translation pair in the vocabulary table.
// Called once at startup; the result is frozen into the in-memory store.
func (r *VocabRepo) LoadAll() ([]domain.WordPair, error) {
	query := `
		SELECT word, translation
		FROM vocabulary
		ORDER BY word
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []domain.WordPair
	for rows.Next() {
		var p domain.WordPair
		if err := rows.Scan(&p.Word, &p.Translation); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}

	return pairs, rows.Err()
}
