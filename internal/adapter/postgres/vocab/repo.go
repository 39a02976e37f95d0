// Package vocab implements the vocabulary repository using PostgreSQL.
// Topics and nouns are stored with an explicit position column; cycling
// order in the engine is the order seeded here.
package vocab

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/hanbitlee/mykorean-backend/internal/adapter/postgres"
	"github.com/hanbitlee/mykorean-backend/internal/domain"
)

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vocabulary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// psql builds queries with PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	listTopicsSQL = `
SELECT kr, roman, en, categories
FROM topics
ORDER BY position`

	listNounsSQL = `
SELECT kr, roman, en, category
FROM nouns
ORDER BY position`
)

// ListTopics returns all topics in cycling order.
func (r *Repo) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listTopicsSQL)
	if err != nil {
		return nil, postgres.MapError(err, "topics")
	}
	defer rows.Close()

	var topics []domain.Topic
	for rows.Next() {
		var t domain.Topic
		var cats []string
		if err := rows.Scan(&t.Korean, &t.Romanized, &t.English, &cats); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		t.Categories = toCategories(cats)
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "topics")
	}

	return topics, nil
}

// ListNouns returns all nouns in cycling order.
func (r *Repo) ListNouns(ctx context.Context) ([]domain.Noun, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listNounsSQL)
	if err != nil {
		return nil, postgres.MapError(err, "nouns")
	}
	defer rows.Close()

	return scanNouns(rows)
}

// ListNounsByCategories returns nouns restricted to the given
// categories, in cycling order. An empty category list returns the
// full sequence.
func (r *Repo) ListNounsByCategories(ctx context.Context, cats []domain.NounCategory) ([]domain.Noun, error) {
	if len(cats) == 0 {
		return r.ListNouns(ctx)
	}

	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}

	sql, args, err := psql.
		Select("kr", "roman", "en", "category").
		From("nouns").
		Where(squirrel.Eq{"category": names}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "nouns")
	}
	defer rows.Close()

	return scanNouns(rows)
}

// GetVocabulary loads the full dataset.
func (r *Repo) GetVocabulary(ctx context.Context) (domain.Vocabulary, error) {
	topics, err := r.ListTopics(ctx)
	if err != nil {
		return domain.Vocabulary{}, err
	}
	nouns, err := r.ListNouns(ctx)
	if err != nil {
		return domain.Vocabulary{}, err
	}
	return domain.Vocabulary{Topics: topics, Nouns: nouns}, nil
}

// ReplaceVocabulary swaps the stored dataset for v: existing rows are
// deleted and the new sequences inserted with their positions. Callers
// are expected to wrap this in a transaction so readers never observe a
// half-replaced dataset.
func (r *Repo) ReplaceVocabulary(ctx context.Context, v domain.Vocabulary) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM topics`); err != nil {
		return postgres.MapError(err, "topics")
	}
	if _, err := q.Exec(ctx, `DELETE FROM nouns`); err != nil {
		return postgres.MapError(err, "nouns")
	}

	batch := &pgx.Batch{}
	for i, t := range v.Topics {
		var cats []string
		if t.Categories != nil {
			cats = make([]string, len(t.Categories))
			for j, c := range t.Categories {
				cats[j] = c.String()
			}
		}
		batch.Queue(
			`INSERT INTO topics (id, position, kr, roman, en, categories)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), i, t.Korean, t.Romanized, t.English, cats,
		)
	}
	for i, n := range v.Nouns {
		batch.Queue(
			`INSERT INTO nouns (id, position, kr, roman, en, category)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), i, n.Korean, n.Romanized, n.English, n.Category.String(),
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "vocabulary")
		}
	}

	return nil
}

func scanNouns(rows pgx.Rows) ([]domain.Noun, error) {
	var nouns []domain.Noun
	for rows.Next() {
		var n domain.Noun
		var cat string
		if err := rows.Scan(&n.Korean, &n.Romanized, &n.English, &cat); err != nil {
			return nil, fmt.Errorf("scan noun: %w", err)
		}
		n.Category = domain.NounCategory(cat)
		nouns = append(nouns, n)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "nouns")
	}
	return nouns, nil
}

func toCategories(names []string) []domain.NounCategory {
	if names == nil {
		return nil
	}
	cats := make([]domain.NounCategory, len(names))
	for i, s := range names {
		cats[i] = domain.NounCategory(s)
	}
	return cats
}
