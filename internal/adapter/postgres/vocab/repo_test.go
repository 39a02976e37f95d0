package vocab

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/hanbitlee/mykorean-backend/internal/domain"
)

// mockDB adapts a pgxmock pool to the repository's Querier. SendBatch
// is pinned so the batch path fails loudly if a test reaches it
// unexpectedly.
type mockDB struct {
	pgxmock.PgxPoolIface
	batch func(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

func (m mockDB) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	if m.batch == nil {
		panic("unexpected SendBatch")
	}
	return m.batch(ctx, b)
}

func newMock(t *testing.T) (mockDB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mockDB{PgxPoolIface: mock}, mock
}

func TestListTopics(t *testing.T) {
	db, mock := newMock(t)
	repo := New(db)

	rows := pgxmock.NewRows([]string{"kr", "roman", "en", "categories"}).
		AddRow("저는", "jeoneun", "I (topic)", nil).
		AddRow("여기는", "yeogineun", "This place (topic)", []string{"PLACE"})
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	topics, err := repo.ListTopics(context.Background())
	if err != nil {
		t.Fatalf("ListTopics: %v", err)
	}

	if len(topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(topics))
	}
	if topics[0].Korean != "저는" || topics[0].Categories != nil {
		t.Errorf("topic 0: %+v", topics[0])
	}
	if topics[1].Categories == nil || topics[1].Categories[0] != domain.NounCategoryPlace {
		t.Errorf("topic 1 categories: %+v", topics[1].Categories)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestListNouns(t *testing.T) {
	db, mock := newMock(t)
	repo := New(db)

	rows := pgxmock.NewRows([]string{"kr", "roman", "en", "category"}).
		AddRow("학생", "haksaeng", "student", "JOB").
		AddRow("학교", "hakgyo", "school", "PLACE")
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	nouns, err := repo.ListNouns(context.Background())
	if err != nil {
		t.Fatalf("ListNouns: %v", err)
	}

	if len(nouns) != 2 {
		t.Fatalf("got %d nouns, want 2", len(nouns))
	}
	if nouns[0].Category != domain.NounCategoryJob {
		t.Errorf("noun 0 category: got %q", nouns[0].Category)
	}
}

func TestListNounsByCategories(t *testing.T) {
	db, mock := newMock(t)
	repo := New(db)

	rows := pgxmock.NewRows([]string{"kr", "roman", "en", "category"}).
		AddRow("학교", "hakgyo", "school", "PLACE")
	mock.ExpectQuery(`SELECT .+ FROM nouns WHERE`).
		WithArgs("PLACE").
		WillReturnRows(rows)

	nouns, err := repo.ListNounsByCategories(context.Background(),
		[]domain.NounCategory{domain.NounCategoryPlace})
	if err != nil {
		t.Fatalf("ListNounsByCategories: %v", err)
	}
	if len(nouns) != 1 || nouns[0].Korean != "학교" {
		t.Errorf("got %+v", nouns)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestListNounsByCategories_EmptyFallsBackToAll(t *testing.T) {
	db, mock := newMock(t)
	repo := New(db)

	rows := pgxmock.NewRows([]string{"kr", "roman", "en", "category"}).
		AddRow("학생", "haksaeng", "student", "JOB")
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	nouns, err := repo.ListNounsByCategories(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListNounsByCategories: %v", err)
	}
	if len(nouns) != 1 {
		t.Errorf("got %d nouns, want 1", len(nouns))
	}
}

func TestGetVocabulary(t *testing.T) {
	db, mock := newMock(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT`).WillReturnRows(
		pgxmock.NewRows([]string{"kr", "roman", "en", "categories"}).
			AddRow("저는", "jeoneun", "I (topic)", nil))
	mock.ExpectQuery(`SELECT`).WillReturnRows(
		pgxmock.NewRows([]string{"kr", "roman", "en", "category"}).
			AddRow("학생", "haksaeng", "student", "JOB"))

	v, err := repo.GetVocabulary(context.Background())
	if err != nil {
		t.Fatalf("GetVocabulary: %v", err)
	}
	if len(v.Topics) != 1 || len(v.Nouns) != 1 {
		t.Errorf("got %d topics, %d nouns", len(v.Topics), len(v.Nouns))
	}
}

func TestListTopics_QueryError(t *testing.T) {
	db, mock := newMock(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connection reset"))

	if _, err := repo.ListTopics(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestReplaceVocabulary_DeleteError(t *testing.T) {
	db, mock := newMock(t)
	repo := New(db)

	mock.ExpectExec(`DELETE FROM topics`).WillReturnError(errors.New("permission denied"))

	err := repo.ReplaceVocabulary(context.Background(), domain.Vocabulary{})
	if err == nil {
		t.Fatal("expected error")
	}
}
