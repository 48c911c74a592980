package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kthompson/bibkit/internal/record"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_InsertAndGetByID(t *testing.T) {
	db := openTestDB(t)

	rec := record.SourceRecord{
		ID:           "r1",
		Title:        "Climate Models",
		Authors:      []string{"Lee, A.", "Kim, B."},
		Year:         "2021",
		Source:       "Nature",
		Type:         record.TypeJournal,
		Volume:       "12",
		Issue:        "4",
		Pages:        "10-20",
		DOI:          "10.1038/xyz",
		DateAccessed: "2026-08-01",
		Confidence:   0.92,
	}
	require.NoError(t, db.Insert(rec))

	got, err := db.GetByID("r1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
}

func TestDB_GetByID_NotFound(t *testing.T) {
	db := openTestDB(t)

	got, err := db.GetByID("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDB_ReplaceByID(t *testing.T) {
	db := openTestDB(t)

	rec := testRecord("r1", "Before")
	require.NoError(t, db.Insert(rec))

	rec.Title = "After"
	rec.Pages = "1-2"
	require.NoError(t, db.ReplaceByID(rec))

	got, err := db.GetByID("r1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, "1-2", got.Pages)

	count, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDB_DeleteByID(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Insert(testRecord("r1", "First")))
	require.NoError(t, db.DeleteByID("r1"))

	got, err := db.GetByID("r1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDB_ListAll(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Insert(testRecord("b", "Second")))
	require.NoError(t, db.Insert(testRecord("a", "First")))
	require.NoError(t, db.Insert(testRecord("c", "Third")))

	all, err := db.ListAll(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID) // ordered by ID

	limited, err := db.ListAll(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestDB_Search(t *testing.T) {
	db := openTestDB(t)

	climate := testRecord("r1", "Climate Models")
	climate.Authors = []string{"Lee, A."}
	require.NoError(t, db.Insert(climate))

	neural := testRecord("r2", "Neural Networks")
	neural.Authors = []string{"Hinton, G."}
	require.NoError(t, db.Insert(neural))

	byTitle, err := db.Search("climate", 10)
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "r1", byTitle[0].ID)

	byAuthor, err := db.Search("Hinton", 10)
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "r2", byAuthor[0].ID)

	none, err := db.Search("quantum", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDB_RebuildFromJSONL(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Insert(testRecord("stale", "Stale")))

	dir := t.TempDir()
	jsonlPath := filepath.Join(dir, "records.jsonl")
	require.NoError(t, Append(jsonlPath, testRecord("r1", "First")))
	require.NoError(t, Append(jsonlPath, testRecord("r2", "Second")))

	n, err := db.RebuildFromJSONL(jsonlPath)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	stale, err := db.GetByID("stale")
	require.NoError(t, err)
	assert.Nil(t, stale)

	count, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPrepareFTSQuery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"climate", "climate"},
		{"  climate  ", "climate"},
		{`deep-learning`, `"deep-learning"`},
		{`say "hi"`, `"say ""hi"""`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, prepareFTSQuery(tt.input))
		})
	}
}
