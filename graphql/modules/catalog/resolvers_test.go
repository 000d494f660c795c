package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/lms-backend/store"
)

func seededStore() *store.Store {
	s := store.New()
	s.Seed()
	return s
}

func titles(results []map[string]interface{}) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r["title"].(string))
	}
	return out
}

func TestBookSearchMatchesTitleCaseInsensitively(t *testing.T) {
	db := seededStore()

	results, err := ResolveBookSearch(db, "piranesi", "", 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"Piranesi"}, titles(results))
}

func TestBookSearchMatchesAuthorAndISBN(t *testing.T) {
	db := seededStore()

	byAuthor, err := ResolveBookSearch(db, "le guin", "", 20)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)

	byISBN, err := ResolveBookSearch(db, "978-0553380958", "", 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"Snow Crash"}, titles(byISBN))
}

func TestBookSearchGenreFilter(t *testing.T) {
	db := seededStore()

	results, err := ResolveBookSearch(db, "", "fantasy", 20)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, "Fantasy", r["genre"])
	}
}

func TestBookSearchEmptyQueryReturnsAll(t *testing.T) {
	db := seededStore()

	results, err := ResolveBookSearch(db, "", "", 20)
	require.NoError(t, err)
	assert.Len(t, results, len(db.Books()))
}

func TestBookSearchHonorsLimit(t *testing.T) {
	db := seededStore()

	results, err := ResolveBookSearch(db, "", "", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestBookSearchReportsAvailability(t *testing.T) {
	db := seededStore()

	results, err := ResolveBookSearch(db, "snow crash", "", 20)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, false, results[0]["available"], "zero copies means unavailable")
}

func TestBookSearchNoMatchesIsEmptyNotNil(t *testing.T) {
	db := seededStore()

	results, err := ResolveBookSearch(db, "no such book", "", 20)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
