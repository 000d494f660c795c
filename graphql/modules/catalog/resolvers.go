// Package catalog implements the resolvers for book search.
package catalog

import (
	"github.com/bookhaven/lms-backend/store"
	"github.com/bookhaven/lms-backend/util"
)

// ResolveBookSearch filters the catalog by a case-insensitive substring
// over title/author/ISBN, optionally narrowed to a genre.
func ResolveBookSearch(db *store.Store, query, genre string, limit int) ([]map[string]interface{}, error) {
	results := []map[string]interface{}{}

	for _, b := range db.Books() {
		if genre != "" && !util.ContainsFold(b.Genre, genre) {
			continue
		}
		if !util.ContainsFold(b.Title, query) &&
			!util.ContainsFold(b.Author, query) &&
			!util.ContainsFold(b.ISBN, query) {
			continue
		}

		results = append(results, map[string]interface{}{
			"id":               b.ID,
			"title":            b.Title,
			"author":           b.Author,
			"genre":            b.Genre,
			"isbn":             b.ISBN,
			"year":             b.Year,
			"copies_total":     b.CopiesTotal,
			"copies_available": b.CopiesAvailable,
			"available":        b.Available(),
		})
		if len(results) >= limit {
			break
		}
	}

	return results, nil
}
