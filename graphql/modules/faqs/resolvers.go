// Package faqs implements the resolvers for FAQ search.
package faqs

import (
	"github.com/bookhaven/lms-backend/store"
	"github.com/bookhaven/lms-backend/util"
)

// ResolveFAQSearch filters FAQ entries by a case-insensitive substring
// over question and answer, optionally narrowed to a category.
func ResolveFAQSearch(db *store.Store, query, category string) ([]map[string]interface{}, error) {
	results := []map[string]interface{}{}

	for _, f := range db.FAQs() {
		if category != "" && !util.ContainsFold(f.Category, category) {
			continue
		}
		if !util.ContainsFold(f.Question, query) && !util.ContainsFold(f.Answer, query) {
			continue
		}

		results = append(results, map[string]interface{}{
			"id":       f.ID,
			"question": f.Question,
			"answer":   f.Answer,
			"category": f.Category,
		})
	}

	return results, nil
}
