// Package graphql assembles the root schema from the per-module query
// fields.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/bookhaven/lms-backend/graphql/modules/catalog"
	"github.com/bookhaven/lms-backend/graphql/modules/dashboard"
	"github.com/bookhaven/lms-backend/graphql/modules/faqs"
	"github.com/bookhaven/lms-backend/store"
)

var db *store.Store

// InitDB hands the store to the resolver modules. Call before CreateSchema.
func InitDB(s *store.Store) {
	db = s
}

// CreateSchema builds the root query schema from every module's fields
func CreateSchema() (graphql.Schema, error) {
	fields := graphql.Fields{}

	for name, field := range catalog.GetQueryFields(db) {
		fields[name] = field
	}
	for name, field := range faqs.GetQueryFields(db) {
		fields[name] = field
	}
	for name, field := range dashboard.GetQueryFields(db) {
		fields[name] = field
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}
