// Package catalog defines the GraphQL types for book search.
package catalog

import (
	"github.com/graphql-go/graphql"
)

// BookType represents one catalog entry in search results
var BookType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Book",
	Fields: graphql.Fields{
		"id":               &graphql.Field{Type: graphql.String},
		"title":            &graphql.Field{Type: graphql.String},
		"author":           &graphql.Field{Type: graphql.String},
		"genre":            &graphql.Field{Type: graphql.String},
		"isbn":             &graphql.Field{Type: graphql.String},
		"year":             &graphql.Field{Type: graphql.Int},
		"copies_total":     &graphql.Field{Type: graphql.Int},
		"copies_available": &graphql.Field{Type: graphql.Int},
		"available":        &graphql.Field{Type: graphql.Boolean},
	},
})
