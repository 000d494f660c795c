// Package catalog defines the GraphQL queries for book search.
package catalog

import (
	"github.com/graphql-go/graphql"

	"github.com/bookhaven/lms-backend/store"
	"github.com/bookhaven/lms-backend/util"
)

// GetQueryFields returns the catalog queries to be mounted in the root schema
func GetQueryFields(db *store.Store) graphql.Fields {
	return graphql.Fields{
		"bookSearch": &graphql.Field{
			Type: graphql.NewList(BookType),
			Args: graphql.FieldConfigArgument{
				"query": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				"genre": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 20},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				query := p.Args["query"].(string)
				genre := p.Args["genre"].(string)
				limit := util.ClampLimit(p.Args["limit"].(int), 20, 100)
				return ResolveBookSearch(db, query, genre, limit)
			},
		},
	}
}
