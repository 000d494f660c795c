// Package faqs defines the GraphQL queries for FAQ search.
package faqs

import (
	"github.com/graphql-go/graphql"

	"github.com/bookhaven/lms-backend/store"
)

// GetQueryFields returns the FAQ queries to be mounted in the root schema
func GetQueryFields(db *store.Store) graphql.Fields {
	return graphql.Fields{
		"faqSearch": &graphql.Field{
			Type: graphql.NewList(FAQType),
			Args: graphql.FieldConfigArgument{
				"query":    &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				"category": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				query := p.Args["query"].(string)
				category := p.Args["category"].(string)
				return ResolveFAQSearch(db, query, category)
			},
		},
	}
}
