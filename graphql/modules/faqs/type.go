// Package faqs defines the GraphQL types for FAQ search.
package faqs

import (
	"github.com/graphql-go/graphql"
)

// FAQType represents one question/answer pair
var FAQType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FAQ",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.String},
		"question": &graphql.Field{Type: graphql.String},
		"answer":   &graphql.Field{Type: graphql.String},
		"category": &graphql.Field{Type: graphql.String},
	},
})
