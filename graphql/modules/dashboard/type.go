// Package dashboard defines the GraphQL types for the role dashboards.
package dashboard

import (
	"github.com/graphql-go/graphql"
)

// DashboardOverviewType represents the high-level counts for the top cards
var DashboardOverviewType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DashboardOverview",
	Fields: graphql.Fields{
		"total_books":   &graphql.Field{Type: graphql.Int},
		"total_members": &graphql.Field{Type: graphql.Int},
		"active_loans":  &graphql.Field{Type: graphql.Int},
		"overdue_loans": &graphql.Field{Type: graphql.Int},
	},
})

// LoanType represents one row in a borrow-history table
var LoanType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Loan",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String},
		"book_title":  &graphql.Field{Type: graphql.String},
		"borrowed_at": &graphql.Field{Type: graphql.String},
		"due_at":      &graphql.Field{Type: graphql.String},
		"returned_at": &graphql.Field{Type: graphql.String},
		"status":      &graphql.Field{Type: graphql.String},
	},
})
