// Package dashboard defines the GraphQL queries for the role dashboards.
package dashboard

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/bookhaven/lms-backend/restapi/modules/auth"
	"github.com/bookhaven/lms-backend/store"
)

// GetQueryFields returns the dashboard queries to be mounted in the root schema
func GetQueryFields(db *store.Store) graphql.Fields {
	return graphql.Fields{
		"dashboardOverview": &graphql.Field{
			Type: DashboardOverviewType,
			Resolve: func(_ graphql.ResolveParams) (interface{}, error) {
				return ResolveOverview(db)
			},
		},
		"loanHistory": &graphql.Field{
			Type: graphql.NewList(LoanType),
			Args: graphql.FieldConfigArgument{
				"status": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				"from":   &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				"to":     &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				username, _ := p.Context.Value(auth.UserKey).(string)
				status := p.Args["status"].(string)
				from := parseDate(p.Args["from"].(string))
				to := parseDate(p.Args["to"].(string))
				return ResolveLoanHistory(db, username, status, from, to)
			},
		},
	}
}

// parseDate accepts RFC3339 or plain dates; anything else means no bound
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
