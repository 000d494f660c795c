package role

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookhaven/lms-backend/model"
)

func TestResolveIndeterminateBeforeInit(t *testing.T) {
	user := model.NewUser("reader", model.RoleUser)
	profile := &model.Profile{Role: model.RoleAdmin}

	// Nothing role-dependent may render before initialization, no matter
	// what else is present.
	for _, tc := range []struct {
		name    string
		user    *model.User
		profile *model.Profile
	}{
		{"no inputs", nil, nil},
		{"user only", user, nil},
		{"profile only", nil, profile},
		{"both", user, profile},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := Resolve(tc.user, tc.profile, false)
			assert.False(t, ok)
		})
	}
}

func TestResolveGuestAfterInit(t *testing.T) {
	r, ok := Resolve(nil, nil, true)
	assert.True(t, ok)
	assert.Equal(t, model.RoleGuest, r)
}

func TestResolveProfileWinsOverContextUser(t *testing.T) {
	user := model.NewUser("reader", model.RoleUser)
	profile := &model.Profile{Role: model.RoleLibrarian}

	r, ok := Resolve(user, profile, true)
	assert.True(t, ok)
	assert.Equal(t, model.RoleLibrarian, r)
}

func TestResolveFallsBackToContextUser(t *testing.T) {
	user := model.NewUser("reader", model.RoleAdmin)

	r, ok := Resolve(user, nil, true)
	assert.True(t, ok)
	assert.Equal(t, model.RoleAdmin, r)
}

func TestResolveUnknownRoleBecomesGuest(t *testing.T) {
	profile := &model.Profile{Role: model.Role("superuser")}

	r, ok := Resolve(nil, profile, true)
	assert.True(t, ok)
	assert.Equal(t, model.RoleGuest, r)
}
