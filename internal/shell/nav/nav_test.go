package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/lms-backend/model"
)

func TestItemsForEveryRoleStartsWithDashboard(t *testing.T) {
	roles := []model.Role{model.RoleGuest, model.RoleUser, model.RoleLibrarian, model.RoleAdmin}

	for _, r := range roles {
		items := ItemsFor(r)
		require.NotEmpty(t, items, "role %s", r)
		assert.Equal(t, "Dashboard", items[0].Label)
		assert.Equal(t, DashboardPath(r), items[0].Path)
	}
}

func TestItemsForUnknownRoleGetsGuestList(t *testing.T) {
	items := ItemsFor(model.Role("superuser"))
	require.NotEmpty(t, items)
	assert.Equal(t, ItemsFor(model.RoleGuest), items)
}

func TestIsActiveDashboardMatchesExactly(t *testing.T) {
	dashboard := ItemsFor(model.RoleUser)[0]

	assert.True(t, IsActive(dashboard, model.RoleUser, "/user"))
	assert.False(t, IsActive(dashboard, model.RoleUser, "/user/history"))
}

func TestIsActiveOtherItemsMatchByPrefix(t *testing.T) {
	loans := Item{Label: "My Loans", Path: "/user/history"}

	assert.True(t, IsActive(loans, model.RoleUser, "/user/history"))
	assert.True(t, IsActive(loans, model.RoleUser, "/user/history/loan-0002"))
	assert.False(t, IsActive(loans, model.RoleUser, "/user/books"))
}

func TestStyleHomePageTransparentUntilScrolled(t *testing.T) {
	top := Style(true, false)
	assert.Equal(t, "transparent", top.Background)
	assert.Equal(t, HeightTall, top.Height)

	scrolled := Style(true, true)
	assert.NotEqual(t, "transparent", scrolled.Background)
	assert.Equal(t, HeightSolid, scrolled.Height)
}

func TestStyleOtherPagesAlwaysSolid(t *testing.T) {
	assert.Equal(t, Style(false, false), Style(false, true))
	assert.NotEqual(t, "transparent", Style(false, false).Background)
}

func TestScrollTrackerThreshold(t *testing.T) {
	var tr ScrollTracker

	tr.Track(ScrollThreshold)
	tr.Flush()
	assert.False(t, tr.IsScrolled(), "threshold itself is not past")

	tr.Track(ScrollThreshold + 1)
	tr.Flush()
	assert.True(t, tr.IsScrolled())
}

func TestScrollTrackerCoalescesBetweenFlushes(t *testing.T) {
	var tr ScrollTracker

	assert.True(t, tr.Track(10), "first track schedules a flush")
	assert.False(t, tr.Track(50), "second track piggybacks on the scheduled flush")
	assert.False(t, tr.Track(120))

	tr.Flush()
	assert.Equal(t, 120, tr.Offset(), "only the latest offset applies")

	assert.True(t, tr.Track(5), "after a flush the next track schedules again")
}
