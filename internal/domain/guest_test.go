package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanionEmail(t *testing.T) {
	assert.Equal(t, "anna+companion1a2b3c4d@example.com", CompanionEmail("anna@example.com", "1a2b3c4d"))
	assert.Equal(t, "broken+companionff", CompanionEmail("broken", "ff"))
}

func TestGuestCannotNestCompanions(t *testing.T) {
	owner := int64(7)
	account := Guest{ID: 7}
	companion := Guest{ID: 8, MadeBy: &owner}

	assert.NoError(t, account.CanOwnCompanions())
	assert.ErrorIs(t, companion.CanOwnCompanions(), ErrNestedCompanion)
	assert.True(t, companion.IsOwnedBy(7))
	assert.False(t, companion.IsOwnedBy(9))
}

func TestActorPermissions(t *testing.T) {
	assert.True(t, Actor{UserID: 1, Role: RoleGuest}.CanManageBooking(1))
	assert.False(t, Actor{UserID: 2, Role: RoleGuest}.CanManageBooking(1))
	assert.True(t, Actor{UserID: 3, Role: RoleEmployee}.CanManageBooking(1))
	assert.Equal(t, RoleGuest, ParseRole("superuser"))
}

func TestFriendGroupPairs(t *testing.T) {
	g := FriendGroup{OwnerID: 1, MemberIDs: []int64{2, 3, 1, 4}}

	pairs := g.Pairs()

	// owner↔2,3,4 + 2-3, 2-4, 3-4; owner listed as member adds nothing new
	assert.Len(t, pairs, 6)
	assert.Contains(t, pairs, Pair{A: 1, B: 2})
	assert.Contains(t, pairs, Pair{A: 3, B: 4})
	for _, p := range pairs {
		assert.NotEqual(t, p.A, p.B)
	}
}

func TestTourDisplayName(t *testing.T) {
	tour := Tour{Name: "Old Town Walk", Names: Localized{"en": "Old Town Walk", "ru": "Прогулка по старому городу"}}

	assert.Equal(t, "Прогулка по старому городу", tour.DisplayName("ru"))
	assert.Equal(t, "Old Town Walk", tour.DisplayName("de"))
	assert.Equal(t, "X", (&Tour{Name: "X"}).DisplayName("ru"))
}
