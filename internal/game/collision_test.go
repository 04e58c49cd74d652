package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyfall/internal/physics"
)

type recordingReactor struct {
	kills     int
	destroyed []EntityID
}

func (r *recordingReactor) KillPlayer() bool {
	r.kills++
	return r.kills == 1
}

func (r *recordingReactor) DestroyObstacle(id EntityID) bool {
	r.destroyed = append(r.destroyed, id)
	return true
}

func TestClassify(t *testing.T) {
	tests := []struct {
		a, b physics.Category
		want Reaction
	}{
		{physics.CategoryPlayer, physics.CategoryObstacle, ReactionPlayerDeath},
		{physics.CategoryObstacle, physics.CategoryPlayer, ReactionPlayerDeath},
		{physics.CategoryProjectile, physics.CategoryObstacle, ReactionObstacleDestroyed},
		{physics.CategoryObstacle, physics.CategoryProjectile, ReactionObstacleDestroyed},
		{physics.CategoryPlayer, physics.CategoryProjectile, ReactionNone},
		{physics.CategoryObstacle, physics.CategoryObstacle, ReactionNone},
		{physics.CategoryDecoration, physics.CategoryPlayer, ReactionNone},
		{physics.CategoryDecoration, physics.CategoryObstacle, ReactionNone},
	}

	for _, tc := range tests {
		t.Run(tc.a.String()+"-"+tc.b.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.a, tc.b))
		})
	}
}

func TestResolveDestroysTheObstacleSide(t *testing.T) {
	web := EntityID{Index: 1, Gen: 1}
	bird := EntityID{Index: 2, Gen: 1}

	r := &recordingReactor{}
	res := NewResolver(r)

	got := res.Resolve(physics.CategoryProjectile, physics.CategoryObstacle, web, bird)
	assert.Equal(t, ReactionObstacleDestroyed, got.Reaction)
	assert.True(t, got.Applied)

	res.Resolve(physics.CategoryObstacle, physics.CategoryProjectile, bird, web)
	assert.Equal(t, []EntityID{bird, bird}, r.destroyed)
	assert.Zero(t, r.kills)
}

func TestResolveReportPlayerDeathWins(t *testing.T) {
	hero := EntityID{Index: 0, Gen: 1}
	bird := EntityID{Index: 1, Gen: 1}
	web := EntityID{Index: 2, Gen: 1}

	body := func(id EntityID, c physics.Category) physics.Body {
		return physics.Body{Handle: id.Handle(), Category: c, Radius: 1}
	}
	contacts := []physics.Contact{
		{A: body(web, physics.CategoryProjectile), B: body(bird, physics.CategoryObstacle)},
		{A: body(bird, physics.CategoryObstacle), B: body(hero, physics.CategoryPlayer)},
	}

	r := &recordingReactor{}
	out := NewResolver(r).ResolveReport(contacts)

	require.Len(t, out, 2)
	assert.Equal(t, ReactionPlayerDeath, out[0].Reaction)
	assert.True(t, out[0].Applied)
	assert.Equal(t, ReactionNone, out[1].Reaction)
	assert.Equal(t, 1, r.kills)
	assert.Empty(t, r.destroyed, "obstacle that hit the player must not be destroyed")
}

func TestResolveReportRepeatedDeathIsNoop(t *testing.T) {
	hero := EntityID{Index: 0, Gen: 1}
	a := EntityID{Index: 1, Gen: 1}
	b := EntityID{Index: 2, Gen: 1}

	contacts := []physics.Contact{
		{A: physics.Body{Handle: hero.Handle(), Category: physics.CategoryPlayer}, B: physics.Body{Handle: a.Handle(), Category: physics.CategoryObstacle}},
		{A: physics.Body{Handle: b.Handle(), Category: physics.CategoryObstacle}, B: physics.Body{Handle: hero.Handle(), Category: physics.CategoryPlayer}},
	}

	out := NewResolver(&recordingReactor{}).ResolveReport(contacts)
	require.Len(t, out, 2)
	assert.True(t, out[0].Applied)
	assert.False(t, out[1].Applied)
}
