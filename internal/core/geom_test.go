package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(4, 6)

	assert.Equal(t, V(5, 8), a.Add(b))
	assert.Equal(t, V(3, 4), b.Sub(a))
	assert.Equal(t, V(2, 4), a.Scale(2))
	assert.InDelta(t, 5.0, b.Sub(a).Len(), 1e-9)
}

func TestVec2Angle(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want float64
	}{
		{"right", V(400, 0), 0},
		{"up", V(0, 1), math.Pi / 2},
		{"left", V(-1, 0), math.Pi},
		{"down-right", V(1, -1), -math.Pi / 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.v.Angle(), 1e-9)
		})
	}
}

func TestLerpClampsProgress(t *testing.T) {
	a := V(0, 0)
	b := V(10, -20)

	assert.Equal(t, a, Lerp(a, b, -1))
	assert.Equal(t, V(5, -10), Lerp(a, b, 0.5))
	assert.Equal(t, b, Lerp(a, b, 2))
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y))
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ClampF(tc.val, tc.min, tc.max))
	}
}
