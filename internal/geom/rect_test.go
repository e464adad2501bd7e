package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Size(t *testing.T) {
	r := R(10, 10, 50, 60)
	assert.Equal(t, 40, r.Dx())
	assert.Equal(t, 50, r.Dy())
	assert.False(t, r.Empty())

	inverted := R(50, 60, 10, 10)
	assert.Equal(t, 0, inverted.Dx())
	assert.Equal(t, 0, inverted.Dy())
	assert.True(t, inverted.Empty())

	assert.Equal(t, R(3, 4, 8, 10), WH(3, 4, 5, 6))
}

func TestRect_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", R(0, 0, 10, 10), R(0, 0, 10, 10), true},
		{"partial", R(0, 0, 10, 10), R(5, 5, 15, 15), true},
		{"touching edges", R(0, 0, 10, 10), R(10, 0, 20, 10), false},
		{"disjoint", R(0, 0, 10, 10), R(20, 20, 30, 30), false},
		{"contained", R(0, 0, 100, 100), R(40, 40, 41, 41), true},
		{"empty", R(0, 0, 10, 10), R(5, 5, 5, 9), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	assert.Equal(t, R(5, 5, 10, 10), R(0, 0, 10, 10).Intersect(R(5, 5, 15, 15)))
	assert.Equal(t, Rect{}, R(0, 0, 10, 10).Intersect(R(10, 10, 20, 20)))
	assert.Equal(t, R(0, 190, 320, 200), R(-5, 190, 400, 260).Intersect(R(0, 0, 320, 200)))
}

func TestRect_In(t *testing.T) {
	screen := R(0, 0, 320, 200)
	assert.True(t, R(10, 10, 50, 60).In(screen))
	assert.False(t, R(300, 10, 330, 60).In(screen))
	assert.True(t, Rect{}.In(screen))
}

func TestRect_ClipBottom(t *testing.T) {
	assert.Equal(t, R(0, 180, 10, 192), R(0, 180, 10, 200).ClipBottom(192))
	assert.Equal(t, R(0, 100, 10, 150), R(0, 100, 10, 150).ClipBottom(192))
	// entirely below the limit collapses to zero height
	assert.True(t, R(0, 195, 10, 200).ClipBottom(192).Empty())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(12, 0, 10))
	assert.Equal(t, uint8(7), Clamp[uint8](9, 1, 7))
}

func TestRect_String(t *testing.T) {
	assert.Equal(t, "(10,10)-(50,60)", R(10, 10, 50, 60).String())
}
