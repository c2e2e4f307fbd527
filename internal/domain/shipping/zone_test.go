package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignerAssign(t *testing.T) {
	a := NewAssigner()

	t.Run("local zip near the origin lands in the local band", func(t *testing.T) {
		z := a.Assign("John Doe\n123 Main St\nDallas, TX 75201")
		assert.Equal(t, "local", z.ID)
		assert.Equal(t, 1, z.Rank)
		require.NotNil(t, z.Miles)
		assert.Less(t, *z.Miles, 50.0)
	})

	t.Run("neighboring state is regional", func(t *testing.T) {
		z := a.Assign("456 Elm St\nOklahoma City, OK 73101")
		assert.Equal(t, "regional", z.ID)
	})

	t.Run("west coast is far", func(t *testing.T) {
		z := a.Assign("789 Ocean Ave\nLos Angeles, CA 90001")
		assert.Equal(t, "far", z.ID)
		require.NotNil(t, z.Miles)
		assert.Greater(t, *z.Miles, 1000.0)
	})

	t.Run("skips the country line", func(t *testing.T) {
		z := a.Assign("789 Ocean Ave\nLos Angeles, CA 90001\nUnited States")
		assert.Equal(t, "far", z.ID)
	})

	t.Run("zip prefix range overrides the state centroid", func(t *testing.T) {
		// El Paso is ~570mi from Dallas; the TX centroid alone would
		// put it closer.
		z := a.Assign("1 Border Rd\nEl Paso, TX 79901")
		assert.Equal(t, "mid", z.ID)
	})

	t.Run("zip plus four is accepted", func(t *testing.T) {
		z := a.Assign("Dallas, TX 75201-1234")
		assert.Equal(t, "local", z.ID)
	})

	t.Run("unresolvable address defaults to the third band", func(t *testing.T) {
		z := a.Assign("somewhere without a zip")
		assert.Equal(t, "mid", z.ID)
		assert.Nil(t, z.Miles)
	})

	t.Run("unknown state with unmatched zip defaults to the third band", func(t *testing.T) {
		z := a.Assign("Honolulu, HI 96801")
		assert.Equal(t, "mid", z.ID)
		assert.Nil(t, z.Miles)
	})

	t.Run("empty address yields the zero zone", func(t *testing.T) {
		z := a.Assign("   ")
		assert.True(t, z.IsZero())
		assert.Equal(t, "Unknown", z.DisplayName())
	})

	t.Run("bands sort by ascending rank", func(t *testing.T) {
		prev := 0
		for _, b := range bands {
			assert.Greater(t, b.rank, prev)
			prev = b.rank
		}
	})
}

func TestHaversineMiles(t *testing.T) {
	// Dallas to Houston is roughly 225 miles great-circle.
	d := haversineMiles(32.7767, -96.7970, 29.7604, -95.3698)
	assert.InDelta(t, 225, d, 15)

	// Zero distance for identical points.
	assert.InDelta(t, 0, haversineMiles(32.7, -96.7, 32.7, -96.7), 0.001)
}
