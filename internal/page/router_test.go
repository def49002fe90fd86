package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorLandsHeaderHeightAboveTarget(t *testing.T) {
	f := newFixture(t)
	f.init(t)

	// contact is at 2400 with an 80px header: destination 2320, within the
	// scrollable range (3000 - 600 = 2400).
	f.eng.Anchor("contact")
	require.True(t, f.eng.Router.Animating())

	f.frame(scrollDuration)
	assert.False(t, f.eng.Router.Animating())
	assert.Equal(t, 2320, f.eng.ScrollTop())
}

func TestAnchorUnknownFragmentIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.init(t)

	f.eng.Anchor("missing")
	assert.False(t, f.eng.Router.Animating())
	assert.Zero(t, f.eng.ScrollTop())
}

func TestAnchorClampsToScrollableRange(t *testing.T) {
	f := newFixture(t)
	f.init(t)
	f.layout.place(f.doc.ElementByID("contact"), 2900, 100)

	f.eng.Anchor("contact")
	f.frame(scrollDuration)

	// dest 2900-80=2820 clamps to docHeight-viewport = 2400.
	assert.Equal(t, 2400, f.eng.ScrollTop())
}

func TestAnchorAboveCurrentOffsetClampsToTop(t *testing.T) {
	f := newFixture(t)
	f.init(t)
	f.eng.ScrollTo(1000)

	// hero sits at 0; dest 0-80 clamps to 0.
	f.eng.Anchor("hero")
	f.frame(scrollDuration)
	assert.Zero(t, f.eng.ScrollTop())
}

func TestAnchorProgressIsMonotonicAndEased(t *testing.T) {
	f := newFixture(t)
	f.init(t)

	f.eng.Anchor("contact")

	prev := 0
	var positions []int
	for f.eng.Router.Animating() {
		f.frame(16 * time.Millisecond)
		pos := f.eng.ScrollTop()
		assert.GreaterOrEqual(t, pos, prev)
		positions = append(positions, pos)
		prev = pos
	}
	require.NotEmpty(t, positions)
	assert.Equal(t, 2320, prev)

	// Ease-out: the first half of the frames covers most of the distance.
	mid := positions[len(positions)/2]
	assert.Greater(t, mid, 2320/2)
}

func TestAnchorRetargetsMidFlight(t *testing.T) {
	f := newFixture(t)
	f.init(t)

	f.eng.Anchor("contact")
	f.frames(5)
	midway := f.eng.ScrollTop()
	require.Positive(t, midway)

	// A second activation restarts the animation from the current offset.
	f.eng.Anchor("about")
	f.frame(scrollDuration)
	assert.Equal(t, 720, f.eng.ScrollTop()) // 800 - 80 header
}
