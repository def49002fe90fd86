package page

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterFrames is the nominal step count plus slack for floating-point
// accumulation in the per-frame increments.
const counterFrames = 130

func TestRevealFiresAtTenPercentVisibility(t *testing.T) {
	f := newFixture(t)
	f.init(t)
	about := f.doc.ElementByID("about") // top 800, height 400

	// viewBottom = 0 + 600 - 50 = 550: not yet visible.
	require.False(t, about.HasClass("visible"))

	// viewBottom = 839: 39px of 400 visible, just under threshold.
	f.eng.ScrollTo(289)
	assert.False(t, about.HasClass("visible"))

	// viewBottom = 840: exactly 10% visible.
	f.eng.ScrollTo(290)
	assert.True(t, about.HasClass("visible"))
}

func TestRevealClassIsNeverRemoved(t *testing.T) {
	f := newFixture(t)
	f.init(t)
	about := f.doc.ElementByID("about")

	f.eng.ScrollTo(400)
	require.True(t, about.HasClass("visible"))

	f.eng.ScrollTo(0)
	assert.True(t, about.HasClass("visible"))
}

func TestCountersStartAtHalfVisibility(t *testing.T) {
	f := newFixture(t)
	f.init(t)
	projects := f.doc.ElementByID("count-projects")

	// Stats at 1500/400: scrolling to 1100 shows 150px, under half.
	f.eng.ScrollTo(1100)
	assert.False(t, f.eng.Scroll.CountersRunning())

	// 1300 shows 350px of 400: over half, counters reset to "0+".
	f.eng.ScrollTo(1300)
	assert.True(t, f.eng.Scroll.CountersRunning())
	assert.Equal(t, "0+", projects.Text())
}

func TestCountersFinishExactlyOnTarget(t *testing.T) {
	f := newFixture(t)
	f.init(t)
	f.eng.ScrollTo(1300)
	require.True(t, f.eng.Scroll.CountersRunning())

	f.frames(counterFrames)

	assert.False(t, f.eng.Scroll.CountersRunning())
	assert.Equal(t, "10+", f.doc.ElementByID("count-projects").Text())
	assert.Equal(t, "9+", f.doc.ElementByID("count-clients").Text())
	assert.Equal(t, "1+", f.doc.ElementByID("count-years").Text())
	assert.Equal(t, "15+", f.doc.ElementByID("count-tech").Text())
}

func TestCounterTextIsMonotonic(t *testing.T) {
	f := newFixture(t)
	f.init(t)
	f.eng.ScrollTo(1300)
	projects := f.doc.ElementByID("count-projects")

	prev := 0
	for range counterFrames {
		f.frames(1)
		n, err := strconv.Atoi(strings.TrimSuffix(projects.Text(), "+"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, prev)
		assert.LessOrEqual(t, n, 10)
		prev = n
	}
	assert.Equal(t, 10, prev)
}

func TestCountersNeverRestart(t *testing.T) {
	f := newFixture(t)
	f.init(t)
	projects := f.doc.ElementByID("count-projects")

	f.eng.ScrollTo(1300)
	f.frames(counterFrames)
	require.Equal(t, "10+", projects.Text())

	// Leave the viewport and come back: the stats container was unobserved
	// on the first trigger, so nothing resets.
	f.eng.ScrollTo(0)
	f.eng.ScrollTo(1300)
	f.frames(10)

	assert.Equal(t, "10+", projects.Text())
	assert.False(t, f.eng.Scroll.CountersRunning())
}

func TestParallaxTransformFollowsScroll(t *testing.T) {
	f := newFixture(t)
	f.init(t)
	f.frames(1) // settle the init-time update

	f.eng.ScrollTo(150)
	f.frames(1)

	assert.Equal(t,
		"transform: translateY(75.0px) rotate(3.00deg)",
		f.ctx.Refs.Hero.Attr("style"))
}

func TestScrollUpdatesCoalesceIntoOneFrame(t *testing.T) {
	f := newFixture(t)
	f.init(t)
	f.frames(1)

	// A burst of scroll events before the next frame leaves exactly one
	// pending update, computed from the final offset.
	f.eng.ScrollTo(10)
	f.eng.ScrollTo(20)
	f.eng.ScrollTo(40)
	require.True(t, f.ctx.Clock.Active())

	f.frames(1)
	assert.Equal(t,
		"transform: translateY(20.0px) rotate(0.80deg)",
		f.ctx.Refs.Hero.Attr("style"))
	assert.False(t, f.ctx.Clock.Active())
}

func TestHeaderShadingPastBoundary(t *testing.T) {
	f := newFixture(t)
	f.init(t)
	header := f.ctx.Refs.Header

	// Exactly at the boundary: still unshaded.
	f.eng.ScrollTo(100)
	f.frames(1)
	assert.False(t, header.HasClass("scrolled"))

	f.eng.ScrollTo(101)
	f.frames(1)
	assert.True(t, header.HasClass("scrolled"))
	assert.Equal(t, headerStyleLight, header.Attr("style"))

	f.eng.ScrollTo(50)
	f.frames(1)
	assert.False(t, header.HasClass("scrolled"))
	assert.Empty(t, header.Attr("style"))
}

func TestHeaderShadingMatchesDarkTheme(t *testing.T) {
	f := newFixture(t)
	f.signal.dark = true
	f.init(t)

	f.eng.ScrollTo(150)
	f.frames(1)

	assert.Equal(t, headerStyleDark, f.ctx.Refs.Header.Attr("style"))
}

func TestCounterWithBadTargetIsSkipped(t *testing.T) {
	const pg = `<html><body>
	  <section id="stats">
	    <span class="counter" data-target="oops">0</span>
	    <span class="counter" id="ok" data-target="5">0</span>
	  </section>
	</body></html>`
	f := newFixtureHTML(t, pg)
	f.layout.place(f.ctx.Refs.Stats, 0, 100)
	f.init(t)

	require.True(t, f.eng.Scroll.CountersRunning())
	f.frames(counterFrames)
	assert.Equal(t, "5+", f.doc.ElementByID("ok").Text())
	assert.False(t, f.eng.Scroll.CountersRunning())
}
