package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<!DOCTYPE html>
<html class="light">
<head><title>Sample</title></head>
<body>
  <header><span class="brand">Acme</span></header>
  <nav id="menu">
    <a class="item" href="#one">One</a>
    <a class="item" href="#two">Two</a>
    <a class="item">No href</a>
  </nav>
  <section id="one"><p>First <em>section</em>.</p></section>
  <img data-src="a.png">
  <img src="b.png">
</body>
</html>`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseString(sample)
	require.NoError(t, err)
	return doc
}

func TestDocumentLookups(t *testing.T) {
	doc := parseSample(t)

	assert.Equal(t, "Sample", doc.Title())
	assert.Equal(t, "html", doc.DocumentElement().Tag())
	assert.Equal(t, "body", doc.Body().Tag())

	menu := doc.ElementByID("menu")
	assert.True(t, menu.Present())
	assert.Equal(t, "nav", menu.Tag())
	assert.Equal(t, "menu", menu.ID())

	assert.False(t, doc.ElementByID("nope").Present())
	assert.Len(t, doc.ElementsByClass("item"), 3)
	assert.Len(t, doc.ElementsByTag("img"), 2)
	assert.Len(t, doc.ElementsWithAttr("img", "data-src"), 1)
	assert.Empty(t, doc.ElementsByClass("nope"))
}

func TestRefZeroValueIsInertAbsent(t *testing.T) {
	var r Ref

	assert.False(t, r.Present())
	assert.Empty(t, r.Tag())
	assert.Empty(t, r.ID())
	assert.Empty(t, r.Attr("x"))
	assert.Empty(t, r.Text())
	assert.False(t, r.HasAttr("x"))
	assert.False(t, r.HasClass("x"))
	assert.Nil(t, r.Children())
	assert.Nil(t, r.Focusables())

	// Mutations on an absent reference must not panic.
	r.SetAttr("x", "1")
	r.RemoveAttr("x")
	r.AddClass("x")
	r.RemoveClass("x")
	r.ToggleClass("x", true)
	r.SetText("x")
}

func TestRefEqualityTracksIdentity(t *testing.T) {
	doc := parseSample(t)

	a := doc.ElementByID("menu")
	b := doc.ElementByID("menu")
	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.NotEqual(t, a, doc.ElementByID("one"))
}

func TestRefClassOperations(t *testing.T) {
	doc := parseSample(t)
	root := doc.DocumentElement()

	require.True(t, root.HasClass("light"))

	root.AddClass("dark-theme")
	assert.True(t, root.HasClass("dark-theme"))
	assert.Equal(t, "light dark-theme", root.Attr("class"))

	// Adding again doesn't duplicate.
	root.AddClass("dark-theme")
	assert.Equal(t, "light dark-theme", root.Attr("class"))

	root.RemoveClass("light")
	assert.False(t, root.HasClass("light"))
	assert.Equal(t, "dark-theme", root.Attr("class"))

	root.ToggleClass("hidden", true)
	assert.True(t, root.HasClass("hidden"))
	root.ToggleClass("hidden", false)
	assert.False(t, root.HasClass("hidden"))

	// Removing a class that isn't there is harmless.
	root.RemoveClass("nope")
	assert.True(t, root.HasClass("dark-theme"))
}

func TestRefAttrOperations(t *testing.T) {
	doc := parseSample(t)
	img := doc.ElementsWithAttr("img", "data-src")[0]

	assert.Equal(t, "a.png", img.Attr("data-src"))
	assert.False(t, img.HasAttr("src"))

	img.SetAttr("src", img.Attr("data-src"))
	img.RemoveAttr("data-src")

	assert.Equal(t, "a.png", img.Attr("src"))
	assert.False(t, img.HasAttr("data-src"))

	// Overwrite keeps a single attribute.
	img.SetAttr("src", "c.png")
	assert.Equal(t, "c.png", img.Attr("src"))
}

func TestRefTextAndSetText(t *testing.T) {
	doc := parseSample(t)
	section := doc.ElementByID("one")

	assert.Equal(t, "First section.", section.Text())

	section.SetText("replaced")
	assert.Equal(t, "replaced", section.Text())
	assert.Empty(t, section.Children())
}

func TestRefChildrenAndContains(t *testing.T) {
	doc := parseSample(t)
	menu := doc.ElementByID("menu")
	body := doc.Body()

	kids := menu.Children()
	require.Len(t, kids, 3)
	assert.Equal(t, "a", kids[0].Tag())

	assert.True(t, body.Contains(menu))
	assert.True(t, menu.Contains(menu))
	assert.True(t, menu.Contains(kids[2]))
	assert.False(t, menu.Contains(body))
	assert.False(t, menu.Contains(Ref{}))
}

func TestFocusablesScan(t *testing.T) {
	const pg = `<html><body><div id="panel">
	  <button id="b">b</button>
	  <a id="with-href" href="#x">x</a>
	  <a id="plain">no</a>
	  <input id="i">
	  <select id="s"></select>
	  <textarea id="t"></textarea>
	  <div id="custom" tabindex="0">widget</div>
	  <button id="skipped" tabindex="-1">skip</button>
	  <span id="text">nope</span>
	</div></body></html>`
	doc, err := ParseString(pg)
	require.NoError(t, err)

	var ids []string
	for _, el := range doc.ElementByID("panel").Focusables() {
		ids = append(ids, el.ID())
	}
	assert.Equal(t, []string{"b", "with-href", "i", "s", "t", "custom"}, ids)
}

func TestFocusablesReflectsLiveMutations(t *testing.T) {
	const pg = `<html><body><div id="panel">
	  <button id="b" tabindex="1">b</button>
	</div></body></html>`
	doc, err := ParseString(pg)
	require.NoError(t, err)
	panel := doc.ElementByID("panel")

	require.Len(t, panel.Focusables(), 1)

	doc.ElementByID("b").SetAttr("tabindex", "-1")
	assert.Empty(t, panel.Focusables())
}

func TestParseBadInputStillYieldsDocument(t *testing.T) {
	// html.Parse is error-tolerant; a fragment still produces a tree with
	// html/body scaffolding.
	doc, err := ParseString("<p>loose")
	require.NoError(t, err)
	assert.True(t, doc.Body().Present())
	assert.Equal(t, "loose", doc.Body().Text())
}
