package htmldoc

import (
	"testing"

	"github.com/adampresley/simplegallery/pkg/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<html><body>
	<div class="footer"><p>old footer</p></div>
	<div id="box" style="color: red">Box</div>
	<button id="go">Go</button>
	<ul id="list"></ul>
</body></html>`

func TestDocument_Lookups(t *testing.T) {
	doc, err := Parse(testPage)
	require.NoError(t, err)

	_, ok := doc.Query(".footer p")
	assert.True(t, ok)

	_, ok = doc.Query(".missing")
	assert.False(t, ok)

	_, ok = doc.ByID("box")
	assert.True(t, ok)

	_, ok = doc.ByID("nope")
	assert.False(t, ok)

	assert.Len(t, doc.QueryAll("div"), 2)
	assert.Empty(t, doc.QueryAll("section"))
}

func TestElement_Style(t *testing.T) {
	doc, err := Parse(testPage)
	require.NoError(t, err)

	box, ok := doc.ByID("box")
	require.True(t, ok)

	assert.Equal(t, "red", box.Style("color"))
	assert.False(t, dom.IsHidden(box))

	dom.Hide(box)
	assert.True(t, dom.IsHidden(box))
	assert.Equal(t, "red", box.Style("color"))

	dom.Show(box)
	assert.Equal(t, "block", box.Style("display"))

	style, _ := box.Attribute("style")
	assert.Equal(t, "color: red; display: block", style)
}

func TestElement_CustomPropertyWithFontStack(t *testing.T) {
	doc, err := Parse(testPage)
	require.NoError(t, err)

	root := doc.Root()
	root.SetStyle("--title-font", "'Brand', -apple-system, sans-serif")

	assert.Equal(t, "'Brand', -apple-system, sans-serif", root.Style("--title-font"))
}

func TestElement_Classes(t *testing.T) {
	doc, err := Parse(testPage)
	require.NoError(t, err)

	box, _ := doc.ByID("box")

	box.AddClass("active")
	assert.True(t, box.HasClass("active"))

	box.RemoveClass("active")
	assert.False(t, box.HasClass("active"))
}

func TestElement_Disabled(t *testing.T) {
	doc, err := Parse(testPage)
	require.NoError(t, err)

	button, _ := doc.ByID("go")
	assert.False(t, button.Disabled())

	button.SetDisabled(true)
	assert.True(t, button.Disabled())

	button.SetDisabled(false)
	assert.False(t, button.Disabled())
}

func TestElement_InnerHTML(t *testing.T) {
	doc, err := Parse(testPage)
	require.NoError(t, err)

	p, _ := doc.Query(".footer p")
	p.SetInnerHTML(`© 2024 <a href="https://example.com">Example</a>`)

	link, ok := p.Query("a")
	require.True(t, ok)

	href, _ := link.Attribute("href")
	assert.Equal(t, "https://example.com", href)
	assert.Equal(t, "© 2024 Example", p.Text())
}

func TestDocument_CreateAppendAndClick(t *testing.T) {
	doc, err := Parse(testPage)
	require.NoError(t, err)

	list, _ := doc.ByID("list")
	clicked := 0

	item := doc.CreateElement("li")
	item.SetText("first")
	item.AddClass("entry")
	item.OnClick(func() { clicked++ })
	list.AppendChild(item)

	entries := doc.QueryAll("#list .entry")
	require.Len(t, entries, 1)
	assert.Equal(t, "first", entries[0].Text())

	doc.Click(entries[0])
	assert.Equal(t, 1, clicked)
}

func TestDocument_ClickID(t *testing.T) {
	doc, err := Parse(testPage)
	require.NoError(t, err)

	button, _ := doc.ByID("go")
	order := []string{}

	button.OnClick(func() { order = append(order, "a") })
	button.OnClick(func() { order = append(order, "b") })

	assert.True(t, doc.ClickID("go"))
	assert.Equal(t, []string{"a", "b"}, order)

	assert.False(t, doc.ClickID("missing"))
}
