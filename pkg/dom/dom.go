// Package dom describes the small slice of a browser document the theme
// enhancements need. Lookups are optional: a missing element is reported
// through the boolean return and callers skip the work instead of failing.
package dom

type Document interface {
	// Root is the document element (<html>). CSS custom properties are
	// written to its inline style.
	Root() Element
	Query(selector string) (Element, bool)
	QueryAll(selector string) []Element
	ByID(id string) (Element, bool)
	CreateElement(tag string) Element
}

type Element interface {
	Query(selector string) (Element, bool)

	Attribute(name string) (string, bool)
	SetAttribute(name, value string)

	// SetStyle sets one inline style property. Custom properties
	// ("--name") are supported.
	SetStyle(property, value string)
	Style(property string) string

	SetText(text string)
	Text() string
	SetInnerHTML(markup string)
	AppendChild(child Element)

	SetDisabled(disabled bool)
	Disabled() bool

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	OnClick(handler func())
}

/*
Show and Hide toggle an element's display the way the theme expects:
"block" for visible albums, "none" for hidden ones.
*/
func Show(el Element) {
	el.SetStyle("display", "block")
}

func Hide(el Element) {
	el.SetStyle("display", "none")
}

func IsHidden(el Element) bool {
	return el.Style("display") == "none"
}
