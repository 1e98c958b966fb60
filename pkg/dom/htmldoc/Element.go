package htmldoc

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/adampresley/simplegallery/pkg/dom"
)

type Element struct {
	doc *Document
	sel *goquery.Selection
}

var _ dom.Element = (*Element)(nil)

func (e *Element) Query(selector string) (dom.Element, bool) {
	return e.doc.first(e.sel.Find(selector))
}

func (e *Element) Attribute(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e *Element) SetAttribute(name, value string) {
	e.sel.SetAttr(name, value)
}

func (e *Element) SetStyle(property, value string) {
	style, _ := e.sel.Attr("style")
	declarations := parseStyle(style)

	for i, d := range declarations {
		if d.property == property {
			declarations[i].value = value
			e.sel.SetAttr("style", formatStyle(declarations))
			return
		}
	}

	declarations = append(declarations, declaration{property: property, value: value})
	e.sel.SetAttr("style", formatStyle(declarations))
}

func (e *Element) Style(property string) string {
	style, _ := e.sel.Attr("style")

	for _, d := range parseStyle(style) {
		if d.property == property {
			return d.value
		}
	}

	return ""
}

func (e *Element) SetText(text string) {
	e.sel.SetText(text)
}

func (e *Element) Text() string {
	return e.sel.Text()
}

func (e *Element) SetInnerHTML(markup string) {
	e.sel.SetHtml(markup)
}

func (e *Element) AppendChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok {
		return
	}

	e.sel.AppendSelection(c.sel)
}

func (e *Element) SetDisabled(disabled bool) {
	if disabled {
		e.sel.SetAttr("disabled", "")
		return
	}

	e.sel.RemoveAttr("disabled")
}

func (e *Element) Disabled() bool {
	_, ok := e.sel.Attr("disabled")
	return ok
}

func (e *Element) AddClass(name string) {
	e.sel.AddClass(name)
}

func (e *Element) RemoveClass(name string) {
	e.sel.RemoveClass(name)
}

func (e *Element) HasClass(name string) bool {
	return e.sel.HasClass(name)
}

func (e *Element) OnClick(handler func()) {
	if e.sel.Length() == 0 {
		return
	}

	node := e.sel.Get(0)
	e.doc.handlers[node] = append(e.doc.handlers[node], handler)
}

type declaration struct {
	property string
	value    string
}

/*
Font stacks carry commas and quotes but never semicolons, so splitting on
";" and the first ":" is enough for inline styles.
*/
func parseStyle(style string) []declaration {
	result := []declaration{}

	for _, part := range strings.Split(style, ";") {
		property, value, found := strings.Cut(part, ":")
		if !found {
			continue
		}

		property = strings.TrimSpace(property)
		if property == "" {
			continue
		}

		result = append(result, declaration{
			property: property,
			value:    strings.TrimSpace(value),
		})
	}

	return result
}

func formatStyle(declarations []declaration) string {
	parts := make([]string, 0, len(declarations))

	for _, d := range declarations {
		parts = append(parts, d.property+": "+d.value)
	}

	return strings.Join(parts, "; ")
}
