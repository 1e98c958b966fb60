package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/adampresley/simplegallery/pkg/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

/*
Document is a dom.Document backed by a parsed HTML tree. Click handlers
registered through OnClick are kept per node and fired with Click, which
stands in for the browser's event loop.
*/
type Document struct {
	doc      *goquery.Document
	handlers map[*html.Node][]func()
}

var _ dom.Document = (*Document)(nil)

func Parse(markup string) (*Document, error) {
	return Read(strings.NewReader(markup))
}

func Read(r io.Reader) (*Document, error) {
	var (
		err error
		doc *goquery.Document
	)

	if doc, err = goquery.NewDocumentFromReader(r); err != nil {
		return nil, fmt.Errorf("error parsing html document: %w", err)
	}

	return &Document{
		doc:      doc,
		handlers: map[*html.Node][]func(){},
	}, nil
}

func (d *Document) Root() dom.Element {
	return d.wrap(d.doc.Find("html").First())
}

func (d *Document) Query(selector string) (dom.Element, bool) {
	return d.first(d.doc.Find(selector))
}

func (d *Document) QueryAll(selector string) []dom.Element {
	result := []dom.Element{}

	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		result = append(result, d.wrap(s))
	})

	return result
}

func (d *Document) ByID(id string) (dom.Element, bool) {
	return d.first(d.doc.Find("#" + id))
}

func (d *Document) CreateElement(tag string) dom.Element {
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}

	return d.wrap(goquery.NewDocumentFromNode(node).Selection)
}

/*
Click fires the handlers registered on el, in registration order.
*/
func (d *Document) Click(el dom.Element) {
	e, ok := el.(*Element)
	if !ok || e.sel.Length() == 0 {
		return
	}

	for _, handler := range d.handlers[e.sel.Get(0)] {
		handler()
	}
}

/*
ClickID clicks the element with the given id. It reports false when no
such element exists.
*/
func (d *Document) ClickID(id string) bool {
	el, ok := d.ByID(id)
	if !ok {
		return false
	}

	d.Click(el)
	return true
}

func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

func (d *Document) first(s *goquery.Selection) (dom.Element, bool) {
	if s.Length() == 0 {
		return nil, false
	}

	return d.wrap(s.First()), true
}

func (d *Document) wrap(s *goquery.Selection) *Element {
	return &Element{doc: d, sel: s}
}
