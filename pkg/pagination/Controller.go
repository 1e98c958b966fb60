package pagination

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/adampresley/simplegallery/pkg/dom"
)

var (
	ErrPageOutOfRange = errors.New("page out of range")
)

type Selectors struct {
	Album             string
	Container         string
	NumbersID         string
	PrevID            string
	NextID            string
	InfoID            string
	NumberButtonClass string
	ActiveClass       string
	PageAttribute     string
}

func DefaultSelectors() Selectors {
	return Selectors{
		Album:             ".album",
		Container:         ".pagination-container",
		NumbersID:         "pagination-numbers",
		PrevID:            "prev-btn",
		NextID:            "next-btn",
		InfoID:            "pagination-info",
		NumberButtonClass: "pagination-number",
		ActiveClass:       "active",
		PageAttribute:     "data-page",
	}
}

type ControllerConfig struct {
	Document     dom.Document
	ItemsPerPage int
	Selectors    *Selectors
}

/*
Controller owns the pagination state for one document. Click handlers
close over the controller; ShowPage is the only place the state changes.
*/
type Controller struct {
	doc       dom.Document
	selectors Selectors
	state     State

	albums  []dom.Element
	buttons []pageButton

	prev dom.Element
	next dom.Element
	info dom.Element
}

type pageButton struct {
	page    int
	element dom.Element
}

func NewController(config ControllerConfig) *Controller {
	selectors := DefaultSelectors()

	if config.Selectors != nil {
		selectors = *config.Selectors
	}

	if config.ItemsPerPage <= 0 {
		config.ItemsPerPage = ItemsPerPage
	}

	return &Controller{
		doc:       config.Document,
		selectors: selectors,
		state:     State{ItemsPerPage: config.ItemsPerPage},
	}
}

/*
Init finds the albums and, when there is more than one page of them,
numbers the albums, builds the page buttons, wires the navigation and
shows page 1. It reports whether the collection is paginated.
*/
func (c *Controller) Init() bool {
	c.albums = c.doc.QueryAll(c.selectors.Album)

	if len(c.albums) == 0 {
		return false
	}

	c.state = NewState(len(c.albums), c.state.ItemsPerPage)

	if !c.state.Paginated() {
		if container, ok := c.doc.Query(c.selectors.Container); ok {
			dom.Hide(container)
		}

		return false
	}

	for index, album := range c.albums {
		album.SetAttribute(c.selectors.PageAttribute, strconv.Itoa(PageOf(index, c.state.ItemsPerPage)))
	}

	c.prev, _ = c.doc.ByID(c.selectors.PrevID)
	c.next, _ = c.doc.ByID(c.selectors.NextID)
	c.info, _ = c.doc.ByID(c.selectors.InfoID)

	c.renderPageButtons()
	c.wireNavigation()

	_ = c.ShowPage(1)

	slog.Debug("pagination initialized", "totalItems", c.state.TotalItems, "totalPages", c.state.TotalPages)
	return true
}

func (c *Controller) State() State {
	return c.state
}

/*
ShowPage makes page the current page and recomputes everything derived
from it. Pages outside 1..TotalPages are rejected and nothing changes.
*/
func (c *Controller) ShowPage(page int) error {
	if !c.state.InRange(page) {
		return fmt.Errorf("%w: %d not in 1..%d", ErrPageOutOfRange, page, c.state.TotalPages)
	}

	c.state.CurrentPage = page

	for _, album := range c.albums {
		dom.Hide(album)
	}

	start, end := c.state.Range()

	for i := start; i < end; i++ {
		dom.Show(c.albums[i])
	}

	c.refresh()
	return nil
}

func (c *Controller) Prev() {
	if c.state.CurrentPage > 1 {
		_ = c.ShowPage(c.state.CurrentPage - 1)
	}
}

func (c *Controller) Next() {
	if c.state.CurrentPage < c.state.TotalPages {
		_ = c.ShowPage(c.state.CurrentPage + 1)
	}
}

func (c *Controller) renderPageButtons() {
	c.buttons = []pageButton{}

	numbers, ok := c.doc.ByID(c.selectors.NumbersID)
	if !ok {
		return
	}

	numbers.SetInnerHTML("")

	for page := 1; page <= c.state.TotalPages; page++ {
		label := strconv.Itoa(page)

		button := c.doc.CreateElement("button")
		button.AddClass(c.selectors.NumberButtonClass)
		button.SetAttribute(c.selectors.PageAttribute, label)
		button.SetText(label)

		numbers.AppendChild(button)
		c.buttons = append(c.buttons, pageButton{page: page, element: button})
	}
}

func (c *Controller) wireNavigation() {
	if c.prev != nil {
		c.prev.OnClick(c.Prev)
	}

	if c.next != nil {
		c.next.OnClick(c.Next)
	}

	for _, b := range c.buttons {
		page := b.page

		b.element.OnClick(func() {
			_ = c.ShowPage(page)
		})
	}
}

func (c *Controller) refresh() {
	if c.info != nil {
		c.info.SetText(c.state.Status())
	}

	if c.prev != nil {
		c.prev.SetDisabled(c.state.PrevDisabled())
	}

	if c.next != nil {
		c.next.SetDisabled(c.state.NextDisabled())
	}

	for _, b := range c.buttons {
		b.element.RemoveClass(c.selectors.ActiveClass)

		if b.page == c.state.CurrentPage {
			b.element.AddClass(c.selectors.ActiveClass)
		}
	}
}
