// Package pagination pages the gallery's pre-rendered album elements.
package pagination

import "fmt"

const ItemsPerPage = 9

/*
State is the whole of the paginator's state. Everything shown on the page
(which albums are visible, the status line, button states) is derived
from it.
*/
type State struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

func NewState(totalItems, itemsPerPage int) State {
	return State{
		CurrentPage:  1,
		TotalPages:   TotalPages(totalItems, itemsPerPage),
		TotalItems:   totalItems,
		ItemsPerPage: itemsPerPage,
	}
}

func TotalPages(totalItems, itemsPerPage int) int {
	if totalItems <= 0 || itemsPerPage <= 0 {
		return 0
	}

	return (totalItems + itemsPerPage - 1) / itemsPerPage
}

// PageOf returns the 1-based page for a 0-based item index.
func PageOf(index, itemsPerPage int) int {
	return index/itemsPerPage + 1
}

func (s State) InRange(page int) bool {
	return page >= 1 && page <= s.TotalPages
}

// Range is the half-open interval of item indexes visible on the current page.
func (s State) Range() (start, end int) {
	start = (s.CurrentPage - 1) * s.ItemsPerPage
	end = min(start+s.ItemsPerPage, s.TotalItems)
	return start, end
}

func (s State) Visible(index int) bool {
	start, end := s.Range()
	return index >= start && index < end
}

func (s State) Status() string {
	start, end := s.Range()
	return fmt.Sprintf("显示 %d-%d 项，共 %d 项", start+1, end, s.TotalItems)
}

func (s State) PrevDisabled() bool {
	return s.CurrentPage == 1
}

func (s State) NextDisabled() bool {
	return s.CurrentPage == s.TotalPages
}

func (s State) Paginated() bool {
	return s.TotalPages > 1
}
