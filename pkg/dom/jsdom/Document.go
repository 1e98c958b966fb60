//go:build js && wasm

// Package jsdom adapts the browser DOM, through syscall/js, to the dom
// interfaces.
package jsdom

import (
	"syscall/js"

	"github.com/adampresley/simplegallery/pkg/dom"
)

type Document struct {
	document js.Value
}

var _ dom.Document = Document{}

func NewDocument() Document {
	return Document{
		document: js.Global().Get("document"),
	}
}

/*
Ready runs fn once the DOM has been parsed. If parsing already finished,
fn runs immediately.
*/
func (d Document) Ready(fn func()) {
	if d.document.Get("readyState").String() != "loading" {
		fn()
		return
	}

	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})

	d.document.Call("addEventListener", "DOMContentLoaded", cb)
}

func (d Document) Root() dom.Element {
	return Element{value: d.document.Get("documentElement")}
}

func (d Document) Query(selector string) (dom.Element, bool) {
	return wrap(d.document.Call("querySelector", selector))
}

func (d Document) QueryAll(selector string) []dom.Element {
	return wrapAll(d.document.Call("querySelectorAll", selector))
}

func (d Document) ByID(id string) (dom.Element, bool) {
	return wrap(d.document.Call("getElementById", id))
}

func (d Document) CreateElement(tag string) dom.Element {
	return Element{value: d.document.Call("createElement", tag)}
}

func wrap(v js.Value) (dom.Element, bool) {
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}

	return Element{value: v}, true
}

func wrapAll(list js.Value) []dom.Element {
	length := list.Length()
	result := make([]dom.Element, 0, length)

	for i := 0; i < length; i++ {
		result = append(result, Element{value: list.Index(i)})
	}

	return result
}
