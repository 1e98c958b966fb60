//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/adampresley/simplegallery/pkg/dom"
)

type Element struct {
	value js.Value
}

func (e Element) Query(selector string) (dom.Element, bool) {
	return wrap(e.value.Call("querySelector", selector))
}

func (e Element) Attribute(name string) (string, bool) {
	v := e.value.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}

	return v.String(), true
}

func (e Element) SetAttribute(name, value string) {
	e.value.Call("setAttribute", name, value)
}

func (e Element) SetStyle(property, value string) {
	e.value.Get("style").Call("setProperty", property, value)
}

func (e Element) Style(property string) string {
	return e.value.Get("style").Call("getPropertyValue", property).String()
}

func (e Element) SetText(text string) {
	e.value.Set("textContent", text)
}

func (e Element) Text() string {
	return e.value.Get("textContent").String()
}

func (e Element) SetInnerHTML(markup string) {
	e.value.Set("innerHTML", markup)
}

func (e Element) AppendChild(child dom.Element) {
	if c, ok := child.(Element); ok {
		e.value.Call("appendChild", c.value)
	}
}

func (e Element) SetDisabled(disabled bool) {
	e.value.Set("disabled", disabled)
}

func (e Element) Disabled() bool {
	return e.value.Get("disabled").Truthy()
}

func (e Element) AddClass(name string) {
	e.value.Get("classList").Call("add", name)
}

func (e Element) RemoveClass(name string) {
	e.value.Get("classList").Call("remove", name)
}

func (e Element) HasClass(name string) bool {
	return e.value.Get("classList").Call("contains", name).Bool()
}

// Handlers live as long as the page, so the js.Func is never released.
func (e Element) OnClick(handler func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	})

	e.value.Call("addEventListener", "click", cb)
}
