package el

import (
	"strconv"
	"strings"

	"github.com/vellum-dev/vellum/pkg/dom"
)

// AttrOf creates an Attr with the given key and value.
func AttrOf(key string, value any) Attr {
	return dom.Attr{Key: key, Value: value}
}

// Flag creates a boolean flag attribute; true renders as key="key",
// false suppresses the attribute entirely.
func Flag(key string, on bool) Attr {
	return AttrOf(key, on)
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return AttrOf("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return AttrOf("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return AttrOf("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return AttrOf("title", title) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return AttrOf("data-"+key, value) }

// Language attributes

// Lang sets the lang attribute.
func Lang(lang string) Attr { return AttrOf("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) Attr { return AttrOf("dir", dir) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return AttrOf("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return AttrOf("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return AttrOf("rel", rel) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attr { return AttrOf("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return AttrOf("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return AttrOf("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return AttrOf("height", h) }

// Form input attributes

// Name sets the name attribute.
func Name(name string) Attr { return AttrOf("name", name) }

// Value sets the value attribute.
func Value(value any) Attr { return AttrOf("value", value) }

// Type_ sets the type attribute.
func Type_(t string) Attr { return AttrOf("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return AttrOf("placeholder", text) }

// For sets the for attribute.
func For(id string) Attr { return AttrOf("for", id) }

// Action sets the action attribute.
func Action(url string) Attr { return AttrOf("action", url) }

// Method sets the method attribute.
func Method(m string) Attr { return AttrOf("method", m) }

// Boolean flag attributes; true renders key="key", false nothing.

// Disabled sets the disabled flag.
func Disabled(on bool) Attr { return Flag("disabled", on) }

// Checked sets the checked flag.
func Checked(on bool) Attr { return Flag("checked", on) }

// Selected sets the selected flag.
func Selected(on bool) Attr { return Flag("selected", on) }

// Required sets the required flag.
func Required(on bool) Attr { return Flag("required", on) }

// Readonly sets the readonly flag.
func Readonly(on bool) Attr { return Flag("readonly", on) }

// Multiple sets the multiple flag.
func Multiple(on bool) Attr { return Flag("multiple", on) }

// Hidden sets the hidden flag.
func Hidden() Attr { return Flag("hidden", true) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return AttrOf("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return AttrOf("aria-label", label) }

// AriaHidden sets the aria-hidden attribute. The value is the literal
// "true" or "false" string, which is what the aria spec expects.
func AriaHidden(hidden bool) Attr { return AttrOf("aria-hidden", strconv.FormatBool(hidden)) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return AttrOf("tabindex", index) }

// Script attributes

// Defer_ sets the defer flag.
func Defer_(on bool) Attr { return Flag("defer", on) }

// Async sets the async flag.
func Async(on bool) Attr { return Flag("async", on) }

// Charset sets the charset attribute.
func Charset(cs string) Attr { return AttrOf("charset", cs) }
