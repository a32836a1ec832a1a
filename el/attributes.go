package el

import (
	"sort"
	"strings"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return dom.Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the
// Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", expanded) }

// AriaCurrent sets the aria-current attribute.
func AriaCurrent(value string) Attr { return attr("aria-current", value) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Visibility attributes

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// TitleAttr sets the title attribute (named to avoid conflict with the
// Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Language attributes

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) Attr { return attr("dir", dir) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Download sets the download attribute.
func Download(filename ...string) Attr {
	if len(filename) > 0 {
		return attr("download", filename[0])
	}
	return attr("download", true)
}

// Form input attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Form state attributes

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// Readonly sets the readonly attribute.
func Readonly() Attr { return attr("readonly", true) }

// Required sets the required attribute.
func Required() Attr { return attr("required", true) }

// Checked sets the checked attribute.
func Checked() Attr { return attr("checked", true) }

// Selected sets the selected attribute.
func Selected() Attr { return attr("selected", true) }

// Multiple sets the multiple attribute.
func Multiple() Attr { return attr("multiple", true) }

// Autofocus sets the autofocus attribute.
func Autofocus() Attr { return attr("autofocus", true) }

// Autocomplete sets the autocomplete attribute.
func Autocomplete(value string) Attr { return attr("autocomplete", value) }

// Form validation attributes

// Pattern sets the pattern attribute.
func Pattern(pattern string) Attr { return attr("pattern", pattern) }

// MinLength sets the minlength attribute.
func MinLength(n int) Attr { return attr("minlength", n) }

// MaxLength sets the maxlength attribute.
func MaxLength(n int) Attr { return attr("maxlength", n) }

// Min sets the min attribute.
func Min(value string) Attr { return attr("min", value) }

// Max sets the max attribute.
func Max(value string) Attr { return attr("max", value) }

// Step sets the step attribute.
func Step(value string) Attr { return attr("step", value) }

// Textarea attributes

// Rows sets the rows attribute.
func Rows(n int) Attr { return attr("rows", n) }

// Cols sets the cols attribute.
func Cols(n int) Attr { return attr("cols", n) }

// Form element attributes

// Action sets the action attribute.
func Action(url string) Attr { return attr("action", url) }

// Method sets the method attribute.
func Method(method string) Attr { return attr("method", method) }

// Enctype sets the enctype attribute.
func Enctype(enctype string) Attr { return attr("enctype", enctype) }

// For sets the for attribute (for labels).
func For(id string) Attr { return attr("for", id) }

// FormAttr sets the form attribute (to associate with a form by id).
func FormAttr(id string) Attr { return attr("form", id) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", h) }

// Loading sets the loading attribute.
func Loading(mode string) Attr { return attr("loading", mode) }

// Poster sets the poster attribute.
func Poster(url string) Attr { return attr("poster", url) }

// Controls sets the controls attribute.
func Controls() Attr { return attr("controls", true) }

// Autoplay sets the autoplay attribute.
func Autoplay() Attr { return attr("autoplay", true) }

// Loop sets the loop attribute.
func Loop() Attr { return attr("loop", true) }

// Table attributes

// Colspan sets the colspan attribute.
func Colspan(n int) Attr { return attr("colspan", n) }

// Rowspan sets the rowspan attribute.
func Rowspan(n int) Attr { return attr("rowspan", n) }

// Scope sets the scope attribute.
func Scope(scope string) Attr { return attr("scope", scope) }

// Meta/Link attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// HttpEquiv sets the http-equiv attribute.
func HttpEquiv(value string) Attr { return attr("http-equiv", value) }

// Script attributes

// DeferAttr sets the defer attribute (named to avoid conflict with the
// Defer content helper).
func DeferAttr() Attr { return attr("defer", true) }

// Async sets the async attribute.
func Async() Attr { return attr("async", true) }

// Crossorigin sets the crossorigin attribute.
func Crossorigin(value string) Attr { return attr("crossorigin", value) }

// Integrity sets the integrity attribute for subresource integrity.
func Integrity(value string) Attr { return attr("integrity", value) }

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{}
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Classes merges multiple class values into one deterministic class
// attribute. Accepts string, []string, and map[string]bool; map keys are
// sorted so rendered output is stable.
func Classes(classes ...any) Attr {
	var result []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			if v != "" {
				result = append(result, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					result = append(result, s)
				}
			}
		case map[string]bool:
			on := make([]string, 0, len(v))
			for class, include := range v {
				if include && class != "" {
					on = append(on, class)
				}
			}
			sort.Strings(on)
			result = append(result, on...)
		}
	}
	return attr("class", strings.Join(result, " "))
}

// Open sets the open attribute (for details, dialog).
func Open() Attr { return attr("open", true) }
