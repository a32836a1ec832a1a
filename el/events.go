package el

// Inline event attributes. These attach literal JavaScript to the
// rendered markup; the library ships no client runtime, so handlers are
// whatever script the page itself loads.

// On sets an on<event> attribute with literal JavaScript.
// Example: On("click", "toggle(this)") → onclick="toggle(this)"
func On(event, js string) Attr { return attr("on"+event, js) }

// OnClick sets the onclick attribute.
func OnClick(js string) Attr { return On("click", js) }

// OnSubmit sets the onsubmit attribute.
func OnSubmit(js string) Attr { return On("submit", js) }

// OnInput sets the oninput attribute.
func OnInput(js string) Attr { return On("input", js) }

// OnChange sets the onchange attribute.
func OnChange(js string) Attr { return On("change", js) }

// OnFocus sets the onfocus attribute.
func OnFocus(js string) Attr { return On("focus", js) }

// OnBlur sets the onblur attribute.
func OnBlur(js string) Attr { return On("blur", js) }

// OnLoad sets the onload attribute.
func OnLoad(js string) Attr { return On("load", js) }
