package errors

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "render error",
			code:    "E001",
			wantMsg: "Page rendering failed",
			wantCat: CategoryRender,
		},
		{
			name:    "content error",
			code:    "E041",
			wantMsg: "Invalid document JSON",
			wantCat: CategoryContent,
		},
		{
			name:    "publish error",
			code:    "E080",
			wantMsg: "Unknown publish backend",
			wantCat: CategoryPublish,
		},
		{
			name:    "config error",
			code:    "E120",
			wantMsg: "Invalid site.json",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryContent, "document %q not found", "home.json")
	if err.Message != `document "home.json" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `document "home.json" not found`)
	}
	if err.Category != CategoryContent {
		t.Errorf("Category = %q, want %q", err.Category, CategoryContent)
	}
}

func TestTagtreeError_Error(t *testing.T) {
	err := New("E080")
	got := err.Error()
	want := "E080: Unknown publish backend"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &TagtreeError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestTagtreeError_WithSuggestion(t *testing.T) {
	err := New("E080").WithSuggestion(`set "backend" to "disk" or "s3"`)
	if err.Suggestion != `set "backend" to "disk" or "s3"` {
		t.Errorf("Suggestion = %q, want %q", err.Suggestion, `set "backend" to "disk" or "s3"`)
	}
}

func TestTagtreeError_WithExample(t *testing.T) {
	example := `{
  "publish": {
    "backend": "s3",
    "bucket": "my-site"
  }
}`
	err := New("E081").WithExample(example)
	if err.Example != example {
		t.Errorf("Example = %q, want %q", err.Example, example)
	}
}

func TestTagtreeError_WithDetail(t *testing.T) {
	err := New("E120").WithDetail("Custom detail")
	if err.Detail != "Custom detail" {
		t.Errorf("Detail = %q, want %q", err.Detail, "Custom detail")
	}
}

func TestTagtreeError_Wrap(t *testing.T) {
	inner := New("E082")
	outer := New("E062").Wrap(inner)

	if outer.Wrapped != inner {
		t.Error("Wrapped error mismatch")
	}
	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
}

func TestFromError(t *testing.T) {
	// nil error
	if FromError(nil, "E001") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	// Already TagtreeError
	te := New("E001")
	if FromError(te, "E002") != te {
		t.Error("FromError should return TagtreeError as-is")
	}

	// Standard error
	stdErr := &testError{msg: "test error"}
	result := FromError(stdErr, "E001")
	if result.Wrapped != stdErr {
		t.Error("Standard error should be wrapped")
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E081").
		Wrap(&testError{msg: "bucket name empty"}).
		WithSuggestion(`add "bucket" under "publish" in site.json`).
		WithExample(`"publish": {"backend": "s3", "bucket": "my-site"}`)

	formatted := err.Format()

	// Check that key components are present
	if !strings.Contains(formatted, "E081") {
		t.Error("Format should contain error code")
	}
	if !strings.Contains(formatted, "Missing S3 bucket") {
		t.Error("Format should contain error message")
	}
	if !strings.Contains(formatted, "Cause:") {
		t.Error("Format should contain wrapped cause")
	}
	if !strings.Contains(formatted, "Hint:") {
		t.Error("Format should contain hint")
	}
	if !strings.Contains(formatted, "Example:") {
		t.Error("Format should contain example")
	}
	if !strings.Contains(formatted, "Learn more:") {
		t.Error("Format should contain doc URL")
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E080").WithSuggestion("use disk or s3")
	json := err.FormatJSON()

	if !strings.Contains(json, `"code":"E080"`) {
		t.Error("JSON should contain code")
	}
	if !strings.Contains(json, `"category":"publish"`) {
		t.Error("JSON should contain category")
	}
	if !strings.Contains(json, `"message":"Unknown publish backend"`) {
		t.Error("JSON should contain message")
	}
	if !strings.Contains(json, `"suggestion":`) {
		t.Error("JSON should contain suggestion")
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 {
		t.Error("GetAllCodes() should return codes")
	}

	// Check that E120 is in the list
	found := false
	for _, code := range codes {
		if code == "E120" {
			found = true
			break
		}
	}
	if !found {
		t.Error("E120 should be in the codes list")
	}
}

func TestGetTemplate(t *testing.T) {
	template, ok := GetTemplate("E120")
	if !ok {
		t.Error("E120 should exist")
	}
	if template.Message != "Invalid site.json" {
		t.Error("Template message mismatch")
	}

	_, ok = GetTemplate("E999")
	if ok {
		t.Error("E999 should not exist")
	}
}

func TestRegister(t *testing.T) {
	Register("E999", ErrorTemplate{
		Category: CategoryCLI,
		Message:  "Custom test error",
		Detail:   "This is a test error",
		DocURL:   "https://tagtree.dev/docs/errors/E999",
	})

	err := New("E999")
	if err.Message != "Custom test error" {
		t.Errorf("Message = %q, want %q", err.Message, "Custom test error")
	}

	// Cleanup
	delete(registry, "E999")
}

func TestWrapText(t *testing.T) {
	// Test short text that doesn't need wrapping
	got := wrapText("short text", 100)
	if len(got) != 1 || got[0] != "short text" {
		t.Errorf("wrapText short text: got %v", got)
	}

	// Test text that needs wrapping
	got = wrapText("this is a longer text that should be wrapped", 20)
	if len(got) != 3 {
		t.Errorf("wrapText long text: expected 3 lines, got %d: %v", len(got), got)
	}

	// Test empty string returns empty/nil
	got = wrapText("", 10)
	if len(got) != 0 {
		t.Errorf("wrapText empty: expected empty, got %v", got)
	}
}

func TestColorFunctions(t *testing.T) {
	// With colors enabled
	EnableColors()
	if !strings.Contains(red("test"), "\033[31m") {
		t.Error("red should contain ANSI code when colors enabled")
	}

	// With colors disabled
	DisableColors()
	if strings.Contains(red("test"), "\033[") {
		t.Error("red should not contain ANSI code when colors disabled")
	}
	EnableColors()
}
