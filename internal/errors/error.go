package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender  Category = "render"
	CategoryContent Category = "content"
	CategoryPreview Category = "preview"
	CategoryPublish Category = "publish"
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
)

// TagtreeError is a structured error with suggestions and documentation links.
type TagtreeError struct {
	// Code is a unique error identifier (e.g., "E120").
	Code string

	// Category is the error type (render, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code or configuration showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *TagtreeError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *TagtreeError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *TagtreeError) WithSuggestion(s string) *TagtreeError {
	e.Suggestion = s
	return e
}

// WithExample adds an example to the error.
func (e *TagtreeError) WithExample(ex string) *TagtreeError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *TagtreeError) WithDetail(d string) *TagtreeError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *TagtreeError) Wrap(err error) *TagtreeError {
	e.Wrapped = err
	return e
}

// New creates a TagtreeError from a registered error code.
func New(code string) *TagtreeError {
	template, ok := registry[code]
	if !ok {
		return &TagtreeError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &TagtreeError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new TagtreeError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *TagtreeError {
	return &TagtreeError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a TagtreeError.
func FromError(err error, code string) *TagtreeError {
	if err == nil {
		return nil
	}
	if te, ok := err.(*TagtreeError); ok {
		return te
	}
	return New(code).Wrap(err)
}
