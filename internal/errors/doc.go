// Package errors provides structured, actionable error messages for tagtree.
//
// The errors package implements a coded error system that:
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues with concrete examples
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - render: Serialization errors (invalid names, failing sinks)
//   - content: Document source errors (malformed JsonML, missing files)
//   - preview: Development server errors (bind failures, rebuild errors)
//   - publish: Upload errors (unknown backends, store failures)
//   - config: site.json errors (parse failures, invalid values)
//   - cli: Command-level errors (wrong directory, bad arguments)
//
// # Error Codes
//
// Each error has a unique code (e.g., "E120") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E080").
//	    WithSuggestion(`set "backend" to "disk" or "s3" in site.json`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E080: Unknown publish backend
//	//
//	//   The configured publish backend is not recognized.
//	//
//	//   Hint: set "backend" to "disk" or "s3" in site.json
//	//
//	//   Learn more: https://tagtree.dev/docs/errors/E080
package errors
