package errors

// ErrorTemplate defines the static content for a registered error code.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{

	// ============================================
	// Render Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryRender,
		Message:  "Page rendering failed",
		Detail:   "A page's document tree could not be serialized to markup.",
		DocURL:   "https://tagtree.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryRender,
		Message:  "Invalid element name",
		Detail:   "An element was created or renamed with a name that is not valid markup.",
		DocURL:   "https://tagtree.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryRender,
		Message:  "Markup sink failed",
		Detail:   "A sink attached to the markup writer returned an error mid-document.",
		DocURL:   "https://tagtree.dev/docs/errors/E003",
	},

	// ============================================
	// Content Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryContent,
		Message:  "Document file not found",
		Detail:   "The document source file does not exist or is not readable.",
		DocURL:   "https://tagtree.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategoryContent,
		Message:  "Invalid document JSON",
		Detail:   "The document source could not be parsed as a JsonML array.",
		DocURL:   "https://tagtree.dev/docs/errors/E041",
	},
	"E042": {
		Category: CategoryContent,
		Message:  "Unknown node shape",
		Detail:   "A value in the document is neither text, a number, nor an element array.",
		DocURL:   "https://tagtree.dev/docs/errors/E042",
	},

	// ============================================
	// Preview Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryPreview,
		Message:  "Preview server failed to start",
		Detail:   "The development server could not bind to the configured address.",
		DocURL:   "https://tagtree.dev/docs/errors/E060",
	},
	"E061": {
		Category: CategoryPreview,
		Message:  "Watch path does not exist",
		Detail:   "A configured watch path could not be found on disk.",
		DocURL:   "https://tagtree.dev/docs/errors/E061",
	},
	"E062": {
		Category: CategoryPreview,
		Message:  "Rebuild failed",
		Detail:   "The rebuild callback returned an error. The previous site is still being served.",
		DocURL:   "https://tagtree.dev/docs/errors/E062",
	},

	// ============================================
	// Publish Errors (E080-E099)
	// ============================================

	"E080": {
		Category: CategoryPublish,
		Message:  "Unknown publish backend",
		Detail:   "The configured publish backend is not recognized.",
		DocURL:   "https://tagtree.dev/docs/errors/E080",
	},
	"E081": {
		Category: CategoryPublish,
		Message:  "Missing S3 bucket",
		Detail:   "The s3 backend is selected but no bucket is configured.",
		DocURL:   "https://tagtree.dev/docs/errors/E081",
	},
	"E082": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "One or more objects could not be written to the publish store.",
		DocURL:   "https://tagtree.dev/docs/errors/E082",
	},

	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid site.json",
		Detail:   "The site.json configuration file is malformed.",
		DocURL:   "https://tagtree.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Missing required configuration",
		Detail:   "A required configuration value is not set.",
		DocURL:   "https://tagtree.dev/docs/errors/E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The configured port number is outside the valid range.",
		DocURL:   "https://tagtree.dev/docs/errors/E122",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Site already initialized",
		Detail:   "A site.json already exists in this directory.",
		DocURL:   "https://tagtree.dev/docs/errors/E140",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Not a tagtree site",
		Detail:   "The current directory is not a tagtree site. Run this command from a directory with site.json.",
		DocURL:   "https://tagtree.dev/docs/errors/E141",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Invalid site name",
		Detail:   "Site names must not be empty or contain path separators.",
		DocURL:   "https://tagtree.dev/docs/errors/E142",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
