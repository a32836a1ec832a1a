package assets

// Resolver maps a source asset name to the URL path a page should
// reference.
type Resolver interface {
	// Asset resolves a source name, e.g. "site.css", to its full URL
	// path including any prefix and fingerprint.
	Asset(source string) string
}

type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver resolves through a manifest with a URL prefix:
//
//	resolver := assets.NewResolver(manifest, "/static/")
//	resolver.Asset("site.css") // "/static/site.a1b2c3d4.css"
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{manifest: m, prefix: prefix}
}

func (r *manifestResolver) Asset(source string) string {
	return r.prefix + r.manifest.Resolve(source)
}

type passthrough struct {
	prefix string
}

// NewPassthroughResolver returns names unchanged apart from the prefix.
// Preview serving uses this so page markup stays identical between
// development and published output.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(source string) string {
	return p.prefix + source
}
