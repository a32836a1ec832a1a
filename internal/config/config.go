package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/tagtree-dev/tagtree/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "site.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 8000

	// DefaultHost is the default preview server host.
	DefaultHost = "127.0.0.1"

	// DefaultOutput is the default publish output directory.
	DefaultOutput = "dist"

	// DefaultInterval is the default watch poll interval.
	DefaultInterval = "100ms"
)

// Config represents the complete site.json configuration.
type Config struct {
	// Name is the site name.
	Name string `json:"name,omitempty"`

	// Version is the site version.
	Version string `json:"version,omitempty"`

	// Port is the default server port (convenience field, also in Preview).
	Port int `json:"port,omitempty"`

	// Documents is the path to the document source directory.
	Documents string `json:"documents,omitempty"`

	// Static contains static file configuration.
	Static StaticConfig `json:"static,omitempty"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Publish contains publish configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// Assets contains asset pipeline configuration.
	Assets AssetsConfig `json:"assets,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// StaticConfig contains static file configuration.
type StaticConfig struct {
	// Dir is the directory containing static files.
	Dir string `json:"dir,omitempty"`

	// Prefix is the URL prefix for static files (default: "/static/").
	Prefix string `json:"prefix,omitempty"`
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `json:"watch,omitempty"`

	// Ignore contains patterns to ignore during watch.
	Ignore []string `json:"ignore,omitempty"`

	// HotReload enables hot reload in the preview server.
	HotReload bool `json:"hotReload,omitempty"`

	// Interval is the watch poll interval (e.g., "100ms").
	Interval string `json:"interval,omitempty"`
}

// PublishConfig contains publish settings.
type PublishConfig struct {
	// Backend selects the publish store ("disk" or "s3").
	Backend string `json:"backend,omitempty"`

	// Output is the output directory for the disk backend.
	Output string `json:"output,omitempty"`

	// Prune removes stale objects from the store after publishing.
	Prune bool `json:"prune,omitempty"`

	// Bucket is the S3 bucket name.
	Bucket string `json:"bucket,omitempty"`

	// Region is the S3 region.
	Region string `json:"region,omitempty"`

	// Prefix is the key prefix for published objects.
	Prefix string `json:"prefix,omitempty"`

	// Endpoint overrides the S3 endpoint for S3-compatible stores.
	Endpoint string `json:"endpoint,omitempty"`
}

// AssetsConfig contains asset pipeline settings.
type AssetsConfig struct {
	// Fingerprint enables content-hashed asset names on publish.
	Fingerprint bool `json:"fingerprint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version:   "0.1.0",
		Port:      DefaultPort,
		Documents: "content",
		Static: StaticConfig{
			Dir:    "static",
			Prefix: "/static/",
		},
		Preview: PreviewConfig{
			Port:      DefaultPort,
			Host:      DefaultHost,
			HotReload: true,
			Watch:     []string{"content", "static"},
			Interval:  DefaultInterval,
		},
		Publish: PublishConfig{
			Backend: "disk",
			Output:  DefaultOutput,
			Prune:   true,
		},
		Assets: AssetsConfig{
			Fingerprint: true,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for site.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No site.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'tagtree init' to create a new site or create site.json manually")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse site.json: " + err.Error()).
			WithSuggestion("Check that site.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	// Port
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = c.Port
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Watch == nil {
		c.Preview.Watch = []string{"content", "static"}
	}
	if c.Preview.Interval == "" {
		c.Preview.Interval = DefaultInterval
	}

	// Documents
	if c.Documents == "" {
		c.Documents = "content"
	}

	// Static
	if c.Static.Dir == "" {
		c.Static.Dir = "static"
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = "/static/"
	}

	// Publish
	if c.Publish.Backend == "" {
		c.Publish.Backend = "disk"
	}
	if c.Publish.Output == "" {
		c.Publish.Output = DefaultOutput
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port must be between 0 and 65535")
	}
	if c.Preview.Interval != "" {
		if _, err := time.ParseDuration(c.Preview.Interval); err != nil {
			return errors.New("E121").
				WithDetail("Invalid watch interval " + c.Preview.Interval).
				WithSuggestion(`Use a duration string such as "100ms" or "1s"`)
		}
	}
	switch c.Publish.Backend {
	case "", "disk", "s3":
	default:
		return errors.New("E080").
			WithDetail("Backend \"" + c.Publish.Backend + "\" is not supported").
			WithSuggestion(`Set "backend" to "disk" or "s3" in site.json`)
	}
	if c.Publish.Backend == "s3" && c.Publish.Bucket == "" {
		return errors.New("E081").
			WithSuggestion(`Add "bucket" under "publish" in site.json`)
	}
	return nil
}

// PreviewAddress returns the address string for the preview server.
func (c *Config) PreviewAddress() string {
	return c.Preview.Host + ":" + itoa(c.Preview.Port)
}

// PreviewURL returns the full URL for the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// WatchInterval returns the watch poll interval as a duration.
func (c *Config) WatchInterval() time.Duration {
	d, err := time.ParseDuration(c.Preview.Interval)
	if err != nil || d <= 0 {
		return 100 * time.Millisecond
	}
	return d
}

// DocumentsPath returns the absolute path to the document source directory.
func (c *Config) DocumentsPath() string {
	path := c.Documents
	if path == "" {
		path = "content"
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// StaticPath returns the absolute path to the static files directory.
func (c *Config) StaticPath() string {
	path := c.Static.Dir
	if path == "" {
		path = "static"
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// OutputPath returns the absolute path to the publish output directory.
func (c *Config) OutputPath() string {
	path := c.Publish.Output
	if path == "" {
		path = DefaultOutput
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// ManifestPath returns the absolute path to the asset manifest.
func (c *Config) ManifestPath() string {
	return filepath.Join(c.Dir(), ".tagtree", "manifest.json")
}

// WatchPaths returns the absolute paths the preview server should watch.
func (c *Config) WatchPaths() []string {
	paths := make([]string, 0, len(c.Preview.Watch))
	for _, p := range c.Preview.Watch {
		if filepath.IsAbs(p) {
			paths = append(paths, p)
			continue
		}
		paths = append(paths, filepath.Join(c.Dir(), p))
	}
	return paths
}

// StaticPrefix returns the URL prefix for static files.
func (c *Config) StaticPrefix() string {
	if c.Static.Prefix == "" {
		return "/static/"
	}
	return c.Static.Prefix
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the site root.
// Returns the directory containing site.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No site.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'tagtree init' to create a new site")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

// itoa converts int to string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	// Reverse
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
