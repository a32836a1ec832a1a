package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/tagtree-dev/tagtree"
	"github.com/tagtree-dev/tagtree/internal/config"
	"github.com/tagtree-dev/tagtree/internal/content"
	"github.com/tagtree-dev/tagtree/internal/errors"
	"github.com/tagtree-dev/tagtree/pkg/middleware"
	"github.com/tagtree-dev/tagtree/pkg/preview"
)

func previewCmd() *cobra.Command {
	var (
		port        int
		host        string
		openBrowser bool
		noReload    bool
		metrics     bool
		tracing     bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the preview server",
		Long: `Start the preview server with hot reload.

Every request renders its page from the in-memory document tree, so
edits to the content directory show up on the next reload. The server
watches the content and static directories and refreshes connected
browsers itself.

Features:
  • Hot reload on content change
  • Stylesheet changes applied without a page reload
  • Error overlay in browser
  • Optional Prometheus metrics and OpenTelemetry traces

Examples:
  tagtree preview
  tagtree preview --port=9000
  tagtree preview --host=0.0.0.0 --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(port, host, openBrowser, noReload, metrics, tracing)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from site.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from site.json)")
	cmd.Flags().BoolVarP(&openBrowser, "open", "o", false, "Open browser on start")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics at /metrics")
	cmd.Flags().BoolVar(&tracing, "trace", false, "Trace requests with OpenTelemetry")

	return cmd
}

func runPreview(port int, host string, openBrowser, noReload, metrics, tracing bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Preview.Port = port
	}
	if host != "" {
		cfg.Preview.Host = host
	}
	if noReload {
		cfg.Preview.HotReload = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	for _, p := range cfg.WatchPaths() {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return errors.New("E061").
				WithDetail("No directory at " + p).
				WithSuggestion(`Create it or adjust "preview.watch" in site.json`)
		}
	}

	printBanner()
	fmt.Println("  preview")
	fmt.Println()

	site, err := content.LoadSite(cfg.Name, cfg.DocumentsPath())
	if err != nil {
		return err
	}

	options := preview.Options{
		Addr:          cfg.PreviewAddress(),
		StaticDir:     cfg.StaticPath(),
		Watch:         cfg.WatchPaths(),
		Ignore:        cfg.Preview.Ignore,
		Interval:      cfg.WatchInterval(),
		DisableReload: !cfg.Preview.HotReload,
		Rebuild: func() (*tagtree.Site, error) {
			next, err := content.LoadSite(cfg.Name, cfg.DocumentsPath())
			if err != nil {
				errors.PrintError(errors.New("E062").Wrap(err))
				return nil, overlayLine(err)
			}
			return next, nil
		},
		OnReload: func(clients int) {
			success("Reloaded %d browsers", clients)
		},
	}
	if metrics {
		options.Middleware = append(options.Middleware, middleware.Metrics())
		options.Routes = map[string]http.Handler{"/metrics": promhttp.Handler()}
	}
	if tracing {
		options.Middleware = append(options.Middleware, middleware.Tracing())
	}

	server := preview.NewServer(site, options)

	info("Serving %d pages at %s", len(site.Pages()), cfg.PreviewURL())
	info("Watching %s", strings.Join(cfg.Preview.Watch, ", "))
	if metrics {
		info("Metrics at %s/metrics", cfg.PreviewURL())
	}
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
		server.Stop()
	}()

	if openBrowser {
		go openURL(cfg.PreviewURL())
	}

	if err := server.Start(ctx); err != nil {
		return errors.New("E060").
			WithDetail("Address " + cfg.PreviewAddress()).
			WithSuggestion("Pick another port with --port").
			Wrap(err)
	}
	return nil
}

// overlayLine flattens a load error into the one line the browser
// overlay shows.
func overlayLine(err error) error {
	if te, ok := err.(*errors.TagtreeError); ok && te.Detail != "" {
		return fmt.Errorf("%s: %s", te.Error(), te.Detail)
	}
	return err
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd

	switch {
	case commandExists("xdg-open"):
		cmd = exec.Command("xdg-open", url)
	case commandExists("open"):
		cmd = exec.Command("open", url)
	case commandExists("start"):
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}

	cmd.Start()
}

// commandExists checks if a command exists in PATH.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
