package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tagtree-dev/tagtree"
	"github.com/tagtree-dev/tagtree/internal/config"
	"github.com/tagtree-dev/tagtree/internal/content"
	"github.com/tagtree-dev/tagtree/internal/errors"
	"github.com/tagtree-dev/tagtree/pkg/assets"
	"github.com/tagtree-dev/tagtree/pkg/publish"
)

func buildCmd() *cobra.Command {
	var (
		output string
		clean  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site into the output directory",
		Long: `Render every page into the output directory.

This command:
  • Renders each page to a pretty-URL HTML file
  • Fingerprints static assets (when enabled)
  • Rewrites asset references inside the documents
  • Writes the asset manifest
  • Prunes files a previous build left behind

Examples:
  tagtree build
  tagtree build --output=public_html
  tagtree build --clean`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(output, clean)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from site.json)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean output directory before build")

	return cmd
}

func runBuild(output string, clean bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Publish.Output = output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Println("  Building site...")
	fmt.Println()

	start := time.Now()

	if clean {
		info("Cleaning output directory...")
		if err := os.RemoveAll(cfg.OutputPath()); err != nil {
			return err
		}
	}

	site, staticDir, err := prepareSite(cfg)
	if err != nil {
		return err
	}

	store, err := publish.NewDiskStore(cfg.OutputPath())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	result, err := publish.New(store, publish.Options{
		StaticDir: staticDir,
		Prune:     true,
	}).Publish(ctx, site)
	if err != nil {
		return errors.FromError(err, "E082")
	}

	fmt.Println()
	success("Build complete in %s", time.Since(start).Round(time.Millisecond))
	fmt.Println()
	fmt.Println("  Output:")
	fmt.Printf("    %s/  (%d files, %s)\n", cfg.Publish.Output, len(result.Uploaded), formatBytes(result.Bytes))
	fmt.Println()

	return nil
}

// prepareSite loads the site and runs the asset pipeline. The returned
// directory is where the publisher should copy static files from: the
// fingerprint staging area when fingerprinting is on, the plain static
// directory otherwise, or "" when there is nothing to copy.
func prepareSite(cfg *config.Config) (*tagtree.Site, string, error) {
	site, err := content.LoadSite(cfg.Name, cfg.DocumentsPath())
	if err != nil {
		return nil, "", err
	}
	info("Loaded %d pages from %s", len(site.Pages()), cfg.Documents)

	staticDir := cfg.StaticPath()
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		warn("No static directory at %s, skipping assets", cfg.Static.Dir)
		return site, "", nil
	}
	if !cfg.Assets.Fingerprint {
		return site, staticDir, nil
	}

	staging := filepath.Join(cfg.Dir(), ".tagtree", "static")
	if err := os.RemoveAll(staging); err != nil {
		return nil, "", err
	}

	info("Fingerprinting assets...")
	manifest, err := assets.Fingerprint(staticDir, staging)
	if err != nil {
		return nil, "", err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.ManifestPath()), 0755); err != nil {
		return nil, "", err
	}
	if err := manifest.Save(cfg.ManifestPath()); err != nil {
		return nil, "", err
	}

	rewriter := assets.NewRewriter(assets.NewResolver(manifest, cfg.StaticPrefix()), cfg.StaticPrefix())
	rewritten := 0
	for _, page := range site.Pages() {
		rewritten += rewriter.Rewrite(page.Doc)
	}
	info("Fingerprinted %d assets, rewrote %d references", manifest.Len(), rewritten)

	return site, staging, nil
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
