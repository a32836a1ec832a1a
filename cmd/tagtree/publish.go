package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tagtree-dev/tagtree/internal/config"
	"github.com/tagtree-dev/tagtree/internal/errors"
	"github.com/tagtree-dev/tagtree/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		backend  string
		bucket   string
		region   string
		prefix   string
		endpoint string
		dryRun   bool
		noPrune  bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the site to the configured backend",
		Long: `Render the site and upload it to the publish backend.

Backends:
  disk   Copy into the output directory (default)
  s3     Upload to an S3 bucket, AWS or S3-compatible

S3 credentials come from the AWS_ACCESS_KEY_ID and
AWS_SECRET_ACCESS_KEY environment variables, falling back to the
SDK's usual provider chain.

Examples:
  tagtree publish
  tagtree publish --backend=s3 --bucket=my-site
  tagtree publish --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(backend, bucket, region, prefix, endpoint, dryRun, noPrune)
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "", "Publish backend: disk or s3 (default from site.json)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from site.json)")
	cmd.Flags().StringVar(&region, "region", "", "S3 region (default from site.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL (MinIO, R2)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan the run without writing anything")
	cmd.Flags().BoolVar(&noPrune, "no-prune", false, "Keep stored files this run did not produce")

	return cmd
}

func runPublish(backend, bucket, region, prefix, endpoint string, dryRun, noPrune bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if backend != "" {
		cfg.Publish.Backend = backend
	}
	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if region != "" {
		cfg.Publish.Region = region
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if endpoint != "" {
		cfg.Publish.Endpoint = endpoint
	}
	if noPrune {
		cfg.Publish.Prune = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Println("  Publishing site...")
	fmt.Println()

	start := time.Now()

	site, staticDir, err := prepareSite(cfg)
	if err != nil {
		return err
	}

	store, target, err := publishStore(cfg)
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
		Prune:     cfg.Publish.Prune,
		DryRun:    dryRun,
	}).Publish(ctx, site)
	if err != nil {
		return errors.FromError(err, "E082")
	}

	fmt.Println()
	if dryRun {
		info("Dry run: would write %d files (%s) and delete %d",
			len(result.Uploaded), formatBytes(result.Bytes), len(result.Deleted))
		fmt.Println()
		return nil
	}

	success("Published %d files (%s) to %s in %s",
		len(result.Uploaded), formatBytes(result.Bytes), target, time.Since(start).Round(time.Millisecond))
	if len(result.Deleted) > 0 {
		info("Pruned %d stale files", len(result.Deleted))
	}
	fmt.Println()

	return nil
}

// publishStore builds the configured backend and a printable name for
// it. Validate has already vetted the backend and bucket.
func publishStore(cfg *config.Config) (publish.Store, string, error) {
	switch cfg.Publish.Backend {
	case "s3":
		store, err := publish.NewS3StoreFromConfig(publish.S3Config{
			Bucket:    cfg.Publish.Bucket,
			Region:    cfg.Publish.Region,
			Prefix:    cfg.Publish.Prefix,
			Endpoint:  cfg.Publish.Endpoint,
			AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		})
		if err != nil {
			return nil, "", err
		}
		return store, "s3://" + cfg.Publish.Bucket + "/" + cfg.Publish.Prefix, nil
	case "", "disk":
		store, err := publish.NewDiskStore(cfg.OutputPath())
		if err != nil {
			return nil, "", err
		}
		return store, cfg.Publish.Output + "/", nil
	default:
		return nil, "", errors.New("E080").
			WithDetail(fmt.Sprintf("Backend %q is not supported", cfg.Publish.Backend))
	}
}
