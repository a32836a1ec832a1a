package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagtree-dev/tagtree/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┌─┐┌─┐┌┬┐┬─┐┌─┐┌─┐
   │ ├─┤│ ┬ │ ├┬┘├┤ ├┤
   ┴ ┴ ┴└─┘ ┴ ┴└─└─┘└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "tagtree",
		Short: "Build, preview and publish sites from live document trees",
		Long: `tagtree renders sites from in-memory document trees.

Pages are JsonML documents promoted into element trees that stay
mutable right up to serialization. Features include:

  • Live attribute and child views on every element
  • Hot reload preview server
  • Content-hashed static assets
  • Publishing to disk or S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		initCmd(),
		previewCmd(),
		buildCmd(),
		publishCmd(),
		renderCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the tagtree ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
