package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagtree-dev/tagtree/internal/config"
	"github.com/tagtree-dev/tagtree/internal/content"
	"github.com/tagtree-dev/tagtree/internal/errors"
	"github.com/tagtree-dev/tagtree/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		docFile string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "render [path]",
		Short: "Render one page to stdout",
		Long: `Render one page of the site and print the markup.

With --doc the given document file renders on its own, without
loading the rest of the site.

Examples:
  tagtree render /
  tagtree render /blog/hello
  tagtree render --doc=content/index.json
  tagtree render / --out=index.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pagePath := ""
			if len(args) == 1 {
				pagePath = args[0]
			}
			return runRender(pagePath, docFile, outFile)
		},
	}

	cmd.Flags().StringVar(&docFile, "doc", "", "Render a single document file instead of a site page")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runRender(pagePath, docFile, outFile string) error {
	var markup string

	if docFile != "" {
		doc, err := content.LoadDocument(docFile)
		if err != nil {
			return err
		}
		markup, err = render.String(doc)
		if err != nil {
			return errors.FromError(err, "E001")
		}
	} else {
		cfg, err := config.LoadFromWorkingDir()
		if err != nil {
			return err
		}
		site, err := content.LoadSite(cfg.Name, cfg.DocumentsPath())
		if err != nil {
			return err
		}
		if pagePath == "" {
			pagePath = "/"
		}
		markup, err = site.Render(pagePath)
		if err != nil {
			return errors.FromError(err, "E001")
		}
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, []byte(markup), 0644); err != nil {
			return err
		}
		success("Wrote %s (%s)", outFile, formatBytes(int64(len(markup))))
		return nil
	}

	fmt.Println(markup)
	return nil
}
