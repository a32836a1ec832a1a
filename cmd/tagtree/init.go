package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagtree-dev/tagtree/internal/config"
	"github.com/tagtree-dev/tagtree/internal/errors"
)

func initCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a new tagtree site",
		Long: `Create a new tagtree site.

Writes site.json, a starter document under content/, and a stylesheet
under static/. With no argument the current directory is used.

Examples:
  tagtree init
  tagtree init my-site
  tagtree init my-site --name="My Site"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir, name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Site name (default: directory name)")

	return cmd
}

func runInit(dir, name string) error {
	printBanner()
	fmt.Println("  Creating a new tagtree site...")
	fmt.Println()

	siteDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if name == "" {
		name = filepath.Base(siteDir)
	}
	if !isValidSiteName(name) {
		return errors.New("E142").
			WithDetail(fmt.Sprintf("Site name %q is empty or contains control characters", name)).
			WithSuggestion("Pass a printable name with --name")
	}
	if config.Exists(siteDir) {
		return errors.New("E140").
			WithDetail("Found " + filepath.Join(dir, config.ConfigFileName)).
			WithSuggestion("Edit the existing site.json instead")
	}

	cfg := config.New()
	cfg.Name = name

	info("Creating directories...")
	if err := os.MkdirAll(filepath.Join(siteDir, cfg.Documents), 0755); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(siteDir, cfg.Static.Dir), 0755); err != nil {
		return err
	}

	info("Writing site.json...")
	if err := cfg.SaveTo(filepath.Join(siteDir, config.ConfigFileName)); err != nil {
		return err
	}

	info("Writing starter content...")
	index := filepath.Join(siteDir, cfg.Documents, "index.json")
	if err := os.WriteFile(index, []byte(starterDocument(name)), 0644); err != nil {
		return err
	}
	css := filepath.Join(siteDir, cfg.Static.Dir, "site.css")
	if err := os.WriteFile(css, []byte(starterStylesheet), 0644); err != nil {
		return err
	}

	fmt.Println()
	success("Created %s", dir)
	fmt.Println()
	fmt.Println("  To get started:")
	fmt.Println()
	if dir != "." {
		fmt.Printf("    cd %s\n", dir)
	}
	fmt.Println("    tagtree preview")
	fmt.Println()
	fmt.Printf("  Your site will be running at %s\n", cfg.PreviewURL())
	fmt.Println()

	return nil
}

func isValidSiteName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, r := range name {
		if r < ' ' {
			return false
		}
	}
	return true
}

// starterDocument is the content/index.json a fresh site begins with.
func starterDocument(name string) string {
	quoted, _ := json.Marshal(name)
	return fmt.Sprintf(`[
  "html",
  ["head",
    ["title", %[1]s],
    ["link", {"rel": "stylesheet", "href": "/static/site.css"}]
  ],
  ["body",
    ["header", ["h1", %[1]s]],
    ["main",
      ["p", "This page is content/index.json. Edit it and watch the preview update."],
      ["p", "Add more .json files next to it to add pages."]
    ]
  ]
]
`, quoted)
}

const starterStylesheet = `:root {
  color-scheme: light dark;
}

body {
  font-family: system-ui, sans-serif;
  max-width: 42rem;
  margin: 0 auto;
  padding: 2rem 1rem;
  line-height: 1.6;
}

header h1 {
  margin-bottom: 0;
}
`
