package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/shotforge/shotforge/internal/project"
	"github.com/shotforge/shotforge/internal/scaffold"
	"github.com/shotforge/shotforge/internal/version"
)

// RunInit handles the "init" subcommand: scaffold a project from a
// shipped template.
func RunInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	projectDir := fs.String("project", project.DefaultDir, "Project directory to create")
	template := fs.String("template", "clean", "Template to scaffold from")
	fs.Parse(args)

	name := *template
	if fs.Arg(0) != "" {
		name = fs.Arg(0)
	}

	if err := scaffold.Create(*projectDir, name, version.Current); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s from template %q\n", *projectDir, name)
	fmt.Println("  ✓ template/   your copy of the template (edit freely)")
	fmt.Println("  ✓ statusbar/  shared status-bar partial")
	fmt.Println("  ✓ shotforge.yaml  render configuration")
	fmt.Println()
	fmt.Println("Preview with: shotforge serve")
}
