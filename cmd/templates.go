package cmd

import (
	"fmt"

	"github.com/shotforge/shotforge/internal/templates"
)

// RunTemplates handles the "templates" subcommand: list the template
// identifiers shipped in this binary.
func RunTemplates(args []string) {
	for _, name := range templates.Names() {
		fmt.Println(name)
	}
}
