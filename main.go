package main

import (
	"fmt"
	"os"

	"github.com/shotforge/shotforge/cmd"
	"github.com/shotforge/shotforge/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		cmd.RunInit(os.Args[2:])
	case "upgrade":
		cmd.RunUpgrade(os.Args[2:])
	case "serve":
		cmd.RunServe(os.Args[2:])
	case "templates":
		cmd.RunTemplates(os.Args[2:])
	case "version", "--version":
		fmt.Println("shotforge", version.Current)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `shotforge: HTML/CSS screenshot templates for app-store submissions.

Usage:
    shotforge init [template]        # scaffold a project (see 'templates')
    shotforge templates              # list shipped templates
    shotforge serve [-port N]        # preview templates with live reload
    shotforge upgrade                # sync templates with this binary
    shotforge upgrade --dry-run      # show pending template changes only
    shotforge upgrade --diff         # include line-level diffs
    shotforge upgrade --force        # skip version check and prompt
    shotforge version

Common flags:
    -project <dir>    project directory (default: screenshots/)
`)
}
