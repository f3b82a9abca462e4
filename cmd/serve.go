package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/shotforge/shotforge/internal/preview"
	"github.com/shotforge/shotforge/internal/project"
)

// RunServe handles the "serve" subcommand: a static preview server with
// live reload over SSE.
func RunServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	projectDir := fs.String("project", project.DefaultDir, "Project directory to serve")
	port := fs.Int("port", 4400, "Port to listen on")
	fs.Parse(args)

	if !project.Exists(*projectDir) {
		fmt.Fprintf(os.Stderr, "Error: no project found at %s (run 'shotforge init' first)\n", *projectDir)
		os.Exit(1)
	}

	addr := fmt.Sprintf("localhost:%d", *port)
	fmt.Printf("Previewing %s at http://%s/template/\n", *projectDir, addr)
	fmt.Println("Live reload is on; press Ctrl-C to stop.")

	if err := preview.NewServer(*projectDir).ListenAndServe(addr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
