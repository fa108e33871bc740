package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shivam5475/scriptai/internal/render"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a project's artifacts to files",
		Long:  "Write each saved artifact of a persisted project to its own file, as plain text or rendered HTML.",
		Args:  cobra.ExactArgs(1),
		Run:   runExport,
	}

	cmd.Flags().String("dir", ".", "Destination directory")
	cmd.Flags().Bool("html", false, "Render artifacts as HTML pages instead of plain text")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	dir, _ := cmd.Flags().GetString("dir")
	asHTML, _ := cmd.Flags().GetBool("html")

	p, err := openStore().Load(cmd.Context(), args[0])
	if err != nil {
		exitErr("load project", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		exitErr("create export dir", err)
	}

	for key, content := range p.Artifacts {
		name := key + ".txt"
		out := content + "\n"
		if asHTML {
			name = key + ".html"
			out, err = render.Page(key, content)
			if err != nil {
				exitErr("render "+key, err)
			}
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(out), 0o644); err != nil {
			exitErr("write "+name, err)
		}
	}

	fmt.Printf("exported %d artifacts to %s\n", len(p.Artifacts), dir)
}
