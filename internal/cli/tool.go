package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shivam5475/scriptai/internal/session"
)

// addToolFlags registers the flags shared by every generation command.
func addToolFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("project", "p", "", "Project to work in (created if no record exists)")
	cmd.Flags().Bool("load", false, "Continue the project from its persisted record")
	cmd.Flags().Bool("overwrite", false, "Start the project fresh even if a record exists")
	cmd.Flags().BoolP("save", "s", false, "Save the result as a project artifact and persist")
	cmd.Flags().StringP("out", "o", "", "Also write the result to a file")
}

// resolveProject applies the project selection flags. A name that already
// has a persisted record is never taken over silently.
func resolveProject(ctx context.Context, sess *session.Session, name string, load, overwrite bool) error {
	switch {
	case load:
		_, err := sess.LoadProject(ctx, name)
		return err
	case overwrite:
		_, err := sess.OverwriteProject(name)
		return err
	default:
		_, err := sess.CreateProject(ctx, name)
		if errors.Is(err, session.ErrProjectExists) {
			return fmt.Errorf("%w (pass --load to continue it or --overwrite to start fresh)", err)
		}
		return err
	}
}

// runTool is the common body of the generation commands: resolve the
// project, generate, print, and optionally save and persist.
func runTool(cmd *cobra.Command, kind, prompt string) {
	project, _ := cmd.Flags().GetString("project")
	load, _ := cmd.Flags().GetBool("load")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	save, _ := cmd.Flags().GetBool("save")
	outPath, _ := cmd.Flags().GetString("out")

	if save && project == "" {
		exitErr("save", errors.New("--save requires --project"))
	}

	sess, err := newSession()
	if err != nil {
		exitErr("configure generator", err)
	}

	ctx := cmd.Context()
	if project != "" {
		if err := resolveProject(ctx, sess, project, load, overwrite); err != nil {
			exitErr("select project", err)
		}
	}

	ev, err := sess.Generate(ctx, kind, prompt)
	if err != nil {
		exitErr("generate", err)
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(ev, "", "  ")
		fmt.Println(string(b))
	} else {
		fmt.Println(ev.Content)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(ev.Content+"\n"), 0o644); err != nil {
			exitErr("write output file", err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	}

	if save {
		key, err := sess.SaveArtifact(kind, ev.Content)
		if err != nil {
			exitErr("save artifact", err)
		}
		if err := sess.Persist(ctx); err != nil {
			exitErr("persist project", err)
		}
		fmt.Fprintf(os.Stderr, "saved %s to project %q\n", key, project)
	}
}
