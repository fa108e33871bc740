// Package cli implements the scriptai CLI commands.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shivam5475/scriptai/internal/generate"
	"github.com/shivam5475/scriptai/internal/session"
	"github.com/shivam5475/scriptai/internal/store"
)

var (
	projectsDir string
	formatFlag  string
	timeoutFlag time.Duration
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "scriptai",
	Short: "AI screenplay co-writer",
	Long: "Generate screenplay outlines, dialogue, character profiles, scene descriptions,\n" +
		"and plot solutions with a hosted text model, and save them into named projects.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&projectsDir, "projects-dir", "d", "", "Projects directory (default: $SCRIPTAI_PROJECTS_DIR or ./projects)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
	RootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", generate.DefaultTimeout, "Per-call generation timeout")
}

func getProjectsDir() string {
	if projectsDir != "" {
		return projectsDir
	}
	if env := os.Getenv("SCRIPTAI_PROJECTS_DIR"); env != "" {
		return env
	}
	return "projects"
}

func openStore() *store.FileStore {
	return store.NewFileStore(getProjectsDir())
}

// newSession builds a session with a generator from the environment.
func newSession() (*session.Session, error) {
	gen, err := generate.NewFromEnv(timeoutFlag)
	if err != nil {
		return nil, err
	}
	return session.New(openStore(), gen), nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
