package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/shivam5475/scriptai/internal/session"
)

func init() {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage persisted projects",
	}

	initCmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a project and persist an empty record",
		Args:  cobra.ExactArgs(1),
		Run:   runProjectInit,
	}
	initCmd.Flags().Bool("overwrite", false, "Replace an existing record with an empty project")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List persisted projects",
		Run:   runProjectList,
	}

	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Display a persisted project's history and artifacts",
		Args:  cobra.ExactArgs(1),
		Run:   runProjectShow,
	}

	projectCmd.AddCommand(initCmd, listCmd, showCmd)
	RootCmd.AddCommand(projectCmd)
}

func runProjectInit(cmd *cobra.Command, args []string) {
	name := args[0]
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	ctx := cmd.Context()

	sess := session.New(openStore(), nil)
	var err error
	if overwrite {
		_, err = sess.OverwriteProject(name)
	} else {
		_, err = sess.CreateProject(ctx, name)
		if errors.Is(err, session.ErrProjectExists) {
			err = fmt.Errorf("%w (pass --overwrite to replace it)", err)
		}
	}
	if err != nil {
		exitErr("create project", err)
	}
	if err := sess.Persist(ctx); err != nil {
		exitErr("persist project", err)
	}
	fmt.Printf("created project %q\n", name)
}

func runProjectList(cmd *cobra.Command, args []string) {
	names, err := openStore().List(cmd.Context())
	if err != nil {
		exitErr("list projects", err)
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(names, "", "  ")
		fmt.Println(string(b))
		return
	}
	for _, n := range names {
		fmt.Println(n)
	}
}

func runProjectShow(cmd *cobra.Command, args []string) {
	p, err := openStore().Load(cmd.Context(), args[0])
	if err != nil {
		exitErr("load project", err)
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(p, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Printf("Project: %s\n", p.Name)
	if p.SavedAt != "" {
		fmt.Printf("Saved:   %s\n", p.SavedAt)
	}

	fmt.Printf("\nArtifacts (%d):\n", len(p.Artifacts))
	keys := make([]string, 0, len(p.Artifacts))
	for k := range p.Artifacts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s\n", k)
	}

	fmt.Printf("\nHistory (%d, newest first):\n", len(p.History))
	for i := len(p.History) - 1; i >= 0; i-- {
		ev := p.History[i]
		fmt.Printf("  %s  %s\n", ev.Timestamp, ev.Kind)
	}
}
