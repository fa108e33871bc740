package cli

import (
	"github.com/spf13/cobra"

	"github.com/shivam5475/scriptai/internal/generate"
	"github.com/shivam5475/scriptai/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "solutions",
		Short: "Generate solutions for a plot challenge",
		Long:  "Generate three distinct resolutions for a plot problem: conservative, bold, and character-focused.",
		Run:   runSolutions,
	}

	cmd.Flags().String("problem", "", "The plot challenge (required)")
	cmd.Flags().String("context", "", "Current story context")
	cmd.Flags().String("goals", "", "What the story needs to achieve")
	cmd.MarkFlagRequired("problem")
	addToolFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func runSolutions(cmd *cobra.Command, args []string) {
	problem, _ := cmd.Flags().GetString("problem")
	storyCtx, _ := cmd.Flags().GetString("context")
	goals, _ := cmd.Flags().GetString("goals")

	prompt := generate.BuildPlotPrompt(generate.PlotParams{
		Problem: problem,
		Context: storyCtx,
		Goals:   goals,
	})
	runTool(cmd, model.KindPlot, prompt)
}
