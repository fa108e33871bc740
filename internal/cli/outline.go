package cli

import (
	"github.com/spf13/cobra"

	"github.com/shivam5475/scriptai/internal/generate"
	"github.com/shivam5475/scriptai/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Generate a screenplay outline",
		Long:  "Generate a three-act screenplay outline from genre, theme, protagonist, and tone.",
		Run:   runOutline,
	}

	cmd.Flags().String("genre", "Drama", "Genre (Drama, Comedy, Action, Sci-Fi, Horror, Romance, Thriller, Fantasy, Mystery)")
	cmd.Flags().String("theme", "", "Theme, e.g. Redemption, Love, Justice (required)")
	cmd.Flags().String("protagonist", "", "Protagonist description (required)")
	cmd.Flags().String("tone", "Neutral", "Tone: Dark, Serious, Neutral, Light, Humorous")
	cmd.Flags().String("detail", "Moderate", "Outline detail: Concise, Moderate, Detailed")
	cmd.MarkFlagRequired("theme")
	cmd.MarkFlagRequired("protagonist")
	addToolFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func runOutline(cmd *cobra.Command, args []string) {
	genre, _ := cmd.Flags().GetString("genre")
	theme, _ := cmd.Flags().GetString("theme")
	protagonist, _ := cmd.Flags().GetString("protagonist")
	tone, _ := cmd.Flags().GetString("tone")
	detail, _ := cmd.Flags().GetString("detail")

	prompt := generate.BuildOutlinePrompt(generate.OutlineParams{
		Genre:       genre,
		Theme:       theme,
		Protagonist: protagonist,
		Tone:        tone,
		Detail:      detail,
	})
	runTool(cmd, model.KindOutline, prompt)
}
