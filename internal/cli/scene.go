package cli

import (
	"github.com/spf13/cobra"

	"github.com/shivam5475/scriptai/internal/generate"
	"github.com/shivam5475/scriptai/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Generate a scene description",
		Run:   runScene,
	}

	cmd.Flags().String("location", "", "Scene location (required)")
	cmd.Flags().String("time", "Night", "Time of day: Dawn, Morning, Noon, Afternoon, Dusk, Evening, Night, Midnight")
	cmd.Flags().String("mood", "", "Mood or atmosphere")
	cmd.Flags().String("purpose", "", "Scene purpose or goals")
	cmd.MarkFlagRequired("location")
	addToolFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func runScene(cmd *cobra.Command, args []string) {
	location, _ := cmd.Flags().GetString("location")
	timeOfDay, _ := cmd.Flags().GetString("time")
	mood, _ := cmd.Flags().GetString("mood")
	purpose, _ := cmd.Flags().GetString("purpose")

	prompt := generate.BuildScenePrompt(generate.SceneParams{
		Location:  location,
		TimeOfDay: timeOfDay,
		Mood:      mood,
		Purpose:   purpose,
	})
	runTool(cmd, model.KindScene, prompt)
}
