package cli

import (
	"github.com/spf13/cobra"

	"github.com/shivam5475/scriptai/internal/generate"
	"github.com/shivam5475/scriptai/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "dialogue",
		Short: "Generate a dialogue scene",
		Long:  "Generate screenplay-formatted dialogue between two characters.",
		Run:   runDialogue,
	}

	cmd.Flags().String("char1", "", "Character 1 name and description (required)")
	cmd.Flags().String("char2", "", "Character 2 name and description (required)")
	cmd.Flags().String("setting", "", "Scene setting")
	cmd.Flags().String("emotion", "Tension", "Primary emotion: Tension, Love, Anger, Fear, Joy, Sadness, Suspicion, Hope")
	cmd.Flags().String("context", "", "Scene context or background")
	cmd.MarkFlagRequired("char1")
	cmd.MarkFlagRequired("char2")
	addToolFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func runDialogue(cmd *cobra.Command, args []string) {
	char1, _ := cmd.Flags().GetString("char1")
	char2, _ := cmd.Flags().GetString("char2")
	setting, _ := cmd.Flags().GetString("setting")
	emotion, _ := cmd.Flags().GetString("emotion")
	sceneCtx, _ := cmd.Flags().GetString("context")

	prompt := generate.BuildDialoguePrompt(generate.DialogueParams{
		Character1: char1,
		Character2: char2,
		Setting:    setting,
		Emotion:    emotion,
		Context:    sceneCtx,
	})
	runTool(cmd, model.KindDialogue, prompt)
}
