package cli

import (
	"github.com/spf13/cobra"

	"github.com/shivam5475/scriptai/internal/generate"
	"github.com/shivam5475/scriptai/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "character",
		Short: "Generate a character profile",
		Run:   runCharacter,
	}

	cmd.Flags().String("name", "", "Character name (required)")
	cmd.Flags().Int("age", 30, "Character age")
	cmd.Flags().String("occupation", "", "Occupation")
	cmd.Flags().String("background", "", "Character background")
	cmd.Flags().String("goals", "", "Goals and motivations")
	cmd.MarkFlagRequired("name")
	addToolFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func runCharacter(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	age, _ := cmd.Flags().GetInt("age")
	occupation, _ := cmd.Flags().GetString("occupation")
	background, _ := cmd.Flags().GetString("background")
	goals, _ := cmd.Flags().GetString("goals")

	prompt := generate.BuildCharacterPrompt(generate.CharacterParams{
		Name:       name,
		Age:        age,
		Occupation: occupation,
		Background: background,
		Goals:      goals,
	})
	runTool(cmd, model.KindCharacter, prompt)
}
