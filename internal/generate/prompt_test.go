package generate

import (
	"strings"
	"testing"
)

func TestBuildOutlinePrompt(t *testing.T) {
	p := BuildOutlinePrompt(OutlineParams{
		Genre:       "Sci-Fi",
		Theme:       "Redemption",
		Protagonist: "A disgraced pilot",
		Tone:        "Dark",
		Detail:      "Detailed",
	})

	for _, want := range []string{
		"Genre: Sci-Fi",
		"Theme: Redemption",
		"Protagonist: A disgraced pilot",
		"Tone: Dark",
		"Detailed screenplay outline",
		"Act 1 (Setup - 25%)",
		"Act 2 (Confrontation - 50%)",
		"Act 3 (Resolution - 25%)",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("outline prompt missing %q", want)
		}
	}
}

func TestBuildDialoguePrompt(t *testing.T) {
	p := BuildDialoguePrompt(DialogueParams{
		Character1: "MARA, a tired detective",
		Character2: "JULES, her informant",
		Setting:    "Parking garage",
		Emotion:    "Suspicion",
		Context:    "Jules has been lying",
	})

	for _, want := range []string{
		"Character 1: MARA, a tired detective",
		"Character 2: JULES, her informant",
		"Setting: Parking garage",
		"Emotional Context: Suspicion",
		"Character names in CAPS",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("dialogue prompt missing %q", want)
		}
	}
}

func TestBuildCharacterPrompt(t *testing.T) {
	p := BuildCharacterPrompt(CharacterParams{
		Name:       "Elena",
		Age:        42,
		Occupation: "Surgeon",
		Background: "Grew up on a farm",
		Goals:      "Prove herself",
	})

	for _, want := range []string{
		"Name: Elena",
		"Age: 42",
		"Occupation: Surgeon",
		"Psychological profile",
		"Character arc potential",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("character prompt missing %q", want)
		}
	}
}

func TestBuildScenePrompt(t *testing.T) {
	p := BuildScenePrompt(SceneParams{
		Location:  "Abandoned lighthouse",
		TimeOfDay: "Midnight",
		Mood:      "Ominous",
		Purpose:   "Reveal the letter",
	})

	for _, want := range []string{
		"Location: Abandoned lighthouse",
		"Time: Midnight",
		"Mood/Atmosphere: Ominous",
		"Sensory details",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("scene prompt missing %q", want)
		}
	}
}

func TestBuildPlotPrompt(t *testing.T) {
	p := BuildPlotPrompt(PlotParams{
		Problem: "The twist is predictable",
		Context: "Act 2 midpoint",
		Goals:   "Surprise without cheating",
	})

	for _, want := range []string{
		"Current Problem: The twist is predictable",
		"Story Context: Act 2 midpoint",
		"Conservative approach",
		"Character-focused resolution",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("plot prompt missing %q", want)
		}
	}
}
