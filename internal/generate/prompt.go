package generate

import (
	"fmt"
	"strings"
)

// OutlineParams describe a screenplay outline request.
type OutlineParams struct {
	Genre       string
	Theme       string
	Protagonist string
	Tone        string
	Detail      string // Concise, Moderate, Detailed
}

// BuildOutlinePrompt renders the outline request as a model prompt.
func BuildOutlinePrompt(p OutlineParams) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "As an expert screenwriter, create a detailed %s screenplay outline.\n", p.Detail)
	fmt.Fprintf(&sb, "Genre: %s\n", p.Genre)
	fmt.Fprintf(&sb, "Theme: %s\n", p.Theme)
	fmt.Fprintf(&sb, "Protagonist: %s\n", p.Protagonist)
	fmt.Fprintf(&sb, "Tone: %s\n\n", p.Tone)
	sb.WriteString("Provide a structured outline with:\n")
	sb.WriteString("1. Act 1 (Setup - 25%)\n")
	sb.WriteString("  - Inciting incident\n")
	sb.WriteString("  - First plot point\n")
	sb.WriteString("2. Act 2 (Confrontation - 50%)\n")
	sb.WriteString("  - Rising action\n")
	sb.WriteString("  - Midpoint\n")
	sb.WriteString("  - Falling action\n")
	sb.WriteString("3. Act 3 (Resolution - 25%)\n")
	sb.WriteString("  - Climax\n")
	sb.WriteString("  - Resolution\n\n")
	sb.WriteString("Include character arcs, emotional journey, and key story beats.\n")
	return sb.String()
}

// DialogueParams describe a dialogue scene request.
type DialogueParams struct {
	Character1 string
	Character2 string
	Setting    string
	Emotion    string
	Context    string
}

// BuildDialoguePrompt renders the dialogue request as a model prompt.
func BuildDialoguePrompt(p DialogueParams) string {
	var sb strings.Builder
	sb.WriteString("Generate natural, cinematic dialogue between two characters.\n")
	fmt.Fprintf(&sb, "Character 1: %s\n", p.Character1)
	fmt.Fprintf(&sb, "Character 2: %s\n", p.Character2)
	fmt.Fprintf(&sb, "Setting: %s\n", p.Setting)
	fmt.Fprintf(&sb, "Emotional Context: %s\n", p.Emotion)
	fmt.Fprintf(&sb, "Scene Context: %s\n\n", p.Context)
	sb.WriteString("Format in proper screenplay style:\n")
	sb.WriteString("- Character names in CAPS\n")
	sb.WriteString("- Brief action descriptions\n")
	sb.WriteString("- Natural, revealing dialogue\n")
	sb.WriteString("- Subtext and character voice\n")
	return sb.String()
}

// CharacterParams describe a character profile request.
type CharacterParams struct {
	Name       string
	Age        int
	Occupation string
	Background string
	Goals      string
}

// BuildCharacterPrompt renders the character request as a model prompt.
func BuildCharacterPrompt(p CharacterParams) string {
	var sb strings.Builder
	sb.WriteString("Create a detailed character profile for a screenplay.\n")
	fmt.Fprintf(&sb, "Name: %s\n", p.Name)
	fmt.Fprintf(&sb, "Age: %d\n", p.Age)
	fmt.Fprintf(&sb, "Occupation: %s\n", p.Occupation)
	fmt.Fprintf(&sb, "Background: %s\n", p.Background)
	fmt.Fprintf(&sb, "Goals/Motivations: %s\n\n", p.Goals)
	sb.WriteString("Include:\n")
	sb.WriteString("1. Physical description\n")
	sb.WriteString("2. Psychological profile\n")
	sb.WriteString("3. Personal history\n")
	sb.WriteString("4. Relationships\n")
	sb.WriteString("5. Internal conflicts\n")
	sb.WriteString("6. Character arc potential\n")
	return sb.String()
}

// SceneParams describe a scene description request.
type SceneParams struct {
	Location  string
	TimeOfDay string
	Mood      string
	Purpose   string
}

// BuildScenePrompt renders the scene request as a model prompt.
func BuildScenePrompt(p SceneParams) string {
	var sb strings.Builder
	sb.WriteString("Write a vivid, cinematic scene description.\n")
	fmt.Fprintf(&sb, "Location: %s\n", p.Location)
	fmt.Fprintf(&sb, "Time: %s\n", p.TimeOfDay)
	fmt.Fprintf(&sb, "Mood/Atmosphere: %s\n", p.Mood)
	fmt.Fprintf(&sb, "Scene Purpose: %s\n\n", p.Purpose)
	sb.WriteString("Include:\n")
	sb.WriteString("- Sensory details\n")
	sb.WriteString("- Visual composition\n")
	sb.WriteString("- Movement and dynamics\n")
	sb.WriteString("- Atmospheric elements\n")
	sb.WriteString("- Story-relevant details\n")
	return sb.String()
}

// PlotParams describe a plot-solutions request.
type PlotParams struct {
	Problem string
	Context string
	Goals   string
}

// BuildPlotPrompt renders the plot-challenge request as a model prompt.
func BuildPlotPrompt(p PlotParams) string {
	var sb strings.Builder
	sb.WriteString("Provide creative solutions for a screenplay's plot challenge.\n")
	fmt.Fprintf(&sb, "Current Problem: %s\n", p.Problem)
	fmt.Fprintf(&sb, "Story Context: %s\n", p.Context)
	fmt.Fprintf(&sb, "Desired Outcomes: %s\n\n", p.Goals)
	sb.WriteString("Offer three distinct solutions:\n")
	sb.WriteString("1. Conservative approach\n")
	sb.WriteString("2. Bold/unexpected direction\n")
	sb.WriteString("3. Character-focused resolution\n\n")
	sb.WriteString("For each solution, explain:\n")
	sb.WriteString("- How it moves the story forward\n")
	sb.WriteString("- Impact on characters\n")
	sb.WriteString("- Potential consequences\n")
	return sb.String()
}
