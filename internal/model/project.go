// Package model defines the core screenplay project data types.
package model

import "time"

// TimestampFormat is the wall-clock format used in events and project
// records. It matches the on-disk project file format.
const TimestampFormat = "2006-01-02 15:04:05"

// Generation kinds produced by the writing tools.
const (
	KindOutline   = "Screenplay Outline"
	KindDialogue  = "Character Dialogue"
	KindCharacter = "Character Profile"
	KindScene     = "Scene Description"
	KindPlot      = "Plot Solutions"
)

// KindSlug returns the artifact-key prefix for a generation kind.
func KindSlug(kind string) string {
	switch kind {
	case KindOutline:
		return "outline"
	case KindDialogue:
		return "dialogue"
	case KindCharacter:
		return "character"
	case KindScene:
		return "scene"
	case KindPlot:
		return "solutions"
	default:
		return "content"
	}
}

// GenerationEvent is a single successful generation. Immutable once created.
type GenerationEvent struct {
	Kind      string `json:"type"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// NewGenerationEvent builds an event stamped with the given time.
func NewGenerationEvent(kind, content string, at time.Time) GenerationEvent {
	return GenerationEvent{
		Kind:      kind,
		Content:   content,
		Timestamp: at.Format(TimestampFormat),
	}
}

// Project is a named collection of generated artifacts plus a snapshot of the
// history that produced them. The JSON shape is the durable record: one file
// per project, fully rewritten on each persist.
type Project struct {
	Name      string            `json:"name"`
	History   []GenerationEvent `json:"history"`
	Artifacts map[string]string `json:"generated_content"`
	SavedAt   string            `json:"timestamp"`
}

// NewProject returns an empty project with the given name.
func NewProject(name string) *Project {
	return &Project{
		Name:      name,
		History:   []GenerationEvent{},
		Artifacts: map[string]string{},
	}
}
