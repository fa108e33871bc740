package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/shivam5475/scriptai/internal/model"
)

func TestAppendKeepsOrder(t *testing.T) {
	l := New()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		l.Append(model.NewGenerationEvent(model.KindOutline, fmt.Sprintf("draft %d", i), at))
	}

	events := l.All()
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}
	if l.Len() != 5 {
		t.Errorf("expected Len 5, got %d", l.Len())
	}
	for i, ev := range events {
		want := fmt.Sprintf("draft %d", i)
		if ev.Content != want {
			t.Errorf("event %d: expected %q, got %q", i, want, ev.Content)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	l := New()
	l.Append(model.GenerationEvent{Kind: model.KindScene, Content: "a dark alley"})

	events := l.All()
	events[0].Content = "mutated"

	if got := l.All()[0].Content; got != "a dark alley" {
		t.Errorf("log was mutated through All result: %q", got)
	}
}

func TestRestore(t *testing.T) {
	l := New()
	l.Append(model.GenerationEvent{Kind: model.KindOutline, Content: "old"})

	snapshot := []model.GenerationEvent{
		{Kind: model.KindDialogue, Content: "one"},
		{Kind: model.KindScene, Content: "two"},
	}
	l.Restore(snapshot)

	events := l.All()
	if len(events) != 2 {
		t.Fatalf("expected 2 events after restore, got %d", len(events))
	}
	if events[0].Content != "one" || events[1].Content != "two" {
		t.Errorf("unexpected events after restore: %+v", events)
	}

	// The restored log must not alias the caller's slice.
	snapshot[0].Content = "mutated"
	if l.All()[0].Content != "one" {
		t.Error("restored log aliases the input slice")
	}
}
