package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shivam5475/scriptai/internal/model"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "projects"))
}

func sampleProject(name string) *model.Project {
	return &model.Project{
		Name: name,
		History: []model.GenerationEvent{
			{Kind: model.KindOutline, Content: "Act 1...", Timestamp: "2024-03-01 10:00:00"},
			{Kind: model.KindScene, Content: "INT. DINER - NIGHT", Timestamp: "2024-03-01 10:05:00"},
		},
		Artifacts: map[string]string{
			"outline_01ABC": "Act 1...",
		},
		SavedAt: "2024-03-01 10:06:00",
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p := sampleProject("Heist Movie")
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx, "Heist Movie")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != p.Name {
		t.Errorf("expected name %q, got %q", p.Name, got.Name)
	}
	if !reflect.DeepEqual(got.History, p.History) {
		t.Errorf("history mismatch: %+v vs %+v", got.History, p.History)
	}
	if !reflect.DeepEqual(got.Artifacts, p.Artifacts) {
		t.Errorf("artifacts mismatch: %+v vs %+v", got.Artifacts, p.Artifacts)
	}
	if got.SavedAt != p.SavedAt {
		t.Errorf("expected saved_at %q, got %q", p.SavedAt, got.SavedAt)
	}
}

func TestLoadNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load(context.Background(), "nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load(context.Background(), "broken")
	if err == nil {
		t.Fatal("expected error for malformed record")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("malformed record must not look absent: %v", err)
	}
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ok, err := s.Exists("Demo")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Error("expected Demo to be absent")
	}

	if err := s.Save(ctx, sampleProject("Demo")); err != nil {
		t.Fatalf("save: %v", err)
	}
	ok, err = s.Exists("Demo")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Error("expected Demo to exist after save")
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// Missing directory means no projects yet, not an error.
	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no projects, got %v", names)
	}

	s.Save(ctx, sampleProject("beta"))
	s.Save(ctx, sampleProject("alpha"))

	names, err = s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"alpha", "beta"}) {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p := sampleProject("Demo")
	s.Save(ctx, p)

	p.Artifacts["scene_01XYZ"] = "EXT. ROOFTOP - DAWN"
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.Load(ctx, "Demo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Artifacts) != 2 {
		t.Errorf("expected 2 artifacts after overwrite, got %d", len(got.Artifacts))
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.Save(ctx, sampleProject("Demo")); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSanitizedNames(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p := sampleProject("My Film: Part 2/3")
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	// The record stays loadable under the original name.
	got, err := s.Load(ctx, "My Film: Part 2/3")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "My Film: Part 2/3" {
		t.Errorf("expected original name preserved, got %q", got.Name)
	}

	// The file itself must not escape the projects directory.
	entries, _ := os.ReadDir(s.dir)
	if len(entries) != 1 {
		t.Fatalf("expected 1 file, got %d", len(entries))
	}
	if strings.ContainsAny(entries[0].Name(), "/:") {
		t.Errorf("unsafe characters in file name %q", entries[0].Name())
	}
}

func TestInvalidName(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save(context.Background(), model.NewProject("   ")); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := s.Load(context.Background(), "..."); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}
