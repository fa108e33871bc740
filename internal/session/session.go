// Package session implements the writing session: the generation history,
// the single active project, and the operations the CLI drives.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/shivam5475/scriptai/internal/generate"
	"github.com/shivam5475/scriptai/internal/history"
	"github.com/shivam5475/scriptai/internal/model"
	"github.com/shivam5475/scriptai/internal/store"
)

var (
	// ErrNoActiveProject is returned when a save needs a project first.
	ErrNoActiveProject = errors.New("no active project")

	// ErrProjectExists is returned by CreateProject when a persisted record
	// already carries the name. The caller chooses: load it or overwrite.
	ErrProjectExists = errors.New("project already exists")
)

// Session holds one writing session's state. There are no package-level
// singletons; every session is isolated, and at most one project is active
// in a session at a time.
type Session struct {
	store store.Store
	gen   generate.Generator
	log   *history.Log

	mu     sync.Mutex
	active *model.Project

	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// New creates a session over the given store and generator.
func New(st store.Store, gen generate.Generator) *Session {
	return &Session{
		store:   st,
		gen:     gen,
		log:     history.New(),
		now:     time.Now,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// Record appends a successful generation to the session history and
// returns the event. Pure in-memory append.
func (s *Session) Record(kind, content string) model.GenerationEvent {
	ev := model.NewGenerationEvent(kind, content, s.now())
	s.log.Append(ev)
	return ev
}

// Generate runs the prompt through the text generator and records the
// result. Failed attempts leave the history untouched.
func (s *Session) Generate(ctx context.Context, kind, prompt string) (model.GenerationEvent, error) {
	if s.gen == nil {
		return model.GenerationEvent{}, errors.New("no generator configured")
	}
	content, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return model.GenerationEvent{}, fmt.Errorf("generate %s: %w", kind, err)
	}
	return s.Record(kind, strings.TrimSpace(content)), nil
}

// CreateProject makes a new empty project the active one. If a persisted
// record with the name exists it returns ErrProjectExists instead of
// silently shadowing prior work.
func (s *Session) CreateProject(ctx context.Context, name string) (*model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", store.ErrInvalidName)
	}
	exists, err := s.store.Exists(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", ErrProjectExists, name)
	}
	return s.OverwriteProject(name)
}

// OverwriteProject makes a new empty project the active one regardless of
// any persisted record. The record itself is only replaced on Persist.
func (s *Session) OverwriteProject(name string) (*model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", store.ErrInvalidName)
	}
	p := model.NewProject(name)
	s.mu.Lock()
	s.active = p
	s.mu.Unlock()
	return p, nil
}

// LoadProject reads a persisted project, makes it active, and restores its
// history snapshot into the session log. On failure the active project and
// history are unchanged.
func (s *Session) LoadProject(ctx context.Context, name string) (*model.Project, error) {
	p, err := s.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.active = p
	s.mu.Unlock()
	s.log.Restore(p.History)
	return p, nil
}

// SaveArtifact stores content in the active project under a fresh key and
// returns the key. It does not persist; call Persist for that. Keys embed a
// monotonic ULID, so same-kind saves in the same instant never collide.
func (s *Session) SaveArtifact(kind, content string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return "", ErrNoActiveProject
	}
	key := model.KindSlug(kind) + "_" + ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
	s.active.Artifacts[key] = content
	return key, nil
}

// Persist snapshots the session history into the active project, stamps it,
// and writes the full record. In-memory state stays authoritative on failure.
func (s *Session) Persist(ctx context.Context) error {
	s.mu.Lock()
	p := s.active
	s.mu.Unlock()
	if p == nil {
		return ErrNoActiveProject
	}
	p.History = s.log.All()
	p.SavedAt = s.now().Format(model.TimestampFormat)
	return s.store.Save(ctx, p)
}

// Active returns the active project, or nil.
func (s *Session) Active() *model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// History returns the session's generation events, oldest first.
func (s *Session) History() []model.GenerationEvent {
	return s.log.All()
}
