package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/shivam5475/scriptai/internal/model"
)

// ErrInvalidName is returned for names that cannot form a storage key.
var ErrInvalidName = errors.New("invalid project name")

// FileStore implements Store with one JSON file per project in a directory.
// Writes go through a temp file and rename, so readers never see a partial
// record. Saves to the same name within a process are serialized with a
// per-name mutex; across processes the last complete write wins.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileStore creates a store rooted at dir. The directory itself is
// created lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9 ._-]+`)

// sanitizeName maps a project name to a safe file stem.
func sanitizeName(name string) (string, error) {
	s := unsafeChars.ReplaceAllString(name, "-")
	s = strings.Trim(s, " .")
	if s == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return s, nil
}

func (s *FileStore) path(name string) (string, error) {
	stem, err := sanitizeName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, stem+".json"), nil
}

func (s *FileStore) nameLock(stem string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[stem]
	if !ok {
		l = &sync.Mutex{}
		s.locks[stem] = l
	}
	return l
}

func (s *FileStore) Save(ctx context.Context, p *model.Project) error {
	path, err := s.path(p.Name)
	if err != nil {
		return err
	}

	l := s.nameLock(filepath.Base(path))
	l.Lock()
	defer l.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create projects dir: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project %q: %w", p.Name, err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write project %q: %w", p.Name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write project %q: %w", p.Name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write project %q: %w", p.Name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write project %q: %w", p.Name, err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context, name string) (*model.Project, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read project %q: %w", name, err)
	}

	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode project %q: %w", name, err)
	}
	if p.Name == "" {
		p.Name = name
	}
	if p.Artifacts == nil {
		p.Artifacts = map[string]string{}
	}
	if p.History == nil {
		p.History = []model.GenerationEvent{}
	}
	return &p, nil
}

func (s *FileStore) Exists(name string) (bool, error) {
	path, err := s.path(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat project %q: %w", name, err)
	}
	return true, nil
}

func (s *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
