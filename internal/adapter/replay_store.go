// Package adapter provides the CLI's persistence adapters: the replay file
// and the result journal.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/bbarker/easytest/internal/model"
)

// ErrNoReplay is returned when no replay file exists yet.
var ErrNoReplay = errors.New("no replay file found")

// ReplayStore persists the replay capture of the most recent run.
type ReplayStore interface {
	Save(path m.Path, replay m.Replay) error
	Load(path m.Path) (m.Replay, error)
}

// LocalReplayStore stores the replay capture as a YAML file.
type LocalReplayStore struct{}

// NewLocalReplayStore creates a ReplayStore backed by the local file system.
func NewLocalReplayStore() *LocalReplayStore {
	return &LocalReplayStore{}
}

// Save writes the replay capture to path.
func (s *LocalReplayStore) Save(path m.Path, replay m.Replay) error {
	data, err := yaml.Marshal(replay)
	if err != nil {
		return fmt.Errorf("marshal replay: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write replay file: %w", err)
	}

	return nil
}

// Load reads the replay capture from path. A missing file yields ErrNoReplay.
func (s *LocalReplayStore) Load(path m.Path) (m.Replay, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.Replay{}, ErrNoReplay
		}
		return m.Replay{}, fmt.Errorf("read replay file: %w", err)
	}

	var replay m.Replay
	if err := yaml.Unmarshal(data, &replay); err != nil {
		return m.Replay{}, fmt.Errorf("parse replay file: %w", err)
	}

	return replay, nil
}
