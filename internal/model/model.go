// Package model defines the data structures shared by the CLI's adapters and
// controllers.
package model

import "time"

// Path represents a file system path.
type Path string

// Record is the journaled, serializable form of one leaf result. The
// counterexample is flattened to its rendered text so records stay
// gob/yaml-friendly regardless of the generated value's type.
type Record struct {
	Name           string   `yaml:"name"`
	Status         string   `yaml:"status"`
	Trials         int      `yaml:"trials,omitempty"`
	Discards       int      `yaml:"discards,omitempty"`
	Message        string   `yaml:"message,omitempty"`
	Notes          []string `yaml:"notes,omitempty"`
	Seed           string   `yaml:"seed"`
	Counterexample string   `yaml:"counterexample,omitempty"`
}

// Replay captures what is needed to reproduce the failures of a run: the run
// seed, the prefix it was invoked with, and the failing leaves with their own
// derived seeds.
type Replay struct {
	Seed     string          `yaml:"seed"`
	Prefix   string          `yaml:"prefix,omitempty"`
	Failures []ReplayFailure `yaml:"failures,omitempty"`
	Journal  Path            `yaml:"journal,omitempty"`
	When     time.Time       `yaml:"when"`
}

// ReplayFailure points at one failing leaf.
type ReplayFailure struct {
	Name string `yaml:"name"`
	Seed string `yaml:"seed"`
}
