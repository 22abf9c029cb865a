package main

import (
	"errors"
	"fmt"
)

// errNoInput is reported when neither --input nor the config names a grid.
var errNoInput = errors.New("a grid file is required (--input or input: in config)")

// ConfigError wraps a failure to assemble the run configuration: loading
// the file, applying flags, or building the logger and policies.
type ConfigError struct {
	// Source is the file path or setting that was being resolved.
	Source string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SolveError wraps a failure after configuration succeeded.
type SolveError struct {
	// Stage is one of "grid", "search" or "metrics".
	Stage string
	Err   error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("solve failed at %s: %v", e.Stage, e.Err)
}

func (e *SolveError) Unwrap() error {
	return e.Err
}
