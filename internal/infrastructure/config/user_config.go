package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const userConfigFile = "preferences.json"

// UserConfig holds per-user CLI preferences kept in ~/.factory-planner
type UserConfig struct {
	// Project solved when the CLI is given no project argument
	DefaultProject string `json:"default_project,omitempty"`

	// Solver used when neither a flag nor the config file names one
	DefaultSolver string `json:"default_solver,omitempty"`
}

// UserConfigHandler reads and writes the preferences file
type UserConfigHandler struct {
	path string
}

// NewUserConfigHandler returns a handler for the current user's preferences
func NewUserConfigHandler() (*UserConfigHandler, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return NewUserConfigHandlerAt(filepath.Join(home, ".factory-planner"))
}

// NewUserConfigHandlerAt returns a handler for preferences stored under dir
func NewUserConfigHandlerAt(dir string) (*UserConfigHandler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}
	return &UserConfigHandler{path: filepath.Join(dir, userConfigFile)}, nil
}

// Load returns the stored preferences; a missing file yields empty preferences
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	data, err := os.ReadFile(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &UserConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	prefs := &UserConfig{}
	if err := json.Unmarshal(data, prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences %s: %w", h.path, err)
	}
	return prefs, nil
}

// Save replaces the preferences file through a temporary sibling and a rename
func (h *UserConfigHandler) Save(prefs *UserConfig) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Rename(tmp, h.path); err != nil {
		return fmt.Errorf("failed to replace preferences: %w", err)
	}
	return nil
}

func (h *UserConfigHandler) update(change func(*UserConfig)) error {
	prefs, err := h.Load()
	if err != nil {
		return err
	}
	change(prefs)
	return h.Save(prefs)
}

// SetDefaultProject stores the project used when none is given
func (h *UserConfigHandler) SetDefaultProject(project string) error {
	return h.update(func(p *UserConfig) { p.DefaultProject = project })
}

// SetDefaultSolver stores the solver used when none is given
func (h *UserConfigHandler) SetDefaultSolver(solver string) error {
	return h.update(func(p *UserConfig) { p.DefaultSolver = solver })
}

// ClearDefaults removes every stored preference
func (h *UserConfigHandler) ClearDefaults() error {
	return h.Save(&UserConfig{})
}

// GetConfigPath returns the location of the preferences file
func (h *UserConfigHandler) GetConfigPath() string {
	return h.path
}
