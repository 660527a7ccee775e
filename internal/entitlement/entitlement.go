// Package entitlement is the local access gate: full access is either
// activated outright or covered by a time-limited trial that starts on
// first run. The data core does not consult it; the command layer does,
// before any write.
package entitlement

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// TrialDuration is how long the free trial lasts from first launch.
const TrialDuration = 7 * 24 * time.Hour

const stateFile = "entitlement.json"

type state struct {
	Pro          bool      `json:"pro"`
	TrialStarted time.Time `json:"trialStarted"`
}

// Status is the answer the rest of the app cares about.
type Status struct {
	Pro         bool
	TrialActive bool
	TrialLeft   time.Duration
}

// HasAccess is the single yes/no gate the UI enforces before writes.
func (s Status) HasAccess() bool {
	return s.Pro || s.TrialActive
}

// DefaultDir returns the homekeep state directory.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".homekeep"), nil
}

// Check loads the gate state from dir, starting the trial on first call.
func Check(dir string) (Status, error) {
	st, err := load(dir)
	if err != nil {
		return Status{}, err
	}

	left := TrialDuration - time.Since(st.TrialStarted)
	if left < 0 {
		left = 0
	}
	return Status{Pro: st.Pro, TrialActive: left > 0, TrialLeft: left}, nil
}

// Activate grants permanent access.
func Activate(dir string) error {
	st, err := load(dir)
	if err != nil {
		return err
	}
	st.Pro = true
	return save(dir, st)
}

func load(dir string) (state, error) {
	raw, err := os.ReadFile(filepath.Join(dir, stateFile))
	if errors.Is(err, os.ErrNotExist) {
		// First run: the trial clock starts now.
		st := state{TrialStarted: time.Now()}
		if err := save(dir, st); err != nil {
			return state{}, err
		}
		return st, nil
	}
	if err != nil {
		return state{}, err
	}

	var st state
	if err := json.Unmarshal(raw, &st); err != nil {
		return state{}, err
	}
	return st, nil
}

func save(dir string, st state) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, stateFile), raw, 0644)
}
