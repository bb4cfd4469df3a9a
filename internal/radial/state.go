package radial

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// State is an opaque snapshot owned by whoever created it. Hosts chain their
// own state through SavedState.Super.
type State any

const stateVersion = 1

// Defaults for the auxiliary snapshot fields. They are independent of the
// live view defaults.
const (
	savedStartAngle                  = 270.0
	savedMaxProgress                 = 100.0
	savedProgressThickness           = 60.0
	savedProgressBackgroundThickness = 10.0
)

// ErrUnknownStateVersion is returned by DecodeState for snapshots written by
// an incompatible version.
var ErrUnknownStateVersion = errors.New("unknown state version")

// SavedState is the snapshot a View leaves behind when its host tears it
// down. Only Progress is reapplied on restore; the other fields are carried
// for readers of the snapshot.
type SavedState struct {
	Version                     int     `yaml:"version"`
	Progress                    float64 `yaml:"progress"`
	StartAngle                  float64 `yaml:"start_angle"`
	MaxProgress                 float64 `yaml:"max_progress"`
	ProgressThickness           float64 `yaml:"progress_thickness"`
	ProgressBackgroundThickness float64 `yaml:"progress_background_thickness"`
	Super                       State   `yaml:"super,omitempty"`
}

func newSavedState(super State) *SavedState {
	return &SavedState{
		Version:                     stateVersion,
		StartAngle:                  savedStartAngle,
		MaxProgress:                 savedMaxProgress,
		ProgressThickness:           savedProgressThickness,
		ProgressBackgroundThickness: savedProgressBackgroundThickness,
		Super:                       super,
	}
}

// SaveState snapshots the view, chained to the host's super state.
func (v *View) SaveState(super State) *SavedState {
	s := newSavedState(super)
	s.Progress = v.progress
	return s
}

// RestoreState reapplies a snapshot made by SaveState through the progress
// property setter, so the listener hears about it. It returns the chained
// super state. Anything that is not a *SavedState is returned untouched and
// the view keeps its current state.
func (v *View) RestoreState(s State) State {
	saved, ok := s.(*SavedState)
	if !ok || saved == nil {
		return s
	}
	v.SetProgressValue(saved.Progress)
	return saved.Super
}

// EncodeState serializes a snapshot as YAML.
func EncodeState(s *SavedState) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// DecodeState parses a snapshot written by EncodeState.
func DecodeState(data []byte) (State, error) {
	s := newSavedState(nil)
	s.Version = 0
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if s.Version != stateVersion {
		return nil, fmt.Errorf("decode state: %w %d", ErrUnknownStateVersion, s.Version)
	}
	return s, nil
}
