package easel

import (
	"encoding/json"
	"fmt"
	"image"
	"time"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	MS     int    `json:"ms,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	// Step is the granularity advance steps are split into, in ms.
	// Default 1.
	Step  int          `json:"step,omitempty"`
	Steps []scriptStep `json:"steps"`
}

// ScriptTarget is what a Script drives. Headless implements it.
type ScriptTarget interface {
	Advance(d time.Duration) error
	Snapshot() (image.Image, error)
	Resize(width, height int) error
}

// Shot is a labeled frame captured by a screenshot step.
type Shot struct {
	Label string
	At    time.Duration // script time when captured
	Image image.Image
}

// Script sequences time advances, resizes and screenshots for reproducible
// headless runs. Example:
//
//	{"step": 10, "steps": [
//	  {"action": "advance", "ms": 500},
//	  {"action": "screenshot", "label": "half-second"},
//	  {"action": "resize", "width": 320, "height": 240},
//	  {"action": "advance", "ms": 100},
//	  {"action": "screenshot", "label": "small"}
//	]}
type Script struct {
	step  time.Duration
	steps []scriptStep
}

// LoadScript parses and validates a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	if f.Step < 0 {
		return nil, fmt.Errorf("parse script: negative step %d", f.Step)
	}
	if f.Step == 0 {
		f.Step = 1
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "advance":
			if st.MS < 0 {
				return nil, fmt.Errorf("parse script: step %d: negative ms %d", i, st.MS)
			}
		case "screenshot":
		case "resize":
			if st.Width <= 0 || st.Height <= 0 {
				return nil, fmt.Errorf("parse script: step %d: bad size %dx%d", i, st.Width, st.Height)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{step: time.Duration(f.Step) * time.Millisecond, steps: f.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int { return len(s.steps) }

// Run executes every step against target and returns the captured shots in
// order. It stops at the first error.
func (s *Script) Run(target ScriptTarget) ([]Shot, error) {
	var (
		shots   []Shot
		elapsed time.Duration
	)
	for i, st := range s.steps {
		switch st.Action {
		case "advance":
			remaining := time.Duration(st.MS) * time.Millisecond
			for remaining > 0 {
				d := min(s.step, remaining)
				if err := target.Advance(d); err != nil {
					return shots, fmt.Errorf("script step %d: %w", i, err)
				}
				remaining -= d
				elapsed += d
			}
		case "screenshot":
			img, err := target.Snapshot()
			if err != nil {
				return shots, fmt.Errorf("script step %d: %w", i, err)
			}
			shots = append(shots, Shot{Label: st.Label, At: elapsed, Image: img})
		case "resize":
			if err := target.Resize(st.Width, st.Height); err != nil {
				return shots, fmt.Errorf("script step %d: %w", i, err)
			}
		}
	}
	return shots, nil
}
