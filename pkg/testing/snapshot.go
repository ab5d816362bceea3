package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the visible host state of a session.
type Snapshot struct {
	State             string           `json:"state"`
	CurrentIndex      int              `json:"currentIndex"`
	DecorationsHidden bool             `json:"decorationsHidden"`
	Background        string           `json:"background"`
	Angle             float64          `json:"angle"`
	Decorations       []DecorationNode `json:"decorations"`
}

// DecorationNode is one decoration view in a snapshot.
type DecorationNode struct {
	Name  string     `json:"name"`
	Frame [4]float64 `json:"frame"`
	Alpha float64    `json:"alpha"`
}

// CaptureSnapshot captures the current session and fake host state.
func (t *Tester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{
		Background: t.Container.Background.Hex(),
		Angle:      round2(t.Container.Angle),
	}
	if s := t.session; s != nil {
		snap.State = s.TransitionState().String()
		snap.CurrentIndex = s.CurrentIndex()
		snap.DecorationsHidden = s.DecorationsHidden()
	}
	names := []string{"close", "detail", "share", "header", "footer"}
	for i, v := range t.Decorations.Views() {
		f := v.Frame()
		snap.Decorations = append(snap.Decorations, DecorationNode{
			Name:  names[i],
			Frame: [4]float64{round2(f.Left), round2(f.Top), round2(f.Width()), round2(f.Height())},
			Alpha: round2(v.Alpha()),
		})
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When GALLERY_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("GALLERY_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: GALLERY_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: GALLERY_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns the
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lineDiff reports the lines that differ at the same position.
func lineDiff(expected, actual string) string {
	want := strings.Split(expected, "\n")
	got := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")
	for i := 0; i < max(len(want), len(got)); i++ {
		var e, a string
		if i < len(want) {
			e = want[i]
		}
		if i < len(got) {
			a = got[i]
		}
		if e == a {
			continue
		}
		if i < len(want) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(got) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
