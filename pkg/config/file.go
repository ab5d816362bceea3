package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/gallery/pkg/errors"
	"github.com/go-drift/gallery/pkg/graphics"
)

// FileName is the optional configuration file looked up by LoadOptional.
const FileName = "gallery.yaml"

// SupportedMajor is the only major file version understood by this package.
const SupportedMajor = "v1"

// File is the on-disk form of the gallery options. Absent fields keep their
// defaults.
type File struct {
	Version                 string       `yaml:"version,omitempty"`
	Paging                  string       `yaml:"paging,omitempty"`
	DividerWidth            *float64     `yaml:"divider_width,omitempty"`
	StatusBarHidden         *bool        `yaml:"status_bar_hidden,omitempty"`
	HideDecorationsOnLaunch *bool        `yaml:"hide_decorations_on_launch,omitempty"`
	Spinner                 *SpinnerFile `yaml:"spinner,omitempty"`
	Close                   *ButtonFile  `yaml:"close,omitempty"`
	Detail                  *ButtonFile  `yaml:"detail,omitempty"`
	Share                   *ButtonFile  `yaml:"share,omitempty"`
	Header                  *BarFile     `yaml:"header,omitempty"`
	Footer                  *BarFile     `yaml:"footer,omitempty"`
	Timings                 *TimingsFile `yaml:"timings,omitempty"`
}

// SpinnerFile configures the page loading indicator.
type SpinnerFile struct {
	Style string `yaml:"style,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// ButtonFile configures one button placement.
type ButtonFile struct {
	Pin  string  `yaml:"pin"`
	Top  float64 `yaml:"top"`
	Side float64 `yaml:"side"`
}

// BarFile configures a header or footer placement.
type BarFile struct {
	Pin    string  `yaml:"pin"`
	Margin float64 `yaml:"margin"`
	Left   float64 `yaml:"left,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
}

// TimingsFile overrides individual durations, written as Go durations ("250ms").
type TimingsFile struct {
	Present          string   `yaml:"present,omitempty"`
	Close            string   `yaml:"close,omitempty"`
	DecorationToggle string   `yaml:"decoration_toggle,omitempty"`
	CloseFade        string   `yaml:"close_fade,omitempty"`
	Rotation         string   `yaml:"rotation,omitempty"`
	SwipeFadeFactor  *float64 `yaml:"swipe_fade_factor,omitempty"`
}

// LoadOptional reads gallery.yaml from dir if present. A missing file yields
// no options and no error.
func LoadOptional(dir string) ([]Option, error) {
	opts, err := LoadFile(filepath.Join(dir, FileName))
	if stderrors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return opts, err
}

// LoadFile reads and parses a configuration file.
func LoadFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, configError("config.LoadFile", fmt.Errorf("failed to read %s: %w", path, err))
	}
	opts, err := Parse(data)
	if err != nil {
		return nil, configError("config.LoadFile", fmt.Errorf("%s: %w", path, err))
	}
	return opts, nil
}

// Parse decodes YAML configuration into options, in file field order.
func Parse(data []byte) ([]Option, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return f.Options()
}

// Options converts the file into directives, validating every value.
func (f *File) Options() ([]Option, error) {
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}

	var opts []Option
	if f.Paging != "" {
		mode, err := parsePaging(f.Paging)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithPagingMode(mode))
	}
	if f.DividerWidth != nil {
		if *f.DividerWidth < 0 {
			return nil, fmt.Errorf("divider_width must not be negative, got %v", *f.DividerWidth)
		}
		opts = append(opts, WithDividerWidth(*f.DividerWidth))
	}
	if f.StatusBarHidden != nil {
		opts = append(opts, WithStatusBarHidden(*f.StatusBarHidden))
	}
	if f.HideDecorationsOnLaunch != nil {
		opts = append(opts, WithDecorationsHiddenOnLaunch(*f.HideDecorationsOnLaunch))
	}
	if f.Spinner != nil {
		spinnerOpts, err := f.Spinner.options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, spinnerOpts...)
	}

	buttons := []struct {
		name string
		file *ButtonFile
		with func(ButtonLayout) Option
	}{
		{"close", f.Close, WithCloseLayout},
		{"detail", f.Detail, WithDetailLayout},
		{"share", f.Share, WithShareLayout},
	}
	for _, b := range buttons {
		if b.file == nil {
			continue
		}
		l, err := b.file.layout()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.name, err)
		}
		opts = append(opts, b.with(l))
	}

	bars := []struct {
		name string
		file *BarFile
		with func(BarLayout) Option
	}{
		{"header", f.Header, WithHeaderLayout},
		{"footer", f.Footer, WithFooterLayout},
	}
	for _, b := range bars {
		if b.file == nil {
			continue
		}
		l, err := b.file.layout()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.name, err)
		}
		opts = append(opts, b.with(l))
	}

	if f.Timings != nil {
		t, err := f.Timings.timings()
		if err != nil {
			return nil, fmt.Errorf("timings: %w", err)
		}
		opts = append(opts, WithTimings(t))
	}
	return opts, nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid version %q", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("unsupported version %s (want %s.x)", v, SupportedMajor)
	}
	return nil
}

func parsePaging(s string) (PagingMode, error) {
	switch strings.ToLower(s) {
	case "standard":
		return PagingStandard, nil
	case "infinite":
		return PagingInfinite, nil
	default:
		return 0, fmt.Errorf("unknown paging mode %q", s)
	}
}

func (s *SpinnerFile) options() ([]Option, error) {
	var opts []Option
	switch strings.ToLower(s.Style) {
	case "":
	case "white":
		opts = append(opts, WithSpinnerStyle(SpinnerWhite))
	case "white_large":
		opts = append(opts, WithSpinnerStyle(SpinnerWhiteLarge))
	case "gray":
		opts = append(opts, WithSpinnerStyle(SpinnerGray))
	default:
		return nil, fmt.Errorf("unknown spinner style %q", s.Style)
	}
	if s.Color != "" {
		c, err := graphics.ParseHex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("spinner: %w", err)
		}
		opts = append(opts, WithSpinnerColor(c))
	}
	return opts, nil
}

func (b *ButtonFile) layout() (ButtonLayout, error) {
	switch strings.ToLower(b.Pin) {
	case "left":
		return PinLeft(b.Top, b.Side), nil
	case "right":
		return PinRight(b.Top, b.Side), nil
	default:
		return ButtonLayout{}, fmt.Errorf("unknown button pin %q", b.Pin)
	}
}

func (b *BarFile) layout() (BarLayout, error) {
	switch strings.ToLower(b.Pin) {
	case "center":
		return BarCenter(b.Margin), nil
	case "left":
		return BarPinLeftEdge(b.Margin, b.Left), nil
	case "right":
		return BarPinRightEdge(b.Margin, b.Right), nil
	case "both":
		return BarPinBoth(b.Margin, b.Left, b.Right), nil
	default:
		return BarLayout{}, fmt.Errorf("unknown bar pin %q", b.Pin)
	}
}

func (t *TimingsFile) timings() (Timings, error) {
	out := DefaultTimings()
	fields := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"present", t.Present, &out.Present},
		{"close", t.Close, &out.Close},
		{"decoration_toggle", t.DecorationToggle, &out.DecorationToggle},
		{"close_fade", t.CloseFade, &out.CloseFade},
		{"rotation", t.Rotation, &out.Rotation},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		d, err := time.ParseDuration(f.raw)
		if err != nil {
			return Timings{}, fmt.Errorf("%s: %w", f.name, err)
		}
		if d < 0 {
			return Timings{}, fmt.Errorf("%s must not be negative", f.name)
		}
		*f.dst = d
	}
	if t.SwipeFadeFactor != nil {
		if *t.SwipeFadeFactor <= 0 {
			return Timings{}, fmt.Errorf("swipe_fade_factor must be positive")
		}
		out.SwipeFadeFactor = *t.SwipeFadeFactor
	}
	return out, nil
}

func configError(op string, err error) error {
	return &errors.GalleryError{Op: op, Kind: errors.KindConfig, Err: err}
}
