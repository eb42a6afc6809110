package scene

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/svglayer/pkg/errors"
)

// Format is a scene file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
}

// Scene is a declarative overlay.
type Scene struct {
	// Widescreen selects a 16:9 canvas. Nil means the layer default.
	Widescreen *bool `toml:"widescreen" yaml:"widescreen"`

	// IDs selects how gradient and filter ids are generated: "counter"
	// (the default, stable across builds), "random" or "uuid".
	IDs       string     `toml:"ids" yaml:"ids"`
	Gradients []Gradient `toml:"gradients" yaml:"gradients"`
	Filters   []Filter   `toml:"filters" yaml:"filters"`
	Items     []Item     `toml:"items" yaml:"items"`

	// Dir resolves relative image paths. Load sets it to the scene file's
	// directory.
	Dir string `toml:"-" yaml:"-"`
}

// Gradient declares a named gradient.
type Gradient struct {
	Name  string   `toml:"name" yaml:"name"`
	Type  string   `toml:"type" yaml:"type"` // "linear" (default) or "radial"
	Angle float64  `toml:"angle" yaml:"angle"`
	Stops []string `toml:"stops" yaml:"stops"`
}

// Filter declares a named filter.
type Filter struct {
	Name         string  `toml:"name" yaml:"name"`
	Type         string  `toml:"type" yaml:"type"` // "blur" or "drop-shadow"
	StdDeviation float64 `toml:"std_deviation" yaml:"std_deviation"`
	Input        string  `toml:"input" yaml:"input"`
	DX           float64 `toml:"dx" yaml:"dx"`
	DY           float64 `toml:"dy" yaml:"dy"`
	Color        string  `toml:"color" yaml:"color"`
}

// Item is one drawable. Which fields apply depends on Type.
type Item struct {
	Type string `toml:"type" yaml:"type"`

	Text       string  `toml:"text" yaml:"text"`
	FontSize   float64 `toml:"font_size" yaml:"font_size"`
	Bold       bool    `toml:"bold" yaml:"bold"`
	FontColor  string  `toml:"font_color" yaml:"font_color"`
	Color      string  `toml:"color" yaml:"color"`
	TextAnchor string  `toml:"text_anchor" yaml:"text_anchor"`
	LineHeight float64 `toml:"line_height" yaml:"line_height"`

	X      float64 `toml:"x" yaml:"x"`
	Y      float64 `toml:"y" yaml:"y"`
	X1     float64 `toml:"x1" yaml:"x1"`
	Y1     float64 `toml:"y1" yaml:"y1"`
	X2     float64 `toml:"x2" yaml:"x2"`
	Y2     float64 `toml:"y2" yaml:"y2"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
	Radius float64 `toml:"radius" yaml:"radius"`

	MaxWidth  float64 `toml:"max_width" yaml:"max_width"`
	MaxHeight float64 `toml:"max_height" yaml:"max_height"`
	LineWidth float64 `toml:"line_width" yaml:"line_width"`
	Padding   string  `toml:"padding" yaml:"padding"`
	Origin    string  `toml:"origin" yaml:"origin"`

	Points []float64 `toml:"points" yaml:"points"`

	Image   string  `toml:"image" yaml:"image"` // data URI or file path
	Opacity float64 `toml:"opacity" yaml:"opacity"`

	Filter     string `toml:"filter" yaml:"filter"`
	BoxFilter  string `toml:"box_filter" yaml:"box_filter"`
	TextFilter string `toml:"text_filter" yaml:"text_filter"`
}

// Load reads and decodes a scene file. The format follows the extension.
func Load(path string) (*Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read scene %s", path)
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "%s", path)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

// Decode parses scene data. Unknown keys are an error.
func Decode(data []byte, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q", format)
	}
	return &s, nil
}
