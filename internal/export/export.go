// Package export writes generated stairs to YAML, JSON or Wavefront OBJ.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blueloot/Stairs/pkg/stairs"
)

// Format is an output format name.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatOBJ  Format = "obj"
)

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat resolves a format name, case-insensitively. "yml" is
// accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "obj":
		return FormatOBJ, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Document is the serialized form of one generation pass.
type Document struct {
	Config     stairs.Config      `yaml:"config" json:"config"`
	StepHeight float32            `yaml:"step_height" json:"step_height"`
	StepDepth  float32            `yaml:"step_depth" json:"step_depth"`
	Bounds     stairs.AABB        `yaml:"bounds" json:"bounds"`
	Steps      []stairs.Transform `yaml:"steps" json:"steps"`
	Ramps      []stairs.Ramp      `yaml:"ramps" json:"ramps"`
}

// NewDocument bundles cfg and its result.
func NewDocument(cfg stairs.Config, res stairs.Result) Document {
	ramps := res.Ramps
	if ramps == nil {
		ramps = []stairs.Ramp{}
	}
	return Document{
		Config:     cfg,
		StepHeight: cfg.StepHeight(),
		StepDepth:  cfg.StepDepth(),
		Bounds:     res.Bounds(),
		Steps:      res.Steps,
		Ramps:      ramps,
	}
}

// Write encodes cfg and res to w in format f.
func Write(w io.Writer, f Format, cfg stairs.Config, res stairs.Result) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(cfg, res)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewDocument(cfg, res)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatOBJ:
		return WriteOBJ(w, res)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
