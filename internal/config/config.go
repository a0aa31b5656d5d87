// Package config loads transition configuration documents and process
// settings.
//
// A document describes one transition: its type, timing, easing, effect
// parameters and mask post-processing, plus the output size and codec the
// producer should use. Documents may be JSON, YAML or TOML; every key is
// optional and absent keys take the effect defaults.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedExtension is returned by Load for a file that is not
// .json, .yaml, .yml or .toml.
var ErrUnsupportedExtension = errors.New("config: unsupported file extension")

// MaskBlur holds the mask_blur table.
type MaskBlur struct {
	Type          string   `json:"type" yaml:"type" toml:"type"`
	KSize         *int     `json:"ksize" yaml:"ksize" toml:"ksize"`
	Sigma         *float64 `json:"sigma" yaml:"sigma" toml:"sigma"`
	OpacityChange *bool    `json:"opacitychange" yaml:"opacitychange" toml:"opacitychange"`
}

// Document is a decoded configuration document. Pointer fields are nil
// when the key is absent.
type Document struct {
	Type     string   `json:"type" yaml:"type" toml:"type"`
	Duration *float64 `json:"duration" yaml:"duration" toml:"duration"`
	FPS      *float64 `json:"fps" yaml:"fps" toml:"fps"`
	Easing   string   `json:"easing" yaml:"easing" toml:"easing"`

	Direction   string `json:"direction" yaml:"direction" toml:"direction"`
	Axis        string `json:"axis" yaml:"axis" toml:"axis"`
	Orientation string `json:"orientation" yaml:"orientation" toml:"orientation"`
	Order       string `json:"order" yaml:"order" toml:"order"`
	Mode        string `json:"mode" yaml:"mode" toml:"mode"`
	BlendMode   string `json:"blend_mode" yaml:"blend_mode" toml:"blend_mode"`

	CenterX    *int     `json:"center_x" yaml:"center_x" toml:"center_x"`
	CenterY    *int     `json:"center_y" yaml:"center_y" toml:"center_y"`
	StartAngle *float64 `json:"start_angle" yaml:"start_angle" toml:"start_angle"`
	SweepDeg   *float64 `json:"sweep_deg" yaml:"sweep_deg" toml:"sweep_deg"`
	R0Frac     *float64 `json:"r0_frac" yaml:"r0_frac" toml:"r0_frac"`
	R1Frac     *float64 `json:"r1_frac" yaml:"r1_frac" toml:"r1_frac"`

	Squares  *int  `json:"squares" yaml:"squares" toml:"squares"`
	Rows     *int  `json:"rows" yaml:"rows" toml:"rows"`
	Cols     *int  `json:"cols" yaml:"cols" toml:"cols"`
	Stepwise *bool `json:"stepwise" yaml:"stepwise" toml:"stepwise"`
	Count    *int  `json:"count" yaml:"count" toml:"count"`
	Bands    *int  `json:"bands" yaml:"bands" toml:"bands"`

	Seed          *uint64  `json:"seed" yaml:"seed" toml:"seed"`
	SpeedMin      *float64 `json:"speed_min" yaml:"speed_min" toml:"speed_min"`
	SpeedMax      *float64 `json:"speed_max" yaml:"speed_max" toml:"speed_max"`
	WaveAmplitude *float64 `json:"wave_amplitude" yaml:"wave_amplitude" toml:"wave_amplitude"`
	WavePhase     *float64 `json:"wave_phase" yaml:"wave_phase" toml:"wave_phase"`

	MaskBlur *MaskBlur `json:"mask_blur" yaml:"mask_blur" toml:"mask_blur"`

	// Width and Height resize both inputs before rendering.
	Width  *int `json:"width" yaml:"width" toml:"width"`
	Height *int `json:"height" yaml:"height" toml:"height"`

	// Codec is a four-character code selecting the video encoder.
	Codec string `json:"codec" yaml:"codec" toml:"codec"`
}

// Syntax is the encoding of a configuration document.
type Syntax uint8

// Document syntaxes.
const (
	SyntaxYAML Syntax = iota
	SyntaxTOML
	SyntaxJSON
)

// SyntaxForPath picks the syntax from the file extension.
func SyntaxForPath(path string) (Syntax, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SyntaxJSON, nil
	case ".yaml", ".yml":
		return SyntaxYAML, nil
	case ".toml":
		return SyntaxTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedExtension, path)
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	syntax, err := SyntaxForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	doc, err := Parse(data, syntax)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// Parse decodes a document. Unknown keys are ignored. In JSON a repeated
// key takes its last value; YAML and TOML reject repeated keys.
func Parse(data []byte, syntax Syntax) (*Document, error) {
	var doc Document
	switch syntax {
	case SyntaxTOML:
		if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case SyntaxJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return &doc, nil
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		if len(bytes.TrimSpace(data)) == 0 {
			return &doc, nil
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	}
	return &doc, nil
}
