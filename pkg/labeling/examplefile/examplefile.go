// Package examplefile reads and writes labeled examples. A file holds a
// list of images, each with its boxes and their labels, in YAML or in
// JSON.
package examplefile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/labelsynth/labelsynth/pkg/labeling"
)

// BoxInfo is one detected object. PreciseLabel and PreciseLabels are
// both accepted; GroupLabel is carried but not interpreted.
type BoxInfo struct {
	Label         string               `json:"Label"`
	PreciseLabel  string               `json:"PreciseLabel,omitempty"`
	PreciseLabels []string             `json:"PreciseLabels,omitempty"`
	GroupLabel    string               `json:"GroupLabel,omitempty"`
	Box           labeling.BoundingBox `json:"Box"`
}

// ImageInfo is one labeled image.
type ImageInfo struct {
	Path   string    `json:"Path"`
	Boxes  []BoxInfo `json:"Boxes"`
	Width  int       `json:"Width,omitempty"`
	Height int       `json:"Height,omitempty"`
}

// ToExample converts i, keeping the order of its boxes.
func (i ImageInfo) ToExample() (*labeling.Example, error) {
	e := labeling.NewExample(labeling.Resource{Path: i.Path, Width: i.Width, Height: i.Height})
	for n, b := range i.Boxes {
		if b.Label == "" {
			return nil, errors.Errorf("box %d of %s has no label", n, i.Path)
		}
		e.AddBox(b.Box, labeling.Label(b.Label))
		precise := b.PreciseLabels
		if b.PreciseLabel != "" {
			precise = append([]string{b.PreciseLabel}, precise...)
		}
		for _, l := range precise {
			if err := e.MakePrecise(b.Box, labeling.Label(l)); err != nil {
				return nil, err
			}
		}
	}
	return e, nil
}

// FromExample converts e. A single precise label is written as
// PreciseLabel.
func FromExample(e *labeling.Example) ImageInfo {
	i := ImageInfo{
		Path:   e.Resource.Path,
		Width:  e.Resource.Width,
		Height: e.Resource.Height,
		Boxes:  []BoxInfo{},
	}
	for _, box := range e.Boxes() {
		base, _ := e.Base(box)
		b := BoxInfo{Label: string(base), Box: box}
		precise := e.Precise(box)
		switch len(precise) {
		case 0:
		case 1:
			b.PreciseLabel = string(precise[0])
		default:
			for _, l := range precise {
				b.PreciseLabels = append(b.PreciseLabels, string(l))
			}
		}
		i.Boxes = append(i.Boxes, b)
	}
	return i
}

// Decode parses a YAML or JSON list of images.
func Decode(data []byte) ([]*labeling.Example, error) {
	var infos []ImageInfo
	if err := yaml.Unmarshal(data, &infos); err != nil {
		return nil, errors.Wrap(err, "decoding examples")
	}
	examples := make([]*labeling.Example, 0, len(infos))
	for _, info := range infos {
		e, err := info.ToExample()
		if err != nil {
			return nil, err
		}
		examples = append(examples, e)
	}
	return examples, nil
}

// Read loads the examples stored at path.
func Read(path string) ([]*labeling.Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading examples from %s", path)
	}
	examples, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "reading examples from %s", path)
	}
	return examples, nil
}

// Encode renders examples as YAML, or as indented JSON when asJSON is
// set.
func Encode(examples []*labeling.Example, asJSON bool) ([]byte, error) {
	infos := make([]ImageInfo, 0, len(examples))
	for _, e := range examples {
		infos = append(infos, FromExample(e))
	}
	if asJSON {
		return json.MarshalIndent(infos, "", "  ")
	}
	return yaml.Marshal(infos)
}

// Write stores examples at path, as JSON if path ends in .json and as
// YAML otherwise.
func Write(path string, examples []*labeling.Example) error {
	data, err := Encode(examples, IsJSON(path))
	if err != nil {
		return errors.Wrap(err, "encoding examples")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing examples to %s", path)
	}
	return nil
}

// IsJSON reports whether path names a JSON file.
func IsJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
