package synth

import (
	"sort"

	"github.com/labelsynth/labelsynth/pkg/labeling"
)

// BaseVocabulary returns the distinct base labels of examples, sorted.
func BaseVocabulary(examples []*labeling.Example) []labeling.Label {
	return vocabulary(examples, func(e *labeling.Example, box labeling.BoundingBox) []labeling.Label {
		base, _ := e.Base(box)
		return []labeling.Label{base}
	})
}

// PreciseVocabulary returns the distinct precise labels of examples,
// sorted.
func PreciseVocabulary(examples []*labeling.Example) []labeling.Label {
	return vocabulary(examples, func(e *labeling.Example, box labeling.BoundingBox) []labeling.Label {
		return e.Precise(box)
	})
}

func vocabulary(examples []*labeling.Example, of func(*labeling.Example, labeling.BoundingBox) []labeling.Label) []labeling.Label {
	seen := make(map[labeling.Label]struct{})
	var out []labeling.Label
	for _, e := range examples {
		for _, box := range e.Boxes() {
			for _, l := range of(e, box) {
				if _, ok := seen[l]; ok {
					continue
				}
				seen[l] = struct{}{}
				out = append(out, l)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
