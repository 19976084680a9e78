package synth_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/labelsynth/labelsynth/pkg/labeling"
	"github.com/labelsynth/labelsynth/pkg/synth"
	synerrors "github.com/labelsynth/labelsynth/pkg/synth/errors"
)

type annotation struct {
	box     labeling.BoundingBox
	base    labeling.Label
	precise labeling.Label
}

func newExample(path string, annotations ...annotation) *labeling.Example {
	e := labeling.NewExample(labeling.Resource{Path: path})
	for _, a := range annotations {
		e.AddBox(a.box, a.base)
		if a.precise != "" {
			Expect(e.MakePrecise(a.box, a.precise)).To(Succeed())
		}
	}
	return e
}

// reproduces checks that every result holds exactly on the boxes that
// carry its label.
func reproduces(results []synth.LabelResult, examples []*labeling.Example) {
	for _, r := range results {
		Expect(r.Err).NotTo(HaveOccurred())
		Expect(r.Filter).NotTo(BeNil())
		for _, e := range examples {
			for _, b := range e.Boxes() {
				got, err := r.Filter.Holds(e, b)
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(e.HasPrecise(b, r.Label)), "%s on %s in %s", r.Filter, b, e.Resource.Path)
			}
		}
	}
}

var _ = Describe("Synthesizer", func() {
	var (
		ctx     context.Context
		options []synth.Option
	)

	BeforeEach(func() {
		ctx = context.Background()
		options = []synth.Option{synth.WithLogger(logger)}
	})

	Context("with labels that follow from the base labels", func() {
		var examples []*labeling.Example

		BeforeEach(func() {
			examples = []*labeling.Example{
				newExample("kitchen.jpg",
					annotation{box: labeling.BoundingBox{Left: 0.1, Top: 0.1, Width: 0.2, Height: 0.2}, base: "cup", precise: "dish"},
					annotation{box: labeling.BoundingBox{Left: 0.4, Top: 0.1, Width: 0.2, Height: 0.2}, base: "plate", precise: "dish"},
					annotation{box: labeling.BoundingBox{Left: 0.7, Top: 0.1, Width: 0.2, Height: 0.2}, base: "knife", precise: "cutlery"},
				),
				newExample("table.jpg",
					annotation{box: labeling.BoundingBox{Left: 0.1, Top: 0.5, Width: 0.2, Height: 0.2}, base: "fork", precise: "cutlery"},
					annotation{box: labeling.BoundingBox{Left: 0.4, Top: 0.5, Width: 0.2, Height: 0.2}, base: "plate", precise: "dish"},
				),
			}
			options = append(options, synth.WithMaxDepth(0))
		})

		It("finds a filter for every precise label", func() {
			s, err := synth.NewSynthesizer(options...)
			Expect(err).NotTo(HaveOccurred())

			results, err := s.Synthesize(ctx, examples)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].Label).To(Equal(labeling.Label("cutlery")))
			Expect(results[1].Label).To(Equal(labeling.Label("dish")))
			reproduces(results, examples)
		})

		It("relabels fresh copies of the examples", func() {
			s, err := synth.NewSynthesizer(options...)
			Expect(err).NotTo(HaveOccurred())
			results, err := s.Synthesize(ctx, examples)
			Expect(err).NotTo(HaveOccurred())

			program := synth.Program(results)
			Expect(program.Filters).To(HaveLen(2))
			for _, e := range examples {
				want := map[labeling.BoundingBox][]labeling.Label{}
				for _, b := range e.Boxes() {
					want[b] = e.Precise(b)
				}
				e.ClearAllPrecise()
				Expect(program.Apply(e)).To(Succeed())
				for _, b := range e.Boxes() {
					Expect(e.Precise(b)).To(ConsistOf(want[b]))
				}
			}
		})
	})

	Context("with a label that depends on box geometry", func() {
		var examples []*labeling.Example

		BeforeEach(func() {
			horse := labeling.BoundingBox{Left: 0.2, Top: 0.4, Width: 0.4, Height: 0.4}
			examples = []*labeling.Example{
				newExample("ride.jpg",
					annotation{box: horse, base: "horse"},
					annotation{box: labeling.BoundingBox{Left: 0.3, Top: 0.2, Width: 0.2, Height: 0.4}, base: "person", precise: "rider"},
				),
				newExample("paddock.jpg",
					annotation{box: horse, base: "horse"},
					annotation{box: labeling.BoundingBox{Left: 0.7, Top: 0, Width: 0.1, Height: 0.2}, base: "person"},
				),
			}
			options = append(options,
				synth.WithMaxDepth(1),
				synth.WithInitialWidth(1),
				synth.WithMaxWidth(1),
			)
		})

		It("cannot tell riders apart without relations", func() {
			s, err := synth.NewSynthesizer(options...)
			Expect(err).NotTo(HaveOccurred())
			results, err := s.Synthesize(ctx, examples)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
			Expect(synerrors.IsExhausted(results[0].Err)).To(BeTrue())
		})

		It("finds a threshold on the overlap with the horse", func() {
			s, err := synth.NewSynthesizer(append(options, synth.WithRelations(labeling.Containment))...)
			Expect(err).NotTo(HaveOccurred())
			results, err := s.Synthesize(ctx, examples)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
			reproduces(results, examples)
			Expect(results[0].Depth).To(Equal(1))
		})
	})

	Context("with indistinguishable examples", func() {
		var examples []*labeling.Example

		BeforeEach(func() {
			dog := labeling.BoundingBox{Left: 0.25, Top: 0.25, Width: 0.5, Height: 0.5}
			examples = []*labeling.Example{
				newExample("puppy.jpg", annotation{box: dog, base: "dog", precise: "puppy"}),
				newExample("dog.jpg", annotation{box: dog, base: "dog"}),
			}
			options = append(options,
				synth.WithMaxDepth(1),
				synth.WithInitialWidth(1),
				synth.WithMaxWidth(3),
			)
		})

		It("reports the exhausted budget", func() {
			s, err := synth.NewSynthesizer(options...)
			Expect(err).NotTo(HaveOccurred())
			results, err := s.Synthesize(ctx, examples)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))

			Expect(results[0].Err).To(BeAssignableToTypeOf(synerrors.ExhaustedError{}))
			Expect(results[0].Filter).To(BeNil())
			Expect(results[0].Attempts).To(Equal(3))
		})
	})
})
