package cloth

import (
	"github.com/katalvlaran/clothmesh/draft"
	"github.com/katalvlaran/clothmesh/mesh"
	"github.com/katalvlaran/clothmesh/progress"
	"github.com/katalvlaran/clothmesh/raster"
	"github.com/katalvlaran/clothmesh/section"
)

// Build rasterizes d and assembles the resulting fragments into a Cloth:
// rasterize, segment into pieces, then fill neighborhoods/seams and
// extract quads (spec.md §4.2 step 4's three-phase progress split:
// column sweep in [0,1/3], segmentation in [1/3,2/3], neighborhood
// finalization in [2/3,1]).
//
// Returns progress.ErrCancelled, leaving the caller's existing Cloth (if
// any) untouched, if the context set via WithContext is cancelled at any
// poll point across all three phases.
func Build(d *draft.Draft, opts ...Option) (*Cloth, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	pr := progress.Reporter{Ctx: o.ctx, OnProgress: o.onProgress}

	rasterized, err := raster.Rasterize(d, o.scale, o.detail, pr.Sub(0, 1.0/3.0))
	if err != nil {
		return nil, err
	}

	sections, err := section.Segment(rasterized.Fragments, rasterized.IndexMap, pr.Sub(1.0/3.0, 2.0/3.0))
	if err != nil {
		return nil, err
	}

	linkPhase := pr.Sub(2.0/3.0, 1.0)
	linkPhase.Emit(0)
	neighbors, err := mesh.Link(rasterized.Fragments, rasterized.IndexMap, rasterized.SeamMap, o.stiffness, linkPhase.Sub(0, 0.5))
	if err != nil {
		return nil, err
	}
	quads := mesh.ExtractQuads(rasterized.Fragments, neighbors)
	linkPhase.Emit(1)

	return &Cloth{
		Fragments:    rasterized.Fragments,
		Neighbors:    neighbors,
		Sections:     sections,
		SectionOf:    section.OrdinalToSection(sections),
		Quads:        quads,
		Scale:        o.scale,
		Gravity:      o.gravity,
		Drag:         o.drag,
		Strength:     o.strength,
		SeamStrength: o.seamStrength,
		Stiffness:    o.stiffness,
	}, nil
}
