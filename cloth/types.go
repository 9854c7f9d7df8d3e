package cloth

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/clothmesh/mesh"
	"github.com/katalvlaran/clothmesh/raster"
)

// Sentinel errors for cloth construction.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cloth: invalid option supplied")
)

// Cloth is the full in-memory mesh the worker lane owns between renders:
// the rasterized fragment array, each fragment's neighbor ordinals and
// section membership, the quad face list for wireframe drawing, and the
// mutable tuning scalars the integrator reads every tick (spec.md §3
// Cloth).
//
// Fragments, Neighbors, and SectionOf are all ordinal-indexed and share
// one index space: Fragments[i]'s neighbors are Neighbors[i], and its
// section is Sections[SectionOf[i]].
type Cloth struct {
	Fragments []raster.Fragment
	Neighbors [][]int
	Sections  [][]int
	SectionOf []int
	Quads     []mesh.Quad
	Scale     float64

	Gravity      float64
	Drag         float64
	Strength     float64
	SeamStrength float64
	Stiffness    int
}

// Option configures a Build call via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Build is invoked, matching bfs.WithMaxDepth's deferred-validation shape.
type Option func(*options)

type options struct {
	ctx          context.Context
	onProgress   func(float64)
	scale        float64
	detail       float64
	stiffness    int
	gravity      float64
	drag         float64
	strength     float64
	seamStrength float64
	err          error
}

// defaultOptions mirrors the original's own defaults (main.rs's Render
// message constructs these from widget defaults); a bare Build call with
// no options still produces a usable, non-degenerate Cloth.
func defaultOptions() options {
	return options{
		ctx:          context.Background(),
		onProgress:   func(float64) {},
		scale:        1.0,
		detail:       0.25,
		stiffness:    1,
		gravity:      0.001,
		drag:         0.98,
		strength:     0.02,
		seamStrength: 0.02,
	}
}

// WithContext sets the context polled for cancellation during Build.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnProgress registers the progress callback Build reports through.
func WithOnProgress(fn func(float64)) Option {
	return func(o *options) {
		if fn != nil {
			o.onProgress = fn
		}
	}
}

// WithScale sets the lattice-to-world distance factor. Panics are
// deliberately avoided here (unlike builder's constructors) in favor of
// bfs's deferred-error style, since Build is invoked from the worker lane
// on live user input, where a hard panic would take the whole process down.
func WithScale(s float64) Option {
	return func(o *options) {
		if s <= 0 {
			o.err = fmt.Errorf("%w: scale must be positive (%g)", ErrOptionViolation, s)
			return
		}
		o.scale = s
	}
}

// WithDetail sets the rasterizer sampling step in draft space.
func WithDetail(d float64) Option {
	return func(o *options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: detail must be positive (%g)", ErrOptionViolation, d)
			return
		}
		o.detail = d
	}
}

// WithStiffness sets the neighbor-cube half-edge k.
func WithStiffness(k int) Option {
	return func(o *options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: stiffness cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.stiffness = k
	}
}

// WithGravity sets the per-tick downward velocity increment the
// integrator will apply.
func WithGravity(g float64) Option {
	return func(o *options) { o.gravity = g }
}

// WithDrag sets the per-tick multiplicative velocity damping factor.
// Values outside (0,1] are accepted (spec.md does not forbid them): 0
// stops all motion each tick, a negative value flips the velocity's sign,
// and a magnitude above 1 produces growing, unstable motion — the user's
// problem per spec.md §7.
func WithDrag(d float64) Option {
	return func(o *options) { o.drag = d }
}

// WithStrength sets the default spring-restoring-force multiplier.
func WithStrength(s float64) Option {
	return func(o *options) { o.strength = s }
}

// WithSeamStrength sets the spring multiplier used for pinned fragments
// and for seam-partner force overrides (spec.md §4.6).
func WithSeamStrength(s float64) Option {
	return func(o *options) { o.seamStrength = s }
}
