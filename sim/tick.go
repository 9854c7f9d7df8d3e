package sim

import (
	"github.com/katalvlaran/clothmesh/cloth"
	"github.com/katalvlaran/clothmesh/geom"
	"github.com/katalvlaran/clothmesh/raster"
)

// defaultRigidPull is the fixed fraction of the rigid-plane deviation
// folded into a rigid fragment's velocity each tick (spec.md §4.6:
// "F.velocity += (0, (rigid_plane - F.position.y), 0) * 0.3").
const defaultRigidPull = 0.3

// snapshot is the read-only per-fragment position/velocity state every
// force this tick is computed against (spec.md §4.6 step 1: "copy every
// fragment's position, velocity into a read-only buffer"). Kept as two
// parallel slices rather than copying the whole raster.Fragment, since
// Tick never needs to mutate the immutable Pinned/Rigid/Link* fields
// through the buffer.
type snapshot struct {
	position []geom.Point3
	velocity []geom.Point3
}

func snapshotOf(fragments []raster.Fragment) snapshot {
	s := snapshot{
		position: make([]geom.Point3, len(fragments)),
		velocity: make([]geom.Point3, len(fragments)),
	}
	for i, f := range fragments {
		s.position[i] = f.Position
		s.velocity[i] = f.Velocity
	}
	return s
}

// Tick advances c by one forward-Euler step in place: gravity, spring
// restoring force toward each neighbor's lattice-distance rest length,
// the seam-partner crossover override, a rigid-plane pull-to-mean term,
// multiplicative drag, and position integration for unpinned fragments
// (spec.md §4.6).
//
// The whole step reads from one snapshot of the pre-tick state and writes
// only at the end, so no fragment's update depends on another fragment's
// update within the same tick (spec.md §9: no pointer aliasing, a cheap
// flat-array copy per tick, exactly as cloth.Cloth's ordinal-indexed
// slices are designed to make cheap).
func Tick(c *cloth.Cloth) {
	snap := snapshotOf(c.Fragments)
	rigidPlane, haveRigid := meanRigidHeight(c.Fragments, snap)

	n := len(c.Fragments)
	newPos := make([]geom.Point3, n)
	newVel := make([]geom.Point3, n)

	for i := range c.Fragments {
		newPos[i], newVel[i] = tickOne(c, snap, i, rigidPlane, haveRigid)
	}

	for i := range c.Fragments {
		c.Fragments[i].Position = newPos[i]
		c.Fragments[i].Velocity = newVel[i]
	}
}

// meanRigidHeight returns the mean pre-tick height of every rigid
// fragment (spec.md §4.6 step 2). The second return is false when no
// rigid fragment exists, in which case the mean is unused by callers.
func meanRigidHeight(fragments []raster.Fragment, snap snapshot) (float64, bool) {
	var sum float64
	var count int
	for i, f := range fragments {
		if !f.Rigid {
			continue
		}
		sum += snap.position[i].Y
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// tickOne computes fragment i's post-tick position and velocity from the
// pre-tick snapshot (spec.md §4.6 step 3).
func tickOne(c *cloth.Cloth, snap snapshot, i int, rigidPlane float64, haveRigid bool) (geom.Point3, geom.Point3) {
	frag := c.Fragments[i]

	vel := snap.velocity[i]
	vel.Y -= c.Gravity

	section := c.SectionOf[i]
	force := geom.Point3{}
	for _, nb := range c.Neighbors[i] {
		if nb == i {
			continue
		}
		force = force.Add(springForce(c, snap, frag, section, i, nb))
	}
	vel = vel.Add(force)

	if frag.Rigid && haveRigid {
		vel.Y += (rigidPlane - snap.position[i].Y) * defaultRigidPull
	}

	vel = vel.Scale(c.Drag)

	pos := snap.position[i]
	if !frag.Pinned {
		pos = pos.Add(vel)
	}
	return pos, vel
}

// springForce computes neighbor ordinal n's contribution to fragment i's
// (frag's) force this tick, applying the pinned/section/seam multiplier
// rules of spec.md §4.6.
func springForce(c *cloth.Cloth, snap snapshot, frag raster.Fragment, section, i, n int) geom.Point3 {
	g := c.Fragments[n]
	diff := snap.position[n].Sub(snap.position[i])
	dist := g.Index.Sub(frag.Index).Length()

	mult := c.Strength
	if frag.Pinned {
		mult = c.SeamStrength
	}
	if c.SectionOf[n] != section {
		mult = 0
	}

	if isSeamPartner(frag, g) {
		dist = 0
		mult = c.SeamStrength
	}

	change := c.Scale*dist - diff.Length()
	return diff.Normalize().Scale(-change * mult)
}

// isSeamPartner reports whether g is f's seam partner: both carry the
// same link number and distinct line ids (spec.md §4.6's "Seam-partner
// override").
func isSeamPartner(f, g raster.Fragment) bool {
	if f.LinkNumber == nil || g.LinkNumber == nil {
		return false
	}
	return *f.LinkNumber == *g.LinkNumber && f.LineID != g.LineID
}
