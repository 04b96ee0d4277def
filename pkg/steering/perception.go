// Package steering computes the per-tick steering forces of the pond
// simulation: field-of-view perception, gap seeking, personal-space
// repulsion, the ambient circular current and boundary containment.
// Every function here is pure: it reads a frozen snapshot of the world
// and returns a force, it never mutates an agent.
package steering

import (
	"sort"

	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/geometry"
)

// Body is the frozen per-tick view of one agent. The world builds the full
// []Body snapshot once at the start of a tick; all force terms for all agents
// read from that same snapshot, so no agent ever sees a mid-tick position.
type Body struct {
	ID     string
	Pos    geometry.Vector2D
	Vel    geometry.Vector2D
	Active bool
}

// Heading returns the orientation angle of the body, derived from velocity.
// A body with (near) zero velocity faces the positive X axis.
func (b Body) Heading() float64 {
	return b.Vel.Angle()
}

// Neighbor is one visible body together with its cached distance and
// bearing from the observer. Bearing is normalized to [0, 2*Pi).
type Neighbor struct {
	Body    Body
	Dist    float64
	Bearing float64
}

// TickContext carries one agent's per-tick perception snapshot. It is built
// once per agent per tick and threaded through every force term, so all
// terms observe the same visible set.
type TickContext struct {
	Self      Body
	Neighbors []Neighbor
}

// VisibleNeighbors returns the bodies the observer can see, nearest first.
// A candidate is visible when it is within viewDistance and inside the
// symmetric cone of (full) angle fov around the observer's heading: you
// cannot see behind you. The observer itself is excluded. Distance ties are
// broken by ID so replays are reproducible.
func VisibleNeighbors(self Body, bodies []Body, viewDistance, fov float64) []Neighbor {
	heading := geometry.NewVectorPolar(1, self.Heading())
	halfFov := fov / 2

	var out []Neighbor
	for _, b := range bodies {
		if b.ID == self.ID {
			continue
		}
		offset := b.Pos.Sub(self.Pos)
		dist := offset.Len()
		if dist > viewDistance {
			continue
		}
		if heading.AngleBetween(offset) > halfFov {
			continue
		}
		out = append(out, Neighbor{
			Body:    b,
			Dist:    dist,
			Bearing: geometry.NormalizeAngle(offset.Angle()),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Dist != out[j].Dist {
			return out[i].Dist < out[j].Dist
		}
		return out[i].Body.ID < out[j].Body.ID
	})
	return out
}

// NewTickContext builds the perception snapshot for one agent.
func NewTickContext(self Body, bodies []Body, viewDistance, fov float64) *TickContext {
	return &TickContext{
		Self:      self,
		Neighbors: VisibleNeighbors(self, bodies, viewDistance, fov),
	}
}
