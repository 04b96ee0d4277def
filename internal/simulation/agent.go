package simulation

import (
	"github.com/lao-tseu-is-alive/go-pond-simulation/pb"
	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/steering"
)

// Agent is one pond body, owned exclusively by the WorldActor. Dormant agents
// are immobile seeds; they still occupy space and show up in other agents'
// perception, they are just never steered themselves.
type Agent struct {
	ID     string
	Pos    geometry.Vector2D
	Vel    geometry.Vector2D
	Active bool

	// Accumulated force for the current tick, cleared by Integrate.
	force geometry.Vector2D

	// Debug surface for the renderer, refreshed every tick.
	NeighborCount int
	GapDir        geometry.Vector2D
	HasGap        bool
}

// Body returns the frozen steering view of the agent.
func (a *Agent) Body() steering.Body {
	return steering.Body{
		ID:     a.ID,
		Pos:    a.Pos,
		Vel:    a.Vel,
		Active: a.Active,
	}
}

// ApplyForce accumulates a force to be integrated this tick.
func (a *Agent) ApplyForce(f geometry.Vector2D) {
	a.force = a.force.Add(f)
}

// Integrate folds the accumulated force into velocity, clamps the speed into
// the envelope and advances the position. Only Active agents integrate.
func (a *Agent) Integrate(minSpeed, maxSpeed float64) {
	if !a.Active {
		a.force = geometry.Vector2D{}
		return
	}
	a.Vel = a.Vel.Add(a.force)
	a.Vel = steering.ClampSpeed(a.Vel, minSpeed, maxSpeed)
	a.Pos = a.Pos.Add(a.Vel)
	a.force = geometry.Vector2D{}
}

func (a *Agent) ToProto() *pb.AgentState {
	return &pb.AgentState{
		Id:            a.ID,
		PositionX:     a.Pos.X,
		PositionY:     a.Pos.Y,
		VelocityX:     a.Vel.X,
		VelocityY:     a.Vel.Y,
		Active:        a.Active,
		NeighborCount: int32(a.NeighborCount),
		HasGap:        a.HasGap,
		GapX:          a.GapDir.X,
		GapY:          a.GapDir.Y,
	}
}
