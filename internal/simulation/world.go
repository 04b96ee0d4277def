package simulation

import (
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/go-pond-simulation/pb"
	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/steering"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

type gridKey struct {
	x, y int
}

// WorldActor is the authoritative owner of the pond. It holds the agent
// collection, a spatial hash grid for the perception broad phase, and runs
// the two-phase tick: a read phase computing every active agent's force from
// a frozen pre-tick snapshot, then a write phase applying all of them.
type WorldActor struct {
	agents map[string]*Agent
	// Seeding order; doubles as the deterministic awaken order.
	order    []string
	nextWake int

	// Spatial hashing over the frozen snapshot, rebuilt every tick.
	grid map[gridKey][]steering.Body

	// Communication with UI
	snapshotCh chan<- *pb.WorldSnapshot

	cfg  *Config
	scfg steering.Config
	tick int64
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor creates the world logic unit.
func NewWorldActor(snapshotCh chan<- *pb.WorldSnapshot, cfg *Config) *WorldActor {
	return &WorldActor{
		agents:     make(map[string]*Agent),
		grid:       make(map[gridKey][]steering.Body),
		snapshotCh: snapshotCh,
		cfg:        cfg,
		scfg:       cfg.SteeringConfig(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("Pond world is filling up...")
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		w.seedPond()
		ctx.Logger().Infof("Pond seeded: %d agents, %d awake", len(w.agents), w.nextWake)

	case *pb.Tick:
		w.step()
		w.pushSnapshot()

	case *pb.Awaken:
		woke := w.awaken(int(msg.Count))
		if woke > 0 {
			ctx.Logger().Infof("Awakened %d agent(s), %d still dormant", woke, len(w.agents)-w.activeCount())
		}

	// Handle dynamic slider updates from UI
	case *pb.UpdateConfig:
		w.adoptConfig(msg)

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("Pond world is shutdown...")
	return nil
}

// seedPond lays the population out on concentric rings around the pond
// center, dormant except for the configured head start. The layout is fixed
// so the awakening ripple spreads outward from the middle.
func (w *WorldActor) seedPond() {
	center := w.cfg.Center()
	spacing := math.Max(w.cfg.ComfortRadius, 10)

	radius := spacing
	slot := 0
	slots := 6
	for i := 0; i < w.cfg.NumAgents; i++ {
		if slot >= slots {
			radius += spacing
			slots = int(geometry.TwoPi * radius / spacing)
			slot = 0
		}
		angle := geometry.TwoPi * float64(slot) / float64(slots)
		slot++

		a := &Agent{
			ID:  fmt.Sprintf("Pond-%03d", i),
			Pos: center.Add(geometry.NewVectorPolar(radius, angle)),
		}
		if i < w.cfg.NumActiveAtStart {
			w.activate(a)
		}
		w.agents[a.ID] = a
		w.order = append(w.order, a.ID)
	}
	w.nextWake = w.cfg.NumActiveAtStart
	if w.nextWake > len(w.order) {
		w.nextWake = len(w.order)
	}
}

// activate wakes one agent, launching it along the ambient current so the
// first tick already has a usable heading.
func (w *WorldActor) activate(a *Agent) {
	a.Active = true
	a.Vel = steering.CurrentForce(a.Pos, w.scfg.CurrentCenter).Mul(w.scfg.MinSpeed)
}

// awaken activates up to count dormant agents in seeding order and reports
// how many actually woke up.
func (w *WorldActor) awaken(count int) int {
	woke := 0
	for woke < count && w.nextWake < len(w.order) {
		a := w.agents[w.order[w.nextWake]]
		w.nextWake++
		if a.Active {
			continue
		}
		w.activate(a)
		woke++
	}
	return woke
}

type tickResult struct {
	force     geometry.Vector2D
	neighbors int
	gapDir    geometry.Vector2D
	hasGap    bool
}

// step runs one simulation tick. Reads happen against the frozen pre-tick
// snapshot; no position or velocity is written until every active agent's
// force has been computed.
func (w *WorldActor) step() {
	w.tick++
	w.rebuildGrid()

	// Read phase
	results := make(map[string]tickResult, len(w.agents))
	for id, a := range w.agents {
		if !a.Active {
			continue
		}
		self := a.Body()
		tc := steering.NewTickContext(self, w.nearbyBodies(self.Pos), w.scfg.ViewDistance, w.scfg.FieldOfView)
		r := tickResult{
			force:     steering.Compose(tc, w.scfg),
			neighbors: len(tc.Neighbors),
		}
		// Recorded for the debug overlay.
		if dir, ok := steering.GapDirection(tc, w.scfg.MinGap, w.scfg.GapProbeHalfAngle, w.scfg.GapSearchRadius); ok {
			r.gapDir = dir
			r.hasGap = true
		}
		results[id] = r
	}

	// Write phase
	for id, r := range results {
		a := w.agents[id]
		a.ApplyForce(r.force)
		a.Integrate(w.scfg.MinSpeed, w.scfg.MaxSpeed)
		a.NeighborCount = r.neighbors
		a.GapDir = r.gapDir
		a.HasGap = r.hasGap
	}
}

// rebuildGrid hashes the frozen Body snapshot of every agent into cells.
// Slices are reset to length 0 but keep their capacity, so steady-state
// ticks allocate almost nothing.
func (w *WorldActor) rebuildGrid() {
	for k := range w.grid {
		w.grid[k] = w.grid[k][:0]
	}

	cellSize := w.getCellSize()
	for _, a := range w.agents {
		gx, gy := int(a.Pos.X/cellSize), int(a.Pos.Y/cellSize)
		key := gridKey{x: gx, y: gy}
		w.grid[key] = append(w.grid[key], a.Body())
	}
}

// getCellSize keeps one cell at least as large as the view distance, so a
// 3x3 cell scan is guaranteed to cover the whole perception range.
func (w *WorldActor) getCellSize() float64 {
	return math.Max(w.scfg.ViewDistance, 10.0)
}

func (w *WorldActor) getCellIndices(x, y float64) (int, int) {
	cs := w.getCellSize()
	return int(x / cs), int(y / cs)
}

// nearbyBodies returns the frozen bodies in the 3x3 cell block around pos.
// It may over-approximate; VisibleNeighbors applies the exact range and cone
// filters.
func (w *WorldActor) nearbyBodies(pos geometry.Vector2D) []steering.Body {
	gx, gy := w.getCellIndices(pos.X, pos.Y)
	var neighbors []steering.Body

	for i := gx - 1; i <= gx+1; i++ {
		for j := gy - 1; j <= gy+1; j++ {
			key := gridKey{x: i, y: j}
			if bodies, ok := w.grid[key]; ok {
				neighbors = append(neighbors, bodies...)
			}
		}
	}
	return neighbors
}

func (w *WorldActor) activeCount() int {
	n := 0
	for _, a := range w.agents {
		if a.Active {
			n++
		}
	}
	return n
}

func (w *WorldActor) buildSnapshot() *pb.WorldSnapshot {
	snapshot := &pb.WorldSnapshot{
		Agents: make([]*pb.AgentState, 0, len(w.agents)),
		Tick:   w.tick,
	}
	for _, id := range w.order {
		a := w.agents[id]
		snapshot.Agents = append(snapshot.Agents, a.ToProto())
		if a.Active {
			snapshot.ActiveCount++
		} else {
			snapshot.DormantCount++
		}
	}
	return snapshot
}

func (w *WorldActor) pushSnapshot() {
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

// adoptConfig applies the tunable subset pushed by the UI. Angles arrive in
// degrees, like in config.json; the minimum gap threshold tracks the field
// of view.
func (w *WorldActor) adoptConfig(msg *pb.UpdateConfig) {
	fov := msg.FieldOfView * math.Pi / 180
	w.scfg.ViewDistance = msg.ViewDistance
	w.scfg.FieldOfView = fov
	w.scfg.MinGap = w.cfg.MinGapFraction * fov
	w.scfg.ComfortRadius = msg.ComfortRadius
	w.scfg.BoundaryMargin = msg.BoundaryMargin
	w.scfg.MinSpeed = msg.MinSpeed
	w.scfg.MaxSpeed = msg.MaxSpeed
	w.scfg.CurrentStrength = msg.CurrentStrength
	w.scfg.Weights = steering.Weights{
		Gap:       msg.GapWeight,
		Repulsion: msg.RepulsionWeight,
		Current:   msg.CurrentWeight,
		Boundary:  msg.BoundaryWeight,
	}
}
