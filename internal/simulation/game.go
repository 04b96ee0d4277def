package simulation

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-pond-simulation/pb"
	"github.com/lao-tseu-is-alive/go-pond-simulation/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

var (
	waterColor   = color.RGBA{R: 12, G: 32, B: 48, A: 255}
	seedColor    = color.RGBA{R: 140, G: 130, B: 100, A: 255}
	gapRayColor  = color.RGBA{R: 80, G: 220, B: 120, A: 160}
	rangeColor   = color.RGBA{R: 80, G: 120, B: 160, A: 60}
	activeColor  = color.RGBA{R: 255, G: 170, B: 40, A: 255}
	dormantBar   = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	whiteImage   = ebiten.NewImage(3, 3)
	gapRayLength = 30.0
)

func init() {
	whiteImage.Fill(activeColor)
}

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot

	// UI Controls
	panel *ui.Panel

	widgetViewDistance    *ui.Slider
	widgetFieldOfView     *ui.Slider
	widgetComfortRadius   *ui.Slider
	widgetBoundaryMargin  *ui.Slider
	widgetMinSpeed        *ui.Slider
	widgetMaxSpeed        *ui.Slider
	widgetCurrentStrength *ui.Slider
	widgetGapWeight       *ui.Slider
	widgetRepulsionWeight *ui.Slider
	widgetCurrentWeight   *ui.Slider
	widgetBoundaryWeight  *ui.Slider
	widgetShowGapRays     *ui.Checkbox
	widgetShowViewRange   *ui.Checkbox

	cfg *Config

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64
}

func GetNewGame(ctx context.Context, cfg *Config, system actor.ActorSystem) *Game {
	// 1. Channel the world pushes snapshots through
	snapshotCh := make(chan *pb.WorldSnapshot, 10)

	// 2. Spawn the world and the activation scheduler
	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(snapshotCh, cfg))
	if err != nil {
		panic(fmt.Sprintf("Failed to spawn world: %v", err))
	}
	interval := time.Duration(cfg.AwakenIntervalMs) * time.Millisecond
	_, err = system.Spawn(ctx, "scheduler",
		NewSchedulerActor(worldPID, interval, cfg.NumAgents-cfg.NumActiveAtStart))
	if err != nil {
		panic(fmt.Sprintf("Failed to spawn scheduler: %v", err))
	}

	// 3. Build the tuning panel
	panel := ui.NewPanel(10, 10, 240, cfg.WorldHeight-20)

	panel.AddSection("Perception")
	widgetViewDistance := panel.AddSlider("View Distance", 20, 300, cfg.ViewDistance)
	widgetFieldOfView := panel.AddSlider("Field of View (deg)", 60, 360, cfg.FieldOfView)
	panel.EndSection()

	panel.AddSection("Forces")
	widgetComfortRadius := panel.AddSlider("Comfort Radius", 5, 60, cfg.ComfortRadius)
	widgetBoundaryMargin := panel.AddSlider("Boundary Margin", 20, 200, cfg.BoundaryMargin)
	widgetCurrentStrength := panel.AddSlider("Current Strength", 0, 1, cfg.CurrentStrength)
	panel.EndSection()

	panel.AddSection("Speed Envelope")
	widgetMinSpeed := panel.AddSlider("Min Speed", 0.5, 4, cfg.MinSpeed)
	widgetMaxSpeed := panel.AddSlider("Max Speed", 1, 8, cfg.MaxSpeed)
	panel.EndSection()

	panel.AddSection("Weights")
	widgetGapWeight := panel.AddSlider("Gap", 0, 3, cfg.GapWeight)
	widgetRepulsionWeight := panel.AddSlider("Repulsion", 0, 3, cfg.RepulsionWeight)
	widgetCurrentWeight := panel.AddSlider("Current", 0, 3, cfg.CurrentWeight)
	widgetBoundaryWeight := panel.AddSlider("Boundary", 0, 3, cfg.BoundaryWeight)
	panel.EndSection()

	panel.AddSection("Visualization")
	widgetShowGapRays := panel.AddCheckbox("Show Gap Directions", false)
	widgetShowViewRange := panel.AddCheckbox("Show View Range", false)
	panel.EndSection()

	return &Game{
		ctx:                   ctx,
		System:                system,
		worldPID:              worldPID,
		snapshotCh:            snapshotCh,
		lastState:             &pb.WorldSnapshot{}, // Avoid nil pointer
		panel:                 panel,
		widgetViewDistance:    widgetViewDistance,
		widgetFieldOfView:     widgetFieldOfView,
		widgetComfortRadius:   widgetComfortRadius,
		widgetBoundaryMargin:  widgetBoundaryMargin,
		widgetMinSpeed:        widgetMinSpeed,
		widgetMaxSpeed:        widgetMaxSpeed,
		widgetCurrentStrength: widgetCurrentStrength,
		widgetGapWeight:       widgetGapWeight,
		widgetRepulsionWeight: widgetRepulsionWeight,
		widgetCurrentWeight:   widgetCurrentWeight,
		widgetBoundaryWeight:  widgetBoundaryWeight,
		widgetShowGapRays:     widgetShowGapRays,
		widgetShowViewRange:   widgetShowViewRange,
		cfg:                   cfg,
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel
	g.panel.Update()

	// 2. Retrieve latest snapshot (non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// Keep the envelope usable even when sliders cross
	minSpeed := g.widgetMinSpeed.Value
	maxSpeed := g.widgetMaxSpeed.Value
	if minSpeed > maxSpeed {
		minSpeed = maxSpeed
	}

	// 3. Push tunables and trigger a simulation step
	actor.Tell(g.ctx, g.worldPID, &pb.UpdateConfig{
		ViewDistance:    g.widgetViewDistance.Value,
		FieldOfView:     g.widgetFieldOfView.Value,
		ComfortRadius:   g.widgetComfortRadius.Value,
		BoundaryMargin:  g.widgetBoundaryMargin.Value,
		MinSpeed:        minSpeed,
		MaxSpeed:        maxSpeed,
		CurrentStrength: g.widgetCurrentStrength.Value,
		GapWeight:       g.widgetGapWeight.Value,
		RepulsionWeight: g.widgetRepulsionWeight.Value,
		CurrentWeight:   g.widgetCurrentWeight.Value,
		BoundaryWeight:  g.widgetBoundaryWeight.Value,
	})
	actor.Tell(g.ctx, g.worldPID, &pb.Tick{DeltaTime: 1})

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(waterColor)

	// 1. Draw all agents from the last known snapshot
	for _, a := range g.lastState.Agents {
		if !a.Active {
			vector.FillCircle(screen, float32(a.PositionX), float32(a.PositionY), 3, seedColor, true)
			continue
		}

		if g.widgetShowViewRange.Value {
			vector.StrokeCircle(screen,
				float32(a.PositionX), float32(a.PositionY),
				float32(g.widgetViewDistance.Value),
				1, rangeColor, true)
		}

		if g.widgetShowGapRays.Value && a.HasGap {
			vector.StrokeLine(screen,
				float32(a.PositionX), float32(a.PositionY),
				float32(a.PositionX+a.GapX*gapRayLength),
				float32(a.PositionY+a.GapY*gapRayLength),
				1, gapRayColor, true)
		}

		drawPondBody(screen, a)
	}

	// 2. Draw UI Panel
	g.panel.Draw(screen)

	// 3. Population stats bar
	g.drawStatsBar(screen)

	// 4. Timing readout on the right side
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 50)
}

// drawPondBody renders an active agent as a small triangle oriented along
// its velocity.
func drawPondBody(screen *ebiten.Image, a *pb.AgentState) {
	angle := math.Atan2(a.VelocityY, a.VelocityX)

	tipX := a.PositionX + math.Cos(angle)*6
	tipY := a.PositionY + math.Sin(angle)*6
	rightX := a.PositionX + math.Cos(angle+2.5)*5
	rightY := a.PositionY + math.Sin(angle+2.5)*5
	leftX := a.PositionX + math.Cos(angle-2.5)*5
	leftY := a.PositionY + math.Sin(angle-2.5)*5

	vertices := []ebiten.Vertex{
		{
			DstX: float32(tipX),
			DstY: float32(tipY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(rightX),
			DstY: float32(rightY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(leftX),
			DstY: float32(leftY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
	}

	indices := []uint16{0, 1, 2}
	op := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(vertices, indices, whiteImage, op)
}

func (g *Game) drawStatsBar(screen *ebiten.Image) {
	active := float32(g.lastState.ActiveCount)
	dormant := float32(g.lastState.DormantCount)
	total := active + dormant
	if total == 0 {
		return
	}

	barWidth := float32(200.0)
	barHeight := float32(20.0)
	screenW := float32(screen.Bounds().Dx())
	x := screenW - barWidth - 10
	y := float32(10.0)

	activeW := barWidth * active / total
	vector.FillRect(screen, x, y, activeW, barHeight, activeColor, true)
	vector.FillRect(screen, x+activeW, y, barWidth-activeW, barHeight, dormantBar, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d awake", int(active)), int(x), int(y+barHeight+5))
	dormantMsg := fmt.Sprintf("%d dormant", int(dormant))
	textOffset := float32(len(dormantMsg) * 8)
	ebitenutil.DebugPrintAt(screen, dormantMsg, int(x+barWidth-textOffset), int(y+barHeight+5))
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}
