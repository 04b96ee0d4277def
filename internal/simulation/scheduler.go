package simulation

import (
	"context"
	"time"

	"github.com/lao-tseu-is-alive/go-pond-simulation/pb"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// SchedulerActor wakes the pond one agent at a time. It owns a plain
// time.Ticker running outside the per-tick force loop, so the awakening
// cadence is independent of the frame rate. Once every agent has been woken
// the ticker stops on its own.
type SchedulerActor struct {
	worldPID  *actor.PID
	interval  time.Duration
	remaining int
	stop      chan struct{}
}

var _ actor.Actor = (*SchedulerActor)(nil)

func NewSchedulerActor(worldPID *actor.PID, interval time.Duration, remaining int) *SchedulerActor {
	return &SchedulerActor{
		worldPID:  worldPID,
		interval:  interval,
		remaining: remaining,
	}
}

func (s *SchedulerActor) PreStart(ctx *actor.Context) error {
	return nil
}

func (s *SchedulerActor) Receive(ctx *actor.ReceiveContext) {
	switch ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Infof("Scheduler started: waking %d agents, one every %v", s.remaining, s.interval)
		s.stop = make(chan struct{})
		go s.run()
	default:
		ctx.Unhandled()
	}
}

func (s *SchedulerActor) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	bg := context.Background()
	for left := s.remaining; left > 0; left-- {
		select {
		case <-ticker.C:
			actor.Tell(bg, s.worldPID, &pb.Awaken{Count: 1})
		case <-s.stop:
			return
		}
	}
}

func (s *SchedulerActor) PostStop(ctx *actor.Context) error {
	if s.stop != nil {
		close(s.stop)
	}
	return nil
}
