package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-pond-simulation/internal/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "path to the JSON configuration file")
	schemaFile := flag.String("schema", "config.schema.json", "path to the JSON schema used to validate the configuration")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	ctx := context.Background()

	system, err := actor.NewActorSystem("PondWorld",
		actor.WithLogger(golog.DiscardLogger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("creating actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("starting actor system: %v", err)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Pond: ripple of awakening")

	game := simulation.GetNewGame(ctx, cfg, system)
	defer system.Stop(ctx)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
