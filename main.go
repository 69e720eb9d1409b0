package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lukasmw/spatial3d/config"
	"github.com/lukasmw/spatial3d/spatial"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	scene, err := spatial.NewScene(cfg)
	if err != nil {
		os.Exit(1)
	}
	if err := scene.Run(); err != nil {
		slog.Error("error running scene", "err", err)
		os.Exit(1)
	}
}
