package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"github.com/milk9111/propanim/common"
)

func main() {
	scene := pflag.StringP("scene", "s", "demo.yaml", "scene file on disk, or the name of an embedded scene")
	level := pflag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	watch := pflag.Bool("watch", true, "reload the scene when files under prefabs/ change")
	pflag.Parse()

	logger := common.SetupLogger(*level)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("propanim")

	game, err := NewGame(*scene, *watch, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("scene", *scene).Msg("could not start")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal().Err(err).Msg("game exited")
	}
}
