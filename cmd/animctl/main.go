package main

import (
	"os"

	zlog "github.com/rs/zerolog/log"
)

func main() {
	if err := Root.Execute(); err != nil {
		zlog.Error().Err(err).Msg("animctl failed")
		os.Exit(1)
	}
}
