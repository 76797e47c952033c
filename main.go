package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"lifehistory/tui"
	"lifehistory/ui"
)

func main() {
	cfg, err := ParseConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if cfg.Terminal {
		err = tui.Run(cfg.Settings(), rng, cfg.Speed())
	} else {
		err = ui.Run(ui.Options{Settings: cfg.Settings(), Palette: cfg.Palette, Speed: cfg.Speed()}, rng)
	}
	if err != nil {
		log.Fatal(err)
	}
}
