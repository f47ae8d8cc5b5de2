package main

import (
	"flag"
	"log"

	"blackjack-round/internal/config"
	"blackjack-round/internal/game"
	"blackjack-round/internal/render"

	"github.com/pterm/pterm"
)

func main() {
	seed := flag.Int64("seed", 0, "deal from this seed (overrides ROUND_SEED)")
	stand := flag.Bool("stand", false, "stand on the initial deal without asking")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed = seed
		}
	})

	r, err := game.StartRound(game.NewRand(cfg.Seed))
	if err != nil {
		log.Fatalf("Round could not be dealt: %v", err)
	}

	if !*stand {
		if err := playerTurn(r); err != nil {
			log.Fatalf("Round could not be completed: %v", err)
		}
	}

	out, err := r.Resolve()
	if err != nil {
		log.Fatalf("Round could not be completed: %v", err)
	}
	render.PrintOutcome(out)
}

func playerTurn(r *game.Round) error {
	for !r.IsResolved() {
		pterm.DefaultSection.Println("Your turn")
		pterm.Println(render.Table(r))

		hit, err := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Hit?").
			WithDefaultValue(r.PlayerTotal() < 12).
			Show()
		if err != nil {
			return err
		}
		if !hit {
			return nil
		}

		card, err := r.Hit()
		if err != nil {
			return err
		}
		pterm.Info.Printfln("You drew %s", render.Card(card))
	}
	return nil
}
