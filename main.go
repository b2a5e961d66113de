package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jjudes/wordle/internal/cli"
	"github.com/jjudes/wordle/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	lists, err := words.Load(cfg.Words, cfg.Dictionary, cfg.Length)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	pool, allowed := lists.Stats()
	log.Debug().
		Int("pool", pool).
		Int("allowed", allowed).
		Int("length", cfg.Length).
		Int("max_guesses", cfg.MaxGuesses).
		Bool("strict", cfg.Strict).
		Msg("starting session")

	loop := cli.New(os.Stdin, os.Stdout, cli.Options{
		Lists:      lists,
		MaxGuesses: cfg.MaxGuesses,
		Strict:     cfg.Strict,
		NoColor:    cfg.NoColor,
	})
	if err := loop.Run(); err != nil {
		log.Fatal().Err(err).Msg("session ended with error")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
