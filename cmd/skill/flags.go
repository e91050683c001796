package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"bitbucket.org/sotavant/greetings-skill/internal/quote"
	"bitbucket.org/sotavant/greetings-skill/internal/skill"
)

var flagRunAddr string
var flagLogLevel string
var flagQuoteURL string
var flagImageURL string
var flagDebug bool

// envConfig перекрывает значения флагов, если переменные окружения заданы.
type envConfig struct {
	RunAddr  string `env:"RUN_ADDR"`
	LogLevel string `env:"LOG_LEVEL"`
	QuoteURL string `env:"QUOTE_URL"`
	ImageURL string `env:"CARD_IMAGE_URL"`
	Debug    bool   `env:"SKILL_DEBUG"`
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	fs.StringVar(&flagRunAddr, "a", ":8080", "address and port")
	fs.StringVar(&flagLogLevel, "l", "info", "log level")
	fs.StringVar(&flagQuoteURL, "q", quote.DefaultURL, "quote service URL")
	fs.StringVar(&flagImageURL, "i", skill.DefaultImageURL, "greeting card image URL")
	fs.BoolVar(&flagDebug, "debug", false, "log inbound events and outbound responses")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if cfg.RunAddr != "" {
		flagRunAddr = cfg.RunAddr
	}

	if cfg.LogLevel != "" {
		flagLogLevel = cfg.LogLevel
	}

	if cfg.QuoteURL != "" {
		flagQuoteURL = cfg.QuoteURL
	}

	if cfg.ImageURL != "" {
		flagImageURL = cfg.ImageURL
	}

	if cfg.Debug {
		flagDebug = true
	}

	// отладочный режим включает вывод событий и ответов целиком
	if flagDebug {
		flagLogLevel = "debug"
	}

	return nil
}
