package module

import (
	"time"

	"voicebooking/internal/platform/config"
)

// Options controls sessions, rate limiting and the catalogue source
type Options struct {
	Catalogue  string // intents.yaml override, the embedded pack when empty
	SessionTTL time.Duration
	MaxTurns   int
	RatePerMin int // per client IP, <= 0 disables limiting
	RateBurst  int
}

// FromConfig reads CATALOGUE, SESSION_* and RATE_* values
func FromConfig(cfg config.Conf) Options {
	return Options{
		Catalogue:  cfg.MayString("CATALOGUE", ""),
		SessionTTL: cfg.MayDuration("SESSION_TTL", 30*time.Minute),
		MaxTurns:   cfg.MayInt("SESSION_MAX_TURNS", 50),
		RatePerMin: cfg.MayInt("RATE_PER_MIN", 120),
		RateBurst:  cfg.MayInt("RATE_BURST", 20),
	}
}
