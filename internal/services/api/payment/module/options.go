package module

import (
	"time"

	"voicebooking/internal/platform/config"
)

// Options controls the mock payment gateway
type Options struct {
	MockOTP string
	OTPTTL  time.Duration
}

// FromConfig reads MOCK_OTP and OTP_TTL
func FromConfig(cfg config.Conf) Options {
	return Options{
		MockOTP: cfg.MayString("MOCK_OTP", "123456"),
		OTPTTL:  cfg.MayDuration("OTP_TTL", 5*time.Minute),
	}
}
