// Package modkit provides module wiring and core deps
package modkit

import (
	"voicebooking/internal/modkit/repokit"
	"voicebooking/internal/platform/config"
	"voicebooking/internal/platform/logger"
	"voicebooking/internal/platform/metrics"
	ptime "voicebooking/internal/platform/time"
)

// Deps holds core dependencies passed to modules.
// Zero Metrics and Clock are valid; modules fall back to no-op instruments and the system clock
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Store   repokit.TxRunner
	Metrics *metrics.Metrics
	Clock   ptime.Clock
}

// Instruments returns d.Metrics or a no-op set
func (d Deps) Instruments() *metrics.Metrics { return metrics.OrNop(d.Metrics) }

// Now returns d.Clock or the system clock
func (d Deps) Now() ptime.Clock { return ptime.OrSystem(d.Clock) }
