package diagnostics

import (
	"context"
	"time"

	"github.com/coinsguard/coinsguard-api/pkg/logger"
	"github.com/coinsguard/coinsguard-api/pkg/metrics"
	"go.uber.org/zap"
)

// State summarizes what a probe found
type State string

const (
	StateNotInitialized State = "not_initialized"
	StateDegraded       State = "degraded"
	StateConnected      State = "connected"
)

const (
	maxCollections = 10
	maxErrorLength = 50
)

// Human readable status lines
const (
	backendRunning    = "✅ Running"
	dbConnected       = "✅ Connected & Working"
	dbDegradedPrefix  = "⚠️  Connected but Error: "
	dbNotInitialized  = "⚠️  Available but not initialized"
	settingSet        = "✅ Set"
	settingNotSet     = "❌ Not Set"
	statusConnected   = "Connected"
	statusUnconnected = "Not Connected"
)

// Target is the store being probed
type Target interface {
	Available() bool
	BackendName() string
	ListCollections(ctx context.Context) ([]string, error)
}

// Report is the outcome of one probe
type Report struct {
	Backend          string   `json:"backend" example:"✅ Running"`
	Database         string   `json:"database" example:"✅ Connected & Working"`
	DatabaseURL      string   `json:"database_url" example:"✅ Set"`
	DatabaseName     string   `json:"database_name" example:"✅ Set"`
	ConnectionStatus string   `json:"connection_status" example:"Connected"`
	Collections      []string `json:"collections"`
	State            State    `json:"state" example:"connected"`
	Driver           string   `json:"driver" example:"mongodb"`
	Error            string   `json:"error,omitempty"`
}

// Settings reports which connection settings are present
type Settings struct {
	URLConfigured  bool
	NameConfigured bool
}

// Probe checks whether the document store can actually be used
type Probe struct {
	target   Target
	settings Settings
	timeout  time.Duration
}

// NewProbe creates a probe of target. A zero timeout leaves the caller's
// deadline in charge.
func NewProbe(target Target, settings Settings, timeout time.Duration) *Probe {
	return &Probe{target: target, settings: settings, timeout: timeout}
}

// Run inspects the store. It never fails: every problem is reported in the
// returned Report.
func (p *Probe) Run(ctx context.Context) Report {
	report := Report{
		Backend:          backendRunning,
		Database:         dbNotInitialized,
		DatabaseURL:      flag(p.settings.URLConfigured),
		DatabaseName:     flag(p.settings.NameConfigured),
		ConnectionStatus: statusUnconnected,
		Collections:      []string{},
		State:            StateNotInitialized,
	}

	if p.target == nil || !p.target.Available() {
		p.record(report)
		return report
	}

	report.Driver = p.target.BackendName()
	report.ConnectionStatus = statusConnected

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	names, err := p.target.ListCollections(ctx)
	if err != nil {
		report.State = StateDegraded
		report.Error = Excerpt(err.Error(), maxErrorLength)
		report.Database = dbDegradedPrefix + report.Error
		p.record(report)
		return report
	}

	if len(names) > maxCollections {
		names = names[:maxCollections]
	}
	if names != nil {
		report.Collections = names
	}
	report.State = StateConnected
	report.Database = dbConnected
	p.record(report)
	return report
}

func (p *Probe) record(report Report) {
	metrics.DiagnosticsProbes.WithLabelValues(string(report.State)).Inc()
	if report.State != StateConnected {
		logger.Warn("Diagnostics probe found store not ready",
			zap.String("state", string(report.State)),
			zap.String("error", report.Error),
		)
	}
}

// Excerpt returns at most n characters of s
func Excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func flag(set bool) string {
	if set {
		return settingSet
	}
	return settingNotSet
}
