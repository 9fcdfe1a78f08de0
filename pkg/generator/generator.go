// Package generator emits synthetic service log lines in the analyzer's
// wire formats.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"logsift/pkg/config"
	"logsift/pkg/detector"
)

// entryTimestampLayout mirrors an ISO-8601 timestamp with microseconds.
// It contains no spaces, as the txt grammar requires.
const entryTimestampLayout = "2006-01-02T15:04:05.000000"

// Generator produces random log entries according to its configuration.
// Configuration is constructed once at startup and passed in; there is no
// ambient global state.
type Generator struct {
	cfg *config.GeneratorConfig

	levelChooser *Chooser
	rng          *rand.Rand
	now          func() time.Time
	stderr       io.Writer
}

// Option configures generator behavior.
type Option func(*Generator)

// WithRand sets the random source, for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithClock sets the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithStderr redirects progress messages (default os.Stderr).
func WithStderr(w io.Writer) Option {
	return func(g *Generator) {
		g.stderr = w
	}
}

// New creates a generator from configuration.
func New(cfg *config.GeneratorConfig, opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg:    cfg,
		now:    time.Now,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- synthetic data, not crypto
	}

	weights := make(map[string]int, len(cfg.Levels))
	for _, level := range cfg.Levels {
		weights[level] = cfg.Distribution[level]
	}
	g.levelChooser = NewChooser(weights)
	if g.levelChooser.Total() == 0 {
		return nil, fmt.Errorf("no level has positive weight in distribution")
	}

	return g, nil
}

// Entry is one synthetic log entry before wire encoding.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	ID        string `json:"id"`
	Service   string `json:"service"`
	Message   string `json:"message"`
}

// NewEntry generates one random entry: weighted level, uniform service,
// templated message with context substitution.
func (g *Generator) NewEntry() Entry {
	service := g.cfg.Services[g.rng.Intn(len(g.cfg.Services))]
	level := g.levelChooser.Pick(g.rng)
	template := g.messageTemplate(service, level)
	message := renderTemplate(template, level, g.contextData(service))
	now := g.now()

	return Entry{
		Timestamp: now.Format(entryTimestampLayout),
		Level:     level,
		ID:        fmt.Sprintf("%s-%d-%d", strings.ToUpper(service), now.Unix(), g.rng.Intn(9000)+1000),
		Service:   service,
		Message:   message,
	}
}

// contextData builds the placeholder values available to message
// templates for the given service. Service families contribute extra
// keys.
func (g *Generator) contextData(service string) map[string]string {
	ctx := map[string]string{
		"service":    service,
		"timestamp":  fmt.Sprintf("%d", g.now().Unix()),
		"request_id": fmt.Sprintf("req-%d", g.rng.Intn(9000)+1000),
		"user_id":    fmt.Sprintf("user-%d", g.rng.Intn(1000)+1),
		"ip_address": fmt.Sprintf("192.168.%d.%d", g.rng.Intn(256), g.rng.Intn(256)),
	}

	switch {
	case strings.Contains(service, "auth"):
		ctx["provider"] = pick(g.rng, "google", "github", "email", "microsoft")
		ctx["session_id"] = "sess-" + uuid.NewString()
	case strings.Contains(service, "payment"):
		ctx["amount"] = fmt.Sprintf("%.2f", 10+g.rng.Float64()*990)
		ctx["currency"] = pick(g.rng, "USD", "EUR", "GBP")
		ctx["transaction_id"] = "txn-" + uuid.NewString()
	}

	return ctx
}

func pick(rng *rand.Rand, choices ...string) string {
	return choices[rng.Intn(len(choices))]
}

// PickFormat selects one wire format for a run from the configured set.
func (g *Generator) PickFormat() detector.Format {
	name := g.cfg.Formats[g.rng.Intn(len(g.cfg.Formats))]
	if f, ok := detector.Parse(name); ok {
		return f
	}
	return detector.FormatText
}

// EncodeEntry renders an entry in the given wire format, without a
// trailing newline.
func EncodeEntry(e Entry, format detector.Format) string {
	switch format {
	case detector.FormatJSON:
		payload, err := json.Marshal(e)
		if err != nil {
			return textLine(e) // fall back to text
		}
		return string(payload)
	case detector.FormatCSV:
		return `"` + textLine(e) + `"`
	default:
		return textLine(e)
	}
}

func textLine(e Entry) string {
	return fmt.Sprintf("%s [%s] [%s] [%s]: %s", e.Timestamp, e.Level, e.ID, e.Service, e.Message)
}

// Run emits entries at the configured rate until the duration elapses or
// the context is canceled, and returns how many were written. A duration
// of zero runs until cancellation.
func (g *Generator) Run(ctx context.Context, duration time.Duration, format detector.Format, w *Writer) (int, error) {
	baseSleep := time.Second / time.Duration(g.cfg.Rate)
	sleep := baseSleep

	bursts := g.cfg.Bursts
	var (
		bursting   bool
		burstStart time.Time
	)
	lastBurst := g.now()

	start := g.now()
	count := 0

	for {
		if duration > 0 && g.now().Sub(start) >= duration {
			return count, nil
		}

		now := g.now()
		if bursts.Enabled && !bursting && g.shouldStartBurst(now, lastBurst) {
			bursting = true
			burstStart = now
			sleep = baseSleep / time.Duration(bursts.Multiplier)
			fmt.Fprintf(g.stderr, "Burst mode activated: x%d rate for %ds\n", bursts.Multiplier, bursts.Duration)
		}
		if bursting && now.Sub(burstStart) >= time.Duration(bursts.Duration)*time.Second {
			bursting = false
			sleep = baseSleep
			lastBurst = now
			fmt.Fprintln(g.stderr, "Burst mode deactivated, resuming normal rate")
		}

		if err := w.Write(EncodeEntry(g.NewEntry(), format)); err != nil {
			return count, err
		}
		count++

		select {
		case <-ctx.Done():
			return count, nil
		case <-time.After(sleep):
		}
	}
}

// shouldStartBurst keeps both trigger conditions of the pacing model: a
// per-tick probability of 1/(frequency*60), plus a forced start when a
// full frequency interval has passed without a burst.
func (g *Generator) shouldStartBurst(now, lastBurst time.Time) bool {
	freq := g.cfg.Bursts.Frequency
	interval := time.Duration(freq) * time.Minute
	probability := 1.0 / (float64(freq) * 60)
	return g.rng.Float64() < probability || now.Sub(lastBurst) > interval
}
