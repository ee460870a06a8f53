package stats

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/carewell-org/hospital/metrics"
)

// Source provides the two live counts the snapshot is derived from. Both
// queries may fail; the synthesizer absorbs any failure into the fallback.
type Source interface {
	DoctorsOnDuty(ctx context.Context) (int, error)
	AppointmentsOn(ctx context.Context, date string) (int, error)
}

// Reporter is the read-only surface consumed by the HTTP handler and CLI.
type Reporter interface {
	Snapshot(ctx context.Context) Snapshot
}

type Synthesizer struct {
	source Source
	now    func() time.Time
	logger *zap.SugaredLogger
}

var _ Reporter = &Synthesizer{}

func NewSynthesizer(source Source, logger *zap.SugaredLogger) (Reporter, error) {
	return NewSynthesizerWithClock(source, time.Now, logger)
}

// NewSynthesizerWithClock allows the "today" date used for the
// appointments count to be pinned, which tests rely on.
func NewSynthesizerWithClock(source Source, now func() time.Time, logger *zap.SugaredLogger) (*Synthesizer, error) {
	return &Synthesizer{
		source: source,
		now:    now,
		logger: logger,
	}, nil
}

// Snapshot recomputes the dashboard values from live counts. It never
// returns an error: when either count query fails the static fallback is
// served instead, with a diagnostic note.
func (s *Synthesizer) Snapshot(ctx context.Context) Snapshot {
	today := s.now().UTC().Format("2006-01-02")

	doctorsOnDuty, err := s.source.DoctorsOnDuty(ctx)
	if err != nil {
		return s.fallback(err)
	}

	appointmentsToday, err := s.source.AppointmentsOn(ctx, today)
	if err != nil {
		return s.fallback(err)
	}

	metrics.StatsSnapshotsTotal.Inc()
	return Compute(doctorsOnDuty, appointmentsToday)
}

func (s *Synthesizer) fallback(err error) Snapshot {
	s.logger.Warnw("serving fallback stats snapshot", "error", err)
	metrics.StatsFallbacksTotal.Inc()
	return FallbackSnapshot(err.Error())
}
