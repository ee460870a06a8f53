package stats_test

import (
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/carewell-org/hospital/stats"
)

type fakeSource struct {
	doctorsOnDuty     int
	appointmentsToday int

	doctorsErr      error
	appointmentsErr error

	requestedDates []string
}

func (f *fakeSource) DoctorsOnDuty(ctx context.Context) (int, error) {
	return f.doctorsOnDuty, f.doctorsErr
}

func (f *fakeSource) AppointmentsOn(ctx context.Context, date string) (int, error) {
	f.requestedDates = append(f.requestedDates, date)
	return f.appointmentsToday, f.appointmentsErr
}

var _ = Describe("Synthesizer", func() {
	var source *fakeSource
	var synthesizer *stats.Synthesizer

	// fixed clock: 2026-03-14T23:30:00Z
	now := func() time.Time {
		return time.Date(2026, time.March, 14, 23, 30, 0, 0, time.UTC)
	}

	BeforeEach(func() {
		source = &fakeSource{}

		var err error
		synthesizer, err = stats.NewSynthesizerWithClock(source, now, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	It("computes the snapshot from the live counts", func() {
		source.doctorsOnDuty = 24
		source.appointmentsToday = 9

		snapshot := synthesizer.Snapshot(context.Background())
		Expect(snapshot).To(Equal(stats.Compute(24, 9)))
	})

	It("queries appointments for the current UTC calendar date", func() {
		synthesizer.Snapshot(context.Background())
		Expect(source.requestedDates).To(ConsistOf("2026-03-14"))
	})

	It("is idempotent for identical counts", func() {
		source.doctorsOnDuty = 7
		source.appointmentsToday = 31

		first := synthesizer.Snapshot(context.Background())
		second := synthesizer.Snapshot(context.Background())
		Expect(first).To(Equal(second))
	})

	Context("when the doctors count query fails", func() {
		BeforeEach(func() {
			source.doctorsErr = errors.New("server selection timeout")
		})

		It("serves the fallback snapshot with a note", func() {
			snapshot := synthesizer.Snapshot(context.Background())

			Expect(snapshot.WaitMinutes).To(Equal(15))
			Expect(snapshot.BedOccupancyPercent).To(Equal(82))
			Expect(snapshot.DoctorsOnDuty).To(Equal(24))
			Expect(snapshot.ActivityScore).To(Equal(70))
			Expect(snapshot.Note).ToNot(BeEmpty())
		})

		It("does not query appointments", func() {
			synthesizer.Snapshot(context.Background())
			Expect(source.requestedDates).To(BeEmpty())
		})
	})

	Context("when the appointments count query fails", func() {
		BeforeEach(func() {
			source.appointmentsErr = errors.New(strings.Repeat("connection refused ", 10))
		})

		It("serves the fallback snapshot with a truncated note", func() {
			snapshot := synthesizer.Snapshot(context.Background())

			Expect(snapshot.WaitMinutes).To(Equal(15))
			Expect(snapshot.BedOccupancyPercent).To(Equal(82))
			Expect(snapshot.DoctorsOnDuty).To(Equal(24))
			Expect(snapshot.ActivityScore).To(Equal(70))
			Expect(len(snapshot.Note)).To(And(BeNumerically(">", 0), BeNumerically("<=", 80)))
		})
	})
})
