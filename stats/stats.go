// Package stats synthesizes the live dashboard snapshot from document
// counts in the store.
package stats

import "math"

const (
	// TotalBeds is the fixed bed capacity the occupancy percentage is
	// derived from.
	TotalBeds = 250

	baselineOccupiedBeds = 150

	minWaitMinutes = 5
	maxWaitMinutes = 45

	minActivityScore = 40
	maxActivityScore = 95

	minDoctorsOnDuty     = 12
	defaultDoctorsOnDuty = 24
)

// Snapshot is the four-field result returned by the stats endpoint.
type Snapshot struct {
	WaitMinutes         int    `json:"wait"`
	BedOccupancyPercent int    `json:"beds"`
	DoctorsOnDuty       int    `json:"doctors"`
	ActivityScore       int    `json:"activity"`
	Note                string `json:"note,omitempty"`
}

// Compute derives a snapshot from the number of doctors currently on duty
// and the number of appointments booked for today. All divisions truncate
// and clamps are applied after the arithmetic. The occupancy percentage is
// rounded half away from zero; for integer occupied-bed counts over a
// capacity of 250 no tie can arise.
func Compute(doctorsOnDuty int, appointmentsToday int) Snapshot {
	occupiedBeds := baselineOccupiedBeds + (doctorsOnDuty/2)*3
	if occupiedBeds > TotalBeds {
		occupiedBeds = TotalBeds
	}
	bedOccupancyPercent := int(math.Round(float64(occupiedBeds) / float64(TotalBeds) * 100))

	waitMinutes := clamp(10+appointmentsToday/3-doctorsOnDuty/5, minWaitMinutes, maxWaitMinutes)
	activityScore := clamp(60+doctorsOnDuty*2-appointmentsToday/4, minActivityScore, maxActivityScore)

	doctors := doctorsOnDuty
	if doctors == 0 {
		doctors = defaultDoctorsOnDuty
	}
	if doctors < minDoctorsOnDuty {
		doctors = minDoctorsOnDuty
	}

	return Snapshot{
		WaitMinutes:         waitMinutes,
		BedOccupancyPercent: bedOccupancyPercent,
		DoctorsOnDuty:       doctors,
		ActivityScore:       activityScore,
	}
}

// FallbackSnapshot returns the conservative static snapshot served when
// live counts cannot be obtained. The note carries a truncated diagnostic
// description of the failure.
func FallbackSnapshot(note string) Snapshot {
	return Snapshot{
		WaitMinutes:         15,
		BedOccupancyPercent: 82,
		DoctorsOnDuty:       24,
		ActivityScore:       70,
		Note:                truncateNote(note),
	}
}

const maxNoteLength = 80

func truncateNote(note string) string {
	if len(note) > maxNoteLength {
		return note[:maxNoteLength]
	}
	return note
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
