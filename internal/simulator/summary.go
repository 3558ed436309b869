package simulator

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary is the aggregate of every session a Simulator recorded.
type Summary struct {
	RunID    uuid.UUID `json:"runId"`
	Strategy string    `json:"strategy"`
	Sessions int       `json:"sessions"`

	DurationMean   decimal.Decimal `json:"durationMean"`
	DurationStdDev decimal.Decimal `json:"durationStdDev"`
	MaximaMean     decimal.Decimal `json:"maximaMean"`
	MaximaStdDev   decimal.Decimal `json:"maximaStdDev"`
	MaximaPeak     decimal.Decimal `json:"maximaPeak"`
}

// summaryPlaces is the rounding applied to every reported figure.
const summaryPlaces = 3

// Summary reports mean and standard deviation of durations and maxima. It
// needs at least two recorded sessions.
func (s *Simulator) Summary() (Summary, error) {
	sum := Summary{
		RunID:    s.runID,
		Strategy: s.player.Name(),
		Sessions: s.durations.Len(),
	}

	figures := []struct {
		dst *decimal.Decimal
		fn  func() (float64, error)
		tag string
	}{
		{&sum.DurationMean, s.durations.Mean, "duration mean"},
		{&sum.DurationStdDev, s.durations.StdDev, "duration stddev"},
		{&sum.MaximaMean, s.maxima.Mean, "maxima mean"},
		{&sum.MaximaStdDev, s.maxima.StdDev, "maxima stddev"},
		{&sum.MaximaPeak, s.maxima.Max, "maxima peak"},
	}
	for _, f := range figures {
		v, err := f.fn()
		if err != nil {
			return Summary{}, fmt.Errorf("%s over %d sessions: %w", f.tag, sum.Sessions, err)
		}
		*f.dst = decimalRound(v)
	}
	return sum, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("run %s: %s over %d sessions, duration %s ± %s, maxima %s ± %s (peak %s)",
		s.RunID, s.Strategy, s.Sessions,
		s.DurationMean, s.DurationStdDev,
		s.MaximaMean, s.MaximaStdDev, s.MaximaPeak)
}

func decimalRound(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(summaryPlaces)
}
