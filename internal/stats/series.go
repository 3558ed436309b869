// Package stats accumulates the figures a simulation batch reports.
package stats

import (
	"errors"
	"math"
)

// ErrInsufficientData is returned when a statistic needs more samples than
// the series holds.
var ErrInsufficientData = errors.New("insufficient data")

// Series is an append-only list of samples.
type Series struct {
	values []float64
}

// NewSeries creates a series holding values.
func NewSeries(values ...float64) *Series {
	s := &Series{}
	for _, v := range values {
		s.Append(v)
	}
	return s
}

// Append adds one sample.
func (s *Series) Append(v float64) {
	s.values = append(s.values, v)
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.values)
}

// Values returns a copy of the samples in insertion order.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Sum returns the sum of all samples.
func (s *Series) Sum() float64 {
	sum := 0.0
	for _, v := range s.values {
		sum += v
	}
	return sum
}

// Mean returns the arithmetic mean.
func (s *Series) Mean() (float64, error) {
	if len(s.values) == 0 {
		return 0, ErrInsufficientData
	}
	return s.Sum() / float64(len(s.values)), nil
}

// StdDev returns the sample standard deviation (n-1 denominator).
func (s *Series) StdDev() (float64, error) {
	if len(s.values) < 2 {
		return 0, ErrInsufficientData
	}
	m, _ := s.Mean()
	sq := 0.0
	for _, v := range s.values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(s.values)-1)), nil
}

// Max returns the largest sample.
func (s *Series) Max() (float64, error) {
	if len(s.values) == 0 {
		return 0, ErrInsufficientData
	}
	max := s.values[0]
	for _, v := range s.values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// Min returns the smallest sample.
func (s *Series) Min() (float64, error) {
	if len(s.values) == 0 {
		return 0, ErrInsufficientData
	}
	min := s.values[0]
	for _, v := range s.values[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

// Reset drops every sample.
func (s *Series) Reset() {
	s.values = s.values[:0]
}
