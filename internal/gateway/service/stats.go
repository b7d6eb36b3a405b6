package service

import (
	"errors"
	"math"
)

var ErrEmptySample = errors.New("empty_sample")

// Stats summarises a numeric sample.
type Stats struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

// Summarize computes count, mean, sample standard deviation (N-1
// denominator), min and max over the sample. A single-element sample has
// no spread, so its deviation reports as zero.
func Summarize(values []float64) (Stats, error) {
	if len(values) == 0 {
		return Stats{}, ErrEmptySample
	}

	var sum float64
	min, max := values[0], values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(len(values))

	var std float64
	if len(values) > 1 {
		var sqDiff float64
		for _, v := range values {
			d := v - mean
			sqDiff += d * d
		}
		std = math.Sqrt(sqDiff / float64(len(values)-1))
	}

	return Stats{
		Count: len(values),
		Mean:  mean,
		Std:   std,
		Min:   min,
		Max:   max,
	}, nil
}
