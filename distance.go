package graphseg

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ColorMetric measures the dissimilarity between two pixels given their
// channel values. Implementations must return a non-negative value and be
// symmetric in their arguments.
type ColorMetric interface {
	Distance(a, b []float64) float64
}

// MetricFunc adapts a plain function into a ColorMetric.
type MetricFunc func(a, b []float64) float64

func (f MetricFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance between channel
// vectors: sqrt(Δr² + Δg² + Δb²) for an RGB image.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// ManhattanMetric computes the sum of absolute channel differences.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// ChebyshevMetric computes the largest absolute channel difference.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}
