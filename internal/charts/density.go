package charts

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// gaussianKDE returns a Gaussian kernel density estimate of values using
// Scott's bandwidth, multiplied by scale. With scale = n·binWidth the curve
// lines up with a count histogram. ok is false when the sample has fewer than
// two points or no spread.
func gaussianKDE(values []float64, scale float64) (density func(float64) float64, ok bool) {
	n := len(values)
	if n < 2 {
		return nil, false
	}
	sd := stat.StdDev(values, nil)
	if sd == 0 || math.IsNaN(sd) {
		return nil, false
	}

	bandwidth := sd * math.Pow(float64(n), -0.2)
	norm := scale / (float64(n) * bandwidth * math.Sqrt(2*math.Pi))
	sample := append([]float64(nil), values...)

	return func(x float64) float64 {
		var sum float64
		for _, v := range sample {
			u := (x - v) / bandwidth
			sum += math.Exp(-0.5 * u * u)
		}
		return norm * sum
	}, true
}
