package analysis

import (
	"context"
	"fmt"
	"sort"
)

// BifurcationPoint holds the values a series visited once settled, for one
// parameter value.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

// SeriesFunc runs a scenario with the parameter set to v and returns the
// daily series to inspect.
type SeriesFunc func(ctx context.Context, v float64) ([]float64, error)

// Sweep runs paramSteps evenly spaced values of [paramMin, paramMax] and
// records the distinct values of each series after the transient days. One
// value means the loops settle, several mean they keep hunting.
func Sweep(
	ctx context.Context,
	run SeriesFunc,
	paramMin, paramMax float64,
	paramSteps int,
	transient int,
) ([]BifurcationPoint, error) {
	if paramSteps <= 1 {
		paramSteps = 2
	}
	paramStep := (paramMax - paramMin) / float64(paramSteps-1)

	results := make([]BifurcationPoint, 0, paramSteps)
	for i := 0; i < paramSteps; i++ {
		param := paramMin + float64(i)*paramStep
		series, err := run(ctx, param)
		if err != nil {
			return results, fmt.Errorf("param %g: %w", param, err)
		}

		seen := make(map[float64]bool)
		values := make([]float64, 0)
		for day := transient; day < len(series); day++ {
			v := series[day]
			if !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
		sort.Float64s(values)

		results = append(results, BifurcationPoint{Param: param, Values: values})
	}
	return results, nil
}

// BifurcationToASCII converts bifurcation data to ASCII art
func BifurcationToASCII(data []BifurcationPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	var minVal, maxVal float64
	foundFirst := false
	for _, p := range data {
		for _, v := range p.Values {
			if !foundFirst {
				minVal, maxVal = v, v
				foundFirst = true
				continue
			}
			minVal = min(minVal, v)
			maxVal = max(maxVal, v)
		}
	}
	if !foundFirst {
		return ""
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := newCanvas(width, height)
	for i, p := range data {
		col := min(i*width/len(data), width-1)
		for _, v := range p.Values {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if row >= 0 && row < height {
				canvas[row][col] = '•'
			}
		}
	}
	return canvasString(canvas)
}
