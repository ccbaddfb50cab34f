// Package floatutils provides utilities for working with floats
package floatutils

// MaxSlice gets the maximum value and the indices of every element
// equal to that maximum in a slice of float64. Indices are returned in
// ascending order. MaxSlice panics if values is empty.
func MaxSlice(values []float64) (max float64, indices []int) {
	max, indices = values[0], []int{0}

	for i := 1; i < len(values); i++ {
		value := values[i]
		if value > max {
			max = value
			indices = indices[:0]
			indices = append(indices, i)
		} else if value == max {
			indices = append(indices, i)
		}
	}
	return
}

// Max calculates and returns the maximum float64 in a list
func Max(floats ...float64) float64 {
	max := floats[0]
	for _, val := range floats {
		if val > max {
			max = val
		}
	}
	return max
}

// Min calculates and returns the minimum float64 in a list
func Min(floats ...float64) float64 {
	min := floats[0]
	for _, val := range floats {
		if val < min {
			min = val
		}
	}
	return min
}
