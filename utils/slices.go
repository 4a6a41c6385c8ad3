// Package utils implements generic slice helpers shared by the module's
// tests and consumers.
package utils

import (
	"golang.org/x/exp/constraints"
)

// IsMonotonicallyIncreasing returns true if the slice is sorted in
// non-decreasing order.
func IsMonotonicallyIncreasing[V constraints.Ordered](s []V) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

// MinSlice returns the minimum value of a non-empty slice.
func MinSlice[V constraints.Ordered](s []V) (min V) {
	min = s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return
}

// MaxSlice returns the maximum value of a non-empty slice.
func MaxSlice[V constraints.Ordered](s []V) (max V) {
	max = s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return
}
