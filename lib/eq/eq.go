/*package eq is a simple package for telling whether two arrays are equal to
one another. It exists mostly for tests. The float comparisons here are
bit-exact so that sentinel NaNs compare equal to themselves and unequal to any
other NaN.*/
package eq

import (
	"math"
)

// Generic returns true if two arrays are the same type and have the same
// values and false otherwise. Only []byte, []string, []bool, []int32,
// []uint32, []float32, and [][3]float32 are supported.
func Generic(x, y interface{}) bool {
	switch xx := x.(type) {
	case []byte:
		yy, ok := y.([]byte)
		if !ok {
			return false
		}
		return Bytes(xx, yy)
	case []string:
		yy, ok := y.([]string)
		if !ok {
			return false
		}
		return Strings(xx, yy)
	case []bool:
		yy, ok := y.([]bool)
		if !ok {
			return false
		}
		return Bools(xx, yy)
	case []int32:
		yy, ok := y.([]int32)
		if !ok {
			return false
		}
		return Int32s(xx, yy)
	case []uint32:
		yy, ok := y.([]uint32)
		if !ok {
			return false
		}
		return Uint32s(xx, yy)
	case []float32:
		yy, ok := y.([]float32)
		if !ok {
			return false
		}
		return Float32s(xx, yy)
	case [][3]float32:
		yy, ok := y.([][3]float32)
		if !ok {
			return false
		}
		return Vec32s(xx, yy)
	}
	return false
}

// Bytes returns true if two []byte arrays are the same and false otherwise.
func Bytes(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Strings returns true if two []string arrays are the same and false
// otherwise.
func Strings(x, y []string) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Bools returns true if two []bool arrays are the same and false otherwise.
func Bools(x, y []bool) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Int32s returns true if two []int32 arrays are the same and false otherwise.
func Int32s(x, y []int32) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Uint32s returns true if two []uint32 arrays are the same and false
// otherwise.
func Uint32s(x, y []uint32) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Float32s returns true if two []float32 arrays are bit-identical and false
// otherwise. NaNs with the same payload compare equal.
func Float32s(x, y []float32) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if math.Float32bits(x[i]) != math.Float32bits(y[i]) {
			return false
		}
	}
	return true
}

// Vec32s returns true if two [][3]float32 arrays are bit-identical and false
// otherwise. NaNs with the same payload compare equal.
func Vec32s(x, y [][3]float32) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		for dim := 0; dim < 3; dim++ {
			if math.Float32bits(x[i][dim]) != math.Float32bits(y[i][dim]) {
				return false
			}
		}
	}
	return true
}
