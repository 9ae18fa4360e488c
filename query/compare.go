package query

import (
	"math"
	"strings"
)

const numberEpsilon = 1e-9

func compareUint8(v, target uint8, op Op) bool {
	if stringOnly(op) {
		return false
	}

	return compareOrdered(int64(v), int64(target), op)
}

func compareUint32(v, target uint32, op Op) bool {
	if stringOnly(op) {
		return false
	}

	return compareOrdered(int64(v), int64(target), op)
}

func compareInt64(v, target int64, op Op) bool {
	if stringOnly(op) {
		return false
	}

	return compareOrdered(v, target, op)
}

// compareUint128 compares two 128-bit unsigned values held as (hi, lo)
// uint64 pairs, most-significant half first.
func compareUint128(vHi, vLo, tHi, tLo uint64, op Op) bool {
	if stringOnly(op) {
		return false
	}

	cmp := 0
	switch {
	case vHi < tHi:
		cmp = -1
	case vHi > tHi:
		cmp = 1
	case vLo < tLo:
		cmp = -1
	case vLo > tLo:
		cmp = 1
	}

	return compareSign(cmp, op)
}

func compareOrdered(v, target int64, op Op) bool {
	cmp := 0
	switch {
	case v < target:
		cmp = -1
	case v > target:
		cmp = 1
	}

	return compareSign(cmp, op)
}

func compareSign(cmp int, op Op) bool {
	switch op {
	case Eq:
		return cmp == 0
	case Ne:
		return cmp != 0
	case Lt:
		return cmp < 0
	case Le:
		return cmp <= 0
	case Gt:
		return cmp > 0
	case Ge:
		return cmp >= 0
	default:
		return false
	}
}

// compareFloat64 implements spec.md §4.6's float comparison rule: Eq/Ne via
// absolute-difference-under-epsilon, order operators via native float
// order (NaN never compares true for any operator).
func compareFloat64(v, target float64, op Op) bool {
	if stringOnly(op) {
		return false
	}
	if math.IsNaN(v) || math.IsNaN(target) {
		return false
	}

	switch op {
	case Eq:
		return math.Abs(v-target) < numberEpsilon
	case Ne:
		return math.Abs(v-target) >= numberEpsilon
	case Lt:
		return v < target
	case Le:
		return v <= target
	case Gt:
		return v > target
	case Ge:
		return v >= target
	default:
		return false
	}
}

func compareString(v, target string, op Op) bool {
	switch op {
	case Eq:
		return v == target
	case Ne:
		return v != target
	case Lt:
		return v < target
	case Le:
		return v <= target
	case Gt:
		return v > target
	case Ge:
		return v >= target
	case Contains:
		return strings.Contains(v, target)
	case StartsWith:
		return strings.HasPrefix(v, target)
	case EndsWith:
		return strings.HasSuffix(v, target)
	default:
		return false
	}
}
