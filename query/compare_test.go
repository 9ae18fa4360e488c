package query

import "testing"

func TestCompareFloat64Epsilon(t *testing.T) {
	if !compareFloat64(1.0000000001, 1.0, Eq) {
		t.Error("expected near-equal floats to compare Eq true")
	}
	if compareFloat64(1.1, 1.0, Eq) {
		t.Error("expected distinct floats to compare Eq false")
	}
	if !compareFloat64(2.0, 1.0, Gt) {
		t.Error("expected 2.0 > 1.0")
	}
}

func TestCompareFloat64NaN(t *testing.T) {
	nan := nanValue()
	if compareFloat64(nan, 1.0, Eq) {
		t.Error("NaN must never compare Eq true")
	}
	if compareFloat64(nan, 1.0, Ne) {
		t.Error("NaN must never compare Ne true either, per the no-NaN-match rule")
	}
}

func nanValue() float64 {
	var zero float64

	return zero / zero
}

func TestCompareString(t *testing.T) {
	if !compareString("hello world", "world", Contains) {
		t.Error("expected Contains match")
	}
	if !compareString("hello world", "hello", StartsWith) {
		t.Error("expected StartsWith match")
	}
	if !compareString("hello world", "world", EndsWith) {
		t.Error("expected EndsWith match")
	}
	if compareString("hello", "world", Eq) {
		t.Error("expected Eq mismatch")
	}
}

func TestCompareUint128(t *testing.T) {
	if !compareUint128(1, 5, 1, 5, Eq) {
		t.Error("expected equal 128-bit pairs to compare Eq true")
	}
	if !compareUint128(2, 0, 1, 999, Gt) {
		t.Error("expected higher hi half to dominate comparison")
	}
	if !compareUint128(1, 0, 1, 1, Lt) {
		t.Error("expected lower lo half to compare Lt true when hi halves match")
	}
}

func TestStringOnlyOpsRejectNumeric(t *testing.T) {
	if compareUint32(5, 5, Contains) {
		t.Error("Contains must never match on a numeric column")
	}
}
