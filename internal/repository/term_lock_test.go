package repository

import "testing"

func TestScheduleLockKey_Deterministic(t *testing.T) {
	a := scheduleLockKey("doctor", "b2c3", "2025-01-06")
	b := scheduleLockKey("doctor", "b2c3", "2025-01-06")
	if a != b {
		t.Fatalf("same identity produced different keys: %d != %d", a, b)
	}
}

func TestScheduleLockKey_DistinctIdentities(t *testing.T) {
	base := scheduleLockKey("doctor", "b2c3", "2025-01-06")

	others := []int64{
		scheduleLockKey("office", "b2c3", "2025-01-06"),
		scheduleLockKey("doctor", "b2c4", "2025-01-06"),
		scheduleLockKey("doctor", "b2c3", "2025-01-07"),
	}
	for i, k := range others {
		if k == base {
			t.Fatalf("identity %d collides with base key %d", i, base)
		}
	}
}

func TestScheduleLockKey_PartsNotConcatenated(t *testing.T) {
	if scheduleLockKey("doctor", "ab") == scheduleLockKey("doctora", "b") {
		t.Fatalf("part boundaries must affect the key")
	}
}
