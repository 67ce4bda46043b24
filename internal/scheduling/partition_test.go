package scheduling

import "testing"

func TestPartition_FullDay(t *testing.T) {
	slots := Partition(window(t, "09:00", "17:00"), 60)
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(slots))
	}
	if slots[0].From.String() != "09:00" || slots[0].To.String() != "10:00" {
		t.Fatalf("unexpected first slot: %s-%s", slots[0].From, slots[0].To)
	}
	if slots[7].From.String() != "16:00" || slots[7].To.String() != "17:00" {
		t.Fatalf("unexpected last slot: %s-%s", slots[7].From, slots[7].To)
	}
}

func TestPartition_RemainderDropped(t *testing.T) {
	slots := Partition(window(t, "09:00", "17:30"), 60)
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots with the 30-minute tail dropped, got %d", len(slots))
	}
	if slots[len(slots)-1].To.String() != "17:00" {
		t.Fatalf("last slot must end at 17:00, got %s", slots[len(slots)-1].To)
	}
}

func TestPartition_ExactFit(t *testing.T) {
	slots := Partition(window(t, "10:00", "10:30"), 30)
	if len(slots) != 1 {
		t.Fatalf("expected exactly one slot, got %d", len(slots))
	}
}

func TestPartition_Consecutive(t *testing.T) {
	slots := Partition(window(t, "08:00", "12:00"), 45)
	if len(slots) != 5 {
		t.Fatalf("expected 5 slots of 45 minutes in 4 hours, got %d", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].From != slots[i-1].To {
			t.Fatalf("slot %d does not start where slot %d ends: %s vs %s",
				i, i-1, slots[i].From, slots[i-1].To)
		}
	}
}

func TestPartition_WindowTooShort(t *testing.T) {
	if slots := Partition(window(t, "10:00", "10:20"), 30); len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
	if slots := Partition(window(t, "10:00", "10:00"), 15); len(slots) != 0 {
		t.Fatalf("zero-length window: expected no slots, got %d", len(slots))
	}
}

func TestPartition_NonPositiveSlot(t *testing.T) {
	w := window(t, "09:00", "17:00")
	if slots := Partition(w, 0); slots != nil {
		t.Fatalf("slot length 0: expected nil, got %v", slots)
	}
	if slots := Partition(w, -15); slots != nil {
		t.Fatalf("negative slot length: expected nil, got %v", slots)
	}
}
