package scheduling

// Partition splits a work window into consecutive fixed-length slots.
// The cursor starts at w.From and advances by slotMinutes while a full slot
// still fits; a trailing remainder shorter than one slot is dropped, never
// emitted as a short slot. A non-positive slot length yields no slots.
func Partition(w Window, slotMinutes int) []Window {
	if slotMinutes <= 0 {
		return nil
	}

	var slots []Window
	for cursor := w.From; int(w.To-cursor) >= slotMinutes; cursor = cursor.Add(slotMinutes) {
		slots = append(slots, Window{From: cursor, To: cursor.Add(slotMinutes)})
	}
	return slots
}
