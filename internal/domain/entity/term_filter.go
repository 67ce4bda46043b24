package entity

// TermFilter is a domain-level filter for querying terms.
// Used by repository layer to avoid coupling with delivery DTOs.
type TermFilter struct {
	DateFrom       string // Format: YYYY-MM-DD
	DateTo         string // Format: YYYY-MM-DD
	DoctorName     string // Filter by doctor last name (ILIKE)
	Specialization string // Filter by specialization (ILIKE)
}
