package entity

import "testing"

func TestSubjectLabel(t *testing.T) {
	doctor := DoctorProfile{
		Person: Person{
			PESEL: "44051401359",
			User:  User{FirstName: "Jan", LastName: "Kowalski"},
		},
	}
	patient := PatientProfile{
		Person: Person{
			PESEL: "44051401359",
			User:  User{FirstName: "Anna", LastName: "Nowak"},
		},
	}

	if got := SubjectLabel(&doctor); got != "Jan Kowalski (44051401359)" {
		t.Fatalf("doctor label = %q", got)
	}
	if got := SubjectLabel(&patient); got != "Anna Nowak (44051401359)" {
		t.Fatalf("patient label = %q", got)
	}
}
