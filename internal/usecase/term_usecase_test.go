package usecase

import (
	"testing"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
)

func TestAuthorizeTermCancel_OwnerCancelsBookedTerm(t *testing.T) {
	doctorID := uuid.New()
	term := &entity.Term{
		ID:       1,
		DoctorID: doctorID,
		Visit:    &entity.Visit{ID: 7, TermID: 1},
	}
	actor := entity.Actor{ID: doctorID, RoleID: entity.RoleIDDoctor}

	if err := authorizeTermCancel(actor, term); err != nil {
		t.Fatalf("owner should cancel a booked term, got %v", err)
	}
}

func TestAuthorizeTermCancel_Admin(t *testing.T) {
	term := &entity.Term{ID: 1, DoctorID: uuid.New(), Visit: &entity.Visit{ID: 7, TermID: 1}}
	actor := entity.Actor{ID: uuid.New(), RoleID: entity.RoleIDAdmin}

	if err := authorizeTermCancel(actor, term); err != nil {
		t.Fatalf("admin should cancel any term, got %v", err)
	}
}

func TestAuthorizeTermCancel_OtherDoctor(t *testing.T) {
	term := &entity.Term{ID: 1, DoctorID: uuid.New()}
	actor := entity.Actor{ID: uuid.New(), RoleID: entity.RoleIDDoctor}

	if err := authorizeTermCancel(actor, term); err != ErrNotTermOwner {
		t.Fatalf("expected ErrNotTermOwner, got %v", err)
	}
}
