// file: internals/features/school/scheduling/bookings/service/conflict.go
package service

import (
	"fmt"

	"github.com/google/uuid"

	bookModel "schoolku_backend/internals/features/school/scheduling/bookings/model"
	"schoolku_backend/internals/features/school/scheduling/timeslot"
)

/* =======================================================
   Conflict Detector (pure)
   Satu-satunya tempat cek overlap booking — jangan
   duplikasi query overlap per modul pemanggil.
   ======================================================= */

// ConflictError: bentrok jadwal adalah fakta bisnis (HTTP 409 di boundary),
// bukan transient failure — tidak pernah di-retry di layer ini.
// Selalu bawa id booking yang bentrok supaya UI bisa menjelaskan kenapa.
type ConflictError struct {
	ResourceID           uuid.UUID
	ConflictingBookingID uuid.UUID
	ConflictingSlot      timeslot.TimeSlot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking conflict on resource %s with booking %s (%s)",
		e.ResourceID, e.ConflictingBookingID, e.ConflictingSlot)
}

// Check menerima kandidat slot untuk sebuah resource terhadap booking
// eksistingnya. existing boleh berisi baris resource lain / cancelled /
// soft-deleted — semuanya difilter di sini.
//
// Resource tanpa booking eksisting selalu lolos.
func Check(resourceID uuid.UUID, candidate timeslot.TimeSlot, existing []bookModel.ResourceBookingModel) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	for i := range existing {
		b := &existing[i]
		if b.ResourceBookingResourceID != resourceID {
			continue
		}
		if !b.ResourceBookingStatus.Blocks() {
			continue // cancelled tidak pernah memblok
		}
		if b.ResourceBookingDeletedAt.Valid {
			continue
		}
		if timeslot.Overlaps(candidate, b.Slot()) {
			return &ConflictError{
				ResourceID:           resourceID,
				ConflictingBookingID: b.ResourceBookingID,
				ConflictingSlot:      b.Slot(),
			}
		}
	}
	return nil
}
