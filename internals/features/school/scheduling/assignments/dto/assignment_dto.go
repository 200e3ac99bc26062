// file: internals/features/school/scheduling/assignments/dto/assignment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/scheduling/assignments/model"
)

/* =========================
   Request
   ========================= */

type CreateAssignmentRequest struct {
	SectionTeacherAssignmentSectionID string  `json:"section_teacher_assignment_section_id" validate:"required,uuid"`
	SectionTeacherAssignmentSubjectID *string `json:"section_teacher_assignment_subject_id,omitempty" validate:"omitempty,uuid"`
	SectionTeacherAssignmentTeacherID string  `json:"section_teacher_assignment_teacher_id" validate:"required,uuid"`

	// Jenjang section; menentukan scope lewat tabel policy.
	SectionTeacherAssignmentLevel string `json:"section_teacher_assignment_level" validate:"required,min=2,max=40"`
}

func (r *CreateAssignmentRequest) Normalize() {
	r.SectionTeacherAssignmentSectionID = strings.TrimSpace(r.SectionTeacherAssignmentSectionID)
	r.SectionTeacherAssignmentTeacherID = strings.TrimSpace(r.SectionTeacherAssignmentTeacherID)
	r.SectionTeacherAssignmentLevel = strings.ToLower(strings.TrimSpace(r.SectionTeacherAssignmentLevel))
	if r.SectionTeacherAssignmentSubjectID != nil {
		v := strings.TrimSpace(*r.SectionTeacherAssignmentSubjectID)
		if v == "" {
			r.SectionTeacherAssignmentSubjectID = nil
		} else {
			r.SectionTeacherAssignmentSubjectID = &v
		}
	}
}

func (r *CreateAssignmentRequest) SubjectID() *uuid.UUID {
	if r.SectionTeacherAssignmentSubjectID == nil {
		return nil
	}
	id, err := uuid.Parse(*r.SectionTeacherAssignmentSubjectID)
	if err != nil {
		return nil
	}
	return &id
}

/* =========================
   Response
   ========================= */

type AssignmentResponse struct {
	SectionTeacherAssignmentID        uuid.UUID         `json:"section_teacher_assignment_id"`
	SectionTeacherAssignmentSchoolID  uuid.UUID         `json:"section_teacher_assignment_school_id"`
	SectionTeacherAssignmentScope     m.AssignmentScope `json:"section_teacher_assignment_scope"`
	SectionTeacherAssignmentSectionID uuid.UUID         `json:"section_teacher_assignment_section_id"`
	SectionTeacherAssignmentSubjectID *uuid.UUID        `json:"section_teacher_assignment_subject_id,omitempty"`
	SectionTeacherAssignmentTeacherID uuid.UUID         `json:"section_teacher_assignment_teacher_id"`
	SectionTeacherAssignmentCreatedAt time.Time         `json:"section_teacher_assignment_created_at"`
}

func FromModel(a *m.SectionTeacherAssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		SectionTeacherAssignmentID:        a.SectionTeacherAssignmentID,
		SectionTeacherAssignmentSchoolID:  a.SectionTeacherAssignmentSchoolID,
		SectionTeacherAssignmentScope:     a.SectionTeacherAssignmentScope,
		SectionTeacherAssignmentSectionID: a.SectionTeacherAssignmentSectionID,
		SectionTeacherAssignmentSubjectID: a.SectionTeacherAssignmentSubjectID,
		SectionTeacherAssignmentTeacherID: a.SectionTeacherAssignmentTeacherID,
		SectionTeacherAssignmentCreatedAt: a.SectionTeacherAssignmentCreatedAt,
	}
}

func FromModels(rows []m.SectionTeacherAssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
