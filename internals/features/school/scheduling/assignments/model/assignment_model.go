// file: internals/features/school/scheduling/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Enum scope assignment — tagged variant, BUKAN
   string-matching nama jenjang:
     all_subjects : satu guru pegang semua pelajaran
                    (subject_id wajib NULL)
     per_subject  : satu guru per pelajaran per section
                    (subject_id wajib diisi)
   ======================================================= */

type AssignmentScope string

const (
	ScopeAllSubjects AssignmentScope = "all_subjects"
	ScopePerSubject  AssignmentScope = "per_subject"
)

func (s AssignmentScope) Valid() bool {
	switch s {
	case ScopeAllSubjects, ScopePerSubject:
		return true
	default:
		return false
	}
}

/* =======================================================
   SectionTeacherAssignmentModel — map ke tabel
   section_teacher_assignments
   ======================================================= */

type SectionTeacherAssignmentModel struct {
	// PK
	SectionTeacherAssignmentID uuid.UUID `json:"section_teacher_assignment_id" gorm:"type:uuid;primaryKey;column:section_teacher_assignment_id;default:gen_random_uuid()"`

	// Tenant / scope
	SectionTeacherAssignmentSchoolID uuid.UUID `json:"section_teacher_assignment_school_id" gorm:"type:uuid;not null;column:section_teacher_assignment_school_id"`

	// Variant
	SectionTeacherAssignmentScope AssignmentScope `json:"section_teacher_assignment_scope" gorm:"type:text;not null;column:section_teacher_assignment_scope"`

	SectionTeacherAssignmentSectionID uuid.UUID  `json:"section_teacher_assignment_section_id" gorm:"type:uuid;not null;index;column:section_teacher_assignment_section_id"`
	SectionTeacherAssignmentSubjectID *uuid.UUID `json:"section_teacher_assignment_subject_id,omitempty" gorm:"type:uuid;column:section_teacher_assignment_subject_id"`
	SectionTeacherAssignmentTeacherID uuid.UUID  `json:"section_teacher_assignment_teacher_id" gorm:"type:uuid;not null;column:section_teacher_assignment_teacher_id"`

	// Timestamps
	SectionTeacherAssignmentCreatedAt time.Time      `json:"section_teacher_assignment_created_at" gorm:"column:section_teacher_assignment_created_at;not null;autoCreateTime"`
	SectionTeacherAssignmentUpdatedAt time.Time      `json:"section_teacher_assignment_updated_at" gorm:"column:section_teacher_assignment_updated_at;not null;autoUpdateTime"`
	SectionTeacherAssignmentDeletedAt gorm.DeletedAt `json:"section_teacher_assignment_deleted_at" gorm:"column:section_teacher_assignment_deleted_at;index"`
}

func (SectionTeacherAssignmentModel) TableName() string {
	return "section_teacher_assignments"
}
