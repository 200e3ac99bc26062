// file: internals/features/school/scheduling/assignments/service/assignment_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	asgModel "schoolku_backend/internals/features/school/scheduling/assignments/model"
	"schoolku_backend/internals/features/school/scheduling/policy"
)

/* =======================================================
   Assignment service
   Scope assignment sebuah section diturunkan dari tabel
   policy yang SAMA dengan room-policy (single source of
   truth) — jenjang fixed berarti satu guru semua pelajaran,
   jenjang flexible/mixed berarti guru per pelajaran.
   ======================================================= */

var (
	ErrSubjectForbidden = errors.New("subject_id must be empty for all_subjects scope")
	ErrSubjectRequired  = errors.New("subject_id is required for per_subject scope")
	ErrDuplicateAssign  = errors.New("assignment already exists for this section/subject")
	ErrAssignNotFound   = errors.New("assignment not found")
)

type Service struct {
	DB       *gorm.DB
	Resolver *policy.Resolver
}

func New(db *gorm.DB, r *policy.Resolver) *Service {
	return &Service{DB: db, Resolver: r}
}

// ScopeForLevel menurunkan variant dari mode policy jenjang.
func (s *Service) ScopeForLevel(level string) (asgModel.AssignmentScope, error) {
	mode, err := s.Resolver.ResolveMode(level)
	if err != nil {
		return "", err
	}
	return ScopeForMode(mode), nil
}

func ScopeForMode(mode policy.Mode) asgModel.AssignmentScope {
	if mode == policy.ModeFixed {
		return asgModel.ScopeAllSubjects
	}
	return asgModel.ScopePerSubject
}

// ValidateVariant mengecek konsistensi scope ↔ subject_id.
func ValidateVariant(scope asgModel.AssignmentScope, subjectID *uuid.UUID) error {
	switch scope {
	case asgModel.ScopeAllSubjects:
		if subjectID != nil {
			return ErrSubjectForbidden
		}
	case asgModel.ScopePerSubject:
		if subjectID == nil {
			return ErrSubjectRequired
		}
	default:
		return fmt.Errorf("unknown assignment scope %q", scope)
	}
	return nil
}

type AssignInput struct {
	SchoolID  uuid.UUID
	SectionID uuid.UUID
	Level     string // jenjang section (menentukan scope via policy)
	SubjectID *uuid.UUID
	TeacherID uuid.UUID
}

// Assign membuat assignment baru. Unik per (section) untuk all_subjects
// dan per (section, subject) untuk per_subject — baris alive saja.
func (s *Service) Assign(ctx context.Context, in AssignInput) (*asgModel.SectionTeacherAssignmentModel, error) {
	scope, err := s.ScopeForLevel(in.Level)
	if err != nil {
		return nil, err
	}
	if err := ValidateVariant(scope, in.SubjectID); err != nil {
		return nil, err
	}

	row := &asgModel.SectionTeacherAssignmentModel{
		SectionTeacherAssignmentSchoolID:  in.SchoolID,
		SectionTeacherAssignmentScope:     scope,
		SectionTeacherAssignmentSectionID: in.SectionID,
		SectionTeacherAssignmentSubjectID: in.SubjectID,
		SectionTeacherAssignmentTeacherID: in.TeacherID,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&asgModel.SectionTeacherAssignmentModel{}).
			Where("section_teacher_assignment_school_id = ?", in.SchoolID).
			Where("section_teacher_assignment_section_id = ?", in.SectionID)
		if scope == asgModel.ScopePerSubject {
			q = q.Where("section_teacher_assignment_subject_id = ?", *in.SubjectID)
		}
		var n int64
		if er := q.Count(&n).Error; er != nil {
			return er
		}
		if n > 0 {
			return ErrDuplicateAssign
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ListBySection mengembalikan assignment alive sebuah section.
func (s *Service) ListBySection(ctx context.Context, schoolID, sectionID uuid.UUID) ([]asgModel.SectionTeacherAssignmentModel, error) {
	var rows []asgModel.SectionTeacherAssignmentModel
	err := s.DB.WithContext(ctx).
		Where("section_teacher_assignment_school_id = ?", schoolID).
		Where("section_teacher_assignment_section_id = ?", sectionID).
		Order("section_teacher_assignment_created_at ASC").
		Find(&rows).Error
	return rows, err
}

// Unassign: soft delete.
func (s *Service) Unassign(ctx context.Context, schoolID, assignmentID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("section_teacher_assignment_id = ? AND section_teacher_assignment_school_id = ?", assignmentID, schoolID).
		Delete(&asgModel.SectionTeacherAssignmentModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAssignNotFound
	}
	return nil
}
