package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	asgModel "schoolku_backend/internals/features/school/scheduling/assignments/model"
	"schoolku_backend/internals/features/school/scheduling/policy"
)

func TestScopeForMode(t *testing.T) {
	cases := []struct {
		mode policy.Mode
		want asgModel.AssignmentScope
	}{
		{policy.ModeFixed, asgModel.ScopeAllSubjects},
		{policy.ModeMixed, asgModel.ScopePerSubject},
		{policy.ModeFlexible, asgModel.ScopePerSubject},
	}
	for _, tc := range cases {
		if got := ScopeForMode(tc.mode); got != tc.want {
			t.Fatalf("ScopeForMode(%s) = %s, want %s", tc.mode, got, tc.want)
		}
	}
}

// Tabel policy adalah satu-satunya sumber keputusan scope —
// bukan string-matching nama jenjang yang terpisah.
func TestScopeForLevelFollowsPolicyTable(t *testing.T) {
	r, err := policy.NewResolver(map[string]string{
		policy.LevelUpperSecondary: "fixed", // override tidak lazim, tapi harus diikuti
	})
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	s := &Service{Resolver: r}

	scope, err := s.ScopeForLevel(policy.LevelEarlyYears)
	if err != nil || scope != asgModel.ScopeAllSubjects {
		t.Fatalf("early_years scope = %s (%v), want all_subjects", scope, err)
	}

	scope, err = s.ScopeForLevel(policy.LevelUpperSecondary)
	if err != nil || scope != asgModel.ScopeAllSubjects {
		t.Fatalf("override must flow through: scope = %s (%v), want all_subjects", scope, err)
	}

	if _, err := s.ScopeForLevel("homeschool"); err == nil {
		t.Fatalf("unknown level must error, not default")
	}
}

func TestValidateVariant(t *testing.T) {
	subj := uuid.New()

	if err := ValidateVariant(asgModel.ScopeAllSubjects, nil); err != nil {
		t.Fatalf("all_subjects without subject must pass: %v", err)
	}
	if err := ValidateVariant(asgModel.ScopeAllSubjects, &subj); !errors.Is(err, ErrSubjectForbidden) {
		t.Fatalf("all_subjects with subject: got %v, want ErrSubjectForbidden", err)
	}
	if err := ValidateVariant(asgModel.ScopePerSubject, &subj); err != nil {
		t.Fatalf("per_subject with subject must pass: %v", err)
	}
	if err := ValidateVariant(asgModel.ScopePerSubject, nil); !errors.Is(err, ErrSubjectRequired) {
		t.Fatalf("per_subject without subject: got %v, want ErrSubjectRequired", err)
	}
	if err := ValidateVariant(asgModel.AssignmentScope("other"), nil); err == nil {
		t.Fatalf("unknown scope must error")
	}
}
