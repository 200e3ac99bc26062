package policy

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	resModel "schoolku_backend/internals/features/school/scheduling/resources/model"
)

func newResource(schareable, active bool, assignedTo *uuid.UUID) resModel.SchoolResourceModel {
	return resModel.SchoolResourceModel{
		SchoolResourceID:                uuid.New(),
		SchoolResourceSchoolID:          uuid.New(),
		SchoolResourceName:              "R",
		SchoolResourceType:              resModel.ResourceTypeRoom,
		SchoolResourceIsShareable:       schareable,
		SchoolResourceIsActive:          active,
		SchoolResourceAssignedSectionID: assignedTo,
	}
}

func asPolicyError(t *testing.T, err error) *PolicyError {
	t.Helper()
	var pe *PolicyError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PolicyError, got %v", err)
	}
	return pe
}

func TestNewResolverRejectsUnknownMode(t *testing.T) {
	if _, err := NewResolver(map[string]string{"primary": "roaming"}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestResolveMode(t *testing.T) {
	r, err := NewResolver(map[string]string{"primary": "mixed"})
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	cases := []struct {
		category string
		want     Mode
	}{
		{LevelEarlyYears, ModeFixed},
		{"primary", ModeMixed}, // override menang atas default
		{"  Lower_Secondary ", ModeMixed},
		{LevelUpperSecondary, ModeFlexible},
	}
	for _, tc := range cases {
		got, err := r.ResolveMode(tc.category)
		if err != nil {
			t.Fatalf("ResolveMode(%q): %v", tc.category, err)
		}
		if got != tc.want {
			t.Fatalf("ResolveMode(%q) = %s, want %s", tc.category, got, tc.want)
		}
	}

	_, err = r.ResolveMode("kindergarten-plus")
	pe := asPolicyError(t, err)
	if pe.Code != PolicyCodeUnknownCategory {
		t.Fatalf("code = %s, want %s", pe.Code, PolicyCodeUnknownCategory)
	}
}

func TestRequiresBooking(t *testing.T) {
	if RequiresBooking(ModeFixed) {
		t.Fatalf("fixed mode must not require booking")
	}
	if !RequiresBooking(ModeFlexible) || !RequiresBooking(ModeMixed) {
		t.Fatalf("flexible and mixed modes must require booking")
	}
}

func TestEligibleResourcesFixed(t *testing.T) {
	r, _ := NewResolver(nil)
	section := uuid.New()

	own := newResource(false, true, &section)
	other := newResource(true, true, nil)
	all := []resModel.SchoolResourceModel{own, other}

	consumer := Consumer{SectionID: section, Level: LevelEarlyYears}
	got, err := r.EligibleResources(consumer, ModeFixed, all)
	if err != nil {
		t.Fatalf("EligibleResources: %v", err)
	}
	if len(got) != 1 || got[0].SchoolResourceID != own.SchoolResourceID {
		t.Fatalf("fixed mode must return exactly the assigned resource")
	}

	// Tanpa assignment → error konfigurasi, BUKAN fallback ke pool.
	orphan := Consumer{SectionID: uuid.New(), Level: LevelEarlyYears}
	_, err = r.EligibleResources(orphan, ModeFixed, all)
	pe := asPolicyError(t, err)
	if pe.Code != PolicyCodeUnassignedFixedResource {
		t.Fatalf("code = %s, want %s", pe.Code, PolicyCodeUnassignedFixedResource)
	}
}

func TestEligibleResourcesFlexibleAndMixed(t *testing.T) {
	r, _ := NewResolver(nil)
	section := uuid.New()

	own := newResource(false, true, &section)
	shared := newResource(true, true, nil)
	inactive := newResource(true, false, nil)
	private := newResource(false, true, nil)
	all := []resModel.SchoolResourceModel{own, shared, inactive, private}

	consumer := Consumer{SectionID: section, Level: LevelUpperSecondary}

	flex, err := r.EligibleResources(consumer, ModeFlexible, all)
	if err != nil {
		t.Fatalf("flexible: %v", err)
	}
	if len(flex) != 1 || flex[0].SchoolResourceID != shared.SchoolResourceID {
		t.Fatalf("flexible must return only active shareable resources, got %d", len(flex))
	}

	mixed, err := r.EligibleResources(consumer, ModeMixed, all)
	if err != nil {
		t.Fatalf("mixed: %v", err)
	}
	if len(mixed) != 2 {
		t.Fatalf("mixed must union assigned + shareable, got %d", len(mixed))
	}
}

func TestAllowsResource(t *testing.T) {
	r, _ := NewResolver(nil)
	section := uuid.New()

	own := newResource(false, true, &section)
	shared := newResource(true, true, nil)
	private := newResource(false, true, nil)

	fixedConsumer := Consumer{SectionID: section, Level: LevelEarlyYears, AssignedResourceID: &own.SchoolResourceID}

	// Fixed: hanya resource tetapnya, bahkan saat resource lain kosong total.
	if err := r.AllowsResource(fixedConsumer, ModeFixed, own); err != nil {
		t.Fatalf("fixed consumer must be allowed on its own resource: %v", err)
	}
	err := r.AllowsResource(fixedConsumer, ModeFixed, shared)
	if pe := asPolicyError(t, err); pe.Code != PolicyCodeResourceNotEligible {
		t.Fatalf("code = %s, want %s", pe.Code, PolicyCodeResourceNotEligible)
	}

	// Fixed tanpa assignment → unassigned_fixed_resource.
	orphan := Consumer{SectionID: uuid.New(), Level: LevelEarlyYears}
	err = r.AllowsResource(orphan, ModeFixed, shared)
	if pe := asPolicyError(t, err); pe.Code != PolicyCodeUnassignedFixedResource {
		t.Fatalf("code = %s, want %s", pe.Code, PolicyCodeUnassignedFixedResource)
	}

	// Flexible: pool saja.
	flexConsumer := Consumer{SectionID: uuid.New(), Level: LevelUpperSecondary}
	if err := r.AllowsResource(flexConsumer, ModeFlexible, shared); err != nil {
		t.Fatalf("flexible consumer must be allowed on shareable resource: %v", err)
	}
	err = r.AllowsResource(flexConsumer, ModeFlexible, private)
	if pe := asPolicyError(t, err); pe.Code != PolicyCodeResourceNotEligible {
		t.Fatalf("code = %s, want %s", pe.Code, PolicyCodeResourceNotEligible)
	}

	// Mixed: resource tetap ATAU pool.
	mixedConsumer := Consumer{SectionID: section, Level: LevelLowerSecondary, AssignedResourceID: &own.SchoolResourceID}
	if err := r.AllowsResource(mixedConsumer, ModeMixed, own); err != nil {
		t.Fatalf("mixed consumer must be allowed on its own resource: %v", err)
	}
	if err := r.AllowsResource(mixedConsumer, ModeMixed, shared); err != nil {
		t.Fatalf("mixed consumer must be allowed on shareable resource: %v", err)
	}
	err = r.AllowsResource(mixedConsumer, ModeMixed, private)
	if pe := asPolicyError(t, err); pe.Code != PolicyCodeResourceNotEligible {
		t.Fatalf("code = %s, want %s", pe.Code, PolicyCodeResourceNotEligible)
	}
}
