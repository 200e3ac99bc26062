// file: internals/features/school/scheduling/policy/policy.go
package policy

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	resModel "schoolku_backend/internals/features/school/scheduling/resources/model"
)

/* =======================================================
   Resource Policy Resolver
   Memetakan kategori consumer (jenjang pendidikan sebuah
   section) ke mode akuisisi resource:
     - fixed    : punya 1 resource tetap, tidak perlu booking
     - flexible : wajib menarik dari pool shareable
     - mixed    : boleh pakai resource tetap ATAU pool
   Tabel kategori→mode adalah KONFIGURASI (bukan hard-code),
   dan jadi single source of truth — dipakai juga oleh
   penentuan scope teacher-assignment.
   ======================================================= */

type Mode string

const (
	ModeFixed    Mode = "fixed"
	ModeFlexible Mode = "flexible"
	ModeMixed    Mode = "mixed"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeFixed, ModeFlexible, ModeMixed:
		return true
	default:
		return false
	}
}

// Kategori default (jenjang). Tabelnya boleh dioverride via config.
const (
	LevelEarlyYears     = "early_years"
	LevelPrimary        = "primary"
	LevelLowerSecondary = "lower_secondary"
	LevelUpperSecondary = "upper_secondary"
)

// DefaultTable: jenjang termuda fixed (kelasnya tidak berpindah ruang),
// jenjang menengah mixed, jenjang atas flexible.
func DefaultTable() map[string]Mode {
	return map[string]Mode{
		LevelEarlyYears:     ModeFixed,
		LevelPrimary:        ModeFixed,
		LevelLowerSecondary: ModeMixed,
		LevelUpperSecondary: ModeFlexible,
	}
}

/* =======================================================
   Typed errors
   ======================================================= */

const (
	PolicyCodeUnknownCategory         = "unknown_category"
	PolicyCodeUnassignedFixedResource = "unassigned_fixed_resource"
	PolicyCodeResourceNotEligible     = "resource_not_eligible"
)

// PolicyError membawa kode terstruktur supaya UI bisa menjelaskan
// rule mana yang menolak, bukan sekadar boolean gagal.
type PolicyError struct {
	Code     string
	Category string
	Detail   string
}

func (e *PolicyError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("policy error (%s): %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("policy error (%s)", e.Code)
}

/* =======================================================
   Consumer — proyeksi section yang relevan untuk policy
   ======================================================= */

type Consumer struct {
	SectionID          uuid.UUID
	Level              string     // kategori (jenjang)
	AssignedResourceID *uuid.UUID // resource tetap milik section (nullable)
}

/* =======================================================
   Resolver
   ======================================================= */

type Resolver struct {
	table map[string]Mode
}

// NewResolver: overrides (dari config) dilapis di atas DefaultTable.
// Mode tak dikenal ditolak saat load, bukan saat dipakai.
func NewResolver(overrides map[string]string) (*Resolver, error) {
	table := DefaultTable()
	for cat, raw := range overrides {
		m := Mode(strings.ToLower(strings.TrimSpace(raw)))
		if !m.Valid() {
			return nil, fmt.Errorf("policy table: unknown mode %q for category %q", raw, cat)
		}
		table[strings.ToLower(strings.TrimSpace(cat))] = m
	}
	return &Resolver{table: table}, nil
}

func (r *Resolver) ResolveMode(category string) (Mode, error) {
	m, ok := r.table[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return "", &PolicyError{
			Code:     PolicyCodeUnknownCategory,
			Category: category,
			Detail:   fmt.Sprintf("no resource policy configured for category %q", category),
		}
	}
	return m, nil
}

// RequiresBooking: hanya Fixed yang tidak perlu booking.
func RequiresBooking(m Mode) bool {
	return m != ModeFixed
}

// EligibleResources mengembalikan resource yang boleh diminta consumer.
//   - Fixed   : tepat resource tetapnya; kalau tidak punya → error konfigurasi
//     (TIDAK di-fallback diam-diam ke pool).
//   - Flexible: semua resource aktif yang shareable.
//   - Mixed   : resource tetap ∪ pool shareable.
func (r *Resolver) EligibleResources(consumer Consumer, mode Mode, all []resModel.SchoolResourceModel) ([]resModel.SchoolResourceModel, error) {
	switch mode {
	case ModeFixed:
		assigned := pickAssigned(consumer, all)
		if len(assigned) == 0 {
			return nil, &PolicyError{
				Code:     PolicyCodeUnassignedFixedResource,
				Category: consumer.Level,
				Detail:   fmt.Sprintf("section %s has fixed mode but no assigned resource", consumer.SectionID),
			}
		}
		return assigned, nil

	case ModeFlexible:
		return pickShareable(all), nil

	case ModeMixed:
		out := pickAssigned(consumer, all)
		seen := make(map[uuid.UUID]bool, len(out))
		for _, m := range out {
			seen[m.SchoolResourceID] = true
		}
		for _, m := range pickShareable(all) {
			if !seen[m.SchoolResourceID] {
				out = append(out, m)
			}
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

// AllowsResource: apakah consumer boleh booking resource tsb di mode ini.
// Dipakai Conflict Detector sebelum cek overlap.
func (r *Resolver) AllowsResource(consumer Consumer, mode Mode, res resModel.SchoolResourceModel) error {
	assignedToConsumer := res.IsAssignedTo(consumer.SectionID) ||
		(consumer.AssignedResourceID != nil && *consumer.AssignedResourceID == res.SchoolResourceID)

	notEligible := &PolicyError{
		Code:     PolicyCodeResourceNotEligible,
		Category: consumer.Level,
		Detail:   fmt.Sprintf("resource %s is not eligible for section %s (mode %s)", res.SchoolResourceID, consumer.SectionID, mode),
	}

	switch mode {
	case ModeFixed:
		if consumer.AssignedResourceID == nil && !assignedToConsumer {
			return &PolicyError{
				Code:     PolicyCodeUnassignedFixedResource,
				Category: consumer.Level,
				Detail:   fmt.Sprintf("section %s has fixed mode but no assigned resource", consumer.SectionID),
			}
		}
		if assignedToConsumer {
			return nil
		}
		return notEligible

	case ModeFlexible:
		if res.SchoolResourceIsActive && res.SchoolResourceIsShareable {
			return nil
		}
		return notEligible

	case ModeMixed:
		if assignedToConsumer || (res.SchoolResourceIsActive && res.SchoolResourceIsShareable) {
			return nil
		}
		return notEligible

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

func pickAssigned(consumer Consumer, all []resModel.SchoolResourceModel) []resModel.SchoolResourceModel {
	var out []resModel.SchoolResourceModel
	for _, m := range all {
		if consumer.AssignedResourceID != nil && m.SchoolResourceID == *consumer.AssignedResourceID {
			out = append(out, m)
			continue
		}
		if m.IsAssignedTo(consumer.SectionID) {
			out = append(out, m)
		}
	}
	return out
}

func pickShareable(all []resModel.SchoolResourceModel) []resModel.SchoolResourceModel {
	var out []resModel.SchoolResourceModel
	for _, m := range all {
		if m.SchoolResourceIsActive && m.SchoolResourceIsShareable {
			out = append(out, m)
		}
	}
	return out
}
