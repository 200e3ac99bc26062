// file: internals/features/school/scheduling/resources/dto/resource_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	resModel "schoolku_backend/internals/features/school/scheduling/resources/model"
)

/* =======================================================
   OPTIONAL + NULLABLE HELPERS (untuk PATCH tri-state)
   ======================================================= */

type Optional[T any] struct {
	Present bool
	Value   T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Present = true
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = v
	return nil
}

type NullableString struct {
	Valid bool
	Value string
}

func (ns *NullableString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		ns.Valid = false
		ns.Value = ""
		return nil
	}
	ns.Valid = true
	return json.Unmarshal(b, &ns.Value)
}

type NullableInt struct {
	Valid bool
	Value int
}

func (ni *NullableInt) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		ni.Valid = false
		ni.Value = 0
		return nil
	}
	ni.Valid = true
	return json.Unmarshal(b, &ni.Value)
}

type NullableUUID struct {
	Valid bool
	Value uuid.UUID
}

func (nu *NullableUUID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		nu.Valid = false
		nu.Value = uuid.Nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	nu.Valid = true
	nu.Value = id
	return nil
}

/* =======================================================
   REQUEST DTOs (CREATE / PATCH)
   ======================================================= */

type CreateResourceRequest struct {
	SchoolResourceName              string         `json:"school_resource_name" validate:"required,min=3,max=100"`
	SchoolResourceCode              *string        `json:"school_resource_code,omitempty" validate:"omitempty,max=50"`
	SchoolResourceType              string         `json:"school_resource_type" validate:"required,oneof=room lab vehicle"`
	SchoolResourceCapacity          *int           `json:"school_resource_capacity,omitempty" validate:"omitempty,min=0"`
	SchoolResourceIsShareable       bool           `json:"school_resource_is_shareable"`
	SchoolResourceIsActive          *bool          `json:"school_resource_is_active,omitempty"`
	SchoolResourceAssignedSectionID *string        `json:"school_resource_assigned_section_id,omitempty" validate:"omitempty,uuid"`
	SchoolResourceTags              []string       `json:"school_resource_tags,omitempty"`
	SchoolResourceFeatures          datatypes.JSON `json:"school_resource_features,omitempty"`
}

func (r *CreateResourceRequest) Normalize() {
	r.SchoolResourceName = strings.TrimSpace(r.SchoolResourceName)
	if r.SchoolResourceCode != nil {
		v := strings.TrimSpace(*r.SchoolResourceCode)
		r.SchoolResourceCode = &v
	}
	r.SchoolResourceType = strings.ToLower(strings.TrimSpace(r.SchoolResourceType))
}

func (r *CreateResourceRequest) ToModel(schoolID uuid.UUID) (*resModel.SchoolResourceModel, error) {
	m := &resModel.SchoolResourceModel{
		SchoolResourceSchoolID:    schoolID,
		SchoolResourceName:        r.SchoolResourceName,
		SchoolResourceCode:        r.SchoolResourceCode,
		SchoolResourceType:        resModel.ResourceType(r.SchoolResourceType),
		SchoolResourceCapacity:    r.SchoolResourceCapacity,
		SchoolResourceIsShareable: r.SchoolResourceIsShareable,
		SchoolResourceIsActive:    true,
		SchoolResourceTags:        pq.StringArray(r.SchoolResourceTags),
		SchoolResourceFeatures:    r.SchoolResourceFeatures,
	}
	if r.SchoolResourceIsActive != nil {
		m.SchoolResourceIsActive = *r.SchoolResourceIsActive
	}
	if r.SchoolResourceAssignedSectionID != nil && strings.TrimSpace(*r.SchoolResourceAssignedSectionID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*r.SchoolResourceAssignedSectionID))
		if err != nil {
			return nil, err
		}
		m.SchoolResourceAssignedSectionID = &id
	}
	return m, nil
}

type PatchResourceRequest struct {
	SchoolResourceName              Optional[string]         `json:"school_resource_name,omitempty"`
	SchoolResourceCode              Optional[NullableString] `json:"school_resource_code,omitempty"`
	SchoolResourceCapacity          Optional[NullableInt]    `json:"school_resource_capacity,omitempty"`
	SchoolResourceIsShareable       Optional[bool]           `json:"school_resource_is_shareable,omitempty"`
	SchoolResourceIsActive          Optional[bool]           `json:"school_resource_is_active,omitempty"`
	SchoolResourceAssignedSectionID Optional[NullableUUID]   `json:"school_resource_assigned_section_id,omitempty"`
	SchoolResourceTags              Optional[[]string]       `json:"school_resource_tags,omitempty"`
	SchoolResourceFeatures          Optional[datatypes.JSON] `json:"school_resource_features,omitempty"`
}

func (p *PatchResourceRequest) Normalize() {
	if p.SchoolResourceName.Present {
		p.SchoolResourceName.Value = strings.TrimSpace(p.SchoolResourceName.Value)
	}
	if p.SchoolResourceCode.Present && p.SchoolResourceCode.Value.Valid {
		p.SchoolResourceCode.Value.Value = strings.TrimSpace(p.SchoolResourceCode.Value.Value)
	}
}

func (p *PatchResourceRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})

	if p.SchoolResourceName.Present {
		up["school_resource_name"] = p.SchoolResourceName.Value
	}
	if p.SchoolResourceCode.Present {
		if p.SchoolResourceCode.Value.Valid {
			up["school_resource_code"] = p.SchoolResourceCode.Value.Value
		} else {
			up["school_resource_code"] = nil
		}
	}
	if p.SchoolResourceCapacity.Present {
		if p.SchoolResourceCapacity.Value.Valid {
			up["school_resource_capacity"] = p.SchoolResourceCapacity.Value.Value
		} else {
			up["school_resource_capacity"] = nil
		}
	}
	if p.SchoolResourceIsShareable.Present {
		up["school_resource_is_shareable"] = p.SchoolResourceIsShareable.Value
	}
	if p.SchoolResourceIsActive.Present {
		up["school_resource_is_active"] = p.SchoolResourceIsActive.Value
	}
	if p.SchoolResourceAssignedSectionID.Present {
		if p.SchoolResourceAssignedSectionID.Value.Valid {
			up["school_resource_assigned_section_id"] = p.SchoolResourceAssignedSectionID.Value.Value
		} else {
			up["school_resource_assigned_section_id"] = nil
		}
	}
	if p.SchoolResourceTags.Present {
		up["school_resource_tags"] = pq.StringArray(p.SchoolResourceTags.Value)
	}
	if p.SchoolResourceFeatures.Present {
		up["school_resource_features"] = p.SchoolResourceFeatures.Value
	}
	return up
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type ResourceResponse struct {
	SchoolResourceID                uuid.UUID      `json:"school_resource_id"`
	SchoolResourceSchoolID          uuid.UUID      `json:"school_resource_school_id"`
	SchoolResourceName              string         `json:"school_resource_name"`
	SchoolResourceCode              *string        `json:"school_resource_code,omitempty"`
	SchoolResourceType              string         `json:"school_resource_type"`
	SchoolResourceCapacity          *int           `json:"school_resource_capacity,omitempty"`
	SchoolResourceIsShareable       bool           `json:"school_resource_is_shareable"`
	SchoolResourceIsActive          bool           `json:"school_resource_is_active"`
	SchoolResourceAssignedSectionID *uuid.UUID     `json:"school_resource_assigned_section_id,omitempty"`
	SchoolResourceTags              []string       `json:"school_resource_tags,omitempty"`
	SchoolResourceFeatures          datatypes.JSON `json:"school_resource_features,omitempty"`
	SchoolResourceCreatedAt         time.Time      `json:"school_resource_created_at"`
	SchoolResourceUpdatedAt         time.Time      `json:"school_resource_updated_at"`
}

func FromModel(m *resModel.SchoolResourceModel) ResourceResponse {
	return ResourceResponse{
		SchoolResourceID:                m.SchoolResourceID,
		SchoolResourceSchoolID:          m.SchoolResourceSchoolID,
		SchoolResourceName:              m.SchoolResourceName,
		SchoolResourceCode:              m.SchoolResourceCode,
		SchoolResourceType:              string(m.SchoolResourceType),
		SchoolResourceCapacity:          m.SchoolResourceCapacity,
		SchoolResourceIsShareable:       m.SchoolResourceIsShareable,
		SchoolResourceIsActive:          m.SchoolResourceIsActive,
		SchoolResourceAssignedSectionID: m.SchoolResourceAssignedSectionID,
		SchoolResourceTags:              []string(m.SchoolResourceTags),
		SchoolResourceFeatures:          m.SchoolResourceFeatures,
		SchoolResourceCreatedAt:         m.SchoolResourceCreatedAt,
		SchoolResourceUpdatedAt:         m.SchoolResourceUpdatedAt,
	}
}

func FromModels(ms []resModel.SchoolResourceModel) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
