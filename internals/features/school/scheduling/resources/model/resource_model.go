// file: internals/features/school/scheduling/resources/model/resource_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   Enum tipe resource
   ======================================================= */

type ResourceType string

const (
	ResourceTypeRoom    ResourceType = "room"
	ResourceTypeLab     ResourceType = "lab"
	ResourceTypeVehicle ResourceType = "vehicle"
)

func (t ResourceType) Valid() bool {
	switch t {
	case ResourceTypeRoom, ResourceTypeLab, ResourceTypeVehicle:
		return true
	default:
		return false
	}
}

/* =======================================================
   SchoolResourceModel — map ke tabel school_resources
   Aset fisik bookable (ruang kelas, lab, kendaraan).
   Capacity bersifat advisory (tidak dienforce core).
   ======================================================= */

type SchoolResourceModel struct {
	// PK
	SchoolResourceID uuid.UUID `json:"school_resource_id" gorm:"type:uuid;primaryKey;column:school_resource_id;default:gen_random_uuid()"`

	// Tenant / scope
	SchoolResourceSchoolID uuid.UUID `json:"school_resource_school_id" gorm:"type:uuid;not null;column:school_resource_school_id"`

	// Identitas
	SchoolResourceName string  `json:"school_resource_name" gorm:"type:varchar(100);not null;column:school_resource_name"`
	SchoolResourceCode *string `json:"school_resource_code,omitempty" gorm:"type:varchar(50);column:school_resource_code"`

	SchoolResourceType ResourceType `json:"school_resource_type" gorm:"type:text;not null;column:school_resource_type"`

	// Advisory
	SchoolResourceCapacity *int `json:"school_resource_capacity,omitempty" gorm:"column:school_resource_capacity"`

	// Pool flags: shareable = boleh ditarik consumer Flexible/Mixed
	SchoolResourceIsShareable bool `json:"school_resource_is_shareable" gorm:"type:boolean;not null;default:false;column:school_resource_is_shareable"`
	SchoolResourceIsActive    bool `json:"school_resource_is_active" gorm:"type:boolean;not null;default:true;column:school_resource_is_active"`

	// Fixed assignment: section pemilik tetap resource ini (nullable)
	SchoolResourceAssignedSectionID *uuid.UUID `json:"school_resource_assigned_section_id,omitempty" gorm:"type:uuid;column:school_resource_assigned_section_id"`

	// Metadata bebas
	SchoolResourceTags     pq.StringArray `json:"school_resource_tags,omitempty" gorm:"type:text[];column:school_resource_tags"`
	SchoolResourceFeatures datatypes.JSON `json:"school_resource_features,omitempty" gorm:"column:school_resource_features"`

	// Timestamps
	SchoolResourceCreatedAt time.Time      `json:"school_resource_created_at" gorm:"column:school_resource_created_at;not null;autoCreateTime"`
	SchoolResourceUpdatedAt time.Time      `json:"school_resource_updated_at" gorm:"column:school_resource_updated_at;not null;autoUpdateTime"`
	SchoolResourceDeletedAt gorm.DeletedAt `json:"school_resource_deleted_at" gorm:"column:school_resource_deleted_at;index"`
}

func (SchoolResourceModel) TableName() string {
	return "school_resources"
}

// IsAssignedTo: apakah resource ini fixed milik section tsb.
func (m SchoolResourceModel) IsAssignedTo(sectionID uuid.UUID) bool {
	return m.SchoolResourceAssignedSectionID != nil && *m.SchoolResourceAssignedSectionID == sectionID
}
