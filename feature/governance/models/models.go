package models

import (
	"time"

	usermodels "govdoc-manager/feature/users/models"
)

// GovernanceEntity is one immutable version of the governance document.
// Versions are append-only: rows are created by the versioning service
// and never updated or deleted.
type GovernanceEntity struct {
	ID uint `gorm:"primaryKey"`

	Title       *string `gorm:"size:256"`
	Description *string `gorm:"size:1048576"`

	// Annexes are linked through a junction table so an unchanged annex
	// row can be referenced by many consecutive versions.
	Annexes []AnnexEntity `gorm:"many2many:governance_annexes_map;joinForeignKey:GovernanceID;joinReferences:AnnexID"`

	// Change tracking
	Version           uint      `gorm:"uniqueIndex;not null"`
	ChangedOn         time.Time `gorm:"autoCreateTime"`
	ChangeDescription *string   `gorm:"size:1024"`
	ChangeByID        *uint
	ChangeBy          *usermodels.UserEntity `gorm:"foreignKey:ChangeByID"`
}

// TableName overrides the table name.
func (GovernanceEntity) TableName() string {
	return "governance"
}

// AnnexEntity is one annex to the governance. Annex rows referenced by
// any version are immutable; a content change materializes a new row.
type AnnexEntity struct {
	ID uint `gorm:"primaryKey"`

	Body           *string `gorm:"size:10240"` // Markdown
	Composition    *string `gorm:"size:10240"` // Markdown
	Meeting        *string `gorm:"size:10240"` // Markdown
	DecisionVoting *string `gorm:"size:10240"` // Markdown

	Interfaces []InterfaceEntity `gorm:"many2many:governance_annex_interfaces_map;joinForeignKey:AnnexID;joinReferences:InterfaceID"`
}

// TableName overrides the table name.
func (AnnexEntity) TableName() string {
	return "governance_annexes"
}

// Key returns the correlation identity used by the reconciler.
func (a AnnexEntity) Key() uint {
	return a.ID
}

// InterfaceEntity is one interface of an annex: who the annexed body
// interfaces with, and how. Same immutability contract as AnnexEntity.
type InterfaceEntity struct {
	ID uint `gorm:"primaryKey"`

	InterfacesWith *string `gorm:"size:256"`
	Comment        *string `gorm:"size:1024"`
}

// TableName overrides the table name.
func (InterfaceEntity) TableName() string {
	return "governance_annex_interfaces"
}

// Key returns the correlation identity used by the reconciler.
func (i InterfaceEntity) Key() uint {
	return i.ID
}
