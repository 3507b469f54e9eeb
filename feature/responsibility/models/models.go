package models

import (
	"time"

	usermodels "govdoc-manager/feature/users/models"
)

// ResponsibilityEntity is one immutable version of the responsibility
// document. Same append-only contract as the governance document.
type ResponsibilityEntity struct {
	ID uint `gorm:"primaryKey"`

	Description *string `gorm:"size:1048576"`

	Groups []GroupEntity `gorm:"many2many:responsibility_groups_map;joinForeignKey:ResponsibilityID;joinReferences:GroupID"`

	// Change tracking
	Version           uint      `gorm:"uniqueIndex;not null"`
	ChangedOn         time.Time `gorm:"autoCreateTime"`
	ChangeDescription *string   `gorm:"size:2048"`
	ChangeByID        *uint
	ChangeBy          *usermodels.UserEntity `gorm:"foreignKey:ChangeByID"`
}

// TableName overrides the table name.
func (ResponsibilityEntity) TableName() string {
	return "responsibility"
}

// GroupEntity is one group holding responsibilities in the process.
// Group rows referenced by any version are immutable; a content change
// materializes a new row.
type GroupEntity struct {
	ID uint `gorm:"primaryKey"`

	Name        *string `gorm:"size:256"`
	Description *string `gorm:"size:10240"` // Markdown

	Interfaces []InterfaceEntity `gorm:"many2many:responsibility_group_interfaces_map;joinForeignKey:GroupID;joinReferences:InterfaceID"`
}

// TableName overrides the table name.
func (GroupEntity) TableName() string {
	return "responsibility_groups"
}

// Key returns the correlation identity used by the reconciler.
func (g GroupEntity) Key() uint {
	return g.ID
}

// InterfaceEntity is one interface of a group.
type InterfaceEntity struct {
	ID uint `gorm:"primaryKey"`

	InterfacesWith *string `gorm:"size:256"`
	Comment        *string `gorm:"size:1024"`
}

// TableName overrides the table name.
func (InterfaceEntity) TableName() string {
	return "responsibility_group_interfaces"
}

// Key returns the correlation identity used by the reconciler.
func (i InterfaceEntity) Key() uint {
	return i.ID
}
