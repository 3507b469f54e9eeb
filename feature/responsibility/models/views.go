package models

import (
	"fmt"
	"time"

	govmodels "govdoc-manager/feature/governance/models"
	usermodels "govdoc-manager/feature/users/models"
)

// Responsibility is the serialized form of one responsibility version.
type Responsibility struct {
	Kind string `json:"kind"`

	ID          uint    `json:"id,omitempty"`
	Description *string `json:"description,omitempty"` // Markdown

	Groups []Group `json:"groups,omitempty"`

	Version           uint             `json:"version,omitempty"`
	ChangedOn         *time.Time       `json:"changedOn,omitempty"`
	ChangeDescription *string          `json:"changeDescription,omitempty"`
	ChangeBy          *usermodels.User `json:"changeBy,omitempty"`

	// History holds the versions prior to this one, newest first.
	History []Responsibility `json:"history,omitempty"`
}

// Group is the serialized form of one responsibility group.
type Group struct {
	Kind string `json:"kind"`

	ID          uint    `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"` // Markdown

	Interfaces []Interface `json:"interfaces,omitempty"`
}

// Interface is the serialized form of one group interface.
type Interface struct {
	Kind string `json:"kind"`

	ID             uint    `json:"id,omitempty"`
	InterfacesWith *string `json:"interfacesWith,omitempty"`
	Comment        *string `json:"comment,omitempty"`
}

// Validate checks the submitted document for basic shape problems.
// It returns an empty string when the document is acceptable.
func (r Responsibility) Validate() string {
	for gi, group := range r.Groups {
		for ii, itf := range group.Interfaces {
			if itf.InterfacesWith == nil {
				continue
			}
			if !validCategory(*itf.InterfacesWith) {
				return fmt.Sprintf("group %d interface %d: unknown interfacesWith %q", gi, ii, *itf.InterfacesWith)
			}
		}
	}
	return ""
}

func validCategory(v string) bool {
	for _, c := range govmodels.InterfaceCategories {
		if c == v {
			return true
		}
	}
	return false
}

// NewResponsibility converts a persisted version to its serialized form.
func NewResponsibility(entity *ResponsibilityEntity) Responsibility {
	r := Responsibility{Kind: "Responsibility"}
	if entity == nil {
		return r
	}

	r.ID = entity.ID
	r.Description = entity.Description

	if entity.Groups != nil {
		r.Groups = make([]Group, 0, len(entity.Groups))
		for _, group := range entity.Groups {
			r.Groups = append(r.Groups, newGroup(group))
		}
	}

	r.Version = entity.Version
	if !entity.ChangedOn.IsZero() {
		changedOn := entity.ChangedOn
		r.ChangedOn = &changedOn
	}
	r.ChangeDescription = entity.ChangeDescription
	r.ChangeBy = usermodels.NewUser(entity.ChangeBy)

	return r
}

// NewResponsibilityFromVersions builds the serialized form from a list
// of versions sorted newest first: the head becomes the current version,
// the rest its history.
func NewResponsibilityFromVersions(versions []ResponsibilityEntity) Responsibility {
	if len(versions) == 0 {
		return Responsibility{Kind: "Responsibility"}
	}

	r := NewResponsibility(&versions[0])
	if len(versions) > 1 {
		r.History = make([]Responsibility, 0, len(versions)-1)
		for i := 1; i < len(versions); i++ {
			r.History = append(r.History, NewResponsibility(&versions[i]))
		}
	}
	return r
}

func newGroup(entity GroupEntity) Group {
	g := Group{
		Kind:        "Group",
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
	}
	if entity.Interfaces != nil {
		g.Interfaces = make([]Interface, 0, len(entity.Interfaces))
		for _, itf := range entity.Interfaces {
			g.Interfaces = append(g.Interfaces, Interface{
				Kind:           "Interface",
				ID:             itf.ID,
				InterfacesWith: itf.InterfacesWith,
				Comment:        itf.Comment,
			})
		}
	}
	return g
}

// ToEntity converts a submitted document to the entity shape consumed
// by the reconciler. Ids are carried over as correlation identities;
// the reconciler decides which of them survive into new rows.
func (r Responsibility) ToEntity() ResponsibilityEntity {
	entity := ResponsibilityEntity{
		ID:          r.ID,
		Description: r.Description,
	}

	if r.Groups != nil {
		entity.Groups = make([]GroupEntity, 0, len(r.Groups))
		for _, group := range r.Groups {
			entity.Groups = append(entity.Groups, group.toEntity())
		}
	}

	return entity
}

func (g Group) toEntity() GroupEntity {
	entity := GroupEntity{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
	}
	if g.Interfaces != nil {
		entity.Interfaces = make([]InterfaceEntity, 0, len(g.Interfaces))
		for _, itf := range g.Interfaces {
			entity.Interfaces = append(entity.Interfaces, InterfaceEntity{
				ID:             itf.ID,
				InterfacesWith: itf.InterfacesWith,
				Comment:        itf.Comment,
			})
		}
	}
	return entity
}
