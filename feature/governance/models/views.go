package models

import (
	"fmt"
	"time"

	usermodels "govdoc-manager/feature/users/models"
)

// InterfaceCategories are the accepted values of Interface.InterfacesWith.
// Besides the generic audiences, the tags name the ITSM processes an
// annexed body can interface with.
var InterfaceCategories = []string{
	"Internal", "External", "Customer",
	"BA", "BDS", "CAPM", "CHM", "COM", "CONFM", "CSI", "CRM", "CPM",
	"FA", "HR", "ISM", "ISRM", "PM", "PKM", "PPM", "RDM", "RM",
	"SACM", "SLM", "SPM", "SRM",
}

// Governance is the serialized form of one governance version, as
// accepted from and returned to clients.
type Governance struct {
	Kind string `json:"kind"`

	ID          uint    `json:"id,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"` // Markdown

	Annexes []Annex `json:"annexes,omitempty"`

	Version           uint             `json:"version,omitempty"`
	ChangedOn         *time.Time       `json:"changedOn,omitempty"`
	ChangeDescription *string          `json:"changeDescription,omitempty"`
	ChangeBy          *usermodels.User `json:"changeBy,omitempty"`

	// History holds the versions prior to this one, newest first.
	History []Governance `json:"history,omitempty"`
}

// Annex is the serialized form of one governance annex.
type Annex struct {
	Kind string `json:"kind"`

	ID             uint    `json:"id,omitempty"`
	Body           *string `json:"body,omitempty"`           // Markdown
	Composition    *string `json:"composition,omitempty"`    // Markdown
	Meeting        *string `json:"meeting,omitempty"`        // Markdown
	DecisionVoting *string `json:"decisionVoting,omitempty"` // Markdown

	Interfaces []Interface `json:"interfaces,omitempty"`
}

// Interface is the serialized form of one annex interface.
type Interface struct {
	Kind string `json:"kind"`

	ID             uint    `json:"id,omitempty"`
	InterfacesWith *string `json:"interfacesWith,omitempty"`
	Comment        *string `json:"comment,omitempty"`
}

// Validate checks the submitted document for basic shape problems.
// It returns an empty string when the document is acceptable.
func (g Governance) Validate() string {
	for ai, annex := range g.Annexes {
		for ii, itf := range annex.Interfaces {
			if itf.InterfacesWith == nil {
				continue
			}
			if !validCategory(*itf.InterfacesWith) {
				return fmt.Sprintf("annex %d interface %d: unknown interfacesWith %q", ai, ii, *itf.InterfacesWith)
			}
		}
	}
	return ""
}

func validCategory(v string) bool {
	for _, c := range InterfaceCategories {
		if c == v {
			return true
		}
	}
	return false
}

// NewGovernance converts a persisted version to its serialized form.
func NewGovernance(entity *GovernanceEntity) Governance {
	g := Governance{Kind: "Governance"}
	if entity == nil {
		return g
	}

	g.ID = entity.ID
	g.Title = entity.Title
	g.Description = entity.Description

	if entity.Annexes != nil {
		g.Annexes = make([]Annex, 0, len(entity.Annexes))
		for _, annex := range entity.Annexes {
			g.Annexes = append(g.Annexes, newAnnex(annex))
		}
	}

	g.Version = entity.Version
	if !entity.ChangedOn.IsZero() {
		changedOn := entity.ChangedOn
		g.ChangedOn = &changedOn
	}
	g.ChangeDescription = entity.ChangeDescription
	g.ChangeBy = usermodels.NewUser(entity.ChangeBy)

	return g
}

// NewGovernanceFromVersions builds the serialized form from a list of
// versions sorted newest first: the head becomes the current version,
// the rest its history.
func NewGovernanceFromVersions(versions []GovernanceEntity) Governance {
	if len(versions) == 0 {
		return Governance{Kind: "Governance"}
	}

	g := NewGovernance(&versions[0])
	if len(versions) > 1 {
		g.History = make([]Governance, 0, len(versions)-1)
		for i := 1; i < len(versions); i++ {
			g.History = append(g.History, NewGovernance(&versions[i]))
		}
	}
	return g
}

func newAnnex(entity AnnexEntity) Annex {
	a := Annex{
		Kind:           "Annex",
		ID:             entity.ID,
		Body:           entity.Body,
		Composition:    entity.Composition,
		Meeting:        entity.Meeting,
		DecisionVoting: entity.DecisionVoting,
	}
	if entity.Interfaces != nil {
		a.Interfaces = make([]Interface, 0, len(entity.Interfaces))
		for _, itf := range entity.Interfaces {
			a.Interfaces = append(a.Interfaces, Interface{
				Kind:           "Interface",
				ID:             itf.ID,
				InterfacesWith: itf.InterfacesWith,
				Comment:        itf.Comment,
			})
		}
	}
	return a
}

// ToEntity converts a submitted document to the entity shape consumed
// by the reconciler. Ids are carried over as correlation identities;
// the reconciler decides which of them survive into new rows.
func (g Governance) ToEntity() GovernanceEntity {
	entity := GovernanceEntity{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
	}

	if g.Annexes != nil {
		entity.Annexes = make([]AnnexEntity, 0, len(g.Annexes))
		for _, annex := range g.Annexes {
			entity.Annexes = append(entity.Annexes, annex.toEntity())
		}
	}

	return entity
}

func (a Annex) toEntity() AnnexEntity {
	entity := AnnexEntity{
		ID:             a.ID,
		Body:           a.Body,
		Composition:    a.Composition,
		Meeting:        a.Meeting,
		DecisionVoting: a.DecisionVoting,
	}
	if a.Interfaces != nil {
		entity.Interfaces = make([]InterfaceEntity, 0, len(a.Interfaces))
		for _, itf := range a.Interfaces {
			entity.Interfaces = append(entity.Interfaces, InterfaceEntity{
				ID:             itf.ID,
				InterfacesWith: itf.InterfacesWith,
				Comment:        itf.Comment,
			})
		}
	}
	return entity
}
