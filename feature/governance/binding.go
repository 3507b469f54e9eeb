package governance

import (
	"govdoc-manager/core/versioning"
	"govdoc-manager/feature/governance/models"
)

// binding plugs the governance annex/interface types into the generic
// reconciliation engine.
type binding struct{}

func (binding) LeafEqual(s, p models.InterfaceEntity) bool {
	return versioning.EqualStrings(s.InterfacesWith, p.InterfacesWith) &&
		versioning.EqualStrings(s.Comment, p.Comment)
}

func (binding) NewLeaf(s models.InterfaceEntity) models.InterfaceEntity {
	return models.InterfaceEntity{
		InterfacesWith: s.InterfacesWith,
		Comment:        s.Comment,
	}
}

func (binding) Leaves(b models.AnnexEntity) []models.InterfaceEntity {
	return b.Interfaces
}

func (binding) BranchEqual(s, p models.AnnexEntity) bool {
	return versioning.EqualStrings(s.Body, p.Body) &&
		versioning.EqualStrings(s.Composition, p.Composition) &&
		versioning.EqualStrings(s.Meeting, p.Meeting) &&
		versioning.EqualStrings(s.DecisionVoting, p.DecisionVoting)
}

func (binding) NewBranch(s models.AnnexEntity, leaves []models.InterfaceEntity) models.AnnexEntity {
	return models.AnnexEntity{
		Body:           s.Body,
		Composition:    s.Composition,
		Meeting:        s.Meeting,
		DecisionVoting: s.DecisionVoting,
		Interfaces:     leaves,
	}
}
