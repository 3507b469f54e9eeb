package responsibility

import (
	"govdoc-manager/core/versioning"
	"govdoc-manager/feature/responsibility/models"
)

// binding plugs the responsibility group/interface types into the
// generic reconciliation engine.
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

func (binding) Leaves(b models.GroupEntity) []models.InterfaceEntity {
	return b.Interfaces
}

func (binding) BranchEqual(s, p models.GroupEntity) bool {
	return versioning.EqualStrings(s.Name, p.Name) &&
		versioning.EqualStrings(s.Description, p.Description)
}

func (binding) NewBranch(s models.GroupEntity, leaves []models.InterfaceEntity) models.GroupEntity {
	return models.GroupEntity{
		Name:        s.Name,
		Description: s.Description,
		Interfaces:  leaves,
	}
}
