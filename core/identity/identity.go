package identity

import "strings"

// Roles that govern access to the document management endpoints.
const (
	// Assignable
	RoleIMSOwner              = "ims-owner"
	RoleIMSManager            = "ims-manager"
	RoleIMSDeveloper          = "ims-developer"
	RoleStrategyCoordinator   = "strategy-coordinator"
	RoleOperationsCoordinator = "operations-coordinator"

	// Pseudo-roles used only for endpoint access decisions. RoleIMSUser
	// marks membership in the VO, RoleProcessMember membership in the
	// process group.
	RoleIMSUser       = "ims"
	RoleProcessMember = "process-staff"
)

const entitlementSuffix = "#aai.egi.eu"

// Author is the resolved identity of the user making a change. It is
// produced at the boundary from identity-provider claims and trusted as
// given by the document store.
type Author struct {
	// CheckinUserID is the stable external user key.
	CheckinUserID string `json:"checkinUserId"`
	// FullName is the display name.
	FullName string `json:"fullName,omitempty"`
	// Email is the contact address.
	Email string `json:"email,omitempty"`
}

// Resolved reports whether the author carries a usable external key.
func (a Author) Resolved() bool {
	return a.CheckinUserID != ""
}

// ParseRoles derives the caller's roles from identity-provider
// entitlement strings.
//
// Membership in the configured VO is a hard prerequisite: without it no
// role is granted at all, regardless of other entitlements. Membership
// in the process group grants RoleProcessMember and is in turn the
// prerequisite for every named role.
func ParseRoles(cfg Config, entitlements []string) []string {
	voPrefix := "urn:mace:egi.eu:group:" + strings.ToLower(cfg.VO) + ":"

	if !contains(entitlements, voPrefix+"role=member"+entitlementSuffix) {
		return nil
	}
	roles := []string{RoleIMSUser}

	rolePrefix := voPrefix + cfg.Group + ":role="

	processMember := contains(entitlements, rolePrefix+"member"+entitlementSuffix)
	if processMember {
		roles = append(roles, RoleProcessMember)
	}

	named := map[string]string{
		rolePrefix + strings.ToLower(cfg.OwnerRole) + entitlementSuffix:                 RoleIMSOwner,
		rolePrefix + strings.ToLower(cfg.ManagerRole) + entitlementSuffix:               RoleIMSManager,
		rolePrefix + strings.ToLower(cfg.DeveloperRole) + entitlementSuffix:             RoleIMSDeveloper,
		rolePrefix + strings.ToLower(cfg.StrategyCoordinatorRole) + entitlementSuffix:   RoleStrategyCoordinator,
		rolePrefix + strings.ToLower(cfg.OperationsCoordinatorRole) + entitlementSuffix: RoleOperationsCoordinator,
	}

	for _, e := range entitlements {
		if role, ok := named[e]; ok && processMember {
			roles = append(roles, role)
		}
	}

	return roles
}

// HasRole reports whether roles contains role.
func HasRole(roles []string, role string) bool {
	return contains(roles, role)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
