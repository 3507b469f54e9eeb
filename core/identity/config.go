package identity

// Config holds the identity-provider settings used to derive roles from
// entitlement strings.
type Config struct {
	// VO is the virtual organisation whose membership gates all access.
	VO string `mapstructure:"vo" default:"vo.tools.egi.eu"`
	// Group is the process group within the VO.
	Group string `mapstructure:"group" default:"ims"`
	// OwnerRole is the Check-in name of the process owner role.
	OwnerRole string `mapstructure:"owner_role" default:"ims-owner"`
	// ManagerRole is the Check-in name of the process manager role.
	ManagerRole string `mapstructure:"manager_role" default:"ims-manager"`
	// DeveloperRole is the Check-in name of the developer role.
	DeveloperRole string `mapstructure:"developer_role" default:"ims-developer"`
	// StrategyCoordinatorRole is the Check-in name of the strategy coordinator role.
	StrategyCoordinatorRole string `mapstructure:"strategy_coordinator_role" default:"strategy-coordinator"`
	// OperationsCoordinatorRole is the Check-in name of the operations coordinator role.
	OperationsCoordinatorRole string `mapstructure:"operations_coordinator_role" default:"operations-coordinator"`
}
