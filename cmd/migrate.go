package cmd

import (
	"fmt"
	"os"

	"govdoc-manager/core/config"
	"govdoc-manager/core/database"
	"govdoc-manager/core/logger"
	govmodels "govdoc-manager/feature/governance/models"
	respmodels "govdoc-manager/feature/responsibility/models"
	usermodels "govdoc-manager/feature/users/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Creates the document, junction and user tables for all managed
document kinds. Safe to run repeatedly; existing data is preserved.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			fmt.Printf("Failed to create logger: %v\n", err)
			os.Exit(1)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		err = db.AutoMigrate(
			&usermodels.UserEntity{},
			&govmodels.InterfaceEntity{},
			&govmodels.AnnexEntity{},
			&govmodels.GovernanceEntity{},
			&respmodels.InterfaceEntity{},
			&respmodels.GroupEntity{},
			&respmodels.ResponsibilityEntity{},
		)
		if err != nil {
			logg.Fatal("Migration failed", zap.Error(err))
		}

		logg.Info("Migration complete", zap.String("database", cfg.Database.Name))
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
