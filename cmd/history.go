package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"govdoc-manager/core/config"
	"govdoc-manager/core/database"
	"govdoc-manager/core/logger"
	"govdoc-manager/feature/governance"
	govmodels "govdoc-manager/feature/governance/models"
	"govdoc-manager/feature/responsibility"
	respmodels "govdoc-manager/feature/responsibility/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	historyPage int
	historySize int
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history [governance|responsibility]",
	Short: "Print the version history of a document",
	Long: `Lists every stored version of the given document kind, newest first,
with the author and change description of each version.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"governance", "responsibility"},
	Run: func(cmd *cobra.Command, args []string) {
		runHistory(cmd.Context(), args[0])
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyPage, "page", 0, "zero-based page number")
	historyCmd.Flags().IntVar(&historySize, "size", 0, "page size, 0 prints everything")
	RootCmd.AddCommand(historyCmd)
}

type historyLine struct {
	version     uint
	changedOn   time.Time
	changeBy    string
	description string
	parts       int
}

func runHistory(ctx context.Context, kind string) {
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

	var lines []historyLine
	switch kind {
	case "governance":
		lines, err = governanceHistory(ctx, db)
	case "responsibility":
		lines, err = responsibilityHistory(ctx, db)
	default:
		fmt.Printf("Unknown document kind %q\n", kind)
		os.Exit(1)
	}
	if err != nil {
		logg.Fatal("Failed to read version history", zap.String("kind", kind), zap.Error(err))
	}

	if len(lines) == 0 {
		fmt.Printf("No %s versions stored.\n", kind)
		return
	}

	fmt.Printf("\n--- %s history ---\n", kind)
	for _, line := range lines {
		fmt.Printf("v%-4d  %s  %-24s  parts: %d\n",
			line.version,
			line.changedOn.Format("2006-01-02 15:04:05"),
			line.changeBy,
			line.parts)
		if line.description != "" {
			fmt.Printf("       %s\n", line.description)
		}
	}
	fmt.Println("-----------------------------")
}

func governanceHistory(ctx context.Context, db *gorm.DB) ([]historyLine, error) {
	store := governance.NewStore(db)

	var versions []govmodels.GovernanceEntity
	var err error
	if historySize > 0 {
		versions, err = store.AllVersionsPaged(ctx, historyPage, historySize)
	} else {
		versions, err = store.AllVersions(ctx)
	}
	if err != nil {
		return nil, err
	}

	lines := make([]historyLine, 0, len(versions))
	for _, v := range versions {
		line := historyLine{
			version:   v.Version,
			changedOn: v.ChangedOn,
			changeBy:  "(unknown)",
			parts:     len(v.Annexes),
		}
		if v.ChangeBy != nil && v.ChangeBy.FullName != nil {
			line.changeBy = *v.ChangeBy.FullName
		}
		if v.ChangeDescription != nil {
			line.description = *v.ChangeDescription
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func responsibilityHistory(ctx context.Context, db *gorm.DB) ([]historyLine, error) {
	store := responsibility.NewStore(db)

	var versions []respmodels.ResponsibilityEntity
	var err error
	if historySize > 0 {
		versions, err = store.AllVersionsPaged(ctx, historyPage, historySize)
	} else {
		versions, err = store.AllVersions(ctx)
	}
	if err != nil {
		return nil, err
	}

	lines := make([]historyLine, 0, len(versions))
	for _, v := range versions {
		line := historyLine{
			version:   v.Version,
			changedOn: v.ChangedOn,
			changeBy:  "(unknown)",
			parts:     len(v.Groups),
		}
		if v.ChangeBy != nil && v.ChangeBy.FullName != nil {
			line.changeBy = *v.ChangeBy.FullName
		}
		if v.ChangeDescription != nil {
			line.description = *v.ChangeDescription
		}
		lines = append(lines, line)
	}
	return lines, nil
}
