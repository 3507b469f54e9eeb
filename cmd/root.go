package cmd

import (
	"fmt"
	"os"

	"govdoc-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "govdoc-manager",
	Short: "Governance Document Manager Service",
	Long: `Governance Document Manager stores the governance and responsibility
documents of an ITSM process as immutable versioned trees, sharing
unchanged parts between consecutive versions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level so CLI users get readable,
		// ISO8601-timestamped output instead of production JSON.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
