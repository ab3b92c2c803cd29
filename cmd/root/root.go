package root

import (
	"log/slog"

	"github.com/rblc/parts-marketplace-backend/cmd/migrate"
	"github.com/rblc/parts-marketplace-backend/config"
	"github.com/rblc/parts-marketplace-backend/server"
	"github.com/spf13/cobra"
)

func GetRootCmd(config *config.Config, logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "parts-marketplace-backend",
		Short: "RBLC car spare parts marketplace API",
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			server.RunServer(config, logger)
			return nil
		},
	})

	rootCmd.AddCommand(migrate.GetMigrateCmd(config.DB.URL()))

	return rootCmd
}
