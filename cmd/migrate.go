package cmd

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chenxi-arter/short-drama-api-sub001/config"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/logger"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "run database migrations",
	Long:  `run database migrations and report the schema version`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		// opening the database applies any pending migrations
		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}

		s, ok := store.(*sqlite.SQLite)
		if !ok {
			return
		}

		version, dirty, err := s.GetMigrationVersion()
		if err != nil {
			log.Fatal("failed to read schema version", zap.Error(err))
		}
		log.Info("database migrated", zap.Uint("version", version), zap.Bool("dirty", dirty))
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
