package cmd

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chenxi-arter/short-drama-api-sub001/config"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/ingest"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/logger"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite"
	"github.com/chenxi-arter/short-drama-api-sub001/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the ingest server",
	Long:  `start the ingest server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}

		ingestor := ingest.New(store, cfg.Ingest)
		server := server.New(log, ingestor)
		log.Error(server.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
