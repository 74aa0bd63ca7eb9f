package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chenxi-arter/short-drama-api-sub001/config"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/ingest"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/logger"
	"github.com/chenxi-arter/short-drama-api-sub001/pkg/storage/sqlite"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest <feed.json>",
	Short: "ingest a feed file",
	Long:  `ingest a json feed file of series records and print the outcome`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		b, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal("failed to read feed file", zap.Error(err))
		}

		var req ingest.BatchRequest
		if err := json.Unmarshal(b, &req); err != nil {
			log.Fatal("failed to parse feed file", zap.Error(err))
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}

		ingestor := ingest.New(store, cfg.Ingest)
		resp, err := ingestor.IngestBatch(cmd.Context(), req)
		if err != nil {
			log.Fatal("failed to ingest feed", zap.Error(err))
		}

		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			log.Fatal("failed to render result", zap.Error(err))
		}
		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
