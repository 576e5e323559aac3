package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dclhub/dcl-hub-backend/config"
	"github.com/dclhub/dcl-hub-backend/utils"
)

// @title DCL Hub API
// @version 1.0
// @description Form submissions, campaign totals and event counts for the DCL Hub site.
// @BasePath /make-server
// @securityDefinitions.apikey PublicKey
// @in header
// @name Authorization
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "dcl-hub",
	Short:         "DCL Hub form submission backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		utils.InitLogger(cfg.LogLevel, cfg.LogFormat)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("❌ Command failed")
		os.Exit(1)
	}
}
