package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dclhub/dcl-hub-backend/internal/auth"
	"github.com/dclhub/dcl-hub-backend/internal/backup"
	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot every stored record to the configured S3 bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		ctx := cmd.Context()
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		store, err := openStore(ctx, cfg, db)
		if err != nil {
			return err
		}
		defer kvstore.Close(store)

		dest, err := openBackups(ctx, cfg)
		if err != nil {
			return err
		}
		if dest == nil {
			return backup.ErrNoDestination
		}

		result, err := backup.NewService(store, dest, cfg.BackupPrefix).Snapshot(ctx)
		if err != nil {
			return err
		}
		log.Info().Str("key", result.Key).Int("entries", result.Entries).Msg("✅ Backup written")
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print the bcrypt hash to use as ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an admin bearer token signed with ADMIN_JWT_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := auth.NewService(cfg).IssueToken(tokenSubject)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok.AccessToken)
		log.Info().Str("subject", tokenSubject).Str("expires", tok.ExpiresAt.Format(time.RFC3339)).Msg("🔑 Token issued")
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", auth.AdminSubject, "token subject")
}
