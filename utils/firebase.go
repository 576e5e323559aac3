package utils

import (
	"context"
	"fmt"
	"os"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/dclhub/dcl-hub-backend/config"
)

var (
	FirebaseApp      *firebase.App
	FCMClient        *messaging.Client
	RealtimeDBClient *db.Client

	firebaseOnce    sync.Once
	firebaseInitErr error
)

// InitFirebase initializes the Firebase Admin SDK once. The Realtime Database
// client is created when FIREBASE_DATABASE_URL is set; FCM is optional and its
// failure only disables staff push notifications.
func InitFirebase(ctx context.Context, cfg *config.Config) error {
	firebaseOnce.Do(func() {
		log.Info().Msg("🔄 Initializing Firebase...")

		var opts []option.ClientOption
		if cfg.FirebaseCredentialsPath != "" {
			if _, err := os.Stat(cfg.FirebaseCredentialsPath); err != nil {
				firebaseInitErr = fmt.Errorf("firebase credentials file not found: %s", cfg.FirebaseCredentialsPath)
				log.Warn().Str("path", cfg.FirebaseCredentialsPath).Msg("⚠️ Firebase credentials file not found")
				return
			}
			opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsPath))
		}

		app, err := firebase.NewApp(ctx, &firebase.Config{
			ProjectID:   cfg.FirebaseProjectID,
			DatabaseURL: cfg.FirebaseDatabaseURL,
		}, opts...)
		if err != nil {
			firebaseInitErr = fmt.Errorf("firebase app initialization failed: %w", err)
			log.Error().Err(err).Msg("❌ Error initializing Firebase app")
			return
		}
		FirebaseApp = app
		log.Info().Str("project", cfg.FirebaseProjectID).Msg("✅ Firebase app initialized")

		if cfg.FirebaseDatabaseURL != "" {
			client, err := app.Database(ctx)
			if err != nil {
				firebaseInitErr = fmt.Errorf("realtime database client: %w", err)
				log.Error().Err(err).Msg("❌ Error getting Realtime Database client")
				return
			}
			RealtimeDBClient = client
			log.Info().Str("url", cfg.FirebaseDatabaseURL).Msg("✅ Realtime Database client ready")
		}

		fcm, err := app.Messaging(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("ℹ️ Continuing without FCM (staff push notifications disabled)")
			return
		}
		FCMClient = fcm
		log.Info().Msg("✅ FCM client initialized")
	})
	return firebaseInitErr
}

// IsFCMEnabled checks if FCM is available
func IsFCMEnabled() bool {
	return FCMClient != nil
}
