// Package firebaseapp initializes the Firebase Admin SDK app shared by
// Firestore, Authentication and Cloud Messaging.
package firebaseapp

import (
	"context"
	"log/slog"

	"aiclub/config"
	"aiclub/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the parameters required for the Firebase app
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Enabled reports whether the configuration names a Firebase project.
func Enabled(cfg *config.Config) bool {
	return cfg.Firebase != nil && (cfg.Firebase.ProjectID != "" || cfg.Firebase.CredentialsPath != "")
}

// New creates the Firebase app. It returns nil when Firebase is not configured,
// so components that only run against Firebase must check for it.
func New(ctx context.Context, params Params) (*firebase.App, error) {
	if !Enabled(params.Config) {
		params.Logger.Info("Firebase not configured, running without it")

		return nil, nil
	}

	var opts []option.ClientOption
	if params.Config.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firebase.CredentialsPath))
	}

	var appConfig *firebase.Config
	if params.Config.Firebase.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: params.Config.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
