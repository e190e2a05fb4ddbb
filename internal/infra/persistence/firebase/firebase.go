// Package firebase implements the record store contract on top of the
// Firebase Realtime Database.
package firebase

import (
	"context"

	"fuelflow/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// New initializes the Realtime Database client from the service account
// credentials file and the configured database URL.
func New(ctx context.Context, cfg *config.Config) (*db.Client, error) {
	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{
		DatabaseURL: cfg.Firebase.DatabaseURL,
	}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database client")
	}

	return client, nil
}
