// utils/firebase.go
package utils

import (
	"context"
	"fmt"
	"sync"

	"quickfix/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var (
	firestoreOnce   sync.Once
	firestoreClient *firestore.Client
	firestoreErr    error
)

// GetFirestoreClient returns the process-wide Firestore handle, initializing
// the Firebase app on first use. Later calls return the same client (or the
// same initialization error) without touching the SDK again.
func GetFirestoreClient() (*firestore.Client, error) {
	firestoreOnce.Do(func() {
		firestoreClient, firestoreErr = newFirestoreClient(context.Background())
	})
	return firestoreClient, firestoreErr
}

func newFirestoreClient(ctx context.Context) (*firestore.Client, error) {
	var opts []option.ClientOption
	if path := config.AppConfig.FirebaseCredentialsFile; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	var conf *firebase.Config
	if id := config.AppConfig.FirebaseProjectID; id != "" {
		conf = &firebase.Config{ProjectID: id}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Firestore client: %w", err)
	}
	return client, nil
}
