package db

import (
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreBackend keeps one document per preference key.
type FirestoreBackend struct {
	client     *firestore.Client
	collection string
}

// OpenFirestore initializes a Firestore client from base64 encoded service
// account credentials.
func OpenFirestore(ctx context.Context, encodedCreds, collection string) (*FirestoreBackend, error) {
	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Firestore credentials: %w", err)
	}

	opt := option.WithCredentialsJSON(creds)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}

	if collection == "" {
		collection = "preferences"
	}
	return &FirestoreBackend{client: client, collection: collection}, nil
}

func (f *FirestoreBackend) Get(ctx context.Context, key string) (string, bool, error) {
	doc, err := f.client.Collection(f.collection).Doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error getting preference %s: %w", key, err)
	}

	value, ok := doc.Data()["value"].(string)
	if !ok {
		log.Warnf("Preference document %s has no string value, ignoring", key)
		return "", false, nil
	}
	return value, true, nil
}

func (f *FirestoreBackend) Set(ctx context.Context, key, value string) error {
	_, err := f.client.Collection(f.collection).Doc(key).Set(ctx, map[string]interface{}{
		"value": value,
	})
	if err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return nil
}

func (f *FirestoreBackend) Close() error {
	return f.client.Close()
}
