package database

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

// InitFirebase connects to Firestore using the service-account key named by
// FIREBASE_CREDENTIALS_PATH. This console has no auth surface, so only the
// Firestore client is created.
func InitFirebase(ctx context.Context) (*firestore.Client, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, reading from environment variables")
	}

	credentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credentialsPath == "" {
		log.Fatalf("FIREBASE_CREDENTIALS_PATH environment variable not set")
	}
	opt := option.WithCredentialsFile(credentialsPath)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, err
	}
	return app.Firestore(ctx)
}
