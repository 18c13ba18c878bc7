package main

import (
	"context"
	"os"
	"strconv"

	"api-waste-admin/database"
	"api-waste-admin/logger"
	"api-waste-admin/router"
	"api-waste-admin/store"

	log "github.com/sirupsen/logrus"
)

func main() {
	logger.Setup()
	ctx := context.Background()

	var backend store.DocumentStore
	if os.Getenv("STORE_BACKEND") == "memory" {
		// Demo mode: seeded in-memory store, no Firebase credentials needed.
		mem := store.NewMemory()
		mem.SeedDemo()
		backend = mem
		log.Info("Using seeded in-memory store")
	} else {
		client, err := database.InitFirebase(ctx)
		if err != nil {
			log.Fatalf("Could not initialize database: %v", err)
		}
		defer client.Close()
		backend = store.NewFirestore(client)
		log.Info("Connected to Firestore")
	}

	joinConcurrency := 1
	if raw := os.Getenv("JOIN_CONCURRENCY"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			joinConcurrency = n
		}
	}

	engine := router.SetupRouter(store.WithMetrics(backend), joinConcurrency)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("Server is running on port %s", port)
	if err := engine.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
