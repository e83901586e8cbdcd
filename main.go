package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"tabsplit/persistence"
	"tabsplit/storage"
	tr "tabsplit/transport"
)

func main() {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// A .env file is optional; real deployments set the environment.
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Error("DATABASE_URL environment variable is required")
		os.Exit(1)
	}

	persistenceClient, err := persistence.NewClient(ctx, databaseURL)
	if err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer persistenceClient.Close(ctx)

	if err := persistenceClient.RunMigrations(ctx, "migrations"); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	log.Info("database initialized")

	gcsClient, err := storage.NewGCSClient(ctx)
	if err != nil {
		log.Error("failed to create GCS client", "error", err)
		os.Exit(1)
	}
	defer gcsClient.Close()

	visionClient, err := storage.NewVisionClient(ctx)
	if err != nil {
		log.Error("failed to create Vision client", "error", err)
		os.Exit(1)
	}
	defer visionClient.Close()

	httpTransport := tr.NewTransport(persistenceClient, gcsClient, visionClient, log)

	http.HandleFunc("/receipts/image", httpTransport.UploadReceiptImageHandler)
	http.HandleFunc("/receipts/text", httpTransport.ParseTextHandler)

	http.HandleFunc("/receipts/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

		// PUT /receipts/{receipt_id}/text - re-parse edited raw text
		if len(parts) == 3 && parts[2] == "text" && r.Method == http.MethodPut {
			httpTransport.ReparseTextHandler(w, r)
			return
		}

		// DELETE /receipts/{receipt_id}/people/{person_id}/items/{item_id} - unassign
		if len(parts) == 6 && parts[2] == "people" && parts[4] == "items" && r.Method == http.MethodDelete {
			httpTransport.UnassignItemHandler(w, r)
			return
		}

		// POST /receipts/{receipt_id}/people/{person_id}/items - assign items
		if len(parts) == 5 && parts[2] == "people" && parts[4] == "items" && r.Method == http.MethodPost {
			httpTransport.AssignItemsHandler(w, r)
			return
		}

		// DELETE /receipts/{receipt_id}/people/{person_id} - remove from roster
		if len(parts) == 4 && parts[2] == "people" && r.Method == http.MethodDelete {
			httpTransport.RemovePersonHandler(w, r)
			return
		}

		// /receipts/{receipt_id}/people - GET or POST
		if len(parts) == 3 && parts[2] == "people" {
			switch r.Method {
			case http.MethodPost:
				httpTransport.AddPersonHandler(w, r)
			case http.MethodGet:
				httpTransport.ListPeopleHandler(w, r)
			default:
				http.Error(w, tr.NewInvalidMethodError(r.Method).Error(), http.StatusMethodNotAllowed)
			}
			return
		}

		// GET /receipts/{receipt_id}/items
		if len(parts) == 3 && parts[2] == "items" && r.Method == http.MethodGet {
			httpTransport.GetReceiptItemsHandler(w, r)
			return
		}

		// GET /receipts/{receipt_id} - full receipt with people, items, split
		if len(parts) == 2 && r.Method == http.MethodGet {
			httpTransport.GetReceiptHandler(w, r)
			return
		}

		http.NotFound(w, r)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	log.Info("server starting", "addr", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
