// Package transport exposes the receipt service over HTTP: image upload,
// raw-text parsing and re-parsing, the people roster, item assignment, and
// the computed split.
package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"tabsplit/persistence"
	"tabsplit/storage"
)

type Transport struct {
	persistenceClient *persistence.Client
	gcsClient         *storage.GCSClient
	visionClient      *storage.VisionClient
	log               *slog.Logger
}

func NewTransport(persistenceClient *persistence.Client, gcsClient *storage.GCSClient, visionClient *storage.VisionClient, log *slog.Logger) *Transport {
	return &Transport{
		persistenceClient: persistenceClient,
		gcsClient:         gcsClient,
		visionClient:      visionClient,
		log:               log,
	}
}

func (t *Transport) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Response already started, nothing left to do but log.
		t.log.Error("failed to encode response", "error", err)
	}
}
