package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tabsplit/parsing"
)

// ParseTextHandler creates a receipt from raw text. This is the manual
// path: pasted or hand-typed receipt text goes through exactly the same
// interpretation as OCR output — the parser never knows the difference.
// Expects POST /receipts/text with body {"text": "..."}
func (t *Transport) ParseTextHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, NewInvalidMethodError(r.Method).Error(), http.StatusMethodNotAllowed)
		return
	}

	var req ParseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, NewValidationError("body", fmt.Sprintf("failed to parse request body: %v", err)).Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, NewValidationError("text", "text is required").Error(), http.StatusBadRequest)
		return
	}

	result := parsing.Parse(req.Text)
	records, totals := itemRecords(result)

	receipt, err := t.persistenceClient.CreateReceipt(r.Context(), records, totals, nil, &req.Text)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to save receipt: %v", err), http.StatusInternalServerError)
		return
	}

	t.writeJSON(w, http.StatusCreated, ParseTextResponse{
		ReceiptID: receipt.ID,
		Items:     toItemResponses(receipt.Items),
		Totals:    toTotalsResponse(receipt.Subtotal, receipt.Tax, receipt.Total),
	})
}

// ReparseTextHandler re-runs the parser over user-edited text and replaces
// the receipt's items and totals wholesale. Old items — and any assignments
// hanging off them — are discarded; every parse rebuilds from scratch.
// Expects PUT /receipts/{receipt_id}/text with body {"text": "..."}
func (t *Transport) ReparseTextHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, NewInvalidMethodError(r.Method).Error(), http.StatusMethodNotAllowed)
		return
	}
	receiptID, ok := parseReceiptSubPath(r.URL.Path, "text")
	if !ok {
		http.Error(w, NewValidationError("path", "invalid URL path format").Error(), http.StatusBadRequest)
		return
	}

	var req ParseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, NewValidationError("body", fmt.Sprintf("failed to parse request body: %v", err)).Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, NewValidationError("text", "text is required").Error(), http.StatusBadRequest)
		return
	}

	result := parsing.Parse(req.Text)
	records, totals := itemRecords(result)

	receipt, err := t.persistenceClient.ReplaceParse(r.Context(), receiptID, records, totals, req.Text)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	t.writeJSON(w, http.StatusOK, ParseTextResponse{
		ReceiptID: receipt.ID,
		Items:     toItemResponses(receipt.Items),
		Totals:    toTotalsResponse(receipt.Subtotal, receipt.Tax, receipt.Total),
	})
}
