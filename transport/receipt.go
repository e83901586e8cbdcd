package transport

import (
	"net/http"

	"tabsplit/money"
	"tabsplit/parsing"
	"tabsplit/persistence"
)

// All amounts render with default (USD) precision; the parser folds every
// currency glyph to "$" and the service does not track currency.
var noCurrency *string

func toItemResponses(items []persistence.ReceiptItem) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		price := item.Price
		responses[i] = ItemResponse{
			ID:    item.ID,
			Name:  item.Name,
			Price: money.Ptr(&price, noCurrency),
			Raw:   item.Raw,
		}
	}
	return responses
}

func toTotalsResponse(subtotal, tax, total *float64) TotalsResponse {
	return TotalsResponse{
		Subtotal: money.Ptr(subtotal, noCurrency),
		Tax:      money.Ptr(tax, noCurrency),
		Total:    money.Ptr(total, noCurrency),
	}
}

// itemRecords converts a parse result for storage.
func itemRecords(result parsing.Result) ([]persistence.ItemRecord, persistence.TotalsRecord) {
	records := make([]persistence.ItemRecord, len(result.Items))
	for i, item := range result.Items {
		records[i] = persistence.ItemRecord{Name: item.Name, Price: item.Price, Raw: item.Raw}
	}
	totals := persistence.TotalsRecord{
		Subtotal: result.Totals.Subtotal,
		Tax:      result.Totals.Tax,
		Total:    result.Totals.Total,
	}
	return records, totals
}

// GetReceiptHandler returns the full receipt: items, detected totals, the
// roster, assignments, and each person's computed share.
// Expects GET /receipts/{receipt_id}
func (t *Transport) GetReceiptHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, NewInvalidMethodError(r.Method).Error(), http.StatusMethodNotAllowed)
		return
	}
	receiptID, ok := parseReceiptPath(r.URL.Path)
	if !ok {
		http.Error(w, NewValidationError("path", "invalid URL path format").Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	receipt, err := t.persistenceClient.GetReceipt(ctx, receiptID)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	people, err := t.persistenceClient.ListPeople(ctx, receiptID)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	assignments, err := t.persistenceClient.ListAssignments(ctx, receiptID)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	split := ComputeSplit(receipt.Items, assignments)

	responsePeople := make([]PersonResponse, len(people))
	for i, p := range people {
		share := money.NewAmount(split.PersonTotal[p.ID], noCurrency)
		responsePeople[i] = PersonResponse{
			ID:        p.ID,
			ReceiptID: p.ReceiptID,
			Name:      p.Name,
			Share:     &share,
		}
	}

	responseAssignments := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		responseAssignments[i] = AssignmentResponse{
			ID:       a.ID,
			PersonID: a.PersonID,
			ItemID:   a.ItemID,
			Amount:   money.NewAmount(split.AmountByAssignment[a.PersonID+":"+a.ItemID], noCurrency),
		}
	}

	t.writeJSON(w, http.StatusOK, ReceiptResponse{
		ReceiptID:   receipt.ID,
		ImageURL:    receipt.ImageURL,
		OCRText:     receipt.OCRText,
		Items:       toItemResponses(receipt.Items),
		Totals:      toTotalsResponse(receipt.Subtotal, receipt.Tax, receipt.Total),
		People:      responsePeople,
		Assignments: responseAssignments,
	})
}

// GetReceiptItemsHandler returns just the parsed items.
// Expects GET /receipts/{receipt_id}/items
func (t *Transport) GetReceiptItemsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, NewInvalidMethodError(r.Method).Error(), http.StatusMethodNotAllowed)
		return
	}
	receiptID, ok := parseReceiptSubPath(r.URL.Path, "items")
	if !ok {
		http.Error(w, NewValidationError("path", "invalid URL path format").Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	exists, err := t.persistenceClient.ReceiptExists(ctx, receiptID)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	if !exists {
		http.Error(w, "receipt not found", http.StatusNotFound)
		return
	}

	items, err := t.persistenceClient.GetReceiptItems(ctx, receiptID)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	t.writeJSON(w, http.StatusOK, map[string]any{"items": toItemResponses(items)})
}
