package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tabsplit/money"
)

// AddPersonHandler adds a participant to a receipt's roster.
// Expects POST /receipts/{receipt_id}/people with body {"name": "..."}
func (t *Transport) AddPersonHandler(w http.ResponseWriter, r *http.Request) {
	receiptID, ok := parseReceiptSubPath(r.URL.Path, "people")
	if !ok {
		http.Error(w, NewValidationError("path", "invalid URL path format").Error(), http.StatusBadRequest)
		return
	}

	var req AddPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, NewValidationError("body", fmt.Sprintf("failed to parse request body: %v", err)).Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, NewValidationError("name", "name is required").Error(), http.StatusBadRequest)
		return
	}

	person, err := t.persistenceClient.AddPerson(r.Context(), receiptID, req.Name)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	t.writeJSON(w, http.StatusCreated, AddPersonResponse{
		Message: "Person added to receipt successfully",
		Person: PersonResponse{
			ID:        person.ID,
			ReceiptID: person.ReceiptID,
			Name:      person.Name,
		},
	})
}

// ListPeopleHandler returns the roster with each person's current share.
// Expects GET /receipts/{receipt_id}/people
func (t *Transport) ListPeopleHandler(w http.ResponseWriter, r *http.Request) {
	receiptID, ok := parseReceiptSubPath(r.URL.Path, "people")
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

	people, err := t.persistenceClient.ListPeople(ctx, receiptID)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	items, err := t.persistenceClient.GetReceiptItems(ctx, receiptID)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	assignments, err := t.persistenceClient.ListAssignments(ctx, receiptID)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	split := ComputeSplit(items, assignments)
	response := ListPeopleResponse{People: make([]PersonResponse, len(people))}
	for i, p := range people {
		share := money.NewAmount(split.PersonTotal[p.ID], noCurrency)
		response.People[i] = PersonResponse{
			ID:        p.ID,
			ReceiptID: p.ReceiptID,
			Name:      p.Name,
			Share:     &share,
		}
	}

	t.writeJSON(w, http.StatusOK, response)
}

// RemovePersonHandler drops a participant; their assignments disappear and
// the split recomputes without them on the next read.
// Expects DELETE /receipts/{receipt_id}/people/{person_id}
func (t *Transport) RemovePersonHandler(w http.ResponseWriter, r *http.Request) {
	_, personID, ok := parsePersonPath(r.URL.Path)
	if !ok {
		http.Error(w, NewValidationError("path", "invalid URL path format").Error(), http.StatusBadRequest)
		return
	}

	if err := t.persistenceClient.RemovePerson(r.Context(), personID); err != nil {
		writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignItemsHandler assigns a batch of items to one person.
// Expects POST /receipts/{receipt_id}/people/{person_id}/items with body
// {"item_ids": ["..."]}
func (t *Transport) AssignItemsHandler(w http.ResponseWriter, r *http.Request) {
	personID, ok := parsePersonItemsPath(r.URL.Path)
	if !ok {
		http.Error(w, NewValidationError("path", "invalid URL path format").Error(), http.StatusBadRequest)
		return
	}

	var req AssignItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, NewValidationError("body", fmt.Sprintf("failed to parse request body: %v", err)).Error(), http.StatusBadRequest)
		return
	}
	if len(req.ItemIDs) == 0 {
		http.Error(w, NewValidationError("item_ids", "at least one item_id is required").Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	assignments := make([]AssignmentResponse, 0, len(req.ItemIDs))
	for _, itemID := range req.ItemIDs {
		assignment, err := t.persistenceClient.AssignItem(ctx, personID, itemID)
		if err != nil {
			writeStorageError(w, err)
			return
		}
		assignments = append(assignments, AssignmentResponse{
			ID:       assignment.ID,
			PersonID: assignment.PersonID,
			ItemID:   assignment.ItemID,
		})
	}

	t.writeJSON(w, http.StatusCreated, AssignItemsResponse{
		Message:     fmt.Sprintf("Successfully assigned %d item(s)", len(assignments)),
		Assignments: assignments,
	})
}

// UnassignItemHandler removes one person-item link; with AssignItemsHandler
// it forms the toggle the presentation layer drives.
// Expects DELETE /receipts/{receipt_id}/people/{person_id}/items/{item_id}
func (t *Transport) UnassignItemHandler(w http.ResponseWriter, r *http.Request) {
	personID, itemID, ok := parsePersonItemPath(r.URL.Path)
	if !ok {
		http.Error(w, NewValidationError("path", "invalid URL path format").Error(), http.StatusBadRequest)
		return
	}

	if err := t.persistenceClient.UnassignItem(r.Context(), personID, itemID); err != nil {
		writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
