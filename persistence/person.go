package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Person is a participant splitting a receipt.
type Person struct {
	ID        string
	ReceiptID string
	Name      string
	CreatedAt time.Time
}

// Assignment links a person to an item they share.
type Assignment struct {
	ID        string
	PersonID  string
	ItemID    string
	CreatedAt time.Time
}

// AddPerson adds a participant to a receipt.
func (c *Client) AddPerson(ctx context.Context, receiptID, name string) (*Person, error) {
	personID := NewID()

	_, err := c.db.Exec(ctx, `
		INSERT INTO receipt_people (id, receipt_id, name, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
	`, personID, receiptID, name)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return nil, fmt.Errorf("receipt not found")
		}
		return nil, fmt.Errorf("failed to insert person: %w", err)
	}

	return &Person{ID: personID, ReceiptID: receiptID, Name: name}, nil
}

// ListPeople returns a receipt's participants in the order they were added.
func (c *Client) ListPeople(ctx context.Context, receiptID string) ([]Person, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, receipt_id, name, created_at
		FROM receipt_people
		WHERE receipt_id = $1
		ORDER BY created_at ASC
	`, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	people := make([]Person, 0)
	for rows.Next() {
		var p Person
		if err := rows.Scan(&p.ID, &p.ReceiptID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating people: %w", err)
	}
	return people, nil
}

// RemovePerson deletes a participant. Their item assignments go with them
// via cascade, so removed people drop out of the split immediately.
func (c *Client) RemovePerson(ctx context.Context, personID string) error {
	result, err := c.db.Exec(ctx, "DELETE FROM receipt_people WHERE id = $1", personID)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("person not found")
	}
	return nil
}

// AssignItem marks an item as shared by a person. Assigning twice is a
// no-op. The person and item must belong to the same receipt.
func (c *Client) AssignItem(ctx context.Context, personID, itemID string) (*Assignment, error) {
	var personReceiptID, itemReceiptID string
	err := c.db.QueryRow(ctx, `
		SELECT
			(SELECT receipt_id FROM receipt_people WHERE id = $1),
			(SELECT receipt_id FROM receipt_items WHERE id = $2)
	`, personID, itemID).Scan(&personReceiptID, &itemReceiptID)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, fmt.Errorf("person or item not found")
		}
		return nil, fmt.Errorf("failed to verify person and item: %w", err)
	}
	if personReceiptID != itemReceiptID {
		return nil, fmt.Errorf("person and item must belong to the same receipt")
	}

	assignmentID := NewID()
	_, err = c.db.Exec(ctx, `
		INSERT INTO receipt_person_items (id, receipt_person_id, receipt_item_id, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (receipt_person_id, receipt_item_id) DO NOTHING
	`, assignmentID, personID, itemID)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return nil, fmt.Errorf("person or item not found")
		}
		return nil, fmt.Errorf("failed to assign item: %w", err)
	}

	// Re-read so a repeated toggle returns the original assignment ID.
	var assignment Assignment
	err = c.db.QueryRow(ctx, `
		SELECT id, receipt_person_id, receipt_item_id, created_at
		FROM receipt_person_items
		WHERE receipt_person_id = $1 AND receipt_item_id = $2
	`, personID, itemID).Scan(&assignment.ID, &assignment.PersonID, &assignment.ItemID, &assignment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read assignment: %w", err)
	}
	return &assignment, nil
}

// UnassignItem removes a person-item link; the other half of the toggle.
func (c *Client) UnassignItem(ctx context.Context, personID, itemID string) error {
	result, err := c.db.Exec(ctx, `
		DELETE FROM receipt_person_items
		WHERE receipt_person_id = $1 AND receipt_item_id = $2
	`, personID, itemID)
	if err != nil {
		return fmt.Errorf("failed to unassign item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("assignment not found")
	}
	return nil
}

// ListAssignments returns every person-item link on a receipt in creation
// order, which the split uses to distribute leftover cents.
func (c *Client) ListAssignments(ctx context.Context, receiptID string) ([]Assignment, error) {
	rows, err := c.db.Query(ctx, `
		SELECT rpi.id, rpi.receipt_person_id, rpi.receipt_item_id, rpi.created_at
		FROM receipt_person_items rpi
		JOIN receipt_people rp ON rp.id = rpi.receipt_person_id
		WHERE rp.receipt_id = $1
		ORDER BY rpi.created_at ASC
	`, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]Assignment, 0)
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.PersonID, &a.ItemID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}
	return assignments, nil
}
