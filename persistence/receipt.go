package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// Receipt is a stored receipt with its parsed items.
type Receipt struct {
	ID        string
	ImageURL  *string
	OCRText   *string
	Subtotal  *float64
	Tax       *float64
	Total     *float64
	CreatedAt time.Time
	Items     []ReceiptItem
}

// ReceiptItem is one parsed purchase line.
type ReceiptItem struct {
	ID        string
	ReceiptID string
	Name      string
	Price     float64
	Raw       string
	Position  int
}

// ItemRecord carries a parsed item into the database.
type ItemRecord struct {
	Name  string
	Price float64
	Raw   string
}

// TotalsRecord carries the detected totals into the database. Nil fields
// store as NULL.
type TotalsRecord struct {
	Subtotal *float64
	Tax      *float64
	Total    *float64
}

// CreateReceipt inserts a receipt and its items in one transaction and
// returns the stored rows.
func (c *Client) CreateReceipt(ctx context.Context, items []ItemRecord, totals TotalsRecord, imageURL, ocrText *string) (*Receipt, error) {
	receiptID := NewID()

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO receipts (id, image_url, ocr_text, subtotal, tax, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
	`, receiptID, imageURL, ocrText, totals.Subtotal, totals.Tax, totals.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to insert receipt: %w", err)
	}

	stored, err := insertItems(ctx, tx, receiptID, items)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	receipt := &Receipt{
		ID:       receiptID,
		ImageURL: imageURL,
		OCRText:  ocrText,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
		Items:    stored,
	}
	return receipt, nil
}

// ReplaceParse swaps out a receipt's items and totals for the result of a
// fresh parse. Assignments on the old items go with them (cascade); the
// caller is expected to re-assign against the new item IDs.
func (c *Client) ReplaceParse(ctx context.Context, receiptID string, items []ItemRecord, totals TotalsRecord, rawText string) (*Receipt, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `
		UPDATE receipts SET ocr_text = $1, subtotal = $2, tax = $3, total = $4
		WHERE id = $5
	`, rawText, totals.Subtotal, totals.Tax, totals.Total, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to update receipt: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, fmt.Errorf("receipt not found")
	}

	if _, err := tx.Exec(ctx, "DELETE FROM receipt_items WHERE receipt_id = $1", receiptID); err != nil {
		return nil, fmt.Errorf("failed to delete old items: %w", err)
	}

	stored, err := insertItems(ctx, tx, receiptID, items)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	receipt := &Receipt{
		ID:       receiptID,
		OCRText:  &rawText,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
		Items:    stored,
	}
	return receipt, nil
}

func insertItems(ctx context.Context, tx pgx.Tx, receiptID string, items []ItemRecord) ([]ReceiptItem, error) {
	stored := make([]ReceiptItem, 0, len(items))
	for position, item := range items {
		itemID := NewID()
		_, err := tx.Exec(ctx, `
			INSERT INTO receipt_items (id, receipt_id, name, price, raw_line, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, itemID, receiptID, item.Name, item.Price, item.Raw, position)
		if err != nil {
			return nil, fmt.Errorf("failed to insert receipt item: %w", err)
		}
		stored = append(stored, ReceiptItem{
			ID:        itemID,
			ReceiptID: receiptID,
			Name:      item.Name,
			Price:     item.Price,
			Raw:       item.Raw,
			Position:  position,
		})
	}
	return stored, nil
}

// GetReceipt loads a receipt row with its items in parse order.
func (c *Client) GetReceipt(ctx context.Context, receiptID string) (*Receipt, error) {
	var receipt Receipt
	err := c.db.QueryRow(ctx, `
		SELECT id, image_url, ocr_text, subtotal, tax, total, created_at
		FROM receipts WHERE id = $1
	`, receiptID).Scan(&receipt.ID, &receipt.ImageURL, &receipt.OCRText,
		&receipt.Subtotal, &receipt.Tax, &receipt.Total, &receipt.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, fmt.Errorf("receipt not found")
		}
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	items, err := c.GetReceiptItems(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	receipt.Items = items
	return &receipt, nil
}

// GetReceiptItems loads a receipt's items in parse order.
func (c *Client) GetReceiptItems(ctx context.Context, receiptID string) ([]ReceiptItem, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, receipt_id, name, price, raw_line, position
		FROM receipt_items
		WHERE receipt_id = $1
		ORDER BY position ASC
	`, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipt items: %w", err)
	}
	defer rows.Close()

	items := make([]ReceiptItem, 0)
	for rows.Next() {
		var item ReceiptItem
		if err := rows.Scan(&item.ID, &item.ReceiptID, &item.Name, &item.Price, &item.Raw, &item.Position); err != nil {
			return nil, fmt.Errorf("failed to scan receipt item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating receipt items: %w", err)
	}
	return items, nil
}

// ReceiptExists checks whether a receipt row is present.
func (c *Client) ReceiptExists(ctx context.Context, receiptID string) (bool, error) {
	var exists bool
	err := c.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM receipts WHERE id = $1)", receiptID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check receipt existence: %w", err)
	}
	return exists, nil
}
