package transport

import "tabsplit/money"

// ItemResponse is a parsed receipt item as returned by every endpoint.
type ItemResponse struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Price *money.Amount `json:"price"`
	Raw   string        `json:"raw,omitempty"`
}

// TotalsResponse carries the totals lines detected on the receipt.
type TotalsResponse struct {
	Subtotal *money.Amount `json:"subtotal,omitempty"`
	Tax      *money.Amount `json:"tax,omitempty"`
	Total    *money.Amount `json:"total,omitempty"`
}

// PersonResponse is one roster entry, with their computed share when the
// endpoint returns the full split.
type PersonResponse struct {
	ID        string        `json:"id"`
	ReceiptID string        `json:"receipt_id"`
	Name      string        `json:"name"`
	Share     *money.Amount `json:"share,omitempty"`
}

// AssignmentResponse is one person-item link with the amount it contributes
// to that person's share.
type AssignmentResponse struct {
	ID       string       `json:"id"`
	PersonID string       `json:"person_id"`
	ItemID   string       `json:"item_id"`
	Amount   money.Amount `json:"amount"`
}

// ReceiptResponse is the full receipt view: parse result, roster, and split.
type ReceiptResponse struct {
	ReceiptID   string               `json:"receipt_id"`
	ImageURL    *string              `json:"image_url,omitempty"`
	OCRText     *string              `json:"ocr_text,omitempty"`
	Items       []ItemResponse       `json:"items"`
	Totals      TotalsResponse       `json:"totals"`
	People      []PersonResponse     `json:"people"`
	Assignments []AssignmentResponse `json:"assignments"`
}

// ParseTextRequest is the manual path: raw receipt text pasted or edited by
// a user, parsed with exactly the same semantics as OCR output.
type ParseTextRequest struct {
	Text string `json:"text"`
}

// ParseTextResponse is returned by both text endpoints.
type ParseTextResponse struct {
	ReceiptID string         `json:"receipt_id"`
	Items     []ItemResponse `json:"items"`
	Totals    TotalsResponse `json:"totals"`
}

// UploadReceiptResponse is returned after an image upload.
type UploadReceiptResponse struct {
	ReceiptID string         `json:"receipt_id"`
	ImageURL  string         `json:"image_url"`
	Items     []ItemResponse `json:"items"`
	Totals    TotalsResponse `json:"totals"`
	OCRText   *string        `json:"ocr_text,omitempty"`
}

// AddPersonRequest adds a participant to the roster.
type AddPersonRequest struct {
	Name string `json:"name"`
}

// AddPersonResponse confirms a roster addition.
type AddPersonResponse struct {
	Message string         `json:"message"`
	Person  PersonResponse `json:"person"`
}

// ListPeopleResponse lists the roster with computed shares.
type ListPeopleResponse struct {
	People []PersonResponse `json:"people"`
}

// AssignItemsRequest assigns a batch of items to one person.
type AssignItemsRequest struct {
	ItemIDs []string `json:"item_ids"`
}

// AssignItemsResponse confirms the links that now exist.
type AssignItemsResponse struct {
	Message     string               `json:"message"`
	Assignments []AssignmentResponse `json:"assignments"`
}
