package transport

import "strings"

// pathParts splits a URL path on "/" with outer slashes trimmed.
func pathParts(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}

// parseReceiptPath matches /receipts/{receipt_id}.
func parseReceiptPath(path string) (receiptID string, ok bool) {
	parts := pathParts(path)
	if len(parts) != 2 || parts[0] != "receipts" {
		return "", false
	}
	return parts[1], true
}

// parseReceiptSubPath matches /receipts/{receipt_id}/{sub} for a fixed
// trailing segment like "items", "people", or "text".
func parseReceiptSubPath(path, sub string) (receiptID string, ok bool) {
	parts := pathParts(path)
	if len(parts) != 3 || parts[0] != "receipts" || parts[2] != sub {
		return "", false
	}
	return parts[1], true
}

// parsePersonPath matches /receipts/{receipt_id}/people/{person_id}.
func parsePersonPath(path string) (receiptID, personID string, ok bool) {
	parts := pathParts(path)
	if len(parts) != 4 || parts[0] != "receipts" || parts[2] != "people" {
		return "", "", false
	}
	return parts[1], parts[3], true
}

// parsePersonItemsPath matches /receipts/{receipt_id}/people/{person_id}/items.
func parsePersonItemsPath(path string) (personID string, ok bool) {
	parts := pathParts(path)
	if len(parts) != 5 || parts[0] != "receipts" || parts[2] != "people" || parts[4] != "items" {
		return "", false
	}
	return parts[3], true
}

// parsePersonItemPath matches /receipts/{receipt_id}/people/{person_id}/items/{item_id}.
func parsePersonItemPath(path string) (personID, itemID string, ok bool) {
	parts := pathParts(path)
	if len(parts) != 6 || parts[0] != "receipts" || parts[2] != "people" || parts[4] != "items" {
		return "", "", false
	}
	return parts[3], parts[5], true
}
