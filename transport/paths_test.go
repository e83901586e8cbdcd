package transport

import "testing"

func TestParseReceiptPath(t *testing.T) {
	tests := []struct {
		path   string
		wantID string
		wantOK bool
	}{
		{"/receipts/abc123", "abc123", true},
		{"/receipts/abc123/", "abc123", true},
		{"/receipts", "", false},
		{"/receipts/abc123/items", "", false},
		{"/other/abc123", "", false},
	}
	for _, tt := range tests {
		id, ok := parseReceiptPath(tt.path)
		if ok != tt.wantOK || id != tt.wantID {
			t.Errorf("parseReceiptPath(%q) = (%q, %v), want (%q, %v)", tt.path, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestParseReceiptSubPath(t *testing.T) {
	if id, ok := parseReceiptSubPath("/receipts/r1/items", "items"); !ok || id != "r1" {
		t.Errorf("items path = (%q, %v), want (r1, true)", id, ok)
	}
	if id, ok := parseReceiptSubPath("/receipts/r1/text", "text"); !ok || id != "r1" {
		t.Errorf("text path = (%q, %v), want (r1, true)", id, ok)
	}
	if _, ok := parseReceiptSubPath("/receipts/r1/items", "people"); ok {
		t.Error("mismatched trailing segment accepted")
	}
}

func TestParsePersonPaths(t *testing.T) {
	receiptID, personID, ok := parsePersonPath("/receipts/r1/people/p1")
	if !ok || receiptID != "r1" || personID != "p1" {
		t.Errorf("parsePersonPath = (%q, %q, %v)", receiptID, personID, ok)
	}

	personID, ok = parsePersonItemsPath("/receipts/r1/people/p1/items")
	if !ok || personID != "p1" {
		t.Errorf("parsePersonItemsPath = (%q, %v)", personID, ok)
	}

	personID, itemID, ok := parsePersonItemPath("/receipts/r1/people/p1/items/i1")
	if !ok || personID != "p1" || itemID != "i1" {
		t.Errorf("parsePersonItemPath = (%q, %q, %v)", personID, itemID, ok)
	}

	if _, _, ok := parsePersonItemPath("/receipts/r1/people/p1/items"); ok {
		t.Error("short path accepted as person-item path")
	}
}
