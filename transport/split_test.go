package transport

import (
	"math"
	"testing"

	"tabsplit/persistence"
)

func item(id string, price float64) persistence.ReceiptItem {
	return persistence.ReceiptItem{ID: id, Name: "item-" + id, Price: price}
}

func assign(personID, itemID string) persistence.Assignment {
	return persistence.Assignment{ID: personID + "-" + itemID, PersonID: personID, ItemID: itemID}
}

func TestComputeSplitEqualShares(t *testing.T) {
	items := []persistence.ReceiptItem{item("i1", 10.00)}
	assignments := []persistence.Assignment{assign("alice", "i1"), assign("bob", "i1")}

	split := ComputeSplit(items, assignments)

	if got := split.PersonTotal["alice"]; got != 5.00 {
		t.Errorf("alice total = %v, want 5.00", got)
	}
	if got := split.PersonTotal["bob"]; got != 5.00 {
		t.Errorf("bob total = %v, want 5.00", got)
	}
}

func TestComputeSplitRemainderCents(t *testing.T) {
	// 10.00 across three people cannot divide evenly; the leftover cent
	// lands on the earliest assignee and the shares still sum to the price.
	items := []persistence.ReceiptItem{item("i1", 10.00)}
	assignments := []persistence.Assignment{
		assign("alice", "i1"),
		assign("bob", "i1"),
		assign("carol", "i1"),
	}

	split := ComputeSplit(items, assignments)

	sum := 0.0
	for _, personID := range []string{"alice", "bob", "carol"} {
		sum += split.PersonTotal[personID]
	}
	if math.Abs(sum-10.00) > 1e-9 {
		t.Errorf("shares sum to %v, want 10.00", sum)
	}
	if got := split.PersonTotal["alice"]; got != 3.34 {
		t.Errorf("alice total = %v, want 3.34 (gets the extra cent)", got)
	}
	if got := split.PersonTotal["bob"]; got != 3.33 {
		t.Errorf("bob total = %v, want 3.33", got)
	}
}

func TestComputeSplitUnassignedItemsContributeNothing(t *testing.T) {
	items := []persistence.ReceiptItem{item("i1", 10.00), item("i2", 4.50)}
	assignments := []persistence.Assignment{assign("alice", "i1")}

	split := ComputeSplit(items, assignments)

	if got := split.PersonTotal["alice"]; got != 10.00 {
		t.Errorf("alice total = %v, want 10.00", got)
	}
	if _, exists := split.AmountByAssignment["alice:i2"]; exists {
		t.Error("unassigned item produced an assignment amount")
	}
}

func TestComputeSplitAcrossMultipleItems(t *testing.T) {
	items := []persistence.ReceiptItem{item("i1", 3.49), item("i2", 2.10)}
	assignments := []persistence.Assignment{
		assign("alice", "i1"),
		assign("alice", "i2"),
		assign("bob", "i2"),
	}

	split := ComputeSplit(items, assignments)

	if got := split.PersonTotal["alice"]; math.Abs(got-4.54) > 1e-9 {
		t.Errorf("alice total = %v, want 4.54 (3.49 + 1.05)", got)
	}
	if got := split.PersonTotal["bob"]; math.Abs(got-1.05) > 1e-9 {
		t.Errorf("bob total = %v, want 1.05", got)
	}
}

func TestComputeSplitEmpty(t *testing.T) {
	split := ComputeSplit(nil, nil)
	if len(split.PersonTotal) != 0 || len(split.AmountByAssignment) != 0 {
		t.Errorf("empty inputs produced %+v", split)
	}
}
