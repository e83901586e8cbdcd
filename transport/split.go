package transport

import (
	"math"

	"tabsplit/persistence"
)

// SplitResult holds the computed equal-split amounts for a receipt.
type SplitResult struct {
	AmountByAssignment map[string]float64 // key: personID + ":" + itemID
	PersonTotal        map[string]float64 // key: personID
}

// ComputeSplit divides each item's price equally among the people assigned
// to it; an item shared by n people costs each of them price/n. The math
// runs in integer cents, with leftover cents handed to the earliest
// assignees so the shares always sum back to the item price. Items nobody
// claimed contribute to no one.
func ComputeSplit(items []persistence.ReceiptItem, assignments []persistence.Assignment) SplitResult {
	itemPrice := make(map[string]float64, len(items))
	for _, item := range items {
		itemPrice[item.ID] = item.Price
	}

	assigneesByItem := make(map[string][]string)
	for _, a := range assignments {
		assigneesByItem[a.ItemID] = append(assigneesByItem[a.ItemID], a.PersonID)
	}

	amountByAssignment := make(map[string]float64)
	for itemID, personIDs := range assigneesByItem {
		n := len(personIDs)
		totalCents := int(math.Round(itemPrice[itemID] * 100))
		baseCents := totalCents / n
		remainder := totalCents - baseCents*n
		for i, personID := range personIDs {
			cents := baseCents
			if i < remainder {
				cents++
			}
			amountByAssignment[personID+":"+itemID] = float64(cents) / 100
		}
	}

	personTotal := make(map[string]float64)
	for _, a := range assignments {
		personTotal[a.PersonID] += amountByAssignment[a.PersonID+":"+a.ItemID]
	}

	return SplitResult{
		AmountByAssignment: amountByAssignment,
		PersonTotal:        personTotal,
	}
}
