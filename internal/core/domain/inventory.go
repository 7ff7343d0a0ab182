package domain

// InventoryEntry is one stock movement instruction for the inventory service.
type InventoryEntry struct {
	VariantID string        `json:"variant_id"`
	Quantity  int           `json:"quantity"`
	Pool      InventoryPool `json:"pool"`
}

// InventoryEntries scopes order items to the order's inventory pool.
func InventoryEntries(items []OrderItem, pool InventoryPool) []InventoryEntry {
	if pool == "" {
		pool = InventoryPoolRegular
	}
	entries := make([]InventoryEntry, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		entries = append(entries, InventoryEntry{VariantID: it.VariantID, Quantity: it.Quantity, Pool: pool})
	}
	return entries
}
