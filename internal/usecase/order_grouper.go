package usecase

import (
	"packslip/internal/domain/entities"
	"strings"
)

// NormalizeOrderID trims the raw order number; blank values map to the sentinel.
func NormalizeOrderID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" {
		return entities.UnknownOrderID
	}
	return id
}

// GroupByOrder groups rows by normalized order number in a single pass.
//
// Groups come out in first-seen order and rows keep their input order inside a
// group. Rows without an order number all land in one sentinel group.
func GroupByOrder(rows []entities.UploadRow) []entities.OrderGroup {
	index := make(map[string]int)
	groups := make([]entities.OrderGroup, 0)

	for _, row := range rows {
		key := NormalizeOrderID(row.OrderNumber)
		if i, ok := index[key]; ok {
			groups[i].Rows = append(groups[i].Rows, row)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, entities.OrderGroup{
			OrderID:  key,
			Position: len(groups),
			Rows:     []entities.UploadRow{row},
		})
	}
	return groups
}
