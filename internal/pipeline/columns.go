package pipeline

import "github.com/vanshika/bankreviews/internal/domain"

// SelectColumns keeps the configured columns that at least one row carries,
// in configured order. Configured columns no row produces are dropped
// silently, as are duplicates.
func SelectColumns(configured []string, rows []domain.Review) []string {
	selected := make([]string, 0, len(configured))
	seen := make(map[string]struct{}, len(configured))
	for _, column := range configured {
		if _, dup := seen[column]; dup {
			continue
		}
		seen[column] = struct{}{}
		if produced(column, rows) {
			selected = append(selected, column)
		}
	}
	return selected
}

func produced(column string, rows []domain.Review) bool {
	for _, r := range rows {
		if _, ok := r.Field(column); ok {
			return true
		}
	}
	return false
}

// Record renders one row for the selected columns.
func Record(columns []string, row domain.Review) []string {
	record := make([]string, len(columns))
	for i, column := range columns {
		record[i], _ = row.Field(column)
	}
	return record
}
