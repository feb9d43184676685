// Package tablerender renders admin manage tables from an enumerated list of
// column descriptors. Each column pairs a header with a pure accessor from
// entity to display string; nothing is looked up reflectively by field name.
package tablerender

import "github.com/VibeCart-Commerce/vibecart-backend/models"

// Column describes one table column for entity type T.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Render materializes headers and rows for the given entities.
func Render[T any](entities []T, columns []Column[T]) models.TableResponse {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}

	rows := make([][]string, len(entities))
	for i, entity := range entities {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = col.Value(entity)
		}
		rows[i] = row
	}

	return models.TableResponse{Headers: headers, Rows: rows}
}
