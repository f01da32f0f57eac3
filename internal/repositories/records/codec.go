// Package records implements the typed repositories on top of a DocumentStore.
package records

import (
	"encoding/json"
	"fmt"

	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
)

// toFields flattens a stored model into the generic field map written to the store.
// Numbers decode as float64 so every backend receives native JSON types.
func toFields(model any) (map[string]any, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	fields := map[string]any{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return fields, nil
}

// fromRecord decodes a record's fields into a stored model.
func fromRecord(rec portsrepo.Record, model any) error {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("failed to decode record %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal(data, model); err != nil {
		return fmt.Errorf("failed to decode record %s: %w", rec.ID, err)
	}
	return nil
}
