package pgsql

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
)

// fieldPathPattern guards the field paths interpolated into SQL.
var fieldPathPattern = regexp.MustCompile(`^[A-Za-z0-9_]+(\.[A-Za-z0-9_]+)*$`)

var timestampColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// buildListQuery turns a Query into SQL over the records table. Equality filters on
// data fields use JSONB containment so they can be served by the GIN index.
func buildListQuery(collection string, q portsrepo.Query) (string, []any, error) {
	var sb strings.Builder
	args := []any{collection}
	sb.WriteString("SELECT id, data, created_at, updated_at FROM records WHERE collection = $1")

	for _, f := range q.Filters {
		if col, ok := timestampColumns[f.Field]; ok {
			args = append(args, f.Value)
			fmt.Fprintf(&sb, " AND %s = $%d", col, len(args))
			continue
		}
		doc, err := containmentDocument(f.Field, f.Value)
		if err != nil {
			return "", nil, err
		}
		args = append(args, doc)
		fmt.Fprintf(&sb, " AND data @> $%d::jsonb", len(args))
	}

	orders := make([]string, 0, len(q.OrderBy)+1)
	for _, o := range q.OrderBy {
		expr, err := orderExpression(o.Field)
		if err != nil {
			return "", nil, err
		}
		if o.Descending {
			expr += " DESC"
		}
		orders = append(orders, expr)
	}
	orders = append(orders, "id")
	sb.WriteString(" ORDER BY " + strings.Join(orders, ", "))

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}
	return sb.String(), args, nil
}

// containmentDocument builds {"a":{"b":value}} for the path "a.b".
func containmentDocument(path string, value any) ([]byte, error) {
	if !fieldPathPattern.MatchString(path) {
		return nil, fmt.Errorf("invalid filter field %q: %w", path, apperrors.ErrValidation)
	}
	parts := strings.Split(path, ".")
	var doc any = value
	for i := len(parts) - 1; i >= 0; i-- {
		doc = map[string]any{parts[i]: doc}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter on %q: %w", path, err)
	}
	return data, nil
}

func orderExpression(path string) (string, error) {
	if col, ok := timestampColumns[path]; ok {
		return col, nil
	}
	if !fieldPathPattern.MatchString(path) {
		return "", fmt.Errorf("invalid order field %q: %w", path, apperrors.ErrValidation)
	}
	return fmt.Sprintf("data #> '{%s}'", strings.ReplaceAll(path, ".", ",")), nil
}
