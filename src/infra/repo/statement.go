package repo

import (
	"fmt"
	"strings"

	"oblog/src/core/domain"
)

// updateStatement builds an UPDATE covering exactly fields, with the row id
// bound to the placeholder after the last field.
func updateStatement(table, returning string, fields []domain.Field, id int64) (string, []any) {
	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		sets = append(sets, fmt.Sprintf(`"%s" = $%d`, f.Name, i+1))
		args = append(args, f.Value)
	}
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
		table, strings.Join(sets, ", "), len(args), returning)
	return q, args
}

// conflictStatement builds the uniqueness check: one OR-ed equality per
// candidate, optionally excluding a row id.
func conflictStatement(table, returning string, candidates []domain.Field, excludeID *int64) (string, []any) {
	preds := make([]string, 0, len(candidates))
	args := make([]any, 0, len(candidates)+1)
	for i, f := range candidates {
		preds = append(preds, fmt.Sprintf(`"%s" = $%d`, f.Name, i+1))
		args = append(args, f.Value)
	}

	q := fmt.Sprintf(`SELECT %s FROM %s WHERE (%s)`, returning, table, strings.Join(preds, " OR "))
	if excludeID != nil {
		args = append(args, *excludeID)
		q += fmt.Sprintf(` AND id <> $%d`, len(args))
	}
	return q + ` LIMIT 1`, args
}

// uniqueCandidates keeps the supplied fields that carry a unique constraint.
func uniqueCandidates(fields []domain.Field, unique ...string) []domain.Field {
	var out []domain.Field
	for _, f := range fields {
		for _, name := range unique {
			if f.Name == name {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// matchedFields lists the candidates whose value equals the stored one.
func matchedFields(candidates []domain.Field, stored map[string]any) []string {
	var out []string
	for _, f := range candidates {
		if v, ok := stored[f.Name]; ok && v == f.Value {
			out = append(out, f.Name)
		}
	}
	return out
}
