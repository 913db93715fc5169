package querybuilder

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// InsertModel renders a single-row INSERT of every writable db-tagged field
// of model, followed by suffix (usually a RETURNING clause).
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	if table == "" {
		return "", nil, fmt.Errorf("insert: %w", errNoTable)
	}
	cols, vals, err := writableColumns(model)
	if err != nil {
		return "", nil, err
	}

	var p params
	holders := make([]string, len(vals))
	for i, v := range vals {
		holders[i] = p.bind(v)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), strings.Join(holders, ", "))
	if suffix = strings.TrimSpace(suffix); suffix != "" {
		query += " " + suffix
	}
	return query, p.args, nil
}

// UpdateModel starts an UPDATE that sets every db-tagged field of model.
// Fields tagged with ",readonly" are skipped.
func UpdateModel(table string, model any) (*UpdateBuilder, error) {
	cols, vals, err := writableColumns(model)
	if err != nil {
		return nil, err
	}
	b := Update(table)
	for i, col := range cols {
		b.Set(col, vals[i])
	}
	return b, nil
}

func writableColumns(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct, got %s", value.Kind())
	}

	var (
		cols []string
		vals []any
	)
	for _, field := range reflect.VisibleFields(value.Type()) {
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name, options, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" || slices.Contains(strings.Split(options, ","), "readonly") {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, value.FieldByIndex(field.Index).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model %s has no writable db columns", value.Type())
	}
	return cols, vals, nil
}
