// Package mapper translates loosely-typed UBIKAIS records into canonical
// store rows. Upstream endpoints name semantically identical fields
// differently, so every canonical field is resolved through an ordered list
// of candidate key names; the first present non-null value wins. A record
// whose natural-key field cannot be resolved is skipped, not errored.
package mapper

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"
)

// Record is one raw upstream JSON object.
type Record = map[string]interface{}

// lookup returns the first non-nil value among the candidate keys.
func lookup(rec Record, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// str resolves a field to a string, tolerating numeric upstream values.
// Missing or unconvertible fields degrade to "".
func str(rec Record, keys ...string) string {
	v, ok := lookup(rec, keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// nullFloat resolves a field to a nullable float. Non-numeric input nulls
// the field rather than failing the record.
func nullFloat(rec Record, keys ...string) sql.NullFloat64 {
	v, ok := lookup(rec, keys...)
	if !ok {
		return sql.NullFloat64{}
	}
	switch t := v.(type) {
	case float64:
		return sql.NullFloat64{Float64: t, Valid: true}
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return sql.NullFloat64{Float64: f, Valid: true}
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return sql.NullFloat64{Float64: f, Valid: true}
		}
	}
	return sql.NullFloat64{}
}

// nullInt resolves a field to a nullable integer, truncating floats.
func nullInt(rec Record, keys ...string) sql.NullInt64 {
	f := nullFloat(rec, keys...)
	if !f.Valid {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(f.Float64), Valid: true}
}

// rawJSON re-serializes the upstream record for the raw_data column so
// mapping mistakes stay recoverable from source.
func rawJSON(rec Record) string {
	b, err := json.Marshal(rec)
	if err != nil {
		return ""
	}
	return string(b)
}
