package model

import (
	"fmt"
	"time"
)

// Row is one table row as a screen sees it: the raw document fields plus
// the document id under "id". Joined rows additionally carry "userId" and a
// "userData" snapshot. Missing fields stay missing here; defaults are
// applied only at the presentation/report boundary via the helpers below.
type Row map[string]interface{}

func (r Row) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Clone makes a shallow copy, deep enough for the nested userData map.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for key, value := range r {
		if nested, ok := value.(map[string]interface{}); ok {
			inner := make(map[string]interface{}, len(nested))
			for k, v := range nested {
				inner[k] = v
			}
			out[key] = inner
			continue
		}
		out[key] = value
	}
	return out
}

// Str renders a field as text, substituting fallback when the field is
// absent or empty.
func Str(r map[string]interface{}, key, fallback string) string {
	value, ok := r[key]
	if !ok || value == nil {
		return fallback
	}
	switch v := value.(type) {
	case string:
		if v == "" {
			return fallback
		}
		return v
	case time.Time:
		return v.Format("2006-01-02 15:04")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Num reads a numeric field, defaulting to 0. The store hands back int64
// for integers and float64 for doubles.
func Num(r map[string]interface{}, key string) float64 {
	switch v := r[key].(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}

// Bool reads a boolean field, defaulting to false.
func Bool(r map[string]interface{}, key string) bool {
	v, _ := r[key].(bool)
	return v
}

// YesNo renders a boolean field the way the admin tables print it.
func YesNo(r map[string]interface{}, key string) string {
	if Bool(r, key) {
		return "Yes"
	}
	return "No"
}

// Date renders a timestamp field as a calendar date, "N/A" when absent.
func Date(r map[string]interface{}, key string) string {
	if t, ok := r[key].(time.Time); ok {
		return t.Format("2006-01-02")
	}
	return "N/A"
}

// DateTime renders a timestamp field with time of day, "N/A" when absent.
func DateTime(r map[string]interface{}, key string) string {
	if t, ok := r[key].(time.Time); ok {
		return t.Format("2006-01-02 15:04")
	}
	return "N/A"
}

// UserField reaches into a joined row's userData snapshot.
func UserField(r map[string]interface{}, key string) string {
	if data, ok := r["userData"].(map[string]interface{}); ok {
		return Str(data, key, "N/A")
	}
	return "N/A"
}
