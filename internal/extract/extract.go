package extract

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is one untyped upstream object. The provider's field names drift
// between versions and nested arrays come and go, so every accessor takes an
// ordered list of candidate keys and resolves to a typed default instead of
// failing. All accessors are safe on a nil Record.
type Record map[string]any

// AsRecord converts a decoded JSON value to a Record, or nil.
func AsRecord(v any) Record {
	if m, ok := v.(map[string]any); ok {
		return Record(m)
	}
	return nil
}

// String returns the first candidate key holding a non-empty string. Numeric
// values are formatted, since some providers send ids as numbers.
func (r Record) String(keys ...string) string {
	return r.StringOr("", keys...)
}

// StringOr is String with an explicit fallback.
func (r Record) StringOr(fallback string, keys ...string) string {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			if s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64)
		case int:
			return strconv.Itoa(s)
		}
	}
	return fallback
}

// Float returns the first candidate key holding a usable number, else 0.
// Strings that parse as numbers count, the provider is not consistent about
// numeric types.
func (r Record) Float(keys ...string) float64 {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case string:
			if parsed, err := strconv.ParseFloat(n, 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}

// Int truncates Float.
func (r Record) Int(keys ...string) int {
	return int(r.Float(keys...))
}

// Record descends one level. A missing or non-object value yields an empty
// Record so lookups can be chained without nil checks.
func (r Record) Record(key string) Record {
	if v, ok := r[key]; ok {
		if m := AsRecord(v); m != nil {
			return m
		}
	}
	return Record{}
}

// Slice returns the raw array under the first present candidate key.
func (r Record) Slice(keys ...string) []any {
	for _, key := range keys {
		if v, ok := r[key]; ok {
			if list, ok := v.([]any); ok {
				return list
			}
		}
	}
	return nil
}

// Records returns the object elements of the array under key, skipping
// anything that is not an object.
func (r Record) Records(key string) []Record {
	raw := r.Slice(key)
	out := make([]Record, 0, len(raw))
	for _, v := range raw {
		if m := AsRecord(v); m != nil {
			out = append(out, m)
		}
	}
	return out
}

// Strings flattens the array under key to strings. Object elements
// contribute the value of objKey ("url" for image lists).
func (r Record) Strings(key, objKey string) []string {
	raw := r.Slice(key)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		switch e := v.(type) {
		case string:
			if e != "" {
				out = append(out, e)
			}
		case map[string]any:
			if s := Record(e).String(objKey); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// First and Last return edge elements of a Record slice, or an empty Record,
// so segment walks never branch on length.
func First(list []Record) Record {
	if len(list) == 0 {
		return Record{}
	}
	return list[0]
}

func Last(list []Record) Record {
	if len(list) == 0 {
		return Record{}
	}
	return list[len(list)-1]
}

// SyntheticID makes a fallback identifier for upstream records that carry no
// token/slug of their own. It is NOT reproducible: two ingestions of the same
// identifier-less item get distinct ids and therefore distinct rows. Callers
// must prefer upstream identifiers whenever present.
func SyntheticID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(),
		strings.Split(uuid.NewString(), "-")[0])
}
