package dico

import (
	"maps"
	"sort"
	"time"
)

// Dico is a read-only view over configuration values.
type Dico struct {
	data map[string]any
}

// New wraps data. A nil map yields an empty Dico.
func New(data map[string]any) Dico {
	if data == nil {
		data = make(map[string]any)
	}
	return Dico{data: data}
}

// String returns the string stored at key, or def.
func (d Dico) String(key, def string) string {
	if s, ok := d.data[key].(string); ok {
		return s
	}
	return def
}

// Float returns the number stored at key as a float64, or def.
func (d Dico) Float(key string, def float64) float64 {
	if f, ok := toFloat(d.data[key]); ok {
		return f
	}
	return def
}

// Int returns the integer stored at key, or def.
// Floats with a fractional part are rejected.
func (d Dico) Int(key string, def int) int {
	switch v := d.data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
	}
	return def
}

// Bool returns the boolean stored at key, or def.
func (d Dico) Bool(key string, def bool) bool {
	if b, ok := d.data[key].(bool); ok {
		return b
	}
	return def
}

// Duration returns the duration stored at key, or def.
// Plain numbers are read as milliseconds.
func (d Dico) Duration(key string, def time.Duration) time.Duration {
	switch v := d.data[key].(type) {
	case time.Duration:
		return v
	case string:
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	case int, int64, float64, float32:
		f, _ := toFloat(v)
		return time.Duration(f * float64(time.Millisecond))
	}
	return def
}

// Strings returns the string list stored at key, or def.
func (d Dico) Strings(key string, def []string) []string {
	switch v := d.data[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return def
			}
			out = append(out, s)
		}
		return out
	}
	return def
}

// Floats returns the number list stored at key, or def.
func (d Dico) Floats(key string, def []float64) []float64 {
	switch v := d.data[key].(type) {
	case []float64:
		return v
	case []any:
		out := make([]float64, 0, len(v))
		for _, item := range v {
			f, ok := toFloat(item)
			if !ok {
				return def
			}
			out = append(out, f)
		}
		return out
	}
	return def
}

// Sub returns the nested section stored at key. Missing or non-map values
// yield an empty Dico.
func (d Dico) Sub(key string) Dico {
	if m, ok := d.data[key].(map[string]any); ok {
		return New(m)
	}
	return New(nil)
}

// Any returns the raw value stored at key, or def.
func (d Dico) Any(key string, def any) any {
	if v, ok := d.data[key]; ok {
		return v
	}
	return def
}

// Has reports whether key is present.
func (d Dico) Has(key string) bool {
	_, ok := d.data[key]
	return ok
}

// Len returns the number of keys.
func (d Dico) Len() int {
	return len(d.data)
}

// Keys returns the keys in sorted order.
func (d Dico) Keys() []string {
	keys := make([]string, 0, len(d.data))
	for k := range d.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Raw returns the underlying map. Callers must not modify it.
func (d Dico) Raw() map[string]any {
	if d.data == nil {
		return map[string]any{}
	}
	return d.data
}

// With returns a copy of d with key set to value.
func (d Dico) With(key string, value any) Dico {
	out := make(map[string]any, len(d.data)+1)
	maps.Copy(out, d.data)
	out[key] = value
	return Dico{data: out}
}

// Merge returns a copy of d overlaid with the values of other.
// Keys present in both take the value from other.
func (d Dico) Merge(other Dico) Dico {
	out := make(map[string]any, len(d.data)+len(other.data))
	maps.Copy(out, d.data)
	maps.Copy(out, other.data)
	return Dico{data: out}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
