// Package convert implements the coercion registry: best-effort conversion
// of loosely-typed metadata values into concrete target types.
//
// Every converter is total in the Go sense: it returns (zero, false) on
// failure and never panics. The typed accessors in pkg/meta turn that
// false into the caller's default.
package convert

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aretw0/silt/pkg/core"
)

// To converts v to T using the registry, falling back to a direct type
// assertion for target types the registry does not know about.
func To[T any](v any) (T, bool) {
	var out T
	ok := false

	switch p := any(&out).(type) {
	case *string:
		*p, ok = ToString(v)
	case *bool:
		*p, ok = ToBool(v)
	case *int:
		*p, ok = ToInt(v)
	case *int64:
		*p, ok = ToInt64(v)
	case *float64:
		*p, ok = ToFloat64(v)
	case *time.Time:
		*p, ok = ToTime(v)
	case *core.FilePath:
		*p, ok = ToFilePath(v)
	case *core.DirPath:
		*p, ok = ToDirPath(v)
	case *core.Metadata:
		*p, ok = ToMetadata(v)
	case *any:
		if v != nil {
			*p, ok = v, true
		}
	default:
		if t, good := v.(T); good {
			out, ok = t, true
		}
	}

	return out, ok
}

// ToString converts scalar values to their string form.
// Maps and sequences do not stringify; treating them as coercion failures
// keeps "present but wrong type" observable at the accessor layer.
func ToString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", t), true
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case time.Time:
		return t.Format(time.RFC3339), true
	case fmt.Stringer:
		return t.String(), true
	}
	return "", false
}

// ToBool converts booleans, bool-ish strings and numbers.
func ToBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return false, false
		}
		return b, true
	}
	if n, ok := toFloat(v); ok {
		return n != 0, true
	}
	return false, false
}

// ToInt converts integer widths, floats (truncated toward zero), booleans
// and numeric strings.
func ToInt(v any) (int, bool) {
	n, ok := ToInt64(v)
	return int(n), ok
}

// ToInt64 is the widest integer converter; ToInt delegates here.
func ToInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		return int64(t), true
	case float32:
		return int64(t), true
	case float64:
		return int64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n, true
		}
		// YAML authors write "5.0" for integers often enough to warrant
		// the float fallback.
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return int64(f), true
		}
	}
	return 0, false
}

// ToFloat64 converts numeric widths and numeric strings.
func ToFloat64(v any) (float64, bool) {
	if f, ok := toFloat(v); ok {
		return f, true
	}
	if s, ok := v.(string); ok {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

// timeLayouts is the fixed, ordered set of accepted string layouts.
// First match wins.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
}

// ToTime converts time values, Unix-second integers and date strings.
func ToTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range timeLayouts {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts, true
			}
		}
		return time.Time{}, false
	}
	if n, ok := v.(int64); ok {
		return time.Unix(n, 0).UTC(), true
	}
	if n, ok := v.(int); ok {
		return time.Unix(int64(n), 0).UTC(), true
	}
	return time.Time{}, false
}

// ToFilePath converts path values and parseable strings to a FilePath.
func ToFilePath(v any) (core.FilePath, bool) {
	switch t := v.(type) {
	case core.FilePath:
		return t, true
	case string:
		p, err := core.ParseFilePath(t)
		if err != nil {
			return "", false
		}
		return p, true
	}
	return "", false
}

// ToDirPath converts path values and parseable strings to a DirPath.
func ToDirPath(v any) (core.DirPath, bool) {
	switch t := v.(type) {
	case core.DirPath:
		return t, true
	case string:
		p, err := core.ParseDirPath(t)
		if err != nil {
			return "", false
		}
		return p, true
	}
	return "", false
}

// ToMetadata converts nested document shapes to a Metadata map.
// Sequences are never unwrapped: a list of documents is not a document.
func ToMetadata(v any) (core.Metadata, bool) {
	switch t := v.(type) {
	case core.Metadata:
		return t, true
	case map[string]any:
		return core.Metadata(t), true
	case map[any]any:
		// Older YAML decoders produce interface-keyed maps.
		out := make(core.Metadata, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	case core.Document:
		return t.Metadata, true
	case *core.Document:
		if t == nil {
			return nil, false
		}
		return t.Metadata, true
	}
	return nil, false
}
