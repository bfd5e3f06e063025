package convert

import "reflect"

// sliceOutcome distinguishes how a raw value became a sequence.
// Collection accessors need this to keep "defined but empty" apart from
// "not a sequence at all".
type sliceOutcome int

const (
	sliceInvalid   sliceOutcome = iota // nil or otherwise not usable
	slicePromoted                      // single atom promoted to [atom]
	sliceSequence                      // genuine slice or array
)

// ToSlice normalizes v into a []any, preserving order.
//
// Real slices and arrays unpack element-wise. Strings and byte slices are
// atoms, not sequences. Any other non-nil value is singleton-promoted to a
// one-element slice: callers of a list accessor should not need to know
// whether the author stored one value or many.
func ToSlice(v any) ([]any, bool) {
	items, outcome := toSlice(v)
	return items, outcome != sliceInvalid
}

// ToList coerces v into an ordered list of T.
//
// A genuine sequence yields its coercible items in original order, which
// may legitimately be an empty (but non-nil) list. A promoted singleton
// must itself coerce to T; if it cannot, the whole conversion fails so the
// accessor layer can fall back to the caller's default.
func ToList[T any](v any) ([]T, bool) {
	items, outcome := toSlice(v)
	switch outcome {
	case sliceInvalid:
		return nil, false
	case slicePromoted:
		t, ok := To[T](items[0])
		if !ok {
			return nil, false
		}
		return []T{t}, true
	default:
		out := make([]T, 0, len(items))
		for _, it := range items {
			if t, ok := To[T](it); ok {
				out = append(out, t)
			}
		}
		return out, true
	}
}

func toSlice(v any) ([]any, sliceOutcome) {
	if v == nil {
		return nil, sliceInvalid
	}

	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		copy(out, t)
		return out, sliceSequence
	case string, []byte:
		return []any{t}, slicePromoted
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, sliceSequence
	}

	return []any{v}, slicePromoted
}
