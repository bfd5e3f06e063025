package meta

import "github.com/aretw0/silt/pkg/core"

// FormatString retrieves the value under key as a string and applies
// format to it. When the key is absent, def is returned and format is
// never invoked.
//
// Unlike every other accessor, the guard here is existence, not coercion
// success: once the key is known to exist the value is retrieved as a
// string (zero string on coercion failure) and format runs on it, on its
// own terms. The asymmetry is inherited behavior, kept so call sites that
// rely on "formatter runs iff the key exists" do not change meaning.
func FormatString(s core.Store, key string, def string, format func(string) string) string {
	if s == nil || !s.Exists(key) {
		return def
	}
	return format(GetString(s, key, ""))
}
