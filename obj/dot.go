package obj

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for map[string]any
//
// Read, write, and test values in nested map[string]any trees using
// dot-separated key paths — the lodash _.get / _.set / _.has / _.unset
// family. Typical use is decoded JSON or configuration trees:
//
//	cfg := map[string]any{
//	    "server": map[string]any{
//	        "host": "0.0.0.0",
//	        "tls":  map[string]any{"cert": "/etc/ssl/app.pem"},
//	    },
//	}
//
//	Get(cfg, "server.tls.cert")   → "/etc/ssl/app.pem"
//	Set(cfg, "server.port", 8080)
//	Has(cfg, "server.host")       → true
//	Unset(cfg, "server.tls")
//
// A path segment that lands on a non-map value stops resolution: the
// remainder of the path is treated as absent, never a panic.
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves a value from m using a dot-notation path.
// Returns def[0] (or nil) when the path does not resolve.
//
//	Get(cfg, "server.tls.cert")          // "/etc/ssl/app.pem"
//	Get(cfg, "server.timeout", "30s")    // "30s" when the key is absent
func Get(m map[string]any, path string, def ...any) any {
	segments := strings.Split(path, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		if i == len(segments)-1 {
			return val
		}
		nested, ok := val.(map[string]any)
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		current = nested
	}
	return nil
}

// Set writes value into m at the dot-notation path, creating intermediate
// maps as needed. m is mutated. A non-map value sitting on an intermediate
// segment is replaced by a fresh map.
//
//	Set(cfg, "server.tls.key", "/etc/ssl/app.key")
func Set(m map[string]any, path string, value any) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		m[path] = value
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := m[seg].(map[string]any)
	if !ok {
		nested = make(map[string]any)
		m[seg] = nested
	}
	Set(nested, rest, value)
}

// Has reports whether the dot-notation path resolves in m.
func Has(m map[string]any, path string) bool {
	return hasPath(m, strings.Split(path, "."))
}

func hasPath(m map[string]any, segments []string) bool {
	if len(segments) == 0 {
		return false
	}
	val, ok := m[segments[0]]
	if !ok {
		return false
	}
	if len(segments) == 1 {
		return true
	}
	nested, ok := val.(map[string]any)
	if !ok {
		return false
	}
	return hasPath(nested, segments[1:])
}

// HasAll reports whether all dot-notation paths resolve in m.
func HasAll(m map[string]any, paths ...string) bool {
	for _, path := range paths {
		if !Has(m, path) {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the dot-notation paths resolve in m.
func HasAny(m map[string]any, paths ...string) bool {
	for _, path := range paths {
		if Has(m, path) {
			return true
		}
	}
	return false
}

// Unset removes the dot-notation path from m.
// Intermediate maps are not cleaned up.
func Unset(m map[string]any, path string) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		delete(m, path)
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := m[seg].(map[string]any)
	if !ok {
		return
	}
	Unset(nested, rest)
}

// Dot flattens a nested map[string]any into a single-level map using dot
// notation for the keys.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			dotFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Undot expands a flat dot-notation map into a nested map[string]any.
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Undot(m map[string]any) map[string]any {
	out := make(map[string]any)
	for key, val := range m {
		Set(out, key, val)
	}
	return out
}
