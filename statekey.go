package percept

import (
	"fmt"
	"sort"
	"strings"
)

// CanonicalKey derives a deterministic string state key from an
// observation payload.
//
// A map[string]any payload renders as its (key, value) pairs sorted by
// key, so two maps with identical contents but different insertion
// histories collapse to the same key. Values are rendered recursively,
// so nested maps canonicalize too. Any other payload renders as its
// plain text form.
//
// This is the only state-abstraction mechanism value-based agents use;
// no equality is defined beyond string identity of the rendered form.
func CanonicalKey(data any) string {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Sprintf("%v", data)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+CanonicalKey(m[k]))
	}
	return "[" + strings.Join(pairs, " ") + "]"
}
