package selection

import (
	"fmt"
	"slices"
	"strings"

	"glkit/internal/catalog"
)

// Normalize parses a raw comma-separated library string into a
// canonical ordered set: tokens are trimmed and lower-cased, empty
// tokens dropped, duplicates removed by first occurrence. An empty
// input yields an empty selection; there is no error path.
func Normalize(raw string) []string {
	return NormalizeList(strings.Split(raw, ","))
}

// NormalizeList canonicalizes an already-split token list. Used when
// the selection comes from a persisted config rather than user input,
// so hand-edited records get the same treatment.
func NormalizeList(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	var out []string
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// Notice records one conflict-resolution removal.
type Notice struct {
	Removed string
	Reason  string
}

func (n Notice) String() string {
	return fmt.Sprintf("%s removed: %s", n.Removed, n.Reason)
}

// Resolved is the conflict-adjusted selection. Libs keeps first-seen
// order; the order is only used for deterministic output, never for
// semantics.
type Resolved struct {
	Libs    []string
	Notices []Notice
}

// Resolve applies the catalog's mutual-exclusion rules to a normalized
// selection. For each conflicting pair present, the catalog-designated
// winner is retained and the loser removed with a notice. The pass
// repeats until no conflicting pair remains, so the algorithm stays
// correct as the conflict list grows. Output depends only on the input
// set, not on token order.
func Resolve(libs []string) Resolved {
	out := slices.Clone(libs)
	var notices []Notice
	for {
		changed := false
		for _, c := range catalog.Conflicts() {
			if !slices.Contains(out, c.Winner) || !slices.Contains(out, c.Loser) {
				continue
			}
			out = slices.DeleteFunc(out, func(id string) bool { return id == c.Loser })
			notices = append(notices, Notice{Removed: c.Loser, Reason: c.Reason})
			changed = true
		}
		if !changed {
			return Resolved{Libs: out, Notices: notices}
		}
	}
}
