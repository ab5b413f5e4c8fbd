package vterm

import (
	"os"
	"strings"
)

// knownVTTerms lists the TERM values the ANSI backend is known to work
// against, per spec.md §4.3. vtPrefixes covers the vt100..vt320 family by
// prefix match instead of enumerating every numeric suffix.
var knownVTTerms = map[string]bool{
	"xterm": true, "rxvt": true, "eterm": true, "screen": true, "tmux": true,
	"ansi": true, "scoansi": true, "cygwin": true, "linux": true,
	"konsole": true, "bvterm": true,
}

var vtPrefixes = []string{"xterm-", "rxvt-", "screen-", "tmux-", "vt1", "vt2", "vt3"}

// hasVTCapableTerm reports whether the TERM environment variable names a
// terminal the ANSI backend can drive. An empty or "dumb" TERM means no VT
// capability; any other recognized value (or, permissively, any non-empty
// value other than "dumb") is accepted, matching spec.md §4.3's "anything is
// acceptable except 'dumb'" rule.
func hasVTCapableTerm() bool {
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "" || term == "dumb" {
		return false
	}
	if knownVTTerms[term] {
		return true
	}
	for _, p := range vtPrefixes {
		if strings.HasPrefix(term, p) {
			return true
		}
	}
	return true
}
