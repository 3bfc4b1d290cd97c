package skills

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// phrasePattern is a precompiled taxonomy phrase: the canonical skill plus a
// regexp matching its tokens separated by whitespace runs. Word boundaries
// are verified separately against the surrounding runes, because Go's \b
// does not behave at non-word phrase edges like "c++" or "c#".
type phrasePattern struct {
	skill string
	re    *regexp.Regexp
}

var phrases []phrasePattern

func init() {
	phrases = make([]phrasePattern, 0, len(Taxonomy))
	for _, skill := range Taxonomy {
		tokens := strings.Fields(skill)
		quoted := make([]string, len(tokens))
		for i, tok := range tokens {
			quoted[i] = regexp.QuoteMeta(tok)
		}
		phrases = append(phrases, phrasePattern{
			skill: skill,
			re:    regexp.MustCompile(strings.Join(quoted, `\s+`)),
		})
	}
}

// isWordRune reports whether r counts as a word character for boundary
// purposes: letters, digits, underscore. Dots, pluses and hashes are not
// word runes, so "node.js" and "c++" match as whole words.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Normalize lower-cases text and folds hyphens and underscores into spaces.
// Dots are preserved so dotted canonical skills (node.js, vue.js) survive.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "-", " ")
	text = strings.ReplaceAll(text, "_", " ")
	return text
}

// Extract returns the canonical skills found in text, deduplicated and
// sorted lexicographically. It never fails; empty or unmatchable input
// yields an empty slice.
func Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	text = Normalize(text)
	for _, a := range Aliases {
		text = replaceWholeWord(text, a.From, a.To)
	}

	found := make(map[string]bool)
	for _, p := range phrases {
		if containsWholePhrase(text, p.re) {
			found[p.skill] = true
		}
	}

	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// replaceWholeWord rewrites every word-boundary-delimited occurrence of old
// in text with repl. Boundary means the occurrence is neither preceded nor
// followed by a word rune. Occurrences are consumed left to right without
// rescanning the replacement, so chains never cascade within one call.
func replaceWholeWord(text, old, repl string) string {
	var b strings.Builder
	pos := 0
	for {
		idx := strings.Index(text[pos:], old)
		if idx < 0 {
			b.WriteString(text[pos:])
			return b.String()
		}
		start := pos + idx
		end := start + len(old)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			b.WriteString(text[pos:start])
			b.WriteString(repl)
			pos = end
		} else {
			// Not a whole word; keep scanning past this occurrence.
			b.WriteString(text[pos : start+1])
			pos = start + 1
		}
	}
}

// containsWholePhrase reports whether the compiled phrase occurs in text
// with non-word runes (or string edges) on both sides. Every candidate
// position is checked: an embedded occurrence does not mask a later
// free-standing one.
func containsWholePhrase(text string, re *regexp.Regexp) bool {
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if boundaryBefore(text, loc[0]) && boundaryAfter(text, loc[1]) {
			return true
		}
	}
	return false
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}
