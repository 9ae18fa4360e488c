// Package pattern implements component C1, the pattern catalog and
// extractor: single-pass, priority-ordered recognition of typed substrings
// (timestamps, dates, times, IP addresses, UUIDs, log levels, paths, URLs,
// numbers, hex values, emails) within arbitrary input text.
//
// Extraction produces a skeleton (the input with every recognized match
// replaced by a positional placeholder) and an ordered list of matches. The
// two together losslessly reconstruct the original text.
package pattern

import "regexp"

// Kind enumerates the recognized pattern types. The constant order is not
// the extraction priority order; that is the order of the patterns slice.
type Kind uint8

const (
	Timestamp Kind = iota
	Date
	Time
	IPv4
	IPv6
	UUID
	LogLevel
	Path
	URL
	Number
	Hex
	Email
	Custom
)

func (k Kind) String() string {
	switch k {
	case Timestamp:
		return "TIMESTAMP"
	case Date:
		return "DATE"
	case Time:
		return "TIME"
	case IPv4:
		return "IPV4"
	case IPv6:
		return "IPV6"
	case UUID:
		return "UUID"
	case LogLevel:
		return "LOGLEVEL"
	case Path:
		return "PATH"
	case URL:
		return "URL"
	case Number:
		return "NUMBER"
	case Hex:
		return "HEX"
	case Email:
		return "EMAIL"
	default:
		return "CUSTOM"
	}
}

// Match is one accepted, non-overlapping recognition within the input text.
// Text is a substring of the caller's input string and shares its memory;
// package columnar stores it in its columns as is, without copying.
type Match struct {
	Kind  Kind
	Start int
	End   int
	Text  string
}

// patternDef pairs a named capture group with its recognized Kind. Order
// here is the priority order: earlier entries win when byte ranges overlap.
type patternDef struct {
	name    string
	pattern string
	kind    Kind
}

// patterns is ordered most-specific-first so that, e.g., a full timestamp
// is claimed by Timestamp before its DATE/TIME sub-parts are considered,
// and a UUID is claimed before its hyphen-separated hex groups could be
// mistaken for anything else. Grammars are carried over from the reference
// Rust implementation's tuned pattern catalog; all are RE2-compatible
// (no lookaround), which Go's regexp package requires.
var patterns = []patternDef{
	{"TIMESTAMP", `\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?`, Timestamp},
	{"UUID", `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`, UUID},
	{"EMAIL", `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`, Email},
	{"URL", `https?://[^\s<>"']+`, URL},
	{"IPV6", `(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}`, IPv6},
	{"IPV4", `(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)`, IPv4},
	{"DATE", `\d{4}-\d{2}-\d{2}`, Date},
	{"TIME", `\d{2}:\d{2}:\d{2}(?:\.\d+)?`, Time},
	{"PATH", `(?:/[a-zA-Z0-9._-]+)+/?`, Path},
	{"HEX", `0x[0-9a-fA-F]+`, Hex},
	{"LOGLEVEL", `(?:DEBUG|INFO|WARN(?:ING)?|ERROR|FATAL|TRACE|CRITICAL)`, LogLevel},
	{"NUMBER", `\d+(?:\.\d+)?`, Number},
}

// Extractor recognizes all pattern kinds in one regex pass, using a single
// fused regular expression with one named capture group per kind so the
// whole catalog is matched in O(N) rather than O(N×M) for M patterns tried
// independently.
type Extractor struct {
	fused    *regexp.Regexp
	names    []string
	kindByName map[string]Kind
}

// New builds an Extractor from the fixed pattern catalog.
func New() *Extractor {
	expr := ""
	names := make([]string, 0, len(patterns))
	kindByName := make(map[string]Kind, len(patterns))

	for i, p := range patterns {
		if i > 0 {
			expr += "|"
		}
		expr += "(?P<" + p.name + ">" + p.pattern + ")"
		names = append(names, p.name)
		kindByName[p.name] = p.kind
	}

	return &Extractor{
		fused:      regexp.MustCompile(expr),
		names:      names,
		kindByName: kindByName,
	}
}

// FindMatches returns every non-overlapping accepted match in text, sorted
// by Start. Earlier-priority patterns claim their byte range first; a
// candidate whose range is already (partially) covered is discarded.
func (e *Extractor) FindMatches(text string) []Match {
	submatches := e.fused.FindAllStringSubmatchIndex(text, -1)
	if len(submatches) == 0 {
		return nil
	}

	covered := make([]bool, len(text))
	matches := make([]Match, 0, len(submatches))
	names := e.fused.SubexpNames()

	for _, idx := range submatches {
		for groupIdx, name := range names {
			if name == "" || groupIdx*2 >= len(idx) {
				continue
			}
			start, end := idx[groupIdx*2], idx[groupIdx*2+1]
			if start < 0 || end < 0 {
				continue
			}

			if anyCovered(covered, start, end) {
				continue
			}
			markCovered(covered, start, end)

			matches = append(matches, Match{
				Kind:  e.kindByName[name],
				Start: start,
				End:   end,
				Text:  text[start:end],
			})

			break
		}
	}

	// FindAllStringSubmatchIndex already returns matches in left-to-right
	// order of the fused expression, but a later alternative within the
	// same overall match position can still reorder relative to covered
	// ranges rejected out of order; sort defensively to guarantee the
	// contract.
	sortMatchesByStart(matches)

	return matches
}

func anyCovered(covered []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if covered[i] {
			return true
		}
	}

	return false
}

func markCovered(covered []bool, start, end int) {
	for i := start; i < end; i++ {
		covered[i] = true
	}
}

func sortMatchesByStart(matches []Match) {
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j-1].Start > matches[j].Start; j-- {
			matches[j-1], matches[j] = matches[j], matches[j-1]
		}
	}
}

// ExtractSkeleton returns the skeleton (literal runs interleaved with
// placeholder positions) and the ordered matches. Non-literal tokens'
// PlaceholderIndex references matches by index in the returned slice.
func (e *Extractor) ExtractSkeleton(text string) ([]SkeletonToken, []Match) {
	matches := e.FindMatches(text)
	if len(matches) == 0 {
		if text == "" {
			return nil, matches
		}

		return []SkeletonToken{{Literal: true, Text: text}}, matches
	}

	tokens := make([]SkeletonToken, 0, 2*len(matches)+1)
	lastEnd := 0

	for i, m := range matches {
		if m.Start > lastEnd {
			tokens = append(tokens, SkeletonToken{Literal: true, Text: text[lastEnd:m.Start]})
		}
		tokens = append(tokens, SkeletonToken{Literal: false, PlaceholderIndex: uint32(i)})
		lastEnd = m.End
	}

	if lastEnd < len(text) {
		tokens = append(tokens, SkeletonToken{Literal: true, Text: text[lastEnd:]})
	}

	return tokens, matches
}

// SkeletonToken is either a literal UTF-8 text run or a reference to the
// i-th accepted match. This is the in-memory shape of the on-disk Skeleton
// column token described in spec.md §6.2 (tag 0 = literal, tag 1 =
// placeholder index).
type SkeletonToken struct {
	Literal          bool
	Text             string
	PlaceholderIndex uint32
}

// Restore reconstructs the original text from a skeleton and a function
// resolving placeholder index to its replacement string. It is the
// language-neutral restore(skeleton, matches) contract from spec.md §4.1.
func Restore(tokens []SkeletonToken, resolve func(placeholderIndex uint32) string) string {
	var out []byte
	for _, tok := range tokens {
		if tok.Literal {
			out = append(out, tok.Text...)
		} else {
			out = append(out, resolve(tok.PlaceholderIndex)...)
		}
	}

	return string(out)
}
