package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindMatchesPriority(t *testing.T) {
	e := New()
	text := "2024-01-15T10:30:45Z"

	matches := e.FindMatches(text)
	require.Len(t, matches, 1)
	require.Equal(t, Timestamp, matches[0].Kind)
}

func TestFindMatchesMixedLog(t *testing.T) {
	e := New()
	text := "2024-01-15 10:30:45 INFO User john@example.com logged in from 192.168.1.100"

	matches := e.FindMatches(text)
	kinds := make(map[Kind]bool)
	for _, m := range matches {
		kinds[m.Kind] = true
	}

	require.True(t, kinds[Timestamp])
	require.True(t, kinds[LogLevel])
	require.True(t, kinds[Email])
	require.True(t, kinds[IPv4])
}

func TestExtractSkeletonRoundTrip(t *testing.T) {
	e := New()
	text := "IP: 192.168.1.100 at 10:30:45"

	tokens, matches := e.ExtractSkeleton(text)

	hasPlaceholder := false
	for _, tok := range tokens {
		if !tok.Literal {
			hasPlaceholder = true
		}
		require.NotContains(t, tok.Text, "192.168.1.100")
	}
	require.True(t, hasPlaceholder)

	restored := Restore(tokens, func(i uint32) string { return matches[i].Text })
	require.Equal(t, text, restored)
}

func TestExtractSkeletonNoMatches(t *testing.T) {
	e := New()
	text := "plain text with nothing special"

	tokens, matches := e.ExtractSkeleton(text)
	require.Empty(t, matches)
	require.Equal(t, text, Restore(tokens, func(uint32) string { return "" }))
}

func TestExtractSkeletonEmpty(t *testing.T) {
	e := New()
	tokens, matches := e.ExtractSkeleton("")
	require.Empty(t, tokens)
	require.Empty(t, matches)
}

func TestCoverageNonOverlap(t *testing.T) {
	e := New()
	// A bare date should not also match as a separate number/path.
	text := "2024-01-15"
	matches := e.FindMatches(text)
	require.Len(t, matches, 1)
	require.Equal(t, Date, matches[0].Kind)
}
