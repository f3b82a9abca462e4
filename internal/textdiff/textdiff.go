// Package textdiff computes line-level diffs between two texts using
// longest-common-subsequence alignment. It is sized for template files
// (hundreds of lines); the DP table is O(m*n) and not meant for large
// file diffing.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/shotforge/shotforge/internal/format"
)

// Kind classifies a single diff operation.
type Kind int

const (
	Same Kind = iota
	Add
	Remove
)

// Op is one line of a computed diff. Line is 1-based and refers to the
// line's position in its own original sequence: the old text for Same and
// Remove, the new text for Add.
type Op struct {
	Kind Kind
	Line int
	Text string
}

// Diff aligns oldText and newText line by line. Both texts are split on
// newline, so an empty string is a single empty line, not zero lines —
// diff("", "a") yields one Remove("") and one Add("a").
func Diff(oldText, newText string) []Op {
	oldLines := strings.Split(oldText, "\n")
	newLines := strings.Split(newText, "\n")

	pairs := lcsPairs(oldLines, newLines)

	ops := make([]Op, 0, len(oldLines)+len(newLines))
	i, j := 0, 0
	for _, p := range pairs {
		for ; i < p.old; i++ {
			ops = append(ops, Op{Kind: Remove, Line: i + 1, Text: oldLines[i]})
		}
		for ; j < p.new; j++ {
			ops = append(ops, Op{Kind: Add, Line: j + 1, Text: newLines[j]})
		}
		ops = append(ops, Op{Kind: Same, Line: i + 1, Text: oldLines[i]})
		i++
		j++
	}
	for ; i < len(oldLines); i++ {
		ops = append(ops, Op{Kind: Remove, Line: i + 1, Text: oldLines[i]})
	}
	for ; j < len(newLines); j++ {
		ops = append(ops, Op{Kind: Add, Line: j + 1, Text: newLines[j]})
	}
	return ops
}

type pair struct {
	old, new int
}

// lcsPairs computes the LCS of a and b via dynamic programming and
// backtracks to the list of matched index pairs, in order.
func lcsPairs(a, b []string) []pair {
	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	var rev []pair
	i, j := m, n
	for i > 0 && j > 0 {
		if a[i-1] == b[j-1] {
			rev = append(rev, pair{old: i - 1, new: j - 1})
			i--
			j--
		} else if dp[i-1][j] > dp[i][j-1] {
			i--
		} else {
			j--
		}
	}

	pairs := make([]pair, len(rev))
	for k, p := range rev {
		pairs[len(rev)-1-k] = p
	}
	return pairs
}

// HasDifferences reports whether two texts differ at all. Direct string
// comparison, case- and whitespace-sensitive; no diff is computed.
func HasDifferences(a, b string) bool {
	return a != b
}

// CountChanges tallies the added and removed lines in a computed diff.
func CountChanges(ops []Op) (additions, removals int) {
	for _, op := range ops {
		switch op.Kind {
		case Add:
			additions++
		case Remove:
			removals++
		}
	}
	return additions, removals
}

// FormatDiff renders ops as colorized hunks for terminal display, with up
// to contextLines unchanged lines around each change and an ellipsis
// between non-adjacent hunks. Returns "" when nothing changed.
func FormatDiff(ops []Op, contextLines int) string {
	keep := make([]bool, len(ops))
	any := false
	for i, op := range ops {
		if op.Kind == Same {
			continue
		}
		any = true
		lo := i - contextLines
		if lo < 0 {
			lo = 0
		}
		hi := i + contextLines
		if hi >= len(ops) {
			hi = len(ops) - 1
		}
		for k := lo; k <= hi; k++ {
			keep[k] = true
		}
	}
	if !any {
		return ""
	}

	var out []string
	prev := -1
	for i, op := range ops {
		if !keep[i] {
			continue
		}
		if prev >= 0 && i != prev+1 {
			out = append(out, format.Dim+"  ..."+format.Reset)
		}
		prev = i
		switch op.Kind {
		case Add:
			out = append(out, fmt.Sprintf("%s+ %4d %s%s", format.Green, op.Line, op.Text, format.Reset))
		case Remove:
			out = append(out, fmt.Sprintf("%s- %4d %s%s", format.Red, op.Line, op.Text, format.Reset))
		default:
			out = append(out, fmt.Sprintf("%s  %4d %s%s", format.Dim, op.Line, op.Text, format.Reset))
		}
	}
	return strings.Join(out, "\n")
}
