package format

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const maxSideBySideRows = 40

// SideBySide renders the local and upstream versions of a template file in
// two bordered columns, deleted lines on the left and inserted lines on
// the right. Used by the upgrade display when the side-by-side flag is set.
func SideBySide(localText, upstreamText string) string {
	colW := (TermWidth() - 7) / 2
	if colW < 20 {
		colW = 20
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(localText, upstreamText, true))

	type row struct {
		left, right *string
	}
	var rows []row
	var delBuf, insBuf []string

	flush := func() {
		n := len(delBuf)
		if len(insBuf) > n {
			n = len(insBuf)
		}
		for i := 0; i < n; i++ {
			var r row
			if i < len(delBuf) {
				r.left = &delBuf[i]
			}
			if i < len(insBuf) {
				r.right = &insBuf[i]
			}
			rows = append(rows, r)
		}
		delBuf, insBuf = nil, nil
	}

	for _, d := range diffs {
		lines := strings.Split(strings.ReplaceAll(d.Text, "\t", "    "), "\n")
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			for i := range lines {
				rows = append(rows, row{left: &lines[i], right: &lines[i]})
			}
		case diffmatchpatch.DiffDelete:
			delBuf = append(delBuf, lines...)
		case diffmatchpatch.DiffInsert:
			insBuf = append(insBuf, lines...)
		}
	}
	flush()

	total := len(rows)
	if total > maxSideBySideRows {
		rows = rows[:maxSideBySideRows]
	}

	var out []string
	lblL, lblR := "─ Local ", "─ Upstream "
	out = append(out, fmt.Sprintf("┌%s%s┬%s%s┐",
		lblL, strings.Repeat("─", colW+2-runeLen(lblL)),
		lblR, strings.Repeat("─", colW+2-runeLen(lblR))))

	blank := strings.Repeat(" ", colW)
	for _, r := range rows {
		left, right := blank, blank
		lColor, rColor := "", ""
		switch {
		case r.left != nil && r.right != nil && r.left == r.right:
			left, right = padOrTrunc(*r.left, colW), padOrTrunc(*r.right, colW)
			lColor, rColor = Dim, Dim
		default:
			if r.left != nil {
				left, lColor = padOrTrunc(*r.left, colW), Red
			}
			if r.right != nil {
				right, rColor = padOrTrunc(*r.right, colW), Green
			}
		}
		out = append(out, fmt.Sprintf("│ %s%s%s │ %s%s%s │",
			lColor, left, Reset, rColor, right, Reset))
	}

	out = append(out, fmt.Sprintf("└%s┴%s┘",
		strings.Repeat("─", colW+2), strings.Repeat("─", colW+2)))

	if total > maxSideBySideRows {
		out = append(out, fmt.Sprintf("  %s… %d more lines not shown%s",
			Dim, total-maxSideBySideRows, Reset))
	}
	return strings.Join(out, "\n")
}

func padOrTrunc(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}

func runeLen(s string) int {
	return len([]rune(s))
}
