package names

import (
	"cmp"
	"go/token"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
)

// visualize renders the method names of a table in a tabular format like
// below:
//
//	ok:   Exec  -> Exec // terminal
//	ok:   a     -> A
//	FAIL: b     -> B    // collides with b_
//	FAIL: b_    -> B    // collides with b
func visualize(t *Table) string {
	type row struct {
		method string
		entry  Entry
	}

	var rows []row
	for method, e := range t.methods.All() {
		rows = append(rows, row{method, e})
	}
	slices.SortStableFunc(rows, func(a, b row) int {
		if c := cmpValidWinsInvalid(a.entry.Pos, b.entry.Pos); c != 0 {
			return c
		}
		return cmpAboveWinsBelow(a.entry.Pos, b.entry.Pos)
	})

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 1, 1, 1, ' ', 0)

	for i, r := range rows {
		if i != 0 {
			io.WriteString(tw, "\n")
		}

		var others []string
		for _, o := range t.Owners(r.method) {
			if o != r.entry {
				others = append(others, o.Name)
			}
		}

		if len(others) == 0 {
			io.WriteString(tw, "ok:\t")
		} else {
			io.WriteString(tw, "FAIL:\t")
		}

		io.WriteString(tw, r.entry.Name)
		io.WriteString(tw, "\t->\t")
		io.WriteString(tw, r.method)

		var reasons []string
		if r.entry.Kind == Terminal {
			reasons = append(reasons, "terminal")
		}
		if len(others) != 0 {
			reasons = append(reasons, "collides with "+strings.Join(others, ", "))
		}
		if len(reasons) != 0 {
			io.WriteString(tw, "\t// ")
			io.WriteString(tw, strings.Join(reasons, ", "))
		}
	}

	tw.Flush()
	return b.String()
}

func cmpValidWinsInvalid(a, b token.Pos) int {
	if a.IsValid() && !b.IsValid() {
		return -1
	}
	if !a.IsValid() && b.IsValid() {
		return 1
	}
	return 0
}

func cmpAboveWinsBelow(a, b token.Pos) int {
	return cmp.Compare(a, b)
}
