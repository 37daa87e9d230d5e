package libdiff

import (
	"fmt"
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Line is one line of a line diff.
type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return l.Op.Prefix() + l.Text
}

// DiffLines computes a line based diff from one text to another.
func DiffLines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffEqual:
			op = Equal
		}
		text := strings.TrimSuffix(diff.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Write writes lines to w, passing inserted and deleted lines through
// color when it is not nil.
func Write(w io.Writer, lines []Line, color func(Op, string) string) error {
	for _, l := range lines {
		s := l.String()
		if color != nil && l.Op != Equal {
			s = color(l.Op, s)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
