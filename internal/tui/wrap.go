package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s         string
	width     int
	breakable bool
}

// buildStyledRunes colors each character of secret by class. Characters
// inside sep are rendered dim and are preferred wrap points.
func buildStyledRunes(secret, sep string) []styledRune {
	runes := []rune(secret)
	inSep := sepMask(runes, []rune(sep))
	out := make([]styledRune, 0, len(runes))
	for i, r := range runes {
		style := classStyle(r)
		if inSep[i] {
			style = sepStyle
		}
		out = append(out, styledRune{
			s:         style.Render(string(r)),
			width:     runewidth.RuneWidth(r),
			breakable: inSep[i] || r == ' ',
		})
	}
	return out
}

func sepMask(runes, sep []rune) []bool {
	mask := make([]bool, len(runes))
	if len(sep) == 0 {
		return mask
	}
	for i := 0; i+len(sep) <= len(runes); {
		if string(runes[i:i+len(sep)]) != string(sep) {
			i++
			continue
		}
		for j := range sep {
			mask[i+j] = true
		}
		i += len(sep)
	}
	return mask
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks after the last breakable rune that fits in width,
// or hard-wraps when a line has none.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastBreak := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			cut := len(line)
			if lastBreak >= 0 {
				cut = lastBreak + 1
			}
			out.WriteString(renderStyledRunes(line[:cut]))
			out.WriteRune('\n')
			line = append(line[:0:0], line[cut:]...)
			lineWidth = lineWidthOf(line)
			lastBreak = lastBreakIndex(line)
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.breakable {
			lastBreak = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastBreakIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].breakable {
			return i
		}
	}
	return -1
}
