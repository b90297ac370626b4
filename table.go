// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
)

// A Table is a [Block] representing a [pipe table].
// Every row has exactly len(Align) cells: the delimiter row fixes the
// column count, short rows are padded with empty cells, and extra
// cells are discarded.
//
// [pipe table]: https://github.github.com/gfm/#tables-extension-
type Table struct {
	Position
	Header []*Text
	Align  []string // "left", "center", "right", or "" for unset
	Rows   [][]*Text
}

func (*Table) Block() {}

func (t *Table) printHTML(p *printer) {
	p.html("<table>\n<thead>\n<tr>\n")
	for i, hdr := range t.Header {
		t.printCellHTML(p, "th", i, hdr)
	}
	p.html("</tr>\n</thead>")
	if len(t.Rows) > 0 {
		p.html("\n<tbody>\n")
		for i, row := range t.Rows {
			if i > 0 {
				p.html("\n")
			}
			p.html("<tr>\n")
			for j, cell := range row {
				t.printCellHTML(p, "td", j, cell)
			}
			p.html("</tr>")
		}
		p.html("</tbody>")
	}
	p.html("</table>\n")
}

func (t *Table) printCellHTML(p *printer, tag string, col int, cell *Text) {
	p.html("<", tag)
	if col < len(t.Align) && t.Align[col] != "" {
		p.html(` align="`, t.Align[col], `"`)
	}
	p.html(">")
	cell.printHTML(p)
	p.html("</", tag, ">\n")
}

func isTableSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f'
}

func tableTrimSpace(s string) string {
	i := 0
	for i < len(s) && isTableSpace(s[i]) {
		i++
	}
	j := len(s)
	for j > i && isTableSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

// tableTrimOuter trims the optional outer pipes (and outer spaces)
// from a table row.
func tableTrimOuter(row string) string {
	row = tableTrimSpace(row)
	if len(row) > 0 && row[0] == '|' {
		row = row[1:]
	}
	if len(row) > 0 && row[len(row)-1] == '|' {
		row = row[:len(row)-1]
	}
	return row
}

// isTableStart reports whether delim is a valid delimiter row
// whose column count matches the header row hdr.
func isTableStart(hdr, delim string) bool {
	// Scan potential delimiter string, counting columns.
	// This happens on every line of text,
	// so make it relatively quick - nothing expensive.
	col := 0
	delim = tableTrimOuter(delim)
	i := 0
	for ; ; col++ {
		for i < len(delim) && isTableSpace(delim[i]) {
			i++
		}
		if i >= len(delim) {
			break
		}
		if i < len(delim) && delim[i] == ':' {
			i++
		}
		if i >= len(delim) || delim[i] != '-' {
			return false
		}
		i++
		for i < len(delim) && delim[i] == '-' {
			i++
		}
		if i < len(delim) && delim[i] == ':' {
			i++
		}
		for i < len(delim) && isTableSpace(delim[i]) {
			i++
		}
		if i < len(delim) && delim[i] == '|' {
			i++
		}
	}
	return col == tableCount(tableTrimOuter(hdr))
}

// tableCount returns the number of columns in the row,
// which has already been trimmed by tableTrimOuter.
func tableCount(row string) int {
	// A pipe preceded by a backslash is escaped and does not
	// separate columns, however many backslashes come before it.
	col := 1
	for i := 0; i < len(row); i++ {
		if row[i] == '|' && (i == 0 || row[i-1] != '\\') {
			col++
		}
	}
	return col
}

// A tableBuilder accumulates the rows of one table.
// It is not a [blockBuilder]: the enclosing [paraBuilder] feeds it
// lines, because a table begins as an ordinary paragraph whose second
// line turns out to be a delimiter row.
type tableBuilder struct {
	hdr   string
	delim string
	rows  []string
}

func (b *tableBuilder) start(hdr, delim string) {
	b.hdr = tableTrimOuter(hdr)
	b.delim = tableTrimOuter(delim)
}

func (b *tableBuilder) addRow(row string) {
	b.rows = append(b.rows, tableTrimOuter(row))
}

func (b *tableBuilder) build(p buildState) Block {
	pos := p.pos()
	pos.StartLine-- // builder does not count header
	pos.EndLine = pos.StartLine + 1 + len(b.rows)
	t := &Table{
		Position: pos,
	}
	width := tableCount(b.hdr)
	t.Header = b.parseRow(p, b.hdr, pos.StartLine, width)
	t.Align = b.parseAlign(b.delim, width)
	t.Rows = make([][]*Text, len(b.rows))
	for i, row := range b.rows {
		t.Rows[i] = b.parseRow(p, row, pos.StartLine+2+i, width)
	}
	return t
}

// parseRow splits the row into exactly width cell texts.
func (b *tableBuilder) parseRow(p buildState, row string, line int, width int) []*Text {
	out := make([]*Text, 0, width)
	pos := Position{StartLine: line, EndLine: line}
	start := 0
	unesc := nop
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c == '\\' && i+1 < len(row) && row[i+1] == '|' {
			// Need to rewrite escaped pipe to pipe in cell.
			unesc = tableUnescape
			i++
			continue
		}
		if c == '|' {
			out = append(out, p.newText(pos, unesc(strings.Trim(row[start:i], " \t\v\f"))))
			if len(out) == width {
				// Extra cells are discarded!
				return out
			}
			start = i + 1
			unesc = nop
		}
	}
	out = append(out, p.newText(pos, unesc(strings.Trim(row[start:], " \t\v\f"))))
	for len(out) < width {
		// Missing cells are considered empty.
		out = append(out, p.newText(pos, ""))
	}
	return out
}

func nop(text string) string {
	return text
}

func tableUnescape(text string) string {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\\' && i+1 < len(text) && text[i+1] == '|' {
			i++
			c = '|'
		}
		out = append(out, c)
	}
	return string(out)
}

func (b *tableBuilder) parseAlign(delim string, n int) []string {
	align := make([]string, 0, tableCount(delim))
	start := 0
	for i := 0; i < len(delim); i++ {
		if delim[i] == '|' {
			align = append(align, tableAlign(delim[start:i]))
			start = i + 1
		}
	}
	align = append(align, tableAlign(delim[start:]))
	return align
}

func tableAlign(cell string) string {
	cell = tableTrimSpace(cell)
	l := cell[0] == ':'
	r := cell[len(cell)-1] == ':'
	switch {
	case l && r:
		return "center"
	case l:
		return "left"
	case r:
		return "right"
	}
	return ""
}
