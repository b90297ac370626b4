// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"bytes"
	"strings"
)

// ToHTML returns the HTML rendering of the block b.
// The result is an HTML fragment: block elements separated by
// single newlines, with no surrounding <html> wrapper.
func ToHTML(b Block) string {
	var p printer
	b.printHTML(&p)
	return p.buf.String()
}

// A printer accumulates the HTML output during a tree walk.
// The noEscape and noRawHTML flags are copied from the [Document]
// being rendered; see [Parser].
type printer struct {
	buf       bytes.Buffer
	noEscape  bool
	noRawHTML bool
}

func (p *printer) Write(text []byte) (int, error) {
	return p.buf.Write(text)
}

func (p *printer) WriteString(s string) (int, error) {
	return p.buf.WriteString(s)
}

// html writes HTML generated by the renderer itself,
// such as the <p> and </p> around a paragraph.
// It is never escaped.
func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// text writes literal document text, escaped unless the parser
// was configured otherwise.
func (p *printer) text(list ...string) {
	if p.noEscape {
		for _, s := range list {
			p.buf.WriteString(s)
		}
		return
	}
	for _, s := range list {
		htmlEscaper.WriteString(&p.buf, s)
	}
}

// raw writes raw HTML copied from the document.
// It passes through verbatim unless the parser was configured
// to escape raw HTML instead.
func (p *printer) raw(s string) {
	if p.noRawHTML {
		htmlEscaper.WriteString(&p.buf, s)
		return
	}
	p.buf.WriteString(s)
}

// htmlEscaper escapes the characters that terminate or alter
// HTML text and attribute content.
var htmlEscaper = strings.NewReplacer(
	`"`, "&quot;",
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// htmlLinkEscaper percent-encodes the characters that cannot appear
// literally in an href or src attribute, leaving the URL-reserved
// characters @ : + ? = & ( ) % # * , / alone.
// The ampersand becomes &amp; rather than %26 so that query strings
// survive the round trip through the attribute.
var htmlLinkEscaper = strings.NewReplacer(
	`"`, "%22",
	"&", "&amp;",
	"<", "%3C",
	">", "%3E",
	`\`, "%5C",
	" ", "%20",
	"`", "%60",
	"[", "%5B",
	"]", "%5D",
	"^", "%5E",
	"{", "%7B",
	"}", "%7D",
	"|", "%7C",
	"'", "%27",
	"!", "%21",
	";", "%3B",
	"$", "%24",
)
