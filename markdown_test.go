// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// convertTests are end-to-end conversions with the default configuration.
var convertTests = []struct {
	name string
	in   string
	out  string
}{
	{
		"atx heading",
		"# Hello",
		"<h1>Hello</h1>\n",
	},
	{
		"setext heading",
		"Title\n=====",
		"<h1>Title</h1>\n",
	},
	{
		"emphasis and strong",
		"*em* and **strong**",
		"<p><em>em</em> and <strong>strong</strong></p>\n",
	},
	{
		"strikethrough",
		"~~gone~~",
		"<p><del>gone</del></p>\n",
	},
	{
		"fenced code with info",
		"```js\nlet x=1;\n```",
		"<pre><code class=\"language-js\">let x=1;\n</code></pre>\n",
	},
	{
		"indented code",
		"    x := 1\n    y := 2",
		"<pre><code>x := 1\ny := 2\n</code></pre>\n",
	},
	{
		"reference link with title",
		"[hi]: /u \"t\"\n\n[hi]",
		"<p><a href=\"/u\" title=\"t\">hi</a></p>\n",
	},
	{
		"block quote",
		"> a\n> b",
		"<blockquote>\n<p>a\nb</p>\n</blockquote>\n",
	},
	{
		"thematic break",
		"---",
		"<hr />\n",
	},
	{
		"hard break with spaces",
		"a  \nb",
		"<p>a<br />\nb</p>\n",
	},
	{
		"hard break with backslash",
		"a\\\nb",
		"<p>a<br />\nb</p>\n",
	},
	{
		"backslash escape",
		`\*not em\*`,
		"<p>*not em*</p>\n",
	},
	{
		"code span",
		"`` `x` ``",
		"<p><code>`x`</code></p>\n",
	},
	{
		"autolink uri",
		"<https://example.com/a?b=c>",
		"<p><a href=\"https://example.com/a?b=c\">https://example.com/a?b=c</a></p>\n",
	},
	{
		"autolink email",
		"<who@example.com>",
		"<p><a href=\"mailto:who@example.com\">who@example.com</a></p>\n",
	},
	{
		"entities",
		"&amp; &#35; &bogus;",
		"<p>&amp; # &amp;bogus;</p>\n",
	},
	{
		"image with flattened alt",
		"![alt *em*](/img.png \"t\")",
		"<p><img src=\"/img.png\" alt=\"alt em\" title=\"t\" /></p>\n",
	},
	{
		"ordered list start",
		"3. a\n4. b",
		"<ol start=\"3\">\n<li>a</li>\n<li>b</li>\n</ol>\n",
	},
	{
		"table with alignment",
		"|a|b|\n|-|:-:|\n|1|2|",
		"<table>\n<thead>\n<tr>\n<th>a</th>\n<th align=\"center\">b</th>\n</tr>\n</thead>\n<tbody>\n<tr>\n<td>1</td>\n<td align=\"center\">2</td>\n</tr></tbody></table>\n",
	},
	{
		"table without body",
		"|a|b|\n|-|-|",
		"<table>\n<thead>\n<tr>\n<th>a</th>\n<th>b</th>\n</tr>\n</thead></table>\n",
	},
	{
		"filtered inline tag",
		"a <title>x",
		"<p>a &lt;title>x</p>\n",
	},
}

func TestConvert(t *testing.T) {
	for _, tt := range convertTests {
		t.Run(tt.name, func(t *testing.T) {
			var p Parser
			out := ToHTML(p.Parse(tt.in))
			if diff := cmp.Diff(tt.out, out); diff != "" {
				t.Errorf("ToHTML(Parse(%q)) mismatch (-want +have):\n%s", tt.in, diff)
			}
		})
	}
}

// Repeated and concurrent conversions of the same input must agree.
func TestDeterminism(t *testing.T) {
	const in = "# h\n\n- a\n- *b*\n\n[x]: /u\n\n[x] and `code`\n\n|a|b|\n|-|-|\n|1|2|\n"
	var p Parser
	want := ToHTML(p.Parse(in))

	var wg sync.WaitGroup
	out := make([]string, 16)
	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var p Parser
			out[i] = ToHTML(p.Parse(in))
		}(i)
	}
	wg.Wait()
	for i := range out {
		if out[i] != want {
			t.Fatalf("conversion %d disagrees:\nhave %q\nwant %q", i, out[i], want)
		}
	}
}

// Literal <, >, ", and & must never survive unescaped in text,
// code spans, or code blocks.
var escapeTests = []struct {
	in  string
	out string
}{
	{"a < b & c > d", "<p>a &lt; b &amp; c &gt; d</p>\n"},
	{`say "hi"`, "<p>say &quot;hi&quot;</p>\n"},
	{"`<script>&`", "<p><code>&lt;script&gt;&amp;</code></p>\n"},
	{"    <x> & \"y\"", "<pre><code>&lt;x&gt; &amp; &quot;y&quot;\n</code></pre>\n"},
	{"```\n<x>\n```", "<pre><code>&lt;x&gt;\n</code></pre>\n"},
}

func TestEscapeCompleteness(t *testing.T) {
	for _, tt := range escapeTests {
		var p Parser
		out := ToHTML(p.Parse(tt.in))
		if diff := cmp.Diff(tt.out, out); diff != "" {
			t.Errorf("ToHTML(Parse(%q)) mismatch (-want +have):\n%s", tt.in, diff)
		}
	}
}

// A reference label must resolve regardless of case and
// internal whitespace.
var labelTests = []string{
	"[hello world]",
	"[HELLO WORLD]",
	"[Hello   World]",
	"[hello\tworld]",
}

func TestReferenceNormalization(t *testing.T) {
	for _, use := range labelTests {
		in := "[Hello World]: /u\n\n" + use
		var p Parser
		out := ToHTML(p.Parse(in))
		want := "<p><a href=\"/u\">" + strings.Trim(use, "[]") + "</a></p>\n"
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("ToHTML(Parse(%q)) mismatch (-want +have):\n%s", in, diff)
		}
	}
}

func TestFirstReferenceWins(t *testing.T) {
	in := "[x]: /first\n[x]: /second\n\n[x]"
	var p Parser
	doc := p.Parse(in)
	if link := doc.Links["x"]; link == nil || link.URL != "/first" {
		t.Fatalf("Links[%q] = %+v, want URL /first", "x", doc.Links["x"])
	}
	out := ToHTML(doc)
	want := "<p><a href=\"/first\">x</a></p>\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("ToHTML mismatch (-want +have):\n%s", diff)
	}
}

var tightnessTests = []struct {
	name string
	in   string
	out  string
}{
	{
		"tight",
		"- a\n- b",
		"<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
	},
	{
		"loose between items",
		"- a\n\n- b",
		"<ul>\n<li>\n<p>a</p>\n</li>\n<li>\n<p>b</p>\n</li>\n</ul>\n",
	},
	{
		"loose inside item",
		"- a\n\n  b\n- c",
		"<ul>\n<li>\n<p>a</p>\n<p>b</p>\n</li>\n<li>\n<p>c</p>\n</li>\n</ul>\n",
	},
}

func TestListTightness(t *testing.T) {
	for _, tt := range tightnessTests {
		t.Run(tt.name, func(t *testing.T) {
			var p Parser
			out := ToHTML(p.Parse(tt.in))
			if diff := cmp.Diff(tt.out, out); diff != "" {
				t.Errorf("ToHTML(Parse(%q)) mismatch (-want +have):\n%s", tt.in, diff)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	for _, in := range []string{"hello", "HELLOworld", "abcXYZ"} {
		var p Parser
		out := ToHTML(p.Parse(in))
		if want := "<p>" + in + "</p>\n"; out != want {
			t.Errorf("ToHTML(Parse(%q)) = %q, want %q", in, out, want)
		}
	}
}

// Every rendered table row must have exactly as many cells as the
// delimiter row has columns: short rows are padded, long rows truncated.
func TestTableColumnConformance(t *testing.T) {
	in := "|a|b|c|\n|-|-|-|\n|1|2|\n|1|2|3|4|"
	var p Parser
	doc := p.Parse(in)
	var tbl *Table
	for _, b := range doc.Blocks {
		if t, ok := b.(*Table); ok {
			tbl = t
			break
		}
	}
	if tbl == nil {
		t.Fatalf("no *Table in %s", dump(doc))
	}
	for i, row := range tbl.Rows {
		if len(row) != len(tbl.Align) {
			t.Errorf("row %d has %d cells, want %d", i, len(row), len(tbl.Align))
		}
	}
	out := ToHTML(doc)
	want := "<table>\n<thead>\n<tr>\n<th>a</th>\n<th>b</th>\n<th>c</th>\n</tr>\n</thead>\n<tbody>\n" +
		"<tr>\n<td>1</td>\n<td>2</td>\n<td></td>\n</tr>\n" +
		"<tr>\n<td>1</td>\n<td>2</td>\n<td>3</td>\n</tr></tbody></table>\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("ToHTML mismatch (-want +have):\n%s", diff)
	}
}

var configTests = []struct {
	name string
	p    Parser
	in   string
	out  string
}{
	{
		"default escapes text",
		Parser{},
		"a < b",
		"<p>a &lt; b</p>\n",
	},
	{
		"NoEscape keeps text",
		Parser{NoEscape: true},
		"a < b",
		"<p>a < b</p>\n",
	},
	{
		"default keeps raw html",
		Parser{},
		"<em>hi</em>",
		"<p><em>hi</em></p>\n",
	},
	{
		"NoRawHTML escapes inline tags",
		Parser{NoRawHTML: true},
		"<em>hi</em>",
		"<p>&lt;em&gt;hi&lt;/em&gt;</p>\n",
	},
	{
		"NoRawHTML escapes html blocks",
		Parser{NoRawHTML: true},
		"<div>\nx\n</div>",
		"&lt;div&gt;\nx\n&lt;/div&gt;\n",
	},
}

func TestConfig(t *testing.T) {
	for _, tt := range configTests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			out := ToHTML(p.Parse(tt.in))
			if diff := cmp.Diff(tt.out, out); diff != "" {
				t.Errorf("ToHTML(Parse(%q)) mismatch (-want +have):\n%s", tt.in, diff)
			}
		})
	}
}

func TestCRLF(t *testing.T) {
	in := "# h\r\n\r\npara one\r\nline two\r\n"
	var p Parser
	out := ToHTML(p.Parse(in))
	want := "<h1>h</h1>\n<p>para one\nline two</p>\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("ToHTML mismatch (-want +have):\n%s", diff)
	}
}

func TestNUL(t *testing.T) {
	var p Parser
	out := ToHTML(p.Parse("a\x00b"))
	want := "<p>a�b</p>\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("ToHTML mismatch (-want +have):\n%s", diff)
	}
}
