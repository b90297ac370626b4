// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Markdown converts Markdown to HTML.
//
// Usage:
//
//	markdown [-e] [-k] [file...]
//
// Markdown reads the named files, or else standard input, as Markdown
// documents and prints the corresponding HTML fragments to standard output.
//
// The -e (--escape) flag controls the HTML escaping of <, >, ", and &
// in literal text; --no-escape turns it off. The -k (--keep-html) flag
// controls whether raw HTML in the input is copied through verbatim;
// --no-keep-html escapes it instead. Both default to on.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mdconv/markdown"
)

var (
	escape     = flag.Bool("escape", true, "HTML-escape <, >, \", and & in literal text")
	noEscape   = flag.Bool("no-escape", false, "do not escape literal text")
	keepHTML   = flag.Bool("keep-html", true, "copy raw HTML through to the output")
	noKeepHTML = flag.Bool("no-keep-html", false, "escape raw HTML instead of keeping it")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: markdown [-e] [-k] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("markdown: ")
	log.SetFlags(0)

	flag.BoolVar(escape, "e", true, "shorthand for -escape")
	flag.BoolVar(keepHTML, "k", true, "shorthand for -keep-html")
	flag.Usage = usage
	flag.Parse()

	p := markdown.Parser{
		NoEscape:  *noEscape || !*escape,
		NoRawHTML: *noKeepHTML || !*keepHTML,
	}

	args := flag.Args()
	if len(args) == 0 {
		do(&p, os.Stdin)
		return
	}
	for _, arg := range args {
		f, err := os.Open(arg)
		if err != nil {
			log.Fatal(err)
		}
		do(&p, f)
		f.Close()
	}
}

func do(p *markdown.Parser, f *os.File) {
	data, err := io.ReadAll(f)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.WriteString(markdown.ToHTML(p.Parse(string(data))))
}
