// Package shellquote renders argument vectors as shell text for humans to
// read or re-run. Nothing in aisa executes the rendered text; processes are
// always started from argv.
package shellquote

import (
	"bytes"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Join quotes every word so that a shell of the given variant expands the
// result back into exactly words.
func Join(words []string, lang syntax.LangVariant) (string, error) {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		q, err := syntax.Quote(w, lang)
		if err != nil {
			return "", fmt.Errorf("failed to quote %q: %w", w, err)
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " "), nil
}

// Line is one statement of a Script. Exactly one of Comment or Argv is set.
type Line struct {
	Comment string
	Argv    []string
}

// Script renders a bash script that changes into dir and runs every line,
// stopping at the first failure. The result is parsed back and reprinted so
// that only well-formed shell is ever returned.
func Script(dir string, lines []Line) (string, error) {
	var b strings.Builder
	b.WriteString("#!/usr/bin/env bash\nset -eu\n")
	cd, err := Join([]string{"cd", dir}, syntax.LangBash)
	if err != nil {
		return "", err
	}
	b.WriteString(cd + "\n")
	for _, l := range lines {
		if l.Comment != "" {
			for _, c := range strings.Split(l.Comment, "\n") {
				b.WriteString("# " + c + "\n")
			}
			continue
		}
		cmd, err := Join(l.Argv, syntax.LangBash)
		if err != nil {
			return "", err
		}
		b.WriteString(cmd + "\n")
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash), syntax.KeepComments(true))
	f, err := parser.Parse(strings.NewReader(b.String()), "")
	if err != nil {
		return "", fmt.Errorf("rendered script does not parse: %w", err)
	}
	var out bytes.Buffer
	if err := syntax.NewPrinter(syntax.Indent(2)).Print(&out, f); err != nil {
		return "", fmt.Errorf("failed to print script: %w", err)
	}
	return out.String(), nil
}
