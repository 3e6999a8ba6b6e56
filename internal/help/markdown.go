package help

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

var (
	mdLink   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	mdStrong = regexp.MustCompile(`\*\*([^*]+)\*\*|__([^_]+)__`)
	mdCode   = regexp.MustCompile("`([^`]+)`")
)

// Plain renders Markdown as terminal text: headings are emphasised, inline
// markup is dropped and fenced code is indented.
type Plain struct{}

func (Plain) Render(w io.Writer, source []byte) error {
	h1 := color.New(color.Bold, color.Underline)
	h2 := color.New(color.Bold)

	scanner := bufio.NewScanner(bytes.NewReader(source))
	inFence := false
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			fmt.Fprintln(w, "    "+line)
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "# "):
			h1.Fprintln(w, strings.ToUpper(inline(trimmed[2:])))
		case strings.HasPrefix(trimmed, "#"):
			h2.Fprintln(w, inline(strings.TrimLeft(trimmed, "# ")))
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			fmt.Fprintln(w, "  • "+inline(trimmed[2:]))
		default:
			fmt.Fprintln(w, inline(line))
		}
	}
	return scanner.Err()
}

func inline(s string) string {
	s = mdLink.ReplaceAllString(s, "$1 ($2)")
	s = mdStrong.ReplaceAllString(s, "$1$2")
	s = mdCode.ReplaceAllString(s, "$1")
	return s
}
