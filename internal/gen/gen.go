// Package gen renders sized bit-set sources from the canonical instance by
// textual token substitution.
//
// The canonical bitset128.go is written so that exactly three tokens encode
// its size: the bit count (which also names the type and its helpers), the
// word-count literal in the Words constant, and everything derived from
// those two. Rewriting them yields a compiling, behaviorally identical
// source for any other word count.
package gen

import (
	"fmt"
	"strconv"
	"strings"
)

// header marks rendered files per the convention understood by go tooling.
const header = "// Code generated by fixbitsgen; DO NOT EDIT.\n\n"

// Render rewrites src, the canonical bit-set source written for srcWords
// 32-bit words, into the equivalent source for dstWords words.
// //go:generate directives are stripped from the output and a generated-file
// header is prepended.
func Render(src []byte, srcWords, dstWords int) ([]byte, error) {
	if srcWords <= 0 || dstWords <= 0 {
		return nil, fmt.Errorf("word counts must be positive: src=%d dst=%d", srcWords, dstWords)
	}
	if srcWords == dstWords {
		return nil, fmt.Errorf("destination word count %d equals the source's", dstWords)
	}

	srcBits := strconv.Itoa(srcWords * 32)
	dstBits := strconv.Itoa(dstWords * 32)
	text := string(src)
	if !strings.Contains(text, srcBits) {
		return nil, fmt.Errorf("source never mentions its bit count %s", srcBits)
	}

	var sb strings.Builder
	for line := range strings.Lines(text) {
		if strings.HasPrefix(line, "//go:generate") {
			continue
		}
		// Bit count first: it turns BitSet<bits>Words = 4 into the
		// destination name before the word-count literal is rewritten.
		line = strings.ReplaceAll(line, srcBits, dstBits)
		line = strings.ReplaceAll(line,
			fmt.Sprintf("Words = %d", srcWords),
			fmt.Sprintf("Words = %d", dstWords))
		sb.WriteString(line)
	}

	// Dropping a directive line can leave two blank lines back to back.
	out := sb.String()
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}
	return []byte(header + out), nil
}
