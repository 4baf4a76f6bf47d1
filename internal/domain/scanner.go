// Package domain holds the strip algorithm and the run orchestration logic.
package domain

import (
	"errors"
	"regexp"
	"strings"

	m "github.com/mouse-blink/detest/internal/model"
)

// testAttrPattern anchors the attribute that marks a test-only module. The
// attribute line itself never carries braces that need counting.
var testAttrPattern = regexp.MustCompile(`^\s*#\[cfg\(test\)\]`)

// ErrUnterminatedBlock reports a test module whose closing brace was never
// found before end of file. The file is left untouched in that case.
var ErrUnterminatedBlock = errors.New("unterminated test module")

// Scanner removes #[cfg(test)] modules from Rust source text.
type Scanner interface {
	// Strip returns the text with every top-level test module removed and
	// whether any removal occurred.
	Strip(text string) (m.StripResult, error)

	// Count reports how many test modules Strip would remove.
	Count(text string) (int, error)
}

type scanner struct{}

// NewScanner constructs the line-oriented Scanner implementation.
func NewScanner() Scanner {
	return &scanner{}
}

// Strip walks the input line by line. Outside a test block, lines are copied
// through verbatim; the attribute line flips the scanner into block mode and
// is dropped. Inside a block every line is dropped, including the one that
// carries the closing brace, which is found by counting brace depth with
// lexical context so braces in strings and comments do not miscount.
func (s *scanner) Strip(text string) (m.StripResult, error) {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))

	var (
		inTestBlock bool
		depth       int
		blocks      int
		lex         lexState
	)

	for _, line := range lines {
		if !inTestBlock {
			if testAttrPattern.MatchString(line) {
				inTestBlock = true
				depth = 0
				blocks++
				lex = lexState{}

				continue
			}

			kept = append(kept, line)

			continue
		}

		if countBraces(line, &lex, &depth) {
			inTestBlock = false
		}
		// The line is dropped either way, closing-brace line included.
	}

	if inTestBlock {
		return m.StripResult{Text: text}, ErrUnterminatedBlock
	}

	out := strings.Join(kept, "\n")

	return m.StripResult{
		Modified: out != text,
		Text:     out,
		Blocks:   blocks,
	}, nil
}

// Count runs the same scan without producing output text.
func (s *scanner) Count(text string) (int, error) {
	result, err := s.Strip(text)
	if err != nil {
		return 0, err
	}

	return result.Blocks, nil
}
