package domain

import (
	"regexp"
	"strings"

	"github.com/fatih/camelcase"
)

// StepKind discriminates the transformation variants a rule step can take.
type StepKind int

const (
	// StepReplace rewrites every regex match across the whole file text.
	StepReplace StepKind = iota
	// StepInsertBefore inserts a directive line above each matching line,
	// preserving the line's indentation.
	StepInsertBefore
	// StepWrapCase wraps declarations that follow a case label in an
	// explicit block scope.
	StepWrapCase
)

// Step is a single tagged-variant transformation record. Which fields are
// meaningful depends on Kind: StepReplace uses Pattern/Replace/KeepIf,
// StepInsertBefore uses Pattern/Directive, StepWrapCase uses none.
type Step struct {
	Kind StepKind

	// Pattern selects the text (StepReplace) or lines (StepInsertBefore)
	// the step operates on.
	Pattern *regexp.Regexp

	// Replace is the expansion applied to each match for StepReplace.
	Replace string

	// KeepIf leaves a match untouched when it also matches this pattern.
	// Used to carve exceptions out of a broad match (e.g. any[]).
	KeepIf *regexp.Regexp

	// Directive is the comment line inserted by StepInsertBefore.
	Directive string
}

// Rule is a named, idempotent text-to-text transformation targeting one
// lint complaint. Rules are pure: output depends only on the input text.
type Rule struct {
	// ID is the Go-style identifier; Name derives the kebab-case form
	// used in config files and CLI flags.
	ID          string
	Description string

	// Experimental rules are excluded from the default set and must be
	// enabled explicitly.
	Experimental bool

	Steps []Step
}

// Name returns the kebab-case rule name derived from ID.
func (r Rule) Name() string {
	words := camelcase.Split(r.ID)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// Apply runs every step in declared order, each consuming the previous
// step's output.
func (r Rule) Apply(text string) string {
	for _, st := range r.Steps {
		text = st.apply(text)
	}
	return text
}

func (st Step) apply(text string) string {
	switch st.Kind {
	case StepReplace:
		return st.Pattern.ReplaceAllStringFunc(text, func(m string) string {
			if st.KeepIf != nil && st.KeepIf.MatchString(m) {
				return m
			}
			return st.Pattern.ReplaceAllString(m, st.Replace)
		})
	case StepInsertBefore:
		return insertDirective(text, st.Pattern, st.Directive)
	case StepWrapCase:
		return wrapCaseBlocks(text)
	}
	return text
}

// insertDirective places directive above every line matching pattern,
// unless the preceding line already carries it.
func insertDirective(text string, pattern *regexp.Regexp, directive string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		if pattern.MatchString(line) {
			already := i > 0 && strings.Contains(lines[i-1], directive)
			if !already {
				out = append(out, leadingWhitespace(line)+directive)
			}
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

var (
	// caseLabelRe requires the label to end the line, so already-wrapped
	// labels ("case x: {") are not matched again.
	caseLabelRe = regexp.MustCompile(`^\s*case\s+.*:\s*$`)
	caseDeclRe  = regexp.MustCompile(`^\s*(const|let|var)\s`)
)

// wrapCaseBlocks wraps the statements between a case label and the next
// exit statement in braces when the first statement is a declaration.
// Exit detection is a plain break/return substring search, which is why
// the rule carrying this step is experimental: nested constructs can be
// misidentified as block boundaries.
func wrapCaseBlocks(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if caseLabelRe.MatchString(line) && i+1 < len(lines) && caseDeclRe.MatchString(lines[i+1]) {
			end := -1
			for j := i + 1; j < len(lines); j++ {
				if strings.Contains(lines[j], "break") || strings.Contains(lines[j], "return") {
					end = j
					break
				}
			}
			if end >= 0 {
				out = append(out, line+" {")
				out = append(out, lines[i+1:end+1]...)
				out = append(out, leadingWhitespace(line)+"}")
				i = end
				continue
			}
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
