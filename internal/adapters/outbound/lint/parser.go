package lint

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/qwickapps/tsfix/internal/adapters/outbound/scanner"
	"github.com/qwickapps/tsfix/internal/domain"
)

// Parser implements domain.LintParser. It prefers ESLint's machine-readable
// --format json output and falls back to scraping the human-readable report
// (a path line followed by indented "line:col error message rule" lines).
// The text fallback depends on the exact shape of that report and breaks
// silently if the formatting changes.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser { return &Parser{} }

// Parse converts captured lint output into per-file error records, in the
// order the tool reported them. Error lines for excluded file categories
// are dropped. Output that yields no records is simply an empty result,
// never a failure.
func (p *Parser) Parse(output *domain.LintOutput, exclude []string) []domain.FileErrors {
	if output == nil {
		return nil
	}

	if trimmed := strings.TrimSpace(output.Stdout); strings.HasPrefix(trimmed, "[") {
		if res, err := parseJSON(trimmed, exclude); err == nil {
			return res
		}
	}

	return parseText(output.Stdout+"\n"+output.Stderr, exclude)
}

// eslintFileResult mirrors one element of ESLint's JSON formatter output.
type eslintFileResult struct {
	FilePath string `json:"filePath"`
	Messages []struct {
		RuleID   string `json:"ruleId"`
		Severity int    `json:"severity"` // 1=warn, 2=error
		Message  string `json:"message"`
		Line     int    `json:"line"`
		Column   int    `json:"column"`
	} `json:"messages"`
}

func parseJSON(text string, exclude []string) ([]domain.FileErrors, error) {
	var results []eslintFileResult
	if err := json.Unmarshal([]byte(text), &results); err != nil {
		return nil, err
	}

	var out []domain.FileErrors
	for _, fr := range results {
		if scanner.Excluded(filepath.ToSlash(fr.FilePath), exclude) {
			continue
		}

		var errs []domain.LintError
		for _, msg := range fr.Messages {
			if msg.Severity != 2 {
				continue
			}
			errs = append(errs, domain.LintError{
				File:    fr.FilePath,
				Line:    msg.Line,
				Column:  msg.Column,
				RuleID:  msg.RuleID,
				Message: msg.Message,
			})
		}
		if len(errs) > 0 {
			out = append(out, domain.FileErrors{Path: fr.FilePath, Errors: errs})
		}
	}
	return out, nil
}

var locationRe = regexp.MustCompile(`^(\d+):(\d+)$`)

// ruleIDRe recognizes eslint rule identifiers like "no-unused-vars" or
// "@typescript-eslint/no-explicit-any" in the report's trailing column.
var ruleIDRe = regexp.MustCompile(`^@?[a-z][\w-]*(/[\w-]+)*$`)

func parseText(text string, exclude []string) []domain.FileErrors {
	var (
		out     []domain.FileErrors
		index   = make(map[string]int)
		current string
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if isSourcePathLine(line) {
			if scanner.Excluded(filepath.ToSlash(line), exclude) {
				// Drop the file and everything attached to it, and make
				// sure later error lines cannot attach to the previous file.
				current = ""
				continue
			}
			current = line
			continue
		}

		if current == "" {
			continue
		}
		if scanner.Excluded(line, exclude) {
			continue
		}

		rec, ok := parseErrorLine(line)
		if !ok {
			continue
		}
		rec.File = current

		i, seen := index[current]
		if !seen {
			i = len(out)
			index[current] = i
			out = append(out, domain.FileErrors{Path: current})
		}
		out[i].Errors = append(out[i].Errors, rec)
	}

	return out
}

// isSourcePathLine reports whether the line is an absolute path to a
// TypeScript source file, which sets the parser's file cursor.
func isSourcePathLine(line string) bool {
	if !filepath.IsAbs(line) {
		return false
	}
	return strings.HasSuffix(line, ".ts") || strings.HasSuffix(line, ".tsx")
}

// parseErrorLine extracts one record from a report line shaped like
//
//	12:5  error  'screen' is defined but never used  @typescript-eslint/no-unused-vars
func parseErrorLine(line string) (domain.LintError, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return domain.LintError{}, false
	}

	loc := locationRe.FindStringSubmatch(fields[0])
	if loc == nil {
		return domain.LintError{}, false
	}

	errIdx := -1
	for i, f := range fields[1:] {
		if f == "error" {
			errIdx = i + 1
			break
		}
	}
	if errIdx == -1 {
		return domain.LintError{}, false
	}

	lineNum, _ := strconv.Atoi(loc[1])
	col, _ := strconv.Atoi(loc[2])

	msgFields := fields[errIdx+1:]
	ruleID := ""
	if len(msgFields) > 1 {
		last := msgFields[len(msgFields)-1]
		if looksLikeRuleID(last) {
			ruleID = last
			msgFields = msgFields[:len(msgFields)-1]
		}
	}

	return domain.LintError{
		Line:    lineNum,
		Column:  col,
		RuleID:  ruleID,
		Message: strings.Join(msgFields, " "),
	}, true
}

func looksLikeRuleID(s string) bool {
	if !strings.Contains(s, "-") && !strings.Contains(s, "/") {
		return false
	}
	return ruleIDRe.MatchString(s)
}
