package domain

import (
	"regexp"
	"strings"
)

var quotedIdentRe = regexp.MustCompile(`'([^']+)'`)

// ApplyMessageFix rewrites a single source line based on the lint error
// reported for it. Unlike the whole-file rules, these fixes are scoped to
// the exact line the linter named. Returns the new line and whether it
// changed.
func ApplyMessageFix(line string, rec LintError) (string, bool) {
	switch {
	case strings.Contains(rec.Message, "is defined but never used"):
		name := quotedIdent(rec.Message)
		if name == "" {
			return line, false
		}
		return removeFromList(line, name)

	case strings.Contains(rec.Message, "is assigned a value but never used"):
		name := quotedIdent(rec.Message)
		if name == "" {
			return line, false
		}
		if strings.HasPrefix(name, "_") {
			// Already renamed once and still unused: drop the
			// destructuring rename entirely.
			return removeRenamedBinding(line, name)
		}
		return underscorePrefix(line, name)

	case isExplicitAny(rec):
		return narrowAnyOnLine(line)
	}

	return line, false
}

func quotedIdent(message string) string {
	m := quotedIdentRe.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return m[1]
}

// removeFromList strips an identifier out of an import or destructuring
// list, eating one adjacent comma.
func removeFromList(line, name string) (string, bool) {
	q := regexp.QuoteMeta(name)

	trailing := regexp.MustCompile(`,\s*` + q + `\b`)
	if trailing.MatchString(line) {
		return trailing.ReplaceAllString(line, ""), true
	}

	leading := regexp.MustCompile(`\b` + q + `\s*,\s*`)
	if leading.MatchString(line) {
		return leading.ReplaceAllString(line, ""), true
	}

	return line, false
}

// removeRenamedBinding drops a "base: _base" destructuring rename whose
// underscored form is still unused.
func removeRenamedBinding(line, name string) (string, bool) {
	base := regexp.QuoteMeta(strings.TrimPrefix(name, "_"))
	q := regexp.QuoteMeta(name)

	trailing := regexp.MustCompile(`,\s*` + base + `\s*:\s*` + q + `\b`)
	if trailing.MatchString(line) {
		return trailing.ReplaceAllString(line, ""), true
	}

	leading := regexp.MustCompile(`\b` + base + `\s*:\s*` + q + `\s*,\s*`)
	if leading.MatchString(line) {
		return leading.ReplaceAllString(line, ""), true
	}

	return line, false
}

// underscorePrefix renames the first occurrence of the identifier to its
// underscore-prefixed form, the conventional "intentionally unused" spelling.
func underscorePrefix(line, name string) (string, bool) {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	loc := re.FindStringIndex(line)
	if loc == nil {
		return line, false
	}
	return line[:loc[0]] + "_" + name + line[loc[1]:], true
}

func isExplicitAny(rec LintError) bool {
	return rec.RuleID == "@typescript-eslint/no-explicit-any" ||
		strings.Contains(rec.Message, "Unexpected any")
}

// narrowAnyOnLine applies the weaken-any rule to one line only.
func narrowAnyOnLine(line string) (string, bool) {
	r, ok := RuleByName("weaken-any")
	if !ok {
		return line, false
	}
	fixed := r.Apply(line)
	return fixed, fixed != line
}
