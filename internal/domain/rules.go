package domain

import (
	"fmt"
	"regexp"
)

// NoVarRequiresDirective is the suppression comment inserted above dynamic
// require declarations.
const NoVarRequiresDirective = "// eslint-disable-next-line @typescript-eslint/no-var-requires"

var (
	// any in annotations: "x: any", "foo?: any". The optional [] group is
	// captured so KeepIf can exempt array-of-any.
	anyAnnotationRe = regexp.MustCompile(`(\b\w+\??\s*:\s*)any\b(\[\])?`)

	// any as a return type: "): any".
	anyReturnRe = regexp.MustCompile(`(\)\s*:\s*)any\b(\[\])?`)

	// any as a type-alias right-hand side: "type Foo = any".
	anyAliasRe = regexp.MustCompile(`(\btype\s+\w+\s*=\s*)any\b(\[\])?`)

	// any as a generic argument: "Array<any>".
	anyGenericRe = regexp.MustCompile(`<any>`)

	// any in an assertion: "x as any".
	anyCastRe = regexp.MustCompile(`(\bas\s+)any\b(\[\])?`)

	// arrayOfAnyRe exempts any[] from narrowing.
	arrayOfAnyRe = regexp.MustCompile(`any\[\]`)

	tsIgnoreRe = regexp.MustCompile(`//\s*@ts-ignore\b`)

	requireDeclRe = regexp.MustCompile(`^[ \t]*(?:export\s+)?const\s+.*=\s*require\(['"][^'"]+['"]\);?\s*$`)
)

// builtins is the declarative rule table. Order matters: later rules see
// the text produced by earlier ones.
var builtins = []Rule{
	{
		ID:          "WeakenAny",
		Description: "Replace the explicit any type with unknown in annotations, return types, type aliases, generics and assertions (any[] is left alone)",
		Steps: []Step{
			{Kind: StepReplace, Pattern: anyAnnotationRe, Replace: "${1}unknown", KeepIf: arrayOfAnyRe},
			{Kind: StepReplace, Pattern: anyReturnRe, Replace: "${1}unknown", KeepIf: arrayOfAnyRe},
			{Kind: StepReplace, Pattern: anyAliasRe, Replace: "${1}unknown", KeepIf: arrayOfAnyRe},
			{Kind: StepReplace, Pattern: anyGenericRe, Replace: "<unknown>"},
			{Kind: StepReplace, Pattern: anyCastRe, Replace: "${1}unknown", KeepIf: arrayOfAnyRe},
		},
	},
	{
		ID:          "TSIgnoreToExpectError",
		Description: "Replace @ts-ignore suppression comments with @ts-expect-error, keeping any trailing note",
		Steps: []Step{
			{Kind: StepReplace, Pattern: tsIgnoreRe, Replace: "// @ts-expect-error"},
		},
	},
	{
		ID:          "FlagDynamicRequire",
		Description: "Insert an eslint-disable-next-line directive above const ... = require(...) declarations",
		Steps: []Step{
			{Kind: StepInsertBefore, Pattern: requireDeclRe, Directive: NoVarRequiresDirective},
		},
	},
	{
		ID:           "CaseBlockScoping",
		Description:  "Wrap declarations inside a case label in an explicit block (text heuristic, may misplace the closing brace)",
		Experimental: true,
		Steps: []Step{
			{Kind: StepWrapCase},
		},
	},
}

// Builtins returns a copy of the full rule table, experimental rules
// included.
func Builtins() []Rule {
	out := make([]Rule, len(builtins))
	copy(out, builtins)
	return out
}

// RuleByName looks a rule up by its kebab-case name.
func RuleByName(name string) (Rule, bool) {
	for _, r := range builtins {
		if r.Name() == name {
			return r, true
		}
	}
	return Rule{}, false
}

// ResolveRules builds the ordered rule list for a run. With no enabled
// names, every stable rule is selected; experimental rules run only when
// named in the experimental list. Unknown names are a configuration error.
func ResolveRules(enabled, experimental []string) ([]Rule, error) {
	expSet := make(map[string]bool, len(experimental))
	for _, name := range experimental {
		r, ok := RuleByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown rule %q in experimental list", name)
		}
		if !r.Experimental {
			return nil, fmt.Errorf("rule %q is not experimental", name)
		}
		expSet[name] = true
	}

	if len(enabled) == 0 {
		var rules []Rule
		for _, r := range builtins {
			if !r.Experimental || expSet[r.Name()] {
				rules = append(rules, r)
			}
		}
		return rules, nil
	}

	enabledSet := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		r, ok := RuleByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown rule %q", name)
		}
		if r.Experimental && !expSet[name] {
			return nil, fmt.Errorf("rule %q is experimental and must also be listed under experimental", name)
		}
		enabledSet[name] = true
	}

	// Preserve table order regardless of the order names were given in.
	var rules []Rule
	for _, r := range builtins {
		if enabledSet[r.Name()] {
			rules = append(rules, r)
		}
	}
	return rules, nil
}
