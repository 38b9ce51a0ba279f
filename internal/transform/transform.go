// Package transform downgrades TypeScript component sources to JavaScript for
// consumer projects without TypeScript.
//
// The downgrade is a fixed sequence of textual regex substitutions, not a
// parser. It handles the constructs that actually appear in registry
// components (interface blocks, type aliases, annotated parameters and
// declarations, generic hook arguments, type-only imports, casts) and is
// knowingly lossy: code that coincidentally matches one of the textual
// patterns can be mis-stripped. Treat the output as a starting point, not as
// a guaranteed-equivalent program.
package transform

import (
	"regexp"
	"strings"
)

type substitution struct {
	pattern *regexp.Regexp
	replace string
}

var substitutions = []substitution{
	// import type { X } from '...' lines vanish entirely.
	{regexp.MustCompile(`(?m)^import\s+type\s+[^\n]*\n`), ""},
	// Inline type-only specifiers: import { type X, Y } -> import { Y }.
	{regexp.MustCompile(`type\s+([A-Za-z_$][\w$]*)\s*,\s*`), ""},
	{regexp.MustCompile(`,\s*type\s+([A-Za-z_$][\w$]*)\s*(\})`), "$2"},
	// interface blocks, up to the first closing brace at column zero.
	{regexp.MustCompile(`(?ms)^(?:export\s+)?interface\s+[A-Za-z_$][\w$]*[^{]*\{.*?^\}\n?`), ""},
	// type alias declarations, up to the first line-ending semicolon.
	{regexp.MustCompile(`(?ms)^(?:export\s+)?type\s+[A-Za-z_$][\w$]*(?:<[^>\n]*>)?\s*=.*?;[ \t]*\n?`), ""},
	// Generic arguments on hook and factory calls: useState<string | null>( -> useState(.
	{regexp.MustCompile(`\b(useState|useRef|useContext|createContext|useSharedValue|forwardRef|memo|createAnimatedComponent)<[^(]*>\(`), "$1("},
	// Annotated destructured props: }: ButtonProps) -> }).
	{regexp.MustCompile(`\}\s*:\s*[A-Za-z_$][\w$]*(?:<[^>)]*>)?\s*\)`), "})"},
	// Function return type annotations: ): Foo { -> ) { and ): Foo => -> ) =>.
	{regexp.MustCompile(`\)\s*:\s*[A-Za-z_$][\w$.]*(?:<[^>{]*>)?(?:\[\])?\s*(\{|=>)`), ") $1"},
	// Annotated single parameters: (value: boolean) -> (value).
	{regexp.MustCompile(`\(\s*([A-Za-z_$][\w$]*)\s*:\s*[^(),]+\)`), "($1)"},
	// Annotated const/let declarations: const x: Foo = -> const x =.
	{regexp.MustCompile(`(?m)^(\s*(?:export\s+)?(?:const|let|var)\s+[A-Za-z_$][\w$]*)\s*:\s*[^=\n]+=`), "$1 ="},
	// as-casts, including as const.
	{regexp.MustCompile(`\s+as\s+(?:const\b|[A-Za-z_$][\w$.]*(?:<[^>;\n]*>)?(?:\[\])?)`), ""},
	// Non-null assertions on member access.
	{regexp.MustCompile(`!\.`), "."},
	// TS directive comments.
	{regexp.MustCompile(`(?m)^\s*//\s*@ts-(?:ignore|expect-error|nocheck)[^\n]*\n`), ""},
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// TSToJS applies the downgrade to a single source file. Identical input
// always yields identical output.
func TSToJS(src []byte) []byte {
	out := string(src)
	for _, sub := range substitutions {
		out = sub.pattern.ReplaceAllString(out, sub.replace)
	}
	// Collapse the blank-line craters left by removed blocks.
	out = blankRuns.ReplaceAllString(out, "\n\n")
	return []byte(out)
}

// RenameExtension maps a TypeScript file name to its JavaScript equivalent.
// Non-TypeScript names pass through unchanged.
func RenameExtension(name string) string {
	switch {
	case strings.HasSuffix(name, ".tsx"):
		return strings.TrimSuffix(name, ".tsx") + ".jsx"
	case strings.HasSuffix(name, ".ts"):
		return strings.TrimSuffix(name, ".ts") + ".js"
	default:
		return name
	}
}
