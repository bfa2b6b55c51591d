package astprinter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/graphql-core/gqlcore/pkg/ast"
)

func printValue(v *ast.Value) string {
	if v == nil {
		return "null"
	}
	switch v.ValueKind {
	case ast.ValueKindVariable:
		return "$" + v.VariableName
	case ast.ValueKindInt, ast.ValueKindFloat:
		return v.Raw
	case ast.ValueKindString:
		if v.IsBlockString {
			return printBlockString(v.StringValue)
		}
		return printString(v.StringValue)
	case ast.ValueKindBoolean:
		return strconv.FormatBool(v.BooleanValue)
	case ast.ValueKindNull:
		return "null"
	case ast.ValueKindEnum:
		return v.StringValue
	case ast.ValueKindList:
		parts := make([]string, len(v.ListValues))
		for i, e := range v.ListValues {
			parts[i] = printValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ast.ValueKindObject:
		entries := make([]string, len(v.ObjectFields))
		for i, f := range v.ObjectFields {
			entries[i] = f.Name.Value + ": " + printValue(f.Value)
		}
		return wrapEntries("{", entries, "}", 0)
	default:
		return "null"
	}
}

// printString escapes s as a GraphQL quoted string: `"`, `\`, and control
// characters are escaped; `\b \f \n \r \t` use their shorthand form, other
// control characters use lowercase `\u00XX`. `/` and everything ≥ 0x20
// (including supplementary Unicode) is left unchanged.
func printString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// printBlockString renders value as a `"""…"""` literal, per the
// indentation/newline-shape rules of BlockStringValue's inverse: escape only
// `"""`, then add a leading/trailing newline when the result would otherwise
// span multiple lines or end awkwardly, so the multi-line shape survives a
// reparse (see pkg/astlexer's BlockStringValue for the decoding half).
func printBlockString(value string) string {
	escaped := strings.ReplaceAll(value, `"""`, `\"""`)
	lines := splitLines(escaped)
	isSingleLine := len(lines) == 1

	forceLeadingNewline := len(lines) > 1 && allBlank(lines[1:])
	hasTrailingQuote := strings.HasSuffix(value, `"`) && !strings.HasSuffix(escaped, `\"""`)
	hasTrailingSlash := strings.HasSuffix(value, `\`)
	forceTrailingNewline := hasTrailingQuote || hasTrailingSlash

	printMultiline := !isSingleLine || len(value) > 70 || forceTrailingNewline || forceLeadingNewline
	skipLeadingNewline := isSingleLine && isBlankLine(lines[0])

	var b strings.Builder
	b.WriteString(`"""`)
	if (printMultiline && !skipLeadingNewline) || forceLeadingNewline {
		b.WriteByte('\n')
	}
	b.WriteString(strings.Join(lines, "\n"))
	if printMultiline || forceTrailingNewline {
		b.WriteByte('\n')
	}
	b.WriteString(`"""`)
	return b.String()
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

func isBlankLine(line string) bool {
	return strings.TrimLeft(line, " \t") == ""
}

func allBlank(lines []string) bool {
	for _, l := range lines {
		if !isBlankLine(l) {
			return false
		}
	}
	return true
}
