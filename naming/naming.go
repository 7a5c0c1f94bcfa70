// Package naming derives generated identifiers from snake_case names.
package naming

import (
	"strings"
	"unicode"

	"github.com/serenize/snaker"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identifier capitalizes every `_` separated segment of input
// and joins them without a separator (`order_items` -> `OrderItems`).
// Within a segment every run of letters is title cased on its own,
// so `order2items` becomes `Order2Items`.
func Identifier(input string) string {
	caser := cases.Title(language.Und)
	parts := strings.Split(input, "_")
	for k, v := range parts {
		parts[k] = titleRuns(caser, v)
	}
	return strings.Join(parts, "")
}

func titleRuns(caser cases.Caser, segment string) string {
	var b strings.Builder
	start := -1
	for idx, r := range segment {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = idx
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(segment[start:idx]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(segment[start:]))
	}
	return b.String()
}

// Constant uppercases input, keeping underscores
func Constant(input string) string {
	return cases.Upper(language.Und).String(input)
}

// DatabaseField is the stack field holding a database
func DatabaseField(database string) string {
	return Constant(database) + "_DATABASE"
}

// DatabaseConstruct is the construct id of a database
func DatabaseConstruct(database string) string {
	return Identifier(database) + "Database"
}

// TableConstruct is the construct id of a table
func TableConstruct(table string) string {
	return Identifier(table) + "Table"
}

// DeployConstruct is the construct id of a table sample upload
func DeployConstruct(table string) string {
	return "Deploy" + Identifier(table) + "SampleTable"
}

// GoName returns an exported Go identifier, respecting initialisms
func GoName(input string) string {
	return snaker.SnakeToCamel(input)
}
