// Package faq answers canned questions by keyword matching against static
// per-locale FAQ tables, signalling unmatched input so the caller can
// offer a human handoff.
package faq

import (
	"strings"

	"golang.org/x/text/language"
)

// Entry is one FAQ with the keywords that select it.
type Entry struct {
	ID       string
	Question string
	Answer   string
	Keywords []string
}

// Table is a locale's FAQ set plus its fixed bot messages.
type Table struct {
	Greeting       string
	HandoffMessage string
	NoMatchMessage string
	Entries        []Entry
}

// Result is the matcher outcome. Matched is false when the no-match
// message is returned.
type Result struct {
	Answer  string
	Matched bool
	EntryID string
}

// supportedLocales lists the table locales in preference order. English is
// the fallback for anything unrecognized.
var supportedLocales = []language.Tag{
	language.English,
	language.Arabic,
	language.Hindi,
	language.Urdu,
	language.Chinese,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// localeKeys maps the matcher's choice back to a table key.
var localeKeys = map[language.Tag]string{
	language.English: "en",
	language.Arabic:  "ar",
	language.Hindi:   "hi",
	language.Urdu:    "ur",
	language.Chinese: "zh",
}

// TableFor resolves a locale string (BCP 47, loosely) to its FAQ table,
// falling back to English.
func TableFor(locale string) *Table {
	if t, ok := tables[locale]; ok {
		return t
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return tables["en"]
	}
	_, idx, _ := localeMatcher.Match(tag)
	if key, ok := localeKeys[supportedLocales[idx]]; ok {
		return tables[key]
	}
	return tables["en"]
}

// Match returns the first entry, in table order, with a keyword contained
// case-insensitively in the input. Pure substring containment: a keyword
// inside an unrelated word still matches. No ranking; iteration stops at
// the first hit.
func Match(locale, input string) Result {
	table := TableFor(locale)
	lower := strings.ToLower(input)

	for i := range table.Entries {
		entry := &table.Entries[i]
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return Result{Answer: entry.Answer, Matched: true, EntryID: entry.ID}
			}
		}
	}
	return Result{Answer: table.NoMatchMessage, Matched: false}
}
