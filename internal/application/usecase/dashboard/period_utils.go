// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale or an unsupported one is configured.
const DefaultLocale = "pt-BR"

var monthNames = map[language.Base][12]string{
	mustBase("pt"): {
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	},
	mustBase("en"): {
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	},
}

// monthAbbreviations maps month numbers to Portuguese abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

func mustBase(s string) language.Base {
	return language.MustParseBase(s)
}

// MonthLabeler renders month labels such as "Outubro 2023" or "October 2023".
// It is safe for concurrent use.
type MonthLabeler struct {
	tag   language.Tag
	names [12]string
}

// NewMonthLabeler builds a labeler for a BCP-47 locale. Unknown or unsupported
// locales fall back to DefaultLocale.
func NewMonthLabeler(locale string) *MonthLabeler {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}

	base, _ := tag.Base()
	names, ok := monthNames[base]
	if !ok {
		tag = language.MustParse(DefaultLocale)
		base, _ = tag.Base()
		names = monthNames[base]
	}

	return &MonthLabeler{
		tag:   tag,
		names: names,
	}
}

// Locale returns the resolved locale tag.
func (l *MonthLabeler) Locale() string {
	return l.tag.String()
}

// Label returns the full month name and year of t.
func (l *MonthLabeler) Label(t time.Time) string {
	// Casers are stateful, so each call gets its own.
	name := cases.Title(l.tag).String(l.names[t.Month()-1])
	return fmt.Sprintf("%s %d", name, t.Year())
}

// ShortLabel returns the abbreviated form used in compact charts (e.g. "Out 2023").
func ShortLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[t.Month()], t.Year())
}

// RangeLabel describes an inclusive date range: a single month label when both
// ends share a month, otherwise "<start> - <end>".
func (l *MonthLabeler) RangeLabel(start, end time.Time) string {
	if start.Year() == end.Year() && start.Month() == end.Month() {
		return l.Label(start)
	}
	return fmt.Sprintf("%s - %s", ShortLabel(start), ShortLabel(end))
}
