package creatorview

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/creatorhub/internal/app/system/htmlsanitize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback text for items with missing metadata.
const (
	UntitledText    = "Untitled"
	NoObjectiveText = "No objective specified"
)

// DisplayTitle returns the plain-text title, or UntitledText when the
// title is missing or blank.
func DisplayTitle(title *string) string {
	if title == nil {
		return UntitledText
	}
	if t := htmlsanitize.PlainText(*title); t != "" {
		return t
	}
	return UntitledText
}

// DisplayObjective returns the plain-text objective, or NoObjectiveText.
func DisplayObjective(objective *string) string {
	if objective == nil {
		return NoObjectiveText
	}
	if o := htmlsanitize.PlainText(*objective); o != "" {
		return o
	}
	return NoObjectiveText
}

// supportedLocales are the display conventions the dashboard knows about.
// Anything else falls back to the first entry.
var supportedLocales = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Portuguese,
	language.Italian,
	language.Dutch,
	language.Japanese,
	language.Chinese,
	language.Korean,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// Locale bundles the viewer's language and timezone. All date formatting
// goes through it so the output is consistent with the viewer, not the
// server.
type Locale struct {
	Tag      language.Tag
	Location *time.Location
}

// DefaultLocale is US English in UTC.
func DefaultLocale() Locale {
	return Locale{Tag: language.AmericanEnglish, Location: time.UTC}
}

// ParseLocale builds a Locale from an Accept-Language header and an IANA
// timezone name. Unknown or empty inputs fall back to fallbackTZ and US
// English.
func ParseLocale(acceptLanguage, tz, fallbackTZ string) Locale {
	l := DefaultLocale()

	if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
		_, idx, conf := localeMatcher.Match(tags...)
		if conf != language.No {
			l.Tag = supportedLocales[idx]
		}
	}

	for _, name := range []string{tz, fallbackTZ} {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			l.Location = loc
			break
		}
	}
	return l
}

type dateOrder int

const (
	monthFirst dateOrder = iota
	dayFirst
	yearFirst
)

func (l Locale) order() dateOrder {
	base, _ := l.Tag.Base()
	switch base.String() {
	case "en":
		if region, _ := l.Tag.Region(); region.String() == "US" {
			return monthFirst
		}
		return dayFirst
	case "ja", "zh", "ko":
		return yearFirst
	}
	return dayFirst
}

func (l Locale) twelveHour() bool {
	base, _ := l.Tag.Base()
	region, _ := l.Tag.Region()
	return base.String() == "en" && region.String() == "US"
}

func (l Locale) location() *time.Location {
	if l.Location == nil {
		return time.UTC
	}
	return l.Location
}

// LocaleAbbreviatedDatetime formats an epoch-millisecond timestamp the
// way the dashboard lists do: a clock time for today, month and day for
// earlier this year, and a numeric date otherwise. "Today" and "this year"
// are evaluated in the viewer's timezone.
func LocaleAbbreviatedDatetime(msec int64, now time.Time, l Locale) string {
	loc := l.location()
	t := time.UnixMilli(msec).In(loc)
	n := now.In(loc)

	ty, tm, td := t.Date()
	ny, nm, nd := n.Date()

	switch {
	case ty == ny && tm == nm && td == nd:
		if l.twelveHour() {
			return t.Format("3:04 PM")
		}
		return t.Format("15:04")
	case ty == ny:
		switch l.order() {
		case monthFirst:
			return t.Format("Jan 2")
		case yearFirst:
			return t.Format("1/2")
		}
		return t.Format("2 Jan")
	}

	switch l.order() {
	case monthFirst:
		return t.Format("01/02/06")
	case yearFirst:
		return t.Format("06/01/02")
	}
	return t.Format("02/01/06")
}

// FormatCount renders n with the locale's digit grouping.
func FormatCount(n int64, l Locale) string {
	return message.NewPrinter(l.Tag).Sprintf("%d", n)
}

// FormatRelativeChange renders a week-over-week percentage with an
// explicit sign. Nil renders as the empty string.
func FormatRelativeChange(pct *float64) string {
	if pct == nil {
		return ""
	}
	return fmt.Sprintf("%+.1f%%", *pct)
}
