package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/trailboard/norquay/core"
)

// NoteDisplayLimit bounds the weather note, in runes, before an ellipsis.
const NoteDisplayLimit = 260

// Rule is one field's pattern over the collapsed page text. Example is an
// input fragment the pattern is known to match; when the upstream markup
// drifts, Diagnose names the rules whose examples no longer describe the page.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Example string
}

var (
	TempRule = Rule{
		Name:    "tempC",
		Pattern: regexp.MustCompile(`(?i)Current Temp\s*([-+]?\d+)\s*°\s*C`),
		Example: "Current Temp -5 °C",
	}
	NoteRule = Rule{
		Name:    "note",
		Pattern: regexp.MustCompile(`(?is)Weather Note:\s*(.*?)(?:New Snow|Snow Base)`),
		Example: "Weather Note: Cloudy with flurries. New Snow",
	}
	OvernightRule = Rule{
		Name:    "newSnow.overnightCm",
		Pattern: regexp.MustCompile(`(?i)New Snow\s*(\d+)\s*cm\s*Overnight`),
		Example: "New Snow 4 cm Overnight",
	}
	Last24Rule = Rule{
		Name:    "newSnow.last24Cm",
		Pattern: regexp.MustCompile(`(?i)Overnight\s*\d+\s*cm\s*Last 24 hours\s*(\d+)\s*cm`),
		Example: "Overnight 6 cm Last 24 hours 9 cm",
	}
	Last7DaysRule = Rule{
		Name:    "newSnow.last7DaysCm",
		Pattern: regexp.MustCompile(`(?i)Last 24 hours\s*\d+\s*cm\s*Last 7 days\s*(\d+)\s*cm`),
		Example: "Last 24 hours 9 cm Last 7 days 31 cm",
	}
	LowerBaseRule = Rule{
		Name:    "snowBase.lowerCm",
		Pattern: regexp.MustCompile(`(?i)Snow Base\s*(\d+)\s*cm\s*Lower Mountain`),
		Example: "Snow Base 85 cm Lower Mountain",
	}
	UpperBaseRule = Rule{
		Name:    "snowBase.upperCm",
		Pattern: regexp.MustCompile(`(?i)Upper Mountain\s*(\d+)\s*cm`),
		Example: "Upper Mountain 140 cm",
	}
	// YTDRule may match twice; the page sometimes repeats the figure.
	YTDRule = Rule{
		Name:    "snowBase.ytdSnowfallCm",
		Pattern: regexp.MustCompile(`(?i)Year to Date Snowfall\s*(\d+)\s*cm`),
		Example: "Year to Date Snowfall 212 cm",
	}
)

// Rules lists every scalar rule in report order.
func Rules() []Rule {
	return []Rule{
		TempRule, NoteRule, OvernightRule, Last24Rule, Last7DaysRule,
		LowerBaseRule, UpperBaseRule, YTDRule,
	}
}

// Int returns the first capture of the rule as an integer, or nil.
func (r Rule) Int(text string) *int {
	m := r.Pattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return atoi(m[1])
}

// Ints returns the integer capture of every match in document order.
func (r Rule) Ints(text string) []int {
	var out []int
	for _, m := range r.Pattern.FindAllStringSubmatch(text, -1) {
		if v := atoi(m[1]); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func atoi(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// ExtractConditions reads the weather report from a full HTML page.
func ExtractConditions(html string) (core.ConditionsSnapshot, error) {
	text, err := PageText(html)
	if err != nil {
		return core.ConditionsSnapshot{}, err
	}
	return ConditionsFromText(text), nil
}

// ConditionsFromText applies every scalar rule to already-collapsed page
// text. Fields whose rule does not match stay nil. UpdatedAt is left zero for
// the caller to stamp.
func ConditionsFromText(text string) core.ConditionsSnapshot {
	text = whitespace.ReplaceAllString(text, " ")

	snap := core.ConditionsSnapshot{
		TempC: TempRule.Int(text),
		Note:  extractNote(text),
		NewSnow: core.NewSnow{
			OvernightCm: OvernightRule.Int(text),
			Last24Cm:    Last24Rule.Int(text),
			Last7DaysCm: Last7DaysRule.Int(text),
		},
		SnowBase: core.SnowBase{
			LowerCm: LowerBaseRule.Int(text),
			UpperCm: UpperBaseRule.Int(text),
		},
	}

	ytd := YTDRule.Ints(text)
	if len(ytd) > 0 {
		snap.SnowBase.YTDSnowfallCm = core.Int(ytd[0])
	}
	if len(ytd) > 1 {
		snap.SnowBase.YTDSnowfall2Cm = core.Int(ytd[1])
	}

	return snap
}

func extractNote(text string) *string {
	m := NoteRule.Pattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	note := strings.TrimSpace(whitespace.ReplaceAllString(m[1], " "))
	if note == "" {
		return nil
	}
	note = TruncateNote(note, NoteDisplayLimit)
	return &note
}

// TruncateNote cuts s to at most limit runes and appends an ellipsis when
// anything was dropped.
func TruncateNote(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:limit])) + "…"
}

// Diagnose returns the names of the rules that found nothing in text.
func Diagnose(text string) []string {
	text = whitespace.ReplaceAllString(text, " ")
	var missed []string
	for _, r := range Rules() {
		if !r.Pattern.MatchString(text) {
			missed = append(missed, r.Name)
		}
	}
	return missed
}
