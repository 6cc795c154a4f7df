package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/trailboard/norquay/core/normalize"
)

// noiseSelectors are removed before reading page text. Inline SVG stays: a
// text node drawn in a graphic still counts as page text.
var noiseSelectors = cascadia.MustCompile("script, style, noscript, template")

var (
	trailCell  = cascadia.MustCompile("td.trail_name")
	statusIcon = cascadia.MustCompile("div.trail_open_status_icon i")
	iconChild  = cascadia.MustCompile("i")
)

// whitespace also covers non-breaking and other Unicode space separators.
var whitespace = regexp.MustCompile(`[\s\p{Zs}]+`)

// PageText returns the text of the document body with every whitespace run
// collapsed to a single space. Plain text input passes through unchanged
// apart from the whitespace collapse.
func PageText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	doc.FindMatcher(noiseSelectors).Remove()

	return whitespace.ReplaceAllString(doc.Find("body").Text(), " "), nil
}

// ExtractRunNames walks the run table with a DOM parser and returns the
// cleaned display name of every row whose status icon is open or closed, in
// document order. The offline identifier-map builder uses this stricter
// reading of the table:
//
//	<tr><td class="trail_name">
//	  <div class="trail_open_status_icon"><i class="bi open-icon"></i></div>
//	  <div>Valley of 10</div>
//	</td></tr>
func ExtractRunNames(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var names []string
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		td := tr.FindMatcher(trailCell).First()
		if td.Length() == 0 {
			return
		}

		class, _ := td.FindMatcher(statusIcon).First().Attr("class")
		class = strings.ToLower(class)
		if !strings.Contains(class, "open-icon") && !strings.Contains(class, "close-icon") {
			return
		}

		label := td.ChildrenFiltered("div").FilterFunction(func(_ int, d *goquery.Selection) bool {
			return d.FindMatcher(iconChild).Length() == 0
		}).First().Text()

		if name := normalize.Clean(label); name != "" {
			names = append(names, name)
		}
	})

	return names, nil
}
