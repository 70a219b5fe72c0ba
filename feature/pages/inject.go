package pages

import (
	"regexp"
	"strings"
)

var (
	// existingFooter matches a footer block lazily across newlines, plus trailing whitespace.
	existingFooter = regexp.MustCompile(`(?s)<footer[^>]*>.*?</footer>\s*`)
	bodyClose      = regexp.MustCompile(`\s*</body>`)
)

// InjectStylesheet inserts the shared stylesheet link before the first </head>
// unless the page already references it.
func InjectStylesheet(html string) string {
	if strings.Contains(html, StylesheetMarker) {
		return html
	}
	return insertBefore(html, "</head>", StylesheetLink+"\n")
}

// InjectScript inserts the main script tag before the first </body>
// unless the page already references it.
func InjectScript(html string) string {
	if strings.Contains(html, ScriptMarker) {
		return html
	}
	return insertBefore(html, "</body>", ScriptTag+"\n")
}

// InjectFooter makes sure the page carries the standard footer. The first
// existing <footer> block is replaced; pages without one get the footer
// appended right before </body>. Later footer blocks are left untouched.
func InjectFooter(html string) string {
	if strings.Contains(html, FooterMarker) {
		return html
	}

	html = replaceFirst(existingFooter, html, StandardFooter+"\n")
	if strings.Contains(html, FooterMarker) {
		return html
	}

	return replaceFirst(bodyClose, html, "\n\n"+StandardFooter+"\n\n</body>")
}

// Apply runs the stylesheet, script and footer injections in order.
func Apply(html string) string {
	html = InjectStylesheet(html)
	html = InjectScript(html)
	return InjectFooter(html)
}

func insertBefore(s, anchor, fragment string) string {
	i := strings.Index(s, anchor)
	if i < 0 {
		return s
	}
	return s[:i] + fragment + s[i:]
}

// replaceFirst substitutes repl literally for the leftmost match of re.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
