package pages

import (
	"fmt"
	"os"
	"regexp"
)

var svgWrapper = regexp.MustCompile(`<span\s+class="material-symbols-outlined"[^>]*>\s*(<svg[\s\S]*?</svg>)\s*</span>`)

// UnwrapSVG removes icon font <span> wrappers around inline SVG icons,
// keeping the <svg> element. It returns the rewritten text and the number of
// wrappers removed.
func UnwrapSVG(html string) (string, int) {
	n := len(svgWrapper.FindAllStringIndex(html, -1))
	if n == 0 {
		return html, 0
	}
	return svgWrapper.ReplaceAllString(html, "$1"), n
}

// UnwrapSVGFile rewrites the page at path without icon wrappers.
func UnwrapSVGFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read page: %w", err)
	}

	out, n := UnwrapSVG(string(data))
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write page: %w", err)
	}
	return n, nil
}
