package mailpost

import (
	"regexp"
	"strings"

	"github.com/araddon/dateparse"
)

var spaceRunRe = regexp.MustCompile(`[ \t\p{Zs}]+`)

// Sanitize normalizes extracted text: whitespace runs collapse to single
// spaces, lines are trimmed, blank-line runs collapse to one blank line,
// and leading/trailing blank lines are dropped. Sanitize is idempotent.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))
		if line == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// IsContentLine reports whether a line is plausible post content: longer
// than the too-short threshold and free of boilerplate, site chrome, and
// pure-timestamp text.
func (rs *Ruleset) IsContentLine(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) <= rs.MinLineLength {
		return false
	}
	if matchAny(rs.boilerplate, line) || matchAny(rs.chrome, line) {
		return false
	}
	if looksLikeTimestamp(line) {
		return false
	}
	return true
}

// IsChrome reports whether a line matches the stricter site-chrome
// patterns that terminate the fallback absorption window.
func (rs *Ruleset) IsChrome(line string) bool {
	return matchAny(rs.chrome, strings.TrimSpace(line))
}

// IsTrackingPixel reports whether an image source carries a known
// tracking marker.
func (rs *Ruleset) IsTrackingPixel(src string) bool {
	return containsMarker(rs.trackingMarkers, src)
}

// IsExcludedLink reports whether a link target is a help-center or
// unsubscribe destination.
func (rs *Ruleset) IsExcludedLink(href string) bool {
	return containsMarker(rs.linkExclude, href)
}

func containsMarker(markers []string, s string) bool {
	s = strings.ToLower(s)
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// looksLikeTimestamp reports whether a line is nothing but a date/time.
// Short lines containing a digit that parse in full as a date qualify.
func looksLikeTimestamp(line string) bool {
	if len(line) > 40 || !strings.ContainsAny(line, "0123456789") {
		return false
	}
	// Notification timestamps read "March 5, 2024 at 10:32 AM".
	normalized := strings.ReplaceAll(line, " at ", " ")
	_, err := dateparse.ParseAny(normalized)
	return err == nil
}
