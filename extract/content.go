package extract

import (
	"strings"

	"github.com/awalczak/mailpost"
)

// content runs the three-stage cascade: structural locators, the optional
// article extractor, then the heuristic line scan. Returns sanitized text
// and, for locator hits, the matched node's inner HTML.
func (p *Pipeline) content(doc mailpost.Document, body string) (text, contentHTML string) {
	if doc != nil {
		if text, contentHTML = p.fromLocators(doc); text != "" {
			return text, contentHTML
		}
		if p.Article != nil {
			if text = p.fromArticle(body); text != "" {
				return text, ""
			}
		}
	}
	return p.fromLines(doc, body), ""
}

// fromLocators tries each content locator in order. For the first node a
// locator matches, the text is taken, a leading "X wrote:" attribution is
// stripped, and the result accepted only above the minimum length;
// shorter results fall through to the next locator.
func (p *Pipeline) fromLocators(doc mailpost.Document) (text, contentHTML string) {
	rs := p.Rules
	for _, locator := range rs.Locators() {
		for _, node := range doc.Select(locator.Query()) {
			raw := node.Text()
			if !locator.MatchesText(raw) {
				continue
			}
			text := mailpost.Sanitize(rs.StripContentPrefix(raw))
			if len(text) > rs.MinLocatorContent {
				return text, node.HTML()
			}
			// First matching node only; a short match sends the
			// cascade to the next locator, not the next node.
			break
		}
	}
	return "", ""
}

// fromArticle asks the injected article extractor for main content.
func (p *Pipeline) fromArticle(body string) string {
	article, err := p.Article.Extract(body)
	if err != nil || article == nil {
		return ""
	}
	text := mailpost.Sanitize(article.Text)
	if len(text) > p.Rules.MinFallbackContent {
		return text
	}
	return ""
}

// fromLines is the heuristic fallback: flatten the document (or the raw
// body when it never parsed) to lines, find the first plausible content
// line, and absorb up to FallbackLookahead following lines while each
// stays plausible and clear of site chrome.
func (p *Pipeline) fromLines(doc mailpost.Document, body string) string {
	rs := p.Rules

	var raw []string
	if doc != nil {
		raw = doc.Lines()
	} else {
		if rs.MaxScanBytes > 0 && len(body) > rs.MaxScanBytes {
			body = body[:rs.MaxScanBytes]
		}
		raw = strings.Split(body, "\n")
	}

	lines := make([]string, 0, len(raw))
	bytes := 0
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		bytes += len(line)
		if rs.MaxScanLines > 0 && len(lines) >= rs.MaxScanLines {
			break
		}
		if rs.MaxScanBytes > 0 && bytes >= rs.MaxScanBytes {
			break
		}
	}

	for i, line := range lines {
		if !rs.IsContentLine(line) {
			continue
		}

		collected := []string{line}
		for j := i + 1; j < len(lines) && len(collected) <= rs.FallbackLookahead; j++ {
			next := lines[j]
			if !rs.IsContentLine(next) || rs.IsChrome(next) {
				break
			}
			collected = append(collected, next)
		}

		text := mailpost.Sanitize(strings.Join(collected, "\n"))
		if len(text) > rs.MinFallbackContent {
			return text
		}
		return ""
	}

	return ""
}
