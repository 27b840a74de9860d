package mailpost

import "strings"

// Author resolves the post author from a notification subject line.
// The ordered anchor patterns are tried top-to-bottom; the first match
// yields its trimmed capture. ok is false when no anchor matches.
func (rs *Ruleset) Author(subject string) (author string, ok bool) {
	for _, re := range rs.authorAnchors {
		if m := re.FindStringSubmatch(subject); m != nil {
			author = strings.TrimSpace(m[1])
			if author != "" {
				return author, true
			}
		}
	}
	return "", false
}

// AuthorFromDocument resolves the author from the email body when the
// subject yields nothing: first from a post-author region, then from a
// "By/From/Posted by" phrase in the flattened text.
func (rs *Ruleset) AuthorFromDocument(doc Document) (author string, ok bool) {
	if doc == nil {
		return "", false
	}

	for _, selector := range rs.authorFallbackSelectors {
		for _, node := range doc.Select(selector) {
			if name := strings.TrimSpace(node.Text()); name != "" {
				return name, true
			}
		}
	}

	if rs.authorFallbackPattern != nil {
		text := strings.Join(doc.Lines(), "\n")
		if m := rs.authorFallbackPattern.FindStringSubmatch(text); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name, true
			}
		}
	}

	return "", false
}

// ClassifyCategory resolves the post category from a subject line.
// Patterns are evaluated in rule order, first match wins; subjects that
// match nothing classify as CategoryPost.
func (rs *Ruleset) ClassifyCategory(subject string) Category {
	for _, m := range rs.categories {
		if m.re.MatchString(subject) {
			return m.category
		}
	}
	return CategoryPost
}
