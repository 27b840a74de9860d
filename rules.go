package mailpost

import "regexp"

// CategoryRule pairs a subject pattern with the category it assigns.
type CategoryRule struct {
	Pattern  string   `json:"pattern"`
	Category Category `json:"category"`
}

// Locator is one step of the content selector cascade: a CSS query with an
// optional text pattern the matched node must satisfy.
type Locator struct {
	Query       string `json:"query"`
	TextPattern string `json:"textPattern,omitempty"`
}

// Rules is the extraction configuration. Every pattern list is ordered and
// evaluated top-to-bottom with first-match-wins; the order of
// CategoryRules in particular is a tie-break contract for subjects that
// satisfy more than one pattern. Rules is JSON-serializable so deployments
// can override it without a code change.
type Rules struct {
	// AuthorAnchors are subject patterns with a single capture group for
	// the author name.
	AuthorAnchors []string `json:"authorAnchors"`

	// AuthorFallbackSelectors locate a post-author region in the body when
	// no anchor matches the subject.
	AuthorFallbackSelectors []string `json:"authorFallbackSelectors"`

	// AuthorFallbackPattern scans free text for a "By/From/Posted by"
	// phrase, capturing the name.
	AuthorFallbackPattern string `json:"authorFallbackPattern"`

	CategoryRules []CategoryRule `json:"categoryRules"`

	ContentLocators []Locator `json:"contentLocators"`

	// ContentPrefixPattern strips a leading "X wrote:" style attribution
	// from cascade-selected text.
	ContentPrefixPattern string `json:"contentPrefixPattern"`

	BoilerplatePatterns []string `json:"boilerplatePatterns"`
	ChromePatterns      []string `json:"chromePatterns"`

	// TrackingMarkers identify tracking-pixel image sources.
	TrackingMarkers []string `json:"trackingMarkers"`

	// LinkExcludeMarkers identify help-center and unsubscribe targets.
	LinkExcludeMarkers []string `json:"linkExcludeMarkers"`

	// MinLocatorContent is the minimum accepted length for cascade text.
	MinLocatorContent int `json:"minLocatorContent"`

	// MinFallbackContent is the minimum accepted length for fallback text.
	MinFallbackContent int `json:"minFallbackContent"`

	// MinLineLength rejects lines at or below this length as too short.
	MinLineLength int `json:"minLineLength"`

	// FallbackLookahead is how many lines past the first content line the
	// fallback scan may absorb.
	FallbackLookahead int `json:"fallbackLookahead"`

	// MaxScanLines and MaxScanBytes bound the fallback scan on
	// pathologically large bodies.
	MaxScanLines int `json:"maxScanLines"`
	MaxScanBytes int `json:"maxScanBytes"`
}

// DefaultRules returns the extraction configuration used when no override
// is supplied.
func DefaultRules() *Rules {
	return &Rules{
		AuthorAnchors: []string{
			`^(.+?)\s+posted in\b`,
			`^(.+?)\s+shared a post\b`,
			`^(.+?)\s+shared a (?:photo|video|link)\b`,
			`^(.+?)\s+added a new photo\b`,
			`^(.+?)\s+updated (?:his|her|their) status\b`,
			`^(.+?)\s+wrote a new post\b`,
		},
		AuthorFallbackSelectors: []string{
			`[data-testid="post_author"]`,
			`.post-author`,
			`.author`,
		},
		AuthorFallbackPattern: `\b(?:By|From|Posted by)[: \t]+([A-Z][\w'.-]*(?:[ \t]+[A-Z][\w'.-]*){0,3})`,
		CategoryRules: []CategoryRule{
			{Pattern: `(?i)\bphotos?\b`, Category: CategoryPhoto},
			{Pattern: `(?i)\bstatus\b`, Category: CategoryStatus},
			{Pattern: `(?i)\bshared\b`, Category: CategoryShared},
			{Pattern: `(?i)\bvideos?\b`, Category: CategoryVideo},
			{Pattern: `(?i)\blinks?\b`, Category: CategoryLink},
			{Pattern: `(?i)\bgroups?\b`, Category: CategoryGroup},
			{Pattern: `(?i)\bpages?\b`, Category: CategoryPage},
		},
		ContentLocators: []Locator{
			{Query: `[data-testid="post_message"]`},
			{Query: `.userContent`},
			{Query: `.post-content`},
			{Query: `.message-content`},
			{Query: `p`, TextPattern: `(?i)\b(?:wrote|said|posted):`},
		},
		ContentPrefixPattern: `(?i)^\s*[^:\n]{0,80}?\b(?:wrote|said|posted):\s*`,
		BoilerplatePatterns: []string{
			`(?i)unsubscribe`,
			`(?i)all rights reserved`,
			`(?i)copyright`,
			`©`,
			`(?i)this message was sent to`,
			`(?i)if you no longer wish to receive`,
			`^[\w.+-]+@[\w.-]+\.\w+$`,
			`(?i)^(?:home|notifications?|messages?|friend requests?|search)\b(?:\s*[|·].*)?$`,
		},
		ChromePatterns: []string{
			`(?i)facebook\.com`,
			`(?i)unsubscribe`,
			`(?i)privacy(?:\s+policy)?`,
			`(?i)\bterms\b`,
			`(?i)help cent(?:er|re)`,
			`(?i)view (?:it |this )?on \w+`,
		},
		TrackingMarkers:    []string{"track", "pixel", "beacon", "spacer", "1x1"},
		LinkExcludeMarkers: []string{"unsubscribe", "help"},
		MinLocatorContent:  10,
		MinFallbackContent: 20,
		MinLineLength:      5,
		FallbackLookahead:  4,
		MaxScanLines:       500,
		MaxScanBytes:       1 << 20,
	}
}

// CompiledLocator is a Locator with its text pattern compiled.
type CompiledLocator struct {
	query string
	text  *regexp.Regexp
}

// Query returns the locator's CSS query.
func (l CompiledLocator) Query() string { return l.query }

// MatchesText reports whether a node's text satisfies the locator's text
// pattern. Locators without a pattern match any text.
func (l CompiledLocator) MatchesText(text string) bool {
	return l.text == nil || l.text.MatchString(text)
}

type categoryMatcher struct {
	re       *regexp.Regexp
	category Category
}

// Ruleset is a compiled, immutable Rules. It is safe for concurrent use.
type Ruleset struct {
	authorAnchors           []*regexp.Regexp
	authorFallbackSelectors []string
	authorFallbackPattern   *regexp.Regexp
	categories              []categoryMatcher
	locators                []CompiledLocator
	prefix                  *regexp.Regexp
	boilerplate             []*regexp.Regexp
	chrome                  []*regexp.Regexp
	trackingMarkers         []string
	linkExclude             []string

	// Thresholds, exposed for the pipeline.
	MinLocatorContent  int
	MinFallbackContent int
	MinLineLength      int
	FallbackLookahead  int
	MaxScanLines       int
	MaxScanBytes       int
}

// Compile validates the rules and compiles every pattern.
// Returns EINVALID on any malformed pattern or an anchor without exactly
// one capture group.
func (r *Rules) Compile() (*Ruleset, error) {
	rs := &Ruleset{
		authorFallbackSelectors: append([]string(nil), r.AuthorFallbackSelectors...),
		trackingMarkers:         append([]string(nil), r.TrackingMarkers...),
		linkExclude:             append([]string(nil), r.LinkExcludeMarkers...),
		MinLocatorContent:       r.MinLocatorContent,
		MinFallbackContent:      r.MinFallbackContent,
		MinLineLength:           r.MinLineLength,
		FallbackLookahead:       r.FallbackLookahead,
		MaxScanLines:            r.MaxScanLines,
		MaxScanBytes:            r.MaxScanBytes,
	}

	for _, pattern := range r.AuthorAnchors {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, Errorf(EINVALID, "author anchor %q: %v", pattern, err)
		}
		if re.NumSubexp() != 1 {
			return nil, Errorf(EINVALID, "author anchor %q: want exactly one capture group", pattern)
		}
		rs.authorAnchors = append(rs.authorAnchors, re)
	}

	if r.AuthorFallbackPattern != "" {
		re, err := regexp.Compile(r.AuthorFallbackPattern)
		if err != nil {
			return nil, Errorf(EINVALID, "author fallback pattern: %v", err)
		}
		if re.NumSubexp() < 1 {
			return nil, Errorf(EINVALID, "author fallback pattern: want a capture group")
		}
		rs.authorFallbackPattern = re
	}

	for _, rule := range r.CategoryRules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, Errorf(EINVALID, "category pattern %q: %v", rule.Pattern, err)
		}
		if rule.Category == "" {
			return nil, Errorf(EINVALID, "category pattern %q: missing category", rule.Pattern)
		}
		rs.categories = append(rs.categories, categoryMatcher{re: re, category: rule.Category})
	}

	for _, loc := range r.ContentLocators {
		cl := CompiledLocator{query: loc.Query}
		if loc.TextPattern != "" {
			re, err := regexp.Compile(loc.TextPattern)
			if err != nil {
				return nil, Errorf(EINVALID, "locator text pattern %q: %v", loc.TextPattern, err)
			}
			cl.text = re
		}
		rs.locators = append(rs.locators, cl)
	}

	if r.ContentPrefixPattern != "" {
		re, err := regexp.Compile(r.ContentPrefixPattern)
		if err != nil {
			return nil, Errorf(EINVALID, "content prefix pattern: %v", err)
		}
		rs.prefix = re
	}

	var err error
	if rs.boilerplate, err = compilePatterns(r.BoilerplatePatterns); err != nil {
		return nil, Errorf(EINVALID, "boilerplate pattern: %v", err)
	}
	if rs.chrome, err = compilePatterns(r.ChromePatterns); err != nil {
		return nil, Errorf(EINVALID, "chrome pattern: %v", err)
	}

	return rs, nil
}

// Locators returns the content locator cascade in order.
func (rs *Ruleset) Locators() []CompiledLocator {
	return rs.locators
}

// StripContentPrefix removes a leading "X wrote:" style attribution.
func (rs *Ruleset) StripContentPrefix(s string) string {
	if rs.prefix == nil {
		return s
	}
	return rs.prefix.ReplaceAllString(s, "")
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
