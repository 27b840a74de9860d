package mailpost

// Extractor turns a raw notification email into a structured post.
type Extractor interface {
	// Extract returns the recovered post, or ok=false when the email does
	// not yield a usable author and content. Absence is a normal outcome,
	// not an error; malformed input never propagates a fault.
	Extract(email *RawEmail) (post *Post, ok bool)
}

// Article holds main content recovered from dense markup.
type Article struct {
	// Title extracted from page metadata, if any.
	Title string

	// Text is the main content as plain text.
	Text string
}

// ArticleExtractor extracts main content from an HTML body, removing
// boilerplate. Used as an intermediate stage between the selector cascade
// and the heuristic line scan.
type ArticleExtractor interface {
	Extract(html string) (*Article, error)
}
