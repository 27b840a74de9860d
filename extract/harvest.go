package extract

import (
	"strings"

	"github.com/awalczak/mailpost"
)

// harvestMedia collects every image in document order, skipping tracking
// pixels and sourceless nodes. No deduplication, no cap.
func harvestMedia(doc mailpost.Document, rs *mailpost.Ruleset) []mailpost.Media {
	if doc == nil {
		return nil
	}

	var media []mailpost.Media
	for _, node := range doc.Select("img") {
		src := strings.TrimSpace(node.Attr("src"))
		if src == "" || rs.IsTrackingPixel(src) {
			continue
		}
		media = append(media, mailpost.Media{
			URL:     src,
			AltText: strings.TrimSpace(node.Attr("alt")),
		})
	}
	return media
}

// harvestLinks collects every anchor in document order, skipping
// help-center and unsubscribe targets. No deduplication, no cap.
func harvestLinks(doc mailpost.Document, rs *mailpost.Ruleset) []mailpost.Link {
	if doc == nil {
		return nil
	}

	var links []mailpost.Link
	for _, node := range doc.Select("a[href]") {
		href := strings.TrimSpace(node.Attr("href"))
		if href == "" || rs.IsExcludedLink(href) {
			continue
		}
		links = append(links, mailpost.Link{
			URL:        href,
			AnchorText: strings.TrimSpace(node.Text()),
		})
	}
	return links
}
