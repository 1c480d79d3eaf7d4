package vault

import (
	"regexp"
	"strings"
)

var (
	// ![[path]] and ![[path|alias]] / ![[path#heading]]
	wikiEmbedPattern = regexp.MustCompile(`!\[\[([^\]|#]+)(?:[|#][^\]]*)?\]\]`)

	// ![alt](path), with an optional <...> wrapper around the target
	inlineEmbedPattern = regexp.MustCompile(`!\[[^\]]*\]\(<?([^)<>\s]+)>?\)`)
)

// ScanEmbeds extracts every embedded link from markdown content, in
// document order. Link targets keep whatever form the document used;
// %20 escapes are decoded back to spaces.
func ScanEmbeds(content string) []Embed {
	type hit struct {
		pos  int
		link string
	}
	var hits []hit
	for _, m := range wikiEmbedPattern.FindAllStringSubmatchIndex(content, -1) {
		hits = append(hits, hit{pos: m[0], link: content[m[2]:m[3]]})
	}
	for _, m := range inlineEmbedPattern.FindAllStringSubmatchIndex(content, -1) {
		hits = append(hits, hit{pos: m[0], link: content[m[2]:m[3]]})
	}
	// Two patterns scan independently; restore document order.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j-1].pos > hits[j].pos; j-- {
			hits[j-1], hits[j] = hits[j], hits[j-1]
		}
	}
	embeds := make([]Embed, 0, len(hits))
	for _, h := range hits {
		link := strings.TrimSpace(strings.ReplaceAll(h.link, "%20", " "))
		if link == "" {
			continue
		}
		embeds = append(embeds, Embed{Link: link})
	}
	return embeds
}
