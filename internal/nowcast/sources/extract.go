package sources

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/i474232898/composite-nowcast/internal/common"
)

const gdpnowPhrase = "GDPNow estimate is"

// ExtractGDPNow finds the first text or comment node (document order) mentioning both
// "GDPNow" and "%", and parses the number between "GDPNow estimate is" and the
// following percent sign. ok is false on any mismatch.
func ExtractGDPNow(page []byte) (value float64, ok bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return 0, false
	}

	var text string
	for _, n := range doc.Nodes {
		if t, found := firstTextNode(n, func(s string) bool {
			return common.ContainsAll(s, "%", "GDPNow")
		}); found {
			text = t
			break
		}
	}
	if text == "" {
		return 0, false
	}

	idx := strings.LastIndex(text, gdpnowPhrase)
	if idx < 0 {
		return 0, false
	}
	number, _, _ := strings.Cut(text[idx+len(gdpnowPhrase):], "%")

	return parsePercent(strings.TrimSpace(number))
}

// ExtractNYFed finds the first <p> holding a single string that mentions both
// "GDP" and "%", and parses the whitespace-delimited token right before the
// first percent sign of the paragraph text. Paragraphs with mixed content
// (text next to child elements) never qualify.
func ExtractNYFed(page []byte) (value float64, ok bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return 0, false
	}

	var text string
	found := false
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if sole, ok := soleString(p.Get(0)); ok && common.ContainsAll(sole, "%", "GDP") {
			text, found = p.Text(), true
			return false
		}
		return true
	})
	if !found {
		return 0, false
	}

	before, _, _ := strings.Cut(text, "%")
	tokens := strings.Fields(before)
	if len(tokens) == 0 {
		return 0, false
	}
	return parsePercent(tokens[len(tokens)-1])
}

// firstTextNode walks n depth-first in document order and returns the first
// text or comment node whose data satisfies match.
func firstTextNode(n *html.Node, match func(string) bool) (string, bool) {
	if (n.Type == html.TextNode || n.Type == html.CommentNode) && match(n.Data) {
		return n.Data, true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t, ok := firstTextNode(c, match); ok {
			return t, true
		}
	}
	return "", false
}

// soleString returns the string of n when n has exactly one child that is
// either a text/comment node or an element which itself has a sole string.
func soleString(n *html.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	c := n.FirstChild
	if c == nil || c.NextSibling != nil {
		return "", false
	}
	switch c.Type {
	case html.TextNode, html.CommentNode:
		return c.Data, true
	case html.ElementNode:
		return soleString(c)
	default:
		return "", false
	}
}

func parsePercent(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
