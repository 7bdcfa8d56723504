package htmlutil

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// GetText returns the concatenation of every text node under node, as is.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// StrippedText trims every text node under node and concatenates the
// non-empty results without a separator.
func StrippedText(node *html.Node) string {
	var out strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			out.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if node != nil {
		walk(node)
	}
	return out.String()
}

var innerWhitespace = regexp.MustCompile(`\s+`)

// Normalize drops non-printable runes, trims the ends and collapses runs of
// whitespace into a single space.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	s = strings.TrimSpace(s)
	return innerWhitespace.ReplaceAllString(s, " ")
}

// nextInOrder returns the node that follows n in document order, descending
// into n's children first.
func nextInOrder(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// NextElement walks the document in order starting right after node and
// returns the first element accepted by match, or nil.
func NextElement(node *html.Node, match func(*html.Node) bool) *html.Node {
	if node == nil {
		return nil
	}
	for n := nextInOrder(node); n != nil; n = nextInOrder(n) {
		if n.Type == html.ElementNode && match(n) {
			return n
		}
	}
	return nil
}

// Tag matches elements by tag name.
func Tag(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.DataAtom == a
	}
}

// TagWithClass matches elements by tag name that carry class in their
// class attribute.
func TagWithClass(a atom.Atom, class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.DataAtom == a && HasClass(n, class)
	}
}

func HasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// SplitLines splits the contents of node into lines at every <br> element,
// including breaks nested inside wrapper elements. Each line is the
// normalized text between two breaks in document order, empty lines are kept
// so that line indexes stay stable.
func SplitLines(node *html.Node) []string {
	if node == nil {
		return nil
	}

	var lines []string
	var current strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			switch {
			case child.Type == html.TextNode:
				current.WriteString(child.Data)
			case child.Type == html.ElementNode && child.DataAtom == atom.Br:
				lines = append(lines, Normalize(current.String()))
				current.Reset()
			default:
				walk(child)
			}
		}
	}
	walk(node)
	lines = append(lines, Normalize(current.String()))
	return lines
}

type Anchor struct {
	Name string
	Url  *url.URL
}

// GetAnchors collects the anchors in sel, resolving hrefs against base when
// base is not nil. Anchors with unparsable hrefs are skipped.
func GetAnchors(base *url.URL, sel *goquery.Selection) []Anchor {
	anchors := []Anchor{}
	for _, n := range sel.Nodes {
		href := ""
		for _, a := range n.Attr {
			if a.Key == "href" {
				href = a.Val
				break
			}
		}

		link, err := url.Parse(href)
		if err != nil {
			continue
		}
		if base != nil {
			link = base.ResolveReference(link)
		}

		anchors = append(anchors, Anchor{
			Name: Normalize(GetText(n)),
			Url:  link,
		})
	}
	return anchors
}
