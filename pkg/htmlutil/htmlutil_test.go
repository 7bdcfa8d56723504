package htmlutil

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

func parse(t testing.TB, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestNextElement(t *testing.T) {
	doc := parse(t, `
		<table>
			<tr><td id="label">Status:</td><td id="value">Good Standing</td></tr>
		</table>
		<div id="section">Registered Agent<span>inner</span></div>
		<p>between</p>
		<table class="layout"></table>
		<table class="grid subTable"><tr><td>agent</td></tr></table>
	`)

	label := doc.Find("#label").Nodes[0]
	next := NextElement(label, Tag(atom.Td))
	require.NotNil(t, next)
	require.Equal(t, "Good Standing", GetText(next))

	section := doc.Find("#section").Nodes[0]
	span := NextElement(section, Tag(atom.Span))
	require.NotNil(t, span, "descendants come first in document order")
	require.Equal(t, "inner", GetText(span))

	sub := NextElement(section, TagWithClass(atom.Table, "subTable"))
	require.NotNil(t, sub)
	require.True(t, HasClass(sub, "grid"))

	require.Nil(t, NextElement(sub, Tag(atom.Table)))
	require.Nil(t, NextElement(nil, Tag(atom.Table)))
}

func TestStrippedText(t *testing.T) {
	doc := parse(t, `<div> Officers &amp; Directors <b>  more </b> <i></i></div>`)
	div := doc.Find("div").Nodes[0]
	require.Equal(t, "Officers & Directorsmore", StrippedText(div))
	require.Equal(t, "", StrippedText(nil))
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		markup string
		expect []string
	}{
		{
			markup: `<a href="#">JANE DOE</a><br/>123 MAIN ST<br>SUITE 4<br />JACKSON, MS 39201`,
			expect: []string{"JANE DOE", "123 MAIN ST", "SUITE 4", "JACKSON, MS 39201"},
		},
		{
			markup: `<a href="#">ONLY NAME</a>`,
			expect: []string{"ONLY NAME"},
		},
		{
			markup: `
				<a href="#">JOHN</a><br/>
				  PO BOX   12
				<br/><br/>TUPELO`,
			expect: []string{"JOHN", "PO BOX 12", "", "TUPELO"},
		},
		{
			markup: `<span><a href="#">JANE AGENT</a><br/>200 STATE ST<br/>JACKSON</span>`,
			expect: []string{"JANE AGENT", "200 STATE ST", "JACKSON"},
		},
		{
			markup: `<font><a href="#">JOHN DOE</a><br/>1 A ST</font>`,
			expect: []string{"JOHN DOE", "1 A ST"},
		},
		{
			markup: `<b>ACME</b> <span>LLC<br/><i>100 MAIN ST<br>JACKSON</i></span>, MS`,
			expect: []string{"ACME LLC", "100 MAIN ST", "JACKSON, MS"},
		},
	}

	for _, test := range cases {
		doc := parse(t, "<table><tr><td>"+test.markup+"</td></tr></table>")
		td := doc.Find("td").Nodes[0]
		require.Equal(t, test.expect, SplitLines(td))
	}

	require.Nil(t, SplitLines(nil))
}

func TestNormalize(t *testing.T) {
	table := []struct {
		input    string
		expected string
	}{
		{input: "  ACME   LLC \n", expected: "ACME LLC"},
		{input: "\tline\none\u0007", expected: "line one"},
		{input: "", expected: ""},
	}
	for _, row := range table {
		require.Equal(t, row.expected, Normalize(row.input))
	}
}

func TestGetAnchors(t *testing.T) {
	doc := parse(t, `<div>
		<a href="/corp/view?FilingId=1">  First
			Co </a>
		<a href="https://example.com/x">Second</a>
	</div>`)
	base, err := url.Parse("https://corp.sos.ms.gov/corp/portal/")
	if err != nil {
		t.Fatal(err)
	}

	anchors := GetAnchors(base, doc.Find("a"))
	require.Len(t, anchors, 2)
	require.Equal(t, "First Co", anchors[0].Name)
	require.Equal(t, "https://corp.sos.ms.gov/corp/view?FilingId=1", anchors[0].Url.String())
	require.Equal(t, "https://example.com/x", anchors[1].Url.String())

	noBase := GetAnchors(nil, doc.Find("a").First())
	require.Equal(t, "/corp/view?FilingId=1", noBase[0].Url.String())
}
