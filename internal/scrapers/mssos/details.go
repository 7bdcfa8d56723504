package mssos

import (
	"bytes"
	"fmt"
	"mssos-scraper/internal/components/telemetry"
	"mssos-scraper/pkg/htmlutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	report_extract_name     = "extract.name"
	report_extract_agent    = "extract.agent"
	report_extract_officers = "extract.officers"
)

const (
	LABEL_NAME              = "Name"
	LABEL_STATUS            = "Status:"
	LABEL_BUSINESS_ID       = "Business ID:"
	LABEL_EFFECTIVE_DATE    = "Effective Date:"
	LABEL_BUSINESS_TYPE     = "Business Type:"
	LABEL_PRINCIPAL_ADDRESS = "Principal Office Address:"

	SECTION_AGENT    = "Registered Agent"
	SECTION_OFFICERS = "Officers & Directors"
)

type detailPage struct {
	doc *goquery.Document
	tel telemetry.API
}

// ExtractDetail reads a business detail page. Structures that are missing
// from the page leave their fields empty (and are reported to tel as
// warnings) instead of failing the extraction. Documents is left empty, it
// is filled by Scraper.Details.
func ExtractDetail(state string, page []byte, tel telemetry.API) (BusinessDetail, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return BusinessDetail{}, &ExtractionError{Err: err}
	}
	p := detailPage{doc: doc, tel: tel}

	detail := BusinessDetail{
		State:              state,
		Name:               p.name(),
		Status:             p.labeled(LABEL_STATUS),
		RegistrationNumber: p.labeled(LABEL_BUSINESS_ID),
		DateRegistered:     p.labeled(LABEL_EFFECTIVE_DATE),
		EntityType:         p.labeled(LABEL_BUSINESS_TYPE),
		PrincipalAddress:   p.labeled(LABEL_PRINCIPAL_ADDRESS),
		Officers:           p.officers(),
		Documents:          []DocumentRecord{},
	}
	detail.AgentName, detail.AgentAddress = p.agent()
	return detail, nil
}

// labelCell finds the first <td> whose trimmed text is exactly label.
func (p detailPage) labelCell(label string) *html.Node {
	var found *html.Node
	p.doc.Find("td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		if strings.TrimSpace(cell.Text()) == label {
			found = cell.Nodes[0]
			return false
		}
		return true
	})
	return found
}

// section finds the last <div> whose stripped text contains needle, the
// innermost match comes last in document order.
func (p detailPage) section(needle string) *html.Node {
	var found *html.Node
	for _, div := range p.doc.Find("div").Nodes {
		if strings.Contains(htmlutil.StrippedText(div), needle) {
			found = div
		}
	}
	return found
}

func (p detailPage) name() string {
	cell := p.labelCell(LABEL_NAME)
	if cell == nil {
		p.tel.ReportWarning(report_extract_name, fmt.Errorf("label %q not found", LABEL_NAME))
		return ""
	}
	row := htmlutil.NextElement(cell, htmlutil.Tag(atom.Tr))
	if row == nil {
		p.tel.ReportWarning(report_extract_name, fmt.Errorf("no row after label %q", LABEL_NAME))
		return ""
	}
	first := goquery.NewDocumentFromNode(row).Find("td").First()
	if first.Length() == 0 {
		p.tel.ReportWarning(report_extract_name, fmt.Errorf("name row has no cells"))
		return ""
	}
	return strings.TrimSpace(first.Text())
}

// labeled returns the text of the cell that follows the label's cell, or
// nil when the label is not on the page.
func (p detailPage) labeled(label string) *string {
	cell := p.labelCell(label)
	if cell == nil {
		return nil
	}
	value := htmlutil.NextElement(cell, htmlutil.Tag(atom.Td))
	if value == nil {
		return nil
	}
	text := joinLines(htmlutil.SplitLines(value))
	return &text
}

func (p detailPage) subTable(sectionName string) *goquery.Selection {
	div := p.section(sectionName)
	if div == nil {
		return nil
	}
	table := htmlutil.NextElement(div, htmlutil.TagWithClass(atom.Table, "subTable"))
	if table == nil {
		return nil
	}
	return goquery.NewDocumentFromNode(table).Selection
}

func (p detailPage) agent() (name string, address string) {
	table := p.subTable(SECTION_AGENT)
	if table == nil {
		p.tel.ReportWarning(report_extract_agent, fmt.Errorf("%q table not found", SECTION_AGENT))
		return "", ""
	}
	rows := table.Find("tr")
	if rows.Length() < 2 {
		p.tel.ReportWarning(report_extract_agent, fmt.Errorf("agent table has %d rows", rows.Length()))
		return "", ""
	}
	cell := rows.Eq(1).Find("td").First()
	if cell.Length() == 0 {
		p.tel.ReportWarning(report_extract_agent, fmt.Errorf("agent row has no cells"))
		return "", ""
	}

	anchors := htmlutil.GetAnchors(nil, cell.Find("a").First())
	if len(anchors) > 0 {
		name = anchors[0].Name
	} else {
		p.tel.ReportWarning(report_extract_agent, fmt.Errorf("agent cell has no link"))
	}
	return name, cellAddress(cell.Nodes[0])
}

// officers returns nil when there are no officer rows.
func (p detailPage) officers() []OfficerRecord {
	table := p.subTable(SECTION_OFFICERS)
	if table == nil {
		if p.section(SECTION_OFFICERS) != nil {
			p.tel.ReportWarning(report_extract_officers, fmt.Errorf("%q table not found", SECTION_OFFICERS))
		}
		return nil
	}

	var officers []OfficerRecord
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		// header
		if i == 0 {
			return
		}
		cols := row.Find("td")
		if cols.Length() < 3 {
			return
		}
		nameCell := cols.Eq(0)

		officer := OfficerRecord{
			Address: cellAddress(nameCell.Nodes[0]),
			Title:   strings.TrimSpace(cols.Eq(2).Text()),
		}
		anchors := htmlutil.GetAnchors(nil, nameCell.Find("a").First())
		if len(anchors) > 0 {
			name := anchors[0].Name
			officer.Name = &name
		}
		officers = append(officers, officer)
	})
	return officers
}

// cellAddress is every line of a name cell after the first (which holds the
// name), joined by a space.
func cellAddress(cell *html.Node) string {
	lines := htmlutil.SplitLines(cell)
	if len(lines) < 2 {
		return ""
	}
	return joinLines(lines[1:])
}

func joinLines(lines []string) string {
	nonEmpty := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			nonEmpty = append(nonEmpty, line)
		}
	}
	return strings.Join(nonEmpty, " ")
}
