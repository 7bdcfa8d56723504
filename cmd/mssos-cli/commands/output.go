package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"mssos-scraper/internal/scrapers/mssos"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func printJson(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func orNone(value *string) string {
	if value == nil {
		return "-"
	}
	return *value
}

func printSummaries(out io.Writer, results []mssos.BusinessSummary) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Name", "Status", "Id", "Url"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Name, r.Status, r.Id, r.Url})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d results", len(results))})
	t.Render()
}

func printDocuments(out io.Writer, documents []mssos.DocumentRecord) {
	t := newTable(out)
	t.SetTitle("Documents")
	t.AppendHeader(table.Row{"Name", "Description", "Date", "Link"})
	for _, d := range documents {
		t.AppendRow(table.Row{d.Name, d.Description, d.Date, d.Link})
	}
	t.Render()
}

func printDetail(out io.Writer, detail mssos.BusinessDetail) {
	fields := newTable(out)
	fields.SetTitle(detail.Name)
	fields.AppendRows([]table.Row{
		{"State", detail.State},
		{"Status", orNone(detail.Status)},
		{"Registration number", orNone(detail.RegistrationNumber)},
		{"Date registered", orNone(detail.DateRegistered)},
		{"Entity type", orNone(detail.EntityType)},
		{"Principal address", orNone(detail.PrincipalAddress)},
		{"Agent", detail.AgentName},
		{"Agent address", detail.AgentAddress},
	})
	fields.Render()

	if len(detail.Officers) > 0 {
		officers := newTable(out)
		officers.SetTitle("Officers & Directors")
		officers.AppendHeader(table.Row{"Name", "Title", "Address"})
		for _, o := range detail.Officers {
			officers.AppendRow(table.Row{orNone(o.Name), o.Title, o.Address})
		}
		officers.Render()
	}

	if len(detail.Documents) > 0 {
		printDocuments(out, detail.Documents)
	}
}
