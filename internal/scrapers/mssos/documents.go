package mssos

import "fmt"

type documentsRequest struct {
	FileNumber string `json:"FileNumber"`
}

// the misspelled Referenece is the upstream field name
type documentRow struct {
	FilingId       *looseString `json:"FilingId"`
	Description    *looseString `json:"Description"`
	FilingTypeName *looseString `json:"FilingTypeName"`
	FiledDate      *looseString `json:"FiledDate"`
	Referenece     *looseString `json:"Referenece"`
}

func (r documentRow) missingField() string {
	switch {
	case r.FilingId == nil:
		return "FilingId"
	case r.Description == nil:
		return "Description"
	case r.FilingTypeName == nil:
		return "FilingTypeName"
	case r.FiledDate == nil:
		return "FiledDate"
	}
	return ""
}

// DecodeDocumentsResponse decodes the filed filings of a business and keeps
// the rows flagged as reference filings (Referenece is exactly "True"). A
// kept row that lacks one of the fields of DocumentRecord fails the whole
// decode.
func DecodeDocumentsResponse(baseUrl string, body []byte) ([]DocumentRecord, error) {
	payload, err := unwrapEnvelope("documents envelope", body)
	if err != nil {
		return nil, err
	}
	if payload == "" {
		return []DocumentRecord{}, nil
	}

	rows, err := decodeTable[documentRow]("documents table", payload)
	if err != nil {
		return nil, err
	}

	documents := []DocumentRecord{}
	for i, row := range rows {
		if row.Referenece.String() != "True" {
			continue
		}
		if missing := row.missingField(); missing != "" {
			return nil, &DecodeError{
				Stage: "documents table",
				Err:   fmt.Errorf("row %d: missing %s", i, missing),
			}
		}
		documents = append(documents, DocumentRecord{
			Link:        DocumentUrl(baseUrl, row.FilingId.String()),
			Description: row.Description.String(),
			Name:        row.FilingTypeName.String(),
			Date:        row.FiledDate.String(),
		})
	}
	return documents, nil
}
