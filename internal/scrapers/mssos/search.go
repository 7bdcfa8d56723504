package mssos

import "errors"

type searchRequest struct {
	SearchType   string `json:"SearchType"`
	BusinessName string `json:"BusinessName"`
}

func newSearchRequest(query string) searchRequest {
	return searchRequest{
		SearchType:   "startingwith",
		BusinessName: query,
	}
}

type searchRow struct {
	BusinessName looseString `json:"BusinessName"`
	FilingStatus looseString `json:"FilingStatus"`
	BusinessId   looseString `json:"BusinessId"`
	FilingId     looseString `json:"FilingId"`
}

// DecodeSearchResponse decodes the answer of the business name search. A
// missing or empty "d" payload is how the portal says "no matches", it
// decodes to an empty list without error.
func DecodeSearchResponse(state, baseUrl string, body []byte) ([]BusinessSummary, error) {
	payload, err := unwrapEnvelope("search envelope", body)
	if errors.Is(err, errMissingPayload) {
		return []BusinessSummary{}, nil
	}
	if err != nil {
		return nil, err
	}
	if payload == "" {
		return []BusinessSummary{}, nil
	}

	rows, err := decodeTable[searchRow]("search table", payload)
	if err != nil {
		return nil, err
	}

	results := make([]BusinessSummary, len(rows))
	for i, row := range rows {
		results[i] = BusinessSummary{
			State:  state,
			Name:   string(row.BusinessName),
			Status: string(row.FilingStatus),
			Id:     string(row.BusinessId),
			Url:    DetailUrl(baseUrl, string(row.FilingId)),
		}
	}
	return results, nil
}
