package mssos

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	DEFAULT_BASE_URL = "https://corp.sos.ms.gov"

	SEARCH_ENDPOINT    = "/corp/Services/MS/CorpServices.asmx/BusinessNameSearch"
	DOCUMENTS_ENDPOINT = "/corp/Services/MS/CorpServices.asmx/GetFiledFilingsV2"

	detailPagePath = "/corp/portal/c/page/corpbusinessidsearch/~/ViewXSLTFileByName.aspx?providerName=MSBSD_CorporationBusinessDetails&FilingId="
	documentPath   = "/corpconv/portal/c/ExecuteWorkflow.aspx?workflowid=g12dbd558-fa5d-49a1-a869-ad8b9db198db&FilingId="
)

// DetailUrl is the public detail page of a filing.
func DetailUrl(baseUrl, filingId string) string {
	return strings.TrimSuffix(baseUrl, "/") + detailPagePath + url.QueryEscape(filingId)
}

// DocumentUrl is the workflow page that serves a filed document.
func DocumentUrl(baseUrl, filingId string) string {
	return strings.TrimSuffix(baseUrl, "/") + documentPath + url.QueryEscape(filingId)
}

// looseString accepts any JSON scalar, the portal is not consistent about
// quoting ids. null decodes to "".
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var str string
		err := json.Unmarshal(data, &str)
		if err != nil {
			return err
		}
		*s = looseString(str)
		return nil
	case '{', '[':
		return fmt.Errorf("expected a scalar value, got %s", data)
	}
	*s = looseString(data)
	return nil
}

func (s *looseString) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

var errMissingPayload = errors.New(`missing "d" field`)

// unwrapEnvelope decodes the outer {"d": "<json>"} object every portal
// service answers with and returns the inner json. An empty payload (either
// "" or the two character string `""`) is returned as "".
func unwrapEnvelope(stage string, body []byte) (string, error) {
	var env struct {
		D json.RawMessage `json:"d"`
	}
	err := json.Unmarshal(body, &env)
	if err != nil {
		return "", &DecodeError{Stage: stage, Err: err}
	}
	if len(env.D) == 0 || bytes.Equal(env.D, []byte("null")) {
		return "", &DecodeError{Stage: stage, Err: errMissingPayload}
	}

	var payload string
	err = json.Unmarshal(env.D, &payload)
	if err != nil {
		return "", &DecodeError{
			Stage: stage,
			Err:   fmt.Errorf(`"d" is not a string: %w`, err),
		}
	}
	if payload == `""` {
		return "", nil
	}
	return payload, nil
}

type table[T any] struct {
	Table []T `json:"Table"`
}

// decodeTable decodes the inner payload, a missing Table member is an empty
// table.
func decodeTable[T any](stage, payload string) ([]T, error) {
	var inner *table[T]
	err := json.Unmarshal([]byte(payload), &inner)
	if err != nil {
		return nil, &DecodeError{Stage: stage, Err: err}
	}
	if inner == nil {
		return nil, &DecodeError{Stage: stage, Err: errors.New("payload is null")}
	}
	return inner.Table, nil
}
