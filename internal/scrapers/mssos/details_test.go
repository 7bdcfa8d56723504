package mssos

import (
	_ "embed"
	"mssos-scraper/internal/components/telemetry"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/details.html
var detailsPage []byte

//go:embed testdata/details_sparse.html
var sparseDetailsPage []byte

//go:embed testdata/details_wrapped.html
var wrappedDetailsPage []byte

func ptr(s string) *string {
	return &s
}

func TestExtractDetail(t *testing.T) {
	tel := &telemetry.Recorder{}
	detail, err := ExtractDetail("MS", detailsPage, tel)
	require.NoError(t, err)

	expected := BusinessDetail{
		State:              "MS",
		Name:               "ACME WIDGETS, LLC",
		Status:             ptr("Good Standing"),
		RegistrationNumber: ptr("1234567"),
		DateRegistered:     ptr("01/02/2003"),
		EntityType:         ptr("Limited Liability Company"),
		PrincipalAddress:   ptr("100 MAIN ST JACKSON, MS 39201"),
		AgentName:          "JANE AGENT",
		AgentAddress:       "200 STATE ST JACKSON, MS 39201",
		Officers: []OfficerRecord{
			{
				Name:    ptr("JOHN DOE"),
				Address: "1 A ST JACKSON, MS",
				Title:   "President",
			},
			{
				Name:    ptr("MARY ROE"),
				Address: "2 B ST",
				Title:   "Secretary",
			},
			{
				Address: "3 C ST",
				Title:   "Director",
			},
		},
		Documents: []DocumentRecord{},
	}
	diff := cmp.Diff(expected, detail)
	if diff != "" {
		t.Fatal(diff)
	}
	require.Empty(t, tel.Reports(telemetry.LEVEL_WARNING))
}

func TestExtractDetailOfficerAddresses(t *testing.T) {
	detail, err := ExtractDetail("MS", detailsPage, &telemetry.Recorder{})
	require.NoError(t, err)

	// no officer carries the lines of the officers before it
	require.Len(t, detail.Officers, 3)
	for i, officer := range detail.Officers {
		for _, previous := range detail.Officers[:i] {
			require.NotContains(t, officer.Address, previous.Address)
		}
		require.NotContains(t, officer.Address, "DOE")
		require.NotContains(t, officer.Address, "ROE")
	}
	require.NotContains(t, detail.AgentAddress, detail.AgentName)
}

func TestExtractDetailWrappedCells(t *testing.T) {
	tel := &telemetry.Recorder{}
	detail, err := ExtractDetail("MS", wrappedDetailsPage, tel)
	require.NoError(t, err)

	require.Equal(t, "WRAPPED INC", detail.Name)
	require.Equal(t, ptr("Good Standing"), detail.Status)
	require.Equal(t, ptr("100 MAIN ST JACKSON"), detail.PrincipalAddress)
	require.Equal(t, "JANE AGENT", detail.AgentName)
	require.Equal(t, "200 STATE ST JACKSON", detail.AgentAddress)

	expected := []OfficerRecord{
		{Name: ptr("JOHN DOE"), Address: "1 A ST", Title: "President"},
		{Name: ptr("MARY ROE"), Address: "2 B ST", Title: "Secretary"},
	}
	diff := cmp.Diff(expected, detail.Officers)
	if diff != "" {
		t.Fatal(diff)
	}
	require.Empty(t, tel.Reports(telemetry.LEVEL_WARNING))
}

func TestExtractDetailSparse(t *testing.T) {
	tel := &telemetry.Recorder{}
	detail, err := ExtractDetail("MS", sparseDetailsPage, tel)
	require.NoError(t, err)

	require.Equal(t, "SPARSE CORP", detail.Name)
	require.Equal(t, ptr("Dissolved"), detail.Status)
	require.Nil(t, detail.RegistrationNumber)
	require.Nil(t, detail.DateRegistered)
	require.Nil(t, detail.EntityType)
	require.Nil(t, detail.PrincipalAddress)
	require.Nil(t, detail.Officers)
	require.Equal(t, "", detail.AgentName)
	require.Equal(t, "", detail.AgentAddress)
	require.NotNil(t, detail.Documents)

	_, found := tel.Find(telemetry.LEVEL_WARNING, report_extract_agent)
	require.True(t, found)
}

func TestExtractDetailEmptyPage(t *testing.T) {
	tel := &telemetry.Recorder{}
	detail, err := ExtractDetail("MS", []byte("<p>maintenance</p>"), tel)
	require.NoError(t, err)

	require.Equal(t, "MS", detail.State)
	require.Equal(t, "", detail.Name)
	require.Nil(t, detail.Status)
	require.Nil(t, detail.Officers)

	_, found := tel.Find(telemetry.LEVEL_WARNING, report_extract_name)
	require.True(t, found)
}
