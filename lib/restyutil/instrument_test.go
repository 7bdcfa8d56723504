package restyutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	lock     sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id string, contents string) {
	o.lock.Lock()
	defer o.lock.Unlock()
	if o.messages == nil {
		o.messages = map[string]string{}
	}
	o.messages[id] = contents
}

func TestInstrumentClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Portal", "yes")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	output := &memoryOutput{}
	client := resty.New()
	InstrumentClient(client, output)

	_, err := client.R().SetBody(map[string]string{"FileNumber": "F9"}).Post(srv.URL + "/documents")
	require.NoError(t, err)
	_, err = client.R().Get("http://127.0.0.1:0/unreachable")
	require.Error(t, err)

	require.Len(t, output.messages, 2)

	first := output.messages["1"]
	require.Contains(t, first, "POST "+srv.URL+"/documents")
	require.Contains(t, first, `{"FileNumber":"F9"}`)
	require.Contains(t, first, "418 ")
	require.Contains(t, first, "X-Portal: yes")
	require.Contains(t, first, "short and stout")

	second := output.messages["2"]
	require.Contains(t, second, "GET http://127.0.0.1:0/unreachable")
	require.Contains(t, second, "---- ERROR ----")
}

func TestInstrumentClientNilOutput(t *testing.T) {
	// must not register hooks that dereference a nil output
	client := resty.New()
	InstrumentClient(client, nil)
	_, err := client.R().Get("http://127.0.0.1:0/unreachable")
	require.Error(t, err)
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps")
	require.NoError(t, os.MkdirAll(dir, 0777))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.txt"), []byte("old"), 0600))

	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "stale.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	output.Write("1", "contents")
	contents, err := os.ReadFile(filepath.Join(output.Directory(), "1.txt"))
	require.NoError(t, err)
	require.Equal(t, "contents", string(contents))
}

func TestFormatHeaders(t *testing.T) {
	require.Equal(t, "", formatHeaders(http.Header{}))
	require.Equal(t, "A: 1\nA: 2\nB: 3", formatHeaders(http.Header{
		"B": {"3"},
		"A": {"1", "2"},
	}))
}
