// client.go contains the http plumbing shared by every call to the portal, it
// knows nothing about the shape of the responses.

package mssos

import (
	"context"
	"errors"
	"mssos-scraper/internal/components/telemetry"
	"mssos-scraper/lib/restyutil"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const jsonContentType = "application/json; charset=utf-8"

type Options struct {
	// State is stamped into every record produced.
	State string
	// BaseUrl defaults to DEFAULT_BASE_URL.
	BaseUrl string
	// Timeout defaults to 30 seconds.
	Timeout          time.Duration
	BypassCloudflare bool
	// Dump receives a copy of every http exchange when not nil.
	Dump restyutil.InstrumentOutput
}

type client struct {
	http *resty.Client
}

func newClient(opts Options, hostname string, tel telemetry.API) client {
	httpClient := resty.New()
	if opts.BypassCloudflare {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}

	httpClient.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(hostname))
	httpClient.SetTimeout(opts.Timeout)
	// every exchange gets a fresh connection, the portal drops idle ones
	httpClient.SetCloseConnection(true)

	telemetry.InstrumentResty(httpClient, "mssos_scraper/http", tel)
	restyutil.InstrumentClient(httpClient, opts.Dump)

	return client{http: httpClient}
}

// request performs a single exchange and returns the response body as text.
// A body that is not nil is sent as json.
func (c client) request(ctx context.Context, method, link string, body any) (string, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("content-type", jsonContentType)
		req.SetBody(body)
	}

	res, err := req.Execute(method, link)
	if err != nil {
		return "", &RequestError{Method: method, Url: link, Err: err}
	}
	if res.IsError() {
		return "", &RequestError{
			Method: method,
			Url:    link,
			Status: res.StatusCode(),
			Err:    errors.New(res.Status()),
		}
	}
	return res.String(), nil
}
