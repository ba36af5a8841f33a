package transport

import (
	"context"
	"fmt"
	"io"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyEngine is the default Engine, backed by a resty client. Response
// parsing is left to this package: the engine hands back the undecoded
// header block and payload.
type RestyEngine struct {
	client *resty.Client
}

// NewRestyEngine builds an engine whose dispatches are bounded by timeout.
func NewRestyEngine(timeout time.Duration) *RestyEngine {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetDoNotParseResponse(true)
	c.SetAllowGetMethodPayload(true)
	return &RestyEngine{client: c}
}

// Do performs one blocking round-trip.
func (e *RestyEngine) Do(ctx context.Context, method, url string, headers []string, body []byte) (*Exchange, error) {
	req := e.client.R().SetContext(ctx)
	for _, line := range headers {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		req.SetHeader(name, strings.TrimPrefix(value, " "))
	}
	if len(body) > 0 {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, err
	}
	raw := resp.RawResponse
	if raw == nil {
		return nil, fmt.Errorf("resty: no raw response")
	}
	defer raw.Body.Close()

	head, err := httputil.DumpResponse(raw, false)
	if err != nil {
		return nil, fmt.Errorf("dump response header: %w", err)
	}
	payload, err := io.ReadAll(raw.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &Exchange{Header: head, Body: payload}, nil
}
