package archive

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/coachdesk/internal/netx"
)

// HTTPSink uploads documents with PUT to baseURL/<name>, which suits WebDAV
// shares and upload endpoints.
type HTTPSink struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSink(baseURL string, client *http.Client) *HTTPSink {
	return &HTTPSink{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *HTTPSink) Put(ctx context.Context, name string, data []byte) (string, error) {
	target := s.baseURL + "/" + url.PathEscape(name)
	if err := netx.Put(ctx, s.client, target, "application/json", data); err != nil {
		return "", fmt.Errorf("http archive: %w", err)
	}
	return target, nil
}
