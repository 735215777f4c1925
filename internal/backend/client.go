package backend

import (
	"context"
	"crypto/tls"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// presencePath is the fixed health endpoint exposed by the Fika server mod.
const presencePath = "fika/presence/get"

const requestTimeout = 15 * time.Second

var logger = log.New(io.Discard, "", log.LstdFlags)

// Client checks reachability of the Fika backend the headless client will
// connect to.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the given backend base URL. Certificate
// validation is disabled because local backends commonly run with
// self-signed certificates.
func NewClient(baseURL string) *Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: transport,
			Timeout:   requestTimeout,
		},
	}
}

// CheckPresence issues a single GET against the presence endpoint and
// reports whether the backend answered with a 2xx status. Transport errors
// (DNS failure, connection refused, timeout) are logged and reported as
// unhealthy; they never propagate. Retrying is left to the caller.
func (c *Client) CheckPresence(ctx context.Context) bool {
	url := c.baseURL
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	url += presencePath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Printf("presence request: %v", err)
		return false
	}
	req.Header.Set("responsecompressed", "0")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Printf("presence check against %s failed: %v", url, err)
		return false
	}
	defer resp.Body.Close()
	defer c.http.CloseIdleConnections()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
