package provider

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Session is an authenticated connection to the data-provider gateway.
// Acquire one with Connect, pass it explicitly to whatever needs to query,
// and release it with Close on every exit path.
type Session struct {
	baseURL string
	token   string
	client  *http.Client
}

// Connect logs in to the gateway and returns an open session. Proxy support
// is optional; an unparsable proxy URL is ignored.
func Connect(baseURL, apiKey, proxyURL string, timeout time.Duration) (*Session, error) {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	s := &Session{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}

	params := url.Values{}
	if apiKey != "" {
		params.Set("api_key", apiKey)
	}
	body, err := s.get("/api/v1/login", params)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	rs, err := parseEnvelope(body)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	s.token = rs.Get("access_token").String()
	return s, nil
}

// Close logs out of the gateway. Logout failures are logged, not returned:
// there is nothing a caller can do about them.
func (s *Session) Close() {
	if _, err := s.get("/api/v1/logout", url.Values{}); err != nil {
		log.Printf("[WARN] logout failed: %v", err)
	}
}

// query runs one record-set method against the gateway.
func (s *Session) query(method string, params url.Values) (*recordSet, error) {
	params.Set("method", method)
	body, err := s.get("/api/v1/query", params)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", method, err)
	}
	rs, err := parseRecordSet(body)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", method, err)
	}
	return rs, nil
}

func (s *Session) get(path string, params url.Values) ([]byte, error) {
	endpoint := s.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
