package remotestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
)

// StoreClient talks to a Supabase-compatible backend: row operations against
// the PostgREST endpoint, change streams over the realtime websocket.
type StoreClient struct {
	baseURL string
	anonKey string
	http    *http.Client
	logger  *logging.ChanneledLogger

	rtMu     sync.Mutex
	realtime *realtimeConn
}

// NewStoreClient creates a store client. Empty baseURL or anonKey yields an
// unconfigured client whose operations all return ErrStoreUnavailable.
func NewStoreClient(baseURL, anonKey string, timeout time.Duration, logger *logging.ChanneledLogger) *StoreClient {
	return &StoreClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *StoreClient) Configured() bool {
	return c.baseURL != "" && c.anonKey != ""
}

// Probe issues a minimal read against the discography table, mirroring the
// connectivity check the bulk loader requires before fanning out.
func (c *StoreClient) Probe(ctx context.Context) error {
	if !c.Configured() {
		return ErrStoreUnavailable
	}
	if _, err := c.do(ctx, http.MethodGet, TableDiscography, url.Values{
		"select": {"id"},
		"limit":  {"1"},
	}, nil, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (c *StoreClient) Select(ctx context.Context, table string, opts SelectOptions, dest any) error {
	if !c.Configured() {
		return ErrStoreUnavailable
	}

	params := url.Values{"select": {"*"}}
	if opts.OrderBy != "" {
		dir := "asc"
		if opts.Descending {
			dir = "desc"
		}
		params.Set("order", opts.OrderBy+"."+dir)
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}

	body, err := c.do(ctx, http.MethodGet, table, params, nil, nil)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return json.Unmarshal(body, dest)
}

func (c *StoreClient) Insert(ctx context.Context, table string, row any, dest any) error {
	if !c.Configured() {
		return ErrStoreUnavailable
	}
	body, err := c.do(ctx, http.MethodPost, table, nil, row, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return err
	}
	return decodeFirstRow(body, dest)
}

func (c *StoreClient) Update(ctx context.Context, table string, filter Filter, patch any, dest any) error {
	if !c.Configured() {
		return ErrStoreUnavailable
	}
	params := url.Values{}
	params.Set(filter.Column, "eq."+filter.Value)

	body, err := c.do(ctx, http.MethodPatch, table, params, patch, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return err
	}
	return decodeFirstRow(body, dest)
}

func (c *StoreClient) Upsert(ctx context.Context, table string, row any, conflictKey string, dest any) error {
	if !c.Configured() {
		return ErrStoreUnavailable
	}
	params := url.Values{"on_conflict": {conflictKey}}

	body, err := c.do(ctx, http.MethodPost, table, params, row, map[string]string{
		"Prefer": "resolution=merge-duplicates,return=representation",
	})
	if err != nil {
		return err
	}
	return decodeFirstRow(body, dest)
}

func (c *StoreClient) Delete(ctx context.Context, table string, filter Filter) error {
	if !c.Configured() {
		return ErrStoreUnavailable
	}
	params := url.Values{}
	params.Set(filter.Column, "eq."+filter.Value)

	_, err := c.do(ctx, http.MethodDelete, table, params, nil, nil)
	return err
}

// Close tears down the realtime connection, if one was opened.
func (c *StoreClient) Close() {
	c.rtMu.Lock()
	defer c.rtMu.Unlock()
	if c.realtime != nil {
		c.realtime.close()
		c.realtime = nil
	}
}

func (c *StoreClient) do(ctx context.Context, method, table string, params url.Values, payload any, headers map[string]string) ([]byte, error) {
	endpoint := c.baseURL + "/rest/v1/" + table
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", table, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Store().Error("Store request failed", "method", method, "table", table, "error", err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Store().Error("Store request rejected", "method", method, "table", table, "status", resp.StatusCode)
		return nil, &StoreError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	c.logger.Store().Debug("Store request complete", "method", method, "table", table, "duration", time.Since(start))
	return body, nil
}

// decodeFirstRow unpacks the single affected row from a PostgREST
// return=representation response (always an array) into dest.
func decodeFirstRow(body []byte, dest any) error {
	if dest == nil {
		return nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return json.Unmarshal(rows[0], dest)
}
