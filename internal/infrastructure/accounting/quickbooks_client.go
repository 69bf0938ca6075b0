package accounting

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"nurseryhub/internal/usecase/interfaces"
)

var ErrQuickBooksRequestFailed = errors.New("quickbooks request failed")

const (
	sandboxBaseURL    = "https://sandbox-quickbooks.api.intuit.com"
	productionBaseURL = "https://quickbooks.api.intuit.com"

	// minorversion pins the API revision so response shapes stay stable.
	minorVersion = "65"

	requestTimeout = 20 * time.Second
)

// QuickBooksClient talks to the QuickBooks Online REST API. There is no
// official Go SDK, so the calls are plain HTTP against the v3 company
// endpoints. Credentials come in per call; the client holds no tenant state.
type QuickBooksClient struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.IAccountingClient = (*QuickBooksClient)(nil)

func NewQuickBooksClient() *QuickBooksClient {
	base := sandboxBaseURL
	if strings.ToLower(strings.TrimSpace(os.Getenv("QUICKBOOKS_ENV"))) == "production" {
		base = productionBaseURL
	}
	log.Printf("[accounting][quickbooks] client initialized base_url=%s", base)

	return &QuickBooksClient{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    base,
	}
}

func (c *QuickBooksClient) FetchEstimate(ctx context.Context, auth interfaces.QBOAuth, estimateID string) (interfaces.QBOEstimate, error) {
	url := fmt.Sprintf("%s/v3/company/%s/estimate/%s?minorversion=%s", c.baseURL, auth.RealmID, estimateID, minorVersion)

	body, err := c.do(ctx, auth, http.MethodGet, url, nil)
	if err != nil {
		return interfaces.QBOEstimate{}, err
	}

	var envelope struct {
		Estimate json.RawMessage `json:"Estimate"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return interfaces.QBOEstimate{}, err
	}
	return decodeEstimate(envelope.Estimate)
}

func (c *QuickBooksClient) QueryEstimates(ctx context.Context, auth interfaces.QBOAuth, startPosition, pageSize int) ([]interfaces.QBOEstimate, error) {
	url := fmt.Sprintf("%s/v3/company/%s/query?minorversion=%s", c.baseURL, auth.RealmID, minorVersion)
	query := fmt.Sprintf("SELECT * FROM Estimate STARTPOSITION %d MAXRESULTS %d", startPosition, pageSize)

	body, err := c.do(ctx, auth, http.MethodPost, url, strings.NewReader(query))
	if err != nil {
		return nil, err
	}

	var envelope struct {
		QueryResponse struct {
			Estimate []json.RawMessage `json:"Estimate"`
		} `json:"QueryResponse"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	estimates := make([]interfaces.QBOEstimate, 0, len(envelope.QueryResponse.Estimate))
	for _, raw := range envelope.QueryResponse.Estimate {
		qe, err := decodeEstimate(raw)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, qe)
	}
	return estimates, nil
}

func (c *QuickBooksClient) FetchInvoice(ctx context.Context, auth interfaces.QBOAuth, invoiceID string) (interfaces.QBOInvoice, error) {
	url := fmt.Sprintf("%s/v3/company/%s/invoice/%s?minorversion=%s", c.baseURL, auth.RealmID, invoiceID, minorVersion)

	body, err := c.do(ctx, auth, http.MethodGet, url, nil)
	if err != nil {
		return interfaces.QBOInvoice{}, err
	}

	var envelope struct {
		Invoice json.RawMessage `json:"Invoice"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return interfaces.QBOInvoice{}, err
	}
	return decodeInvoice(envelope.Invoice)
}

func (c *QuickBooksClient) CreateInvoice(ctx context.Context, auth interfaces.QBOAuth, invoice json.RawMessage) (interfaces.QBOInvoice, error) {
	url := fmt.Sprintf("%s/v3/company/%s/invoice?minorversion=%s", c.baseURL, auth.RealmID, minorVersion)

	body, err := c.do(ctx, auth, http.MethodPost, url, bytes.NewReader(invoice))
	if err != nil {
		return interfaces.QBOInvoice{}, err
	}

	var envelope struct {
		Invoice json.RawMessage `json:"Invoice"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return interfaces.QBOInvoice{}, err
	}
	return decodeInvoice(envelope.Invoice)
}

func (c *QuickBooksClient) do(ctx context.Context, auth interfaces.QBOAuth, method, url string, payload io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		if strings.Contains(url, "/query") {
			req.Header.Set("Content-Type", "application/text")
		} else {
			req.Header.Set("Content-Type", "application/json")
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[accounting][quickbooks] request failed method=%s url=%s err=%v", method, url, err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[accounting][quickbooks] non-2xx response method=%s url=%s status=%d body_len=%d", method, url, resp.StatusCode, len(body))
		return nil, fmt.Errorf("%w: status=%d", ErrQuickBooksRequestFailed, resp.StatusCode)
	}
	return body, nil
}

func decodeEstimate(raw json.RawMessage) (interfaces.QBOEstimate, error) {
	if len(raw) == 0 {
		return interfaces.QBOEstimate{}, nil
	}
	var qe interfaces.QBOEstimate
	if err := json.Unmarshal(raw, &qe); err != nil {
		return interfaces.QBOEstimate{}, err
	}
	qe.Raw = raw
	return qe, nil
}

func decodeInvoice(raw json.RawMessage) (interfaces.QBOInvoice, error) {
	if len(raw) == 0 {
		return interfaces.QBOInvoice{}, nil
	}
	var inv interfaces.QBOInvoice
	if err := json.Unmarshal(raw, &inv); err != nil {
		return interfaces.QBOInvoice{}, err
	}
	inv.Raw = raw
	return inv, nil
}
