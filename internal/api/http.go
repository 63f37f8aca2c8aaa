package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ispolnov/spendcli/internal/models"
	"github.com/ispolnov/spendcli/internal/session"
)

// HTTPClient implements Client over the ledger's REST API. Every request
// passes through do, which attaches the bearer token from the session store
// when one is present and sends unauthenticated otherwise. No retries, no
// token refresh: failures propagate to the caller unchanged.
type HTTPClient struct {
	base    string
	hc      *http.Client
	session session.Store
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, store session.Store) *HTTPClient {
	return &HTTPClient{
		base:    strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		session: store,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.session.Read(ctx)
	if err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var failure struct {
			Detail Detail `json:"detail"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&failure); decodeErr == nil {
			apiErr.Detail = failure.Detail
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, credentials{Email: email, Password: password}, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var res struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, credentials{Email: email, Password: password}, &res)
	if err != nil {
		return "", err
	}
	return res.AccessToken, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListExpenses(ctx context.Context, filter models.ListFilter) ([]models.ExpenseRecord, error) {
	var records []models.ExpenseRecord
	if err := c.do(ctx, http.MethodGet, "/expenses", filter.Values(), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) GetExpense(ctx context.Context, id int64) (*models.ExpenseRecord, error) {
	var record models.ExpenseRecord
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/expenses/%d", id), nil, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateExpenses always sends an array body. A nil slice is sent as [],
// never as null.
func (c *HTTPClient) CreateExpenses(ctx context.Context, payloads []models.ExpensePayload) ([]models.ExpenseRecord, error) {
	if payloads == nil {
		payloads = []models.ExpensePayload{}
	}
	var records []models.ExpenseRecord
	if err := c.do(ctx, http.MethodPost, "/expenses", nil, payloads, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) UpdateExpense(ctx context.Context, id int64, patch models.ExpenseUpdate) (*models.ExpenseRecord, error) {
	var record models.ExpenseRecord
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/expenses/%d", id), nil, patch, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *HTTPClient) ReplaceExpense(ctx context.Context, id int64, payload models.ExpensePayload) (*models.ExpenseRecord, error) {
	var record models.ExpenseRecord
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/expenses/%d", id), nil, payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *HTTPClient) DeleteExpense(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/expenses/%d", id), nil, nil, nil)
}

func (c *HTTPClient) Summary(ctx context.Context, start, end time.Time) (map[string]float64, error) {
	q := url.Values{}
	q.Set("start_date", start.UTC().Format(time.RFC3339))
	q.Set("end_date", end.UTC().Format(time.RFC3339))

	var summary map[string]float64
	if err := c.do(ctx, http.MethodGet, "/analytics/summary", q, nil, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}
