package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ispolnov/spendcli/internal/models"
	"github.com/ispolnov/spendcli/internal/session"
)

type capturedRequest struct {
	method string
	path   string
	query  string
	auth   string
	body   []byte
}

// newTestClient spins up a server that records the last request and replies
// with the given status and body.
func newTestClient(t *testing.T, status int, respBody string, store session.Store) (*HTTPClient, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.RawQuery
		captured.auth = r.Header.Get("Authorization")
		captured.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)

	return NewHTTPClient(srv.URL, 2*time.Second, store), captured
}

func TestBearerInjection(t *testing.T) {
	ctx := context.Background()

	t.Run("token present", func(t *testing.T) {
		store := session.NewMemoryStore()
		require.NoError(t, store.Save(ctx, "tok-abc"))
		client, captured := newTestClient(t, http.StatusOK, `{"id":1,"email":"a@b.c","is_active":true}`, store)

		_, err := client.Me(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-abc", captured.auth)
	})

	t.Run("token absent", func(t *testing.T) {
		client, captured := newTestClient(t, http.StatusOK, `[]`, session.NewMemoryStore())

		_, err := client.ListExpenses(ctx, models.ListFilter{})
		require.NoError(t, err)
		assert.Empty(t, captured.auth)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	client, captured := newTestClient(t, http.StatusOK, `{"access_token":"jwt-123","token_type":"bearer"}`, session.NewMemoryStore())

	token, err := client.Login(ctx, "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-123", token)
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/auth/login", captured.path)
	assert.JSONEq(t, `{"email":"a@b.c","password":"secret"}`, string(captured.body))
}

func TestCreateExpensesAlwaysSendsArray(t *testing.T) {
	ctx := context.Background()
	client, captured := newTestClient(t, http.StatusCreated, `[{"id":7}]`, session.NewMemoryStore())

	payload := models.ExpensePayload{
		Amount:   12.50,
		Currency: models.CurrencyUSD,
		Category: models.CategoryFood,
		SpentAt:  models.NewDate(2024, time.January, 5),
	}

	records, err := client.CreateExpenses(ctx, []models.ExpensePayload{payload})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(7), records[0].ID)

	var sent []map[string]any
	require.NoError(t, json.Unmarshal(captured.body, &sent), "body must be a JSON array")
	require.Len(t, sent, 1)
	assert.Equal(t, "2024-01-05", sent[0]["spent_at"])

	// nil slice still goes out as an empty array, not null
	_, err = client.CreateExpenses(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(captured.body))
}

func TestListExpensesQuery(t *testing.T) {
	ctx := context.Background()
	client, captured := newTestClient(t, http.StatusOK, `[]`, session.NewMemoryStore())

	min := 5.0
	from := models.NewDate(2024, time.February, 1)
	_, err := client.ListExpenses(ctx, models.ListFilter{
		Category:  models.CategoryTransport,
		MinAmount: &min,
		DateFrom:  &from,
		Query:     "taxi",
	})
	require.NoError(t, err)

	assert.Equal(t, "/expenses", captured.path)
	assert.Contains(t, captured.query, "category=Transport")
	assert.Contains(t, captured.query, "min_amount=5")
	assert.Contains(t, captured.query, "date_from=2024-02-01")
	assert.Contains(t, captured.query, "q=taxi")
	assert.NotContains(t, captured.query, "max_amount")
	assert.NotContains(t, captured.query, "date_to")
}

func TestErrorResponses(t *testing.T) {
	ctx := context.Background()

	t.Run("string detail", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusNotFound, `{"detail":"Expense not found"}`, session.NewMemoryStore())

		_, err := client.GetExpense(ctx, 42)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "Expense not found", apiErr.Detail.String())
	})

	t.Run("field list detail", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusUnprocessableEntity, `{"detail":[{"field":"amount","msg":"invalid"}]}`, session.NewMemoryStore())

		_, err := client.CreateExpenses(ctx, nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "amount: invalid", apiErr.Detail.String())
	})

	t.Run("empty body", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusInternalServerError, ``, session.NewMemoryStore())

		err := client.DeleteExpense(ctx, 1)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.Detail.Empty())
	})

	t.Run("unreachable server", func(t *testing.T) {
		client := NewHTTPClient("http://127.0.0.1:1", 200*time.Millisecond, session.NewMemoryStore())

		_, err := client.Me(ctx)
		assert.True(t, errors.Is(err, ErrUnavailable))
	})
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	client, captured := newTestClient(t, http.StatusOK, `{"Food_USD":52.5,"Transport_EUR":40}`, session.NewMemoryStore())

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	summary, err := client.Summary(ctx, start, end)
	require.NoError(t, err)

	assert.Equal(t, "/analytics/summary", captured.path)
	assert.Contains(t, captured.query, "start_date=")
	assert.Equal(t, 52.5, summary["Food_USD"])
	assert.Equal(t, 40.0, summary["Transport_EUR"])
}
