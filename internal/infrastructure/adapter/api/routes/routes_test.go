package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/usecase/moneyflow"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/repository/memory"
	timeadapter "github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiFixture struct {
	store  *memory.Store
	router *gin.Engine
}

func newAPIFixture() *apiFixture {
	log := logger.NewNoopLogger()
	clock := timeadapter.NewRealTimeProvider(time.UTC)
	store := memory.NewStore(log)
	service := moneyflow.NewMoneyFlowService(memory.NewUnitOfWork(store), clock, log)

	router := NewRouter(
		log,
		clock,
		config.CORSConfig{AllowCredentials: true, MaxAge: time.Hour},
		handler.NewMoneyFlowHandler(service, clock, log),
		handler.NewHealthHandler(),
	)
	return &apiFixture{store: store, router: router}
}

func (f *apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) create(t *testing.T, body string) dto.MoneyFlowResponse {
	t.Helper()
	w := f.do(http.MethodPost, "/api/v1/money_flows", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.MoneyFlowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp.Detail
}

func TestAPI_Healthcheck(t *testing.T) {
	f := newAPIFixture()

	w := f.do(http.MethodGet, "/api/v1/healthcheck", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"お疲れ様です！！"`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAPI_CreateMoneyFlow(t *testing.T) {
	t.Run("Returns the stored entity with its generated ID", func(t *testing.T) {
		f := newAPIFixture()

		w := f.do(http.MethodPost, "/api/v1/money_flows",
			`{"title":"rice","amount":4200,"occurred_date":"2025-04-01T00:00:00","kind":"expense"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"id":1,"title":"rice","amount":4200,"occurred_date":"2025-04-01T00:00:00","kind":"expense"}`,
			w.Body.String())
		assert.Equal(t, 1, f.store.Len())
	})

	t.Run("Omitted kind defaults to expense", func(t *testing.T) {
		f := newAPIFixture()

		resp := f.create(t, `{"title":"bus","amount":230,"occurred_date":"2025-04-01"}`)

		assert.Equal(t, "expense", resp.Kind)
		assert.Equal(t, "2025-04-01T00:00:00", resp.OccurredDate.Format(dto.TimestampLayout))
	})

	t.Run("Zero amount is accepted", func(t *testing.T) {
		f := newAPIFixture()

		resp := f.create(t, `{"title":"free sample","amount":0,"occurred_date":"2025-04-01T00:00:00"}`)

		assert.Equal(t, int64(0), resp.Amount)
	})

	t.Run("Rejects invalid input with 422", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"missing title", `{"amount":1,"occurred_date":"2025-04-01T00:00:00"}`},
			{"blank title", `{"title":"   ","amount":1,"occurred_date":"2025-04-01T00:00:00"}`},
			{"title too long", `{"title":"` + strings.Repeat("あ", 31) + `","amount":1,"occurred_date":"2025-04-01T00:00:00"}`},
			{"missing amount", `{"title":"rice","occurred_date":"2025-04-01T00:00:00"}`},
			{"negative amount", `{"title":"rice","amount":-1,"occurred_date":"2025-04-01T00:00:00"}`},
			{"amount not a number", `{"title":"rice","amount":"many","occurred_date":"2025-04-01T00:00:00"}`},
			{"missing occurred date", `{"title":"rice","amount":1}`},
			{"malformed occurred date", `{"title":"rice","amount":1,"occurred_date":"yesterday"}`},
			{"unknown kind", `{"title":"rice","amount":1,"occurred_date":"2025-04-01T00:00:00","kind":"transfer"}`},
			{"uppercase kind", `{"title":"rice","amount":1,"occurred_date":"2025-04-01T00:00:00","kind":"INCOME"}`},
			{"not json", `title=rice`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newAPIFixture()

				w := f.do(http.MethodPost, "/api/v1/money_flows", tt.body)

				assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
				assert.NotEmpty(t, detail(t, w))
				assert.Equal(t, 0, f.store.Len())
			})
		}
	})

	t.Run("Title of exactly 30 characters is accepted", func(t *testing.T) {
		f := newAPIFixture()
		title := strings.Repeat("あ", 30)

		resp := f.create(t, `{"title":"`+title+`","amount":1,"occurred_date":"2025-04-01T00:00:00"}`)

		assert.Equal(t, title, resp.Title)
	})

	t.Run("Commit failure is reported as a system error", func(t *testing.T) {
		f := newAPIFixture()
		f.store.FailNextCommit(errors.New("disk full"))

		w := f.do(http.MethodPost, "/api/v1/money_flows",
			`{"title":"rice","amount":4200,"occurred_date":"2025-04-01T00:00:00"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, errs.MessageInternalServer, detail(t, w))
		assert.Equal(t, 0, f.store.Len())
	})
}

func TestAPI_GetMoneyFlow(t *testing.T) {
	t.Run("Returns an existing entity", func(t *testing.T) {
		f := newAPIFixture()
		created := f.create(t, `{"title":"salary","amount":250000,"occurred_date":"2025-04-25T10:30:00","kind":"income"}`)

		w := f.do(http.MethodGet, "/api/v1/money_flows/1", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.MoneyFlowResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, "income", resp.Kind)
		assert.Equal(t, "2025-04-25T10:30:00", resp.OccurredDate.Format(dto.TimestampLayout))
	})

	t.Run("Fractional seconds survive the round trip", func(t *testing.T) {
		f := newAPIFixture()
		created := f.create(t, `{"title":"coffee","amount":480,"occurred_date":"2025-04-01T08:15:30.250"}`)

		w := f.do(http.MethodGet, "/api/v1/money_flows/1", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"id":1,"title":"coffee","amount":480,"occurred_date":"2025-04-01T08:15:30.25","kind":"expense"}`,
			w.Body.String())
		assert.True(t, created.OccurredDate.Equal(time.Date(2025, 4, 1, 8, 15, 30, 250_000_000, time.UTC)))
	})

	t.Run("Unknown ID is a business error", func(t *testing.T) {
		f := newAPIFixture()

		w := f.do(http.MethodGet, "/api/v1/money_flows/42", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, errs.MessageMoneyFlowNotFound, detail(t, w))
	})

	t.Run("Non-numeric ID is rejected", func(t *testing.T) {
		f := newAPIFixture()

		w := f.do(http.MethodGet, "/api/v1/money_flows/abc", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAPI_ListMoneyFlows(t *testing.T) {
	t.Run("Empty store returns an empty array", func(t *testing.T) {
		f := newAPIFixture()

		w := f.do(http.MethodGet, "/api/v1/money_flows", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Filters by kind", func(t *testing.T) {
		f := newAPIFixture()
		f.create(t, `{"title":"rice","amount":4200,"occurred_date":"2025-04-01T00:00:00","kind":"expense"}`)
		f.create(t, `{"title":"salary","amount":250000,"occurred_date":"2025-04-02T00:00:00","kind":"income"}`)

		w := f.do(http.MethodGet, "/api/v1/money_flows?kind=income", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`[{"id":2,"title":"salary","amount":250000,"occurred_date":"2025-04-02T00:00:00","kind":"income"}]`,
			w.Body.String())
	})

	t.Run("Without a filter returns every entry", func(t *testing.T) {
		f := newAPIFixture()
		f.create(t, `{"title":"rice","amount":4200,"occurred_date":"2025-04-01T00:00:00","kind":"expense"}`)
		f.create(t, `{"title":"salary","amount":250000,"occurred_date":"2025-04-02T00:00:00","kind":"income"}`)

		w := f.do(http.MethodGet, "/api/v1/money_flows", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp []dto.MoneyFlowResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("Unknown kind is rejected", func(t *testing.T) {
		f := newAPIFixture()

		w := f.do(http.MethodGet, "/api/v1/money_flows?kind=transfer", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Empty kind is rejected", func(t *testing.T) {
		f := newAPIFixture()
		f.create(t, `{"title":"rice","amount":4200,"occurred_date":"2025-04-01T00:00:00","kind":"expense"}`)

		w := f.do(http.MethodGet, "/api/v1/money_flows?kind=", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, detail(t, w), "kind")
	})
}

func TestAPI_UpdateMoneyFlow(t *testing.T) {
	t.Run("Replaces every field", func(t *testing.T) {
		f := newAPIFixture()
		f.create(t, `{"title":"rice","amount":4200,"occurred_date":"2025-04-01T00:00:00","kind":"income"}`)

		w := f.do(http.MethodPut, "/api/v1/money_flows",
			`{"id":1,"title":"brown rice","amount":4800,"occurred_date":"2025-04-03T12:00:00"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"id":1,"title":"brown rice","amount":4800,"occurred_date":"2025-04-03T12:00:00","kind":"expense"}`,
			w.Body.String())
	})

	t.Run("Unknown ID is a business error", func(t *testing.T) {
		f := newAPIFixture()

		w := f.do(http.MethodPut, "/api/v1/money_flows",
			`{"id":999,"title":"rice","amount":4200,"occurred_date":"2025-04-01T00:00:00","kind":"expense"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"detail":"指定したIDが存在しません。"}`, w.Body.String())
	})

	t.Run("Missing ID is rejected", func(t *testing.T) {
		f := newAPIFixture()

		w := f.do(http.MethodPut, "/api/v1/money_flows",
			`{"title":"rice","amount":4200,"occurred_date":"2025-04-01T00:00:00"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAPI_DeleteMoneyFlow(t *testing.T) {
	t.Run("Deletes an existing entry", func(t *testing.T) {
		f := newAPIFixture()
		f.create(t, `{"title":"rice","amount":4200,"occurred_date":"2025-04-01T00:00:00"}`)

		w := f.do(http.MethodDelete, "/api/v1/money_flows", `{"id":1}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = f.do(http.MethodGet, "/api/v1/money_flows/1", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, errs.MessageMoneyFlowNotFound, detail(t, w))
	})

	t.Run("Unknown ID is a business error", func(t *testing.T) {
		f := newAPIFixture()

		w := f.do(http.MethodDelete, "/api/v1/money_flows", `{"id":7}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, errs.MessageMoneyFlowNotFound, detail(t, w))
	})

	t.Run("Commit failure keeps the entry", func(t *testing.T) {
		f := newAPIFixture()
		f.create(t, `{"title":"rice","amount":4200,"occurred_date":"2025-04-01T00:00:00"}`)
		f.store.FailNextCommit(errors.New("connection reset"))

		w := f.do(http.MethodDelete, "/api/v1/money_flows", `{"id":1}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, errs.MessageInternalServer, detail(t, w))
		assert.Equal(t, 1, f.store.Len())
	})
}

func TestAPI_UnknownRoutes(t *testing.T) {
	f := newAPIFixture()

	w := f.do(http.MethodGet, "/api/v1/nothing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", detail(t, w))

	w = f.do(http.MethodPatch, "/api/v1/money_flows", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method Not Allowed", detail(t, w))
}

func TestAPI_CORS(t *testing.T) {
	f := newAPIFixture()

	t.Run("Allowed origin gets CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/healthcheck", nil)
		req.Header.Set("Origin", "http://localhost:5174")
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5174", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Preflight is answered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/money_flows", nil)
		req.Header.Set("Origin", "http://127.0.0.1:5174")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
	})

	t.Run("Other origins are refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/healthcheck", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
