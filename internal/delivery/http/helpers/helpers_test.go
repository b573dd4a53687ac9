package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

func TestEventPageQuery(t *testing.T) {
	tests := []struct {
		query string
		want  domain.PaginationParams
	}{
		{"", domain.PaginationParams{Page: 1, PageSize: domain.DefaultEventPageSize}},
		{"page=3&page_size=5", domain.PaginationParams{Page: 3, PageSize: 5}},
		{"page=0&page_size=-1", domain.PaginationParams{Page: 1, PageSize: domain.DefaultEventPageSize}},
		{"page=x&page_size=y", domain.PaginationParams{Page: 1, PageSize: domain.DefaultEventPageSize}},
		{"page_size=1000", domain.PaginationParams{Page: 1, PageSize: domain.MaxEventPageSize}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/events?"+tt.query, nil)
			assert.Equal(t, tt.want, EventPageQuery(r))
		})
	}
}

func TestEventPageMeta(t *testing.T) {
	page := domain.PageEvents(domain.SeedEvents(), domain.PaginationParams{Page: 2, PageSize: 4})
	assert.Equal(t, PaginationMeta{Page: 2, PageSize: 4, Total: 6, TotalPages: 2}, EventPageMeta(page))
}

type loginBody struct {
	Email string `json:"email"`
}

func (b loginBody) Validate() []string {
	if b.Email == "" {
		return []string{"email is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantSubstr string
	}{
		{"valid", `{"email":"a@b.c"}`, true, ""},
		{"invalid json", `{`, false, "unexpected EOF"},
		{"unknown field", `{"email":"a@b.c","admin":true}`, false, "unknown field"},
		{"validation failure", `{}`, false, "email is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/session/login", strings.NewReader(tt.body))
			var dest loginBody

			ok := DecodeAndValidate(rr, r, &dest)

			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "a@b.c", dest.Email)
				return
			}
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var envelope APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, ErrCodeBadRequest, envelope.Error.Code)
			assert.Contains(t, envelope.Error.Message, tt.wantSubstr)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONSuccess(rr, http.StatusCreated, map[string]string{"id": "1"})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"1"},"error":null}`, rr.Body.String())

	rr = httptest.NewRecorder()
	WriteJSONError(rr, http.StatusNotFound, ErrCodeNotFound, "event not found")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"data":null,"error":{"code":"not_found","message":"event not found"}}`, rr.Body.String())

	rr = httptest.NewRecorder()
	WriteNoContent(rr)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
