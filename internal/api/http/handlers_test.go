package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sora4431/ghstats/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	s := NewStore()
	s.Replace([]render.Card{
		{Kind: render.KindOverview, Theme: "dark", Data: []byte("<svg>dark</svg>")},
		{Kind: render.KindOverview, Theme: "light", Data: []byte("<svg>light</svg>")},
	})
	return s
}

func TestCardHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		cardName       string
		wantStatusCode int
		wantBody       string
	}{
		{
			name:           "existing card",
			cardName:       "overview-dark.svg",
			wantStatusCode: http.StatusOK,
			wantBody:       "<svg>dark</svg>",
		},
		{
			name:           "unknown card",
			cardName:       "radar-sepia.svg",
			wantStatusCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewCardHandler(
				func(*http.Request) string { return tt.cardName },
				testStore(),
			)

			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodGet, "/cards/"+tt.cardName, nil))

			resp := rec.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
			if tt.wantBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, string(body))
				assert.Equal(t, "image/svg+xml; charset=utf-8", resp.Header.Get("Content-Type"))
			}
		})
	}
}

func TestIndexHandler(t *testing.T) {
	t.Parallel()

	h := NewIndexHandler(testStore())

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/cards", nil))

	resp := rec.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"cards": ["overview-dark.svg", "overview-light.svg"]}`, string(body))
}
