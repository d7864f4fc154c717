package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanavlnc/folio/app/portfolio"
	"github.com/shanavlnc/folio/app/store"
)

func newTestHandler(t *testing.T) (*Handler, *store.Screens) {
	t.Helper()
	screens, err := store.NewScreens(portfolio.DefaultContent(), store.ScreensConfig{
		TTL:          time.Hour,
		FadeDuration: 800 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = screens.Close() })
	return New(screens, portfolio.DefaultContent()), screens
}

func TestHandler_HandlePortfolio(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name   string
		query  string
		code   int
		theme  string
		text   string
		accent string
	}{
		{name: "default light", query: "", code: http.StatusOK, theme: "light", text: "#000000", accent: "#2D9CDB"},
		{name: "light", query: "?theme=light", code: http.StatusOK, theme: "light", text: "#000000", accent: "#2D9CDB"},
		{name: "dark", query: "?theme=dark", code: http.StatusOK, theme: "dark", text: "#FFFFFF", accent: "#FFD700"},
		{name: "invalid", query: "?theme=sepia", code: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio"+tc.query, http.NoBody)
			rec := httptest.NewRecorder()
			h.handlePortfolio(rec, req)

			require.Equal(t, tc.code, rec.Code)
			if tc.code != http.StatusOK {
				return
			}

			var resp struct {
				Theme   string             `json:"theme"`
				Style   portfolio.StyleSet `json:"style"`
				Content portfolio.Content  `json:"content"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.theme, resp.Theme)
			assert.Equal(t, tc.text, resp.Style.Text)
			assert.Equal(t, tc.accent, resp.Style.Accent)
			assert.Equal(t, portfolio.DefaultContent(), resp.Content)
		})
	}
}

func TestHandler_HandleScreen(t *testing.T) {
	h, screens := newTestHandler(t)
	scr, err := screens.Mount()
	require.NoError(t, err)
	scr.ToggleTheme()

	mounted := scr.Snapshot(time.Now()).MountedAt

	t.Run("fading", func(t *testing.T) {
		h.now = func() time.Time { return mounted.Add(200 * time.Millisecond) }
		req := httptest.NewRequest(http.MethodGet, "/api/v1/screens/"+scr.ID(), http.NoBody)
		req.SetPathValue("id", scr.ID())
		rec := httptest.NewRecorder()
		h.handleScreen(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, scr.ID(), resp["id"])
		assert.Equal(t, "dark", resp["theme"])
		assert.Equal(t, "fading-in", resp["phase"])
		assert.InDelta(t, 200, resp["elapsed_ms"], 0.1)
		assert.InDelta(t, 600, resp["remaining_ms"], 0.1)
		op := resp["opacity"].(float64)
		assert.Greater(t, op, 0.0)
		assert.Less(t, op, 1.0)
	})

	t.Run("settled", func(t *testing.T) {
		h.now = func() time.Time { return mounted.Add(time.Second) }
		req := httptest.NewRequest(http.MethodGet, "/api/v1/screens/"+scr.ID(), http.NoBody)
		req.SetPathValue("id", scr.ID())
		rec := httptest.NewRecorder()
		h.handleScreen(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "settled", resp["phase"])
		assert.InDelta(t, 1.0, resp["opacity"], 1e-9)
		assert.InDelta(t, 0, resp["remaining_ms"], 0.1)
	})

	t.Run("unknown", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/screens/"+id, http.NoBody)
		req.SetPathValue("id", id)
		rec := httptest.NewRecorder()
		h.handleScreen(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/screens/xyz", http.NoBody)
		req.SetPathValue("id", "xyz")
		rec := httptest.NewRecorder()
		h.handleScreen(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
