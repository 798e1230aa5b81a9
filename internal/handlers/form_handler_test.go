package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jricekitchen/order-backend/internal/session"
	"github.com/jricekitchen/order-backend/pkg/logger"
)

func TestFormHandler_GetForm(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantMarketer string
	}{
		{
			name:         "with attribution tag",
			target:       "/api/form?m=flyer7",
			wantMarketer: "flyer7",
		},
		{
			name:         "without attribution tag",
			target:       "/api/form",
			wantMarketer: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := session.NewStore()
			handler := NewFormHandler(sessions, logger.New("error"))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler.GetForm(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}

			var resp struct {
				SessionID string `json:"sessionId"`
				Fields    []struct {
					Name string `json:"name"`
				} `json:"fields"`
			}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.SessionID == "" {
				t.Fatal("sessionId is empty")
			}
			if len(resp.Fields) != 5 {
				t.Errorf("fields count = %d, want 5", len(resp.Fields))
			}

			sess, ok := sessions.Get(resp.SessionID)
			if !ok {
				t.Fatal("session was not stored")
			}
			if sess.Marketer != tt.wantMarketer {
				t.Errorf("Marketer = %q, want %q", sess.Marketer, tt.wantMarketer)
			}
		})
	}
}
