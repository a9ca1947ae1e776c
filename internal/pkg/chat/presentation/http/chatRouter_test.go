package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	busadapter "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/adapter"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/chat/persistence/repository/adapter"
)

func newTestRouter(t *testing.T) (*gin.Engine, *busadapter.MemoryBus) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := busadapter.NewMemoryBus(event.DefaultBindings())

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), adapter.NewMemChatRepository(), bus, log)
	return r, bus
}

func doJSON(r *gin.Engine, method, path, userID, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req.Header.Set("User-Id", userID)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatRoutes_SendAndRequestLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/chat/send", "adopter-1",
		`{"senderId":"adopter-1","receiverId":"owner-1","adoptionPostId":"post-1","message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var msg struct {
		ChatID  string `json:"chatId"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	require.NotEmpty(t, msg.ChatID)
	assert.Equal(t, "hello", msg.Message)

	w = doJSON(r, http.MethodPost, "/api/v1/chat/"+msg.ChatID+"/send-request", "adopter-1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// a second send conflicts, the request is already pending
	w = doJSON(r, http.MethodPost, "/api/v1/chat/"+msg.ChatID+"/send-request", "adopter-1", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// only the owner may accept
	w = doJSON(r, http.MethodPost, "/api/v1/chat/"+msg.ChatID+"/accept-request", "adopter-1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/chat/"+msg.ChatID+"/accept-request", "owner-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChatRoutes_History(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/chat/send", "adopter-1",
		`{"senderId":"adopter-1","receiverId":"owner-1","adoptionPostId":"post-1","message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var msg struct {
		ChatID string `json:"chatId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))

	w = doJSON(r, http.MethodGet, "/api/v1/chat/"+msg.ChatID+"/history", "owner-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var history []struct {
		Message string `json:"message"`
		Seen    bool   `json:"seen"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "hello", history[0].Message)
	assert.True(t, history[0].Seen)

	// outsiders are rejected
	w = doJSON(r, http.MethodGet, "/api/v1/chat/"+msg.ChatID+"/history", "stranger", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/chat/missing/history", "owner-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatRoutes_RequireIdentityHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/v1/chat/chats", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/chat/send", "",
		`{"senderId":"a","receiverId":"b","message":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatRoutes_CallerMustBeSender(t *testing.T) {
	r, bus := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/chat/send", "impostor",
		`{"senderId":"adopter-1","receiverId":"owner-1","adoptionPostId":"post-1","message":"hi"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, bus.Published())
}
