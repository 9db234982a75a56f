package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"ratesmart/config"
	"ratesmart/internal/domain/service"
	"ratesmart/internal/errors"
	"ratesmart/internal/infra/pubsub"
)

// syncBuffer lets the server goroutine and the test share a log sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func newTestHandler(verify bool) (*PushHandler, *syncBuffer) {
	logs := &syncBuffer{}
	cfg := &config.Config{Worker: &config.WorkerConfig{VerifyPushAuth: verify}}
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewJSONHandler(logs, nil)),
	})

	return h, logs
}

func pushBody(t *testing.T, event service.ReviewEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func serve(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_FromLocalPublisher(t *testing.T) {
	h, logs := newTestHandler(false)

	e := echo.New()
	e.POST("/push", h.HandlePush)
	srv := httptest.NewServer(e)
	defer srv.Close()

	publisher := pubsub.NewLocalHTTPPublisher(srv.URL+"/push", slog.New(slog.NewTextHandler(&syncBuffer{}, nil)))
	err := publisher.PublishReviewEvent(context.Background(), &service.ReviewEvent{
		RequestID:  "req-42",
		Type:       service.ReviewCreated,
		ReviewID:   "r-1",
		BusinessID: "b-1",
		Rating:     5,
		Sentiment:  "positive",
		IsFake:     true,
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "Review flagged as fake")
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"review_id":"r-1"`)
	assert.Contains(t, out, `"level":"WARN"`)
}

func TestHandlePush_EventKinds(t *testing.T) {
	tests := []struct {
		name  string
		event service.ReviewEvent
		want  string
	}{
		{name: "negative", event: service.ReviewEvent{Type: service.ReviewCreated, Sentiment: "negative"}, want: "Negative review awaiting reply"},
		{name: "plain", event: service.ReviewEvent{Type: service.ReviewCreated, Sentiment: "neutral"}, want: "Review created"},
		{name: "replied", event: service.ReviewEvent{Type: service.ReviewReplied}, want: "Business replied to review"},
		{name: "deleted", event: service.ReviewEvent{Type: service.ReviewDeleted}, want: "Review deleted"},
		{name: "unknown", event: service.ReviewEvent{Type: "review.archived"}, want: "Unknown review event type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, logs := newTestHandler(false)
			rec := serve(h, pushBody(t, tt.event), nil)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, logs.String(), tt.want)
		})
	}
}

func TestHandlePush_Malformed(t *testing.T) {
	h, _ := newTestHandler(false)

	assert.Equal(t, http.StatusBadRequest, serve(h, `{"message":{"data":"%%%"}}`, nil).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, serve(h, `{"message":{"data":"`+notJSON+`"}}`, nil).Code)
}

func TestHandlePush_VerifiesToken(t *testing.T) {
	h, _ := newTestHandler(true)
	body := pushBody(t, service.ReviewEvent{Type: service.ReviewDeleted})

	assert.Equal(t, http.StatusUnauthorized, serve(h, body, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, body, http.Header{"Authorization": {"Basic abc"}}).Code)

	h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "good" {
			return nil, errors.New("bad signature")
		}
		assert.Equal(t, "http://example.com/push", audience)

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}
	assert.Equal(t, http.StatusUnauthorized, serve(h, body, http.Header{"Authorization": {"Bearer forged"}}).Code)
	assert.Equal(t, http.StatusOK, serve(h, body, http.Header{"Authorization": {"Bearer good"}}).Code)

	h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Issuer: "evil.example.com"}, nil
	}
	assert.Equal(t, http.StatusUnauthorized, serve(h, body, http.Header{"Authorization": {"Bearer good"}}).Code)
}
