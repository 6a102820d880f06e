package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thegreatvegan/Qura/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestForwarder(endpoint string) *FormspreeForwarder {
	return NewFormspreeForwarder(config.ContactConfig{
		Endpoint: endpoint,
		Timeout:  2 * time.Second,
	}, testLogger())
}

func TestFormspreeForwarder_PostsJSON(t *testing.T) {
	var (
		gotMethod, gotAccept, gotType string
		gotBody                       map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAccept = r.Header.Get("Accept")
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	err := newTestForwarder(srv.URL).Forward(context.Background(), validSubmission())

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotAccept)
	assert.Contains(t, gotType, "application/json")
	assert.Equal(t, map[string]string{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"company": "Analytical Engines",
		"message": "We would like a demo.",
	}, gotBody)
}

func TestFormspreeForwarder_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"error string", http.StatusNotFound, `{"error":"Form not found"}`, "Form not found"},
		{"field errors", http.StatusUnprocessableEntity, `{"errors":[{"field":"email","message":"should be an email"}]}`, "should be an email"},
		{"empty body", http.StatusInternalServerError, `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestForwarder(srv.URL).Forward(context.Background(), validSubmission())

			require.ErrorIs(t, err, ErrUpstreamRejected)
			var uerr *UpstreamError
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, tt.status, uerr.Status)
			assert.Equal(t, tt.wantMsg, uerr.Message)
		})
	}
}

func TestFormspreeForwarder_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	err := newTestForwarder(endpoint).Forward(context.Background(), validSubmission())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUpstreamRejected)
	assert.Contains(t, err.Error(), "forward submission")
}

func TestUpstreamError_Error(t *testing.T) {
	assert.Equal(t, "form endpoint returned 502", (&UpstreamError{Status: 502}).Error())
	assert.Equal(t, "form endpoint returned 404: gone", (&UpstreamError{Status: 404, Message: "gone"}).Error())
}

func TestFormspreeForwarder_SentRequestsAreNotRetried(t *testing.T) {
	tests := []struct {
		name    string
		handler func(w http.ResponseWriter)
	}{
		{"timeout after delivery", func(w http.ResponseWriter) {
			time.Sleep(300 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}},
		{"server error", func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				tt.handler(w)
			}))
			defer srv.Close()

			fwd := NewFormspreeForwarder(config.ContactConfig{
				Endpoint: srv.URL,
				Timeout:  100 * time.Millisecond,
				Retries:  2,
			}, testLogger())

			err := fwd.Forward(context.Background(), validSubmission())

			require.Error(t, err)
			assert.Equal(t, int32(1), hits.Load(), "submission posted once")
		})
	}
}

func TestNotDelivered(t *testing.T) {
	dial := &url.Error{Op: "Post", URL: "https://formspree.io/f/x", Err: &net.OpError{
		Op: "dial", Net: "tcp", Err: errors.New("connection refused"),
	}}
	read := &url.Error{Op: "Post", URL: "https://formspree.io/f/x", Err: &net.OpError{
		Op: "read", Net: "tcp", Err: errors.New("connection reset by peer"),
	}}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"dial failure", dial, true},
		{"dns failure", &net.DNSError{Err: "no such host", Name: "formspree.io"}, true},
		{"read failure", read, false},
		{"deadline", context.DeadlineExceeded, false},
		{"no error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notDelivered(nil, tt.err))
		})
	}
}
