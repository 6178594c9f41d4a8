package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestConnector(t *testing.T, handler http.HandlerFunc, opts ...HttpOpts) *Connector {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewConnector(&ConnectorConfig{BaseURL: server.URL + "/", Logger: zap.NewNop()}, opts...)
}

func TestDoRequestDecodesJSON(t *testing.T) {
	var gotBody map[string]string
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"hi"}`))
	})

	var resp struct {
		Response string `json:"response"`
	}
	err := c.DoRequest(context.Background(), http.MethodPost, "/chat", map[string]string{"user_id": "u1"}, &resp)
	require.NoError(t, err)

	assert.Equal(t, "hi", resp.Response)
	assert.Equal(t, "u1", gotBody["user_id"])
}

func TestDoRequestHTTPError(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"No chat history found for user bob"}`))
	})

	err := c.DoRequest(context.Background(), http.MethodDelete, "/vectordb/memory/bob", nil, nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "No chat history found for user bob", httpErr.ServerError())
}

func TestDoRequestOnlyAcceptsStatusOK(t *testing.T) {
	for _, status := range []int{http.StatusCreated, http.StatusAccepted, http.StatusNoContent} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				if status != http.StatusNoContent {
					w.Write([]byte(`{"message":"queued"}`))
				}
			})

			var resp struct {
				Message string `json:"message"`
			}
			err := c.DoRequest(context.Background(), http.MethodDelete, "/vectordb/memory", nil, &resp)
			require.Error(t, err)

			var httpErr *HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, status, httpErr.StatusCode)
			assert.Empty(t, httpErr.ServerError())
			assert.Empty(t, resp.Message)
		})
	}
}

func TestServerErrorWithoutErrorField(t *testing.T) {
	cases := map[string]string{
		"not json":     "Internal Server Error",
		"no error key": `{"detail":"Not authenticated"}`,
		"empty body":   "",
		"null error":   `{"error":null}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			e := &HTTPError{StatusCode: 500, Message: body}
			assert.Empty(t, e.ServerError())
		})
	}

	structured := &HTTPError{StatusCode: 422, Message: `{"error":{"code":7}}`}
	assert.Equal(t, `{"code":7}`, structured.ServerError())
}

func TestDoRequestNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: url, Logger: zap.NewNop()}, WithRequestTimeout(time.Second))

	err := c.DoRequest(context.Background(), http.MethodGet, "/users", nil, nil)
	require.Error(t, err)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestBasicAuthAndRequestID(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "alice", user)
		assert.Equal(t, "secret", pass)
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		w.Write([]byte(`{}`))
	},
		WithRequestLogging(),
		WithBasicAuth("alice", "secret"),
		WithRequestID(),
	)

	require.NoError(t, c.DoRequest(context.Background(), http.MethodGet, "/users", nil, nil))
}

func TestBasicAuthSentWithBlankUsername(t *testing.T) {
	cases := map[string]struct {
		username, password string
		want               string
	}{
		"password only": {"", "secret", "Basic OnNlY3JldA=="},
		"both blank":    {"", "", "Basic Og=="},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tc.want, r.Header.Get("Authorization"))
			}, WithBasicAuth(tc.username, tc.password))

			require.NoError(t, c.DoRequest(context.Background(), http.MethodGet, "/users", nil, nil))
		})
	}
}

func TestRequestIDKeepsCallerValue(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fixed-id", r.Header.Get(RequestIDHeader))
	}, WithRequestID())

	err := c.DoRequest(context.Background(), http.MethodGet, "/users", nil, nil, WithHeader(RequestIDHeader, "fixed-id"))
	require.NoError(t, err)
}

func TestDoMultipartRequestStreamsParts(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		files := r.MultipartForm.File["files"]
		assert.Len(t, files, 2)

		names := make([]string, 0, len(files))
		for _, fh := range files {
			names = append(names, fh.Filename)
		}
		json.NewEncoder(w).Encode(map[string][]string{"uploaded": names})
	})

	prepare := func(mw *multipart.Writer) error {
		for _, name := range []string{"a.pdf", "b.pdf"} {
			part, err := mw.CreateFormFile("files", name)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, strings.NewReader("%PDF-1.4")); err != nil {
				return err
			}
		}
		return nil
	}

	var resp struct {
		Uploaded []string `json:"uploaded"`
	}
	require.NoError(t, c.DoMultipartRequest(context.Background(), http.MethodPost, "/pdf/upload", prepare, &resp))
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, resp.Uploaded)
}

func TestDoMultipartRequestPrepareError(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
	})

	boom := errors.New("boom")
	err := c.DoMultipartRequest(context.Background(), http.MethodPost, "/pdf/upload", func(*multipart.Writer) error {
		return boom
	}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestDisableKeepAlivesOpensConnectionPerRequest(t *testing.T) {
	var mu sync.Mutex
	remotes := map[string]struct{}{}

	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		remotes[r.RemoteAddr] = struct{}{}
		mu.Unlock()
		w.Write([]byte(`{}`))
	}, WithDisableKeepAlives(true))

	for range 3 {
		require.NoError(t, c.DoRequest(context.Background(), http.MethodGet, "/users", nil, nil))
	}

	assert.Len(t, remotes, 3)
}
