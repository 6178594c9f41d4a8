package mockserver

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(opts Options) (*Server, http.Handler) {
	if opts.Username == "" {
		opts.Username, opts.Password = "admin", "admin"
	}
	s := NewServer(opts)
	return s, s.Handler()
}

func do(t *testing.T, h http.Handler, req *http.Request, auth bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	if auth {
		req.SetBasicAuth("admin", "admin")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func uploadRequest(t *testing.T, files map[string][]byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/pdf/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHealth(t *testing.T) {
	_, h := newTestServer(Options{})

	rec, body := do(t, h, httptest.NewRequest(http.MethodGet, "/health", nil), false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	_, h := newTestServer(Options{})

	for _, target := range []string{"/users", "/pdf", "/vectordb/pdf/sources"} {
		rec, body := do(t, h, httptest.NewRequest(http.MethodGet, target, nil), false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Equal(t, "Invalid credentials", body["error"], target)
	}
}

func TestChatRecordsMemory(t *testing.T) {
	s, h := newTestServer(Options{})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"user_id":"user_1","message":"hi"}`))
	rec, body := do(t, h, req, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Echo for user_1: hi", body["response"])
	assert.Equal(t, []string{"user_1"}, s.Store().Users())
}

func TestChatRejectsIncompleteBody(t *testing.T) {
	_, h := newTestServer(Options{})

	rec, body := do(t, h, httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"user_id":"u"}`)), false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "user_id and message are required", body["error"])
}

func TestChatRateLimit(t *testing.T) {
	_, h := newTestServer(Options{ChatRateLimit: 0.001, ChatRateBurst: 1})

	first, _ := do(t, h, httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"user_id":"u","message":"a"}`)), false)
	second, body := do(t, h, httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"user_id":"u","message":"b"}`)), false)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "Rate limit exceeded", body["error"])
}

func TestUploadIngestAndClearSource(t *testing.T) {
	s, h := newTestServer(Options{})
	content, err := SamplePDF("Doc", "body")
	require.NoError(t, err)

	rec, body := do(t, h, uploadRequest(t, map[string][]byte{"doc.pdf": content}), true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"doc.pdf"}, body["uploaded"])

	rec, body = do(t, h, httptest.NewRequest(http.MethodPost, "/pdf/ingest/doc.pdf", nil), true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "doc.pdf", body["ingested"])
	assert.Equal(t, []string{"data/doc.pdf"}, s.Store().Sources())

	rec, body = do(t, h, httptest.NewRequest(http.MethodDelete, "/vectordb/pdf/doc.pdf", nil), true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PDF data cleared for source doc.pdf.", body["message"])
	assert.Empty(t, s.Store().Sources())
	assert.Equal(t, []string{"doc.pdf"}, s.Store().PDFs())
}

func TestUploadRejectsNonPDF(t *testing.T) {
	s, h := newTestServer(Options{})

	rec, body := do(t, h, uploadRequest(t, map[string][]byte{"notes.txt": []byte("hello")}), true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "notes.txt is not a PDF file", body["error"])
	assert.Empty(t, s.Store().PDFs())
}

func TestClearUnknownUser(t *testing.T) {
	_, h := newTestServer(Options{})

	rec, body := do(t, h, httptest.NewRequest(http.MethodDelete, "/vectordb/memory/bob", nil), true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No chat history found for user bob", body["error"])
}

func TestDeleteAllReturnsEmptyList(t *testing.T) {
	_, h := newTestServer(Options{})

	rec, body := do(t, h, httptest.NewRequest(http.MethodDelete, "/pdf", nil), true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, body["deleted"])
}

func TestSeed(t *testing.T) {
	store := NewStore()
	require.NoError(t, Seed(store))

	assert.Equal(t, []string{"faq.pdf", "handbook.pdf"}, store.PDFs())
	assert.Equal(t, []string{"data/handbook.pdf"}, store.Sources())
	assert.Equal(t, []string{"user_0"}, store.Users())
}
