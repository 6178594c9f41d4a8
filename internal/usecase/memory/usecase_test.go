package memory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/futig/vectordb-client/internal/entity"
	pkghttp "github.com/futig/vectordb-client/pkg/http"
	"github.com/stretchr/testify/assert"
)

type fakeConsole struct {
	answers []string
	out     strings.Builder
}

func (c *fakeConsole) Prompt(label string) (string, error) {
	c.out.WriteString(label)
	if len(c.answers) == 0 {
		return "", io.EOF
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

func (c *fakeConsole) Println(a ...any) {
	c.out.WriteString(fmt.Sprintln(a...))
}

type fakeConnector struct {
	users      []string
	sources    []string
	listErr    error
	sourcesErr error
	clearErr   error
	message    *string

	calls []string
}

func (f *fakeConnector) ClearAllMemory(ctx context.Context) (*entity.MessageResponse, error) {
	f.calls = append(f.calls, "ClearAllMemory")
	return f.messageResponse()
}

func (f *fakeConnector) ClearUserMemory(ctx context.Context, userID string) (*entity.MessageResponse, error) {
	f.calls = append(f.calls, "ClearUserMemory:"+userID)
	return f.messageResponse()
}

func (f *fakeConnector) ClearAllPDFVectors(ctx context.Context) (*entity.MessageResponse, error) {
	f.calls = append(f.calls, "ClearAllPDFVectors")
	return f.messageResponse()
}

func (f *fakeConnector) ClearPDFVectors(ctx context.Context, source string) (*entity.MessageResponse, error) {
	f.calls = append(f.calls, "ClearPDFVectors:"+source)
	return f.messageResponse()
}

func (f *fakeConnector) ListUsers(ctx context.Context) ([]string, error) {
	f.calls = append(f.calls, "ListUsers")
	return f.users, f.listErr
}

func (f *fakeConnector) ListPDFSources(ctx context.Context) ([]string, error) {
	f.calls = append(f.calls, "ListPDFSources")
	return f.sources, f.sourcesErr
}

func (f *fakeConnector) messageResponse() (*entity.MessageResponse, error) {
	if f.clearErr != nil {
		return nil, f.clearErr
	}
	return &entity.MessageResponse{Message: f.message}, nil
}

func ptr(s string) *string {
	return &s
}

func TestClearAllChatHistory(t *testing.T) {
	conn := &fakeConnector{message: ptr("Memory cleared for all users.")}
	console := &fakeConsole{}

	NewUsecase(conn, console).ClearAllChatHistory(context.Background())

	assert.Equal(t, "✅ Memory cleared for all users.\n", console.out.String())
}

func TestClearAllChatHistoryMessageField(t *testing.T) {
	console := &fakeConsole{}
	NewUsecase(&fakeConnector{}, console).ClearAllChatHistory(context.Background())
	assert.Equal(t, "✅ Memory cleared for all users.\n", console.out.String())

	console = &fakeConsole{}
	NewUsecase(&fakeConnector{message: ptr("")}, console).ClearAllChatHistory(context.Background())
	assert.Equal(t, "✅ \n", console.out.String())
}

func TestClearAllChatHistoryPrintsServerError(t *testing.T) {
	conn := &fakeConnector{clearErr: &pkghttp.HTTPError{StatusCode: 500, Message: `{"error":"X"}`}}
	console := &fakeConsole{}

	NewUsecase(conn, console).ClearAllChatHistory(context.Background())

	assert.Equal(t, "Error: X\n", console.out.String())
}

func TestClearAllChatHistoryFallsBackWithoutErrorField(t *testing.T) {
	conn := &fakeConnector{clearErr: &pkghttp.HTTPError{StatusCode: 502, Message: "Bad Gateway"}}
	console := &fakeConsole{}

	NewUsecase(conn, console).ClearAllChatHistory(context.Background())

	assert.Equal(t, "Error: Failed to clear all memory.\n", console.out.String())
}

func TestClearChatHistoryByUser(t *testing.T) {
	conn := &fakeConnector{users: []string{"alice", "bob"}, message: ptr("Memory cleared for user bob.")}
	console := &fakeConsole{answers: []string{"bob"}}

	NewUsecase(conn, console).ClearChatHistoryByUser(context.Background())

	out := console.out.String()
	assert.Contains(t, out, "Available users with chat history:\n1. alice\n2. bob\n")
	assert.Contains(t, out, "✅ Memory cleared for user bob.")
	assert.Equal(t, []string{"ListUsers", "ClearUserMemory:bob"}, conn.calls)
}

func TestClearChatHistoryByUserStopsWhenNoUsers(t *testing.T) {
	conn := &fakeConnector{}
	console := &fakeConsole{answers: []string{"bob"}}

	NewUsecase(conn, console).ClearChatHistoryByUser(context.Background())

	assert.Equal(t, "No users with chat history found.\n", console.out.String())
	assert.Equal(t, []string{"ListUsers"}, conn.calls)
}

func TestClearChatHistoryByUserStopsWhenListingFails(t *testing.T) {
	conn := &fakeConnector{listErr: &pkghttp.HTTPError{StatusCode: 401, Message: `{"error":"Invalid credentials"}`}}
	console := &fakeConsole{answers: []string{"bob"}}

	NewUsecase(conn, console).ClearChatHistoryByUser(context.Background())

	assert.Equal(t, "Error fetching available users.\n", console.out.String())
	assert.Equal(t, []string{"ListUsers"}, conn.calls)
}

func TestClearChatHistoryByUserRejectsEmptyID(t *testing.T) {
	conn := &fakeConnector{users: []string{"alice"}}
	console := &fakeConsole{answers: []string{""}}

	NewUsecase(conn, console).ClearChatHistoryByUser(context.Background())

	assert.Contains(t, console.out.String(), "User ID cannot be empty.")
	assert.Equal(t, []string{"ListUsers"}, conn.calls)
}

func TestClearPDFByNameShowsBasenames(t *testing.T) {
	conn := &fakeConnector{sources: []string{"data/a.pdf", `data\b.pdf`}}
	console := &fakeConsole{answers: []string{"a.pdf"}}

	NewUsecase(conn, console).ClearPDFByName(context.Background())

	out := console.out.String()
	assert.Contains(t, out, "Available PDF sources in vectordb:\n1. a.pdf\n2. b.pdf\n")
	assert.Contains(t, out, "✅ PDF data cleared for source a.pdf.")
	assert.Equal(t, []string{"ListPDFSources", "ClearPDFVectors:a.pdf"}, conn.calls)
}

func TestClearPDFByNameContinuesAfterListingFailure(t *testing.T) {
	conn := &fakeConnector{
		sourcesErr: &pkghttp.HTTPError{StatusCode: 500},
		clearErr:   &pkghttp.HTTPError{StatusCode: 404, Message: `{"error":"No PDF data found for source x.pdf"}`},
	}
	console := &fakeConsole{answers: []string{"x.pdf"}}

	NewUsecase(conn, console).ClearPDFByName(context.Background())

	out := console.out.String()
	assert.Contains(t, out, "Failed to fetch available PDF sources.\n")
	assert.Contains(t, out, "Error: No PDF data found for source x.pdf\n")
	assert.Equal(t, []string{"ListPDFSources", "ClearPDFVectors:x.pdf"}, conn.calls)
}

func TestClearPDFByNameRejectsEmptySource(t *testing.T) {
	conn := &fakeConnector{sources: []string{"data/a.pdf"}}
	console := &fakeConsole{answers: []string{""}}

	NewUsecase(conn, console).ClearPDFByName(context.Background())

	assert.Contains(t, console.out.String(), "Source name cannot be empty.")
	assert.Equal(t, []string{"ListPDFSources"}, conn.calls)
}

func TestClearPDFByNameEndOfInput(t *testing.T) {
	conn := &fakeConnector{sources: []string{"data/a.pdf"}}
	console := &fakeConsole{}

	NewUsecase(conn, console).ClearPDFByName(context.Background())

	assert.Equal(t, []string{"ListPDFSources"}, conn.calls)
}

func TestClearAllVectorDBMemoryRunsBothSteps(t *testing.T) {
	conn := &fakeConnector{clearErr: &pkghttp.NetworkError{Err: errors.New("connection refused")}}
	console := &fakeConsole{}

	NewUsecase(conn, console).ClearAllVectorDBMemory(context.Background())

	assert.Equal(t, []string{"ClearAllPDFVectors", "ClearAllMemory"}, conn.calls)
	assert.Equal(t,
		"Error: Failed to clear PDF data. (connection refused)\nError: Failed to clear all memory. (connection refused)\n",
		console.out.String())
}

func TestListAvailableUsers(t *testing.T) {
	console := &fakeConsole{}
	NewUsecase(&fakeConnector{users: []string{"u1", "u2"}}, console).ListAvailableUsers(context.Background())
	assert.Equal(t, "Available users:\n1. u1\n2. u2\n", console.out.String())

	console = &fakeConsole{}
	NewUsecase(&fakeConnector{}, console).ListAvailableUsers(context.Background())
	assert.Equal(t, "No users found.\n", console.out.String())
}

func TestListPDFsInVectorDB(t *testing.T) {
	console := &fakeConsole{}
	NewUsecase(&fakeConnector{sources: []string{"data/x.pdf"}}, console).ListPDFsInVectorDB(context.Background())
	assert.Equal(t, "Available PDFs in vectordb:\n1. x.pdf\n", console.out.String())

	console = &fakeConsole{}
	NewUsecase(&fakeConnector{sourcesErr: &pkghttp.HTTPError{StatusCode: 500}}, console).ListPDFsInVectorDB(context.Background())
	assert.Equal(t, "Error fetching PDFs from vectordb.\n", console.out.String())
}
