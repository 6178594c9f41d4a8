package memory

import (
	"context"
	"fmt"

	"github.com/futig/vectordb-client/internal/cli/render"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Usecase drives the chat memory and vectordb operations of the memory
// manager menu. Every outcome is written to the console; nothing is
// returned to the caller.
type Usecase struct {
	connector MemoryConnector
	console   Console
}

func NewUsecase(connector MemoryConnector, console Console) *Usecase {
	return &Usecase{
		connector: connector,
		console:   console,
	}
}

func (uc *Usecase) ClearAllChatHistory(ctx context.Context) {
	resp, err := uc.connector.ClearAllMemory(ctx)
	if err != nil {
		uc.console.Println(render.Failure(err, render.ErrClearAllMemory))
		return
	}
	uc.console.Println(render.Success(resp.Message, render.MsgAllMemoryCleared))
}

// ClearChatHistoryByUser lists users with history, then clears the one the
// operator names. It stops early when the listing fails or is empty.
func (uc *Usecase) ClearChatHistoryByUser(ctx context.Context) {
	users, err := uc.connector.ListUsers(ctx)
	if err != nil {
		uc.console.Println(render.FetchFailure(err, render.ErrFetchUsers))
		return
	}

	if len(users) == 0 {
		uc.console.Println(render.MsgNoUsersWithHistory)
		return
	}

	uc.console.Println(render.MsgUsersWithHistory)
	uc.console.Println(render.Enumerate(users, nil))
	uc.console.Println()

	userID, ok := uc.prompt(ctx, render.PromptUserID)
	if !ok {
		return
	}
	if userID == "" {
		uc.console.Println(render.MsgEmptyUserID)
		return
	}

	resp, err := uc.connector.ClearUserMemory(ctx, userID)
	if err != nil {
		uc.console.Println(render.Failure(err, render.ErrClearMemory))
		return
	}
	uc.console.Println(render.Success(resp.Message, render.MsgMemoryCleared))
}

func (uc *Usecase) ClearAllPDF(ctx context.Context) {
	resp, err := uc.connector.ClearAllPDFVectors(ctx)
	if err != nil {
		uc.console.Println(render.Failure(err, render.ErrClearAllPDFData))
		return
	}
	uc.console.Println(render.Success(resp.Message, render.MsgAllPDFDataCleared))
}

// ClearPDFByName shows the ingested sources and clears the one the operator
// names. A failed listing is reported but does not stop the prompt.
func (uc *Usecase) ClearPDFByName(ctx context.Context) {
	sources, err := uc.connector.ListPDFSources(ctx)
	switch {
	case err != nil:
		uc.console.Println(render.FetchFailure(err, render.ErrFetchSources))
	case len(sources) == 0:
		uc.console.Println(render.MsgNoSourcesInVectorDB)
	default:
		uc.console.Println(render.MsgSourcesInVectorDB)
		uc.console.Println(render.Enumerate(sources, render.Basename))
		uc.console.Println()
	}

	source, ok := uc.prompt(ctx, render.PromptSourceName)
	if !ok {
		return
	}
	if source == "" {
		uc.console.Println(render.MsgEmptySource)
		return
	}

	resp, err := uc.connector.ClearPDFVectors(ctx, source)
	if err != nil {
		uc.console.Println(render.Failure(err, fmt.Sprintf(render.ErrClearPDFData, source)))
		return
	}
	uc.console.Println(render.Success(resp.Message, fmt.Sprintf(render.MsgPDFDataCleared, source)))
}

// ClearAllVectorDBMemory clears PDF vectors first, then chat history. The
// second step runs even when the first fails.
func (uc *Usecase) ClearAllVectorDBMemory(ctx context.Context) {
	uc.ClearAllPDF(ctx)
	uc.ClearAllChatHistory(ctx)
}

func (uc *Usecase) ListAvailableUsers(ctx context.Context) {
	users, err := uc.connector.ListUsers(ctx)
	if err != nil {
		uc.console.Println(render.FetchFailure(err, render.ErrListUsers))
		return
	}

	if len(users) == 0 {
		uc.console.Println(render.MsgNoUsers)
		return
	}

	uc.console.Println(render.MsgAvailableUsers)
	uc.console.Println(render.Enumerate(users, nil))
}

func (uc *Usecase) ListPDFsInVectorDB(ctx context.Context) {
	sources, err := uc.connector.ListPDFSources(ctx)
	if err != nil {
		uc.console.Println(render.FetchFailure(err, render.ErrListVectorDBPDFs))
		return
	}

	if len(sources) == 0 {
		uc.console.Println(render.MsgNoPDFsInVectorDB)
		return
	}

	uc.console.Println(render.MsgPDFsInVectorDB)
	uc.console.Println(render.Enumerate(sources, render.Basename))
}

func (uc *Usecase) prompt(ctx context.Context, label string) (string, bool) {
	answer, err := uc.console.Prompt(label)
	if err != nil {
		ctxzap.Debug(ctx, "prompt aborted", zap.Error(err))
		return "", false
	}
	return answer, true
}
