package pdf

import (
	"context"
	"errors"
	"fmt"

	"github.com/futig/vectordb-client/internal/cli/render"
	"github.com/futig/vectordb-client/internal/entity"
	"github.com/futig/vectordb-client/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Usecase drives the PDF data folder operations of the PDF manager menu.
type Usecase struct {
	connector PDFConnector
	console   Console
}

func NewUsecase(connector PDFConnector, console Console) *Usecase {
	return &Usecase{
		connector: connector,
		console:   console,
	}
}

// UploadFolder uploads every PDF found directly inside a folder.
func (uc *Usecase) UploadFolder(ctx context.Context) {
	folder, ok := uc.prompt(ctx, render.PromptFolder)
	if !ok {
		return
	}

	files, err := validator.PDFsInFolder(folder)
	switch {
	case errors.Is(err, entity.ErrInvalidFolder):
		uc.console.Println(render.MsgInvalidFolder)
		return
	case errors.Is(err, entity.ErrNoPDFFiles):
		uc.console.Println(render.MsgNoPDFsInFolder)
		return
	case err != nil:
		uc.console.Println(render.Failure(err, render.ErrUpload))
		return
	}

	uc.upload(ctx, files)
}

// UploadPDFs uploads the comma separated paths that name existing files.
func (uc *Usecase) UploadPDFs(ctx context.Context) {
	input, ok := uc.prompt(ctx, render.PromptPaths)
	if !ok {
		return
	}

	files, err := validator.ExistingFiles(input)
	if err != nil {
		uc.console.Println(render.MsgNoValidPDFs)
		return
	}

	uc.upload(ctx, files)
}

func (uc *Usecase) RemoveAllPDFs(ctx context.Context) {
	resp, err := uc.connector.DeleteAll(ctx)
	if err != nil {
		uc.console.Println(render.Failure(err, render.ErrDeleteAll))
		return
	}
	uc.console.Println(render.MsgDeleted, render.Value(resp.Deleted))
}

func (uc *Usecase) RemovePDFByFilename(ctx context.Context) {
	uc.showAvailable(ctx)

	filename, ok := uc.promptFilename(ctx, render.PromptDeleteFile)
	if !ok {
		return
	}

	resp, err := uc.connector.Delete(ctx, filename)
	if err != nil {
		uc.console.Println(render.Failure(err, fmt.Sprintf(render.ErrDelete, filename)))
		return
	}

	deleted := resp.Deleted
	if deleted == nil {
		deleted = filename
	}
	uc.console.Println(render.MsgDeleted, render.Value(deleted))
}

func (uc *Usecase) IngestAllPDFs(ctx context.Context) {
	resp, err := uc.connector.IngestAll(ctx)
	if err != nil {
		uc.console.Println(render.Failure(err, render.ErrIngestAll))
		return
	}
	uc.console.Println(render.MsgIngested, render.Value(map[string]any(resp)))
}

func (uc *Usecase) IngestPDFByFilename(ctx context.Context) {
	uc.showAvailable(ctx)

	filename, ok := uc.promptFilename(ctx, render.PromptIngestFile)
	if !ok {
		return
	}

	resp, err := uc.connector.Ingest(ctx, filename)
	if err != nil {
		uc.console.Println(render.Failure(err, fmt.Sprintf(render.ErrIngest, filename)))
		return
	}
	uc.console.Println(render.MsgIngested, render.Value(map[string]any(resp)))
}

// ListAvailablePDFs re-fetches the data folder listing on every call.
func (uc *Usecase) ListAvailablePDFs(ctx context.Context) {
	pdfs, err := uc.connector.List(ctx)
	if err != nil {
		uc.console.Println(render.FetchFailure(err, render.ErrListPDFs))
		return
	}

	if len(pdfs) == 0 {
		uc.console.Println(render.MsgNoDataFolder)
		return
	}

	uc.console.Println(render.MsgDataFolder)
	uc.console.Println(render.Enumerate(pdfs, nil))
}

func (uc *Usecase) upload(ctx context.Context, files []entity.FileData) {
	ctxzap.Debug(ctx, "upload prepared", zap.Int("file_count", len(files)))

	uploaded, err := uc.connector.Upload(ctx, files)
	if err != nil {
		uc.console.Println(render.Failure(err, render.ErrUpload))
		return
	}
	uc.console.Println(render.MsgUploaded, render.Value(uploaded))
}

// showAvailable prints the data folder before a filename prompt. Failures
// are reported and the prompt still follows.
func (uc *Usecase) showAvailable(ctx context.Context) {
	pdfs, err := uc.connector.List(ctx)
	switch {
	case err != nil:
		uc.console.Println(render.FetchFailure(err, render.ErrFetchPDFs))
	case len(pdfs) == 0:
		uc.console.Println(render.MsgNoPDFs)
	default:
		uc.console.Println(render.MsgAvailPDFs)
		uc.console.Println(render.Enumerate(pdfs, nil))
	}
}

func (uc *Usecase) promptFilename(ctx context.Context, label string) (string, bool) {
	filename, ok := uc.prompt(ctx, label)
	if !ok {
		return "", false
	}
	if filename == "" {
		uc.console.Println(render.MsgEmptyFilename)
		return "", false
	}
	return filename, true
}

func (uc *Usecase) prompt(ctx context.Context, label string) (string, bool) {
	answer, err := uc.console.Prompt(label)
	if err != nil {
		ctxzap.Debug(ctx, "prompt aborted", zap.Error(err))
		return "", false
	}
	return answer, true
}
