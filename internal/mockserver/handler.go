package mockserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/futig/vectordb-client/internal/entity"
	"github.com/futig/vectordb-client/internal/pkg/response"
	"github.com/futig/vectordb-client/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const maxUploadSize = 64 << 20

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req entity.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.UserID == "" || req.Message == "" {
		response.Error(w, http.StatusBadRequest, "user_id and message are required")
		return
	}

	if s.opts.ChatDelay > 0 {
		select {
		case <-time.After(s.opts.ChatDelay):
		case <-r.Context().Done():
			return
		}
	}

	s.store.AppendMemory(req.UserID, req.Message)
	reply := fmt.Sprintf("Echo for %s: %s", req.UserID, req.Message)
	response.Success(w, map[string]string{"response": reply})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	response.Success(w, entity.UsersResponse{UserIDs: s.store.Users()})
}

func (s *Server) clearMemory(w http.ResponseWriter, r *http.Request) {
	s.store.ClearMemory()
	response.Success(w, entity.NewMessageResponse("Memory cleared for all users."))
}

func (s *Server) clearUserMemory(w http.ResponseWriter, r *http.Request) {
	userID := pathParam(r, "user_id")
	if !s.store.ClearUserMemory(userID) {
		response.Error(w, http.StatusNotFound, fmt.Sprintf("No chat history found for user %s", userID))
		return
	}
	response.Success(w, entity.NewMessageResponse(fmt.Sprintf("Memory cleared for user %s.", userID)))
}

func (s *Server) clearPDFVectors(w http.ResponseWriter, r *http.Request) {
	s.store.ClearSources()
	response.Success(w, entity.NewMessageResponse("All PDF data cleared."))
}

func (s *Server) listSources(w http.ResponseWriter, r *http.Request) {
	response.Success(w, entity.SourcesResponse{Sources: s.store.Sources()})
}

func (s *Server) clearPDFSource(w http.ResponseWriter, r *http.Request) {
	source := validator.SanitizeFilename(pathParam(r, "source"))
	if !s.store.ClearSource(source) {
		response.Error(w, http.StatusNotFound, fmt.Sprintf("No PDF data found for source %s", source))
		return
	}
	response.Success(w, entity.NewMessageResponse(fmt.Sprintf("PDF data cleared for source %s.", source)))
}

func (s *Server) listPDFs(w http.ResponseWriter, r *http.Request) {
	response.Success(w, entity.PDFListResponse{PDFs: s.store.PDFs()})
}

func (s *Server) deletePDFs(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string][]string{"deleted": nonNil(s.store.DeletePDFs())})
}

func (s *Server) deletePDF(w http.ResponseWriter, r *http.Request) {
	filename := validator.SanitizeFilename(pathParam(r, "filename"))
	if !s.store.DeletePDF(filename) {
		response.Error(w, http.StatusNotFound, fmt.Sprintf("File %s not found", filename))
		return
	}
	response.Success(w, map[string]string{"deleted": filename})
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		response.Error(w, http.StatusBadRequest, "No files provided")
		return
	}

	uploaded := make([]string, 0, len(headers))
	for _, fh := range headers {
		name := validator.SanitizeFilename(fh.Filename)
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			response.Error(w, http.StatusBadRequest, fmt.Sprintf("%s is not a PDF file", name))
			return
		}

		f, err := fh.Open()
		if err != nil {
			response.Error(w, http.StatusBadRequest, fmt.Sprintf("Cannot read %s", name))
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil || !isPDF(content) {
			response.Error(w, http.StatusBadRequest, fmt.Sprintf("%s is not a valid PDF", name))
			return
		}

		s.store.PutPDF(name, content)
		uploaded = append(uploaded, name)
	}

	ctxzap.Info(r.Context(), "PDFs uploaded", zap.Strings("files", uploaded))
	response.Success(w, entity.UploadResponse{Uploaded: uploaded})
}

func (s *Server) ingestAll(w http.ResponseWriter, r *http.Request) {
	ingested := s.store.Ingest()
	response.Success(w, map[string]any{
		"job_id":   uuid.NewString(),
		"ingested": nonNil(ingested),
		"message":  fmt.Sprintf("Ingested %d PDF(s).", len(ingested)),
	})
}

func (s *Server) ingestOne(w http.ResponseWriter, r *http.Request) {
	filename := validator.SanitizeFilename(pathParam(r, "filename"))
	if len(s.store.Ingest(filename)) == 0 {
		response.Error(w, http.StatusNotFound, fmt.Sprintf("File %s not found", filename))
		return
	}
	response.Success(w, map[string]any{
		"job_id":   uuid.NewString(),
		"ingested": filename,
		"message":  fmt.Sprintf("Ingested %s.", filename),
	})
}

func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
