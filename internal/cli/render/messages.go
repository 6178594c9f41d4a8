package render

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"path"
	"strings"

	pkghttp "github.com/futig/vectordb-client/pkg/http"
)

const (
	SuccessMarker = "✅"
	ErrorPrefix   = "Error:"

	MsgExiting       = "Exiting..."
	MsgInvalidChoice = "Invalid choice. Please try again."

	PromptUsername = "Enter username: "
	PromptPassword = "Enter password: "
	PromptChoice   = "\nEnter your choice (1-%d): "

	// Memory menu
	MsgAllMemoryCleared  = "Memory cleared for all users."
	ErrClearAllMemory    = "Failed to clear all memory."
	MsgMemoryCleared     = "Memory cleared."
	ErrClearMemory       = "Failed to clear memory."
	MsgAllPDFDataCleared = "All PDF data cleared."
	ErrClearAllPDFData   = "Failed to clear PDF data."
	MsgPDFDataCleared    = "PDF data cleared for source %s."
	ErrClearPDFData      = "Failed to clear PDF data for source %s."

	MsgUsersWithHistory   = "Available users with chat history:"
	MsgNoUsersWithHistory = "No users with chat history found."
	ErrFetchUsers         = "Error fetching available users."
	MsgAvailableUsers     = "Available users:"
	MsgNoUsers            = "No users found."
	ErrListUsers          = "Error fetching users."

	MsgSourcesInVectorDB   = "Available PDF sources in vectordb:"
	MsgNoSourcesInVectorDB = "No PDF sources found in vectordb."
	ErrFetchSources        = "Failed to fetch available PDF sources."
	MsgPDFsInVectorDB      = "Available PDFs in vectordb:"
	MsgNoPDFsInVectorDB    = "No PDFs found in vectordb."
	ErrListVectorDBPDFs    = "Error fetching PDFs from vectordb."

	PromptUserID     = "Enter user ID to clear memory: "
	PromptSourceName = "Enter the file name of the PDF to clear (as shown above): "
	MsgEmptyUserID   = "User ID cannot be empty."
	MsgEmptySource   = "Source name cannot be empty."

	// PDF menu
	PromptFolder     = "Enter the folder path containing PDFs to upload: "
	PromptPaths      = "Enter PDF file paths to upload (comma separated): "
	PromptDeleteFile = "Enter PDF filename to delete: "
	PromptIngestFile = "Enter PDF filename to ingest: "

	MsgInvalidFolder  = "Invalid folder path."
	MsgNoPDFsInFolder = "No PDF files found in the folder."
	MsgNoValidPDFs    = "No valid PDF files provided."
	MsgEmptyFilename  = "Filename cannot be empty."

	MsgUploaded     = "Uploaded:"
	ErrUpload       = "Failed to upload PDFs."
	MsgDeleted      = "Deleted:"
	ErrDeleteAll    = "Failed to delete all PDFs."
	ErrDelete       = "Failed to delete %s."
	MsgIngested     = "Ingested:"
	ErrIngestAll    = "Failed to ingest all PDFs."
	ErrIngest       = "Failed to ingest %s."
	MsgAvailPDFs    = "Available PDFs:"
	MsgNoPDFs       = "No PDFs found."
	ErrFetchPDFs    = "Error fetching available PDFs."
	MsgDataFolder   = "Available PDFs in data folder:"
	MsgNoDataFolder = "No PDFs found in data folder."
	ErrListPDFs     = "Error fetching PDFs."
)

// Success formats a confirmation line. The fallback is used only when the
// server omitted the message; an empty message is printed as is.
func Success(message *string, fallback string) string {
	if message == nil {
		return SuccessMarker + " " + fallback
	}
	return SuccessMarker + " " + *message
}

// Failure formats an "Error:" line for err.
func Failure(err error, fallback string) string {
	return ErrorPrefix + " " + ClassifyError(err, fallback)
}

// ClassifyError picks the text shown for a failed operation: the server's
// "error" field for HTTP errors, the fallback plus cause for transport errors.
func ClassifyError(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		if msg := httpErr.ServerError(); msg != "" {
			return msg
		}
		return fallback
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("%s (request timed out)", fallback)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Sprintf("%s (request timed out)", fallback)
	}

	var networkErr *pkghttp.NetworkError
	if errors.As(err, &networkErr) {
		return fmt.Sprintf("%s (%v)", fallback, networkErr.Err)
	}

	return fmt.Sprintf("%s (%v)", fallback, err)
}

// FetchFailure reports a failed listing. Server rejections print the fixed
// message alone; transport failures append the cause.
func FetchFailure(err error, message string) string {
	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return message
	}
	return ClassifyError(err, message)
}

// Enumerate renders items as a 1-indexed list, one per line.
func Enumerate(items []string, display func(string) string) string {
	var sb strings.Builder
	for i, item := range items {
		if display != nil {
			item = display(item)
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Basename strips directory components, accepting either separator since
// the server may run on another OS.
func Basename(p string) string {
	return path.Base(strings.ReplaceAll(p, "\\", "/"))
}

// Value renders a decoded JSON value for display.
func Value(v any) string {
	switch val := v.(type) {
	case nil:
		return "[]"
	case string:
		return val
	case []string:
		return "[" + strings.Join(val, ", ") + "]"
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, Value(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(raw)
	}
}
