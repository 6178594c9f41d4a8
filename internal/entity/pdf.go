package entity

type PDFListResponse struct {
	PDFs []string `json:"pdfs"`
}

type UploadResponse struct {
	Uploaded []string `json:"uploaded"`
}

// DeleteResponse carries a list for bulk deletes and usually a single
// filename for targeted ones, so Deleted is left untyped.
type DeleteResponse struct {
	Deleted any `json:"deleted"`
}

// IngestResponse is echoed as-is; its shape belongs to the server.
type IngestResponse map[string]any

// FileData describes a local PDF queued for upload.
type FileData struct {
	Path     string
	Filename string
}
