package builder

import (
	"github.com/futig/vectordb-client/internal/cli"
	"github.com/futig/vectordb-client/internal/usecase/memory"
	"github.com/futig/vectordb-client/internal/usecase/pdf"
)

// NewMemoryMenu lays out the memory and vectordb operations in menu order.
func NewMemoryMenu(console *cli.Console, connector memory.MemoryConnector) *cli.Menu {
	uc := memory.NewUsecase(connector, console)

	return cli.NewMenu("Memory and PDF Management", console,
		cli.Item{Label: "Clear chat history for all users", Action: "clear_all_memory", Run: uc.ClearAllChatHistory},
		cli.Item{Label: "Clear chat history for specific user", Action: "clear_user_memory", Run: uc.ClearChatHistoryByUser},
		cli.Item{Label: "Clear all PDF data", Action: "clear_all_pdf_vectors", Run: uc.ClearAllPDF},
		cli.Item{Label: "Clear PDF data by filename", Action: "clear_pdf_vectors", Run: uc.ClearPDFByName},
		cli.Item{Label: "Clear all vectordb memory", Action: "clear_vectordb", Run: uc.ClearAllVectorDBMemory},
		cli.Item{Label: "List available users", Action: "list_users", Run: uc.ListAvailableUsers},
		cli.Item{Label: "List available PDFs in vectordb (ChromaDB)", Action: "list_pdf_sources", Run: uc.ListPDFsInVectorDB},
	)
}

// NewPDFMenu lays out the PDF data folder operations in menu order.
func NewPDFMenu(console *cli.Console, connector pdf.PDFConnector) *cli.Menu {
	uc := pdf.NewUsecase(connector, console)

	return cli.NewMenu("PDF Data Management", console,
		cli.Item{Label: "Upload all PDFs in a folder", Action: "upload_folder", Run: uc.UploadFolder},
		cli.Item{Label: "Upload PDF(s)", Action: "upload_pdfs", Run: uc.UploadPDFs},
		cli.Item{Label: "Remove all PDFs", Action: "delete_all_pdfs", Run: uc.RemoveAllPDFs},
		cli.Item{Label: "Remove PDF by filename", Action: "delete_pdf", Run: uc.RemovePDFByFilename},
		cli.Item{Label: "Ingest all PDFs", Action: "ingest_all_pdfs", Run: uc.IngestAllPDFs},
		cli.Item{Label: "Ingest PDF by filename", Action: "ingest_pdf", Run: uc.IngestPDFByFilename},
		cli.Item{Label: "List available PDFs in data folder", Action: "list_pdfs", Run: uc.ListAvailablePDFs},
	)
}
