package main

import (
	"log"
	"os"

	"github.com/futig/vectordb-client/internal/builder"
)

func main() {
	app, err := builder.BuildPDFManager(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal("Failed to build PDF manager:", err)
	}

	if err := app.Run(); err != nil {
		log.Fatal("PDF manager error:", err)
	}
}
