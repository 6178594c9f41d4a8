package main

import (
	"log"

	"github.com/futig/vectordb-client/internal/builder"
)

func main() {
	app, err := builder.BuildMockServer()
	if err != nil {
		log.Fatal("Failed to build mock server:", err)
	}

	if err := app.Run(); err != nil {
		log.Fatal("Mock server error:", err)
	}
}
