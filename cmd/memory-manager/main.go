package main

import (
	"log"
	"os"

	"github.com/futig/vectordb-client/internal/builder"
)

func main() {
	app, err := builder.BuildMemoryManager(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal("Failed to build memory manager:", err)
	}

	if err := app.Run(); err != nil {
		log.Fatal("Memory manager error:", err)
	}
}
