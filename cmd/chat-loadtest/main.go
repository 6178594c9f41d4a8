package main

import (
	"log"
	"os"

	"github.com/futig/vectordb-client/internal/builder"
)

func main() {
	lt, err := builder.BuildLoadTest(os.Stdout)
	if err != nil {
		log.Fatal("Failed to build load test:", err)
	}

	if err := lt.Run(); err != nil {
		log.Fatal("Load test failed:", err)
	}
}
