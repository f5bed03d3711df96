package main

import (
	"log"

	"github.com/linkvault/linkvault/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("linkvault failed to start: %v", err)
	}
}
