package main

import (
	"log"

	"github.com/creziapro/site/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ creziapro failed to start: %v", err)
	}
}
