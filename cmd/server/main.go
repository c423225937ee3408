// cmd/server/main.go
package main

import (
	"context"
	"log"

	"github.com/dalemusser/waffle/app"

	"github.com/z-bubblegum/nigelleadmagnet/internal/app/bootstrap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
