package main

import (
	"log"

	"go-booking-engine/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
