package main

import (
	"log"

	"github.com/example/quizbank/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("quizbank: %v", err)
	}
}
