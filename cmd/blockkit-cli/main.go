package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kaicoh/go-blockkit/internal/document"
)

func main() {
	source := flag.String("source", "message.yaml", "message definition path (- for stdin)")
	output := flag.String("output", "", "output file (stdout if empty)")
	compact := flag.Bool("compact", false, "emit compact JSON instead of indented")
	flag.Parse()

	doc, err := loadDocument(*source)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	message, err := document.Build(doc)
	if err != nil {
		log.Fatalf("Failed to build message: %v", err)
	}

	payload, err := marshal(message, *compact)
	if err != nil {
		log.Fatalf("Failed to serialize message: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Message written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

func loadDocument(source string) (document.Document, error) {
	if source == "-" {
		return document.Read(os.Stdin)
	}
	return document.Load(source)
}

func marshal(message any, compact bool) ([]byte, error) {
	if compact {
		return json.Marshal(message)
	}
	return json.MarshalIndent(message, "", "  ")
}
