// Command new-document interactively writes a starter message definition
// that cmd/blockkit-cli can build.
package main

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	"github.com/kaicoh/go-blockkit/internal/document"
)

func main() {
	doc, err := promptDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Prompt failed: %v\n", err)
		os.Exit(1)
	}

	if _, err := document.Build(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Document does not validate: %v\n", err)
		os.Exit(1)
	}

	output := "message.yaml"
	if err := survey.AskOne(&survey.Input{
		Message: "Write document to:",
		Default: output,
	}, &output); err != nil {
		fmt.Fprintf(os.Stderr, "Prompt failed: %v\n", err)
		os.Exit(1)
	}

	payload, err := yaml.Marshal(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to serialize document: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(output, payload, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write document: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote starter document (%d bytes) → %s\n", len(payload), output)
}

func promptDocument() (document.Document, error) {
	var doc document.Document

	if err := survey.AskOne(&survey.Input{
		Message: "Notification text (shown in previews):",
	}, &doc.Text); err != nil {
		return document.Document{}, err
	}

	var header string
	if err := survey.AskOne(&survey.Input{
		Message: "Header text (empty to skip):",
	}, &header); err != nil {
		return document.Document{}, err
	}
	if header != "" {
		doc.Blocks = append(doc.Blocks, document.BlockDef{Type: "header", Text: header})
	}

	var body string
	if err := survey.AskOne(&survey.Input{
		Message: "Section text:",
	}, &body, survey.WithValidator(survey.Required)); err != nil {
		return document.Document{}, err
	}
	mrkdwn := true
	if err := survey.AskOne(&survey.Confirm{
		Message: "Format the section as mrkdwn?",
		Default: true,
	}, &mrkdwn); err != nil {
		return document.Document{}, err
	}
	doc.Blocks = append(doc.Blocks, document.BlockDef{Type: "section", Text: body, Mrkdwn: mrkdwn})

	buttons, err := promptButtons()
	if err != nil {
		return document.Document{}, err
	}
	if len(buttons) > 0 {
		doc.Blocks = append(doc.Blocks, document.BlockDef{Type: "actions", Buttons: buttons})
	}

	return doc, nil
}

func promptButtons() ([]document.ButtonDef, error) {
	var buttons []document.ButtonDef
	for {
		more := false
		if err := survey.AskOne(&survey.Confirm{
			Message: "Add a button?",
		}, &more); err != nil {
			return nil, err
		}
		if !more {
			return buttons, nil
		}

		var button document.ButtonDef
		if err := survey.AskOne(&survey.Input{
			Message: "Button text:",
		}, &button.Text, survey.WithValidator(survey.Required)); err != nil {
			return nil, err
		}
		if err := survey.AskOne(&survey.Input{
			Message: "Action ID:",
		}, &button.ActionID); err != nil {
			return nil, err
		}
		if err := survey.AskOne(&survey.Select{
			Message: "Style:",
			Options: []string{"default", "primary", "danger"},
		}, &button.Style); err != nil {
			return nil, err
		}
		if button.Style == "default" {
			button.Style = ""
		}
		buttons = append(buttons, button)
	}
}
