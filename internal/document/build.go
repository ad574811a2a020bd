package document

import (
	"fmt"

	"github.com/kaicoh/go-blockkit"
	"github.com/kaicoh/go-blockkit/pkg/blocks"
	"github.com/kaicoh/go-blockkit/pkg/composition"
)

// Build runs the definition through the block builders and returns the
// validated message. Validation failures are reported as the builders'
// *validation.Errors, wrapped with the position of the offending block.
func Build(doc Document) (*blockkit.Message, error) {
	builder := blockkit.NewMessageBuilder()
	if doc.Text != "" {
		builder.Text(doc.Text)
	}

	for i, def := range doc.Blocks {
		block, err := buildBlock(def)
		if err != nil {
			return nil, fmt.Errorf("document: block %d (%s): %w", i, def.Type, err)
		}
		builder.Block(block)
	}

	message, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	return message, nil
}

func buildBlock(def BlockDef) (blocks.Block, error) {
	switch def.Type {
	case "header":
		return buildHeader(def)
	case "section":
		return buildSection(def)
	case "divider":
		return buildDivider(def)
	case "image":
		return buildImage(def)
	case "context":
		return buildContext(def)
	case "actions":
		return buildActions(def)
	case "input":
		return buildInput(def)
	default:
		return nil, fmt.Errorf("unsupported block type %q", def.Type)
	}
}

func buildHeader(def BlockDef) (blocks.Block, error) {
	builder := blocks.NewHeaderBuilder()
	if def.Text != "" {
		text, err := blockkit.PlainText("%s", def.Text)
		if err != nil {
			return nil, err
		}
		builder.Text(*text)
	}
	if def.BlockID != "" {
		builder.BlockID(def.BlockID)
	}
	return builder.Build()
}

func buildSection(def BlockDef) (blocks.Block, error) {
	builder := blocks.NewSectionBuilder()
	if def.Text != "" {
		text, err := textObject(def.Text, def.Mrkdwn)
		if err != nil {
			return nil, err
		}
		builder.Text(*text)
	}
	for _, field := range def.Fields {
		text, err := textObject(field, def.Mrkdwn)
		if err != nil {
			return nil, err
		}
		builder.Field(*text)
	}
	if def.BlockID != "" {
		builder.BlockID(def.BlockID)
	}
	return builder.Build()
}

func buildDivider(def BlockDef) (blocks.Block, error) {
	builder := blocks.NewDividerBuilder()
	if def.BlockID != "" {
		builder.BlockID(def.BlockID)
	}
	return builder.Build()
}

func buildImage(def BlockDef) (blocks.Block, error) {
	builder := blocks.NewImageBuilder()
	if def.AltText != "" {
		builder.AltText(def.AltText)
	}
	if def.ImageURL != "" {
		builder.ImageURL(def.ImageURL)
	}
	if def.Title != "" {
		title, err := blockkit.PlainText("%s", def.Title)
		if err != nil {
			return nil, err
		}
		builder.Title(*title)
	}
	if def.BlockID != "" {
		builder.BlockID(def.BlockID)
	}
	return builder.Build()
}

func buildContext(def BlockDef) (blocks.Block, error) {
	builder := blocks.NewContextBuilder()
	for _, element := range def.Elements {
		text, err := blockkit.Mrkdwn("%s", element)
		if err != nil {
			return nil, err
		}
		builder.Element(blocks.ContextText(*text))
	}
	if def.BlockID != "" {
		builder.BlockID(def.BlockID)
	}
	return builder.Build()
}

func buildActions(def BlockDef) (blocks.Block, error) {
	builder := blocks.NewActionsBuilder()
	for _, button := range def.Buttons {
		element, err := buildButton(button)
		if err != nil {
			return nil, err
		}
		builder.Element(element)
	}
	if def.BlockID != "" {
		builder.BlockID(def.BlockID)
	}
	return builder.Build()
}

func buildButton(def ButtonDef) (*blocks.Button, error) {
	text, err := blockkit.PlainText("%s", def.Text)
	if err != nil {
		return nil, err
	}
	builder := blocks.NewButtonBuilder().Text(*text)
	if def.ActionID != "" {
		builder.ActionID(def.ActionID)
	}
	if def.Value != "" {
		builder.Value(def.Value)
	}
	if def.URL != "" {
		builder.URL(def.URL)
	}
	switch def.Style {
	case "":
	case composition.StylePrimary:
		builder.Primary()
	case composition.StyleDanger:
		builder.Danger()
	default:
		return nil, fmt.Errorf("unsupported button style %q", def.Style)
	}
	return builder.Build()
}

func buildInput(def BlockDef) (blocks.Block, error) {
	input := blocks.NewPlainTextInputBuilder()
	if def.ActionID != "" {
		input.ActionID(def.ActionID)
	}
	if def.Placeholder != "" {
		placeholder, err := blockkit.PlainText("%s", def.Placeholder)
		if err != nil {
			return nil, err
		}
		input.Placeholder(*placeholder)
	}
	if def.Multiline {
		input.Multiline(true)
	}
	element, err := input.Build()
	if err != nil {
		return nil, err
	}

	builder := blocks.NewInputBuilder().Element(element)
	if def.Label != "" {
		label, err := blockkit.PlainText("%s", def.Label)
		if err != nil {
			return nil, err
		}
		builder.Label(*label)
	}
	if def.Optional {
		builder.Optional(true)
	}
	if def.BlockID != "" {
		builder.BlockID(def.BlockID)
	}
	return builder.Build()
}

func textObject(text string, mrkdwn bool) (*composition.Text, error) {
	if mrkdwn {
		return blockkit.Mrkdwn("%s", text)
	}
	return blockkit.PlainText("%s", text)
}
