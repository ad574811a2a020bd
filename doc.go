// Package blockkit builds Slack Block Kit message payloads from typed
// builders.
//
// Every entity is produced by a builder. Setters only record values;
// Build runs the validators attached to each field, and either returns
// the finished object or a *validation.Errors report indexed by field
// name. Valid objects serialize to the Block Kit wire format with
// encoding/json, type discriminators included.
//
//	text, err := blockkit.PlainText("Hello, %s!", "world")
//	if err != nil {
//		return err
//	}
//	section, err := blocks.NewSectionBuilder().Text(*text).Build()
//	if err != nil {
//		return err
//	}
//	message, err := blockkit.NewMessageBuilder().Block(section).Build()
//
// The layout blocks, elements and rich text objects live in pkg/blocks,
// the shared composition objects in pkg/composition, and the validation
// engine in pkg/validation.
package blockkit
