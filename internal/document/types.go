// Package document decodes declarative message definitions (YAML or JSON)
// and drives the block builders to produce a validated payload.
package document

// Document is the top-level message definition.
type Document struct {
	Text   string     `json:"text,omitempty" yaml:"text,omitempty"`
	Blocks []BlockDef `json:"blocks" yaml:"blocks"`
}

// BlockDef is a single block entry. Type selects which of the remaining
// fields apply; unused fields stay zero.
type BlockDef struct {
	Type    string `json:"type" yaml:"type"`
	BlockID string `json:"block_id,omitempty" yaml:"block_id,omitempty"`

	// header and section
	Text   string   `json:"text,omitempty" yaml:"text,omitempty"`
	Mrkdwn bool     `json:"mrkdwn,omitempty" yaml:"mrkdwn,omitempty"`
	Fields []string `json:"fields,omitempty" yaml:"fields,omitempty"`

	// image
	ImageURL string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	AltText  string `json:"alt_text,omitempty" yaml:"alt_text,omitempty"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`

	// context
	Elements []string `json:"elements,omitempty" yaml:"elements,omitempty"`

	// actions
	Buttons []ButtonDef `json:"buttons,omitempty" yaml:"buttons,omitempty"`

	// input
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	ActionID    string `json:"action_id,omitempty" yaml:"action_id,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Multiline   bool   `json:"multiline,omitempty" yaml:"multiline,omitempty"`
	Optional    bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// ButtonDef is a button entry inside an actions block.
type ButtonDef struct {
	Text     string `json:"text" yaml:"text"`
	ActionID string `json:"action_id,omitempty" yaml:"action_id,omitempty"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
	Style    string `json:"style,omitempty" yaml:"style,omitempty"`
}
