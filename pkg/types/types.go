package types

// Note is an in-memory note exposed as an MCP resource (note:///<id>).
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// WishInput holds normalized arguments for the wishify tool.
type WishInput struct {
	Occasion     string `json:"occasion"`
	Language     string `json:"language,omitempty"`
	Tone         string `json:"tone,omitempty"`
	VariantCount int    `json:"variant_count,omitempty"`
	EmojiLevel   int    `json:"emoji_level,omitempty"`
}

// ShayariInput holds normalized arguments for the shayari tool.
type ShayariInput struct {
	Theme        string `json:"theme"`
	Language     string `json:"language,omitempty"`
	Script       string `json:"script,omitempty"`
	VariantCount int    `json:"variant_count,omitempty"`
}

// StatusInput holds normalized arguments for the status_pack tool.
type StatusInput struct {
	Theme    string `json:"theme"`
	Language string `json:"language,omitempty"`
	Count    int    `json:"count,omitempty"`
}

// RoastInput holds normalized arguments for the roast_generator tool.
type RoastInput struct {
	Target   string `json:"target"`
	Language string `json:"language,omitempty"`
	Count    int    `json:"count,omitempty"`
}

// PickupInput holds normalized arguments for the pickup_lines tool.
type PickupInput struct {
	Vibe     string `json:"vibe,omitempty"`
	Language string `json:"language,omitempty"`
	Count    int    `json:"count,omitempty"`
}
