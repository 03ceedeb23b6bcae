package mcp

import (
	"github.com/shubhlabs/shubh-mcp/internal/config"
	"github.com/shubhlabs/shubh-mcp/internal/greet"
)

// ToolDefinition models MCP tool metadata.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// liteTools is the reduced deployment profile. Everything else ships
// only in the full toolset.
var liteTools = map[string]bool{
	"wishify":  true,
	"shayari":  true,
	"validate": true,
	"about":    true,
}

func toolDefinitions(toolset string) []ToolDefinition {
	all := allToolDefinitions()
	if toolset != config.ToolsetLite {
		return all
	}
	out := make([]ToolDefinition, 0, len(liteTools))
	for _, def := range all {
		if liteTools[def.Name] {
			out = append(out, def)
		}
	}
	return out
}

func allToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "wishify",
			Description: "Generate festive greeting lines for an occasion in Hindi, Hinglish or English.",
			InputSchema: jsonSchema(map[string]any{
				"occasion":      propString("Occasion to celebrate (e.g. Diwali, Holi, birthday)."),
				"language":      propStringEnum("Output language.", []string{"hinglish", "hindi", "english"}),
				"tone":          propStringEnum("Tone of the closing line.", []string{"warm", "funny", "formal"}),
				"variant_count": propNumberRange("Number of greeting lines.", greet.WishVariantMin, greet.WishVariantMax, greet.WishVariantDefault),
				"emoji_level":   propNumberRange("Emoji intensity: 0 none, 1 single, 2 cluster.", greet.EmojiLevelMin, greet.EmojiLevelMax, greet.EmojiLevelDefault),
			}, []string{"occasion"}),
		},
		{
			Name:        "shayari",
			Description: "Compose short shayari verses on a theme, in Devanagari or Roman script.",
			InputSchema: jsonSchema(map[string]any{
				"theme":         propString("Theme of the verses (e.g. dosti, mohabbat)."),
				"language":      propStringEnum("Output language.", []string{"hindi", "hinglish"}),
				"script":        propStringEnum("Force Roman script with \"latin\".", []string{"latin"}),
				"variant_count": propNumberRange("Number of verses.", greet.ShayariVariantMin, greet.ShayariVariantMax, greet.ShayariVariantDefault),
			}, []string{"theme"}),
		},
		{
			Name:        "status_pack",
			Description: "Generate WhatsApp-status one-liners for a theme.",
			InputSchema: jsonSchema(map[string]any{
				"theme":    propString("Theme of the statuses (e.g. exam, monday, gym)."),
				"language": propStringEnum("Output language.", []string{"hinglish", "hindi", "english"}),
				"count":    propNumberRange("Number of status lines.", greet.StatusCountMin, greet.StatusCountMax, greet.StatusCountDefault),
			}, []string{"theme"}),
		},
		{
			Name:        "roast_generator",
			Description: "Generate light-hearted, habit-based roasts of a named friend. Never mean.",
			InputSchema: jsonSchema(map[string]any{
				"target":   propString("Name of the friend to roast."),
				"language": propStringEnum("Output language.", []string{"hinglish", "hindi", "english"}),
				"count":    propNumberRange("Number of roast lines.", greet.RoastCountMin, greet.RoastCountMax, greet.RoastCountDefault),
			}, []string{"target"}),
		},
		{
			Name:        "pickup_lines",
			Description: "Generate desi pickup lines in a chosen vibe.",
			InputSchema: jsonSchema(map[string]any{
				"vibe":     propStringEnum("Vibe of the lines.", []string{"filmy", "shayar", "techie"}),
				"language": propStringEnum("Output language.", []string{"hinglish", "hindi", "english"}),
				"count":    propNumberRange("Number of lines.", greet.PickupCountMin, greet.PickupCountMax, greet.PickupCountDefault),
			}, []string{}),
		},
		{
			Name:        "validate",
			Description: "Return the configured owner contact for this server. Accepts but does not verify a bearer token.",
			InputSchema: jsonSchema(map[string]any{
				"bearerToken": propString("Optional bearer token. Also accepted as token, bearer_token, accessToken, access_token or a headers.Authorization object."),
			}, []string{}),
		},
		{
			Name:        "create_note",
			Description: "Create a note held in memory for the lifetime of the server.",
			InputSchema: jsonSchema(map[string]any{
				"title":   propString("Title of the note."),
				"content": propString("Text content of the note."),
			}, []string{"title", "content"}),
		},
		{
			Name:        "about",
			Description: "Describe this server and its version.",
			InputSchema: jsonSchema(map[string]any{}, []string{}),
		},
	}
}

func jsonSchema(properties map[string]any, required []string) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func propString(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func propStringEnum(description string, values []string) map[string]any {
	return map[string]any{"type": "string", "description": description, "enum": values}
}

func propNumberRange(description string, min, max, def int) map[string]any {
	return map[string]any{
		"type":        "number",
		"description": description,
		"minimum":     min,
		"maximum":     max,
		"default":     def,
	}
}
