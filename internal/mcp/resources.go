package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shubhlabs/shubh-mcp/pkg/types"
)

const noteURIPrefix = "note:///"

func noteURI(id string) string {
	return noteURIPrefix + id
}

func noteIDFromURI(uri string) (string, bool) {
	if !strings.HasPrefix(uri, noteURIPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(uri, noteURIPrefix)
	if id == "" {
		return "", false
	}
	return id, true
}

func (s *Server) resourceList() []map[string]any {
	all := s.notes.List()
	out := make([]map[string]any, 0, len(all))
	for _, n := range all {
		out = append(out, map[string]any{
			"uri":         noteURI(n.ID),
			"mimeType":    "text/plain",
			"name":        n.Title,
			"description": fmt.Sprintf("A text note: %s", n.Title),
		})
	}
	return out
}

func (s *Server) handleResourceRead(params json.RawMessage) (map[string]any, error) {
	var p struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid resources/read params: %w", err)
	}

	id, ok := noteIDFromURI(strings.TrimSpace(p.URI))
	if !ok {
		return nil, fmt.Errorf("unsupported resource URI %q", p.URI)
	}
	note, ok := s.notes.Get(id)
	if !ok {
		return nil, fmt.Errorf("Note %s not found", id)
	}
	return map[string]any{
		"contents": []map[string]any{{
			"uri":      noteURI(note.ID),
			"mimeType": "text/plain",
			"text":     note.Content,
		}},
	}, nil
}

const summarizePromptName = "summarize_notes"

func promptList() []map[string]any {
	return []map[string]any{
		{
			"name":        summarizePromptName,
			"description": "Summarize all notes currently held by the server.",
		},
	}
}

func (s *Server) handlePromptGet(params json.RawMessage) (map[string]any, error) {
	var p struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid prompts/get params: %w", err)
	}
	if p.Name != summarizePromptName {
		return nil, fmt.Errorf("unknown prompt %q", p.Name)
	}

	messages := []map[string]any{
		{
			"role": "user",
			"content": map[string]any{
				"type": "text",
				"text": "Please summarize the following notes:",
			},
		},
	}
	for _, n := range s.notes.List() {
		messages = append(messages, noteMessage(n))
	}
	messages = append(messages, map[string]any{
		"role": "user",
		"content": map[string]any{
			"type": "text",
			"text": "Provide a concise summary of all the notes above.",
		},
	})

	return map[string]any{
		"description": "Summarize all notes",
		"messages":    messages,
	}, nil
}

func noteMessage(n types.Note) map[string]any {
	return map[string]any{
		"role": "user",
		"content": map[string]any{
			"type": "resource",
			"resource": map[string]any{
				"uri":      noteURI(n.ID),
				"mimeType": "text/plain",
				"text":     n.Content,
			},
		},
	}
}
