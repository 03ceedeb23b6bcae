package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/shubhlabs/shubh-mcp/internal/config"
	"github.com/shubhlabs/shubh-mcp/internal/greet"
	"github.com/shubhlabs/shubh-mcp/internal/notes"
	"github.com/shubhlabs/shubh-mcp/internal/store"
)

type captureSink struct {
	rows []store.MCPRequestLog
}

func (c *captureSink) InsertMCPRequestLog(_ context.Context, rec store.MCPRequestLog) error {
	c.rows = append(c.rows, rec)
	return nil
}

func newTestServer(t *testing.T, mutate func(*config.Config), sink RequestLogSink) *Server {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	svc := greet.NewService(nil, logger)
	return NewServer(svc, notes.NewStore(), cfg, logger, sink)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]any) (string, bool) {
	t.Helper()
	params, err := json.Marshal(map[string]any{"name": name, "arguments": args})
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	resp, ok := srv.handle(context.Background(), request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(`1`),
		Method:  "tools/call",
		Params:  params,
	})
	if !ok {
		t.Fatal("expected response")
	}
	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	content, ok := result["content"].([]map[string]any)
	if !ok || len(content) == 0 {
		t.Fatalf("missing content in result: %+v", result)
	}
	text, _ := content[0]["text"].(string)
	isError, _ := result["isError"].(bool)
	return text, isError
}

func TestHandle_ToolsListProfiles(t *testing.T) {
	t.Parallel()
	full := newTestServer(t, nil, nil)
	resp, ok := full.handle(context.Background(), request{JSONRPC: "2.0", ID: json.RawMessage(`1`), Method: "tools/list"})
	if !ok || resp.Error != nil {
		t.Fatalf("tools/list failed: %+v", resp.Error)
	}
	tools := resp.Result.(map[string]any)["tools"].([]ToolDefinition)
	if len(tools) != 8 {
		t.Fatalf("expected 8 tools in full profile, got %d", len(tools))
	}

	lite := newTestServer(t, func(c *config.Config) { c.Toolset = config.ToolsetLite }, nil)
	resp, _ = lite.handle(context.Background(), request{JSONRPC: "2.0", ID: json.RawMessage(`2`), Method: "tools/list"})
	tools = resp.Result.(map[string]any)["tools"].([]ToolDefinition)
	if len(tools) != 4 {
		t.Fatalf("expected 4 tools in lite profile, got %d", len(tools))
	}
	for _, def := range tools {
		if !liteTools[def.Name] {
			t.Fatalf("unexpected tool %q in lite profile", def.Name)
		}
	}
}

func TestHandle_LiteProfileRejectsFullTools(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, func(c *config.Config) { c.Toolset = config.ToolsetLite }, nil)
	text, isError := callTool(t, srv, "roast_generator", map[string]any{"target": "Rohan"})
	if !isError {
		t.Fatalf("expected error for full-only tool in lite profile, got %q", text)
	}
	if !strings.Contains(text, "unknown tool") {
		t.Fatalf("unexpected error text %q", text)
	}
}

func TestToolCall_WishifyDefaults(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil, nil)
	text, isError := callTool(t, srv, "wishify", map[string]any{"occasion": "Diwali"})
	if isError {
		t.Fatalf("unexpected error: %q", text)
	}
	lines := strings.Split(text, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 default lines, got %d:\n%s", len(lines), text)
	}
	for _, line := range lines {
		if !strings.Contains(line, "Diwali") {
			t.Fatalf("line missing occasion: %q", line)
		}
	}
}

func TestToolCall_MissingRequiredField(t *testing.T) {
	t.Parallel()
	sink := &captureSink{}
	srv := newTestServer(t, nil, sink)

	text, isError := callTool(t, srv, "shayari", map[string]any{})
	if !isError {
		t.Fatalf("expected error, got %q", text)
	}
	if text != "theme is required" {
		t.Fatalf("error text = %q", text)
	}
}

func TestToolCall_CountClamping(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil, nil)

	text, isError := callTool(t, srv, "status_pack", map[string]any{"theme": "exam", "count": float64(10)})
	if isError {
		t.Fatalf("unexpected error: %q", text)
	}
	if got := len(strings.Split(text, "\n")); got != 7 {
		t.Fatalf("expected count clamped to 7, got %d lines", got)
	}

	text, _ = callTool(t, srv, "status_pack", map[string]any{"theme": "exam", "count": "not-a-number"})
	if got := len(strings.Split(text, "\n")); got != 5 {
		t.Fatalf("expected default 5 lines for non-numeric count, got %d", got)
	}
}

func TestToolCall_ValidateAlwaysReturnsOwner(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, func(c *config.Config) { c.OwnerPhone = "911234567890" }, nil)

	for _, args := range []map[string]any{
		{},
		{"bearerToken": "abc"},
		{"headers": map[string]any{"Authorization": "Bearer xyz"}},
		{"whatever": 42},
	} {
		text, isError := callTool(t, srv, "validate", args)
		if isError {
			t.Fatalf("validate(%v) errored: %q", args, text)
		}
		if text != "911234567890" {
			t.Fatalf("validate(%v) = %q, want owner phone", args, text)
		}
	}
}

func TestToolCall_CreateNote(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil, nil)

	text, isError := callTool(t, srv, "create_note", map[string]any{"title": "x"})
	if !isError || text != "Title and content are required." {
		t.Fatalf("expected required-field error, got %q (isError=%v)", text, isError)
	}

	text, isError = callTool(t, srv, "create_note", map[string]any{"title": "groceries", "content": "doodh, bread"})
	if isError {
		t.Fatalf("unexpected error: %q", text)
	}
	if text != "Created note 1: groceries" {
		t.Fatalf("create_note result = %q", text)
	}
}

func TestHandle_ResourceReadNotFound(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil, nil)

	params, _ := json.Marshal(map[string]any{"uri": "note:///99"})
	resp, ok := srv.handle(context.Background(), request{JSONRPC: "2.0", ID: json.RawMessage(`1`), Method: "resources/read", Params: params})
	if !ok {
		t.Fatal("expected response")
	}
	if resp.Error == nil {
		t.Fatalf("expected error response, got %+v", resp.Result)
	}
	if resp.Error.Message != "Note 99 not found" {
		t.Fatalf("error message = %q", resp.Error.Message)
	}
}

func TestHandle_ResourcesAndPromptRoundTrip(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil, nil)
	if _, isError := callTool(t, srv, "create_note", map[string]any{"title": "plan", "content": "ship it"}); isError {
		t.Fatal("create_note failed")
	}

	resp, _ := srv.handle(context.Background(), request{JSONRPC: "2.0", ID: json.RawMessage(`1`), Method: "resources/list"})
	resources := resp.Result.(map[string]any)["resources"].([]map[string]any)
	if len(resources) != 1 || resources[0]["uri"] != "note:///1" {
		t.Fatalf("unexpected resource list: %+v", resources)
	}

	params, _ := json.Marshal(map[string]any{"uri": "note:///1"})
	resp, _ = srv.handle(context.Background(), request{JSONRPC: "2.0", ID: json.RawMessage(`2`), Method: "resources/read", Params: params})
	if resp.Error != nil {
		t.Fatalf("resources/read error: %+v", resp.Error)
	}
	contents := resp.Result.(map[string]any)["contents"].([]map[string]any)
	if len(contents) != 1 || contents[0]["text"] != "ship it" {
		t.Fatalf("unexpected contents: %+v", contents)
	}

	params, _ = json.Marshal(map[string]any{"name": "summarize_notes"})
	resp, _ = srv.handle(context.Background(), request{JSONRPC: "2.0", ID: json.RawMessage(`3`), Method: "prompts/get", Params: params})
	if resp.Error != nil {
		t.Fatalf("prompts/get error: %+v", resp.Error)
	}
	messages := resp.Result.(map[string]any)["messages"].([]map[string]any)
	// Opening instruction, one note block, closing instruction.
	if len(messages) != 3 {
		t.Fatalf("expected 3 prompt messages, got %d", len(messages))
	}
}

func TestHandle_UnknownMethod(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil, nil)
	resp, ok := srv.handle(context.Background(), request{JSONRPC: "2.0", ID: json.RawMessage(`1`), Method: "bogus/method"})
	if !ok {
		t.Fatal("expected response for request with id")
	}
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("expected -32601, got %+v", resp.Error)
	}
}

func TestReadWriteFramedMessage(t *testing.T) {
	t.Parallel()
	resp := response{JSONRPC: "2.0", ID: 1, Result: map[string]any{"ok": true}}
	var payloadBuf bytes.Buffer
	bw := bufio.NewWriter(&payloadBuf)
	if err := writeFramedMessage(bw, resp); err != nil {
		t.Fatalf("writeFramedMessage() error = %v", err)
	}
	br := bufio.NewReader(bytes.NewReader(payloadBuf.Bytes()))
	payload, err := readFramedMessage(br)
	if err != nil {
		t.Fatalf("readFramedMessage() error = %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if got["jsonrpc"] != "2.0" {
		t.Fatalf("expected jsonrpc 2.0, got %v", got["jsonrpc"])
	}
}

func TestServe_JSONLineInitialize(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, nil, nil)

	in := bytes.NewBufferString("{\"jsonrpc\":\"2.0\",\"id\":1,\"method\":\"initialize\",\"params\":{\"protocolVersion\":\"2024-11-05\"}}\n")
	var out bytes.Buffer
	if err := srv.Serve(context.Background(), in, &out); err != nil {
		t.Fatalf("Serve() error = %v", err)
	}

	line := bytes.TrimSpace(out.Bytes())
	if len(line) == 0 {
		t.Fatal("expected JSON-line response, got empty output")
	}
	if bytes.Contains(line, []byte("Content-Length:")) {
		t.Fatalf("expected JSON-line response, got framed output: %q", string(line))
	}

	var resp map[string]any
	if err := json.Unmarshal(line, &resp); err != nil {
		t.Fatalf("json.Unmarshal(response) error = %v", err)
	}
	if resp["jsonrpc"] != "2.0" {
		t.Fatalf("expected jsonrpc 2.0, got %v", resp["jsonrpc"])
	}
}

func TestServe_LogsRequestEvents(t *testing.T) {
	t.Parallel()
	sink := &captureSink{}
	srv := newTestServer(t, nil, sink)

	in := bytes.NewBufferString("{\"jsonrpc\":\"2.0\",\"id\":1,\"method\":\"tools/call\",\"params\":{\"name\":\"shayari\",\"arguments\":{}}}\n")
	var out bytes.Buffer
	if err := srv.Serve(context.Background(), in, &out); err != nil {
		t.Fatalf("Serve() error = %v", err)
	}

	if len(sink.rows) != 1 {
		t.Fatalf("expected 1 request log row, got %d", len(sink.rows))
	}
	got := sink.rows[0]
	if got.Method != "tools/call" {
		t.Fatalf("expected method tools/call, got %q", got.Method)
	}
	if got.ToolName != "shayari" {
		t.Fatalf("expected tool shayari, got %q", got.ToolName)
	}
	if got.Success {
		t.Fatalf("expected failed request due to missing theme")
	}
	if got.ErrorText != "theme is required" {
		t.Fatalf("error text = %q", got.ErrorText)
	}
}
