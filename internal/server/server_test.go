package server

import (
	"encoding/json"
	"testing"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
			if req.JSONRPC != "2.0" {
				t.Errorf("JSONRPC: got %s, want 2.0", req.JSONRPC)
			}
		})
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "ping"})
	if resp == nil {
		t.Fatal("ping returned nil response")
	}
	if resp.Error != nil {
		t.Errorf("ping returned error: %+v", resp.Error)
	}
}

func TestHandleRequest_UnknownMethod(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "bogus/method"})
	if resp == nil {
		t.Fatal("expected error response")
	}
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Errorf("error: got %+v, want code -32601", resp.Error)
	}
}

func TestHandleRequest_NotificationHasNoResponse(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"})
	if resp != nil {
		t.Errorf("notification should not be answered: got %+v", resp)
	}
}

func TestHandleInitialize(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 7, Method: "initialize"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("initialize failed: %+v", resp)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result type: %T", resp.Result)
	}
	info, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatalf("serverInfo missing: %+v", result)
	}
	if info["name"] != "color-tools-mcp" {
		t.Errorf("server name: got %v", info["name"])
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 2, Method: "tools/list"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("tools/list failed: %+v", resp)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result type: %T", resp.Result)
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("tools type: %T", result["tools"])
	}
	if len(tools) == 0 {
		t.Error("tools list is empty")
	}
}

func TestHandleToolsCall(t *testing.T) {
	s := New()

	params, _ := json.Marshal(ToolCallParams{
		Name:      "color_css",
		Arguments: json.RawMessage(`{"color":{"hsl":{"hue":145,"saturation":30,"lightness":50}}}`),
	})
	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 3, Method: "tools/call", Params: params})
	if resp.Error != nil {
		t.Fatalf("tools/call failed: %+v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result type: %T", resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: %+v", result["content"])
	}
	text, _ := content[0]["text"].(string)
	if text == "" {
		t.Error("content text is empty")
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 4, Params: json.RawMessage(`not json`)})
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Errorf("error: got %+v, want code -32602", resp.Error)
	}
}

func TestHandleToolsCall_ExecutionFailure(t *testing.T) {
	s := New()
	params, _ := json.Marshal(ToolCallParams{
		Name:      "color_convert",
		Arguments: json.RawMessage(`{"color":{"hex":"#ff0000"},"mode":"hsv"}`),
	})
	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 5, Method: "tools/call", Params: params})
	if resp.Error == nil || resp.Error.Code != -32000 {
		t.Errorf("error: got %+v, want code -32000", resp.Error)
	}
}
