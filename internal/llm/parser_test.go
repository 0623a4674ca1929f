package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// scriptedClient returns canned responses in order; errors consume a slot too.
type scriptedClient struct {
	responses []string
	errs      []error
	calls     int
}

func (c *scriptedClient) Chat(context.Context, []Message) (string, error) {
	defer func() { c.calls++ }()
	if c.errs != nil && c.errs[c.calls] != nil {
		return "", c.errs[c.calls]
	}
	return c.responses[c.calls], nil
}

func (c *scriptedClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	content, err := c.Chat(ctx, messages)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(extractJSON(content)), result)
}

const validImportResponse = `{
	"features": [
		{
			"name": "登入",
			"assignments": [
				{"role": "fe", "label": "表單", "start": "2025-01-02", "end": "2025-01-03", "progress": 20},
				{"role": "be", "start": "2025-01-02", "end": "2025-01-06"}
			]
		},
		{"name": "報表", "assignments": []}
	]
}`

func TestImporter_ParseText(t *testing.T) {
	im := NewImporter(&scriptedClient{responses: []string{validImportResponse}})

	features, err := im.ParseText(context.Background(), "登入功能 前端兩天 後端三天")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	if len(features) != 2 {
		t.Fatalf("len(features) = %d, want 2", len(features))
	}
	if features[0].Name != "登入" {
		t.Errorf("name = %q", features[0].Name)
	}
	if features[0].ID == "" || features[0].Assignments[0].ID == "" {
		t.Error("imported items must get fresh ids")
	}
	if got := features[0].Assignments[0].Role; got != "FE" {
		t.Errorf("role = %q, want normalized FE", got)
	}
	if features[0].Assignments[0].Color == "" {
		t.Error("imported assignment missing derived color")
	}
}

func TestImporter_RetriesOnceOnMalformedJSON(t *testing.T) {
	client := &scriptedClient{
		responses: []string{"sure, here is your plan!", validImportResponse},
		errs:      []error{nil, nil},
	}
	im := NewImporter(client)

	features, err := im.ParseText(context.Background(), "some plan")
	if err != nil {
		t.Fatalf("ParseText failed after retry: %v", err)
	}
	if client.calls != 2 {
		t.Errorf("calls = %d, want 2", client.calls)
	}
	if len(features) != 2 {
		t.Errorf("len(features) = %d, want 2", len(features))
	}
}

func TestImporter_GivesUpAfterRetry(t *testing.T) {
	client := &scriptedClient{responses: []string{"nope", "still nope"}}
	im := NewImporter(client)

	if _, err := im.ParseText(context.Background(), "some plan"); err == nil {
		t.Error("expected error after failed retry")
	}
	if client.calls != 2 {
		t.Errorf("calls = %d, want 2", client.calls)
	}
}

func TestImporter_EmptyInput(t *testing.T) {
	im := NewImporter(&scriptedClient{})
	if _, err := im.ParseText(context.Background(), "   "); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestImporter_ParseFileRejectsBinary(t *testing.T) {
	im := NewImporter(&scriptedClient{responses: []string{validImportResponse}})

	tests := []struct {
		mime string
		ok   bool
	}{
		{"text/plain", true},
		{"text/markdown; charset=utf-8", true},
		{"application/json", true},
		{"", true},
		{"application/pdf", false},
		{"image/png", false},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			im.client.(*scriptedClient).calls = 0
			_, err := im.ParseFile(context.Background(), []byte("plan text"), tt.mime)
			if tt.ok && err != nil {
				t.Errorf("ParseFile(%q) failed: %v", tt.mime, err)
			}
			if !tt.ok && !errors.Is(err, ErrUnsupportedFileType) {
				t.Errorf("ParseFile(%q) err = %v, want ErrUnsupportedFileType", tt.mime, err)
			}
		})
	}
}

func TestImporter_NoFeatures(t *testing.T) {
	im := NewImporter(&scriptedClient{responses: []string{`{"features":[]}`, `{"features":[]}`}})
	if _, err := im.ParseText(context.Background(), "plan"); err == nil {
		t.Error("expected error for empty feature list")
	}
}

func TestImporter_ProgressClamped(t *testing.T) {
	response := `{"features":[{"name":"x","assignments":[
		{"role":"FE","start":"2025-01-02","end":"2025-01-03","progress":250}]}]}`
	im := NewImporter(&scriptedClient{responses: []string{response}})

	features, err := im.ParseText(context.Background(), "plan")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if got := features[0].Assignments[0].Progress; got != 100 {
		t.Errorf("progress = %d, want clamped 100", got)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n[1,2]\n```", `[1,2]`},
		{"prose around object", `Here you go: {"a":{"b":2}} hope it helps`, `{"a":{"b":2}}`},
		{"no json at all", "hello", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.in); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
