package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nmoreras/ganttboard/internal/dateutil"
	"github.com/nmoreras/ganttboard/internal/feature"
)

// ErrUnsupportedFileType is returned for file imports that are not text.
var ErrUnsupportedFileType = errors.New("unsupported file type: only text files can be imported")

const importSystemPrompt = `You are a project planning assistant for a gantt timeline board.
The user describes features and who works on them, in any language.
Convert the description into JSON with this exact shape:

{
  "features": [
    {
      "name": "feature name",
      "assignments": [
        {"role": "FE", "label": "optional work item", "start": "YYYY-MM-DD", "end": "YYYY-MM-DD", "progress": 0}
      ]
    }
  ]
}

Rules:
- Keep feature names in the user's language.
- role is a short team name such as FE, BE, UI, UX, PM, QA, RD. Use "" when no role is given.
- Dates are calendar dates in YYYY-MM-DD. When the user gives durations instead of dates, lay assignments out starting from today, skipping weekends.
- progress is 0-100; use 0 when not stated.
- Respond with JSON only, no prose.`

// importDoc is the wire shape the model is asked to produce.
type importDoc struct {
	Features []importFeature `json:"features"`
}

type importFeature struct {
	Name        string             `json:"name"`
	Assignments []importAssignment `json:"assignments"`
}

type importAssignment struct {
	Role     string `json:"role"`
	Label    string `json:"label"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Progress int    `json:"progress"`
}

// Importer turns freeform planning text into a feature collection.
type Importer struct {
	client Client
}

// NewImporter creates an Importer backed by the given client.
func NewImporter(client Client) *Importer {
	return &Importer{client: client}
}

// ParseText converts a freeform description into features. A malformed
// model response is retried once before the error is surfaced.
func (im *Importer) ParseText(ctx context.Context, text string) ([]feature.Feature, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("nothing to import")
	}

	messages := []Message{
		{Role: "system", Content: importSystemPrompt},
		{Role: "system", Content: "Today is " + dateutil.FormatDate(time.Now()) + "."},
		{Role: "user", Content: text},
	}

	var doc importDoc
	if err := im.client.ChatJSON(ctx, messages, &doc); err != nil {
		// One retry with the failure echoed back.
		retry := append(messages, Message{
			Role:    "user",
			Content: "The previous response was not valid JSON (" + err.Error() + "). Respond again with only the JSON document.",
		})
		doc = importDoc{}
		if err := im.client.ChatJSON(ctx, retry, &doc); err != nil {
			return nil, fmt.Errorf("parsing import response: %w", err)
		}
	}

	return toFeatures(doc)
}

// ParseFile converts an uploaded file into features. Only text-like MIME
// types are accepted; binary formats are an external concern.
func (im *Importer) ParseFile(ctx context.Context, data []byte, mimeType string) ([]feature.Feature, error) {
	if !isTextMIME(mimeType) {
		return nil, fmt.Errorf("%w (%s)", ErrUnsupportedFileType, mimeType)
	}
	return im.ParseText(ctx, string(data))
}

func isTextMIME(mimeType string) bool {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch {
	case strings.HasPrefix(mt, "text/"):
		return true
	case mt == "application/json", mt == "application/markdown":
		return true
	case mt == "":
		// No MIME type usually means a plain local file.
		return true
	}
	return false
}

// toFeatures converts the wire document into validated domain features.
func toFeatures(doc importDoc) ([]feature.Feature, error) {
	if len(doc.Features) == 0 {
		return nil, errors.New("model returned no features")
	}

	out := make([]feature.Feature, 0, len(doc.Features))
	for _, f := range doc.Features {
		nf, err := feature.NewFeature(strings.TrimSpace(f.Name))
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", f.Name, err)
		}
		for _, a := range f.Assignments {
			progress := a.Progress
			if progress < 0 {
				progress = 0
			}
			if progress > 100 {
				progress = 100
			}
			na, err := feature.NewAssignment(a.Role, a.Label, a.Start, a.End, progress)
			if err != nil {
				return nil, fmt.Errorf("feature %q assignment: %w", f.Name, err)
			}
			nf.Assignments = append(nf.Assignments, na)
		}
		out = append(out, nf)
	}
	return out, nil
}
