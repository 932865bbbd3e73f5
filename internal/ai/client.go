package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/nexonbooks/docintake/internal/common"
)

const systemPrompt = `You read Belgian business documents (invoices and bank
statements, Dutch/French/English). Extract the requested fields and return
ONLY a JSON object matching the provided schema. Use null-omission: leave out
any field you cannot find. Dates are YYYY-MM-DD. Amounts are decimal strings
with a dot separator. VAT rates are percentages (21, 6, ...).`

// Client implements FieldSource against the OpenAI chat completions API.
type Client struct {
	api *openai.Client
	cfg common.AIConfig
	log *slog.Logger
}

// NewClient returns nil when no API key is configured; callers treat a
// nil client as "heuristics only".
func NewClient(cfg common.AIConfig, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &Client{api: openai.NewClientWithConfig(oc), cfg: cfg, log: logger}
}

// ExtractFields sends the document text and asks for schema-constrained
// JSON. The response is validated locally before use.
func (c *Client) ExtractFields(ctx context.Context, text, fileNameHint string) (DocumentFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("ai.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(text),
		"filename_hint", fileNameHint,
	)

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	schema := BuildDocumentJSONSchema()
	schemaJSON, _ := json.Marshal(schema)

	user := "Filename: " + fileNameHint + "\n\nDocument text:\n" + text

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleSystem, Content: "JSON Schema:\n" + string(schemaJSON)},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		c.log.Error("ai.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return DocumentFields{}, nil, err
	}
	if len(resp.Choices) == 0 {
		c.log.Error("ai.extract.no_choices", "req_id", rid)
		return DocumentFields{}, nil, fmt.Errorf("no choices in model response")
	}

	raw := []byte(strings.TrimSpace(resp.Choices[0].Message.Content))
	if err := ValidateJSONAgainstSchema(schema, raw); err != nil {
		c.log.Error("ai.extract.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return DocumentFields{}, raw, fmt.Errorf("schema validation failed: %w", err)
	}

	var fields DocumentFields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return DocumentFields{}, raw, fmt.Errorf("decode fields: %w", err)
	}

	c.log.Info("ai.extract.ok",
		"req_id", rid,
		"document_type", fields.DocumentType,
		"confidence", fields.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds())
	return fields, raw, nil
}
