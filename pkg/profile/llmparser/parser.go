// Package llmparser реализует LLM-стратегию извлечения профиля: один
// структурированный промпт, строгий разбор JSON-ответа и 1:1 маппинг на
// каноническую схему. Невалидный JSON — ошибка прогона, а не тихая деградация.
package llmparser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/artem13815/resume-profiler/pkg/llm"
	"github.com/artem13815/resume-profiler/pkg/profile"
)

// Parser — LLM-реализация profile.Parser.
type Parser struct {
	model    llm.ChatModel
	maxChars int
}

func NewParser(model llm.ChatModel) *Parser {
	return &Parser{model: model, maxChars: 12000}
}

var _ profile.Parser = (*Parser)(nil)

// Parse отправляет текст модели и превращает ответ в канонический профиль.
// Без настроенного ключа падает сразу, не пытаясь выполнить запрос; автоматического
// отката на эвристику нет — выбор стратегии остаётся за вызывающим.
func (p *Parser) Parse(ctx context.Context, rawText string) (profile.Profile, error) {
	if p.model == nil || !p.model.Configured() {
		return profile.Profile{}, &profile.ConfigError{Reason: "llm credential is missing"}
	}

	text := strings.TrimSpace(rawText)
	if len(text) > p.maxChars {
		text = text[:p.maxChars]
	}

	raw, err := p.model.Ask(ctx, systemPrompt, userPrompt(text))
	if err != nil {
		return profile.Profile{}, &profile.UpstreamError{Service: "llm", Err: err}
	}

	doc, err := decodeResponse(raw)
	if err != nil {
		return profile.Profile{}, err
	}
	out := transform(doc)
	out.Normalize()
	return out, nil
}

// decodeResponse срезает markdown-обёртку, строго парсит JSON и проверяет
// документ по схеме. Любой мусор — ParseError.
func decodeResponse(raw string) (document, error) {
	cleaned := stripFences(raw)

	var generic any
	if err := json.Unmarshal([]byte(cleaned), &generic); err != nil {
		return document{}, &profile.ParseError{Reason: "response is not valid JSON", Err: err}
	}
	if err := validateAgainstSchema(generic); err != nil {
		return document{}, &profile.ParseError{Reason: "response does not match schema", Err: err}
	}

	var doc document
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return document{}, &profile.ParseError{Reason: "response shape mismatch", Err: err}
	}
	return doc, nil
}

// stripFences убирает тройные бэктики вокруг JSON ("```json ... ```").
// Обёрнутый и голый ответ разбираются одинаково.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// language hint on the opening fence, e.g. ```json
	if i := strings.Index(s, "\n"); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if first == "" || len(first) <= 10 && !strings.ContainsAny(first, "{}") {
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func validateAgainstSchema(v any) error {
	b, err := json.Marshal(responseSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	return schema.Validate(v)
}
