package profile

import "context"

// Parser — порт стратегии извлечения. Обе реализации (эвристическая и LLM)
// возвращают профиль в канонической схеме; выбор стратегии — решение вызывающего.
type Parser interface {
	Parse(ctx context.Context, rawText string) (Profile, error)
}
