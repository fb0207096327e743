package profile

import "fmt"

// Таксономия ошибок конвейера извлечения. Все они перехватываются на границе
// оркестратора и превращаются в терминальный статус failed с сообщением;
// наружу они не всплывают.

// InsufficientTextError — извлечённый текст пуст или короче минимума.
type InsufficientTextError struct {
	Length int
	Min    int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("insufficient resume text: %d chars, need at least %d", e.Length, e.Min)
}

// ParseError — ответ LLM не является валидным документом канонической схемы.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse extraction response: %s: %v", e.Reason, e.Err)
	}
	return "parse extraction response: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// UpstreamError — отказ внешнего сервиса (экстрактор текста, LLM, таймаут).
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ConfigError — стратегия вызвана без обязательной настройки (например,
// LLM-парсер без ключа). Fail closed: запрос не выполняется.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "extraction not configured: " + e.Reason }
