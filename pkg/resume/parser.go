package resume

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat возвращается для расширений вне списка поддерживаемых.
var ErrUnsupportedFormat = errors.New("unsupported file format: pdf, docx, png, jpg are allowed")

// OCR — внешний распознаватель текста на изображениях. Внутренности
// распознавания нас не интересуют, важен только текст или ошибка.
type OCR interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// TextExtractor достаёт сырой текст из поддерживаемых форматов резюме.
// PDF и DOCX разбираются локально, изображения уходят в OCR-коллаборатор.
type TextExtractor struct {
	ocr OCR
}

// NewTextExtractor создаёт экстрактор. ocr может быть nil, тогда изображения
// отклоняются с ошибкой вместо тихого пустого текста.
func NewTextExtractor(ocr OCR) *TextExtractor {
	return &TextExtractor{ocr: ocr}
}

func (e *TextExtractor) Extract(ctx context.Context, filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	case ".png", ".jpg", ".jpeg":
		if e.ocr == nil {
			return "", errors.New("image upload requires a configured OCR service")
		}
		text, err := e.ocr.Recognize(ctx, data)
		if err != nil {
			return "", err
		}
		return normalizeWhitespace(text), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			defer rc.Close()
			docXML, err = io.ReadAll(rc)
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Границы абзацев превращаем в переводы строк, дальше срезаем теги.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	reTags := regexp.MustCompile(`<[^>]+>`)
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

func normalizeWhitespace(s string) string {
	re := regexp.MustCompile(`[ \t\r\f\v]+`)
	s = re.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " ", " ")
	// переводы строк сохраняем, но схлопываем серии
	reN := regexp.MustCompile(`\n+`)
	s = reN.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
