package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ledongthucPDF extracts PDF text with github.com/ledongthuc/pdf.
type ledongthucPDF struct{}

func (ledongthucPDF) Name() string { return "ledongthuc" }

func (ledongthucPDF) Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// A page with no extractable text contributes an empty string,
		// not an error.
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}
	return b.String(), nil
}
