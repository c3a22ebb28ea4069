package pdf

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"packslip/internal/domain/entities"
	"strconv"
	"strings"
)

//go:embed templates/packing_slip.html.tmpl
var templatesFS embed.FS

var packingSlipTemplate = template.Must(
	template.New("packing_slip.html.tmpl").
		Funcs(template.FuncMap{
			"formatCurrency": FormatCurrency,
			"formatLines":    FormatLines,
			"formatQuantity": formatQuantity,
			"orDash":         orDash,
			"orderLabel":     orderLabel,
		}).
		ParseFS(templatesFS, "templates/packing_slip.html.tmpl"),
)

// BuildHTML renders the packing slip markup printed by the browser.
func BuildHTML(doc entities.PackingDocument) (string, error) {
	var buf bytes.Buffer
	if err := packingSlipTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render packing slip template: %w", err)
	}
	return buf.String(), nil
}

// FormatLines flattens a multi-line address onto one line; empty becomes "-".
func FormatLines(s string) string {
	if s == "" {
		return "-"
	}
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		return "-"
	}
	return strings.Join(kept, ", ")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func orderLabel(orderNumber string) string {
	if strings.TrimSpace(orderNumber) == "" {
		return "Draft"
	}
	return orderNumber
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
