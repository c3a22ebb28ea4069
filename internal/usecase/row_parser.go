package usecase

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"packslip/internal/domain/entities"
	"regexp"
	"strconv"
	"strings"
)

// MaxBulkRows is the number of data rows accepted in one upload.
const MaxBulkRows = 100

// CSV column names.
const (
	ColOrderNumber      = "OrderNumber"
	ColSenderName       = "SenderName"
	ColSenderAddress    = "SenderAddress"
	ColSenderPhone      = "SenderPhone"
	ColRecipientName    = "RecipientName"
	ColRecipientAddress = "RecipientAddress"
	ColRecipientEmail   = "RecipientEmail"
	ColSKU              = "SKU"
	ColDescription      = "Description"
	ColQuantity         = "Quantity"
	ColPrice            = "Price"
	ColDate             = "Date"
	ColPONumber         = "PONumber"
	ColCarrier          = "Carrier"
	ColShippingMethod   = "ShippingMethod"
	ColTrackingNumber   = "TrackingNumber"
	ColWeight           = "Weight"

	// colTrackingLegacy is the column name used by the first CSV template.
	colTrackingLegacy = "Tracking"
)

// RequiredColumns must all be present in the header row.
var RequiredColumns = []string{
	ColOrderNumber,
	ColSenderName,
	ColSenderAddress,
	ColRecipientName,
	ColRecipientAddress,
	ColDescription,
	ColQuantity,
	ColPrice,
}

var (
	ErrCSVParse         = errors.New("csv parse error")
	ErrEmptyUpload      = errors.New("csv file is empty")
	ErrRowLimitExceeded = errors.New("row limit exceeded")
	ErrMissingColumns   = errors.New("missing required columns")
)

// ParseError carries the first decode error reported for an upload.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("CSV Parsing Error: line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("CSV Parsing Error: %s", e.Message)
}

func (e *ParseError) Unwrap() error { return ErrCSVParse }

// RowLimitError is returned when an upload has more than MaxBulkRows data rows.
type RowLimitError struct {
	Rows  int
	Limit int
}

func (e *RowLimitError) Error() string {
	return fmt.Sprintf("Limit exceeded: Max %d rows per batch (got %d).", e.Limit, e.Rows)
}

func (e *RowLimitError) Unwrap() error { return ErrRowLimitExceeded }

// MissingColumnsError names every required column absent from the header row.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "Missing required columns: " + strings.Join(e.Columns, ", ")
}

func (e *MissingColumnsError) Unwrap() error { return ErrMissingColumns }

// ParsedUpload is a validated upload: the header set plus one typed row per data line.
type ParsedUpload struct {
	Headers []string
	Rows    []entities.UploadRow
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseUploadRows decodes a bulk CSV upload.
//
// Checks run in a fixed order and the first failure is terminal: decode errors,
// then empty input, then the row limit, then missing required columns.
func ParseUploadRows(r io.Reader) (ParsedUpload, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return ParsedUpload{}, ErrEmptyUpload
	}
	if err != nil {
		return ParsedUpload{}, toParseError(err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	type record struct {
		line   int
		fields []string
	}
	var records []record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ParsedUpload{}, toParseError(err)
		}
		line, _ := reader.FieldPos(0)
		records = append(records, record{line: line, fields: fields})
	}

	if len(records) == 0 {
		return ParsedUpload{}, ErrEmptyUpload
	}
	if len(records) > MaxBulkRows {
		return ParsedUpload{}, &RowLimitError{Rows: len(records), Limit: MaxBulkRows}
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	if missing := missingColumns(index); len(missing) > 0 {
		return ParsedUpload{}, &MissingColumnsError{Columns: missing}
	}

	rows := make([]entities.UploadRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, toUploadRow(rec.line, rec.fields, index))
	}
	return ParsedUpload{Headers: header, Rows: rows}, nil
}

func missingColumns(index map[string]int) []string {
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

func toParseError(err error) *ParseError {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.Line, Message: pe.Err.Error()}
	}
	return &ParseError{Message: err.Error()}
}

func toUploadRow(line int, fields []string, index map[string]int) entities.UploadRow {
	get := func(col string) string {
		if i, ok := index[col]; ok && i < len(fields) {
			return fields[i]
		}
		return ""
	}

	tracking := get(ColTrackingNumber)
	if tracking == "" {
		tracking = get(colTrackingLegacy)
	}

	return entities.UploadRow{
		Line:             line,
		OrderNumber:      get(ColOrderNumber),
		SenderName:       get(ColSenderName),
		SenderAddress:    get(ColSenderAddress),
		SenderPhone:      get(ColSenderPhone),
		RecipientName:    get(ColRecipientName),
		RecipientAddress: get(ColRecipientAddress),
		RecipientEmail:   get(ColRecipientEmail),
		SKU:              get(ColSKU),
		Description:      get(ColDescription),
		Quantity:         ParseLenientFloat(get(ColQuantity)),
		UnitPrice:        ParseLenientFloat(get(ColPrice)),
		Date:             get(ColDate),
		PONumber:         get(ColPONumber),
		Carrier:          get(ColCarrier),
		ShippingMethod:   get(ColShippingMethod),
		TrackingNumber:   tracking,
		Weight:           get(ColWeight),
	}
}

var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseLenientFloat reads the leading decimal number of s ("3 pcs" -> 3).
// Input without a leading number, NaN and infinities all become 0.
func ParseLenientFloat(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
