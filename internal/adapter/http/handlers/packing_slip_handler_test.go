package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"packslip/internal/adapter/http/handlers/mocks"
	"packslip/internal/domain/entities"
	"packslip/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const sampleCSV = "OrderNumber,SenderName,SenderAddress,RecipientName,RecipientAddress,Description,Quantity,Price\nA1,Acme,1 Main St,Bob,2 Side St,Widget,1,2\n"

func multipartUpload(t *testing.T, field, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, "orders.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func decodeError(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json body %q: %v", body, err)
	}
	return out
}

func TestPackingSlipHandler_GenerateBulk(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(t *testing.T) (*gin.Engine, *mocks.MockIBulkPackingSlipUseCase) {
		ctrl := gomock.NewController(t)
		bulk := mocks.NewMockIBulkPackingSlipUseCase(ctrl)
		h := NewPackingSlipHandler(bulk, mocks.NewMockISingleOrderUseCase(ctrl))
		r := gin.New()
		r.POST("/v1/packing-slips/bulk", h.GenerateBulk)
		return r, bulk
	}

	t.Run("success multipart", func(t *testing.T) {
		r, bulk := build(t)

		bulk.EXPECT().
			Generate(gomock.Any(), gomock.Any(), usecase.BulkOptions{PageSize: entities.PageSizeLetter}).
			DoAndReturn(func(_ any, rd io.Reader, _ usecase.BulkOptions) (usecase.BulkResult, error) {
				got, _ := io.ReadAll(rd)
				if string(got) != sampleCSV {
					t.Fatalf("unexpected upload body %q", got)
				}
				return usecase.BulkResult{
					Archive:     []byte("PK-zip"),
					FileName:    usecase.ArchiveFileName,
					ArchiveURL:  "http://minio/bulk.zip",
					OrdersCount: 1,
					RowsCount:   1,
				}, nil
			})

		body, contentType := multipartUpload(t, "file", sampleCSV)
		req := httptest.NewRequest(http.MethodPost, "/v1/packing-slips/bulk?page_size=letter", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Content-Type"); got != "application/zip" {
			t.Fatalf("unexpected content type %q", got)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="bulk-packing-slips.zip"` {
			t.Fatalf("unexpected disposition %q", got)
		}
		if w.Header().Get(HeaderOrdersCount) != "1" || w.Header().Get(HeaderRowsCount) != "1" {
			t.Fatalf("unexpected count headers: %v", w.Header())
		}
		if w.Header().Get(HeaderArchiveURL) != "http://minio/bulk.zip" {
			t.Fatalf("missing archive url header")
		}
		if w.Body.String() != "PK-zip" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("raw csv body", func(t *testing.T) {
		r, bulk := build(t)
		bulk.EXPECT().
			Generate(gomock.Any(), gomock.Any(), usecase.BulkOptions{PageSize: entities.PageSizeA4}).
			Return(usecase.BulkResult{Archive: []byte("zip"), FileName: usecase.ArchiveFileName}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/packing-slips/bulk", bytes.NewBufferString(sampleCSV))
		req.Header.Set("Content-Type", "text/csv; charset=utf-8")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get(HeaderArchiveURL) != "" {
			t.Fatalf("archive url header should be absent")
		}
	})

	t.Run("missing file field", func(t *testing.T) {
		r, _ := build(t)
		body, contentType := multipartUpload(t, "other", sampleCSV)
		req := httptest.NewRequest(http.MethodPost, "/v1/packing-slips/bulk", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeError(t, w.Body.Bytes())["code"] != "INVALID_UPLOAD" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("json body rejected", func(t *testing.T) {
		r, _ := build(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/packing-slips/bulk", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid page size", func(t *testing.T) {
		r, _ := build(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/packing-slips/bulk?page_size=A3", bytes.NewBufferString(sampleCSV))
		req.Header.Set("Content-Type", "text/csv")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest || decodeError(t, w.Body.Bytes())["code"] != "INVALID_PAGE_SIZE" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	errorCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"parse error", &usecase.ParseError{Line: 3, Message: "bare quote"}, http.StatusBadRequest, "CSV_PARSE_ERROR"},
		{"empty upload", usecase.ErrEmptyUpload, http.StatusBadRequest, "EMPTY_UPLOAD"},
		{"row limit", &usecase.RowLimitError{Rows: 101, Limit: 100}, http.StatusRequestEntityTooLarge, "ROW_LIMIT_EXCEEDED"},
		{"render failure", &usecase.RenderError{OrderID: "A1", Err: errors.New("chrome died")}, http.StatusInternalServerError, "RENDER_FAILED"},
		{"render canceled", &usecase.RenderError{OrderID: "A1", Err: context.Canceled}, http.StatusRequestTimeout, "REQUEST_TIMEOUT"},
		{"render deadline", &usecase.RenderError{OrderID: "B2", Err: context.DeadlineExceeded}, http.StatusRequestTimeout, "REQUEST_TIMEOUT"},
		{"packaging failure", &usecase.PackagingError{Err: errors.New("disk full")}, http.StatusInternalServerError, "PACKAGING_FAILED"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			r, bulk := build(t)
			bulk.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.BulkResult{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/packing-slips/bulk", bytes.NewBufferString(sampleCSV))
			req.Header.Set("Content-Type", "text/csv")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			body := decodeError(t, w.Body.Bytes())
			if body["code"] != tc.wantCode {
				t.Fatalf("expected code %s, got %v", tc.wantCode, body["code"])
			}
		})
	}

	t.Run("missing columns details", func(t *testing.T) {
		r, bulk := build(t)
		bulk.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.BulkResult{}, &usecase.MissingColumnsError{Columns: []string{"Quantity", "OrderNumber"}})

		req := httptest.NewRequest(http.MethodPost, "/v1/packing-slips/bulk", bytes.NewBufferString(sampleCSV))
		req.Header.Set("Content-Type", "text/csv")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeError(t, w.Body.Bytes())
		details, _ := body["details"].(map[string]any)
		cols, _ := details["columns"].([]any)
		if body["code"] != "MISSING_COLUMNS" || len(cols) != 2 || cols[0] != "Quantity" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("internal error text never leaks", func(t *testing.T) {
		r, bulk := build(t)
		bulk.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.BulkResult{}, &usecase.RenderError{OrderID: "A1", Err: errors.New("secret chrome path")})

		req := httptest.NewRequest(http.MethodPost, "/v1/packing-slips/bulk", bytes.NewBufferString(sampleCSV))
		req.Header.Set("Content-Type", "text/csv")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if bytes.Contains(w.Body.Bytes(), []byte("secret chrome path")) {
			t.Fatalf("internal error leaked: %s", w.Body.String())
		}
	})
}

func TestPackingSlipHandler_InspectBulk(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	bulk := mocks.NewMockIBulkPackingSlipUseCase(ctrl)
	h := NewPackingSlipHandler(bulk, mocks.NewMockISingleOrderUseCase(ctrl))
	r := gin.New()
	r.POST("/v1/packing-slips/bulk/validate", h.InspectBulk)

	bulk.EXPECT().Inspect(gomock.Any(), gomock.Any()).Return(usecase.BulkInspection{
		Headers:   []string{"OrderNumber"},
		RowsCount: 2,
		Orders:    []usecase.OrderSummary{{OrderID: "A1", FileName: "A1.pdf", Rows: 2}},
	}, nil)

	body, contentType := multipartUpload(t, "file", sampleCSV)
	req := httptest.NewRequest(http.MethodPost, "/v1/packing-slips/bulk/validate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	out := decodeError(t, w.Body.Bytes())
	if out["orders_count"] != 1.0 || out["rows_count"] != 2.0 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPackingSlipHandler_GenerateSingle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(t *testing.T) (*gin.Engine, *mocks.MockISingleOrderUseCase) {
		ctrl := gomock.NewController(t)
		single := mocks.NewMockISingleOrderUseCase(ctrl)
		h := NewPackingSlipHandler(mocks.NewMockIBulkPackingSlipUseCase(ctrl), single)
		r := gin.New()
		r.POST("/v1/packing-slips", h.GenerateSingle)
		return r, single
	}

	t.Run("invalid json", func(t *testing.T) {
		r, _ := build(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/packing-slips", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		r, single := build(t)
		single.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(usecase.SingleOrderResult{}, usecase.ErrNoItems)

		req := httptest.NewRequest(http.MethodPost, "/v1/packing-slips", bytes.NewBufferString(`{"items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest || decodeError(t, w.Body.Bytes())["code"] != "INVALID_ORDER_INPUT" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, single := build(t)
		single.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.SingleOrderInput) (usecase.SingleOrderResult, error) {
				if in.Shipment.OrderNumber != "A-1" || len(in.Items) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return usecase.SingleOrderResult{FileName: "packing-slip-A-1.pdf", Content: []byte("%PDF")}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/packing-slips", bytes.NewBufferString(`{"shipment":{"order_number":"A-1"},"items":[{"description":"Widget","quantity":1,"unit_price":2}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "application/pdf" {
			t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
		}
		if w.Header().Get("Content-Disposition") != `attachment; filename="packing-slip-A-1.pdf"` {
			t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
		}
	})
}
