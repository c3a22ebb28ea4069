package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	request "packslip/internal/adapter/http/dto/request"
	response "packslip/internal/adapter/http/dto/response"
	"packslip/internal/usecase"
	"packslip/pkg"
	"packslip/pkg/logger"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	uploadField    = "file"
	maxUploadBytes = 5 << 20

	HeaderOrdersCount = "X-Orders-Count"
	HeaderRowsCount   = "X-Rows-Count"
	HeaderArchiveURL  = "X-Archive-URL"
)

var (
	errInvalidUpload       = pkg.NewDomainErrorSimple("INVALID_UPLOAD", "A CSV file is required", http.StatusBadRequest)
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid packing slip payload", http.StatusBadRequest)
)

// PackingSlipHandler serves bulk (CSV to ZIP) and single-order (JSON to PDF) generation.
type PackingSlipHandler struct {
	bulk   usecase.IBulkPackingSlipUseCase
	single usecase.ISingleOrderUseCase
}

func NewPackingSlipHandler(bulk usecase.IBulkPackingSlipUseCase, single usecase.ISingleOrderUseCase) *PackingSlipHandler {
	return &PackingSlipHandler{bulk: bulk, single: single}
}

// GenerateBulk godoc
// @Summary      Generate packing slips from a CSV upload
// @Description  Groups rows by Order ID and returns one PDF per order inside a ZIP archive.
// @Tags         packing-slips
// @Accept       multipart/form-data
// @Produce      application/zip
// @Param        file       formData  file    true   "CSV export"
// @Param        page_size  query     string  false  "A4 or LETTER"
// @Success      200  {file}    binary
// @Failure      400  {object}  pkg.HTTPError
// @Failure      413  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /packing-slips/bulk [post]
func (h *PackingSlipHandler) GenerateBulk(c *gin.Context) {
	pageSize, err := usecase.ParsePageSize(c.Query("page_size"))
	if err != nil {
		writeError(c, mapPackingSlipError(err))
		return
	}

	upload, err := openUpload(c)
	if err != nil {
		c.JSON(errInvalidUpload.HTTPStatus, errInvalidUpload.ToHTTPError())
		return
	}
	defer upload.Close()

	result, err := h.bulk.Generate(c.Request.Context(), upload, usecase.BulkOptions{PageSize: pageSize})
	if err != nil {
		writeError(c, mapPackingSlipError(err))
		return
	}

	c.Header("Content-Disposition", attachment(result.FileName))
	c.Header(HeaderOrdersCount, strconv.Itoa(result.OrdersCount))
	c.Header(HeaderRowsCount, strconv.Itoa(result.RowsCount))
	if result.ArchiveURL != "" {
		c.Header(HeaderArchiveURL, result.ArchiveURL)
	}
	c.Data(http.StatusOK, "application/zip", result.Archive)
}

// InspectBulk godoc
// @Summary      Validate a CSV upload
// @Description  Parses and groups the upload without rendering anything.
// @Tags         packing-slips
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV export"
// @Success      200  {object}  response.BulkInspectionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      413  {object}  pkg.HTTPError
// @Router       /packing-slips/bulk/validate [post]
func (h *PackingSlipHandler) InspectBulk(c *gin.Context) {
	upload, err := openUpload(c)
	if err != nil {
		c.JSON(errInvalidUpload.HTTPStatus, errInvalidUpload.ToHTTPError())
		return
	}
	defer upload.Close()

	inspection, err := h.bulk.Inspect(c.Request.Context(), upload)
	if err != nil {
		writeError(c, mapPackingSlipError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBulkInspection(inspection))
}

// GenerateSingle godoc
// @Summary      Generate one packing slip
// @Tags         packing-slips
// @Accept       json
// @Produce      application/pdf
// @Param        order  body      request.SingleOrderRequest  true  "Order"
// @Success      200    {file}    binary
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /packing-slips [post]
func (h *PackingSlipHandler) GenerateSingle(c *gin.Context) {
	var payload request.SingleOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	result, err := h.single.Generate(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapPackingSlipError(err))
		return
	}

	c.Header("Content-Disposition", attachment(result.FileName))
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

// openUpload accepts a multipart "file" field or a raw CSV body.
func openUpload(c *gin.Context) (io.ReadCloser, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	contentType := c.ContentType()
	switch {
	case strings.HasPrefix(contentType, "multipart/"):
		fh, err := c.FormFile(uploadField)
		if err != nil {
			return nil, err
		}
		return fh.Open()
	case contentType == "text/csv", contentType == "application/csv", contentType == "application/octet-stream":
		return c.Request.Body, nil
	default:
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}
}

func attachment(name string) string {
	return fmt.Sprintf("attachment; filename=%q", name)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("[packing-slip][handler] request failed", zap.String("code", appErr.Code), zap.Error(appErr.Err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPackingSlipError(err error) *pkg.AppError {
	var (
		missingErr *usecase.MissingColumnsError
		limitErr   *usecase.RowLimitError
		parseErr   *usecase.ParseError
		renderErr  *usecase.RenderError
	)

	switch {
	case errors.As(err, &missingErr):
		return pkg.NewDomainErrorSimple("MISSING_COLUMNS", missingErr.Error(), http.StatusBadRequest).
			WithDetails("columns", missingErr.Columns)
	case errors.As(err, &limitErr):
		return pkg.NewDomainErrorSimple("ROW_LIMIT_EXCEEDED", limitErr.Error(), http.StatusRequestEntityTooLarge).
			WithDetails("limit", limitErr.Limit).
			WithDetails("rows", limitErr.Rows)
	case errors.As(err, &parseErr):
		appErr := pkg.NewDomainErrorSimple("CSV_PARSE_ERROR", parseErr.Error(), http.StatusBadRequest)
		if parseErr.Line > 0 {
			appErr.WithDetails("line", parseErr.Line)
		}
		return appErr
	case errors.Is(err, usecase.ErrEmptyUpload):
		return pkg.NewDomainErrorSimple("EMPTY_UPLOAD", "CSV file is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPageSize):
		return pkg.NewDomainErrorSimple("INVALID_PAGE_SIZE", "Page size must be A4 or LETTER", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoItems), errors.Is(err, usecase.ErrInvalidItem):
		return pkg.NewDomainError("INVALID_ORDER_INPUT", capitalize(err.Error()), err, http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("REQUEST_TIMEOUT", "The request was canceled before generation finished", err, http.StatusRequestTimeout)
	case errors.As(err, &renderErr):
		return pkg.NewDomainError("RENDER_FAILED", "Failed to render packing slip for order "+renderErr.OrderID, err, http.StatusInternalServerError).
			WithDetails("order_id", renderErr.OrderID)
	case errors.Is(err, usecase.ErrPackaging):
		return pkg.NewDomainError("PACKAGING_FAILED", "Failed to zip files", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
