package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	portssvc "github.com/invopay/invoicing_backend/internal/core/ports/services"
	"github.com/invopay/invoicing_backend/internal/dto"
	"github.com/invopay/invoicing_backend/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices and their payments.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade, ps portssvc.PaymentSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is, paymentService: ps}
}

// RegisterInvoiceRoutes registers routes related to invoices and payments.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newInvoiceHandler(invoiceService, paymentService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoice_id", h.getInvoiceByID)
		invoices.GET("/:invoice_id/history", h.getInvoiceHistory)

		invoices.GET("/:invoice_id/payments", h.listPayments)
		invoices.GET("/:invoice_id/payments/new", h.getPaymentForm)
		invoices.POST("/:invoice_id/payments", h.recordPayment)
	}
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Persists a new draft invoice
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrUnknownCurrency) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List a company's invoices
// @Description Retrieves a token-paginated list of invoices, newest first
// @Tags invoices
// @Produce  json
// @Param   companyID query string true "Company ID"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Pagination token from previous page"
// @Success 200 {object} dto.ListInvoicesResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Query("companyID")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID query parameter is required"})
		return
	}

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.invoiceService.ListInvoices(c.Request.Context(), companyID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list invoices", slog.String("company_id", companyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoices"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getInvoiceByID godoc
// @Summary Get an invoice
// @Description Retrieves an invoice with its payments
// @Tags invoices
// @Produce  json
// @Param   invoice_id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{invoice_id} [get]
func (h *invoiceHandler) getInvoiceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoice_id")

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to get invoice", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// getInvoiceHistory godoc
// @Summary Get invoice history
// @Description Retrieves the append-only history of an invoice, oldest first
// @Tags invoices
// @Produce  json
// @Param   invoice_id path string true "Invoice ID"
// @Success 200 {array} dto.InvoiceHistoryResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{invoice_id}/history [get]
func (h *invoiceHandler) getInvoiceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoice_id")

	history, err := h.invoiceService.GetInvoiceHistory(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to get invoice history", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice history"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceHistoryResponses(history))
}

// listPayments godoc
// @Summary List payments of an invoice
// @Description Retrieves the payments recorded against an invoice
// @Tags payments
// @Produce  json
// @Param   invoice_id path string true "Invoice ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{invoice_id}/payments [get]
func (h *invoiceHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoice_id")

	payments, err := h.paymentService.ListPayments(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to list payments", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payments"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// getPaymentForm godoc
// @Summary Get payment form data
// @Description Retrieves the accounts, currencies, payment methods and outstanding balance a payment form needs
// @Tags payments
// @Produce  json
// @Param   invoice_id path string true "Invoice ID"
// @Success 200 {object} dto.PaymentFormResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{invoice_id}/payments/new [get]
func (h *invoiceHandler) getPaymentForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoice_id")

	form, err := h.paymentService.PreparePaymentForm(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to prepare payment form", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare payment form"})
		}
		return
	}

	c.JSON(http.StatusOK, form)
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a payment against an invoice. Accepts JSON or multipart form data; a multipart request may carry a receipt in the "attachment" file field. A payment exceeding the outstanding balance is rejected with the maximum payable amount in the submitted currency.
// @Tags payments
// @Accept  json
// @Accept  mpfd
// @Produce  json
// @Param   invoice_id path string true "Invoice ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 422 {object} dto.OverpaymentResponse "Payment exceeds outstanding balance"
// @Security BearerAuth
// @Router /invoices/{invoice_id}/payments [post]
func (h *invoiceHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoice_id")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind RecordPayment request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var attachment *dto.AttachmentUpload
	if fileHeader, err := c.FormFile("attachment"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			logger.Warn("Failed to open uploaded attachment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read attachment"})
			return
		}
		defer file.Close()
		attachment = &dto.AttachmentUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Reader:      file,
		}
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), invoiceID, req, attachment, creatorUserID)
	if err != nil {
		var overErr *apperrors.OverpaymentError
		switch {
		case errors.As(err, &overErr):
			c.JSON(http.StatusUnprocessableEntity, dto.OverpaymentResponse{
				Error:      overErr.Error(),
				MaxPayable: overErr.MaxPayable,
				Currency:   overErr.CurrencyCode,
			})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		case errors.Is(err, apperrors.ErrUnknownCurrency), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidCurrencyConfig):
			logger.Error("Currency configuration error recording payment", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Currency configuration error"})
		default:
			logger.Error("Failed to record payment", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}
