package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/SscSPs/concierge_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// documentHandler handles HTTP requests related to quotes and invoices.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// registerDocumentRoutes registers routes related to documents.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.GET("", h.listDocuments)
		documents.GET("/export", h.exportDocuments)
		documents.GET("/next-number", h.nextNumber)
		documents.POST("/preview", h.previewDocument)
		documents.POST("", h.createDocument)
		documents.GET("/:documentID", h.getDocument)
		documents.PUT("/:documentID", h.updateDocument)
		documents.DELETE("/:documentID", h.deleteDocument)

		documents.PUT("/:documentID/categories", h.setCategorySelection)
		documents.DELETE("/:documentID/categories/:name", h.removeCategoryLine)
		documents.PUT("/:documentID/products", h.setProductSelections)
		documents.DELETE("/:documentID/products/:productID", h.removeProductLine)
		documents.PUT("/:documentID/hourly-rate", h.changeHourlyRate)
		documents.PUT("/:documentID/client-category", h.changeClientCategory)
		documents.POST("/:documentID/status/cycle", h.cycleStatus)
		documents.PUT("/:documentID/status", h.setStatus)
	}
}

func toSaveDocumentResponse(res *portssvc.DocumentSaveResult) dto.SaveDocumentResponse {
	return dto.SaveDocumentResponse{
		Document:     dto.ToDocumentResponse(res.Document),
		NextNumber:   res.NextNumber,
		Notification: dto.ToNotificationResponse(res.Notification.Attempted, res.Notification.Err),
	}
}

func bindDocumentQuery(c *gin.Context, logger *slog.Logger) (dto.ListDocumentsParams, bool) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return params, false
	}
	return params, true
}

// listDocuments godoc
// @Summary List quotes and invoices
// @Description Newest first. Pass nextPageToken back as pageToken to read the following page.
// @Tags documents
// @Produce  json
// @Param   type query string false "quote or invoice"
// @Param   status query string false "issued, to-pay or paid"
// @Param   clientId query string false "Client ID"
// @Param   limit query int false "Page size (default 50, max 500)"
// @Param   pageToken query string false "Token from a previous page"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindDocumentQuery(c, logger)
	if !ok {
		return
	}

	documents, nextToken, err := h.documentService.ListDocuments(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Document", "list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ListDocumentsResponse{
		Documents:     dto.ToListDocumentResponse(documents),
		NextPageToken: nextToken,
	})
}

// exportDocuments godoc
// @Summary Export documents as a spreadsheet
// @Description Every document matching the filters, without paging
// @Tags documents
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   type query string false "quote or invoice"
// @Param   status query string false "issued, to-pay or paid"
// @Param   clientId query string false "Client ID"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/export [get]
func (h *documentHandler) exportDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindDocumentQuery(c, logger)
	if !ok {
		return
	}

	workbook, err := h.documentService.ExportDocuments(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Document", "export documents")
		return
	}

	logger.Info("Documents exported", slog.Int("bytes", len(workbook)))
	c.Header("Content-Disposition", `attachment; filename="documents.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, workbook)
}

// nextNumber godoc
// @Summary Number the next document would receive
// @Tags documents
// @Produce  json
// @Success 200 {object} dto.NextNumberResponse
// @Security BearerAuth
// @Router /documents/next-number [get]
func (h *documentHandler) nextNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	number, err := h.documentService.NextDocumentNumber(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Document", "compute next document number")
		return
	}
	c.JSON(http.StatusOK, dto.NextNumberResponse{Number: number})
}

// previewDocument godoc
// @Summary Price a document without saving it
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   document body dto.CreateDocumentRequest true "Draft"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/preview [post]
func (h *documentHandler) previewDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDocumentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	document, err := h.documentService.PreviewDocument(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Document", "preview document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(document))
}

// createDocument godoc
// @Summary Save a new quote or invoice
// @Description Requires a client and at least one line. The notification outcome never undoes the save.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   document body dto.CreateDocumentRequest true "Document"
// @Success 201 {object} dto.SaveDocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Number already used"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDocumentRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	creatorID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}

	res, err := h.documentService.CreateDocument(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "Document", "save document")
		return
	}

	logger.Info("Document created",
		slog.String("document_id", res.Document.DocumentID),
		slog.String("number", res.Document.Number))
	c.JSON(http.StatusCreated, toSaveDocumentResponse(res))
}

// getDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	documentID := c.Param("documentID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("document_id", documentID))

	document, err := h.documentService.GetDocumentByID(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "Document", "retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(document))
}

// updateDocument godoc
// @Summary Update the header of a document
// @Description Lines are edited through the categories and products endpoints
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   document body dto.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} dto.SaveDocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID} [put]
func (h *documentHandler) updateDocument(c *gin.Context) {
	documentID := c.Param("documentID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("document_id", documentID))
	var req dto.UpdateDocumentRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	updaterID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}

	res, err := h.documentService.UpdateDocument(c.Request.Context(), documentID, req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "Document", "update document")
		return
	}

	logger.Info("Document updated")
	c.JSON(http.StatusOK, toSaveDocumentResponse(res))
}

// deleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Param   documentID path string true "Document ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	documentID := c.Param("documentID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("document_id", documentID))

	if err := h.documentService.DeleteDocument(c.Request.Context(), documentID); err != nil {
		respondServiceError(c, logger, err, "Document", "delete document")
		return
	}

	logger.Info("Document deleted")
	c.Status(http.StatusNoContent)
}

// lineEdit runs one line-level change and replies with the repriced document.
func (h *documentHandler) lineEdit(c *gin.Context, action string, body any,
	edit func(c *gin.Context, documentID, updaterID string) (*domain.Document, error)) {
	documentID := c.Param("documentID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("document_id", documentID))
	if body != nil && !bindJSON(c, logger, body) {
		return
	}
	updaterID, ok := adminFromContext(c, logger)
	if !ok {
		return
	}

	document, err := edit(c, documentID, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "Document", action)
		return
	}

	logger.Info("Document edited", slog.String("action", action))
	c.JSON(http.StatusOK, dto.ToDocumentResponse(document))
}

// setCategorySelection godoc
// @Summary Set the prestations chosen in one category
// @Description Replaces the line with the same category name, or appends a new one. An empty selection changes nothing.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   selection body dto.CategorySelectionRequest true "Selection"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID}/categories [put]
func (h *documentHandler) setCategorySelection(c *gin.Context) {
	var req dto.CategorySelectionRequest
	h.lineEdit(c, "set category selection", &req, func(c *gin.Context, documentID, updaterID string) (*domain.Document, error) {
		return h.documentService.SetCategorySelection(c.Request.Context(), documentID, req, updaterID)
	})
}

// removeCategoryLine godoc
// @Summary Remove a category line
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   name path string true "Category name"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse "The document would have no line left"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID}/categories/{name} [delete]
func (h *documentHandler) removeCategoryLine(c *gin.Context) {
	name := c.Param("name")
	h.lineEdit(c, "remove category line", nil, func(c *gin.Context, documentID, updaterID string) (*domain.Document, error) {
		return h.documentService.RemoveCategoryLine(c.Request.Context(), documentID, name, updaterID)
	})
}

// setProductSelections godoc
// @Summary Merge product quantities into a document
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   selection body dto.ProductSelectionRequest true "Selection"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID}/products [put]
func (h *documentHandler) setProductSelections(c *gin.Context) {
	var req dto.ProductSelectionRequest
	h.lineEdit(c, "set product selections", &req, func(c *gin.Context, documentID, updaterID string) (*domain.Document, error) {
		return h.documentService.SetProductSelections(c.Request.Context(), documentID, req, updaterID)
	})
}

// removeProductLine godoc
// @Summary Remove a product line
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   productID path string true "Product ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse "The document would have no line left"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID}/products/{productID} [delete]
func (h *documentHandler) removeProductLine(c *gin.Context) {
	productID := c.Param("productID")
	h.lineEdit(c, "remove product line", nil, func(c *gin.Context, documentID, updaterID string) (*domain.Document, error) {
		return h.documentService.RemoveProductLine(c.Request.Context(), documentID, productID, updaterID)
	})
}

// changeHourlyRate godoc
// @Summary Change the hourly rate
// @Description Reprices every category line from its stored duration
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   rate body dto.HourlyRateRequest true "New rate"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID}/hourly-rate [put]
func (h *documentHandler) changeHourlyRate(c *gin.Context) {
	var req dto.HourlyRateRequest
	h.lineEdit(c, "change hourly rate", &req, func(c *gin.Context, documentID, updaterID string) (*domain.Document, error) {
		return h.documentService.ChangeHourlyRate(c.Request.Context(), documentID, req.HourlyRate, updaterID)
	})
}

// changeClientCategory godoc
// @Summary Switch the client category
// @Description Resets both tax rates to the defaults of the new category
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   category body dto.ClientCategoryRequest true "individual or business"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID}/client-category [put]
func (h *documentHandler) changeClientCategory(c *gin.Context) {
	var req dto.ClientCategoryRequest
	h.lineEdit(c, "change client category", &req, func(c *gin.Context, documentID, updaterID string) (*domain.Document, error) {
		return h.documentService.ChangeClientCategory(c.Request.Context(), documentID, req.Category, updaterID)
	})
}

// cycleStatus godoc
// @Summary Advance the status
// @Description issued, then to-pay, then paid, then issued again
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID}/status/cycle [post]
func (h *documentHandler) cycleStatus(c *gin.Context) {
	h.lineEdit(c, "cycle status", nil, func(c *gin.Context, documentID, updaterID string) (*domain.Document, error) {
		return h.documentService.CycleStatus(c.Request.Context(), documentID, updaterID)
	})
}

// setStatus godoc
// @Summary Set the status
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Param   status body dto.StatusRequest true "New status"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID}/status [put]
func (h *documentHandler) setStatus(c *gin.Context) {
	var req dto.StatusRequest
	h.lineEdit(c, "set status", &req, func(c *gin.Context, documentID, updaterID string) (*domain.Document, error) {
		return h.documentService.SetStatus(c.Request.Context(), documentID, req.Status, updaterID)
	})
}
