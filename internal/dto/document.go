package dto

import (
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

// SelectionItem pairs a catalog entry id with a quantity.
type SelectionItem struct {
	ID       string `json:"id" binding:"required"`
	Quantity int    `json:"quantity"`
}

// CategorySelectionRequest sets the prestations chosen in one category.
// Items with a quantity of zero or less are dropped.
type CategorySelectionRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	Selections []SelectionItem `json:"selections" binding:"dive"`
}

// ProductSelectionRequest merges product quantities into a document.
type ProductSelectionRequest struct {
	Selections []SelectionItem `json:"selections" binding:"required,dive"`
}

// CreateDocumentRequest describes a new quote or invoice. Omitted rates fall back to settings.
type CreateDocumentRequest struct {
	Type             domain.DocumentType        `json:"type" binding:"required,oneof=quote invoice"`
	Number           string                     `json:"number" binding:"omitempty,docnumber"`
	ClientID         string                     `json:"clientID"`
	ClientName       string                     `json:"clientName"`
	ClientAddress    string                     `json:"clientAddress"`
	ClientTaxID      string                     `json:"clientTaxID"`
	ClientCategory   domain.ClientCategory      `json:"clientCategory" binding:"omitempty,clientcategory"`
	IssueDate        string                     `json:"issueDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate          string                     `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	HourlyRate       *decimal.Decimal           `json:"hourlyRate"`
	ServicesTaxRate  *decimal.Decimal           `json:"servicesTaxRate"`
	GoodsTaxRate     *decimal.Decimal           `json:"goodsTaxRate"`
	PaymentMethod    string                     `json:"paymentMethod"`
	Notes            string                     `json:"notes"`
	TaxCreditEnabled bool                       `json:"taxCreditEnabled"`
	TaxCreditRate    *decimal.Decimal           `json:"taxCreditRate"`
	Categories       []CategorySelectionRequest `json:"categories" binding:"dive"`
	Products         []SelectionItem            `json:"products" binding:"dive"`
	Notify           bool                       `json:"notify"`
}

// UpdateDocumentRequest edits the header of an existing document. Lines are edited
// through the dedicated category and product endpoints.
type UpdateDocumentRequest struct {
	Type             *domain.DocumentType   `json:"type" binding:"omitempty,oneof=quote invoice"`
	ClientID         *string                `json:"clientID"`
	ClientName       *string                `json:"clientName"`
	ClientAddress    *string                `json:"clientAddress"`
	ClientTaxID      *string                `json:"clientTaxID"`
	ClientCategory   *domain.ClientCategory `json:"clientCategory" binding:"omitempty,clientcategory"`
	IssueDate        *string                `json:"issueDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate          *string                `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	ServicesTaxRate  *decimal.Decimal       `json:"servicesTaxRate"`
	GoodsTaxRate     *decimal.Decimal       `json:"goodsTaxRate"`
	PaymentMethod    *string                `json:"paymentMethod"`
	Notes            *string                `json:"notes"`
	TaxCreditEnabled *bool                  `json:"taxCreditEnabled"`
	TaxCreditRate    *decimal.Decimal       `json:"taxCreditRate"`
	Status           *domain.DocumentStatus `json:"status" binding:"omitempty,oneof=issued to-pay paid"`
	Notify           bool                   `json:"notify"`
}

// HourlyRateRequest changes the hourly rate of a document.
type HourlyRateRequest struct {
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}

// ClientCategoryRequest switches the client category and resets the tax rates.
type ClientCategoryRequest struct {
	Category domain.ClientCategory `json:"category" binding:"required,clientcategory"`
}

// StatusRequest sets a document status directly.
type StatusRequest struct {
	Status domain.DocumentStatus `json:"status" binding:"required,oneof=issued to-pay paid"`
}

// ListDocumentsParams defines query parameters for listing documents.
type ListDocumentsParams struct {
	Type      domain.DocumentType   `form:"type" binding:"omitempty,oneof=quote invoice"`
	Status    domain.DocumentStatus `form:"status" binding:"omitempty,oneof=issued to-pay paid"`
	ClientID  string                `form:"clientId"`
	Limit     int                   `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	PageToken string                `form:"pageToken"`
}

// PrestationSelectionResponse is one prestation snapshot inside a category line.
type PrestationSelectionResponse struct {
	PrestationID    string `json:"prestationID"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	Quantity        int    `json:"quantity"`
}

// CategoryLineResponse is a priced category line.
type CategoryLineResponse struct {
	Name                 string                        `json:"name"`
	TotalDurationMinutes int                           `json:"totalDurationMinutes"`
	Price                string                        `json:"price"`
	Prestations          []PrestationSelectionResponse `json:"prestations"`
}

// ProductLineResponse is a priced product line.
type ProductLineResponse struct {
	ProductID string `json:"productID"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
}

// DocumentClientResponse is the client snapshot printed on a document.
type DocumentClientResponse struct {
	ClientID string                `json:"clientID"`
	Name     string                `json:"name"`
	Address  string                `json:"address"`
	TaxID    string                `json:"taxID"`
	Category domain.ClientCategory `json:"category"`
}

// TotalsResponse carries the rounded document totals.
type TotalsResponse struct {
	ServicesSubtotal string `json:"servicesSubtotal"`
	GoodsSubtotal    string `json:"goodsSubtotal"`
	Subtotal         string `json:"subtotal"`
	ServicesTax      string `json:"servicesTax"`
	GoodsTax         string `json:"goodsTax"`
	TotalTax         string `json:"totalTax"`
	Total            string `json:"total"`
	TaxCreditAmount  string `json:"taxCreditAmount"`
}

// DocumentResponse defines the data returned for a quote or invoice.
type DocumentResponse struct {
	DocumentID       string                 `json:"documentID,omitempty"`
	Number           string                 `json:"number"`
	Type             domain.DocumentType    `json:"type"`
	Client           DocumentClientResponse `json:"client"`
	IssueDate        string                 `json:"issueDate"`
	DueDate          string                 `json:"dueDate"`
	HourlyRate       string                 `json:"hourlyRate"`
	ServicesTaxRate  string                 `json:"servicesTaxRate"`
	GoodsTaxRate     string                 `json:"goodsTaxRate"`
	PaymentMethod    string                 `json:"paymentMethod"`
	Notes            string                 `json:"notes"`
	TaxCreditEnabled bool                   `json:"taxCreditEnabled"`
	TaxCreditRate    string                 `json:"taxCreditRate"`
	CategoryLines    []CategoryLineResponse `json:"categoryLines"`
	ProductLines     []ProductLineResponse  `json:"productLines"`
	Totals           TotalsResponse         `json:"totals"`
	Status           domain.DocumentStatus  `json:"status"`
	CreatedAt        *time.Time             `json:"createdAt,omitempty"`
	LastUpdatedAt    *time.Time             `json:"lastUpdatedAt,omitempty"`
}

// NotificationResponse reports the outcome of an optional e-mail notification.
type NotificationResponse struct {
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

// SaveDocumentResponse is returned after a document write.
type SaveDocumentResponse struct {
	Document     DocumentResponse      `json:"document"`
	NextNumber   string                `json:"nextNumber"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

// ListDocumentsResponse is a page of documents.
type ListDocumentsResponse struct {
	Documents     []DocumentResponse `json:"documents"`
	NextPageToken string             `json:"nextPageToken,omitempty"`
}

// NextNumberResponse carries the number a new document would receive.
type NextNumberResponse struct {
	Number string `json:"number"`
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO, rounding amounts for display.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	res := DocumentResponse{
		DocumentID: d.DocumentID,
		Number:     d.Number,
		Type:       d.Type,
		Client: DocumentClientResponse{
			ClientID: d.Client.ClientID,
			Name:     d.Client.Name,
			Address:  d.Client.Address,
			TaxID:    d.Client.TaxID,
			Category: d.Client.Category,
		},
		IssueDate:        formatDate(d.IssueDate),
		DueDate:          formatDate(d.DueDate),
		HourlyRate:       utils.FormatMoney(d.HourlyRate),
		ServicesTaxRate:  utils.FormatRate(d.ServicesTaxRate),
		GoodsTaxRate:     utils.FormatRate(d.GoodsTaxRate),
		PaymentMethod:    d.PaymentMethod,
		Notes:            d.Notes,
		TaxCreditEnabled: d.TaxCreditEnabled,
		TaxCreditRate:    utils.FormatRate(d.TaxCreditRate),
		CategoryLines:    make([]CategoryLineResponse, len(d.CategoryLines)),
		ProductLines:     make([]ProductLineResponse, len(d.ProductLines)),
		Totals: TotalsResponse{
			ServicesSubtotal: utils.FormatMoney(d.ServicesSubtotal),
			GoodsSubtotal:    utils.FormatMoney(d.GoodsSubtotal),
			Subtotal:         utils.FormatMoney(d.Subtotal),
			ServicesTax:      utils.FormatMoney(d.ServicesTax),
			GoodsTax:         utils.FormatMoney(d.GoodsTax),
			TotalTax:         utils.FormatMoney(d.TotalTax),
			Total:            utils.FormatMoney(d.Total),
			TaxCreditAmount:  utils.FormatMoney(d.TaxCreditAmount()),
		},
		Status: d.Status,
	}
	for i, l := range d.CategoryLines {
		prestations := make([]PrestationSelectionResponse, len(l.Prestations))
		for j, p := range l.Prestations {
			prestations[j] = PrestationSelectionResponse(p)
		}
		res.CategoryLines[i] = CategoryLineResponse{
			Name:                 l.Name,
			TotalDurationMinutes: l.TotalDurationMinutes,
			Price:                utils.FormatMoney(l.Price),
			Prestations:          prestations,
		}
	}
	for i, l := range d.ProductLines {
		res.ProductLines[i] = ProductLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     utils.FormatMoney(l.Price),
			Quantity:  l.Quantity,
			Unit:      l.Unit,
		}
	}
	if !d.CreatedAt.IsZero() {
		createdAt, updatedAt := d.CreatedAt, d.LastUpdatedAt
		res.CreatedAt, res.LastUpdatedAt = &createdAt, &updatedAt
	}
	return res
}

// ToListDocumentResponse converts a slice of domain.Document to DTOs
func ToListDocumentResponse(docs []domain.Document) []DocumentResponse {
	res := make([]DocumentResponse, len(docs))
	for i := range docs {
		res[i] = ToDocumentResponse(&docs[i])
	}
	return res
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.MissionDateLayout)
}
