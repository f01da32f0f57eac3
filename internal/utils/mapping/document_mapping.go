package mapping

import (
	"fmt"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/models"
	"github.com/SscSPs/concierge_backoffice/internal/utils"
)

// ToModelDocument converts a domain Document to a model Document.
// Every monetary amount is rounded to cents here; rates are stored as given.
func ToModelDocument(d domain.Document) models.Document {
	m := models.Document{
		DocumentID: d.DocumentID,
		Number:     d.Number,
		Type:       string(d.Type),
		Client: models.DocumentClient{
			ClientID: d.Client.ClientID,
			Name:     d.Client.Name,
			Address:  d.Client.Address,
			TaxID:    d.Client.TaxID,
			Category: string(d.Client.Category),
		},
		IssueDate:        formatDate(d.IssueDate),
		DueDate:          formatDate(d.DueDate),
		HourlyRate:       d.HourlyRate,
		ServicesTaxRate:  d.ServicesTaxRate,
		GoodsTaxRate:     d.GoodsTaxRate,
		PaymentMethod:    d.PaymentMethod,
		Notes:            d.Notes,
		TaxCreditEnabled: d.TaxCreditEnabled,
		TaxCreditRate:    d.TaxCreditRate,
		CategoryLines:    make([]models.CategoryLine, len(d.CategoryLines)),
		ProductLines:     make([]models.ProductLine, len(d.ProductLines)),
		ServicesSubtotal: utils.RoundMoney(d.ServicesSubtotal),
		GoodsSubtotal:    utils.RoundMoney(d.GoodsSubtotal),
		Subtotal:         utils.RoundMoney(d.Subtotal),
		ServicesTax:      utils.RoundMoney(d.ServicesTax),
		GoodsTax:         utils.RoundMoney(d.GoodsTax),
		TotalTax:         utils.RoundMoney(d.TotalTax),
		Total:            utils.RoundMoney(d.Total),
		Status:           string(d.Status),
		AuditFields:      auditToModel(d.AuditFields),
	}
	for i, l := range d.CategoryLines {
		selections := make([]models.PrestationSelection, len(l.Prestations))
		for j, p := range l.Prestations {
			selections[j] = models.PrestationSelection(p)
		}
		m.CategoryLines[i] = models.CategoryLine{
			Name:                 l.Name,
			TotalDurationMinutes: l.TotalDurationMinutes,
			Price:                utils.RoundMoney(l.Price),
			Prestations:          selections,
		}
	}
	for i, l := range d.ProductLines {
		m.ProductLines[i] = models.ProductLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     utils.RoundMoney(l.Price),
			Quantity:  l.Quantity,
			Unit:      l.Unit,
		}
	}
	return m
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) (domain.Document, error) {
	issueDate, err := parseDate(m.IssueDate)
	if err != nil {
		return domain.Document{}, fmt.Errorf("invalid issue date %q: %w", m.IssueDate, err)
	}
	dueDate, err := parseDate(m.DueDate)
	if err != nil {
		return domain.Document{}, fmt.Errorf("invalid due date %q: %w", m.DueDate, err)
	}

	d := domain.Document{
		DocumentID: m.DocumentID,
		Number:     m.Number,
		Type:       domain.DocumentType(m.Type),
		Client: domain.DocumentClient{
			ClientID: m.Client.ClientID,
			Name:     m.Client.Name,
			Address:  m.Client.Address,
			TaxID:    m.Client.TaxID,
			Category: domain.ClientCategory(m.Client.Category),
		},
		IssueDate:        issueDate,
		DueDate:          dueDate,
		HourlyRate:       m.HourlyRate,
		ServicesTaxRate:  m.ServicesTaxRate,
		GoodsTaxRate:     m.GoodsTaxRate,
		PaymentMethod:    m.PaymentMethod,
		Notes:            m.Notes,
		TaxCreditEnabled: m.TaxCreditEnabled,
		TaxCreditRate:    m.TaxCreditRate,
		CategoryLines:    make([]domain.CategoryLine, len(m.CategoryLines)),
		ProductLines:     make([]domain.ProductLine, len(m.ProductLines)),
		Totals: domain.Totals{
			ServicesSubtotal: m.ServicesSubtotal,
			GoodsSubtotal:    m.GoodsSubtotal,
			Subtotal:         m.Subtotal,
			ServicesTax:      m.ServicesTax,
			GoodsTax:         m.GoodsTax,
			TotalTax:         m.TotalTax,
			Total:            m.Total,
		},
		Status:      domain.DocumentStatus(m.Status),
		AuditFields: auditToDomain(m.AuditFields),
	}
	for i, l := range m.CategoryLines {
		selections := make([]domain.PrestationSelection, len(l.Prestations))
		for j, p := range l.Prestations {
			selections[j] = domain.PrestationSelection(p)
		}
		d.CategoryLines[i] = domain.CategoryLine{
			Name:                 l.Name,
			TotalDurationMinutes: l.TotalDurationMinutes,
			Price:                l.Price,
			Prestations:          selections,
		}
	}
	for i, l := range m.ProductLines {
		d.ProductLines[i] = domain.ProductLine(l)
	}
	return d, nil
}
