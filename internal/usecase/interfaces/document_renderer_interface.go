package interfaces

import "tradequote/internal/domain/entities"

//go:generate mockgen -source=document_renderer_interface.go -destination=mocks/mock_document_renderer_interface.go -package=mock_interfaces

// IInvoiceRenderer renders a vendor invoice for a set of impressions.
type IInvoiceRenderer interface {
	RenderInvoice(vendorEmail string, invoiceNumber string, items []entities.QuoteImpression) ([]byte, error)
}

// ILeadsExporter renders a spreadsheet of a vendor's leads.
type ILeadsExporter interface {
	ExportLeads(vendorEmail string, items []entities.QuoteImpression) ([]byte, error)
}
