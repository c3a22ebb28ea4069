package interfaces

import (
	"context"
	"packslip/internal/domain/entities"
)

// IDocumentRenderer turns a packing document into PDF bytes.
//
//go:generate mockgen -source=document_renderer_interface.go -destination=mocks/document_renderer_interface_mock.go -package=mock_interfaces

type IDocumentRenderer interface {
	Render(ctx context.Context, doc entities.PackingDocument) ([]byte, error)
}
