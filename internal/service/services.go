package service

import (
	"io"

	"github.com/MKhiriev/bitable-schema/internal/adapter"
	"github.com/MKhiriev/bitable-schema/internal/logger"
)

type Services struct {
	SchemaService SchemaService
}

// NewServices wires every service. stdout receives line-mode output and the
// confirmation message of document mode.
func NewServices(larkAdapter adapter.LarkAdapter, stdout io.Writer, logger *logger.Logger) *Services {
	return &Services{
		SchemaService: NewSchemaService(larkAdapter, stdout, logger),
	}
}
