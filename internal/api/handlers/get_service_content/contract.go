package get_service_content

import (
	"context"

	"github.com/m04kA/DMar-BookingService/internal/integrations/backend"
)

type ContentClient interface {
	GetServiceContent(ctx context.Context, slug string) (*backend.ServiceContent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
