package usecases_port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

type UploadFileUseCasePort interface {
	Execute(ctx context.Context, file port.UploadFile) (url string, err error)
}
