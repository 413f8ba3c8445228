package usecase

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

type DeletePropertyUseCase struct {
	properties port.PropertyStoragePort
}

func NewDeletePropertyUseCase(properties port.PropertyStoragePort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{properties: properties}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id,
	})

	// ErrNotFound пробрасываем: вызывающий сообщит о нем пользователю,
	// но повторное удаление не считается аварией
	if err := uc.properties.DeleteProperty(ctx, id); err != nil {
		logger.Error("Could not delete property", err, nil)
		return err
	}

	logger.Info("Property deleted", nil)
	return nil
}
