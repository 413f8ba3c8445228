package usecase

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

type UpdatePropertyUseCase struct {
	properties port.PropertyStoragePort
}

func NewUpdatePropertyUseCase(properties port.PropertyStoragePort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{properties: properties}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id string, patch domain.PropertyPatch) (domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": id,
	})

	// Инвариант: дата последней публикации продвигается только
	// созданием публикации, никогда редактированием объекта
	patch.LastPostedOn = nil

	updated, err := uc.properties.UpdateProperty(ctx, id, patch)
	if err != nil {
		logger.Error("Could not update property", err, nil)
		return domain.Property{}, err
	}

	logger.Info("Property updated", nil)
	return updated, nil
}
