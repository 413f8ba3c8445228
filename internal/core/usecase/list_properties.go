package usecase

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// ListPropertiesUseCase — полная перевыборка объектов брокера.
// Кэша нет намеренно: после каждой мутации UI запрашивает список заново.
type ListPropertiesUseCase struct {
	properties port.PropertyStoragePort
}

func NewListPropertiesUseCase(properties port.PropertyStoragePort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{properties: properties}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, brokerEmail string) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListProperties",
	})

	properties, err := uc.properties.ListProperties(ctx, brokerEmail)
	if err != nil {
		logger.Error("Could not list properties", err, nil)
		return nil, err
	}

	logger.Debug("Properties listed", port.Fields{"count": len(properties)})
	return properties, nil
}
