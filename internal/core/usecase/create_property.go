package usecase

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port/usecases_port"
)

// CreatePropertyUseCase создает объект и best-effort загружает его
// вложения. Первичная операция — создание записи; загрузка документа
// эксклюзивности и изображений вторична: их сбой логируется и не
// откатывает ни запись объекта, ни уже загруженные изображения.
type CreatePropertyUseCase struct {
	properties  port.PropertyStoragePort
	attachments port.AttachmentStoragePort
	uploader    port.FileUploadPort
	events      port.EventPublisherPort
}

func NewCreatePropertyUseCase(
	properties port.PropertyStoragePort,
	attachments port.AttachmentStoragePort,
	uploader port.FileUploadPort,
	events port.EventPublisherPort,
) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		properties:  properties,
		attachments: attachments,
		uploader:    uploader,
		events:      events,
	}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input usecases_port.CreatePropertyInput) (domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CreateProperty",
	})

	// 1. Первичная операция: создаем запись объекта. Ошибка здесь
	// уходит вызывающему как есть.
	created, err := uc.properties.CreateProperty(ctx, input.Property)
	if err != nil {
		logger.Error("Could not create property record", err, nil)
		return domain.Property{}, err
	}

	propLogger := logger.WithFields(port.Fields{"property_id": created.ID})
	propLogger.Info("Property created", nil)

	// 2. Документ эксклюзивности: загрузка и PATCH URL — best-effort
	if input.ExclusivityDoc != nil {
		url, err := uc.uploader.Upload(ctx, *input.ExclusivityDoc)
		if err != nil {
			propLogger.Warn("Exclusivity document upload failed, property kept", port.Fields{"error": err.Error()})
		} else {
			patched, err := uc.properties.UpdateProperty(ctx, created.ID, domain.PropertyPatch{ExclusivityDocURL: &url})
			if err != nil {
				propLogger.Warn("Could not attach exclusivity document URL", port.Fields{"error": err.Error()})
			} else {
				created = patched
			}
		}
	}

	// 3. Изображения загружаются последовательно и независимо:
	// сбой одного не трогает уже загруженные и саму запись объекта
	for _, image := range input.Images {
		url, err := uc.uploader.Upload(ctx, image)
		if err != nil {
			propLogger.Warn("Image upload failed, skipping", port.Fields{
				"filename": image.Filename,
				"error":    err.Error(),
			})
			continue
		}
		if err := uc.attachments.CreateImage(ctx, created.ID, url, image.Filename); err != nil {
			propLogger.Warn("Could not link uploaded image", port.Fields{
				"filename": image.Filename,
				"error":    err.Error(),
			})
		}
	}

	// 4. Событие — тоже вторичная операция
	if err := uc.events.PublishPropertyCreated(ctx, created); err != nil {
		propLogger.Warn("Could not publish property.created event", port.Fields{"error": err.Error()})
	}

	return created, nil
}
