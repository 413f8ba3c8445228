package usecase

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

type ListAttachmentsUseCase struct {
	attachments port.AttachmentStoragePort
}

func NewListAttachmentsUseCase(attachments port.AttachmentStoragePort) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{attachments: attachments}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, propertyID string) ([]domain.Attachment, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "ListAttachments",
		"property_id": propertyID,
	})

	attachments, err := uc.attachments.ListAttachments(ctx, propertyID)
	if err != nil {
		logger.Error("Could not list attachments", err, nil)
		return nil, err
	}

	return attachments, nil
}
