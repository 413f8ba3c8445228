package usecase

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// UploadFileUseCase — прямая загрузка файла на внешний хостинг.
// Используется UI для загрузки до создания/редактирования сущности.
type UploadFileUseCase struct {
	uploader port.FileUploadPort
}

func NewUploadFileUseCase(uploader port.FileUploadPort) *UploadFileUseCase {
	return &UploadFileUseCase{uploader: uploader}
}

func (uc *UploadFileUseCase) Execute(ctx context.Context, file port.UploadFile) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "UploadFile",
		"filename": file.Filename,
	})

	url, err := uc.uploader.Upload(ctx, file)
	if err != nil {
		logger.Error("Upload failed", err, nil)
		return "", err
	}

	return url, nil
}
