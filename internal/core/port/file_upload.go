package port

import (
	"context"
	"io"
)

// UploadFile — файл, пришедший от клиента на загрузку
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// FileUploadPort — внешний сервис хостинга файлов.
// Загрузка проверяет размер и MIME-тип до отправки на сервер.
type FileUploadPort interface {
	// Upload возвращает абсолютный URL размещенного файла
	Upload(ctx context.Context, file UploadFile) (string, error)
}
