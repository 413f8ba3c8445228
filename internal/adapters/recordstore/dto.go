package recordstore

import "time"

// record — запись хранилища: id, время создания и мешок полей
// под человеко-читаемыми именами
type record struct {
	ID          string         `json:"id"`
	CreatedTime time.Time      `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

// recordsResponse — страница списка; непустой offset означает,
// что есть следующая страница
type recordsResponse struct {
	Records []record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// recordEnvelope — тело create/patch запросов
type recordEnvelope struct {
	Fields map[string]any `json:"fields"`
}
