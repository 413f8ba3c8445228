package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// FileStore хранит залогиненную идентичность как JSON-блоб по
// фиксированному пути. Единственная точка доступа к сессии —
// остальные компоненты ходят только через SessionStorePort.
type FileStore struct {
	path   string
	logger port.LoggerPort
}

func NewFileStore(path string, logger port.LoggerPort) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.WithFields(port.Fields{"component": "SessionFileStore"}),
	}
}

// sessionBlob — формат файла; отдельный от domain.Broker, чтобы формат
// на диске не менялся вместе с доменной моделью незаметно
type sessionBlob struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Restore читает сессию. Отсутствие файла — ok=false. Поврежденное
// содержимое отбрасывается (тоже ok=false), это не фатальная ошибка.
func (s *FileStore) Restore() (domain.Broker, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Broker{}, false, nil
		}
		return domain.Broker{}, false, fmt.Errorf("failed to read session file: %w", err)
	}

	var blob sessionBlob
	if err := json.Unmarshal(data, &blob); err != nil || blob.Email == "" {
		s.logger.Warn("Discarding corrupt persisted session", port.Fields{
			"path":  s.path,
			"cause": fmt.Sprintf("%v", domain.ErrCorruptSession),
		})
		return domain.Broker{}, false, nil
	}

	return domain.Broker{ID: blob.ID, Name: blob.Name, Email: blob.Email}, true, nil
}

func (s *FileStore) Save(broker domain.Broker) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	data, err := json.Marshal(sessionBlob{ID: broker.ID, Name: broker.Name, Email: broker.Email})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	s.logger.Debug("Session persisted", port.Fields{"path": s.path})
	return nil
}

// Clear — явный teardown при logout
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
