package usecase

import (
	"context"
	"strings"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// LoginUseCase — проверка существования email в таблице контактов.
// Не аутентификация: ни пароля, ни выпуска токена здесь нет.
type LoginUseCase struct {
	directory port.BrokerDirectoryPort
	session   port.SessionStorePort
}

func NewLoginUseCase(directory port.BrokerDirectoryPort, session port.SessionStorePort) *LoginUseCase {
	return &LoginUseCase{directory: directory, session: session}
}

func (uc *LoginUseCase) Execute(ctx context.Context, email string) (domain.Broker, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Login",
	})

	email = strings.TrimSpace(email)

	broker, err := uc.directory.FindBrokerByEmail(ctx, email)
	if err != nil {
		logger.Warn("Login failed", port.Fields{"email": email})
		return domain.Broker{}, err
	}

	// Сохранение сессии — вторичный шаг: если диск недоступен,
	// логин все равно успешен, брокер просто залогинится заново
	if err := uc.session.Save(broker); err != nil {
		logger.Error("Could not persist session, continuing", err, nil)
	}

	logger.Info("Broker logged in", port.Fields{"broker_id": broker.ID})
	return broker, nil
}

// GetSessionUseCase восстанавливает сессию (restore-or-absent)
type GetSessionUseCase struct {
	session port.SessionStorePort
}

func NewGetSessionUseCase(session port.SessionStorePort) *GetSessionUseCase {
	return &GetSessionUseCase{session: session}
}

func (uc *GetSessionUseCase) Execute(ctx context.Context) (domain.Broker, bool, error) {
	return uc.session.Restore()
}

// LogoutUseCase явно очищает сохраненную сессию
type LogoutUseCase struct {
	session port.SessionStorePort
}

func NewLogoutUseCase(session port.SessionStorePort) *LogoutUseCase {
	return &LogoutUseCase{session: session}
}

func (uc *LogoutUseCase) Execute(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Logout",
	})

	if err := uc.session.Clear(); err != nil {
		logger.Error("Could not clear session", err, nil)
		return err
	}

	logger.Info("Session cleared", nil)
	return nil
}
