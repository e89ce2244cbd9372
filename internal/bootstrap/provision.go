package bootstrap

import (
	"errors"
	"fmt"
	"strings"
)

// Candidate — проверенные данные первого администратора.
type Candidate struct {
	Email    string
	Password string
	FullName string
}

// Provisioned — результат создания админа. Warnings собирает сбои
// best-effort шагов (профиль, роль): они логируются, но общий результат
// остается успешным, так как учетная запись уже существует.
type Provisioned struct {
	UserID   string
	Email    string
	Warnings []string
}

// ErrAdminExists возвращается, когда роль админа уже занята.
// Эндпоинт создает только ПЕРВОГО администратора.
var ErrAdminExists = errors.New("an admin account already exists")

// InconsistentStateError: сервис аккаунтов сообщил "already registered",
// но найти аккаунт по email не удалось. Внешнее состояние повреждено.
type InconsistentStateError struct {
	Email string
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("account service reports %q as registered but the account cannot be found", e.Email)
}

// Store — узкий контракт к внешнему хранилищу аккаунтов.
// В проде это PocketBase (store.go), в тестах — фейк.
type Store interface {
	AdminRoleTaken() (bool, error)
	CreateAccount(email, password, fullName string) (string, error)
	// FindAccountByEmail ищет без учета регистра; "" если аккаунта нет.
	FindAccountByEmail(email string) (string, error)
	SetAccountPassword(id, password string) error
	EnsureProfile(userID, fullName string) error
	EnsureAdminRole(userID string) error
}

type Provisioner struct {
	store Store
}

func NewProvisioner(store Store) *Provisioner {
	return &Provisioner{store: store}
}

// Provision — идемпотентный create-or-repair первого администратора.
// Повторный вызов после успешного всегда завершается ErrAdminExists.
func (p *Provisioner) Provision(c Candidate) (*Provisioned, error) {
	taken, err := p.store.AdminRoleTaken()
	if err != nil {
		return nil, fmt.Errorf("check existing admin: %w", err)
	}
	if taken {
		return nil, ErrAdminExists
	}

	fullName := strings.TrimSpace(c.FullName)
	if fullName == "" {
		fullName = "Admin"
	}

	userID, err := p.store.CreateAccount(c.Email, c.Password, fullName)
	if err != nil {
		if !isAlreadyRegistered(err) {
			return nil, fmt.Errorf("create account: %w", err)
		}
		// Repair-ветка: аккаунт уже есть, обновляем пароль на месте.
		existingID, findErr := p.store.FindAccountByEmail(c.Email)
		if findErr != nil {
			return nil, fmt.Errorf("lookup existing account: %w", findErr)
		}
		if existingID == "" {
			return nil, &InconsistentStateError{Email: c.Email}
		}
		if err := p.store.SetAccountPassword(existingID, c.Password); err != nil {
			return nil, fmt.Errorf("update password: %w", err)
		}
		userID = existingID
	}

	result := &Provisioned{UserID: userID, Email: c.Email}
	if err := p.store.EnsureProfile(userID, fullName); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("profile: %v", err))
	}
	if err := p.store.EnsureAdminRole(userID); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("admin role: %v", err))
	}
	return result, nil
}

// isAlreadyRegistered — единственное место, которое знает формулировки
// хранилища о дубликате email. При смене текста ошибки менять только тут.
func isAlreadyRegistered(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already registered") ||
		strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "must be unique") ||
		strings.Contains(msg, "not_unique")
}
