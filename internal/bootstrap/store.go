package bootstrap

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"github.com/NguyenChiHuynh2003/kba-admin-dash-44178/internal/app"
)

// pbStore реализует Store поверх PocketBase.
type pbStore struct {
	app core.App
}

func NewStore(pbApp core.App) Store {
	return &pbStore{app: pbApp}
}

func (s *pbStore) AdminRoleTaken() (bool, error) {
	record, err := s.app.FindFirstRecordByFilter(
		app.CollectionUserRoles,
		"role = {:role}",
		map[string]interface{}{"role": app.RoleAdmin},
	)
	if err != nil {
		// Только "нет записей" означает свободную роль. Любой другой
		// сбой хранилища должен провалить pre-check, а не пропустить его.
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return record != nil, nil
}

func (s *pbStore) CreateAccount(email, password, fullName string) (string, error) {
	users, err := s.app.FindCollectionByNameOrId(app.CollectionUsers)
	if err != nil {
		return "", err
	}
	record := core.NewRecord(users)
	record.SetEmail(email)
	record.SetPassword(password)
	record.SetVerified(true)
	record.Set(app.FieldName, fullName)
	if err := s.app.Save(record); err != nil {
		return "", err
	}
	return record.Id, nil
}

func (s *pbStore) FindAccountByEmail(email string) (string, error) {
	records, err := s.app.FindRecordsByFilter(app.CollectionUsers, "id != ''", "", app.MaxFetchLimit, 0, nil)
	if err != nil {
		return "", err
	}
	for _, r := range records {
		if strings.EqualFold(r.Email(), email) {
			return r.Id, nil
		}
	}
	return "", nil
}

func (s *pbStore) SetAccountPassword(id, password string) error {
	record, err := s.app.FindRecordById(app.CollectionUsers, id)
	if err != nil {
		return err
	}
	record.SetPassword(password)
	return s.app.Save(record)
}

func (s *pbStore) EnsureProfile(userID, fullName string) error {
	existing, _ := s.app.FindFirstRecordByFilter(
		app.CollectionProfiles,
		"user = {:user}",
		map[string]interface{}{"user": userID},
	)
	if existing != nil {
		return nil
	}
	profiles, err := s.app.FindCollectionByNameOrId(app.CollectionProfiles)
	if err != nil {
		return err
	}
	record := core.NewRecord(profiles)
	record.Set(app.FieldUser, userID)
	record.Set(app.FieldFullName, fullName)
	return s.app.Save(record)
}

func (s *pbStore) EnsureAdminRole(userID string) error {
	existing, _ := s.app.FindFirstRecordByFilter(
		app.CollectionUserRoles,
		"user = {:user} && role = {:role}",
		map[string]interface{}{"user": userID, "role": app.RoleAdmin},
	)
	if existing != nil {
		return nil
	}
	roles, err := s.app.FindCollectionByNameOrId(app.CollectionUserRoles)
	if err != nil {
		return err
	}
	record := core.NewRecord(roles)
	record.Set(app.FieldUser, userID)
	record.Set(app.FieldRole, app.RoleAdmin)
	return s.app.Save(record)
}
