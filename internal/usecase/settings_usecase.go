package usecase

import (
	"context"
	"strings"

	"tiendapanel/internal/domain/entity"
	"tiendapanel/internal/domain/repository"
	"tiendapanel/pkg/errors"
)

type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsUseCase(settingsRepo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// GetAllSettings flattens the stored rows into a single key -> value map.
// Values are always text; interpreting them is the caller's business.
func (uc *SettingsUseCase) GetAllSettings(ctx context.Context) (map[string]string, error) {
	rows, err := uc.settingsRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}

	return settings, nil
}

func (uc *SettingsUseCase) GetSetting(ctx context.Context, key string) (string, error) {
	setting, err := uc.settingsRepo.Get(ctx, key)
	if err != nil {
		return "", err
	}

	return setting.Value, nil
}

// SetSetting upserts a single key; writing an existing key replaces it.
func (uc *SettingsUseCase) SetSetting(ctx context.Context, key, value, settingType string) (*entity.Setting, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.BadRequest("Setting key is required", nil)
	}
	if settingType == "" {
		settingType = "text"
	}

	setting := &entity.Setting{
		Key:   key,
		Value: value,
		Type:  settingType,
	}

	if err := uc.settingsRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	return setting, nil
}

// SetMultipleSettings bulk-upserts the mapping; every value is stored as
// text.
func (uc *SettingsUseCase) SetMultipleSettings(ctx context.Context, values map[string]string) error {
	settings := make([]*entity.Setting, 0, len(values))
	for key, value := range values {
		if strings.TrimSpace(key) == "" {
			return errors.BadRequest("Setting key is required", nil)
		}
		settings = append(settings, &entity.Setting{
			Key:   key,
			Value: value,
			Type:  "text",
		})
	}

	return uc.settingsRepo.UpsertAll(ctx, settings)
}
