package handler

import (
	"tiendapanel/internal/usecase"
	"tiendapanel/pkg/response"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct {
	settingsUseCase *usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

func (h *SettingsHandler) GetAllSettings(c echo.Context) error {
	settings, err := h.settingsUseCase.GetAllSettings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}

func (h *SettingsHandler) GetSetting(c echo.Context) error {
	value, err := h.settingsUseCase.GetSetting(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"key":   c.Param("key"),
		"value": value,
	})
}

type setSettingRequest struct {
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
}

func (h *SettingsHandler) SetSetting(c echo.Context) error {
	var req setSettingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	setting, err := h.settingsUseCase.SetSetting(c.Request().Context(), c.Param("key"), req.Value, req.Type)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, setting)
}

// SetMultipleSettings saves the whole settings form in one request.
func (h *SettingsHandler) SetMultipleSettings(c echo.Context) error {
	var values map[string]string
	if err := c.Bind(&values); err != nil {
		return response.Error(c, err)
	}

	if err := h.settingsUseCase.SetMultipleSettings(c.Request().Context(), values); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Settings saved successfully",
	})
}
