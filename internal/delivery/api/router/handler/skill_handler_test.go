package handler

import (
	"net/http"
	"testing"

	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	mockUC "clawdeck/internal/mocks/usecase"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSkillHandler(t *testing.T) (*SkillHandler, *mockUC.MockSkillUsecase) {
	skillUC := mockUC.NewMockSkillUsecase(t)

	h := NewSkillHandler(SkillHandlerParams{
		SkillUC: skillUC,
		Logger:  newDiscardLogger(),
	})

	return h, skillUC
}

func TestSkillHandler_ListMarketSkills(t *testing.T) {
	h, skillUC := newTestSkillHandler(t)

	skills := []*entity.MarketSkill{
		{ID: "s1", Name: "天氣查詢", Version: "2.1.0"},
		{ID: "s2", Name: "智慧家居控制", Version: "1.4.2"},
	}
	skillUC.EXPECT().ListMarketSkills(mock.Anything).Return(skills, nil)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/v1/skills/market", "")

	require.NoError(t, h.ListMarketSkills(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "天氣查詢")
	assert.Contains(t, rec.Body.String(), "智慧家居控制")
}

func TestSkillHandler_GetMarketSkill_NotFound(t *testing.T) {
	h, skillUC := newTestSkillHandler(t)

	skillUC.EXPECT().GetMarketSkill(mock.Anything, "s404").Return(nil, domainerrors.ErrSkillNotFound)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/v1/skills/market/s404", "")
	c.SetParamNames("id")
	c.SetParamValues("s404")

	require.NoError(t, h.GetMarketSkill(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SKILL_NOT_FOUND")
}

func TestSkillHandler_InstallSkill(t *testing.T) {
	h, skillUC := newTestSkillHandler(t)
	userID := uuid.New()
	deviceID := uuid.New()

	installed := []*entity.InstalledSkill{
		{ID: uuid.New(), UserID: userID, SkillID: "s1", DeviceID: deviceID, SkillName: "天氣查詢", Enabled: true},
	}
	skillUC.EXPECT().
		InstallSkill(mock.Anything, userID, usecase.InstallSkillInput{
			SkillID:   "s1",
			DeviceIDs: []uuid.UUID{deviceID},
		}).
		Return(&usecase.InstallSkillOutput{Requested: 1, Installed: 1, Skills: installed}, nil)

	body := `{"skill_id":"s1","device_ids":["` + deviceID.String() + `"]}`
	c, rec := newHandlerContext(t, http.MethodPost, "/api/v1/skills/install", body)
	authenticate(c, userID)

	require.NoError(t, h.InstallSkill(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"installed":1`)
	assert.Contains(t, rec.Body.String(), "天氣查詢")
}

func TestSkillHandler_InstallSkill_NoDevices(t *testing.T) {
	h, skillUC := newTestSkillHandler(t)

	c, rec := newHandlerContext(t, http.MethodPost, "/api/v1/skills/install", `{"skill_id":"s1","device_ids":[]}`)
	authenticate(c, uuid.New())

	require.NoError(t, h.InstallSkill(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	skillUC.AssertNotCalled(t, "InstallSkill", mock.Anything, mock.Anything, mock.Anything)
}

func TestSkillHandler_UninstallSkill(t *testing.T) {
	h, skillUC := newTestSkillHandler(t)
	userID := uuid.New()
	installedID := uuid.New()

	skillUC.EXPECT().UninstallSkill(mock.Anything, userID, installedID).Return(nil)

	c, rec := newHandlerContext(t, http.MethodDelete, "/api/v1/skills/installed/"+installedID.String(), "")
	authenticate(c, userID)
	c.SetParamNames("id")
	c.SetParamValues(installedID.String())

	require.NoError(t, h.UninstallSkill(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "技能已移除")
}

func TestSkillHandler_ToggleSkill_Disable(t *testing.T) {
	h, skillUC := newTestSkillHandler(t)
	userID := uuid.New()
	installedID := uuid.New()

	toggled := &entity.InstalledSkill{ID: installedID, UserID: userID, SkillID: "s1", Enabled: false}
	skillUC.EXPECT().ToggleSkill(mock.Anything, userID, installedID, false).Return(toggled, nil)

	c, rec := newHandlerContext(t, http.MethodPatch, "/api/v1/skills/installed/"+installedID.String()+"/toggle", `{"enabled":false}`)
	authenticate(c, userID)
	c.SetParamNames("id")
	c.SetParamValues(installedID.String())

	require.NoError(t, h.ToggleSkill(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"enabled":false`)
}

func TestSkillHandler_UpdateSkillConfig_InvalidID(t *testing.T) {
	h, _ := newTestSkillHandler(t)

	c, rec := newHandlerContext(t, http.MethodPatch, "/api/v1/skills/installed/bogus/config", `{"config":{"unit":"celsius"}}`)
	authenticate(c, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("bogus")

	require.NoError(t, h.UpdateSkillConfig(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
