package main

import (
	"clawdeck/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.PasswordResetTokenModel{},
		model.DeviceModel{},
		model.ConfigLogModel{},
		model.MarketSkillModel{},
		model.InstalledSkillModel{},
		model.BillingAccountModel{},
		model.TransactionModel{},
		model.BillModel{},
		model.PlanModel{},
		model.AlertSettingModel{},
		model.UserSettingsModel{},
		model.APIKeyModel{},
		model.LoginRecordModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
