package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "clawdeck/internal/delivery/context"
	"clawdeck/internal/domain/entity"
	"clawdeck/internal/domain/repository"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// seedService implements the SeedUsecase interface. It provisions the demo
// dataset for first-time users in a single transaction, with the
// user_settings singleton acting as the "already seeded" marker. Because
// the marker row is written in the same transaction as everything else, a
// half-seeded state can never read as done.
type seedService struct {
	txManager    repository.TransactionManager
	settingsRepo repository.SettingsRepository
	logger       *slog.Logger
}

// SeedServiceParams holds dependencies for seedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SettingsRepo repository.SettingsRepository
	Logger       *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		txManager:    params.TxManager,
		settingsRepo: params.SettingsRepo,
		logger:       params.Logger,
	}
}

func (srv *seedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureSeeded creates the demo dataset unless the user already has one.
// It reports whether seeding ran.
func (srv *seedService) EnsureSeeded(ctx context.Context, userID uuid.UUID) (bool, error) {
	// Fast path outside the transaction.
	_, err := srv.settingsRepo.FindUserSettings(ctx, userID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return false, errors.Wrap(err, "failed to check seed marker")
	}

	srv.log(ctx).Info("Seeding demo data", slog.Any("userID", userID))

	seeded := false
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		settingsRepo := repoFactory.NewSettingsRepository()

		// 1. Re-check the marker inside the transaction; a concurrent login
		//    may have seeded in the meantime.
		if _, err := settingsRepo.FindUserSettings(ctx, userID); err == nil {
			return nil
		} else if !errors.Is(err, repository.ErrSettingsNotFound) {
			return errors.Wrap(err, "failed to check seed marker")
		}

		// 2. Shared catalogs are upserted, so re-seeding by another user is
		//    a no-op for them.
		billingRepo := repoFactory.NewBillingRepository()
		if err := billingRepo.UpsertPlans(ctx, seedPlans()); err != nil {
			return errors.Wrap(err, "failed to seed plans")
		}

		skillRepo := repoFactory.NewSkillRepository()
		catalog := seedMarketSkills()
		if err := skillRepo.UpsertMarketSkills(ctx, catalog); err != nil {
			return errors.Wrap(err, "failed to seed skill catalog")
		}
		catalogByID := make(map[string]*entity.MarketSkill, len(catalog))
		for _, skill := range catalog {
			catalogByID[skill.ID] = skill
		}

		// 3. Per-user rows: devices, config history, installed skills,
		//    billing account, ledger, bills, alert setting.
		deviceRepo := repoFactory.NewDeviceRepository()
		devices := seedDevices(userID)
		for _, seed := range devices {
			if err := deviceRepo.CreateDevice(ctx, seed.device); err != nil {
				return errors.Wrap(err, "failed to seed device")
			}
			for _, log := range seed.configLogs {
				if err := deviceRepo.AppendConfigLog(ctx, log); err != nil {
					return errors.Wrap(err, "failed to seed config log")
				}
			}
			for _, skillID := range seed.skillIDs {
				skill, ok := catalogByID[skillID]
				if !ok {
					continue
				}
				install := &entity.InstalledSkill{
					ID:           uuid.New(),
					UserID:       userID,
					SkillID:      skill.ID,
					DeviceID:     seed.device.ID,
					SkillName:    skill.Name,
					Enabled:      true,
					Version:      skill.Version,
					Config:       defaultConfig(skill.ConfigSchema),
					ConfigSchema: skill.ConfigSchema,
					InstalledAt:  seed.device.CreatedAt.Add(24 * time.Hour),
				}
				if err := skillRepo.CreateInstalledSkill(ctx, install); err != nil {
					return errors.Wrap(err, "failed to seed installed skill")
				}
			}
		}

		account := &entity.BillingAccount{
			UserID:      userID,
			Balance:     128.50,
			CurrentPlan: "p2",
			UpdatedAt:   time.Now(),
		}
		if err := billingRepo.CreateBillingAccount(ctx, account); err != nil {
			return errors.Wrap(err, "failed to seed billing account")
		}

		for _, tx := range seedTransactions(userID) {
			if err := billingRepo.CreateTransaction(ctx, tx); err != nil {
				return errors.Wrap(err, "failed to seed transaction")
			}
		}
		for _, bill := range seedBills(userID) {
			if err := billingRepo.CreateBill(ctx, bill); err != nil {
				return errors.Wrap(err, "failed to seed bill")
			}
		}

		alert := &entity.AlertSetting{
			UserID:           userID,
			BalanceThreshold: 20,
			UsageThreshold:   80,
			NotifyEmail:      true,
			NotifySMS:        false,
			NotifyInApp:      true,
		}
		if err := billingRepo.SaveAlertSetting(ctx, alert); err != nil {
			return errors.Wrap(err, "failed to seed alert setting")
		}

		// 4. The marker row goes in last; its presence means everything
		//    above committed too.
		settings := &entity.UserSettings{
			UserID:   userID,
			Language: "zh-TW",
			Timezone: "Asia/Taipei",
			Theme:    entity.ThemeSystem,
			EmailNotif: entity.EmailNotifications{
				Billing:  true,
				Security: true,
				Updates:  true,
			},
			NotifFrequency: entity.NotifyRealtime,
			UpdatedAt:      time.Now(),
		}
		if err := settingsRepo.CreateUserSettings(ctx, settings); err != nil {
			return errors.Wrap(err, "failed to seed user settings")
		}

		seeded = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to seed demo data", slog.Any("userID", userID), slog.Any("error", err))
		return false, err
	}

	if seeded {
		srv.log(ctx).Info("Demo data seeded", slog.Any("userID", userID))
	}

	return seeded, nil
}

// deviceSeed bundles a device with its dependent rows.
type deviceSeed struct {
	device     *entity.Device
	configLogs []*entity.ConfigLogEntry
	skillIDs   []string
}

func seedDevices(userID uuid.UUID) []deviceSeed {
	now := time.Now()

	livingRoom := &entity.Device{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "客廳助手",
		MAC:          "AA:BB:CC:DD:EE:01",
		Status:       entity.DeviceStatusOnline,
		Category:     entity.DeviceCategoryPersonal,
		Description:  "放置在客廳的 AI 助手設備",
		IP:           "192.168.1.101",
		CPU:          32,
		Memory:       58,
		Disk:         41,
		CreatedAt:    now.AddDate(0, -3, 0),
		LastActiveAt: now,
	}
	office := &entity.Device{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "辦公室助手",
		MAC:          "AA:BB:CC:DD:EE:02",
		Status:       entity.DeviceStatusOnline,
		Category:     entity.DeviceCategoryEnterprise,
		Description:  "辦公室會議室的 AI 助手",
		IP:           "10.0.0.55",
		CPU:          15,
		Memory:       33,
		Disk:         22,
		CreatedAt:    now.AddDate(0, -2, -10),
		LastActiveAt: now.Add(-2 * time.Hour),
	}
	testAlpha := &entity.Device{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "測試設備 Alpha",
		MAC:          "AA:BB:CC:DD:EE:03",
		Status:       entity.DeviceStatusOffline,
		Category:     entity.DeviceCategoryTest,
		Description:  "內部測試用設備",
		IP:           "192.168.2.200",
		CPU:          0,
		Memory:       0,
		Disk:         55,
		CreatedAt:    now.AddDate(0, -1, 0),
		LastActiveAt: now.AddDate(0, 0, -5),
	}
	bedroom := &entity.Device{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "臥室助手",
		MAC:          "AA:BB:CC:DD:EE:04",
		Status:       entity.DeviceStatusOnline,
		Category:     entity.DeviceCategoryPersonal,
		Description:  "臥室床頭的 AI 助手",
		IP:           "192.168.1.102",
		CPU:          8,
		Memory:       25,
		Disk:         18,
		CreatedAt:    now.AddDate(0, 0, -16),
		LastActiveAt: now,
	}

	return []deviceSeed{
		{
			device: livingRoom,
			configLogs: []*entity.ConfigLogEntry{
				{ID: uuid.New(), DeviceID: livingRoom.ID, Summary: "更新喚醒詞為「小爪」", ChangedAt: now.AddDate(0, 0, -2)},
				{ID: uuid.New(), DeviceID: livingRoom.ID, Summary: "啟用靜音模式", ChangedAt: now.AddDate(0, 0, -26)},
			},
			skillIDs: []string{"s1", "s2", "s3"},
		},
		{
			device: office,
			configLogs: []*entity.ConfigLogEntry{
				{ID: uuid.New(), DeviceID: office.ID, Summary: "設定企業 API 金鑰", ChangedAt: now.AddDate(0, 0, -9)},
			},
			skillIDs: []string{"s4", "s5"},
		},
		{
			device:   testAlpha,
			skillIDs: []string{"s7"},
		},
		{
			device: bedroom,
			configLogs: []*entity.ConfigLogEntry{
				{ID: uuid.New(), DeviceID: bedroom.ID, Summary: "設定夜間勿擾 22:00-7:00", ChangedAt: now.AddDate(0, 0, -1)},
			},
			skillIDs: []string{"s9", "s10", "s1", "s6"},
		},
	}
}

func seedPlans() []*entity.Plan {
	return []*entity.Plan{
		{
			ID: "p1", Name: "免費版", Price: 0, Period: "永久",
			Features: []string{"1 台設備", "基礎技能", "每月 500 次 API 呼叫", "社群支援"},
			Limits:   entity.PlanLimits{Devices: 1, APICalls: 500, Skills: 3},
		},
		{
			ID: "p2", Name: "基礎版", Price: 29, Period: "月",
			Features: []string{"3 台設備", "全部免費技能", "每月 5,000 次 API 呼叫", "郵件支援", "基礎數據分析"},
			Limits:   entity.PlanLimits{Devices: 3, APICalls: 5000, Skills: 10},
		},
		{
			ID: "p3", Name: "專業版", Price: 99, Period: "月",
			Features:    []string{"10 台設備", "全部技能", "每月 50,000 次 API 呼叫", "優先支援", "進階數據分析", "API 金鑰管理", "團隊協作"},
			Limits:      entity.PlanLimits{Devices: 10, APICalls: 50000, Skills: -1},
			Recommended: true,
		},
		{
			ID: "p4", Name: "企業版", Price: 299, Period: "月",
			Features: []string{"無限設備", "全部技能 + 客製化", "無限 API 呼叫", "7×24 專屬支援", "完整數據分析", "SLA 保障", "私有部署選項"},
			Limits:   entity.PlanLimits{Devices: -1, APICalls: -1, Skills: -1},
		},
	}
}

func seedTransactions(userID uuid.UUID) []*entity.Transaction {
	now := time.Now()

	return []*entity.Transaction{
		{
			ID: uuid.New(), UserID: userID, Type: entity.TransactionTypeRecharge,
			Description: "帳戶儲值", Amount: 100, Balance: 128.50,
			Status: entity.TransactionStatusSuccess, OccurredAt: now.AddDate(0, 0, -3),
		},
		{
			ID: uuid.New(), UserID: userID, Type: entity.TransactionTypeAPICall,
			Description: "API 呼叫費用", Amount: -12.30, Balance: 28.50,
			Status: entity.TransactionStatusSuccess, OccurredAt: now.AddDate(0, 0, -8),
		},
		{
			ID: uuid.New(), UserID: userID, Type: entity.TransactionTypeSkillSub,
			Description: "技能訂閱：翻譯助手", Amount: -9.90, Balance: 40.80,
			Status: entity.TransactionStatusSuccess, OccurredAt: now.AddDate(0, 0, -15),
		},
		{
			ID: uuid.New(), UserID: userID, Type: entity.TransactionTypeAPICall,
			Description: "API 呼叫費用", Amount: -8.45, Balance: 50.70,
			Status: entity.TransactionStatusSuccess, OccurredAt: now.AddDate(0, 0, -22),
		},
		{
			ID: uuid.New(), UserID: userID, Type: entity.TransactionTypeOther,
			Description: "系統補償", Amount: 5, Balance: 59.15,
			Status: entity.TransactionStatusPending, OccurredAt: now.AddDate(0, -1, 0),
		},
	}
}

func seedBills(userID uuid.UUID) []*entity.Bill {
	return []*entity.Bill{
		{
			ID: uuid.New(), UserID: userID, Month: "2026-02", Total: 18.00, Status: entity.BillStatusUnpaid,
			Items: []entity.BillItem{
				{Category: "API 呼叫", Amount: 12.30},
				{Category: "技能訂閱", Amount: 5.70},
			},
		},
		{
			ID: uuid.New(), UserID: userID, Month: "2026-01", Total: 42.85, Status: entity.BillStatusPaid,
			Items: []entity.BillItem{
				{Category: "API 呼叫", Amount: 25.15},
				{Category: "技能訂閱", Amount: 11.80},
				{Category: "其他", Amount: 5.90},
			},
		},
		{
			ID: uuid.New(), UserID: userID, Month: "2025-12", Total: 35.20, Status: entity.BillStatusPaid,
			Items: []entity.BillItem{
				{Category: "API 呼叫", Amount: 20.30},
				{Category: "技能訂閱", Amount: 14.90},
			},
		},
		{
			ID: uuid.New(), UserID: userID, Month: "2025-11", Total: 28.60, Status: entity.BillStatusPaid,
			Items: []entity.BillItem{
				{Category: "API 呼叫", Amount: 18.60},
				{Category: "技能訂閱", Amount: 10.00},
			},
		},
	}
}
