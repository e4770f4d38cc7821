// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	"clawdeck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// billingRepository implements the repository.BillingRepository interface.
type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository is the constructor for billingRepository.
func NewBillingRepository(db *gorm.DB) repository.BillingRepository {
	return &billingRepository{db: db}
}

// FindBillingAccount retrieves the billing account singleton of a user.
func (repo *billingRepository) FindBillingAccount(ctx context.Context, userID uuid.UUID) (*entity.BillingAccount, error) {
	var accountM model.BillingAccountModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBillingAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find billing account")
	}

	return toBillingAccountDomain(&accountM), nil
}

// FindBillingAccountForUpdate retrieves the billing account singleton of a
// user with a SELECT ... FOR UPDATE row lock.
func (repo *billingRepository) FindBillingAccountForUpdate(ctx context.Context, userID uuid.UUID) (*entity.BillingAccount, error) {
	var accountM model.BillingAccountModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBillingAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find billing account for update")
	}

	return toBillingAccountDomain(&accountM), nil
}

// CreateBillingAccount persists a new billing account for a user.
func (repo *billingRepository) CreateBillingAccount(ctx context.Context, account *entity.BillingAccount) error {
	accountM := fromBillingAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("billing account already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create billing account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdateBillingAccount modifies an existing billing account.
func (repo *billingRepository) UpdateBillingAccount(ctx context.Context, account *entity.BillingAccount) error {
	accountM := fromBillingAccountDomain(account)

	result := repo.db.WithContext(ctx).
		Model(&model.BillingAccountModel{}).
		Where("user_id = ?", account.UserID).
		Updates(map[string]any{
			"balance":      accountM.Balance,
			"current_plan": accountM.CurrentPlan,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update billing account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBillingAccountNotFound
	}

	return nil
}

// CreateTransaction appends a ledger entry.
func (repo *billingRepository) CreateTransaction(ctx context.Context, tx *entity.Transaction) error {
	txM := fromTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	tx.ID = txM.ID
	tx.OccurredAt = txM.CreatedAt

	return nil
}

// FindTransactionsByUser retrieves the full transaction ledger of a user, newest first.
func (repo *billingRepository) FindTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var txModels []*model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find transactions")
	}

	txs := make([]*entity.Transaction, 0, len(txModels))
	for _, txM := range txModels {
		txs = append(txs, toTransactionDomain(txM))
	}

	return txs, nil
}

// CreateBill persists a monthly statement.
func (repo *billingRepository) CreateBill(ctx context.Context, bill *entity.Bill) error {
	billM, err := fromBillDomain(bill)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(billM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create bill")
	}

	bill.ID = billM.ID

	return nil
}

// FindBillsByUser retrieves all monthly statements of a user, newest first.
func (repo *billingRepository) FindBillsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Bill, error) {
	var billModels []*model.BillModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("month DESC").
		Find(&billModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bills")
	}

	bills := make([]*entity.Bill, 0, len(billModels))
	for _, billM := range billModels {
		bill, err := toBillDomain(billM)
		if err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}

	return bills, nil
}

// FindPlans retrieves the subscription plan catalog ordered by price.
func (repo *billingRepository) FindPlans(ctx context.Context) ([]*entity.Plan, error) {
	var planModels []*model.PlanModel

	if err := repo.db.WithContext(ctx).
		Order("price ASC").
		Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find plans")
	}

	plans := make([]*entity.Plan, 0, len(planModels))
	for _, planM := range planModels {
		plan, err := toPlanDomain(planM)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

// FindPlanByID retrieves a single subscription plan by its catalog ID.
func (repo *billingRepository) FindPlanByID(ctx context.Context, id string) (*entity.Plan, error) {
	var planM model.PlanModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	return toPlanDomain(&planM)
}

// UpsertPlans inserts or refreshes the plan catalog.
func (repo *billingRepository) UpsertPlans(ctx context.Context, plans []*entity.Plan) error {
	if len(plans) == 0 {
		return nil
	}

	planModels := make([]*model.PlanModel, 0, len(plans))
	for _, plan := range plans {
		planM, err := fromPlanDomain(plan)
		if err != nil {
			return err
		}
		planModels = append(planModels, planM)
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&planModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert plans")
	}

	return nil
}

// FindAlertSetting retrieves the alert setting singleton of a user.
func (repo *billingRepository) FindAlertSetting(ctx context.Context, userID uuid.UUID) (*entity.AlertSetting, error) {
	var settingM model.AlertSettingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert setting")
	}

	return toAlertSettingDomain(&settingM), nil
}

// SaveAlertSetting creates or replaces the alert setting singleton of a user.
func (repo *billingRepository) SaveAlertSetting(ctx context.Context, setting *entity.AlertSetting) error {
	settingM := fromAlertSettingDomain(setting)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(settingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save alert setting")
	}

	return nil
}

// --- Mapper Functions ---

func toBillingAccountDomain(data *model.BillingAccountModel) *entity.BillingAccount {
	if data == nil {
		return nil
	}

	return &entity.BillingAccount{
		UserID:      data.UserID,
		Balance:     data.Balance,
		CurrentPlan: data.CurrentPlan,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBillingAccountDomain(data *entity.BillingAccount) *model.BillingAccountModel {
	if data == nil {
		return nil
	}

	return &model.BillingAccountModel{
		UserID:      data.UserID,
		Balance:     data.Balance,
		CurrentPlan: data.CurrentPlan,
	}
}

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        entity.TransactionType(data.Type),
		Description: data.Description,
		Amount:      data.Amount,
		Balance:     data.Balance,
		DeviceID:    data.DeviceID,
		Status:      entity.TransactionStatus(data.Status),
		OccurredAt:  data.CreatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        string(data.Type),
		Description: data.Description,
		Amount:      data.Amount,
		Balance:     data.Balance,
		DeviceID:    data.DeviceID,
		Status:      string(data.Status),
	}
}

func toBillDomain(data *model.BillModel) (*entity.Bill, error) {
	if data == nil {
		return nil, nil
	}

	bill := &entity.Bill{
		ID:     data.ID,
		UserID: data.UserID,
		Month:  data.Month,
		Total:  data.Total,
		Status: entity.BillStatus(data.Status),
	}

	if err := decodeJSONColumn(data.Items, &bill.Items); err != nil {
		return nil, errors.Wrap(err, "failed to decode bill items")
	}

	return bill, nil
}

func fromBillDomain(data *entity.Bill) (*model.BillModel, error) {
	if data == nil {
		return nil, nil
	}

	items, err := encodeJSONColumn(data.Items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode bill items")
	}

	return &model.BillModel{
		ID:     data.ID,
		UserID: data.UserID,
		Month:  data.Month,
		Total:  data.Total,
		Status: string(data.Status),
		Items:  items,
	}, nil
}

func toPlanDomain(data *model.PlanModel) (*entity.Plan, error) {
	if data == nil {
		return nil, nil
	}

	plan := &entity.Plan{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Period:      data.Period,
		Recommended: data.Recommended,
	}

	if err := decodeJSONColumn(data.Features, &plan.Features); err != nil {
		return nil, errors.Wrap(err, "failed to decode plan features")
	}
	if err := decodeJSONColumn(data.Limits, &plan.Limits); err != nil {
		return nil, errors.Wrap(err, "failed to decode plan limits")
	}

	return plan, nil
}

func fromPlanDomain(data *entity.Plan) (*model.PlanModel, error) {
	if data == nil {
		return nil, nil
	}

	features, err := encodeJSONColumn(data.Features)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode plan features")
	}
	limits, err := encodeJSONColumn(data.Limits)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode plan limits")
	}

	return &model.PlanModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Period:      data.Period,
		Features:    features,
		Limits:      limits,
		Recommended: data.Recommended,
	}, nil
}

func toAlertSettingDomain(data *model.AlertSettingModel) *entity.AlertSetting {
	if data == nil {
		return nil
	}

	return &entity.AlertSetting{
		UserID:           data.UserID,
		BalanceThreshold: data.BalanceThreshold,
		UsageThreshold:   data.UsageThreshold,
		NotifyEmail:      data.NotifyEmail,
		NotifySMS:        data.NotifySMS,
		NotifyInApp:      data.NotifyInApp,
	}
}

func fromAlertSettingDomain(data *entity.AlertSetting) *model.AlertSettingModel {
	if data == nil {
		return nil
	}

	return &model.AlertSettingModel{
		UserID:           data.UserID,
		BalanceThreshold: data.BalanceThreshold,
		UsageThreshold:   data.UsageThreshold,
		NotifyEmail:      data.NotifyEmail,
		NotifySMS:        data.NotifySMS,
		NotifyInApp:      data.NotifyInApp,
	}
}
