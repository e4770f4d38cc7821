package impl

import (
	"context"
	"log/slog"

	deliverycontext "clawdeck/internal/delivery/context"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// bootstrapService implements the BootstrapUsecase interface. It runs the
// post-login initialization: seed first-time users, then pull every domain
// snapshot in parallel. The result is cached per user until ResetSession.
type bootstrapService struct {
	seedUsecase     usecase.SeedUsecase
	deviceUsecase   usecase.DeviceUsecase
	skillUsecase    usecase.SkillUsecase
	billingUsecase  usecase.BillingUsecase
	settingsUsecase usecase.SettingsUsecase
	snapshots       *Snapshots
	group           singleflight.Group
	logger          *slog.Logger
}

// BootstrapServiceParams holds dependencies for bootstrapService, injected by Fx.
type BootstrapServiceParams struct {
	fx.In

	SeedUsecase     usecase.SeedUsecase
	DeviceUsecase   usecase.DeviceUsecase
	SkillUsecase    usecase.SkillUsecase
	BillingUsecase  usecase.BillingUsecase
	SettingsUsecase usecase.SettingsUsecase
	Snapshots       *Snapshots
	Logger          *slog.Logger
}

// NewBootstrapService is the constructor for bootstrapService.
func NewBootstrapService(params BootstrapServiceParams) usecase.BootstrapUsecase {
	return &bootstrapService{
		seedUsecase:     params.SeedUsecase,
		deviceUsecase:   params.DeviceUsecase,
		skillUsecase:    params.SkillUsecase,
		billingUsecase:  params.BillingUsecase,
		settingsUsecase: params.SettingsUsecase,
		snapshots:       params.Snapshots,
		logger:          params.Logger,
	}
}

func (srv *bootstrapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InitSession seeds first-time users, then loads every snapshot in
// parallel. Repeat calls within a session return the cached result, and
// concurrent calls for the same user share a single run.
func (srv *bootstrapService) InitSession(ctx context.Context, userID uuid.UUID) (*usecase.BootstrapOutput, error) {
	if cached, ok := srv.snapshots.Sessions.Get(userID); ok {
		return cached, nil
	}

	result, err, _ := srv.group.Do(userID.String(), func() (any, error) {
		if cached, ok := srv.snapshots.Sessions.Get(userID); ok {
			return cached, nil
		}

		return srv.initSession(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	return result.(*usecase.BootstrapOutput), nil
}

func (srv *bootstrapService) initSession(ctx context.Context, userID uuid.UUID) (*usecase.BootstrapOutput, error) {
	srv.log(ctx).Info("Initializing session", slog.Any("userID", userID))

	seeded, err := srv.seedUsecase.EnsureSeeded(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed user data")
	}

	output := &usecase.BootstrapOutput{Seeded: seeded}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		devices, err := srv.deviceUsecase.ListDevices(groupCtx, userID)
		output.Devices = devices

		return err
	})
	group.Go(func() error {
		installs, err := srv.skillUsecase.ListInstalledSkills(groupCtx, userID)
		output.InstalledSkills = installs

		return err
	})
	group.Go(func() error {
		overview, err := srv.billingUsecase.GetOverview(groupCtx, userID)
		if err != nil {
			return err
		}
		output.Account = overview.Account
		output.Plans = overview.Plans

		return nil
	})
	group.Go(func() error {
		transactions, err := srv.billingUsecase.ListTransactions(groupCtx, userID)
		output.Transactions = transactions

		return err
	})
	group.Go(func() error {
		bills, err := srv.billingUsecase.ListBills(groupCtx, userID)
		output.Bills = bills

		return err
	})
	group.Go(func() error {
		settings, err := srv.settingsUsecase.GetSettings(groupCtx, userID)
		output.Settings = settings

		return err
	})
	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to initialize session", slog.Any("userID", userID), slog.Any("error", err))
		return nil, err
	}

	srv.snapshots.Sessions.Set(userID, output)
	srv.log(ctx).Debug("Session initialized",
		slog.Any("userID", userID),
		slog.Bool("seeded", seeded),
		slog.Int("devices", len(output.Devices)))

	return output, nil
}

// ResetSession forgets the session marker and all snapshots. The next
// InitSession for this user runs in full again.
func (srv *bootstrapService) ResetSession(userID uuid.UUID) {
	srv.snapshots.ResetUser(userID)
}
