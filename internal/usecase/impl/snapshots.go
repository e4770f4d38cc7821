// Package impl contains the implementation of the application's business logic.
package impl

import (
	"clawdeck/internal/domain/entity"
	"clawdeck/internal/store"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
)

// catalogOwner is the pseudo-user that owns user-independent catalogs
// (the skill marketplace and the plan list).
var catalogOwner = uuid.Nil

// Snapshots bundles the in-memory snapshot stores shared by the services.
// Every service writes to storage first and mirrors the committed result
// here, so the snapshots never contain entries the database does not have.
type Snapshots struct {
	Devices         *store.Collection[*entity.Device]
	InstalledSkills *store.Collection[*entity.InstalledSkill]
	MarketSkills    *store.Collection[*entity.MarketSkill]
	Plans           *store.Collection[*entity.Plan]
	Transactions    *store.Collection[*entity.Transaction]
	Bills           *store.Collection[*entity.Bill]
	APIKeys         *store.Collection[*entity.APIKey]
	Accounts        *store.Singleton[*entity.BillingAccount]
	AlertSettings   *store.Singleton[*entity.AlertSetting]
	Settings        *store.Singleton[*entity.UserSettings]
	Sessions        *store.Singleton[*usecase.BootstrapOutput]
}

// NewSnapshots is the constructor for Snapshots.
func NewSnapshots() *Snapshots {
	return &Snapshots{
		Devices:         store.NewCollection(func(d *entity.Device) string { return d.ID.String() }),
		InstalledSkills: store.NewCollection(func(s *entity.InstalledSkill) string { return s.ID.String() }),
		MarketSkills:    store.NewCollection(func(s *entity.MarketSkill) string { return s.ID }),
		Plans:           store.NewCollection(func(p *entity.Plan) string { return p.ID }),
		Transactions:    store.NewCollection(func(t *entity.Transaction) string { return t.ID.String() }),
		Bills:           store.NewCollection(func(b *entity.Bill) string { return b.ID.String() }),
		APIKeys:         store.NewCollection(func(k *entity.APIKey) string { return k.ID.String() }),
		Accounts:        store.NewSingleton[*entity.BillingAccount](),
		AlertSettings:   store.NewSingleton[*entity.AlertSetting](),
		Settings:        store.NewSingleton[*entity.UserSettings](),
		Sessions:        store.NewSingleton[*usecase.BootstrapOutput](),
	}
}

// ResetUser drops every snapshot the user owns, including the session
// marker. Catalog snapshots are shared and stay untouched.
func (s *Snapshots) ResetUser(userID uuid.UUID) {
	s.Devices.Reset(userID)
	s.InstalledSkills.Reset(userID)
	s.Transactions.Reset(userID)
	s.Bills.Reset(userID)
	s.APIKeys.Reset(userID)
	s.Accounts.Reset(userID)
	s.AlertSettings.Reset(userID)
	s.Settings.Reset(userID)
	s.Sessions.Reset(userID)
}
