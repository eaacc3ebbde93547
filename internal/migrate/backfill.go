// Package migrate holds one-off data migrations run by cmd/migrate.
package migrate

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/badgeforge/issuer-api/internal/core/domain"
)

const (
	fakeDomainLength = 16
	fakeDomainSuffix = ".badgeconnect.invalid"
)

const domainAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// ApplicationStore is the slice of application persistence the backfill needs.
type ApplicationStore interface {
	ForEach(ctx context.Context, fn func(app *domain.ApplicationInfo) error) error
	SetManifestDomain(ctx context.Context, id, domainName string) error
	Count(ctx context.Context) (int64, error)
}

// Manager runs data migrations against the application store.
type Manager struct {
	apps ApplicationStore
	log  zerolog.Logger
	rnd  *rand.Rand
}

// NewManager creates a Manager. src seeds the random domain generator; pass a
// fixed-seed source in tests for reproducible output.
func NewManager(apps ApplicationStore, log zerolog.Logger, src rand.Source) *Manager {
	return &Manager{apps: apps, log: log, rnd: rand.New(src)}
}

// BackfillManifestDomains assigns a freshly generated placeholder manifest
// domain to every registered application. Each document is rewritten
// sequentially with no transaction; the field is independent of everything
// else, so the command is safe to re-run. Domains are not checked for
// uniqueness.
func (m *Manager) BackfillManifestDomains(ctx context.Context) error {
	var updated int
	err := m.apps.ForEach(ctx, func(app *domain.ApplicationInfo) error {
		domainName := m.randomManifestDomain()
		if err := m.apps.SetManifestDomain(ctx, app.ID, domainName); err != nil {
			return fmt.Errorf("application %s: %w", app.ID, err)
		}
		m.log.Debug().
			Str("application_id", app.ID).
			Str("manifest_domain", domainName).
			Msg("manifest domain assigned")
		updated++
		return nil
	})
	if err != nil {
		return err
	}
	m.log.Info().Int("updated", updated).Msg("manifest domain backfill complete")
	return nil
}

// Status reports how many applications exist.
func (m *Manager) Status(ctx context.Context) (string, error) {
	n, err := m.apps.Count(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("applications: %d", n), nil
}

// randomManifestDomain builds a fake domain that can never resolve
// (.invalid is reserved), so placeholder rows are easy to spot.
func (m *Manager) randomManifestDomain() string {
	b := make([]byte, fakeDomainLength)
	for i := range b {
		b[i] = domainAlphabet[m.rnd.Intn(len(domainAlphabet))]
	}
	return string(b) + fakeDomainSuffix
}
