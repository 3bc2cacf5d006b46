package repo

import (
	"context"

	"skyline/internal/domain"
	"skyline/internal/infra"
	"skyline/internal/sqlinline"
)

// SettingsRepositoryPG implements domain.SettingsRepository using PostgreSQL.
type SettingsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewSettingsRepository constructs the repository.
func NewSettingsRepository(sql infra.SQLExecutor) *SettingsRepositoryPG {
	return &SettingsRepositoryPG{sql: sql}
}

func (r *SettingsRepositoryPG) Get(ctx context.Context) (*domain.SiteSettings, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectSettings)
	var s domain.SiteSettings
	if err := row.Scan(
		&s.ID, &s.SiteName, &s.Tagline, &s.Description, &s.PhonePrimary, &s.EmailPrimary,
		&s.AddressLine, &s.City, &s.Region, &s.Latitude, &s.Longitude,
		&s.FacebookURL, &s.InstagramURL, &s.LinkedInURL, &s.TwitterURL,
		&s.BusinessHours, &s.Logo, &s.HeroBackground, &s.HeroTitle, &s.HeroSubtitle,
		&s.AnalyticsID, &s.UpdatedAt,
	); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrSettingsMissing
		}
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepositoryPG) Upsert(ctx context.Context, s *domain.SiteSettings) error {
	_, err := r.sql.Exec(ctx, sqlinline.QUpsertSettings,
		s.SiteName, s.Tagline, s.Description, s.PhonePrimary, s.EmailPrimary,
		s.AddressLine, s.City, s.Region, s.Latitude, s.Longitude,
		s.FacebookURL, s.InstagramURL, s.LinkedInURL, s.TwitterURL,
		s.BusinessHours, s.Logo, s.HeroBackground, s.HeroTitle, s.HeroSubtitle,
		s.AnalyticsID,
	)
	return err
}

var _ domain.SettingsRepository = (*SettingsRepositoryPG)(nil)
