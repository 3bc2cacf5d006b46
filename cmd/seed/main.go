package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"skyline/internal/adapter/repo"
	"skyline/internal/domain"
	"skyline/internal/infra"
)

// fixtures mirrors the YAML seed file layout. Slugs are optional; blank ones
// are generated from the name or title on insert.
type fixtures struct {
	ProjectCategories []struct {
		Name string `yaml:"name"`
		Slug string `yaml:"slug"`
	} `yaml:"project_categories"`

	Projects []struct {
		Title       string `yaml:"title"`
		Slug        string `yaml:"slug"`
		Summary     string `yaml:"summary"`
		Description string `yaml:"description"`
		Client      string `yaml:"client"`
		Location    string `yaml:"location"`
		Status      string `yaml:"status"`
		Featured    bool   `yaml:"featured"`
		CoverImage  string `yaml:"cover_image"`
	} `yaml:"projects"`

	Services []struct {
		Name        string `yaml:"name"`
		Slug        string `yaml:"slug"`
		Summary     string `yaml:"summary"`
		Description string `yaml:"description"`
		Icon        string `yaml:"icon"`
		Featured    bool   `yaml:"featured"`
		SortOrder   int    `yaml:"sort_order"`
	} `yaml:"services"`

	Team []struct {
		Name      string `yaml:"name"`
		Role      string `yaml:"role"`
		Bio       string `yaml:"bio"`
		Photo     string `yaml:"photo"`
		SortOrder int    `yaml:"sort_order"`
	} `yaml:"team"`

	Testimonials []struct {
		Name     string `yaml:"name"`
		Company  string `yaml:"company"`
		Quote    string `yaml:"quote"`
		Rating   int    `yaml:"rating"`
		Approved bool   `yaml:"approved"`
	} `yaml:"testimonials"`

	Settings *struct {
		SiteName     string `yaml:"site_name"`
		Tagline      string `yaml:"tagline"`
		Description  string `yaml:"description"`
		PhonePrimary string `yaml:"phone_primary"`
		EmailPrimary string `yaml:"email_primary"`
		AddressLine  string `yaml:"address_line"`
		City         string `yaml:"city"`
		Region       string `yaml:"region"`
		HeroTitle    string `yaml:"hero_title"`
		HeroSubtitle string `yaml:"hero_subtitle"`
	} `yaml:"settings"`
}

func main() {
	var file string
	flag.StringVar(&file, "file", "seed.yaml", "path to the YAML fixture file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	raw, err := os.ReadFile(file)
	if err != nil {
		logger.Fatal().Err(err).Str("file", file).Msg("failed to read fixture file")
	}
	var fx fixtures
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		logger.Fatal().Err(err).Msg("failed to parse fixture file")
	}

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)
	projects := repo.NewProjectRepository(runner)
	services := repo.NewServiceRepository(runner)
	team := repo.NewTeamRepository(runner)
	settings := repo.NewSettingsRepository(runner)

	for _, c := range fx.ProjectCategories {
		cat := &domain.ProjectCategory{Name: c.Name, Slug: c.Slug}
		if err := projects.CreateCategory(ctx, cat); err != nil {
			logger.Error().Err(err).Str("name", c.Name).Msg("category insert failed")
			continue
		}
		logger.Info().Str("slug", cat.Slug).Msg("category seeded")
	}

	for _, p := range fx.Projects {
		status := domain.ProjectStatus(p.Status)
		if status == "" {
			status = domain.ProjectCompleted
		}
		proj := &domain.Project{
			Title:       p.Title,
			Slug:        p.Slug,
			Summary:     p.Summary,
			Description: p.Description,
			Client:      p.Client,
			Location:    p.Location,
			Status:      status,
			Featured:    p.Featured,
			CoverImage:  p.CoverImage,
		}
		if err := projects.Create(ctx, proj); err != nil {
			logger.Error().Err(err).Str("title", p.Title).Msg("project insert failed")
			continue
		}
		logger.Info().Str("slug", proj.Slug).Msg("project seeded")
	}

	for _, s := range fx.Services {
		svc := &domain.Service{
			Name:        s.Name,
			Slug:        s.Slug,
			Summary:     s.Summary,
			Description: s.Description,
			Icon:        s.Icon,
			Featured:    s.Featured,
			SortOrder:   s.SortOrder,
		}
		if err := services.Create(ctx, svc); err != nil {
			logger.Error().Err(err).Str("name", s.Name).Msg("service insert failed")
			continue
		}
		logger.Info().Str("slug", svc.Slug).Msg("service seeded")
	}

	for _, m := range fx.Team {
		member := &domain.TeamMember{
			Name:      m.Name,
			Role:      m.Role,
			Bio:       m.Bio,
			Photo:     m.Photo,
			SortOrder: m.SortOrder,
		}
		if err := team.CreateMember(ctx, member); err != nil {
			logger.Error().Err(err).Str("name", m.Name).Msg("team member insert failed")
			continue
		}
		logger.Info().Str("name", member.Name).Msg("team member seeded")
	}

	for _, t := range fx.Testimonials {
		tm := &domain.Testimonial{
			Name:     t.Name,
			Company:  t.Company,
			Quote:    t.Quote,
			Rating:   t.Rating,
			Approved: t.Approved,
		}
		if err := team.CreateTestimonial(ctx, tm); err != nil {
			logger.Error().Err(err).Str("name", t.Name).Msg("testimonial insert failed")
			continue
		}
		logger.Info().Str("name", tm.Name).Msg("testimonial seeded")
	}

	if fx.Settings != nil {
		s := &domain.SiteSettings{
			SiteName:     fx.Settings.SiteName,
			Tagline:      fx.Settings.Tagline,
			Description:  fx.Settings.Description,
			PhonePrimary: fx.Settings.PhonePrimary,
			EmailPrimary: fx.Settings.EmailPrimary,
			AddressLine:  fx.Settings.AddressLine,
			City:         fx.Settings.City,
			Region:       fx.Settings.Region,
			HeroTitle:    fx.Settings.HeroTitle,
			HeroSubtitle: fx.Settings.HeroSubtitle,
		}
		if err := settings.Upsert(ctx, s); err != nil {
			logger.Error().Err(err).Msg("settings upsert failed")
		} else {
			logger.Info().Msg("site settings seeded")
		}
	}

	logger.Info().Msg("seed complete")
}
