package handlers

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"skyline/internal/domain"
	"skyline/internal/infra"
)

var errFake = errors.New("fake failure")

func newTestApp() *App {
	return &App{
		Cfg: &infra.Config{
			AppEnv:   "development",
			TimeZone: "UTC",
		},
		Log:   zerolog.Nop(),
		Store: &fakeStore{},
		now: func() time.Time {
			return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
		},
	}
}

type fakeStore struct {
	mu       sync.Mutex
	saved    map[string][]byte
	saveErr  error
	deleted  []string
	deleteOK bool
}

func (f *fakeStore) Save(_ context.Context, name string, content io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saved == nil {
		f.saved = make(map[string][]byte)
	}
	key := "stored-" + name
	f.saved[key] = data
	return key, nil
}

func (f *fakeStore) Delete(_ context.Context, name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, name)
	return f.deleteOK
}

func (f *fakeStore) Exists(context.Context, string) bool { return false }

func (f *fakeStore) URL(name string) string {
	if name == "" {
		return ""
	}
	return "https://cdn.example.com/" + name
}

func (f *fakeStore) Size(context.Context, string) int64 { return 0 }

func (f *fakeStore) ModTime(context.Context, string) (time.Time, error) {
	return time.Time{}, nil
}

func (f *fakeStore) CreatedTime(context.Context, string) (time.Time, error) {
	return time.Time{}, nil
}

type fakeMetricsRepo struct {
	sums      map[string]float64
	series    []domain.MetricPoint
	resets    []time.Time
	sumCalls  [][2]time.Time
	err       error
	resetErr  error
	seriesErr error
}

func (f *fakeMetricsRepo) Increment(context.Context, string, time.Time) error { return f.err }

func (f *fakeMetricsRepo) SumRange(_ context.Context, _ string, from, to time.Time) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.sumCalls = append(f.sumCalls, [2]time.Time{from, to})
	key := from.Format("2006-01-02") + ":" + to.Format("2006-01-02")
	return f.sums[key], nil
}

func (f *fakeMetricsRepo) SeriesRange(context.Context, string, time.Time, time.Time) ([]domain.MetricPoint, error) {
	if f.seriesErr != nil {
		return nil, f.seriesErr
	}
	return f.series, nil
}

func (f *fakeMetricsRepo) Reset(_ context.Context, _ string, day time.Time) error {
	if f.resetErr != nil {
		return f.resetErr
	}
	f.resets = append(f.resets, day)
	return nil
}

type fakeInquiryRepo struct {
	created   []*domain.ContactInquiry
	createErr error
	listed    []domain.ContactInquiry
	updated   map[int64]domain.InquiryStatus
	updateErr error
}

func (f *fakeInquiryRepo) Create(_ context.Context, in *domain.ContactInquiry) error {
	if f.createErr != nil {
		return f.createErr
	}
	in.ID = int64(len(f.created) + 1)
	f.created = append(f.created, in)
	return nil
}

func (f *fakeInquiryRepo) List(context.Context, domain.InquiryStatus, int, int) ([]domain.ContactInquiry, error) {
	return f.listed, nil
}

func (f *fakeInquiryRepo) UpdateStatus(_ context.Context, id int64, status domain.InquiryStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[int64]domain.InquiryStatus)
	}
	f.updated[id] = status
	return nil
}

type fakeCareerRepo struct {
	positions   map[string]*domain.JobPosition
	apps        []*domain.JobApplication
	departments []domain.Department
	listedDays  []time.Time
	createErr   error
}

func (f *fakeCareerRepo) ListOpenPositions(_ context.Context, today time.Time) ([]domain.JobPosition, error) {
	f.listedDays = append(f.listedDays, today)
	out := make([]domain.JobPosition, 0, len(f.positions))
	for _, p := range f.positions {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeCareerRepo) ListDepartments(context.Context) ([]domain.Department, error) {
	return f.departments, nil
}

func (f *fakeCareerRepo) GetPositionBySlug(_ context.Context, slug string) (*domain.JobPosition, error) {
	p, ok := f.positions[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeCareerRepo) CreateApplication(_ context.Context, app *domain.JobApplication) error {
	if f.createErr != nil {
		return f.createErr
	}
	app.ID = int64(len(f.apps) + 1)
	f.apps = append(f.apps, app)
	return nil
}

type fakeProjectRepo struct {
	projects   []domain.Project
	categories []domain.ProjectCategory
	listErr    error
}

func (f *fakeProjectRepo) List(context.Context, string, bool, int, int) ([]domain.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.projects, nil
}

func (f *fakeProjectRepo) GetBySlug(_ context.Context, slug string) (*domain.Project, error) {
	for i := range f.projects {
		if f.projects[i].Slug == slug {
			return &f.projects[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProjectRepo) Create(context.Context, *domain.Project) error { return nil }

func (f *fakeProjectRepo) ListCategories(context.Context) ([]domain.ProjectCategory, error) {
	return f.categories, nil
}

func (f *fakeProjectRepo) CreateCategory(context.Context, *domain.ProjectCategory) error {
	return nil
}

type fakePostRepo struct {
	posts        []domain.BlogPost
	categories   []domain.BlogCategory
	incremented  []int64
	incrementErr error
}

func (f *fakePostRepo) ListCategories(context.Context) ([]domain.BlogCategory, error) {
	return f.categories, nil
}

func (f *fakePostRepo) ListPublished(context.Context, int, int) ([]domain.BlogPost, error) {
	return f.posts, nil
}

func (f *fakePostRepo) GetPublishedBySlug(_ context.Context, slug string) (*domain.BlogPost, error) {
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			return &f.posts[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePostRepo) IncrementViews(_ context.Context, id int64) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.incremented = append(f.incremented, id)
	return nil
}

func (f *fakePostRepo) Create(context.Context, *domain.BlogPost) error { return nil }

type fakeServiceRepo struct {
	services   []domain.Service
	categories []domain.ServiceCategory
}

func (f *fakeServiceRepo) List(context.Context, bool) ([]domain.Service, error) {
	return f.services, nil
}

func (f *fakeServiceRepo) GetBySlug(_ context.Context, slug string) (*domain.Service, error) {
	for i := range f.services {
		if f.services[i].Slug == slug {
			return &f.services[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeServiceRepo) Create(context.Context, *domain.Service) error { return nil }

func (f *fakeServiceRepo) ListCategories(context.Context) ([]domain.ServiceCategory, error) {
	return f.categories, nil
}

type fakeSettingsRepo struct {
	settings *domain.SiteSettings
}

func (f *fakeSettingsRepo) Get(context.Context) (*domain.SiteSettings, error) {
	if f.settings == nil {
		return nil, domain.ErrSettingsMissing
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s *domain.SiteSettings) error {
	f.settings = s
	return nil
}
