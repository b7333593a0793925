package createactivity

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SourceTag identifies the create button in analytics events.
const SourceTag = "CreateActivityButton"

// LoginRedirectDelay gives the start-login event time to leave before the
// page navigates away.
const LoginRedirectDelay = 150 * time.Millisecond

// Variant selects which creation modal to open.
type Variant string

const (
	VariantCreate Variant = "create"
	VariantUpload Variant = "upload"
)

// Modal is what a DialogService hands back for rendering.
type Modal struct {
	Variant     Variant
	Title       string
	Description string
	Categories  []CategoryOption
	SubmitURL   string
}

// CategoryOption is one selectable category in a modal.
type CategoryOption struct {
	Name string
	URL  string
}

// DialogService opens the activity-creation modals.
type DialogService interface {
	OpenCreateModal(ctx context.Context, categories []string) (Modal, error)
	OpenUploadModal(ctx context.Context, categories []string) (Modal, error)
}

// AnalyticsService records product-analytics events. Implementations must
// not block on storage.
type AnalyticsService interface {
	RecordStartLoginEvent(ctx context.Context, sourceTag string) error
}

// Navigator performs a navigation to url.
type Navigator interface {
	Navigate(url string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(url string)

func (f NavigatorFunc) Navigate(url string) { f(url) }

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// Trigger backs the "create activity" control: it opens the creation
// modals and sends visitors to sign in.
type Trigger struct {
	dialogs    DialogService
	analytics  AnalyticsService
	navigator  Navigator
	scheduler  Scheduler
	categories []string
	sourceTag  string
	log        *zap.Logger
}

// Option configures a Trigger.
type Option func(*Trigger)

// WithScheduler replaces the time.AfterFunc scheduler.
func WithScheduler(s Scheduler) Option {
	return func(t *Trigger) { t.scheduler = s }
}

// WithSourceTag overrides SourceTag.
func WithSourceTag(tag string) Option {
	return func(t *Trigger) { t.sourceTag = tag }
}

// NewTrigger wires the trigger's collaborators.
func NewTrigger(dialogs DialogService, analytics AnalyticsService, navigator Navigator, categories []string, logger *zap.Logger, opts ...Option) *Trigger {
	t := &Trigger{
		dialogs:    dialogs,
		analytics:  analytics,
		navigator:  navigator,
		scheduler:  timerScheduler{},
		categories: append([]string(nil), categories...),
		sourceTag:  SourceTag,
		log:        logger,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// WithNavigator returns a copy of t that navigates through nav.
func (t *Trigger) WithNavigator(nav Navigator) *Trigger {
	cp := *t
	cp.navigator = nav
	return &cp
}

// Categories returns a copy of the configured category list.
func (t *Trigger) Categories() []string {
	return append([]string(nil), t.categories...)
}

// SourceTag returns the tag attached to analytics events.
func (t *Trigger) SourceTag() string {
	return t.sourceTag
}

// OpenCreateModal asks the dialog service for the "create new" modal.
func (t *Trigger) OpenCreateModal(ctx context.Context) (Modal, error) {
	return t.dialogs.OpenCreateModal(ctx, t.Categories())
}

// OpenUploadModal asks the dialog service for the "upload" modal.
func (t *Trigger) OpenUploadModal(ctx context.Context) (Modal, error) {
	return t.dialogs.OpenUploadModal(ctx, t.Categories())
}

// OnRedirectToLogin records a start-login event, schedules exactly one
// navigation to destinationURL after LoginRedirectDelay, and returns false
// so the caller suppresses its default navigation. An analytics failure is
// logged and does not stop the navigation.
func (t *Trigger) OnRedirectToLogin(ctx context.Context, destinationURL string) bool {
	if t.analytics != nil {
		if err := t.analytics.RecordStartLoginEvent(ctx, t.sourceTag); err != nil {
			t.log.Error("start-login analytics failed",
				zap.String("source", t.sourceTag),
				zap.Error(err))
		}
	}

	nav := t.navigator
	t.scheduler.AfterFunc(LoginRedirectDelay, func() {
		if nav != nil {
			nav.Navigate(destinationURL)
		}
	})
	return false
}
