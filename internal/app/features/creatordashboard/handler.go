package creatordashboard

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/dalemusser/creatorhub/internal/app/features/errors"
	"github.com/dalemusser/creatorhub/internal/app/system/creatorview"
	"github.com/dalemusser/creatorhub/internal/app/system/dashdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BasePath is where Routes is mounted.
const BasePath = "/creator-dashboard"

// DataFetcher loads one creator's dashboard data. *dashdata.Service
// satisfies it.
type DataFetcher interface {
	Fetch(ctx context.Context, ownerID primitive.ObjectID) (dashdata.Result, error)
}

// StateStore persists the dashboard UI state between requests.
type StateStore interface {
	Load(r *http.Request) creatorview.State
	Save(w http.ResponseWriter, r *http.Request, s creatorview.State) error
}

// Renderer writes full pages and HTMX snippets.
type Renderer interface {
	Page(w http.ResponseWriter, r *http.Request, name string, data any)
	Snippet(w http.ResponseWriter, name string, data any)
}

type waffleRenderer struct{}

func (waffleRenderer) Page(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

func (waffleRenderer) Snippet(w http.ResponseWriter, name string, data any) {
	templates.RenderSnippet(w, name, data)
}

// Handler serves the creator dashboard.
type Handler struct {
	Data      DataFetcher
	State     StateStore
	Editors   EditorRouter
	Render    Renderer
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
	DefaultTZ string
	Now       func() time.Time
}

// NewHandler constructs a dashboard Handler that renders with the shared
// template engine.
func NewHandler(data DataFetcher, state StateStore, editors EditorRouter, errLog *uierrors.ErrorLogger, defaultTZ string, logger *zap.Logger) *Handler {
	return &Handler{
		Data:      data,
		State:     state,
		Editors:   editors,
		Render:    waffleRenderer{},
		ErrLog:    errLog,
		Log:       logger,
		DefaultTZ: defaultTZ,
		Now:       time.Now,
	}
}
