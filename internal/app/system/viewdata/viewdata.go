// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"

	"github.com/dalemusser/creatorhub/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// DefaultSiteName is used until Init is called.
const DefaultSiteName = "Creator Hub"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
//	data := dashboardData{
//	    BaseVM: viewdata.NewBaseVM(r, "Creator Dashboard", "/"),
//	}
type BaseVM struct {
	SiteName string
	LoginURL string

	// User context (from auth middleware)
	IsLoggedIn bool
	UserName   string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string
}

// Options are the site-wide values every page shows.
type Options struct {
	SiteName string
	LoginURL string
}

var (
	mu   sync.RWMutex
	opts = Options{SiteName: DefaultSiteName, LoginURL: "/login"}
)

// Init sets the site-wide values. Call once from BuildHandler.
func Init(o Options) {
	mu.Lock()
	defer mu.Unlock()
	if o.SiteName != "" {
		opts.SiteName = o.SiteName
	}
	if o.LoginURL != "" {
		opts.LoginURL = o.LoginURL
	}
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	name, _, signedIn := authz.UserCtx(r)

	mu.RLock()
	o := opts
	mu.RUnlock()

	return BaseVM{
		SiteName:    o.SiteName,
		LoginURL:    o.LoginURL,
		IsLoggedIn:  signedIn,
		UserName:    name,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
}
