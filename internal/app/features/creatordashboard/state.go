package creatordashboard

import (
	"net/http"

	"github.com/dalemusser/creatorhub/internal/app/system/auth"
	"github.com/dalemusser/creatorhub/internal/app/system/creatorview"
)

const (
	stateTabKey  = "dash_tab"
	stateViewKey = "dash_view"
	stateSortKey = "dash_sort"
	stateDescKey = "dash_desc"
)

// SessionState keeps the dashboard UI state in the signed session cookie,
// so it lasts for the browser session only.
type SessionState struct {
	Sessions *auth.SessionManager
}

// Load returns the stored state, or the defaults for a new session.
func (s SessionState) Load(r *http.Request) creatorview.State {
	sess := s.Sessions.Session(r)
	st := creatorview.DefaultState()

	if v, ok := sess.Values[stateTabKey].(string); ok {
		st.ActiveTab = creatorview.Tab(v)
	}
	if v, ok := sess.Values[stateViewKey].(string); ok {
		st.MyExplorationsView = creatorview.ViewMode(v)
	}
	if v, ok := sess.Values[stateSortKey].(string); ok {
		st.CurrentSortType = creatorview.SortKey(v)
		desc, _ := sess.Values[stateDescKey].(bool)
		st.IsCurrentSortDescending = desc
	}
	return st.Normalize()
}

// Save writes st into the session cookie.
func (s SessionState) Save(w http.ResponseWriter, r *http.Request, st creatorview.State) error {
	sess := s.Sessions.Session(r)
	sess.Values[stateTabKey] = string(st.ActiveTab)
	sess.Values[stateViewKey] = string(st.MyExplorationsView)
	sess.Values[stateSortKey] = string(st.CurrentSortType)
	sess.Values[stateDescKey] = st.IsCurrentSortDescending
	return sess.Save(r, w)
}
