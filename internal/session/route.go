// Package session holds the per-browser flags (auth token, onboarding marker)
// and the routing decisions derived from them.
package session

// Route is an in-app path the browser is sent to.
type Route string

// Routes chosen by DecideInitialRoute and Guard.
const (
	RouteLogin      Route = "/auth/login"
	RouteRegister   Route = "/auth/register"
	RouteOnboarding Route = "/onboarding"
	RouteDashboard  Route = "/dashboard"
	RouteProfile    Route = "/profile"
)

// State is the typed view of the session flags, read once per request.
type State struct {
	Token              string
	OnboardingComplete bool
}

// Authenticated reports whether a token is present.
func (s State) Authenticated() bool {
	return s.Token != ""
}

// DecideInitialRoute picks the landing route for a session: login without a
// token, the wizard until onboarding is complete, the dashboard after that.
func DecideInitialRoute(s State) Route {
	switch {
	case !s.Authenticated():
		return RouteLogin
	case !s.OnboardingComplete:
		return RouteOnboarding
	default:
		return RouteDashboard
	}
}

// Guard decides whether page may render for s. When it may not, the returned
// route is where to redirect instead.
//
// The auth pages are always reachable. Every other page needs a token, and the
// wizard is closed once onboarding is complete.
func Guard(page Route, s State) (Route, bool) {
	switch page {
	case RouteLogin, RouteRegister:
		return page, true
	}
	if !s.Authenticated() {
		return RouteLogin, false
	}
	if page == RouteOnboarding && s.OnboardingComplete {
		return RouteDashboard, false
	}
	return page, true
}
