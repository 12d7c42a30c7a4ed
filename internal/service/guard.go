package service

import (
	domainauth "github.com/planboard/planboard/internal/domain/auth"
	"github.com/planboard/planboard/internal/domain/policy"
)

// GuardState is the route guard's resolution for one navigation attempt.
type GuardState string

const (
	// GuardPending means the session is still loading; render a neutral
	// affordance and do not redirect.
	GuardPending GuardState = "pending"
	// GuardAllowed means the guarded content may render.
	GuardAllowed GuardState = "allowed"
	// GuardDeniedUnauthenticated means no credential is held; redirect to
	// the login entry point.
	GuardDeniedUnauthenticated GuardState = "denied-unauthenticated"
	// GuardDeniedUnauthorized means the role lacks the page's requirement;
	// render an in-place denial with a path back to a safe page. Never an
	// automatic redirect, so two denying pages cannot bounce the user in a
	// loop.
	GuardDeniedUnauthorized GuardState = "denied-unauthorized"
)

// Well-known navigation targets used by guard decisions.
const (
	LoginRoute     = "/login"
	DashboardRoute = "/dashboard"
)

// Requirement is what a page demands from the session. A zero Resource means
// the page only requires authentication, not a specific policy grant.
type Requirement struct {
	Resource policy.Resource
	Action   policy.Action
}

// GuardDecision is the result of evaluating a navigation. RedirectTo is set
// only for the unauthenticated case; FallbackTo offers the safe way out of
// an in-place denial.
type GuardDecision struct {
	State      GuardState
	RedirectTo string
	FallbackTo string
}

// EvaluateRoute resolves a navigation against the session and policy. It is
// evaluated per navigation and never cached: the role can only change via a
// fresh login, but the session status can change underneath any page.
func EvaluateRoute(session domainauth.Session, req Requirement) GuardDecision {
	if session.Status == domainauth.StatusLoading {
		return GuardDecision{State: GuardPending}
	}

	if session.Token == "" || session.Identity == nil {
		return GuardDecision{State: GuardDeniedUnauthenticated, RedirectTo: LoginRoute}
	}

	if req.Resource != "" && !policy.Can(session.Identity.Role, req.Resource, req.Action) {
		return GuardDecision{State: GuardDeniedUnauthorized, FallbackTo: DashboardRoute}
	}

	return GuardDecision{State: GuardAllowed}
}
