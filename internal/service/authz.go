package service

import (
	"fmt"

	apperrors "github.com/planboard/planboard/internal/errors"

	domainauth "github.com/planboard/planboard/internal/domain/auth"
	"github.com/planboard/planboard/internal/domain/policy"
)

// requireCan resolves the current identity and checks the policy table
// before any network call is made. A denial here means the request never
// leaves the process.
func requireCan(session domainauth.Session, resource policy.Resource, action policy.Action) (*domainauth.Identity, error) {
	if !session.Authenticated() || session.Identity == nil {
		return nil, apperrors.Auth("Please log in to continue")
	}
	if !policy.Can(session.Identity.Role, resource, action) {
		return nil, permissionDenied(resource, action)
	}
	return session.Identity, nil
}

// requireAuthenticated checks only that a session is present, for pages any
// role may use.
func requireAuthenticated(session domainauth.Session) (*domainauth.Identity, error) {
	if !session.Authenticated() || session.Identity == nil {
		return nil, apperrors.Auth("Please log in to continue")
	}
	return session.Identity, nil
}

func permissionDenied(resource policy.Resource, action policy.Action) error {
	return apperrors.Auth(fmt.Sprintf("You don't have permission to %s %ss", action, resource))
}
