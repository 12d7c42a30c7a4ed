// Package policy is the authorization rule table for the dashboard. It is a
// pure mapping from (role, resource, action) to allow/deny with no I/O and no
// ambient state. Every view and service consults it before acting; anything
// the table does not explicitly allow is denied.
package policy

import (
	"github.com/planboard/planboard/internal/domain/auth"
	"github.com/planboard/planboard/internal/domain/model"
)

// Resource is a kind of guarded application resource.
type Resource string

const (
	ResourceProject    Resource = "project"
	ResourceClient     Resource = "client"
	ResourceTask       Resource = "task"
	ResourceAssignment Resource = "assignment"
	// ResourceRegistration is the admin-only user-registration surface.
	ResourceRegistration Resource = "user-registration"
)

// Action is an operation attempted against a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	// ActionTransition is a status-only write (project or task status).
	ActionTransition Action = "transition"
)

// Decision is the outcome of a policy lookup.
type Decision string

const (
	Allow Decision = "allow"
	Deny  Decision = "deny"
)

type actionSet map[Action]struct{}

func actions(as ...Action) actionSet {
	set := make(actionSet, len(as))
	for _, a := range as {
		set[a] = struct{}{}
	}
	return set
}

// rules is the closed policy table. Absence of an entry means deny; there is
// deliberately no wildcard row, so a new resource or action stays locked
// until a rule names it.
//
// TeamMember rows encode only the coarse grant; data-scoped restrictions
// (own projects, own tasks) are enforced by the predicates further down.
var rules = map[auth.Role]map[Resource]actionSet{
	auth.RoleAdmin: {
		ResourceProject:      actions(ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionTransition),
		ResourceClient:       actions(ActionRead, ActionCreate, ActionUpdate, ActionDelete),
		ResourceTask:         actions(ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionTransition),
		ResourceAssignment:   actions(ActionRead, ActionCreate, ActionDelete),
		ResourceRegistration: actions(ActionCreate),
	},
	auth.RoleProjectManager: {
		ResourceProject:    actions(ActionRead, ActionCreate, ActionUpdate, ActionTransition),
		ResourceClient:     actions(ActionRead, ActionCreate, ActionUpdate),
		ResourceTask:       actions(ActionRead, ActionCreate, ActionUpdate, ActionTransition),
		ResourceAssignment: actions(ActionRead, ActionCreate),
	},
	auth.RoleTeamMember: {
		ResourceProject: actions(ActionRead),
		ResourceTask:    actions(ActionRead, ActionTransition),
	},
}

// Decide returns the table decision for (role, resource, action). Lookups
// that match no rule return Deny.
func Decide(role auth.Role, resource Resource, action Action) Decision {
	byResource, ok := rules[role]
	if !ok {
		return Deny
	}
	set, ok := byResource[resource]
	if !ok {
		return Deny
	}
	if _, ok := set[action]; !ok {
		return Deny
	}
	return Allow
}

// Can is the boolean convenience form of Decide.
func Can(role auth.Role, resource Resource, action Action) bool {
	return Decide(role, resource, action) == Allow
}

// CanViewProject reports whether the identity may see the given project.
// Admins and project managers see everything; team members see only projects
// their assignment set references.
func CanViewProject(identity *auth.Identity, project model.Project, assignments model.AssignmentSet) bool {
	if identity == nil {
		return false
	}
	switch identity.Role {
	case auth.RoleAdmin, auth.RoleProjectManager:
		return true
	case auth.RoleTeamMember:
		return assignments.HasProject(project.ID)
	default:
		return false
	}
}

// CanTransitionTask reports whether the identity may move the task between
// statuses. Admins and project managers may transition any task; team
// members only tasks assigned to them.
func CanTransitionTask(identity *auth.Identity, task model.Task) bool {
	if identity == nil {
		return false
	}
	switch identity.Role {
	case auth.RoleAdmin, auth.RoleProjectManager:
		return true
	case auth.RoleTeamMember:
		return task.AssignedToUser(identity.ID)
	default:
		return false
	}
}
