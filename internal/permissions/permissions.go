// Package permissions gates every CRM operation behind an ordered chain of
// predicates. The login gate always runs first; role gates compare the
// session's role claim; ownership gates add a relational lookup proving the
// acting user is linked to the target record. The first failing gate aborts
// the chain with a user-facing error and no side effects.
package permissions

import (
	"context"
	"errors"

	"github.com/epicevents/crm/internal/session"
	"github.com/epicevents/crm/internal/store"
	"github.com/epicevents/crm/types"
)

// Actor is the identity a gate evaluates: the user id and role read from the
// session sidecar, not re-decoded from the signed token.
type Actor struct {
	UserID int
	Role   types.Role
	Name   string
}

// Target carries the record ids a command operates on. Only the field
// relevant to the gated operation is set.
type Target struct {
	ClientID   int
	ContractID int
	EventID    int
}

// Gate is a single permission predicate. A nil return lets the chain
// continue.
type Gate func(ctx context.Context, actor Actor, target Target) error

// ClientFinder proves client ownership.
type ClientFinder interface {
	GetByIDForRep(ctx context.Context, id, salesRepID int) (types.Client, error)
}

// ContractFinder proves contract ownership.
type ContractFinder interface {
	GetByIDForRep(ctx context.Context, id, salesRepID int) (types.Contract, error)
}

// EventFinder proves event assignment.
type EventFinder interface {
	GetByIDForSupport(ctx context.Context, id, supportStaffID int) (types.Event, error)
}

// Evaluator runs gate chains against the current session.
type Evaluator struct {
	sessions  *session.Manager
	clients   ClientFinder
	contracts ContractFinder
	events    EventFinder
}

func NewEvaluator(sessions *session.Manager, clients ClientFinder, contracts ContractFinder, events EventFinder) *Evaluator {
	return &Evaluator{
		sessions:  sessions,
		clients:   clients,
		contracts: contracts,
		events:    events,
	}
}

// Require is the entry point of every command: it runs the login gate, then
// the given gates in order, short-circuiting on the first failure. On
// success it returns the authenticated user.
func (e *Evaluator) Require(ctx context.Context, target Target, gates ...Gate) (types.User, error) {
	sess, ok := e.sessions.Load()
	if !ok {
		return types.User{}, ErrNotLoggedIn
	}
	user, ok := e.sessions.Validate(ctx, sess)
	if !ok {
		return types.User{}, ErrInvalidToken
	}

	actor := Actor{
		UserID: sess.UserID,
		Role:   types.Role(sess.UserRole),
		Name:   sess.UserName,
	}
	for _, gate := range gates {
		if err := gate(ctx, actor, target); err != nil {
			return types.User{}, err
		}
	}
	return user, nil
}

// ManagementOnly passes only for the management role.
func (e *Evaluator) ManagementOnly(ctx context.Context, actor Actor, target Target) error {
	if actor.Role != types.RoleManagement {
		return denied(msgNoPermission)
	}
	return nil
}

// SalesOnly passes only for the sales role.
func (e *Evaluator) SalesOnly(ctx context.Context, actor Actor, target Target) error {
	if actor.Role != types.RoleSales {
		return denied(msgNoPermission)
	}
	return nil
}

// SalesClientRep passes for a sales user who is the representative assigned
// to the target client.
func (e *Evaluator) SalesClientRep(ctx context.Context, actor Actor, target Target) error {
	if actor.Role != types.RoleSales {
		return denied(msgNoPermission)
	}
	if _, err := e.clients.GetByIDForRep(ctx, target.ClientID, actor.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return denied(msgNotClientRep)
		}
		return err
	}
	return nil
}

// ContractSalesRepOrManagement passes for management unconditionally; a
// sales user must be the representative assigned to the target contract.
func (e *Evaluator) ContractSalesRepOrManagement(ctx context.Context, actor Actor, target Target) error {
	switch actor.Role {
	case types.RoleSales:
		if _, err := e.contracts.GetByIDForRep(ctx, target.ContractID, actor.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return denied(msgNotContractRep)
			}
			return err
		}
		return nil
	case types.RoleManagement:
		return nil
	default:
		return denied(msgNoPermission)
	}
}

// EventSupportOrManagement passes for management unconditionally; a support
// user must be the staff assigned to the target event.
func (e *Evaluator) EventSupportOrManagement(ctx context.Context, actor Actor, target Target) error {
	switch actor.Role {
	case types.RoleSupport:
		if _, err := e.events.GetByIDForSupport(ctx, target.EventID, actor.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return denied(msgNotEventSupport)
			}
			return err
		}
		return nil
	case types.RoleManagement:
		return nil
	default:
		return denied(msgNoPermission)
	}
}

// SalesEventAccess passes for a sales user who is the representative
// assigned to the contract an event is being created under.
func (e *Evaluator) SalesEventAccess(ctx context.Context, actor Actor, target Target) error {
	if actor.Role != types.RoleSales {
		return denied(msgNoPermission)
	}
	if _, err := e.contracts.GetByIDForRep(ctx, target.ContractID, actor.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return denied(msgNotEventRep)
		}
		return err
	}
	return nil
}
