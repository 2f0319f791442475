package services

import (
	"context"

	"github.com/epicevents/crm/internal/store"
	"github.com/epicevents/crm/types"
)

// Map-backed repository fakes. List returns everything; filter behavior is
// the store's concern, not the services'.

type memUserRepo struct {
	nextID int
	users  map[int]types.User
}

func newMemUserRepo(users ...types.User) *memUserRepo {
	r := &memUserRepo{nextID: 1, users: map[int]types.User{}}
	for _, u := range users {
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) GetByID(ctx context.Context, id int) (types.User, error) {
	u, ok := r.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (types.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *memUserRepo) GetByIDAndRole(ctx context.Context, id int, role types.Role) (types.User, error) {
	u, ok := r.users[id]
	if !ok || u.Role != role {
		return types.User{}, store.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) List(ctx context.Context, filter store.UserFilter) ([]types.User, error) {
	out := make([]types.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return user, nil
}

func (r *memUserRepo) Update(ctx context.Context, user types.User) (types.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return types.User{}, store.ErrNotFound
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *memUserRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memClientRepo struct {
	nextID  int
	clients map[int]types.Client
}

func newMemClientRepo(clients ...types.Client) *memClientRepo {
	r := &memClientRepo{nextID: 1, clients: map[int]types.Client{}}
	for _, c := range clients {
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
		r.clients[c.ID] = c
	}
	return r
}

func (r *memClientRepo) GetByID(ctx context.Context, id int) (types.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return types.Client{}, store.ErrNotFound
	}
	return c, nil
}

func (r *memClientRepo) List(ctx context.Context, filter store.ClientFilter) ([]types.Client, error) {
	out := make([]types.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *memClientRepo) Create(ctx context.Context, client types.Client) (types.Client, error) {
	client.ID = r.nextID
	r.nextID++
	r.clients[client.ID] = client
	return client, nil
}

func (r *memClientRepo) Update(ctx context.Context, client types.Client) (types.Client, error) {
	if _, ok := r.clients[client.ID]; !ok {
		return types.Client{}, store.ErrNotFound
	}
	r.clients[client.ID] = client
	return client, nil
}

func (r *memClientRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.clients[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

type memContractRepo struct {
	nextID    int
	contracts map[int]types.Contract
}

func newMemContractRepo(contracts ...types.Contract) *memContractRepo {
	r := &memContractRepo{nextID: 1, contracts: map[int]types.Contract{}}
	for _, c := range contracts {
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
		r.contracts[c.ID] = c
	}
	return r
}

func (r *memContractRepo) GetByID(ctx context.Context, id int) (types.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return types.Contract{}, store.ErrNotFound
	}
	return c, nil
}

func (r *memContractRepo) List(ctx context.Context, filter store.ContractFilter) ([]types.Contract, error) {
	out := make([]types.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		out = append(out, c)
	}
	return out, nil
}

func (r *memContractRepo) Create(ctx context.Context, contract types.Contract) (types.Contract, error) {
	contract.ID = r.nextID
	r.nextID++
	r.contracts[contract.ID] = contract
	return contract, nil
}

func (r *memContractRepo) Update(ctx context.Context, contract types.Contract) (types.Contract, error) {
	if _, ok := r.contracts[contract.ID]; !ok {
		return types.Contract{}, store.ErrNotFound
	}
	r.contracts[contract.ID] = contract
	return contract, nil
}

func (r *memContractRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.contracts[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.contracts, id)
	return nil
}

type memEventRepo struct {
	nextID int
	events map[int]types.Event
}

func newMemEventRepo(events ...types.Event) *memEventRepo {
	r := &memEventRepo{nextID: 1, events: map[int]types.Event{}}
	for _, e := range events {
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
		r.events[e.ID] = e
	}
	return r
}

func (r *memEventRepo) GetByID(ctx context.Context, id int) (types.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return types.Event{}, store.ErrNotFound
	}
	return e, nil
}

func (r *memEventRepo) List(ctx context.Context, filter store.EventFilter) ([]types.Event, error) {
	out := make([]types.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, nil
}

func (r *memEventRepo) Create(ctx context.Context, event types.Event) (types.Event, error) {
	event.ID = r.nextID
	r.nextID++
	r.events[event.ID] = event
	return event, nil
}

func (r *memEventRepo) Update(ctx context.Context, event types.Event) (types.Event, error) {
	if _, ok := r.events[event.ID]; !ok {
		return types.Event{}, store.ErrNotFound
	}
	r.events[event.ID] = event
	return event, nil
}

func (r *memEventRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.events[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
