package permissions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/epicevents/crm/internal/session"
	"github.com/epicevents/crm/internal/store"
	"github.com/epicevents/crm/types"
)

type fakeUsers struct {
	users map[int]types.User
}

func (f fakeUsers) GetByID(ctx context.Context, id int) (types.User, error) {
	user, ok := f.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

// fakeClients answers ownership lookups from a client id -> sales rep id map
// and counts the calls, so tests can assert a gate never reached the store.
type fakeClients struct {
	reps  map[int]int
	calls int
}

func (f *fakeClients) GetByIDForRep(ctx context.Context, id, salesRepID int) (types.Client, error) {
	f.calls++
	if rep, ok := f.reps[id]; ok && rep == salesRepID {
		return types.Client{ID: id, SalesRepID: &rep}, nil
	}
	return types.Client{}, store.ErrNotFound
}

type fakeContracts struct {
	reps  map[int]int
	calls int
}

func (f *fakeContracts) GetByIDForRep(ctx context.Context, id, salesRepID int) (types.Contract, error) {
	f.calls++
	if rep, ok := f.reps[id]; ok && rep == salesRepID {
		return types.Contract{ID: id, SalesRepID: &rep}, nil
	}
	return types.Contract{}, store.ErrNotFound
}

type fakeEvents struct {
	staff map[int]int
	calls int
}

func (f *fakeEvents) GetByIDForSupport(ctx context.Context, id, supportStaffID int) (types.Event, error) {
	f.calls++
	if rep, ok := f.staff[id]; ok && rep == supportStaffID {
		return types.Event{ID: id, SupportStaffID: rep}, nil
	}
	return types.Event{}, store.ErrNotFound
}

type fixture struct {
	eval      *Evaluator
	sessions  *session.Manager
	clients   *fakeClients
	contracts *fakeContracts
	events    *fakeEvents
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := fakeUsers{users: map[int]types.User{
		1: {ID: 1, Username: "sales1", FullName: "Sales One", Role: types.RoleSales},
		2: {ID: 2, Username: "support1", FullName: "Support One", Role: types.RoleSupport},
		3: {ID: 3, Username: "boss", FullName: "The Boss", Role: types.RoleManagement},
	}}
	sessions := session.NewManager(session.NewMemoryStore(), "test-secret", users)

	clients := &fakeClients{reps: map[int]int{10: 1}}
	contracts := &fakeContracts{reps: map[int]int{20: 1}}
	events := &fakeEvents{staff: map[int]int{30: 2}}

	return &fixture{
		eval:      NewEvaluator(sessions, clients, contracts, events),
		sessions:  sessions,
		clients:   clients,
		contracts: contracts,
		events:    events,
	}
}

func (f *fixture) login(t *testing.T, user types.User) {
	t.Helper()
	if _, err := f.sessions.Issue(user, time.Hour); err != nil {
		t.Fatalf("issue session: %v", err)
	}
}

func salesUser() types.User {
	return types.User{ID: 1, Username: "sales1", FullName: "Sales One", Role: types.RoleSales}
}

func supportUser() types.User {
	return types.User{ID: 2, Username: "support1", FullName: "Support One", Role: types.RoleSupport}
}

func managementUser() types.User {
	return types.User{ID: 3, Username: "boss", FullName: "The Boss", Role: types.RoleManagement}
}

func TestRequireNotLoggedIn(t *testing.T) {
	f := newFixture(t)

	_, err := f.eval.Require(context.Background(), Target{ClientID: 10}, f.eval.SalesClientRep)
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("err = %v, want ErrNotLoggedIn", err)
	}
	if got, want := err.Error(), "User not logged in. Please log in."; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
	// The login gate fails before any ownership lookup runs.
	if f.clients.calls != 0 {
		t.Fatalf("ownership lookup ran %d times before login", f.clients.calls)
	}
}

func TestRequireDeletedUser(t *testing.T) {
	f := newFixture(t)
	f.login(t, types.User{ID: 99, Username: "ghost", Role: types.RoleSales})

	_, err := f.eval.Require(context.Background(), Target{})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
	if !IsAuthentication(err) {
		t.Fatal("expected an authentication error")
	}
}

func TestRequireReturnsSessionUser(t *testing.T) {
	f := newFixture(t)
	f.login(t, salesUser())

	user, err := f.eval.Require(context.Background(), Target{})
	if err != nil {
		t.Fatalf("require: %v", err)
	}
	if user.ID != 1 || user.Role != types.RoleSales {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestManagementOnly(t *testing.T) {
	f := newFixture(t)

	f.login(t, managementUser())
	if _, err := f.eval.Require(context.Background(), Target{}, f.eval.ManagementOnly); err != nil {
		t.Fatalf("management denied: %v", err)
	}

	f.login(t, salesUser())
	_, err := f.eval.Require(context.Background(), Target{}, f.eval.ManagementOnly)
	if !IsAuthorization(err) {
		t.Fatalf("err = %v, want authorization error", err)
	}
	if got, want := err.Error(), "You do not have permission to perform this action."; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestSalesOnly(t *testing.T) {
	f := newFixture(t)

	f.login(t, salesUser())
	if _, err := f.eval.Require(context.Background(), Target{}, f.eval.SalesOnly); err != nil {
		t.Fatalf("sales denied: %v", err)
	}

	f.login(t, supportUser())
	if _, err := f.eval.Require(context.Background(), Target{}, f.eval.SalesOnly); !IsAuthorization(err) {
		t.Fatalf("err = %v, want authorization error", err)
	}
}

func TestSalesClientRep(t *testing.T) {
	f := newFixture(t)
	f.login(t, salesUser())

	if _, err := f.eval.Require(context.Background(), Target{ClientID: 10}, f.eval.SalesClientRep); err != nil {
		t.Fatalf("assigned rep denied: %v", err)
	}

	// Client 11 exists for someone else (or not at all): same denial either
	// way, the lookup only proves the actor's own assignment.
	_, err := f.eval.Require(context.Background(), Target{ClientID: 11}, f.eval.SalesClientRep)
	if !IsAuthorization(err) {
		t.Fatalf("err = %v, want authorization error", err)
	}
	want := "Access denied. You are not the Sales Representative assigned to this client."
	if got := err.Error(); got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}

	f.login(t, supportUser())
	f.clients.calls = 0
	_, err = f.eval.Require(context.Background(), Target{ClientID: 10}, f.eval.SalesClientRep)
	if !IsAuthorization(err) {
		t.Fatalf("err = %v, want authorization error", err)
	}
	if f.clients.calls != 0 {
		t.Fatal("role mismatch must deny before the ownership lookup")
	}
}

func TestContractSalesRepOrManagement(t *testing.T) {
	f := newFixture(t)

	f.login(t, salesUser())
	if _, err := f.eval.Require(context.Background(), Target{ContractID: 20}, f.eval.ContractSalesRepOrManagement); err != nil {
		t.Fatalf("assigned rep denied: %v", err)
	}

	_, err := f.eval.Require(context.Background(), Target{ContractID: 21}, f.eval.ContractSalesRepOrManagement)
	want := "Access denied. You are not the sales person assigned to this contract."
	if err == nil || err.Error() != want {
		t.Fatalf("err = %v, want %q", err, want)
	}

	// Management passes without touching the contract at all, even for an
	// id nothing resolves.
	f.login(t, managementUser())
	f.contracts.calls = 0
	if _, err := f.eval.Require(context.Background(), Target{ContractID: 999}, f.eval.ContractSalesRepOrManagement); err != nil {
		t.Fatalf("management denied: %v", err)
	}
	if f.contracts.calls != 0 {
		t.Fatal("management must bypass the ownership lookup")
	}

	f.login(t, supportUser())
	if _, err := f.eval.Require(context.Background(), Target{ContractID: 20}, f.eval.ContractSalesRepOrManagement); !IsAuthorization(err) {
		t.Fatalf("err = %v, want authorization error", err)
	}
}

func TestEventSupportOrManagement(t *testing.T) {
	f := newFixture(t)

	f.login(t, supportUser())
	if _, err := f.eval.Require(context.Background(), Target{EventID: 30}, f.eval.EventSupportOrManagement); err != nil {
		t.Fatalf("assigned staff denied: %v", err)
	}

	_, err := f.eval.Require(context.Background(), Target{EventID: 31}, f.eval.EventSupportOrManagement)
	want := "Access denied. You are not the Support staff assigned to this event."
	if err == nil || err.Error() != want {
		t.Fatalf("err = %v, want %q", err, want)
	}

	f.login(t, managementUser())
	f.events.calls = 0
	if _, err := f.eval.Require(context.Background(), Target{EventID: 999}, f.eval.EventSupportOrManagement); err != nil {
		t.Fatalf("management denied: %v", err)
	}
	if f.events.calls != 0 {
		t.Fatal("management must bypass the assignment lookup")
	}

	f.login(t, salesUser())
	if _, err := f.eval.Require(context.Background(), Target{EventID: 30}, f.eval.EventSupportOrManagement); !IsAuthorization(err) {
		t.Fatalf("err = %v, want authorization error", err)
	}
}

func TestSalesEventAccess(t *testing.T) {
	f := newFixture(t)

	f.login(t, salesUser())
	if _, err := f.eval.Require(context.Background(), Target{ContractID: 20}, f.eval.SalesEventAccess); err != nil {
		t.Fatalf("assigned rep denied: %v", err)
	}

	_, err := f.eval.Require(context.Background(), Target{ContractID: 21}, f.eval.SalesEventAccess)
	want := "Access denied. You are not the sales person assigned to this event."
	if err == nil || err.Error() != want {
		t.Fatalf("err = %v, want %q", err, want)
	}

	f.login(t, managementUser())
	if _, err := f.eval.Require(context.Background(), Target{ContractID: 20}, f.eval.SalesEventAccess); !IsAuthorization(err) {
		t.Fatalf("err = %v, want authorization error", err)
	}
}

func TestGatesRunInOrder(t *testing.T) {
	f := newFixture(t)
	f.login(t, supportUser())

	// SalesOnly fails first, so the ownership gate behind it never runs.
	_, err := f.eval.Require(context.Background(), Target{ClientID: 10},
		f.eval.SalesOnly, f.eval.SalesClientRep)
	if !IsAuthorization(err) {
		t.Fatalf("err = %v, want authorization error", err)
	}
	if f.clients.calls != 0 {
		t.Fatal("second gate ran after the first denied")
	}
}
