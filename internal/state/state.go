// Package state holds the in-memory snapshot of the two collections and the
// active session. Only the coordinator mutates it; every other consumer reads
// snapshots or derived views, which are pure computations over the snapshot.
//
// The whole application runs on a single logical thread of control, so the
// holder carries no locking.
package state

import "beervault/internal/models"

// State is the Application State Holder.
type State struct {
	entries  []models.Entry
	accounts []models.Account
	session  *models.Account
}

func New() *State {
	return &State{
		entries:  []models.Entry{},
		accounts: []models.Account{},
	}
}

// Entries returns a copy of the entry snapshot, most recent first.
func (s *State) Entries() []models.Entry {
	return append([]models.Entry(nil), s.entries...)
}

// Accounts returns a copy of the account snapshot.
func (s *State) Accounts() []models.Account {
	return append([]models.Account(nil), s.accounts...)
}

// Session returns the signed-in account, or nil.
func (s *State) Session() *models.Account {
	return s.session
}

// EntryByID returns the entry with the given id, or nil.
func (s *State) EntryByID(id string) *models.Entry {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return &s.entries[i]
		}
	}
	return nil
}

// AccountByID returns the account with the given id, or nil.
func (s *State) AccountByID(id string) *models.Account {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return &s.accounts[i]
		}
	}
	return nil
}

// AccountByEmail returns the account with the given email (case-sensitive
// compare), or nil.
func (s *State) AccountByEmail(email string) *models.Account {
	for i := range s.accounts {
		if s.accounts[i].Email == email {
			return &s.accounts[i]
		}
	}
	return nil
}

// AccountByUsername returns the account with the given username
// (case-sensitive compare), or nil.
func (s *State) AccountByUsername(username string) *models.Account {
	for i := range s.accounts {
		if s.accounts[i].Username == username {
			return &s.accounts[i]
		}
	}
	return nil
}

// EntriesByOwner returns the owner's entries in snapshot order.
func (s *State) EntriesByOwner(ownerID string) []models.Entry {
	var out []models.Entry
	for _, e := range s.entries {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out
}

// Mutators. Coordinator use only.

func (s *State) SetEntries(entries []models.Entry) {
	if entries == nil {
		entries = []models.Entry{}
	}
	s.entries = entries
}

func (s *State) SetAccounts(accounts []models.Account) {
	if accounts == nil {
		accounts = []models.Account{}
	}
	s.accounts = accounts
}

func (s *State) SetSession(a *models.Account) {
	s.session = a
}

// PrependEntry inserts e at the head so the default feed order stays
// most-recent-first.
func (s *State) PrependEntry(e models.Entry) {
	s.entries = append([]models.Entry{e}, s.entries...)
}

// RemoveEntry deletes the entry with the given id. Unknown ids are a no-op;
// it reports whether anything was removed.
func (s *State) RemoveEntry(id string) bool {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// AppendAccount adds a freshly registered account.
func (s *State) AppendAccount(a models.Account) {
	s.accounts = append(s.accounts, a)
}
