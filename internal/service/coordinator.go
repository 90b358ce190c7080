// Package service contains the Persistence Coordinator: the single source of
// truth for reading and mutating the entry and account collections,
// abstracting over whichever backend is active.
//
// Every mutation updates the in-memory snapshot first and then attempts to
// persist through the store's read-modify-write seam. Transport failures are
// logged and swallowed: the caller sees the optimistic state, the backend
// catches up on the next successful write. Validation failures, by contrast,
// surface synchronously because they must block the action.
package service

import (
	"context"
	"strings"

	"beervault/internal/common"
	"beervault/internal/logging"
	"beervault/internal/models"
	"beervault/internal/state"
	"beervault/internal/store"
	"beervault/internal/store/localstore"
)

// sessionDoc is the remembered-session document: a reference to an account,
// not a copy of it, so a restored session always reflects the current
// collection.
type sessionDoc struct {
	AccountID string `json:"accountId"`
}

// Coordinator mediates between the state holder, the active backend and the
// local document store (which keeps the remembered session in every mode).
type Coordinator struct {
	store store.Store
	docs  *localstore.DocStore
	state *state.State
	log   logging.Logger
}

func NewCoordinator(st store.Store, docs *localstore.DocStore, log logging.Logger) *Coordinator {
	return &Coordinator{
		store: st,
		docs:  docs,
		state: state.New(),
		log:   log,
	}
}

// State exposes the snapshot holder for read-only consumers (views).
func (c *Coordinator) State() *state.State {
	return c.state
}

// Start mirrors the backend's collections into the state holder and restores
// a previously remembered session, if any. Load failures are fatal: without a
// snapshot there is nothing to coordinate.
func (c *Coordinator) Start(ctx context.Context) error {
	entries, err := c.store.LoadEntries(ctx)
	if err != nil {
		return err
	}
	accounts, err := c.store.LoadAccounts(ctx)
	if err != nil {
		return err
	}
	c.state.SetEntries(entries)
	c.state.SetAccounts(accounts)

	var sess sessionDoc
	found, err := c.docs.Get(ctx, localstore.KeySession, &sess)
	if err != nil {
		return err
	}
	if found {
		if acct := c.state.AccountByID(sess.AccountID); acct != nil {
			copied := *acct
			c.state.SetSession(&copied)
			c.log.Info(ctx, "session restored", "username", acct.Username)
		} else {
			// Stale reference, e.g. collections were reseeded.
			_ = c.docs.Delete(ctx, localstore.KeySession)
		}
	}

	c.log.Info(ctx, "coordinator started",
		"backend", c.store.Name(), "entries", len(entries), "accounts", len(accounts))
	return nil
}

// ListEntries returns the in-memory entry snapshot. Never fails.
func (c *Coordinator) ListEntries() []models.Entry {
	return c.state.Entries()
}

// ListAccounts returns the in-memory account snapshot. Never fails.
func (c *Coordinator) ListAccounts() []models.Account {
	return c.state.Accounts()
}

// AddEntry validates the draft, assigns identity, creation date and zeroed
// social counters, prepends the entry (most-recent-first default ordering),
// increments the owner's weekly counter, and persists both collections.
func (c *Coordinator) AddEntry(ctx context.Context, draft models.EntryDraft, ownerID string) (*models.Entry, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	owner := c.state.AccountByID(ownerID)
	if owner == nil {
		return nil, common.ErrorNotFound
	}

	entry := models.NewEntry(draft, owner)
	c.state.PrependEntry(*entry)

	owner.WeeklyEntryCount++
	if sess := c.state.Session(); sess != nil && sess.ID == ownerID {
		sess.WeeklyEntryCount = owner.WeeklyEntryCount
	}

	added := *entry
	c.persistEntries(ctx, "add entry", func(entries []models.Entry) []models.Entry {
		return append([]models.Entry{added}, entries...)
	})
	c.persistAccounts(ctx, "add entry", func(accounts []models.Account) []models.Account {
		for i := range accounts {
			if accounts[i].ID == ownerID {
				accounts[i].WeeklyEntryCount++
			}
		}
		return accounts
	})

	return entry, nil
}

// DeleteEntry removes the entry from memory and from the backend. Unknown ids
// are a silent no-op. Only the owner may delete; the UI confirms intent, the
// coordinator still checks ownership.
func (c *Coordinator) DeleteEntry(ctx context.Context, id, requestingAccountID string) error {
	entry := c.state.EntryByID(id)
	if entry == nil {
		return nil
	}
	if entry.OwnerID != requestingAccountID {
		return common.ErrorNotOwner
	}

	c.state.RemoveEntry(id)

	c.persistEntries(ctx, "delete entry", func(entries []models.Entry) []models.Entry {
		out := entries[:0]
		for _, e := range entries {
			if e.ID != id {
				out = append(out, e)
			}
		}
		return out
	})
	return nil
}

// ToggleLike flips the account's membership in the entry's likedBy set and
// recomputes likeCount from the set, never from the stale counter. Unknown
// entry ids are a silent no-op.
func (c *Coordinator) ToggleLike(ctx context.Context, entryID, accountID string) error {
	entry := c.state.EntryByID(entryID)
	if entry == nil {
		return nil
	}

	toggle(entry, accountID)

	c.persistEntries(ctx, "toggle like", func(entries []models.Entry) []models.Entry {
		for i := range entries {
			if entries[i].ID == entryID {
				toggle(&entries[i], accountID)
			}
		}
		return entries
	})
	return nil
}

func toggle(e *models.Entry, accountID string) {
	if e.LikedByAccount(accountID) {
		kept := e.LikedBy[:0]
		for _, id := range e.LikedBy {
			if id != accountID {
				kept = append(kept, id)
			}
		}
		e.LikedBy = kept
	} else {
		e.LikedBy = append(e.LikedBy, accountID)
	}
	e.LikeCount = len(e.LikedBy)
}

// AddComment appends a comment with a fresh id and today's date. Text that is
// empty after trimming is a silent no-op, as is an unknown entry id.
func (c *Coordinator) AddComment(ctx context.Context, entryID, authorID, authorName, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	entry := c.state.EntryByID(entryID)
	if entry == nil {
		return nil
	}

	comment := models.NewComment(authorID, authorName, text)
	entry.Comments = append(entry.Comments, comment)

	c.persistEntries(ctx, "add comment", func(entries []models.Entry) []models.Entry {
		for i := range entries {
			if entries[i].ID == entryID {
				entries[i].Comments = append(entries[i].Comments, comment)
			}
		}
		return entries
	})
	return nil
}

// RegisterAccount validates uniqueness and password strength, then appends
// the new account and persists the collection. Validation failures leave the
// collection untouched.
func (c *Coordinator) RegisterAccount(ctx context.Context, draft models.AccountDraft) (*models.Account, error) {
	if c.state.AccountByEmail(strings.TrimSpace(draft.Email)) != nil {
		return nil, common.Validation(common.ErrorEmailTaken)
	}
	if c.state.AccountByUsername(strings.TrimSpace(draft.Username)) != nil {
		return nil, common.Validation(common.ErrorUsernameTaken)
	}
	if len(draft.Password) < 6 {
		return nil, common.Validation(common.ErrorWeakPassword)
	}

	account := models.NewAccount(draft)
	c.state.AppendAccount(*account)

	added := *account
	c.persistAccounts(ctx, "register", func(accounts []models.Account) []models.Account {
		return append(accounts, added)
	})

	return account, nil
}

// Login matches email and password exactly (both case-sensitive). On success
// the account becomes the active session; with remember set, the session is
// also persisted locally for the next run. A mismatch returns
// common.ErrorInvalidCredentials and leaves everything untouched.
func (c *Coordinator) Login(ctx context.Context, email, password string, remember bool) (*models.Account, error) {
	acct := c.state.AccountByEmail(email)
	if acct == nil || acct.Password != password {
		return nil, common.ErrorInvalidCredentials
	}

	copied := *acct
	c.state.SetSession(&copied)

	if remember {
		if err := c.docs.Put(ctx, localstore.KeySession, sessionDoc{AccountID: acct.ID}); err != nil {
			c.log.Warn(ctx, "failed to remember session", "error", err)
		}
	}
	return &copied, nil
}

// Logout clears the active and remembered session. Collections are untouched.
func (c *Coordinator) Logout(ctx context.Context) {
	c.state.SetSession(nil)
	if err := c.docs.Delete(ctx, localstore.KeySession); err != nil {
		c.log.Warn(ctx, "failed to clear remembered session", "error", err)
	}
}

// persistEntries pushes a mutation through the backend's read-modify-write
// seam. Failures are logged and swallowed: the in-memory state already
// reflects the change and the user is not told otherwise.
func (c *Coordinator) persistEntries(ctx context.Context, op string, mutate func([]models.Entry) []models.Entry) {
	if err := c.store.ApplyEntries(ctx, mutate); err != nil {
		c.log.Warn(ctx, "entry persistence failed, keeping optimistic state",
			"op", op, "backend", c.store.Name(), "error", err)
	}
}

func (c *Coordinator) persistAccounts(ctx context.Context, op string, mutate func([]models.Account) []models.Account) {
	if err := c.store.ApplyAccounts(ctx, mutate); err != nil {
		c.log.Warn(ctx, "account persistence failed, keeping optimistic state",
			"op", op, "backend", c.store.Name(), "error", err)
	}
}
