package inquiry

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"loadup-backend/internal/model"
	"loadup-backend/internal/store"
)

// Repository keeps the inquiry list as one record in the backing store. Every
// mutation reads the full list, changes it in memory and writes it back
// whole; the last writer wins.
type Repository struct {
	mu    sync.Mutex
	store store.Store
	now   func() time.Time
	newID func() string
}

// NewRepository builds a repository on top of the given store.
func NewRepository(s store.Store) *Repository {
	return &Repository{
		store: s,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Add snapshots the form into a new inquiry with status "new" and prepends it
// to the list, keeping most-recent-first order.
func (r *Repository) Add(form model.Form) (Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inq := Inquiry{
		ID:        r.newID(),
		Timestamp: r.now().UTC(),
		Form:      form,
		Status:    StatusNew,
	}
	list := r.load()
	list = append([]Inquiry{inq}, list...)
	if err := store.Write(r.store, store.KeyInquiries, list); err != nil {
		return Inquiry{}, err
	}
	return inq, nil
}

// List returns all inquiries, most recent first.
func (r *Repository) List() []Inquiry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// FindByID returns the inquiry with the given id.
func (r *Repository) FindByID(id string) (Inquiry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inq := range r.load() {
		if inq.ID == id {
			return inq, true
		}
	}
	return Inquiry{}, false
}

// UpdateStatus replaces the status of the matching inquiry and reports
// whether the id was found. An unknown id is a no-op. Transition order is the
// caller's concern, not the repository's.
func (r *Repository) UpdateStatus(id string, status Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	for i := range list {
		if list[i].ID == id {
			list[i].Status = status
			return true, store.Write(r.store, store.KeyInquiries, list)
		}
	}
	return false, nil
}

// Remove hard-deletes the matching inquiry. Removing an unknown id is a
// no-op, so the operation is idempotent.
func (r *Repository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	kept := list[:0]
	for _, inq := range list {
		if inq.ID != id {
			kept = append(kept, inq)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return store.Write(r.store, store.KeyInquiries, kept)
}

func (r *Repository) load() []Inquiry {
	return store.Read(r.store, store.KeyInquiries, []Inquiry{})
}
