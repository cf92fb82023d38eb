// Package memory is an in-process credential store used for local development
// and end-to-end tests. It keeps the same contract as the PostgreSQL store:
// unique emails, per-transaction atomicity and copy-on-read entities.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"authcore/internal/domain/entity"
	"authcore/internal/domain/repository"
	"authcore/internal/errors"

	"github.com/google/uuid"
)

// Store owns the user table. A single mutex serializes transactions, which
// gives every Execute callback the same isolation as SELECT ... FOR UPDATE.
type Store struct {
	mu    sync.Mutex
	table *table
}

// New creates an empty store.
func New() *Store {
	return &Store{table: newTable(func() time.Time { return time.Now().UTC() })}
}

type table struct {
	byID    map[uuid.UUID]entity.User
	byEmail map[string]uuid.UUID
	now     func() time.Time
}

func newTable(now func() time.Time) *table {
	return &table{
		byID:    make(map[uuid.UUID]entity.User),
		byEmail: make(map[string]uuid.UUID),
		now:     now,
	}
}

func (t *table) clone() *table {
	return &table{
		byID:    maps.Clone(t.byID),
		byEmail: maps.Clone(t.byEmail),
		now:     t.now,
	}
}

func (t *table) findByID(id uuid.UUID) (*entity.User, error) {
	user, ok := t.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (t *table) findByEmail(email string) (*entity.User, error) {
	id, ok := t.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return t.findByID(id)
}

func (t *table) create(user *entity.User) error {
	email := entity.NormalizeEmail(user.Email)
	if _, taken := t.byEmail[email]; taken {
		return repository.ErrEmailTaken
	}

	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate user id")
		}
		user.ID = id
	}
	if _, exists := t.byID[user.ID]; exists {
		return errors.Errorf("user id %s already exists", user.ID)
	}

	now := t.now()
	user.Email = email
	user.CreatedAt = now
	user.UpdatedAt = now

	t.byID[user.ID] = *user
	t.byEmail[email] = user.ID

	return nil
}

func (t *table) update(user *entity.User) error {
	stored, ok := t.byID[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}

	stored.Name = user.Name
	stored.PasswordHash = user.PasswordHash
	stored.Settings = user.Settings
	stored.UpdatedAt = t.now()
	t.byID[user.ID] = stored

	user.UpdatedAt = stored.UpdatedAt

	return nil
}

// userRepository runs each call in its own short critical section.
type userRepository struct {
	store *Store
}

// NewUserRepository returns a repository operating outside any transaction.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.table.findByID(id)
}

// FindByIDForUpdate has nothing to lock outside a transaction.
func (r *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.FindByID(ctx, id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.table.findByEmail(email)
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.table.create(user)
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.table.update(user)
}
