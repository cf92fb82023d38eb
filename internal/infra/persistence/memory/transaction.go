package memory

import (
	"context"

	"authcore/internal/domain/entity"
	"authcore/internal/domain/repository"
	"authcore/internal/errors"

	"github.com/google/uuid"
)

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager over the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute holds the store lock for the whole callback and works on a private
// copy of the table. The copy replaces the live table only if fn succeeds and
// ctx is still alive.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	staged := tm.store.table.clone()
	if err := fn(&repositoryFactory{table: staged}); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "transaction aborted before commit")
	}
	tm.store.table = staged

	return nil
}

type repositoryFactory struct {
	table *table
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &txUserRepository{table: f.table}
}

// txUserRepository works on the staged table; the store lock is already held.
type txUserRepository struct {
	table *table
}

func (r *txUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.table.findByID(id)
}

func (r *txUserRepository) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.table.findByID(id)
}

func (r *txUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.table.findByEmail(email)
}

func (r *txUserRepository) Create(_ context.Context, user *entity.User) error {
	return r.table.create(user)
}

func (r *txUserRepository) Update(_ context.Context, user *entity.User) error {
	return r.table.update(user)
}
