// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/domain/service"
	"authcore/internal/errors"
	"authcore/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCurrentUser returns the account behind the session token.
func (srv *profileService) GetCurrentUser(ctx context.Context, subject uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, subject)
	if err != nil {
		return nil, lookupError(err, "failed to get current user")
	}

	return user, nil
}

// UpdateProfile renames the account. Ownership is checked before anything
// else, so a foreign target is rejected whether or not it exists.
func (srv *profileService) UpdateProfile(ctx context.Context, subject uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	if err := authorizeSelf(subject, input.TargetID); err != nil {
		srv.log(ctx).Warn("Profile update for foreign account rejected",
			slog.Any("subject", subject), slog.String("target", input.TargetID))

		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByIDForUpdate(ctx, subject)
		if err != nil {
			return lookupError(err, "failed to lock user")
		}

		user.Name = input.Name
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user name")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", subject))

	return updated, nil
}

// ChangePassword replaces the password hash after verifying the current password.
// The new hash is computed before the write transaction opens and written once.
func (srv *profileService) ChangePassword(ctx context.Context, subject uuid.UUID, input usecase.ChangePasswordInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByID(ctx, subject)
	if err != nil {
		return lookupError(err, "failed to load user for password change")
	}

	ok, err := srv.hasher.Check(ctx, input.CurrentPassword, user.PasswordHash)
	if err != nil {
		return errors.Wrap(err, "failed to verify current password")
	}
	if !ok {
		srv.log(ctx).Warn("Password change with wrong current password", slog.Any("userID", subject))

		return domainerrors.ErrCurrentPasswordIncorrect.WrapMessage("current password mismatch")
	}

	newHash, err := srv.hasher.Hash(ctx, input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	verifiedHash := user.PasswordHash
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		locked, err := userRepo.FindByIDForUpdate(ctx, subject)
		if err != nil {
			return lookupError(err, "failed to lock user")
		}
		// The password changed after it was verified; the caller no longer holds the current one.
		if locked.PasswordHash != verifiedHash {
			return domainerrors.ErrCurrentPasswordIncorrect.WrapMessage("password changed concurrently")
		}

		locked.PasswordHash = newHash

		return errors.Wrap(userRepo.Update(ctx, locked), "failed to store new password")
	})
	if err != nil {
		return errors.Wrap(err, "failed to change password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", subject))

	return nil
}

// UpdateSettings applies only the supplied settings and returns the account.
func (srv *profileService) UpdateSettings(ctx context.Context, subject uuid.UUID, input usecase.UpdateSettingsInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByIDForUpdate(ctx, subject)
		if err != nil {
			return lookupError(err, "failed to lock user")
		}

		user.Settings.Apply(input.Patch())
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update settings")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update settings")
	}

	srv.log(ctx).Info("Settings updated", slog.Any("userID", subject))

	return updated, nil
}

// lookupError translates the repository miss into the client-facing not-found error.
func lookupError(err error, msg string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}
