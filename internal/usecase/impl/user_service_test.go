package impl

import (
	"context"
	"testing"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/errors"
	mockRepo "authcore/internal/mocks/repository"
	mockSvc "authcore/internal/mocks/service"
	"authcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	newID := uuid.Must(uuid.NewV7())

	fx.userRepo.EXPECT().FindByEmail(ctx, "ann@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, "secret1").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = newID
		}).
		Return(nil)
	fx.tokenService.EXPECT().Issue(newID).Return("signed.token.value", nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Ann",
		Email:    " Ann@X.com ",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.Token)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, "Ann", output.User.Name)
	assert.Equal(t, "ann@x.com", output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, entity.DefaultSettings(), output.User.Settings)
}

func TestUserService_Register_ValidationStopsEarly(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.RegisterInput
		wantMsg string
	}{
		{name: "blank name", input: usecase.RegisterInput{Name: " ", Email: "a@x.com", Password: "secret1"}, wantMsg: "Name is required"},
		{name: "bad email", input: usecase.RegisterInput{Name: "Ann", Email: "a@", Password: "secret1"}, wantMsg: "Please include a valid email"},
		{name: "short password", input: usecase.RegisterInput{Name: "Ann", Email: "a@x.com", Password: "abc"}, wantMsg: "Please enter a password with 6 or more characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			output, err := fx.service.Register(context.Background(), tt.input)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			requireAppMessage(t, err, tt.wantMsg)
		})
	}
}

func TestUserService_Register_EmailAlreadyExists(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := entity.NewUser("Ann", "ann@x.com", "hash")
	fx.userRepo.EXPECT().FindByEmail(ctx, "ann@x.com").Return(existing, nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{Name: "Other", Email: "ANN@x.com", Password: "secret1"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.EqualError(t, err, "email already registered: User already exists")
	requireAppMessage(t, err, "User already exists")
}

func TestUserService_Register_EmailTakenConcurrently(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ann@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, "secret1").Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrEmailTaken)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.EqualError(t, err, "email registered concurrently: User already exists")
}

func TestUserService_Register_InfrastructureErrors(t *testing.T) {
	ctx := context.Background()
	input := usecase.RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"}
	boom := errors.New("boom")

	t.Run("lookup fails", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ann@x.com").Return(nil, boom)

		_, err := fx.service.Register(ctx, input)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("hash fails", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ann@x.com").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(ctx, "secret1").Return("", boom)

		_, err := fx.service.Register(ctx, input)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("token fails", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ann@x.com").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(ctx, "secret1").Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		fx.tokenService.EXPECT().Issue(mock.AnythingOfType("uuid.UUID")).Return("", boom)

		_, err := fx.service.Register(ctx, input)
		assert.ErrorIs(t, err, boom)

		var appErr domainerrors.AppError
		assert.False(t, errors.As(err, &appErr))
	})
}

func TestUserService_Authenticate_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := entity.NewUser("Ann", "ann@x.com", "stored_hash")
	user.ID = uuid.Must(uuid.NewV7())

	fx.userRepo.EXPECT().FindByEmail(ctx, "ann@x.com").Return(user, nil)
	fx.hasher.EXPECT().Check(ctx, "secret1", "stored_hash").Return(true, nil)
	fx.tokenService.EXPECT().Issue(user.ID).Return("signed.token.value", nil)

	output, err := fx.service.Authenticate(ctx, usecase.LoginInput{Email: "Ann@x.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.Token)
	assert.Equal(t, user, output.User)
}

func TestUserService_Authenticate_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	ctx := context.Background()

	unknown := createTestUserService(t)
	unknown.userRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)
	_, unknownErr := unknown.service.Authenticate(ctx, usecase.LoginInput{Email: "nobody@x.com", Password: "secret1"})

	wrong := createTestUserService(t)
	user := entity.NewUser("Ann", "a@x.com", "stored_hash")
	wrong.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
	wrong.hasher.EXPECT().Check(ctx, "wrong-password", "stored_hash").Return(false, nil)
	_, wrongErr := wrong.service.Authenticate(ctx, usecase.LoginInput{Email: "a@x.com", Password: "wrong-password"})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)

	var a, b domainerrors.AppError
	require.True(t, errors.As(unknownErr, &a))
	require.True(t, errors.As(wrongErr, &b))
	assert.Equal(t, a.Message(), b.Message())
	assert.Equal(t, a.HTTPCode(), b.HTTPCode())
	assert.Equal(t, "Invalid Credentials", a.Message())
}

func TestUserService_Authenticate_Validation(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Authenticate(context.Background(), usecase.LoginInput{Email: "bad", Password: "secret1"})
	requireAppMessage(t, err, "Please include a valid email")

	_, err = fx.service.Authenticate(context.Background(), usecase.LoginInput{Email: "a@x.com"})
	requireAppMessage(t, err, "Password is required")
}

func TestUserService_Authenticate_MalformedStoredHash(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	hashErr := errors.New("crypto/bcrypt: hashedSecret too short")

	user := entity.NewUser("Ann", "a@x.com", "broken")
	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
	fx.hasher.EXPECT().Check(ctx, "secret1", "broken").Return(false, hashErr)

	_, err := fx.service.Authenticate(ctx, usecase.LoginInput{Email: "a@x.com", Password: "secret1"})

	assert.ErrorIs(t, err, hashErr)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
