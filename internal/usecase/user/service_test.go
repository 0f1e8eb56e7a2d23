package user

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"freight-match/internal/config"
	domainUser "freight-match/internal/domain/user"
	"freight-match/internal/logger"
	appErrors "freight-match/pkg/errors"
	"freight-match/pkg/utils"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	m.Run()
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domainUser.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domainUser.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domainUser.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domainUser.ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID uuid.UUID) (*domainUser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, domainUser.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domainUser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainUser.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *domainUser.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return domainUser.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*domainUser.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var users []*domainUser.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, int64(len(users)), nil
}

func (r *fakeUserRepo) SetDeviceToken(_ context.Context, userID uuid.UUID, token, platform string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domainUser.ErrUserNotFound
	}
	u.DeviceToken = &token
	u.DevicePlatform = &platform
	return nil
}

func (r *fakeUserRepo) ClearDeviceToken(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domainUser.ErrUserNotFound
	}
	u.DeviceToken = nil
	u.DevicePlatform = nil
	return nil
}

func (r *fakeUserRepo) FindDriversByVehicleType(_ context.Context, _ string) ([]*domainUser.User, error) {
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret-0123456789",
			ExpiryHours: 24,
		},
	}
}

func validRegisterRequest() *RegisterRequest {
	return &RegisterRequest{
		Email:    "driver@test.com",
		Name:     "Test Driver",
		Password: "Str0ngPass",
		Role:     "driver",
	}
}

func TestRegister(t *testing.T) {
	service := NewService(newFakeUserRepo(), testConfig())

	resp, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "driver@test.com", resp.User.Email)
	assert.Equal(t, "driver", resp.User.Role)
	assert.True(t, resp.User.IsActive)
	assert.False(t, resp.User.HasDevice)

	claims, err := utils.ValidateToken(resp.Token, "test-secret-0123456789")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "driver", claims.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service := NewService(newFakeUserRepo(), testConfig())

	_, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, domainUser.ErrEmailTaken)
}

func TestRegister_WeakPassword(t *testing.T) {
	service := NewService(newFakeUserRepo(), testConfig())

	for _, password := range []string{"short", "alllowercase1", "ALLUPPERCASE1", "NoNumbersHere"} {
		req := validRegisterRequest()
		req.Password = password

		_, err := service.Register(context.Background(), req)
		assert.Error(t, err, "password %q should be rejected", password)
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	service := NewService(newFakeUserRepo(), testConfig())

	req := validRegisterRequest()
	req.Role = "superuser"

	_, err := service.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	service := NewService(newFakeUserRepo(), testConfig())

	_, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &LoginRequest{
		Email:    "driver@test.com",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	service := NewService(newFakeUserRepo(), testConfig())

	_, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &LoginRequest{
		Email:    "driver@test.com",
		Password: "WrongPass1",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	// Unknown email is reported distinctly from a wrong password.
	_, err = service.Login(context.Background(), &LoginRequest{
		Email:    "nobody@test.com",
		Password: "Str0ngPass",
	})
	assert.ErrorIs(t, err, domainUser.ErrUserNotFound)
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo, testConfig())

	resp, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	stored.IsActive = false

	_, err = service.Login(context.Background(), &LoginRequest{
		Email:    "driver@test.com",
		Password: "Str0ngPass",
	})
	assert.ErrorIs(t, err, appErrors.ErrUserInactive)
}

func TestRegisterDevice(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewService(repo, testConfig())

	resp, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	err = service.RegisterDevice(context.Background(), resp.User.ID, &RegisterDeviceRequest{
		DeviceToken: "expo-push-token-123",
		Platform:    "android",
	})
	require.NoError(t, err)

	profile, err := service.GetProfile(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.True(t, profile.HasDevice)

	err = service.UnregisterDevice(context.Background(), resp.User.ID)
	require.NoError(t, err)

	profile, err = service.GetProfile(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.False(t, profile.HasDevice)
}

func TestUpdateProfile(t *testing.T) {
	service := NewService(newFakeUserRepo(), testConfig())

	resp, err := service.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	name := "Renamed Driver"
	phone := "+55 (41) 99999-0000"
	updated, err := service.UpdateProfile(context.Background(), resp.User.ID, &UpdateProfileRequest{
		Name:  &name,
		Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Driver", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+55 (41) 99999-0000", *updated.Phone)
}
