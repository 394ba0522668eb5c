package service

import (
	"context"
	"testing"

	"github.com/arkanadhi/lokapasar/config"
	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/internal/dto"
	"github.com/arkanadhi/lokapasar/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserFixture() (*fakeUserRepository, UserService) {
	repo := newFakeUserRepository()
	svc := CreateUserService(repo, config.Config{JWTSecret: "test-secret"})
	return repo, svc
}

func Test_AddUser(t *testing.T) {
	type TestCase struct {
		Name        string
		Request     dto.UserRequest
		Seed        func(repo *fakeUserRepository)
		ExpectedErr error
	}

	testCases := []TestCase{
		{
			Name: "Valid customer registration",
			Request: dto.UserRequest{
				Name:     "Dewi",
				Email:    "dewi@example.com",
				Password: "123456",
				Role:     domain.RoleCustomer,
			},
		},
		{
			Name: "Valid seller registration",
			Request: dto.UserRequest{
				Name:     "Budi",
				Email:    "budi@example.com",
				Password: "123456",
				Role:     domain.RoleSeller,
			},
		},
		{
			Name: "Duplicate email",
			Request: dto.UserRequest{
				Name:     "Dewi",
				Email:    "dewi@example.com",
				Password: "123456",
				Role:     domain.RoleCustomer,
			},
			Seed: func(repo *fakeUserRepository) {
				repo.seed(domain.User{Email: "dewi@example.com", ExternalID: "existing"})
			},
			ExpectedErr: errs.ErrEmailAlreadyUsed,
		},
		{
			Name: "Invalid email",
			Request: dto.UserRequest{
				Name:     "Dewi",
				Email:    "not-an-email",
				Password: "123456",
				Role:     domain.RoleCustomer,
			},
			ExpectedErr: errs.ErrInvalidEmail,
		},
		{
			Name: "Short password",
			Request: dto.UserRequest{
				Name:     "Dewi",
				Email:    "dewi@example.com",
				Password: "12345",
				Role:     domain.RoleCustomer,
			},
			ExpectedErr: errs.ErrWeakPassword,
		},
		{
			Name: "Unknown role",
			Request: dto.UserRequest{
				Name:     "Dewi",
				Email:    "dewi@example.com",
				Password: "123456",
				Role:     "admin",
			},
			ExpectedErr: errs.ErrInvalidRole,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			repo, svc := newUserFixture()
			if tc.Seed != nil {
				tc.Seed(repo)
			}

			err := svc.AddUser(context.Background(), tc.Request)

			if tc.ExpectedErr != nil {
				require.ErrorIs(t, err, tc.ExpectedErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, repo.users, 1)

			user := repo.users[0]
			assert.Equal(t, tc.Request.Role, user.Role)
			assert.NotEmpty(t, user.ExternalID)
			assert.NotEqual(t, tc.Request.Password, user.HashedPassword)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(tc.Request.Password)))
		})
	}
}

func Test_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	type TestCase struct {
		Name        string
		Request     dto.UserRequest
		Seed        func(repo *fakeUserRepository)
		ExpectedErr error
	}

	seedActive := func(repo *fakeUserRepository) {
		repo.seed(domain.User{
			ExternalID:     "01J0000000000000000000TEST",
			Name:           "Dewi",
			Email:          "dewi@example.com",
			HashedPassword: string(hash),
			Role:           domain.RoleCustomer,
		})
	}

	testCases := []TestCase{
		{
			Name:    "Valid credentials",
			Request: dto.UserRequest{Email: "dewi@example.com", Password: "123456"},
			Seed:    seedActive,
		},
		{
			Name:        "Unknown email",
			Request:     dto.UserRequest{Email: "nobody@example.com", Password: "123456"},
			Seed:        seedActive,
			ExpectedErr: errs.ErrAccountNotFound,
		},
		{
			Name:        "Wrong password",
			Request:     dto.UserRequest{Email: "dewi@example.com", Password: "654321"},
			Seed:        seedActive,
			ExpectedErr: errs.ErrInvalidCredentialsEmail,
		},
		{
			Name:    "Disabled account",
			Request: dto.UserRequest{Email: "dewi@example.com", Password: "123456"},
			Seed: func(repo *fakeUserRepository) {
				repo.seed(domain.User{
					Email:          "dewi@example.com",
					HashedPassword: string(hash),
					Role:           domain.RoleCustomer,
					Disabled:       true,
				})
			},
			ExpectedErr: errs.ErrAccountDisabled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			repo, svc := newUserFixture()
			tc.Seed(repo)

			resp, err := svc.Login(context.Background(), tc.Request)

			if tc.ExpectedErr != nil {
				require.ErrorIs(t, err, tc.ExpectedErr)
				assert.Empty(t, resp.Token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, "01J0000000000000000000TEST", resp.ExternalID)
			assert.Equal(t, "Dewi", resp.Name)
			assert.Equal(t, domain.RoleCustomer, resp.Role)
		})
	}
}

func Test_GetProfile(t *testing.T) {
	repo, svc := newUserFixture()
	repo.seed(domain.User{ExternalID: "ext-1", Name: "Dewi", Email: "dewi@example.com", Role: domain.RoleCustomer, CreatedAt: 42})

	t.Run("Existing account", func(t *testing.T) {
		resp, err := svc.GetProfile(context.Background(), "ext-1")
		require.NoError(t, err)
		assert.Equal(t, "Dewi", resp.Name)
		assert.Equal(t, "dewi@example.com", resp.Email)
		assert.Equal(t, int64(42), resp.CreatedAt)
	})

	t.Run("Unknown account", func(t *testing.T) {
		_, err := svc.GetProfile(context.Background(), "ext-2")
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func Test_UpdateProfile(t *testing.T) {
	repo, svc := newUserFixture()
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.seed(domain.User{ExternalID: "ext-1", Name: "Dewi", Email: "dewi@example.com", HashedPassword: string(hash), Role: domain.RoleCustomer})

	t.Run("Name change", func(t *testing.T) {
		err := svc.UpdateProfile(context.Background(), "ext-1", dto.UpdateProfileRequest{Name: "Dewi Lestari"})
		require.NoError(t, err)
		assert.Equal(t, "Dewi Lestari", repo.users[0].Name)
	})

	t.Run("Password change is rehashed", func(t *testing.T) {
		err := svc.UpdateProfile(context.Background(), "ext-1", dto.UpdateProfileRequest{Password: "654321"})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users[0].HashedPassword), []byte("654321")))
	})

	t.Run("Short password is rejected", func(t *testing.T) {
		err := svc.UpdateProfile(context.Background(), "ext-1", dto.UpdateProfileRequest{Password: "1"})
		assert.ErrorIs(t, err, errs.ErrWeakPassword)
	})

	t.Run("Role survives the update", func(t *testing.T) {
		assert.Equal(t, domain.RoleCustomer, repo.users[0].Role)
	})
}
