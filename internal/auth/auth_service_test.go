package auth

import (
	"context"
	"testing"
	"time"

	autherrors "go-presensi/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	getByUsernameFn  func(ctx context.Context, username string) (*User, error)
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*User, error)
	createFn         func(ctx context.Context, u *User) error
	updatePasswordFn func(ctx context.Context, id uuid.UUID, hashed string) error
}

func (f *fakeRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	return f.getByUsernameFn(ctx, username)
}
func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeRepo) Create(ctx context.Context, u *User) error { return f.createFn(ctx, u) }
func (f *fakeRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hashed string) error {
	return f.updatePasswordFn(ctx, id, hashed)
}

const testSecret = "unit-test-secret"

func testUser(t *testing.T, password string) *User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &User{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		Username:   "budi",
		Name:       "Budi Santoso",
		Password:   string(hashed),
		Role:       "EMPLOYEE",
	}
}

func TestService_Login(t *testing.T) {
	user := testUser(t, "rahasia123")
	repo := &fakeRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*User, error) {
			if username == "budi" {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo, testSecret)

	t.Run("login sukses menghasilkan token valid", func(t *testing.T) {
		access, refresh, resp, err := svc.Login(context.Background(), "budi", "rahasia123")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, "EMPLOYEE", resp.Role)

		token, err := jwt.Parse(access, func(token *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, user.EmployeeID.String(), claims["employee_id"])
	})

	t.Run("password salah ditolak", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "budi", "salah")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("user tidak ada ditolak", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "siapa", "rahasia123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_RefreshToken(t *testing.T) {
	user := testUser(t, "rahasia123")
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo, testSecret).(*service)

	refresh, err := svc.generateToken(user, time.Hour)
	assert.NoError(t, err)

	access, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, user.Username, resp.Username)

	t.Run("token sembarangan ditolak", func(t *testing.T) {
		_, _, _, err := svc.RefreshToken(context.Background(), "bukan-token")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestService_ChangePassword(t *testing.T) {
	user := testUser(t, "lama12345")
	var savedHash string
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*User, error) { return user, nil },
		updatePasswordFn: func(ctx context.Context, id uuid.UUID, hashed string) error {
			savedHash = hashed
			return nil
		},
	}
	svc := NewService(repo, testSecret)

	err := svc.ChangePassword(context.Background(), user.ID.String(), ChangePasswordRequest{
		OldPassword: "lama12345",
		NewPassword: "baru12345",
	})
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedHash), []byte("baru12345")))

	t.Run("password lama salah ditolak", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), user.ID.String(), ChangePasswordRequest{
			OldPassword: "ngawur",
			NewPassword: "baru12345",
		})
		assert.ErrorIs(t, err, autherrors.ErrWrongOldPassword)
	})
}
