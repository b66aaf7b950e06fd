package services

import (
	"context"
	"net/http"
	"testing"

	"ecommerce-api/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	users map[string]*models.User // keyed by email
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) FindAll(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByIDWithOrders(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.FindByID(ctx, id)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for email, u := range m.users {
		if u.ID == id {
			delete(m.users, email)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

const testJWTSecret = "test-secret"

func TestSignup_HashesPasswordAndStripsAdmin(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewAuthService(repo, testJWTSecret)

	user, err := svc.Signup(context.Background(), &SignupRequest{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Password: "correct horse",
	})
	require.Nil(t, err)
	require.NotNil(t, user)

	assert.NotEqual(t, "correct horse", user.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("correct horse")))
	assert.False(t, user.IsAdmin)
}

func TestSignup_DuplicateEmailConflicts(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewAuthService(repo, testJWTSecret)

	req := &SignupRequest{Name: "Jane", Email: "jane@example.com", Password: "correct horse"}
	_, err := svc.Signup(context.Background(), req)
	require.Nil(t, err)

	_, err = svc.Signup(context.Background(), req)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.Code)
}

func TestSignin_IssuesTokenWithClaims(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewAuthService(repo, testJWTSecret)

	user, signupErr := svc.Signup(context.Background(), &SignupRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "correct horse",
	})
	require.Nil(t, signupErr)

	resp, err := svc.Signin(context.Background(), &SigninRequest{
		Email:    "jane@example.com",
		Password: "correct horse",
	})
	require.Nil(t, err)
	require.NotEmpty(t, resp.Token)

	token, parseErr := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, parseErr)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, false, claims["is_admin"])
}

func TestSignin_WrongPasswordIsUnauthorized(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewAuthService(repo, testJWTSecret)

	_, signupErr := svc.Signup(context.Background(), &SignupRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "correct horse",
	})
	require.Nil(t, signupErr)

	resp, err := svc.Signin(context.Background(), &SigninRequest{
		Email:    "jane@example.com",
		Password: "wrong horse",
	})
	require.NotNil(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, err.Code)
	assert.Equal(t, "Invalid email or password", err.Message)
}

func TestSignin_UnknownEmailIsUnauthorized(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), testJWTSecret)

	resp, err := svc.Signin(context.Background(), &SigninRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.NotNil(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, err.Code)
	// same message as a wrong password so the response does not leak
	// whether the account exists
	assert.Equal(t, "Invalid email or password", err.Message)
}
