package services

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/nutrilens/nutrilens-be/internal/apperr"
	"github.com/nutrilens/nutrilens-be/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory DB.
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func validSignup() SignupInput {
	return SignupInput{
		Name:            "A",
		Email:           "a@a.com",
		Password:        "12345678",
		PasswordConfirm: "12345678",
	}
}

func TestSignupCreatesUserWithoutExposingPassword(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.Signup(validSignup())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, "a@a.com", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestSignupNormalizesEmail(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	input := validSignup()
	input.Email = "  MiXeD@Example.COM "
	user, err := svc.Signup(input)
	require.NoError(t, err)
	assert.Equal(t, "mixed@example.com", user.Email)
}

func TestSignupValidation(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	tests := []struct {
		name   string
		mutate func(*SignupInput)
	}{
		{"missing name", func(in *SignupInput) { in.Name = "" }},
		{"missing email", func(in *SignupInput) { in.Email = "" }},
		{"malformed email", func(in *SignupInput) { in.Email = "not-an-email" }},
		{"short password", func(in *SignupInput) { in.Password = "1234"; in.PasswordConfirm = "1234" }},
		{"password mismatch", func(in *SignupInput) { in.PasswordConfirm = "different8" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSignup()
			tt.mutate(&input)
			_, err := svc.Signup(input)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
		})
	}
}

func TestSignupDuplicateEmailConflictLeavesSingleRecord(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	second := validSignup()
	second.Name = "B"
	_, err = svc.Signup(second)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperr.StatusOf(err))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestAuthenticateRoundTrip(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	user, err := svc.Authenticate("a@a.com", "12345678")
	require.NoError(t, err)
	assert.Equal(t, "a@a.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	// Any single-character mutation of the password must fail.
	_, err = svc.Authenticate("a@a.com", "12345679")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))
}

func TestAuthenticateDoesNotRevealAccountExistence(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate("a@a.com", "wrongpass99")
	_, unknownEmail := svc.Authenticate("nobody@a.com", "whatever99")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, apperr.MessageOf(wrongPassword), apperr.MessageOf(unknownEmail))
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(wrongPassword))
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(unknownEmail))
}

func TestAuthenticateRequiresBothFields(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Authenticate("", "12345678")
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))

	_, err = svc.Authenticate("a@a.com", "")
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
}
