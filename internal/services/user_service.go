package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nutrilens/nutrilens-be/internal/apperr"
	"github.com/nutrilens/nutrilens-be/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the mobile backend has always used.
const bcryptCost = 12

// SignupInput is the validated signup payload. PasswordConfirm is
// write-only and never persisted.
type SignupInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Signup(input SignupInput) (models.User, error)
	Authenticate(email, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
}

// UserService provides signup and credential verification.
type UserService struct {
	db       *sql.DB
	validate *validator.Validate
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db, validate: validator.New()}
}

// Signup validates the payload, hashes the password and persists a new
// user. The unique index on email is the sole arbiter when two signups
// race on the same address.
func (s *UserService) Signup(input SignupInput) (models.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.User{}, apperr.Validation("%s", signupValidationMessage(err))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        normalizeEmail(input.Email),
		PasswordHash: string(hashedPassword),
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, name, email, password_hash) VALUES(?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(user.ID, user.Name, user.Email, user.PasswordHash); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, apperr.Conflict("email already in use")
		}
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies a user's credentials. Unknown email and wrong
// password return the identical error so responses never reveal whether
// an account exists.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, apperr.Validation("please provide email and password")
	}

	user, err := s.getUserByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apperr.Authentication("incorrect email or password")
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, apperr.Authentication("incorrect email or password")
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apperr.NotFound("user not found")
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) getUserByEmail(email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// signupValidationMessage maps the first validator failure to the
// message wording the client displays.
func signupValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid signup payload"
	}
	f := verrs[0]
	switch {
	case f.Field() == "Email" && f.Tag() == "email":
		return "please enter a valid email"
	case f.Field() == "Password" && f.Tag() == "min":
		return "password must be at least 8 characters"
	case f.Field() == "PasswordConfirm" && f.Tag() == "eqfield":
		return "passwords do not match"
	case f.Tag() == "required":
		return fmt.Sprintf("please enter your %s", strings.ToLower(f.Field()))
	default:
		return "invalid signup payload"
	}
}
