// Package service holds the business logic: account lifecycle, session
// issuance and the per-user data operations with their ownership checks.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/tusharnayak1515/users-data-backend/internal/domain"
	"github.com/tusharnayak1515/users-data-backend/internal/repository"
	"github.com/tusharnayak1515/users-data-backend/internal/token"
)

// AuthService handles registration, login and profile management.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

// NewAuthService creates an AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) *AuthService {
	if userRepo == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	if tokens == nil {
		panic("token manager cannot be nil for AuthService")
	}
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register validates the input, enforces email-then-phone uniqueness,
// stores the user with a hashed password and returns a session token.
// The plaintext password never leaves this method; the hash never
// reaches a response.
func (s *AuthService) Register(ctx context.Context, name, email, phone, password string) (string, error) {
	logCtx := logrus.WithFields(logrus.Fields{"email": email, "phone": phone})

	if err := validateRegistration(name, email, phone, password); err != nil {
		return "", err
	}

	// Email is checked before phone: when both are taken, only the
	// email conflict is reported.
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		logCtx.Warn("Registration failed: email already in use")
		return "", ErrEmailInUse
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		logCtx.WithError(err).Error("Database error checking email uniqueness")
		return "", ErrInternalServer
	}

	if _, err := s.userRepo.FindByPhone(ctx, phone); err == nil {
		logCtx.Warn("Registration failed: phone already in use")
		return "", ErrPhoneInUse
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		logCtx.WithError(err).Error("Database error checking phone uniqueness")
		return "", ErrInternalServer
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return "", ErrInternalServer
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique indexes are the backstop for concurrent
		// registrations that slipped past the checks above. The email
		// conflict is reported, consistent with the email-first policy.
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.Warn("Registration failed: unique index rejected the write")
			return "", ErrEmailInUse
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return "", ErrInternalServer
	}

	authToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue session token during registration")
		return "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User registered successfully")
	return authToken, nil
}

// Login verifies the credentials and returns a session token. A missing
// account and a wrong password are distinct errors; both map to a 400.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	logCtx := logrus.WithField("email", email)

	if err := validateLogin(email, password); err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("Login attempt failed: no account for email")
			return "", ErrNoAccount
		}
		logCtx.WithError(err).Error("Database error finding user during login")
		return "", ErrInternalServer
	}

	if !checkPassword(password, user.Password) {
		logCtx.Warn("Login attempt failed: incorrect password")
		return "", ErrIncorrectPassword
	}

	authToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue session token during login")
		return "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	return authToken, nil
}

// Profile returns the caller's own user record, looked up strictly by
// the token-derived id.
func (s *AuthService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Database error fetching profile")
		return nil, ErrInternalServer
	}
	return user, nil
}

// EditProfile updates the caller's name, email and phone. The target id
// always comes from the verified token, never from the client. The
// password is immutable through this path. Uniqueness is only checked
// for values that actually change, email before phone.
func (s *AuthService) EditProfile(ctx context.Context, userID uint, name, email, phone string) (*domain.User, error) {
	logCtx := logrus.WithField("user_id", userID)

	if err := validateProfile(name, email, phone); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logCtx.WithError(err).Error("Database error finding user for profile edit")
		return nil, ErrInternalServer
	}

	if email != user.Email {
		if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
			logCtx.Warn("Profile edit failed: email taken by another user")
			return nil, ErrEmailTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			logCtx.WithError(err).Error("Database error checking email uniqueness")
			return nil, ErrInternalServer
		}
	}

	if phone != user.Phone {
		if _, err := s.userRepo.FindByPhone(ctx, phone); err == nil {
			logCtx.Warn("Profile edit failed: phone taken by another user")
			return nil, ErrPhoneTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			logCtx.WithError(err).Error("Database error checking phone uniqueness")
			return nil, ErrInternalServer
		}
	}

	user.Name = name
	user.Email = email
	user.Phone = phone
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.Warn("Profile edit failed: unique index rejected the write")
			return nil, ErrEmailTaken
		}
		logCtx.WithError(err).Error("Database error updating profile")
		return nil, ErrInternalServer
	}

	logCtx.Info("Profile updated successfully")
	return user, nil
}

// hashPassword hashes a plaintext password with bcrypt. A fresh random
// salt is generated per call and embedded in the returned hash.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}
	return string(bytes), nil
}

// checkPassword verifies a plaintext password against a stored hash
// using the salt embedded in the hash.
func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
