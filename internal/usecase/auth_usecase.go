package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
	"unicode"

	"recruitme/internal/entity"
	"recruitme/internal/repo/persistent"
	"recruitme/pkg/email"
	"recruitme/pkg/jwt"
	"recruitme/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Signup(ctx context.Context, emailAddr, password string) (*entity.User, error)
	Login(emailAddr, password string) (*entity.User, string, error)
	ForgotPassword(ctx context.Context, emailAddr string) error
	ResetPassword(token, newPassword string) error
	VerifyEmail(token string) error
	ResendVerification(ctx context.Context, userID string) error
	DeleteAccount(userID, password string) error
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	profileRepo persistent.ProfileRepository
	tokenRepo   persistent.TokenRepository
	jwtService  *jwt.Service
	emailSender email.Sender
	storage     ImageStorage
	logger      *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	profileRepo persistent.ProfileRepository,
	tokenRepo persistent.TokenRepository,
	jwtService *jwt.Service,
	emailSender email.Sender,
	storage ImageStorage,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		jwtService:  jwtService,
		emailSender: emailSender,
		storage:     storage,
		logger:      logger,
	}
}

func (uc *authUseCase) Signup(ctx context.Context, emailAddr, password string) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetByEmail(emailAddr); err == nil {
		return nil, entity.NewValidationError("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process signup")
	}

	user := &entity.User{
		Email:    emailAddr,
		Password: string(hashedPassword),
	}
	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user")
	}

	// Verification email is best-effort; the athlete can request a
	// resend from the dashboard.
	if err := uc.sendVerification(ctx, user); err != nil {
		uc.logger.Error("Failed to send verification email to %s: %v", user.Email, err)
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) Login(emailAddr, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(emailAddr)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", entity.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", entity.ErrUnauthorized)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

// ForgotPassword never reveals whether the email belongs to an account:
// the caller gets the same success answer either way.
func (uc *authUseCase) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := uc.userRepo.GetByEmail(emailAddr)
	if err != nil {
		return nil
	}

	token := &entity.AuthToken{
		UserID:    user.ID,
		Kind:      entity.TokenKindPasswordReset,
		Token:     randomToken(),
		ExpiresAt: time.Now().Add(entity.PasswordResetTokenTTL),
	}
	if err := uc.tokenRepo.Replace(token); err != nil {
		uc.logger.Error("Failed to store password reset token: %v", err)
		return fmt.Errorf("failed to process request")
	}

	if err := uc.emailSender.SendPasswordReset(ctx, user.Email, token.Token); err != nil {
		uc.logger.Error("Failed to send password reset email to %s: %v", user.Email, err)
	}
	return nil
}

func (uc *authUseCase) ResetPassword(token, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	resetToken, err := uc.lookupToken(entity.TokenKindPasswordReset, token, "Invalid or expired reset token")
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return fmt.Errorf("failed to reset password")
	}

	if err := uc.tokenRepo.ConsumePasswordReset(resetToken, string(hashedPassword)); err != nil {
		uc.logger.Error("Failed to consume reset token: %v", err)
		return fmt.Errorf("failed to reset password")
	}
	return nil
}

func (uc *authUseCase) VerifyEmail(token string) error {
	verificationToken, err := uc.lookupToken(entity.TokenKindEmailVerification, token, "Invalid or expired verification link")
	if err != nil {
		return err
	}

	if err := uc.tokenRepo.ConsumeEmailVerification(verificationToken); err != nil {
		uc.logger.Error("Failed to consume verification token: %v", err)
		return fmt.Errorf("failed to verify email")
	}
	return nil
}

func (uc *authUseCase) ResendVerification(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if user.EmailVerified {
		return entity.NewValidationError("email is already verified")
	}

	if err := uc.sendVerification(ctx, user); err != nil {
		uc.logger.Error("Failed to send verification email to %s: %v", user.Email, err)
		return fmt.Errorf("failed to send verification email")
	}
	return nil
}

func (uc *authUseCase) DeleteAccount(userID, password string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return fmt.Errorf("incorrect password: %w", entity.ErrUnauthorized)
	}

	uc.deleteStoredImages(user)

	if err := uc.userRepo.DeleteAccount(user); err != nil {
		uc.logger.Error("Failed to delete account %s: %v", user.ID, err)
		return fmt.Errorf("failed to delete account")
	}

	uc.logger.Info("Deleted account %s", user.ID)
	return nil
}

// deleteStoredImages best-effort removes profile images from object
// storage before the rows go away.
func (uc *authUseCase) deleteStoredImages(user *entity.User) {
	for _, profileID := range []*string{user.DraftProfileID, user.PublishedProfileID} {
		if profileID == nil {
			continue
		}
		profile, err := uc.profileRepo.GetByID(*profileID)
		if err != nil || profile.ProfileImageURL == "" {
			continue
		}
		if err := uc.storage.DeleteFileByURL(profile.ProfileImageURL); err != nil {
			uc.logger.Warn("Failed to delete stored image for profile %s: %v", profile.ID, err)
		}
	}
}

func (uc *authUseCase) sendVerification(ctx context.Context, user *entity.User) error {
	token := &entity.AuthToken{
		UserID:    user.ID,
		Kind:      entity.TokenKindEmailVerification,
		Token:     randomToken(),
		ExpiresAt: time.Now().Add(entity.EmailVerificationTokenTTL),
	}
	if err := uc.tokenRepo.Replace(token); err != nil {
		return err
	}
	return uc.emailSender.SendEmailVerification(ctx, user.Email, token.Token)
}

// lookupToken fetches a single-use token, treating missing, expired and
// already-used tokens as validation failures. Expired tokens are
// deleted on detection.
func (uc *authUseCase) lookupToken(kind, token, invalidMessage string) (*entity.AuthToken, error) {
	found, err := uc.tokenRepo.GetByToken(kind, token)
	if err != nil {
		return nil, entity.NewValidationError("%s", invalidMessage)
	}

	if found.Expired(time.Now()) {
		if err := uc.tokenRepo.Delete(found.ID); err != nil {
			uc.logger.Warn("Failed to delete expired token %s: %v", found.ID, err)
		}
		return nil, entity.NewValidationError("%s", invalidMessage)
	}

	if found.Used() {
		return nil, entity.NewValidationError("this link has already been used")
	}

	return found, nil
}

func randomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return hex.EncodeToString(b)
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return entity.NewValidationError("password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return entity.NewValidationError("password must contain at least one uppercase letter")
	case !hasLower:
		return entity.NewValidationError("password must contain at least one lowercase letter")
	case !hasDigit:
		return entity.NewValidationError("password must contain at least one number")
	case !hasSpecial:
		return entity.NewValidationError("password must contain at least one special character")
	}
	return nil
}
