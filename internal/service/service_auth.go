package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lmiranda/quest-keeper/internal/config"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/store"
	"github.com/lmiranda/quest-keeper/internal/utils"
	"github.com/lmiranda/quest-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, the JWT token
// lifecycle, and the public profile projection kept alongside the
// authoritative account record.
type authService struct {
	// userRepository is the data-access layer for the authoritative account
	// records.
	userRepository store.UserRepository

	// profileRepository is the data-access layer for the denormalized public
	// profile rows that campaign member listings read from. Writes to it are
	// best-effort: the account record stays authoritative.
	profileRepository store.ProfileRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, profileRepository store.ProfileRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		profileRepository: profileRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Email and Password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository. A
// profile row is then written best-effort: a failure there is logged and
// swallowed, since the account record remains authoritative and the profile
// can be reconciled on the next profile update.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.Password = ""
	user.PasswordHash = string(hash)
	if user.Avatar == "" {
		user.Avatar = models.DefaultAvatar
	}
	user.Name = user.FallbackName()

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.mirrorProfile(ctx, registeredUser)

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Email and Password are non-empty, looks up the
// account by email, and compares the supplied password against the stored
// bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Error().
			Str("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates the given JWT string and returns the parsed token
// with its UserID populated. Expired tokens are reported as
// ErrTokenIsExpired.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("token parsing failed: %w", err)
	}

	return token, nil
}

// CurrentUser returns the account of the given user id with display
// fallbacks applied.
//
// The account record is authoritative. The profile row is consulted only to
// fill blanks, and a profile lookup failure is logged and swallowed so a
// missing projection never blocks sign-in.
func (a *authService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if user.Name == "" || user.Avatar == "" {
		profile, profileErr := a.profileRepository.GetProfile(ctx, userID)
		if profileErr != nil {
			log.Debug().Err(profileErr).Str("user_id", userID).Msg("profile lookup failed, using account fallbacks")
		} else {
			if user.Name == "" {
				user.Name = profile.Name
			}
			if user.Avatar == "" {
				user.Avatar = profile.Avatar
			}
		}
	}

	user.Name = user.FallbackName()
	if user.Avatar == "" {
		user.Avatar = models.DefaultAvatar
	}

	return user, nil
}

// UpdateProfile changes the user's display name and avatar.
//
// The authoritative account record is written first and any failure there is
// propagated. The profile projection is then mirrored best-effort; a failure
// is logged and swallowed, leaving the projection to be reconciled by the
// next successful update.
func (a *authService) UpdateProfile(ctx context.Context, userID, name, avatar string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if avatar == "" {
		avatar = models.DefaultAvatar
	}

	if err := a.userRepository.UpdateUserMeta(ctx, userID, name, avatar); err != nil {
		log.Err(err).Str("user_id", userID).Msg("account update failed")
		return models.User{}, fmt.Errorf("account update failed: %w", err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	a.mirrorProfile(ctx, user)

	return user, nil
}

// mirrorProfile writes the public profile projection for the user. Failures
// are logged and swallowed.
func (a *authService) mirrorProfile(ctx context.Context, user models.User) {
	log := logger.FromContext(ctx)

	profile := models.Profile{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.FallbackName(),
		Avatar: user.Avatar,
	}
	if profile.Avatar == "" {
		profile.Avatar = models.DefaultAvatar
	}

	if err := a.profileRepository.UpsertProfile(ctx, profile); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("profile mirror write failed")
	}
}
