package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/atompoint/storefront/internal/domain"
	"github.com/atompoint/storefront/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

const tokenTTL = 24 * time.Hour

const welcomeMessage = "Welcome to Atom Point Web!"

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBanned         = errors.New("account is banned")
)

func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("username", username))
		return nil, ErrUsernameTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Username:      username,
		PasswordHash:  hashedPassword,
		Notifications: []string{welcomeMessage},
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", username))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if user.Banned {
		zap.L().Info("banned account login attempt", zap.String("username", username))
		return nil, ErrUserBanned
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// ResolvePrincipal backs the auth middleware: it looks the token's user up in
// the active backend and projects only non-sensitive fields.
func (s *Service) ResolvePrincipal(ctx context.Context, userID int) (*auth.Principal, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't resolve principal", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &auth.Principal{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		Banned:   user.Banned,
	}, nil
}
