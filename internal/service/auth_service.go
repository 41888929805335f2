package service

import (
	"errors"

	"collably/config"
	"collably/internal/auth"
	"collably/internal/domain"
	"collably/internal/models"
	"collably/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidCreds = errors.New("invalid email or password")
	ErrBadRole      = errors.New("role must be BRAND or INFLUENCER")
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

func (s *AuthService) Register(name, email, password, role string) (*models.User, string, string, error) {
	if role != domain.RoleBrand && role != domain.RoleInfluencer {
		return nil, "", "", ErrBadRole
	}
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", "", ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, "", "", err
	}
	return s.issueTokens(u)
}

func (s *AuthService) Login(email, password string) (*models.User, string, string, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", "", ErrInvalidCreds
	}
	return s.issueTokens(u)
}

// LoginWithGoogle finds or creates the user matched by Google subject ID.
// New Google signups default to the influencer role; brands flip it during
// onboarding.
func (s *AuthService) LoginWithGoogle(googleID, email, name, avatarURL string) (*models.User, string, string, error) {
	u, err := s.userRepo.GetByGoogleID(googleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u, err = s.userRepo.GetByEmail(email)
		if err == nil {
			u.GoogleID = &googleID
			if err := s.userRepo.Update(u); err != nil {
				return nil, "", "", err
			}
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			u = &models.User{
				Name:      name,
				Email:     email,
				GoogleID:  &googleID,
				AvatarURL: avatarURL,
				Role:      domain.RoleInfluencer,
			}
			if err := s.userRepo.Create(u); err != nil {
				return nil, "", "", err
			}
		} else {
			return nil, "", "", err
		}
	} else if err != nil {
		return nil, "", "", err
	}
	return s.issueTokens(u)
}

func (s *AuthService) Refresh(refreshToken string) (string, error) {
	userID, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", err
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
}

func (s *AuthService) issueTokens(u *models.User) (*models.User, string, string, error) {
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}
