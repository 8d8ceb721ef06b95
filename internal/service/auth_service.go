package service

import (
	"errors"

	"sauvetage/config"
	"sauvetage/internal/auth"
	"sauvetage/internal/models"
	"sauvetage/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCreds = errors.New("invalid email or password")
	ErrEmailExists  = errors.New("email already registered")
)

type AuthService struct {
	cfg       *config.Config
	adminRepo *repository.AdminRepository
}

func NewAuthService(cfg *config.Config, adminRepo *repository.AdminRepository) *AuthService {
	return &AuthService{cfg: cfg, adminRepo: adminRepo}
}

func (s *AuthService) Login(email, password string) (*models.Admin, string, error) {
	a, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, a.ID, a.Email, a.Role)
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

func (s *AuthService) ChangePassword(adminID uint, current, next string) error {
	a, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(current)) != nil {
		return ErrInvalidCreds
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.adminRepo.UpdatePassword(a.ID, string(hash))
}

// CreateAdmin provisions a staff account with a bcrypt-hashed password.
func (s *AuthService) CreateAdmin(email, password, prenom, nom, role string) (*models.Admin, error) {
	if _, err := s.adminRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	a := &models.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Prenom:       prenom,
		Nom:          nom,
		Role:         role,
	}
	if err := s.adminRepo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}
