package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/transport/api/tokens"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"golang.org/x/crypto/bcrypt"
)

const JWTTokenExpire = 1 * time.Hour

type AuthService struct {
	uow            uow.UOW
	adminRepo      AdminUserRepository
	jwtTokenSecret []byte
}

func NewAuthService(u uow.UOW, jwtTokenSecret []byte) (*AuthService, error) {
	adminRepo, repoErr := uow.GetRepositoryAs[AdminUserRepository](u, uow.RepositoryName(repoargs.AdminUserRepoName))
	if repoErr != nil {
		return nil, repoErr
	}
	return &AuthService{
		uow:            u,
		adminRepo:      adminRepo,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type LoginArgs struct {
	Username string
	Password string
}

// Login проверяет пару логин/пароль и выдает jwt токен. При неверном пароле
// возвращает domain.ErrPasswordMissMatch, при неизвестном логине -
// domain.ErrRecordNotFound.
func (s *AuthService) Login(ctx context.Context, args LoginArgs) (*domain.AdminUser, string, error) {
	admin, findErr := s.adminRepo.FindByUsername(ctx, args.Username)
	if findErr != nil {
		return nil, "", fmt.Errorf("admin login: %w", findErr)
	}

	if !s.comparePasswords(admin.Password, args.Password) {
		return nil, "", fmt.Errorf("admin login: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateAdminJWT(admin.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("admin login: %s", tokenErr.Error())
	}
	return admin, token, nil
}

type RegisterArgs struct {
	Username string
	Password string
}

// Register создает первого администратора. Когда администраторы уже есть,
// регистрация закрыта и возвращается ErrRegistrationClosed.
var ErrRegistrationClosed = errors.New("admin registration is closed")

func (s *AuthService) Register(ctx context.Context, args RegisterArgs) (*domain.AdminUser, string, error) {
	password, hashErr := s.hashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering admin: %s", hashErr.Error())
	}

	var admin *domain.AdminUser
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		adminRepo, repoErr := uow.GetAs[AdminUserRepository](tx, uow.RepositoryName(repoargs.AdminUserRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		count, countErr := adminRepo.Count(c)
		if countErr != nil {
			return countErr //nolint:wrapcheck
		}
		if count > 0 {
			return ErrRegistrationClosed
		}

		var createErr, tokenErr error
		admin, createErr = adminRepo.Create(c, repoargs.CreateAdminUser{
			Username: args.Username,
			Password: password,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		token, tokenErr = tokens.GenerateAdminJWT(admin.ID, JWTTokenExpire, s.jwtTokenSecret)
		return tokenErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering admin: %w", txErr)
	}
	return admin, token, nil
}

func (s *AuthService) hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (s *AuthService) comparePasswords(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
