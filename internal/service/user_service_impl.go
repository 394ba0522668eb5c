package service

import (
	"context"
	"net/mail"

	"github.com/arkanadhi/lokapasar/config"
	"github.com/arkanadhi/lokapasar/internal/domain"
	"github.com/arkanadhi/lokapasar/internal/dto"
	"github.com/arkanadhi/lokapasar/internal/repository"
	"github.com/arkanadhi/lokapasar/pkg/errs"
	"github.com/arkanadhi/lokapasar/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
}

func CreateUserService(repo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

func (s *UserServiceImpl) AddUser(ctx context.Context, data dto.UserRequest) (err error) {
	if _, err := mail.ParseAddress(data.Email); err != nil {
		return errs.ErrInvalidEmail
	}

	if len(data.Password) < 6 {
		return errs.ErrWeakPassword
	}

	if !domain.IsValidRole(data.Role) {
		return errs.ErrInvalidRole
	}

	user, err := s.repo.GetUserByEmail(ctx, data.Email)
	if err != nil {
		return
	}

	if !user.ID.IsZero() {
		return errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	userEnt := domain.User{
		Name:           data.Name,
		Email:          data.Email,
		HashedPassword: string(hash),
		Role:           data.Role,
		ExternalID:     ulid.Make().String(),
	}

	_, err = s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return err
	}

	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID.IsZero() {
		return respPayload, errs.ErrAccountNotFound
	}

	if user.Disabled {
		return respPayload, errs.ErrAccountDisabled
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(user.ExternalID, user.Name, user.Role, s.config.JWTSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.ExternalID = user.ExternalID
	respPayload.Name = user.Name
	respPayload.Role = user.Role

	return
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, externalID string) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByExternalID(ctx, externalID)
	if err != nil {
		return
	}

	resp = dto.UserResponse{
		ExternalID: user.ExternalID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		CreatedAt:  user.CreatedAt,
	}

	return
}

// UpdateProfile touches name and password only. Role and email are fixed at
// registration.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, externalID string, payload dto.UpdateProfileRequest) (err error) {
	user, err := s.repo.GetUserByExternalID(ctx, externalID)
	if err != nil {
		return
	}

	if payload.Name != "" {
		user.Name = payload.Name
	}

	if payload.Password != "" {
		if len(payload.Password) < 6 {
			return errs.ErrWeakPassword
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user.HashedPassword = string(hash)
	}

	return s.repo.UpdateUser(ctx, user)
}
