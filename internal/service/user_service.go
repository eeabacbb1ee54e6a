package service

import (
	"Lectern/internal/api/dto"
	"Lectern/internal/model"
	"Lectern/internal/pkg/redis"
	"Lectern/internal/pkg/security"
	"Lectern/internal/repository"
	"context"
	"time"
)

const defaultRoleName = "USER"

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	roleRepo repository.RoleRepo
}

func NewUserService(userRepo repository.UserRepo, roleRepo repository.RoleRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserUsernameExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	role, err := s.roleRepo.GetByName(ctx, defaultRoleName)
	if err != nil {
		return err
	}
	if role == nil {
		return UnExpectedError
	}

	user := &model.User{
		Username: regDTO.Username,
		Password: &passwordHash,
	}
	return s.userRepo.CreateUser(ctx, user, role.ID)
}

func (s *UserServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetByUsername(ctx, loginDTO.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsBan {
		return nil, ErrUserBan
	}
	if user.Password == nil {
		return nil, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(loginDTO.Password, *user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	roles, err := s.userRepo.GetRoleNames(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, err := security.GenerateToken(user.ID, roles)
	if err != nil {
		return nil, err
	}

	return &dto.TokenDTO{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Roles:    roles,
	}, nil
}

// Logout 把令牌签名挂入黑名单，有效期与令牌一致
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}
