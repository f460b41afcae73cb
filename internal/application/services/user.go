package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/mq"
	"user-account-api/internal/interface/api/rest/dto/user"
)

// ErrUserNotFound is a normal outcome of the mutation flows, not a server
// fault; controllers map it to 404.
var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	userRepository domain.Repository
	hasher         ports.PasswordHasher
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
	logger         *zap.Logger
}

func NewUserService(
	userRepository domain.Repository,
	hasher ports.PasswordHasher,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		hasher:         hasher,
		mq:             mq,
		mCounter:       mCounter,
		logger:         logger,
	}
}

func (us *UserService) CreateUser(ctx context.Context, reg domain.Registration) (*domain.Public, error) {
	passwordHash, err := us.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	dob := reg.DateOfBirth
	u := domain.User{
		FirstName:    reg.FirstName,
		MiddleName:   reg.MiddleName,
		LastName:     reg.LastName,
		DateOfBirth:  &dob,
		Email:        reg.Email,
		PasswordHash: passwordHash,
		Role:         domain.RoleUser,
	}

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("creating new user: %w", err)
	}

	us.logger.Info("user created successfully", zap.String("user_id", uRet.ID.String()))

	us.publish(mq.KeyUserRegistered, uRet)
	us.mCounter.WithLabelValues("user_registered_total").Inc()

	return uRet.Public(), nil
}

func (us *UserService) FindUserByID(ctx context.Context, id uuid.UUID) (*domain.Public, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	return u.Public(), nil
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Publics, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users.Public(), nil
}

// SetUserRole reads the full record, overlays the new role and writes
// everything back. The read and the write are not atomic: a concurrent
// update between them loses (last writer wins on the fields it wrote).
func (us *UserService) SetUserRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.Public, error) {
	uRet, err := us.replaceUser(ctx, id, func(upd *domain.Update) {
		upd.Role = &role
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			us.logger.Warn("can't change role, user not found", zap.String("user_id", id.String()))
		}
		return nil, err
	}

	us.publish(mq.KeyUserRoleChanged, uRet)
	us.mCounter.WithLabelValues("user_role_changed_total").Inc()

	return uRet.Public(), nil
}

func (us *UserService) DeactivateUser(ctx context.Context, id uuid.UUID) (*domain.Public, error) {
	inactive := false
	uRet, err := us.replaceUser(ctx, id, func(upd *domain.Update) {
		upd.IsActive = &inactive
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			us.logger.Warn("can't deactivate, user not found", zap.String("user_id", id.String()))
		}
		return nil, err
	}

	us.publish(mq.KeyUserDeactivated, uRet)
	us.mCounter.WithLabelValues("user_deactivated_total").Inc()

	return uRet.Public(), nil
}

// replaceUser implements the load-check-update pattern: every field of the
// stored record is supplied back on write so the store's merge semantics
// never surprise us, and updated_at refreshes on each call.
func (us *UserService) replaceUser(ctx context.Context, id uuid.UUID, mutate func(*domain.Update)) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	upd := domain.Update{
		FirstName:   &u.FirstName,
		MiddleName:  u.MiddleName,
		LastName:    &u.LastName,
		DateOfBirth: u.DateOfBirth,
		Email:       &u.Email,
		Role:        &u.Role,
		IsActive:    &u.IsActive,
	}
	mutate(&upd)

	uRet, err := us.userRepository.UpdateUser(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		// row vanished between read and write
		return nil, ErrUserNotFound
	}

	return uRet, nil
}

func (us *UserService) publish(kind string, u *domain.User) {
	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Kind:    kind,
		UserID:  u.ID.String(),
		Payload: user.ToResponseUser(u.Public()),
	}
}
