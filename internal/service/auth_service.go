package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"literinth-be/internal/config"
	"literinth-be/internal/dto"
	"literinth-be/internal/entity"
	"literinth-be/internal/pkg/mailer"
	"literinth-be/internal/pkg/serverutils"
	"literinth-be/internal/repository/specification"
	"literinth-be/internal/repository/unitofwork"
	"literinth-be/pkg/events"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	cfg              *config.Config
	uowFactory       unitofwork.RepositoryFactory
	emailService     mailer.IEmailService
	publisherService IPublisherService
}

func NewAuthService(
	cfg *config.Config,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisherService IPublisherService,
) IAuthService {
	return &authService{
		cfg:              cfg,
		uowFactory:       uowFactory,
		emailService:     emailService,
		publisherService: publisherService,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	if existing != nil {
		return nil, serverutils.NewAlreadyExists("email already registered")
	}

	existing, err = uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	if existing != nil {
		return nil, serverutils.NewAlreadyExists("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         entity.UserRoleUser,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, serverutils.NewInternal(err)
	}

	go func() {
		if emailErr := s.emailService.SendWelcome(user.Email, user.Username); emailErr != nil {
			log.Printf("[WARN] Failed to send welcome email to %s: %v", user.Email, emailErr)
		}
	}()

	s.publishEvent(ctx, events.TypeUserRegistered, map[string]interface{}{
		"user_id":  user.Id,
		"username": user.Username,
	})

	token, err := s.signToken(user)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	if user == nil {
		return nil, serverutils.NewUnauthenticated("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthenticated("invalid email or password")
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	if user == nil {
		return nil, serverutils.NewNotFound("user not found")
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *authService) signToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.JWTSecret))
}

func (s *authService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	msg := dto.EngagementEventMessage{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WARN] Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", eventType, err)
	}
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		Username:  user.Username,
		Role:      string(user.Role),
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
