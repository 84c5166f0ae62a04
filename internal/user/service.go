package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/grouptivate/grouptivate-api/internal/auth"
	"github.com/grouptivate/grouptivate-api/internal/config"
	"github.com/grouptivate/grouptivate-api/internal/goal"
)

var (
	ErrNameTaken      = errors.New("user with this name already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("incorrect login information")
)

type Service interface {
	Register(ctx context.Context, dto CreateUserDTO) (*SessionResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*SessionResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error)
}

type service struct {
	repo     UserRepository
	goalRepo goal.GoalRepository
}

func NewService(repo UserRepository, goalRepo goal.GoalRepository) Service {
	return &service{repo: repo, goalRepo: goalRepo}
}

func (s *service) Register(ctx context.Context, dto CreateUserDTO) (*SessionResponse, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByName(dto.Name)
	if err != nil {
		log.WithError(err).Error("Failed to look up user name")
		return nil, err
	}
	if existing != nil {
		log.WithField("name", dto.Name).Warn("Attempt to register an existing name")
		return nil, ErrNameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := User{
		ID:       uuid.New(),
		Name:     dto.Name,
		Password: string(hash),
		GroupIDs: []string{},
		LastSync: time.Unix(0, 0).UTC(),
	}
	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Name, auth.TokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return &SessionResponse{Token: token, UserID: u.ID.String()}, nil
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*SessionResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByName(dto.Name)
	if err != nil {
		log.WithError(err).Error("Failed to look up user name")
		return nil, err
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)) != nil {
		log.WithField("name", dto.Name).Warn("Rejected login attempt")
		return nil, ErrBadCredentials
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Name, auth.TokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		return nil, err
	}

	return &SessionResponse{Token: token, UserID: u.ID.String()}, nil
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	goals, err := s.goalRepo.ListIndividualByUser(userID.String())
	if err != nil {
		log.WithError(err).Error("Failed to list individual goals")
		return nil, err
	}

	summaries := make([]GoalSummary, 0, len(goals))
	for _, g := range goals {
		summaries = append(summaries, GoalSummary{
			GoalID:   g.ID.String(),
			Type:     string(g.Type),
			Title:    g.Title,
			Activity: g.Activity,
			Metric:   g.Metric,
			Target:   g.Target,
			Progress: map[string]float64(g.Progress),
		})
	}

	if err := s.repo.TouchLastSync(userID); err != nil {
		log.WithError(err).Warn("Failed to update last sync timestamp")
	}

	return &ProfileResponse{
		UserID: u.ID.String(),
		Name:   u.Name,
		Groups: []string(u.GroupIDs),
		Goals:  summaries,
	}, nil
}
