package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/child-therapy-api/internal/dto"
	"github.com/noah-isme/child-therapy-api/internal/models"
	appErrors "github.com/noah-isme/child-therapy-api/pkg/errors"
)

// quickViewKeys maps storage domain keys onto the shorter display keys the
// single-session view uses. therapy_participation is surfaced as
// social_participation for historical reasons.
var quickViewKeys = map[models.DomainKey]string{
	models.DomainCommunicationSkills:  "communication",
	models.DomainEmotionalDevelopment: "emotional",
	models.DomainSocialSkills:         "social",
	models.DomainBehavior:             "behavior",
	models.DomainCognitiveSkills:      "cognitive",
	models.DomainSensoryProcessing:    "sensory",
	models.DomainDailyLivingSkills:    "daily_living",
	models.DomainTherapyParticipation: "social_participation",
}

type sessionStore interface {
	Create(ctx context.Context, session *models.TherapySession) error
	FindByID(ctx context.Context, id string) (*models.TherapySession, error)
	ListByChild(ctx context.Context, childID string) ([]models.TherapySession, error)
}

type childAuthorizer interface {
	AuthorizeAccess(ctx context.Context, userID string, role models.UserRole, childID string) (*models.Child, error)
}

// SessionService records therapy sessions and serves their read views.
// Sessions are append-only.
type SessionService struct {
	store    sessionStore
	children childAuthorizer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewSessionService constructs a session service.
func NewSessionService(store sessionStore, children childAuthorizer, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		store:    store,
		children: children,
		validate: validator.New(),
		logger:   logger,
	}
}

// Create logs a session for a child assigned to the calling doctor.
func (s *SessionService) Create(ctx context.Context, doctorID string, req dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	if _, err := s.children.AuthorizeAccess(ctx, doctorID, models.RoleDoctor, req.ChildID); err != nil {
		return nil, err
	}

	session := &models.TherapySession{
		ID:                  uuid.NewString(),
		ChildID:             req.ChildID,
		DoctorID:            doctorID,
		SessionDate:         req.SessionDate.UTC(),
		DurationMinutes:     req.DurationMinutes,
		ActivitiesPerformed: req.ActivitiesPerformed,
		Notes:               req.Notes,
		Domains:             req.Domains,
	}
	if err := s.store.Create(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session")
	}

	s.logger.Info("session logged",
		zap.String("log_id", session.ID), zap.String("child_id", session.ChildID))
	return &dto.CreateSessionResponse{LogID: session.ID}, nil
}

// ListByChild returns the child's sessions, newest first.
func (s *SessionService) ListByChild(ctx context.Context, userID string, role models.UserRole, childID string) ([]dto.SessionResponse, error) {
	if _, err := s.children.AuthorizeAccess(ctx, userID, role, childID); err != nil {
		return nil, err
	}

	sessions, err := s.store.ListByChild(ctx, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sessions")
	}

	out := make([]dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, sessionResponse(session))
	}
	return out, nil
}

// GetSession returns one session with the flat per-domain quick scores.
func (s *SessionService) GetSession(ctx context.Context, userID string, role models.UserRole, sessionID string) (*dto.SessionDetail, error) {
	session, err := s.store.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}

	if _, err := s.children.AuthorizeAccess(ctx, userID, role, session.ChildID); err != nil {
		return nil, err
	}

	return &dto.SessionDetail{
		SessionResponse: sessionResponse(*session),
		DomainScores:    QuickDomainScores(session.Domains),
	}, nil
}

// QuickDomainScores computes the flat percentage per assessed domain: the
// mean of 100/60/20 over the domain's known ratings, truncated to an int.
// Domains with no known ratings are omitted.
func QuickDomainScores(domains models.DomainAssessments) map[string]int {
	scores := make(map[string]int)
	for _, domain := range models.OrderedDomains {
		assessment := domains.Get(domain)
		if assessment == nil {
			continue
		}
		total, count := 0, 0
		for _, rating := range assessment.Ratings() {
			if pct, ok := rating.FlatPercent(); ok {
				total += pct
				count++
			}
		}
		if count > 0 {
			scores[quickViewKeys[domain]] = total / count
		}
	}
	if len(scores) == 0 {
		return nil
	}
	return scores
}

func sessionResponse(session models.TherapySession) dto.SessionResponse {
	return dto.SessionResponse{
		ID:                  session.ID,
		SessionDate:         session.SessionDate,
		DurationMinutes:     session.DurationMinutes,
		ActivitiesPerformed: session.ActivitiesPerformed,
		Notes:               session.Notes,
		Domains:             session.Domains,
		CreatedAt:           session.CreatedAt,
	}
}
