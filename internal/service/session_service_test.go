package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/child-therapy-api/internal/dto"
	"github.com/noah-isme/child-therapy-api/internal/models"
	appErrors "github.com/noah-isme/child-therapy-api/pkg/errors"
)

type fakeSessionRepo struct {
	created  []*models.TherapySession
	sessions map[string]*models.TherapySession
}

func (f *fakeSessionRepo) Create(_ context.Context, session *models.TherapySession) error {
	f.created = append(f.created, session)
	return nil
}

func (f *fakeSessionRepo) FindByID(_ context.Context, id string) (*models.TherapySession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return session, nil
}

func (f *fakeSessionRepo) ListByChild(_ context.Context, childID string) ([]models.TherapySession, error) {
	var out []models.TherapySession
	for _, s := range f.sessions {
		if s.ChildID == childID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeAuthorizer struct {
	childDoctor map[string]string
	parentLinks map[string]bool
}

func (f *fakeAuthorizer) AuthorizeAccess(_ context.Context, userID string, role models.UserRole, childID string) (*models.Child, error) {
	doctorID, ok := f.childDoctor[childID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "child not found")
	}
	switch role {
	case models.RoleDoctor:
		if doctorID != userID {
			return nil, appErrors.ErrForbidden
		}
	case models.RoleParent:
		if !f.parentLinks[userID+":"+childID] {
			return nil, appErrors.ErrForbidden
		}
	}
	return &models.Child{ID: childID, AssignedDoctorID: doctorID}, nil
}

func TestSessionCreateChecksOwnership(t *testing.T) {
	repo := &fakeSessionRepo{sessions: map[string]*models.TherapySession{}}
	auth := &fakeAuthorizer{childDoctor: map[string]string{"c1": "d1"}}
	svc := NewSessionService(repo, auth, zap.NewNop())

	req := dto.CreateSessionRequest{
		ChildID:             "c1",
		SessionDate:         time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		DurationMinutes:     45,
		ActivitiesPerformed: "floor play",
		Notes:               "calm session",
	}

	resp, err := svc.Create(context.Background(), "d1", req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.LogID)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "d1", repo.created[0].DoctorID)

	// Another doctor cannot log against this child.
	_, err = svc.Create(context.Background(), "d2", req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestGetSessionQuickScores(t *testing.T) {
	session := &models.TherapySession{
		ID:      "s1",
		ChildID: "c1",
		Domains: models.DomainAssessments{
			Behavior: &models.Behavior{
				Aggression: ratingPtr(models.RatingGood),
				SelfInjury: ratingPtr(models.RatingAverage),
			},
			TherapyParticipation: &models.TherapyParticipation{
				SittingTolerance: ratingPtr(models.RatingNoImprovement),
			},
		},
	}
	repo := &fakeSessionRepo{sessions: map[string]*models.TherapySession{"s1": session}}
	auth := &fakeAuthorizer{childDoctor: map[string]string{"c1": "d1"}}
	svc := NewSessionService(repo, auth, zap.NewNop())

	detail, err := svc.GetSession(context.Background(), "d1", models.RoleDoctor, "s1")
	require.NoError(t, err)

	// Flat scale: (100+60)/2 = 80 for behavior, 20 for participation, which
	// is surfaced under the social_participation key.
	assert.Equal(t, 80, detail.DomainScores["behavior"])
	assert.Equal(t, 20, detail.DomainScores["social_participation"])
	assert.NotContains(t, detail.DomainScores, "therapy_participation")
	assert.Len(t, detail.DomainScores, 2)
}

func TestGetSessionNotFound(t *testing.T) {
	repo := &fakeSessionRepo{sessions: map[string]*models.TherapySession{}}
	svc := NewSessionService(repo, &fakeAuthorizer{}, zap.NewNop())

	_, err := svc.GetSession(context.Background(), "d1", models.RoleDoctor, "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestQuickDomainScoresEmpty(t *testing.T) {
	assert.Nil(t, QuickDomainScores(models.DomainAssessments{}))
}
