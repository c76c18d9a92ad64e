package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/child-therapy-api/internal/dto"
	"github.com/noah-isme/child-therapy-api/internal/models"
	appErrors "github.com/noah-isme/child-therapy-api/pkg/errors"
)

const (
	childCodeAttempts = 5
	tempPasswordLen   = 12
)

type childStore interface {
	Create(ctx context.Context, child *models.Child, code *models.ChildCode) error
	FindByID(ctx context.Context, id string) (*models.Child, error)
	FindByActiveCode(ctx context.Context, code string) (*models.Child, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Child, error)
	ListByParent(ctx context.Context, parentID string) ([]models.Child, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	LinkParent(ctx context.Context, parentID, childID string) error
	IsLinked(ctx context.Context, parentID, childID string) (bool, error)
}

type credentialNotifier interface {
	QueueParentCredentials(parentEmail, parentName, password, childName string) bool
}

// ChildService manages child profiles, shareable child codes and the
// parent-child links that gate report access.
type ChildService struct {
	store    childStore
	users    userStore
	notifier credentialNotifier
	validate *validator.Validate
	logger   *zap.Logger
}

// NewChildService constructs a child service.
func NewChildService(store childStore, users userStore, notifier credentialNotifier, logger *zap.Logger) *ChildService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChildService{
		store:    store,
		users:    users,
		notifier: notifier,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateChild registers a child under the calling doctor. When a parent email
// is supplied and no matching parent account exists, one is provisioned with a
// generated password and the credentials are queued for email delivery.
func (s *ChildService) CreateChild(ctx context.Context, doctorID string, req dto.CreateChildRequest) (*dto.CreateChildResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	code, err := s.generateChildCode(ctx)
	if err != nil {
		return nil, err
	}

	child := &models.Child{
		ID:               uuid.NewString(),
		ChildCode:        code,
		Name:             req.Name,
		Age:              req.Age,
		Gender:           req.Gender,
		Diagnosis:        req.Diagnosis,
		AssignedDoctorID: doctorID,
	}
	childCode := &models.ChildCode{
		ID:      uuid.NewString(),
		ChildID: child.ID,
		Code:    code,
		Status:  models.ChildCodeStatusActive,
	}
	if err := s.store.Create(ctx, child, childCode); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create child")
	}

	resp := &dto.CreateChildResponse{ChildID: child.ID, ChildCode: code}

	if req.ParentEmail != nil && *req.ParentEmail != "" {
		created, sent, err := s.provisionParent(ctx, child, req)
		if err != nil {
			// The child exists; parent setup is best effort and can be
			// retried through the link-by-code flow.
			s.logger.Warn("parent provisioning failed",
				zap.String("child_id", child.ID), zap.Error(err))
		} else {
			resp.ParentCreated = created
			resp.EmailSent = sent
		}
	}

	s.logger.Info("child created",
		zap.String("child_id", child.ID), zap.String("doctor_id", doctorID))
	return resp, nil
}

// VerifyCode checks whether a child code is redeemable.
func (s *ChildService) VerifyCode(ctx context.Context, req dto.VerifyCodeRequest) (*dto.VerifyCodeResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	child, err := s.store.FindByActiveCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &dto.VerifyCodeResponse{Valid: false}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify code")
	}
	return &dto.VerifyCodeResponse{Valid: true, ChildName: child.Name}, nil
}

// LinkByCode attaches the child behind the code to the parent. Linking twice
// is a no-op reported through AlreadyLinked.
func (s *ChildService) LinkByCode(ctx context.Context, parentID, code string) (*dto.LinkChildResponse, error) {
	child, err := s.store.FindByActiveCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidChildCode
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve code")
	}

	linked, err := s.store.IsLinked(ctx, parentID, child.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check link")
	}
	if linked {
		return &dto.LinkChildResponse{ChildID: child.ID, ChildName: child.Name, AlreadyLinked: true}, nil
	}

	if err := s.store.LinkParent(ctx, parentID, child.ID); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to link child")
	}

	s.logger.Info("child linked",
		zap.String("child_id", child.ID), zap.String("parent_id", parentID))
	return &dto.LinkChildResponse{ChildID: child.ID, ChildName: child.Name}, nil
}

// ListForDoctor returns the children assigned to the doctor.
func (s *ChildService) ListForDoctor(ctx context.Context, doctorID string) ([]dto.ChildResponse, error) {
	children, err := s.store.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list children")
	}
	return childResponses(children), nil
}

// ListForParent returns the children linked to the parent.
func (s *ChildService) ListForParent(ctx context.Context, parentID string) ([]dto.ChildResponse, error) {
	children, err := s.store.ListByParent(ctx, parentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list children")
	}
	return childResponses(children), nil
}

// AuthorizeAccess verifies the caller may read the child's records: doctors
// must be the assigned doctor, parents must hold a link.
func (s *ChildService) AuthorizeAccess(ctx context.Context, userID string, role models.UserRole, childID string) (*models.Child, error) {
	child, err := s.store.FindByID(ctx, childID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "child not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load child")
	}

	switch role {
	case models.RoleDoctor:
		if child.AssignedDoctorID != userID {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "child is not assigned to this doctor")
		}
	case models.RoleParent:
		linked, err := s.store.IsLinked(ctx, userID, childID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check link")
		}
		if !linked {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "child is not linked to this parent")
		}
	default:
		return nil, appErrors.ErrForbidden
	}
	return child, nil
}

func (s *ChildService) provisionParent(ctx context.Context, child *models.Child, req dto.CreateChildRequest) (created, sent bool, err error) {
	email := normalizeEmail(*req.ParentEmail)

	parent, err := s.users.FindByEmailAndRole(ctx, email, models.RoleParent)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, false, err
	}

	var password string
	if parent == nil {
		password, err = generatePassword(tempPasswordLen)
		if err != nil {
			return false, false, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return false, false, err
		}

		name := "Parent of " + child.Name
		if req.ParentName != nil && *req.ParentName != "" {
			name = *req.ParentName
		}
		parent = &models.User{
			ID:              uuid.NewString(),
			Email:           email,
			PasswordHash:    string(hash),
			FullName:        name,
			Role:            models.RoleParent,
			Phone:           req.ParentPhone,
			CreatedBySystem: true,
			Active:          true,
		}
		if err := s.users.Create(ctx, parent); err != nil {
			return false, false, err
		}
		created = true
	}

	if err := s.store.LinkParent(ctx, parent.ID, child.ID); err != nil {
		return created, false, err
	}

	if created && s.notifier != nil {
		sent = s.notifier.QueueParentCredentials(parent.Email, parent.FullName, password, child.Name)
	}
	return created, sent, nil
}

// generateChildCode produces P-{year}-{NNNN} codes and retries on collision.
func (s *ChildService) generateChildCode(ctx context.Context) (string, error) {
	year := time.Now().UTC().Year()
	for attempt := 0; attempt < childCodeAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10000))
		if err != nil {
			return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate code")
		}
		code := fmt.Sprintf("P-%d-%04d", year, n.Int64())

		exists, err := s.store.CodeExists(ctx, code)
		if err != nil {
			return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check code")
		}
		if !exists {
			return code, nil
		}
	}
	return "", appErrors.Clone(appErrors.ErrInternal, "could not allocate a unique child code")
}

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generatePassword(length int) (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}

func childResponses(children []models.Child) []dto.ChildResponse {
	out := make([]dto.ChildResponse, 0, len(children))
	for _, child := range children {
		out = append(out, dto.ChildResponse{
			ID:        child.ID,
			ChildCode: child.ChildCode,
			Name:      child.Name,
			Age:       child.Age,
			Gender:    child.Gender,
			Diagnosis: child.Diagnosis,
			CreatedAt: child.CreatedAt,
		})
	}
	return out
}
