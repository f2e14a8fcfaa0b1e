package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"airport-booking/internal/data/entity"
	"airport-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// echoIdentity writes back what AuthSession put into the context.
var echoIdentity = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	role, _ := utils.GetRoleFromContext(r.Context())
	w.Header().Set("X-User", userID.String())
	w.Header().Set("X-Role", role)
	w.WriteHeader(http.StatusOK)
})

func newSession(userID uuid.UUID) *entity.Session {
	return &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		UserID:     userID,
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func TestAuthSession(t *testing.T) {
	userID := uuid.New()
	token := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(sessions *MockSessionRepository, users *MockUserRepository)
		wantStatus int
		wantRole   string
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic " + token.String(),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token is not a uuid",
			header:     "Bearer not-a-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired or revoked session",
			header: "Bearer " + token.String(),
			setup: func(sessions *MockSessionRepository, users *MockUserRepository) {
				sessions.On("FindValidSession", mock.Anything, token).Return(nil, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "session lookup fails",
			header: "Bearer " + token.String(),
			setup: func(sessions *MockSessionRepository, users *MockUserRepository) {
				sessions.On("FindValidSession", mock.Anything, token).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "inactive user",
			header: "Bearer " + token.String(),
			setup: func(sessions *MockSessionRepository, users *MockUserRepository) {
				sessions.On("FindValidSession", mock.Anything, token).Return(newSession(userID), nil)
				users.On("FindByID", mock.Anything, userID).Return(&entity.User{
					BaseSimple: entity.BaseSimple{ID: userID},
					Role:       entity.RoleCustomer,
					IsActive:   false,
				}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid session, scheme is case insensitive",
			header: "bearer " + token.String(),
			setup: func(sessions *MockSessionRepository, users *MockUserRepository) {
				sessions.On("FindValidSession", mock.Anything, token).Return(newSession(userID), nil)
				users.On("FindByID", mock.Anything, userID).Return(&entity.User{
					BaseSimple: entity.BaseSimple{ID: userID},
					Role:       entity.RoleCustomer,
					IsActive:   true,
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantRole:   "customer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &MockSessionRepository{}
			users := &MockUserRepository{}
			if tt.setup != nil {
				tt.setup(sessions, users)
			}

			handler := AuthSession(sessions, users, zap.NewNop())(echoIdentity)

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID.String(), rec.Header().Get("X-User"))
				assert.Equal(t, tt.wantRole, rec.Header().Get("X-Role"))
			}
			sessions.AssertExpectations(t)
			users.AssertExpectations(t)
		})
	}
}

func TestAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Admin(zap.NewNop())(ok)

	t.Run("no identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/airports", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/airports", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), string(entity.RoleCustomer)))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/airports", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), string(entity.RoleAdmin)))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
