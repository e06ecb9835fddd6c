package usecase

import (
	"context"
	"io"

	"recruitme/internal/entity"
	"recruitme/internal/repo/persistent"
	"recruitme/pkg/email"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetBySlug(slug string) (*entity.User, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) SlugTaken(slug string, excludeUserID string) (bool, error) {
	args := m.Called(slug, excludeUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) DeleteAccount(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockProfileRepository is a mock implementation of persistent.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(profile *entity.Profile) error {
	args := m.Called(profile)
	if args.Error(0) == nil && profile.ID == "" {
		profile.ID = "draft-created"
	}
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(id string) (*entity.Profile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByIDWithVideos(id string) (*entity.Profile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateFields(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockProfileRepository) CreatePublishedSnapshot(userID string, snapshot *entity.Profile, slug string, oldPublishedProfileID *string) error {
	args := m.Called(userID, snapshot, slug, oldPublishedProfileID)
	return args.Error(0)
}

var _ persistent.ProfileRepository = (*MockProfileRepository)(nil)

// MockVideoRepository is a mock implementation of persistent.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) ListByProfile(profileID string) ([]*entity.Video, error) {
	args := m.Called(profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) CountByProfile(profileID string) (int64, error) {
	args := m.Called(profileID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Create(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) Update(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) RepackOrders(profileID string) error {
	args := m.Called(profileID)
	return args.Error(0)
}

func (m *MockVideoRepository) UpdateOrders(profileID string, videoIDs []string) error {
	args := m.Called(profileID, videoIDs)
	return args.Error(0)
}

var _ persistent.VideoRepository = (*MockVideoRepository)(nil)

// MockTokenRepository is a mock implementation of persistent.TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Replace(token *entity.AuthToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockTokenRepository) GetByToken(kind, token string) (*entity.AuthToken, error) {
	args := m.Called(kind, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuthToken), args.Error(1)
}

func (m *MockTokenRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTokenRepository) ConsumePasswordReset(token *entity.AuthToken, passwordHash string) error {
	args := m.Called(token, passwordHash)
	return args.Error(0)
}

func (m *MockTokenRepository) ConsumeEmailVerification(token *entity.AuthToken) error {
	args := m.Called(token)
	return args.Error(0)
}

var _ persistent.TokenRepository = (*MockTokenRepository)(nil)

// MockEmailSender is a mock implementation of email.Sender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendPasswordReset(ctx context.Context, to, token string) error {
	args := m.Called(ctx, to, token)
	return args.Error(0)
}

func (m *MockEmailSender) SendEmailVerification(ctx context.Context, to, token string) error {
	args := m.Called(ctx, to, token)
	return args.Error(0)
}

var _ email.Sender = (*MockEmailSender)(nil)

// MockImageStorage is a mock implementation of ImageStorage
type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockImageStorage) DeleteFileByURL(url string) error {
	args := m.Called(url)
	return args.Error(0)
}

var _ ImageStorage = (*MockImageStorage)(nil)
