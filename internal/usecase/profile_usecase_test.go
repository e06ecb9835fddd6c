package usecase

import (
	"bytes"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"

	"recruitme/internal/entity"
	"recruitme/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProfileUseCaseForTest() (ProfileUseCase, *MockUserRepository, *MockProfileRepository, *MockImageStorage) {
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)
	storage := new(MockImageStorage)
	uc := NewProfileUseCase(userRepo, profileRepo, storage, logger.New())
	return uc, userRepo, profileRepo, storage
}

func TestGetDraft_LazilyCreatesSeededDraft(t *testing.T) {
	uc, userRepo, profileRepo, _ := newProfileUseCaseForTest()

	user := &entity.User{ID: "user-1", Email: "jordan@example.com"}
	userRepo.On("GetByID", "user-1").Return(user, nil)

	var created *entity.Profile
	profileRepo.On("Create", mock.AnythingOfType("*entity.Profile")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*entity.Profile)
		}).Return(nil)
	userRepo.On("UpdateFields", "user-1", mock.AnythingOfType("map[string]interface {}")).Return(nil)

	draft, err := uc.GetDraft("user-1")

	assert.NoError(t, err)
	assert.Equal(t, "jordan@example.com", created.Email)
	assert.Equal(t, created, draft)
}

func TestGetDraft_ExistingDraft(t *testing.T) {
	uc, userRepo, profileRepo, _ := newProfileUseCaseForTest()

	draftID := "draft-1"
	user := &entity.User{ID: "user-1", DraftProfileID: &draftID}
	existing := &entity.Profile{ID: "draft-1", FirstName: "Jordan"}

	userRepo.On("GetByID", "user-1").Return(user, nil)
	profileRepo.On("GetByID", "draft-1").Return(existing, nil)

	draft, err := uc.GetDraft("user-1")

	assert.NoError(t, err)
	assert.Equal(t, existing, draft)
	profileRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateDraft_TrimsAndWritesOnlyProvidedFields(t *testing.T) {
	uc, userRepo, profileRepo, _ := newProfileUseCaseForTest()

	draftID := "draft-1"
	user := &entity.User{ID: "user-1", DraftProfileID: &draftID}
	userRepo.On("GetByID", "user-1").Return(user, nil)
	profileRepo.On("GetByID", "draft-1").Return(&entity.Profile{ID: "draft-1"}, nil)

	var written map[string]interface{}
	profileRepo.On("UpdateFields", "draft-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(args mock.Arguments) {
			written = args.Get(1).(map[string]interface{})
		}).Return(nil)

	_, err := uc.UpdateDraft("user-1", &ProfileUpdate{
		FirstName: strPtr("  Jordan  "),
		Club:      strPtr("Northshore"),
	})

	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"first_name": "Jordan",
		"club":       "Northshore",
	}, written)
}

func TestUpdateDraft_EmptyUpdateSkipsWrite(t *testing.T) {
	uc, userRepo, profileRepo, _ := newProfileUseCaseForTest()

	draftID := "draft-1"
	user := &entity.User{ID: "user-1", DraftProfileID: &draftID}
	userRepo.On("GetByID", "user-1").Return(user, nil)
	profileRepo.On("GetByID", "draft-1").Return(&entity.Profile{ID: "draft-1"}, nil)

	_, err := uc.UpdateDraft("user-1", &ProfileUpdate{})

	assert.NoError(t, err)
	profileRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
}

func TestUpdateDraft_Validation(t *testing.T) {
	uc, userRepo, _, _ := newProfileUseCaseForTest()

	cases := []struct {
		name   string
		update *ProfileUpdate
	}{
		{"bad graduation year", &ProfileUpdate{GraduationYear: strPtr("20255")}},
		{"non-numeric graduation year", &ProfileUpdate{GraduationYear: strPtr("soon")}},
		{"bad email", &ProfileUpdate{Email: strPtr("not-an-email")}},
		{"unknown position", &ProfileUpdate{PrimaryPosition: strPtr("Goalkeeper")}},
	}
	for _, tc := range cases {
		_, err := uc.UpdateDraft("user-1", tc.update)
		assert.True(t, entity.IsValidation(err), tc.name)
	}
	userRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func testImagePNG(t *testing.T, width, height int) *bytes.Reader {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return bytes.NewReader(buf.Bytes())
}

func TestUploadImage_RejectsBadTypeAndSize(t *testing.T) {
	uc, _, _, _ := newProfileUseCaseForTest()

	_, err := uc.UploadImage("user-1", strings.NewReader("gif"), "image/gif", 100)
	assert.True(t, entity.IsValidation(err))

	_, err = uc.UploadImage("user-1", strings.NewReader("big"), "image/jpeg", MaxImageSize+1)
	assert.True(t, entity.IsValidation(err))
}

func TestUploadImage_RejectsUndecodableData(t *testing.T) {
	uc, userRepo, profileRepo, storage := newProfileUseCaseForTest()

	draftID := "draft-1"
	user := &entity.User{ID: "user-1", DraftProfileID: &draftID}
	userRepo.On("GetByID", "user-1").Return(user, nil)
	profileRepo.On("GetByID", "draft-1").Return(&entity.Profile{ID: "draft-1"}, nil)

	_, err := uc.UploadImage("user-1", strings.NewReader("not a png"), "image/png", 9)

	assert.True(t, entity.IsValidation(err))
	storage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadImage_ReplacesPreviousImage(t *testing.T) {
	uc, userRepo, profileRepo, storage := newProfileUseCaseForTest()

	draftID := "draft-1"
	user := &entity.User{ID: "user-1", DraftProfileID: &draftID}
	draft := &entity.Profile{ID: "draft-1", ProfileImageURL: "https://bucket.s3.amazonaws.com/profiles/user-1/old.jpg"}

	userRepo.On("GetByID", "user-1").Return(user, nil)
	profileRepo.On("GetByID", "draft-1").Return(draft, nil)
	storage.On("DeleteFileByURL", draft.ProfileImageURL).Return(nil)
	storage.On("UploadFile", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "profiles/user-1/") && strings.HasSuffix(key, ".jpg")
	}), mock.Anything, "image/jpeg").Return("https://bucket.s3.amazonaws.com/profiles/user-1/new.jpg", nil)
	profileRepo.On("UpdateFields", "draft-1", map[string]interface{}{
		"profile_image_url": "https://bucket.s3.amazonaws.com/profiles/user-1/new.jpg",
	}).Return(nil)

	url, err := uc.UploadImage("user-1", testImagePNG(t, 64, 64), "image/png", 1024)

	assert.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/profiles/user-1/new.jpg", url)
	storage.AssertExpectations(t)
}

func TestUploadImage_ResizesAndReencodes(t *testing.T) {
	uc, userRepo, profileRepo, storage := newProfileUseCaseForTest()

	draftID := "draft-1"
	user := &entity.User{ID: "user-1", DraftProfileID: &draftID}
	userRepo.On("GetByID", "user-1").Return(user, nil)
	profileRepo.On("GetByID", "draft-1").Return(&entity.Profile{ID: "draft-1"}, nil)

	var uploaded []byte
	storage.On("UploadFile", mock.AnythingOfType("string"), mock.Anything, "image/jpeg").
		Run(func(args mock.Arguments) {
			uploaded, _ = io.ReadAll(args.Get(1).(io.Reader))
		}).
		Return("https://bucket.s3.amazonaws.com/profiles/user-1/new.jpg", nil)
	profileRepo.On("UpdateFields", "draft-1", mock.AnythingOfType("map[string]interface {}")).Return(nil)

	_, err := uc.UploadImage("user-1", testImagePNG(t, 1600, 1200), "image/png", 4096)

	assert.NoError(t, err)
	stored, format, err := image.Decode(bytes.NewReader(uploaded))
	assert.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 800, stored.Bounds().Dx())
	assert.Equal(t, 600, stored.Bounds().Dy())
}

func TestDeleteImage_NoImage(t *testing.T) {
	uc, userRepo, profileRepo, _ := newProfileUseCaseForTest()

	draftID := "draft-1"
	user := &entity.User{ID: "user-1", DraftProfileID: &draftID}
	userRepo.On("GetByID", "user-1").Return(user, nil)
	profileRepo.On("GetByID", "draft-1").Return(&entity.Profile{ID: "draft-1"}, nil)

	err := uc.DeleteImage("user-1")

	assert.True(t, entity.IsValidation(err))
}

func TestDeleteImage_ClearsRowEvenIfStorageFails(t *testing.T) {
	uc, userRepo, profileRepo, storage := newProfileUseCaseForTest()

	draftID := "draft-1"
	user := &entity.User{ID: "user-1", DraftProfileID: &draftID}
	draft := &entity.Profile{ID: "draft-1", ProfileImageURL: "https://bucket.s3.amazonaws.com/profiles/user-1/a.jpg"}

	userRepo.On("GetByID", "user-1").Return(user, nil)
	profileRepo.On("GetByID", "draft-1").Return(draft, nil)
	storage.On("DeleteFileByURL", draft.ProfileImageURL).Return(assert.AnError)
	profileRepo.On("UpdateFields", "draft-1", map[string]interface{}{"profile_image_url": ""}).Return(nil)

	err := uc.DeleteImage("user-1")

	assert.NoError(t, err)
	profileRepo.AssertExpectations(t)
}

func TestPublicProfile_UnpublishedLooksLikeMissing(t *testing.T) {
	uc, userRepo, _, _ := newProfileUseCaseForTest()

	publishedID := "pub-1"
	user := &entity.User{ID: "user-1", PublishedProfileID: &publishedID, IsPublished: false}
	userRepo.On("GetBySlug", "jordan-smith").Return(user, nil)

	_, err := uc.PublicProfile("jordan-smith")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestPublicProfile_ServesPublishedSnapshot(t *testing.T) {
	uc, userRepo, profileRepo, _ := newProfileUseCaseForTest()

	publishedID := "pub-1"
	user := &entity.User{ID: "user-1", PublishedProfileID: &publishedID, IsPublished: true}
	snapshot := &entity.Profile{ID: "pub-1", FirstName: "Jordan"}

	userRepo.On("GetBySlug", "jordan-smith").Return(user, nil)
	profileRepo.On("GetByIDWithVideos", "pub-1").Return(snapshot, nil)

	profile, err := uc.PublicProfile("jordan-smith")

	assert.NoError(t, err)
	assert.Equal(t, snapshot, profile)
}

func TestCompleteOnboarding(t *testing.T) {
	uc, userRepo, _, _ := newProfileUseCaseForTest()

	userRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1"}, nil)
	userRepo.On("UpdateFields", "user-1", map[string]interface{}{"has_completed_onboarding": true}).Return(nil)

	err := uc.CompleteOnboarding("user-1")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}
