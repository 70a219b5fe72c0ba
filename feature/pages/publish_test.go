package pages

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ciclo-integrado/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupPagesTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "login.html"), []byte(basicPage), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "logo.png"), []byte{0x89, 'P', 'N', 'G'}, 0o644))
	return dir
}

func contentType(ct string) any {
	return mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == ct
	})
}

func TestPublisher_Publish(t *testing.T) {
	dir := setupPagesTree(t)

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "pages").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "pages", "preview/login.html", mock.Anything, int64(len(basicPage)), contentType("text/html")).
		Return(minio.UploadInfo{}, nil)
	mockClient.On("PutObject", mock.Anything, "pages", "preview/img/logo.png", mock.Anything, int64(4), contentType("image/png")).
		Return(minio.UploadInfo{}, nil)

	p := NewPublisher(mockClient, "pages", "preview", zap.NewNop())
	report, err := p.Publish(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Uploaded)
	assert.Empty(t, report.Failures)
	mockClient.AssertExpectations(t)
	mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublisher_Publish_CreatesBucket(t *testing.T) {
	dir := setupPagesTree(t)

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "pages").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "pages", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "pages", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	p := NewPublisher(mockClient, "pages", "", zap.NewNop())
	report, err := p.Publish(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Uploaded)
	mockClient.AssertCalled(t, "PutObject", mock.Anything, "pages", "login.html", mock.Anything, mock.Anything, mock.Anything)
	mockClient.AssertExpectations(t)
}

func TestPublisher_Publish_UploadFailureContinues(t *testing.T) {
	dir := setupPagesTree(t)

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "pages").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "pages", "img/logo.png", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)
	mockClient.On("PutObject", mock.Anything, "pages", "login.html", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	p := NewPublisher(mockClient, "pages", "", zap.NewNop())
	report, err := p.Publish(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Uploaded)
	require.Len(t, report.Failures, 1)
	assert.ErrorIs(t, report.Failures[0], assert.AnError)
}

func TestPublisher_Publish_Errors(t *testing.T) {
	t.Run("MissingDir", func(t *testing.T) {
		p := NewPublisher(new(mocks.Client), "pages", "", zap.NewNop())
		_, err := p.Publish(context.Background(), filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, ErrDirNotFound)
	})

	t.Run("BucketCheckFails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "pages").Return(false, assert.AnError)

		p := NewPublisher(mockClient, "pages", "", zap.NewNop())
		_, err := p.Publish(context.Background(), t.TempDir())
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("MakeBucketFails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "pages").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "pages", mock.Anything).Return(assert.AnError)

		p := NewPublisher(mockClient, "pages", "", zap.NewNop())
		_, err := p.Publish(context.Background(), t.TempDir())
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to create bucket")
	})
}
