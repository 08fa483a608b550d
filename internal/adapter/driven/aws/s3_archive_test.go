package aws

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeUploader) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(params.Body)
	f.inputs = append(f.inputs, params)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func newTestArchive(up *fakeUploader, calls *int) *S3ArchiveImpl {
	return &S3ArchiveImpl{
		clientCache: make(map[string]S3Uploader),
		newClient: func(ctx context.Context, profile string) (S3Uploader, error) {
			*calls++
			return up, nil
		},
	}
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "payroll.csv", ObjectKey("", "/tmp/payroll.csv"))
	assert.Equal(t, "reports/2022/payroll.csv", ObjectKey("/reports/2022/", "/tmp/payroll.csv"))
}

func TestUpload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "payroll_20220201.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"bill":"272"}`), 0o600))

	up := &fakeUploader{}
	calls := 0
	archive := newTestArchive(up, &calls)

	uri, err := archive.Upload(context.Background(), "prod", "payroll-bucket", "oncall", file)
	require.NoError(t, err)
	assert.Equal(t, "s3://payroll-bucket/oncall/payroll_20220201.json", uri)

	require.Len(t, up.inputs, 1)
	assert.Equal(t, "payroll-bucket", *up.inputs[0].Bucket)
	assert.Equal(t, "oncall/payroll_20220201.json", *up.inputs[0].Key)
	assert.Equal(t, "application/json", *up.inputs[0].ContentType)
	assert.Equal(t, `{"bill":"272"}`, up.bodies[0])

	_, err = archive.Upload(context.Background(), "prod", "payroll-bucket", "oncall", file)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "client should be cached per profile")
}

func TestUpload_PropagatesErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "payroll.csv")
	require.NoError(t, os.WriteFile(file, []byte("a,b"), 0o600))

	calls := 0
	archive := newTestArchive(&fakeUploader{err: errors.New("access denied")}, &calls)

	_, err := archive.Upload(context.Background(), "", "bucket", "", file)
	assert.ErrorContains(t, err, "access denied")

	_, err = archive.Upload(context.Background(), "", "bucket", "", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "error opening report file")
}
