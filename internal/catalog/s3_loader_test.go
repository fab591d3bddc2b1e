package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 serves objects from memory.
type fakeS3 struct {
	objects map[string][]byte
	gotKey  string
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.gotKey = aws.ToString(in.Key)
	body, ok := f.objects[f.gotKey]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

// mockLoader is a Loader backed by a function.
type mockLoader struct {
	loadFunc func(ctx context.Context, path string) ([]Record, error)
}

func (m *mockLoader) Load(ctx context.Context, path string) ([]Record, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, path)
	}
	return nil, errors.New("not implemented")
}

func TestS3Loader_Load(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{
		"catalog/seed.gz": gzipLines(t, `{"sku":"LMP-1","name":"Lamp","price":"9.99"}`),
	}}
	loader := NewS3LoaderWithClient(client, "shop-assets", zerolog.Nop())

	records, err := loader.Load(context.Background(), "catalog/seed.gz")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "LMP-1", records[0].SKU)

	_, err = loader.Load(context.Background(), "catalog/missing.gz")
	assert.ErrorContains(t, err, "bucket=shop-assets")
}

func TestFallbackLoader(t *testing.T) {
	ctx := context.Background()
	s3Records := []Record{{SKU: "FROM-S3"}}
	localRecords := []Record{{SKU: "FROM-DISK"}}

	tests := []struct {
		name      string
		s3Enabled bool
		s3Err     error
		nilS3     bool
		wantSKU   string
	}{
		{name: "S3 succeeds", s3Enabled: true, wantSKU: "FROM-S3"},
		{name: "S3 fails, local used", s3Enabled: true, s3Err: errors.New("S3 connection failed"), wantSKU: "FROM-DISK"},
		{name: "S3 disabled", s3Enabled: false, wantSKU: "FROM-DISK"},
		{name: "No S3 loader", s3Enabled: true, nilS3: true, wantSKU: "FROM-DISK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var remote Loader = &mockLoader{loadFunc: func(_ context.Context, path string) ([]Record, error) {
				assert.Equal(t, "catalog/seed.gz", path, "S3 key should have prefix")
				if tt.s3Err != nil {
					return nil, tt.s3Err
				}
				return s3Records, nil
			}}
			if tt.nilS3 {
				remote = nil
			}
			local := &mockLoader{loadFunc: func(_ context.Context, path string) ([]Record, error) {
				assert.Equal(t, "seed.gz", path, "local path should not have prefix")
				return localRecords, nil
			}}

			records, err := NewFallbackLoader(remote, local, "catalog/", tt.s3Enabled, zerolog.Nop()).Load(ctx, "seed.gz")

			require.NoError(t, err)
			assert.Equal(t, tt.wantSKU, records[0].SKU)
		})
	}
}
