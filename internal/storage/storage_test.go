package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresEndpointAndBucket(t *testing.T) {
	_, err := New(Options{Bucket: "hub"})
	assert.Error(t, err)

	_, err = New(Options{Endpoint: "localhost:9000"})
	assert.Error(t, err)
}

func TestPresignedURL(t *testing.T) {
	store, err := New(Options{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "hub",
	})
	require.NoError(t, err)

	url, err := store.PresignedURL(context.Background(), "machinery/abc/photo.jpg", 15*time.Minute)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/hub/machinery/abc/photo.jpg?"))
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=900")
}

func TestObjectKey(t *testing.T) {
	owner := uuid.New()

	key := ObjectKey("machinery", owner, "Front View.JPG")
	assert.True(t, strings.HasPrefix(key, "machinery/"+owner.String()+"/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	assert.NotEqual(t, key, ObjectKey("machinery", owner, "Front View.JPG"))
}
