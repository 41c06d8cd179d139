package minio

import (
	"context"
	"testing"

	"github.com/hupe1980/docstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
)

// TestStorage_Integration requires a running MinIO instance.
// Skip if not available.
func TestStorage_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-docstore"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	_, err = client.ListBuckets(ctx)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		require.NoError(t, err)
	}

	store := NewStorage(client, bucket, WithPrefix("it"))
	t.Cleanup(func() { _ = store.Clear(ctx) })

	// Round trip
	data := []byte("hello docstore")
	require.NoError(t, store.Set(ctx, "greeting.txt", data))

	got, err := store.Get(ctx, "greeting.txt")
	require.NoError(t, err)
	require.Equal(t, data, got)

	// Missing keys read as nil, not an error
	got, err = store.Get(ctx, "missing.txt")
	require.NoError(t, err)
	require.Nil(t, got)

	// Has / Delete
	ok, err := store.Has(ctx, "greeting.txt")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Delete(ctx, "greeting.txt"))
	ok, err = store.Has(ctx, "greeting.txt")
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, store.Delete(ctx, "greeting.txt"))

	// Find and GetText over document objects
	require.NoError(t, store.Set(ctx, "docs/a.txt", []byte("alpha")))
	require.NoError(t, store.Set(ctx, "docs/b.bin", []byte{0x1}))

	var names []string
	for rec, ferr := range store.Find(ctx, docstore.WithBaseDir("docs")) {
		require.NoError(t, ferr)
		names = append(names, rec.Name)
	}
	require.Equal(t, []string{"a.txt"}, names)

	text, err := store.GetText(ctx, "docs/a.txt")
	require.NoError(t, err)
	require.Equal(t, "alpha", text)

	// Child scoping
	child := store.Child("docs")
	got, err = child.Get(ctx, "a.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("alpha"), got)

	// Clear removes everything under the prefix
	require.NoError(t, store.Clear(ctx))
	ok, err = store.Has(ctx, "docs/a.txt")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStorage_ChildPrefix(t *testing.T) {
	store := NewStorage(nil, "bucket", WithPrefix("root"))

	child := store.Child("sub").(*Storage)
	require.Equal(t, "root/sub/key.txt", child.key("key.txt"))

	same := store.Child("")
	require.Same(t, store, same)
}
