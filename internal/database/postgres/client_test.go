package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/coinsguard/coinsguard-api/internal/database/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *postgres.Client {
	t.Helper()

	url := os.Getenv("DATABASE_TEST_URL")
	if url == "" {
		t.Skip("DATABASE_TEST_URL not set, skipping PostgreSQL integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := postgres.NewClient(ctx, postgres.Config{URL: url, MaxConns: 2})
	if err != nil {
		t.Skipf("PostgreSQL not reachable: %v", err)
	}
	t.Cleanup(func() { _ = client.Close(context.Background()) })
	return client
}

func TestClient_InsertAndFind(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	collection := "recoveryrequest_" + uuid.NewString()[:8]

	for _, name := range []string{"Jane Doe", "John Roe", "Erika Muster"} {
		id, err := client.Insert(ctx, collection, map[string]any{"name": name, "asset": "BTC"})
		require.NoError(t, err)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
	}

	docs, err := client.Find(ctx, collection, nil, 5)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "Jane Doe", docs[0]["name"])
	for _, d := range docs {
		assert.IsType(t, "", d["_id"])
	}

	docs, err = client.Find(ctx, collection, map[string]any{"name": "John Roe"}, 5)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	docs, err = client.Find(ctx, collection, nil, 2)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	names, err := client.ListCollections(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, collection)
}

func TestClient_FindMissingCollection(t *testing.T) {
	client := newTestClient(t)

	docs, err := client.Find(context.Background(), "missing_"+uuid.NewString()[:8], nil, 5)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
