package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/coinsguard/coinsguard-api/internal/database/sqlite"
	"github.com/coinsguard/coinsguard-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *sqlite.Client {
	t.Helper()

	url := "sqlite://" + filepath.Join(t.TempDir(), "coinsguard.db")
	client, err := sqlite.NewClient(context.Background(), url, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close(context.Background()) })
	return client
}

func TestNewClient_DatabaseName(t *testing.T) {
	client := newTestClient(t)
	assert.Equal(t, "sqlite", client.Name())
	assert.Equal(t, "coinsguard", client.Database())

	named, err := sqlite.NewClient(context.Background(), "sqlite://"+filepath.Join(t.TempDir(), "x.db"), "forms")
	require.NoError(t, err)
	defer named.Close(context.Background())
	assert.Equal(t, "forms", named.Database())
}

func TestClient_InsertAndFind(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for _, name := range []string{"Jane Doe", "John Roe", "Erika Muster"} {
		doc := map[string]any{"name": name, "asset": "BTC", "amount": nil}
		doc[models.CreatedAtField] = time.Now().UTC()

		id, err := client.Insert(ctx, "recoveryrequest", doc)
		require.NoError(t, err)
		_, err = uuid.Parse(id)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	docs, err := client.Find(ctx, "recoveryrequest", nil, 5)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	for i, d := range docs {
		assert.Equal(t, ids[i], d["_id"])
		assert.IsType(t, "", d["_id"])
	}
	assert.Equal(t, "Jane Doe", docs[0]["name"])
	assert.Nil(t, docs[0]["amount"])

	docs, err = client.Find(ctx, "recoveryrequest", nil, 2)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = client.Find(ctx, "recoveryrequest", map[string]any{"name": "John Roe"}, 5)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, ids[1], docs[0].ID())
}

func TestClient_CollectionsAreIsolated(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Insert(ctx, "contactmessage", map[string]any{"name": "Anna"})
	require.NoError(t, err)
	_, err = client.Insert(ctx, "recoveryrequest", map[string]any{"name": "Jane Doe"})
	require.NoError(t, err)

	docs, err := client.Find(ctx, "contactmessage", nil, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Anna", docs[0]["name"])

	names, err := client.ListCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"contactmessage", "recoveryrequest"}, names)
}

func TestClient_FindMissingCollection(t *testing.T) {
	client := newTestClient(t)

	docs, err := client.Find(context.Background(), "nothing_here", nil, 5)
	require.NoError(t, err)
	assert.Empty(t, docs)

	names, err := client.ListCollections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestClient_FilterKeyIsNotInjectable(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Insert(ctx, "contactmessage", map[string]any{"name": "Anna"})
	require.NoError(t, err)

	docs, err := client.Find(ctx, "contactmessage", map[string]any{`name") OR 1=1 --`: "x"}, 5)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestClient_ConcurrentInserts(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := client.Insert(ctx, "contactmessage", map[string]any{"name": fmt.Sprintf("user-%d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	docs, err := client.Find(ctx, "contactmessage", nil, 100)
	require.NoError(t, err)
	assert.Len(t, docs, 20)
}
