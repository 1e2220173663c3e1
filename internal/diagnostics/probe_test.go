package diagnostics_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coinsguard/coinsguard-api/internal/database/sqlite"
	"github.com/coinsguard/coinsguard-api/internal/diagnostics"
	"github.com/coinsguard/coinsguard-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	available bool
	names     []string
	err       error
	calls     int
	deadline  bool
}

func (f *fakeTarget) Available() bool     { return f.available }
func (f *fakeTarget) BackendName() string { return "mongodb" }

func (f *fakeTarget) ListCollections(ctx context.Context) ([]string, error) {
	f.calls++
	_, f.deadline = ctx.Deadline()
	return f.names, f.err
}

func TestProbe_NotInitialized(t *testing.T) {
	target := &fakeTarget{available: false}
	probe := diagnostics.NewProbe(target, diagnostics.Settings{}, time.Second)

	report := probe.Run(context.Background())

	assert.Equal(t, diagnostics.StateNotInitialized, report.State)
	assert.Equal(t, "✅ Running", report.Backend)
	assert.Equal(t, "⚠️  Available but not initialized", report.Database)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.Equal(t, "❌ Not Set", report.DatabaseURL)
	assert.Equal(t, "❌ Not Set", report.DatabaseName)
	assert.NotNil(t, report.Collections)
	assert.Empty(t, report.Collections)
	assert.Zero(t, target.calls)
}

func TestProbe_NilTarget(t *testing.T) {
	report := diagnostics.NewProbe(nil, diagnostics.Settings{URLConfigured: true}, 0).Run(context.Background())
	assert.Equal(t, diagnostics.StateNotInitialized, report.State)
	assert.Equal(t, "✅ Set", report.DatabaseURL)
}

func TestProbe_Degraded(t *testing.T) {
	target := &fakeTarget{
		available: true,
		err:       errors.New("server selection error: context deadline exceeded, current topology: { Type: Unknown }"),
	}
	probe := diagnostics.NewProbe(target, diagnostics.Settings{URLConfigured: true, NameConfigured: true}, time.Second)

	report := probe.Run(context.Background())

	assert.Equal(t, diagnostics.StateDegraded, report.State)
	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.LessOrEqual(t, len([]rune(report.Error)), 50)
	assert.Equal(t, "server selection error: context deadline exceeded,", report.Error)
	assert.True(t, strings.HasPrefix(report.Database, "⚠️  Connected but Error: "))
	assert.Empty(t, report.Collections)
	assert.True(t, target.deadline)
}

func TestProbe_Connected(t *testing.T) {
	names := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		names = append(names, fmt.Sprintf("c%02d", i))
	}
	target := &fakeTarget{available: true, names: names}
	probe := diagnostics.NewProbe(target, diagnostics.Settings{URLConfigured: true, NameConfigured: true}, time.Second)

	report := probe.Run(context.Background())

	require.Equal(t, diagnostics.StateConnected, report.State)
	assert.Equal(t, "✅ Connected & Working", report.Database)
	assert.Equal(t, "mongodb", report.Driver)
	assert.Len(t, report.Collections, 10)
	assert.Equal(t, "c00", report.Collections[0])
	assert.Empty(t, report.Error)
	assert.Equal(t, 1, target.calls)
}

func TestProbe_ConnectedWithoutCollections(t *testing.T) {
	report := diagnostics.NewProbe(&fakeTarget{available: true}, diagnostics.Settings{}, 0).Run(context.Background())
	assert.Equal(t, diagnostics.StateConnected, report.State)
	assert.NotNil(t, report.Collections)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", diagnostics.Excerpt("short", 50))
	assert.Equal(t, "äöü", diagnostics.Excerpt("äöüß", 3))
}

func TestProbe_DegradedShowsDriverError(t *testing.T) {
	ctx := context.Background()
	backend, err := sqlite.NewClient(ctx, "sqlite://"+filepath.Join(t.TempDir(), "probe.db"), "")
	require.NoError(t, err)

	store := repository.NewDocumentStore(backend, repository.StoreOptions{OperationTimeout: time.Second})
	require.NoError(t, store.Close(ctx))

	report := diagnostics.NewProbe(store, diagnostics.Settings{URLConfigured: true}, time.Second).Run(ctx)

	assert.Equal(t, diagnostics.StateDegraded, report.State)
	assert.Equal(t, "sqlite", report.Driver)
	assert.Equal(t, "sql: database is closed", report.Error)
	assert.Equal(t, "⚠️  Connected but Error: sql: database is closed", report.Database)
}
