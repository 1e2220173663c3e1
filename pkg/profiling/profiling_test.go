package profiling

import (
	"runtime"
	"testing"

	"github.com/coinsguard/coinsguard-api/config"
	"github.com/grafana/pyroscope-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleTypes_Default(t *testing.T) {
	for _, value := range []string{"", "  ", ",,"} {
		got, err := sampleTypes(value)
		require.NoError(t, err, value)
		assert.Equal(t, []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileGoroutines,
		}, got, value)
	}
}

func TestSampleTypes_GroupsExpandAndDeduplicate(t *testing.T) {
	got, err := sampleTypes("CPU, mutex,cpu,inuse")
	require.NoError(t, err)

	assert.Equal(t, []pyroscope.ProfileType{
		pyroscope.ProfileCPU,
		pyroscope.ProfileMutexCount,
		pyroscope.ProfileMutexDuration,
		pyroscope.ProfileInuseObjects,
		pyroscope.ProfileInuseSpace,
	}, got)
}

func TestSampleTypes_Unknown(t *testing.T) {
	_, err := sampleTypes("cpu,alloc_space")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported O11Y_PROFILING_SAMPLE_TYPES value "alloc_space"`)
}

func TestEnableRuntimeSampling(t *testing.T) {
	before := runtime.SetMutexProfileFraction(-1)

	restore := enableRuntimeSampling([]pyroscope.ProfileType{pyroscope.ProfileMutexCount, pyroscope.ProfileBlockCount})
	assert.Equal(t, mutexProfileFraction, runtime.SetMutexProfileFraction(-1))

	restore()
	assert.Equal(t, before, runtime.SetMutexProfileFraction(-1))
}

func TestApplicationName(t *testing.T) {
	assert.Equal(t, "cg-profiles", applicationName(" cg-profiles ", "coinsguard-api"))
	assert.Equal(t, "coinsguard-api-staging", applicationName("", "coinsguard-api-staging"))
	assert.Equal(t, "coinsguard-api", applicationName("", ""))
}

func TestTags(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{AppEnv: "production"},
		Observability: config.ObservabilityConfig{
			ServiceName:      "coinsguard-api",
			ServiceNamespace: "coinsguard",
			ServiceVersion:   "1.0.0",
		},
	}

	assert.Equal(t, map[string]string{
		"environment":  "production",
		"service_name": "coinsguard-api",
		"namespace":    "coinsguard",
		"version":      "1.0.0",
	}, tags(cfg))

	cfg.Observability.ServiceInstanceID = "pod-7"
	assert.Equal(t, "pod-7", tags(cfg)["instance"])
}

func TestStart_DisabledIsNoop(t *testing.T) {
	stop, err := Start(&config.Config{})
	require.NoError(t, err)
	require.NotNil(t, stop)
	stop()
}

func TestStart_EnabledWithoutEndpoint(t *testing.T) {
	_, err := Start(&config.Config{Profiling: config.ProfilingConfig{Enabled: true, Endpoint: "  "}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "O11Y_PROFILING_ENDPOINT")
}

func TestStart_RejectsUnknownSampleType(t *testing.T) {
	_, err := Start(&config.Config{Profiling: config.ProfilingConfig{
		Enabled:     true,
		Endpoint:    "http://pyroscope:4040",
		SampleTypes: "heap",
	}})
	require.Error(t, err)
}
