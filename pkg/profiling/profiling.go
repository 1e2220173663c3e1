package profiling

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/coinsguard/coinsguard-api/config"
	"github.com/coinsguard/coinsguard-api/pkg/logger"
	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

// sampleGroups are the names accepted in O11Y_PROFILING_SAMPLE_TYPES
var sampleGroups = map[string][]pyroscope.ProfileType{
	"cpu":        {pyroscope.ProfileCPU},
	"alloc":      {pyroscope.ProfileAllocObjects, pyroscope.ProfileAllocSpace},
	"inuse":      {pyroscope.ProfileInuseObjects, pyroscope.ProfileInuseSpace},
	"goroutines": {pyroscope.ProfileGoroutines},
	"mutex":      {pyroscope.ProfileMutexCount, pyroscope.ProfileMutexDuration},
	"block":      {pyroscope.ProfileBlockCount, pyroscope.ProfileBlockDuration},
}

const (
	defaultSampleTypes    = "cpu,alloc,goroutines"
	defaultUploadInterval = 15 * time.Second
	defaultAppName        = "coinsguard-api"

	// Runtime sampling applied only while mutex or block profiles are collected
	mutexProfileFraction = 5
	blockProfileRate     = 5
)

// Start begins continuous profiling when O11Y_PROFILING_ENABLED is set.
// The returned stop function is never nil.
func Start(cfg *config.Config) (func(), error) {
	p := cfg.Profiling
	if !p.Enabled {
		logger.Info("Continuous profiling disabled")
		return func() {}, nil
	}

	endpoint := strings.TrimSpace(p.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	types, err := sampleTypes(p.SampleTypes)
	if err != nil {
		return nil, err
	}

	upload := time.Duration(p.UploadIntervalSeconds) * time.Second
	if upload <= 0 {
		upload = defaultUploadInterval
	}

	restoreSampling := enableRuntimeSampling(types)
	appName := applicationName(p.AppName, cfg.Observability.ServiceName)

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: appName,
		Tags:            tags(cfg),
		ServerAddress:   endpoint,
		UploadRate:      upload,
		ProfileTypes:    types,
		Logger:          logger.With(zap.String("component", "pyroscope")).Sugar(),
	})
	if err != nil {
		restoreSampling()
		return nil, fmt.Errorf("failed to start profiler: %w", err)
	}

	logger.Info("Continuous profiling started",
		zap.String("application_name", appName),
		zap.String("endpoint", endpoint),
		zap.Duration("upload_interval", upload),
		zap.Int("profile_types", len(types)),
	)

	return func() {
		if stopErr := profiler.Stop(); stopErr != nil {
			logger.Error("Failed to stop profiler", zap.Error(stopErr))
		}
		restoreSampling()
	}, nil
}

// sampleTypes expands a comma separated list of sample groups. An empty
// list selects cpu, alloc and goroutines.
func sampleTypes(value string) ([]pyroscope.ProfileType, error) {
	if strings.TrimSpace(value) == "" {
		value = defaultSampleTypes
	}

	var types []pyroscope.ProfileType
	for _, name := range strings.Split(value, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		group, ok := sampleGroups[name]
		if !ok {
			return nil, fmt.Errorf("unsupported O11Y_PROFILING_SAMPLE_TYPES value %q", name)
		}
		for _, t := range group {
			if !slices.Contains(types, t) {
				types = append(types, t)
			}
		}
	}

	if len(types) == 0 {
		return sampleTypes(defaultSampleTypes)
	}
	return types, nil
}

// enableRuntimeSampling turns on the runtime counters that mutex and block
// profiles read, and returns a func restoring the previous settings
func enableRuntimeSampling(types []pyroscope.ProfileType) func() {
	var restore []func()

	if slices.Contains(types, pyroscope.ProfileMutexCount) {
		prev := runtime.SetMutexProfileFraction(mutexProfileFraction)
		restore = append(restore, func() { runtime.SetMutexProfileFraction(prev) })
	}
	if slices.Contains(types, pyroscope.ProfileBlockCount) {
		runtime.SetBlockProfileRate(blockProfileRate)
		restore = append(restore, func() { runtime.SetBlockProfileRate(0) })
	}

	return func() {
		for _, fn := range restore {
			fn()
		}
	}
}

func applicationName(appName, serviceName string) string {
	if name := strings.TrimSpace(appName); name != "" {
		return name
	}
	if name := strings.TrimSpace(serviceName); name != "" {
		return name
	}
	return defaultAppName
}

// tags label every uploaded profile; empty settings are left out
func tags(cfg *config.Config) map[string]string {
	obs := cfg.Observability
	candidates := map[string]string{
		"environment":  cfg.Server.AppEnv,
		"service_name": obs.ServiceName,
		"namespace":    obs.ServiceNamespace,
		"version":      obs.ServiceVersion,
		"instance":     obs.ServiceInstanceID,
	}

	out := make(map[string]string, len(candidates))
	for k, v := range candidates {
		if v = strings.TrimSpace(v); v != "" {
			out[k] = v
		}
	}
	return out
}
