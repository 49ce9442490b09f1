package constants

// DefaultVersion is the default version of the application
const DefaultVersion = "0.1.0-dev"

// DefaultBuildTime is the default build time when not provided at build time
const DefaultBuildTime = "unknown"

// DefaultGitCommit is the default git commit hash when not provided at build time
const DefaultGitCommit = "unknown"

// DefaultGoVersion is the default Go version when not provided at build time
const DefaultGoVersion = "unknown"

// DefaultModel is the model assigned by set-model when none is given
const DefaultModel = "cursor/auto"

// EnvPrefix is the prefix of every environment variable read by cronpatch
const EnvPrefix = "OPENCLAW_CRON_"

// MetricsNamespace is the Prometheus namespace of run metrics
const MetricsNamespace = "cronpatch"
