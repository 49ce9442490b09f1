package constants

// DefaultEnvPath is the default path to the .env file
const DefaultEnvPath = "./.env"

// DefaultConfigPath is the default path to the cronpatch config file
const DefaultConfigPath = "~/.openclaw/cronpatch.toml"

// DefaultJobsPath is the default location of the OpenClaw cron jobs file
const DefaultJobsPath = "~/.openclaw/cron/jobs.json"
