package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aatumaykin/cronpatch/internal/constants"
	"github.com/aatumaykin/cronpatch/internal/version"
)

var (
	Version   string = constants.DefaultVersion
	BuildTime string = constants.DefaultBuildTime
	GitCommit string = constants.DefaultGitCommit
	GoVersion string = constants.DefaultGoVersion
)

func init() {
	version.SetInfo(Version, BuildTime, GitCommit, GoVersion)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process status: 0 on success, 1 on any failure.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
