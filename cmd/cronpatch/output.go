package main

import (
	"fmt"
	"io"

	"github.com/aatumaykin/cronpatch/internal/constants"
	"github.com/aatumaykin/cronpatch/internal/patcher"
)

// printOutcome prints the dry-run notice or the backup, summary and restore lines.
// summary is the already formatted "Total updated" line.
func printOutcome(out io.Writer, res patcher.Result, summary string) {
	if res.DryRun {
		fmt.Fprintf(out, constants.MsgDryRun, res.Updated)
		return
	}
	fmt.Fprintf(out, constants.MsgBackupWritten, res.BackupPath)
	fmt.Fprint(out, summary)
	fmt.Fprintf(out, constants.MsgRestoreHint, res.BackupPath, res.Path)
}
