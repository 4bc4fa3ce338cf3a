package main

import (
	"log/slog"
	"time"
)

// Editors release their lock on unmount, but a crashed browser or lost
// connection leaves the lock behind. This job expires those locks so the
// survey becomes editable again.
func main() {
	slog.Info("Starting lock cleanup job")
	start := time.Now()

	cutoff := start.Add(-maxLockAge)

	for _, instanceID := range conf.InstanceIDs {
		slog.Debug("Start cleaning up edit locks for instance", slog.String("instanceID", instanceID))

		count, err := surveyDBService.DeleteStaleEditLocks(instanceID, cutoff)
		if err != nil {
			slog.Error("Failed to delete stale edit locks", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
			continue
		}

		if count > 0 {
			slog.Info("Removed stale edit locks", slog.String("instanceID", instanceID), slog.Int64("count", count))
		}
	}

	slog.Info("Lock cleanup job completed", slog.String("duration", time.Since(start).String()))
}
