package convert

import (
	"time"

	"github.com/iudanet/onepif2kdbx/internal/models"
	"github.com/iudanet/onepif2kdbx/internal/target"
)

// HistoryStep is one state of an entry to be recorded in its history log.
type HistoryStep struct {
	ModifiedAt time.Time
	Password   string
}

// PlanHistory computes the snapshots that reproduce history, oldest first in
// input order, followed by the state to restore afterwards.
func PlanHistory(password string, modifiedAt time.Time, history []models.HistoryEntry) (steps []HistoryStep, restore HistoryStep) {
	steps = make([]HistoryStep, 0, len(history))
	for _, h := range history {
		steps = append(steps, HistoryStep{ModifiedAt: h.Time, Password: h.Password})
	}
	return steps, HistoryStep{ModifiedAt: modifiedAt, Password: password}
}

// ReplayHistory records every history step as a snapshot of e and then
// restores the live password and modification time.
//
// The target takes snapshots of the current state only, so each old password
// is set, snapshotted, and the current one put back at the end.
func ReplayHistory(e target.EntryHandle, password string, modifiedAt time.Time, history []models.HistoryEntry) {
	steps, restore := PlanHistory(password, modifiedAt, history)
	for _, s := range steps {
		e.SetModifiedAt(s.ModifiedAt)
		e.SetPassword(s.Password)
		e.SnapshotHistory()
	}
	e.SetPassword(restore.Password)
	e.SetModifiedAt(restore.ModifiedAt)
}
