package services

import "context"

type MirrorStatus int

const (
	// MirrorSkipped: not connected, the record was never mirrored, or the
	// backend had nothing to act on.
	MirrorSkipped MirrorStatus = iota
	MirrorApplied
	MirrorFailed
)

func (s MirrorStatus) String() string {
	switch s {
	case MirrorApplied:
		return "applied"
	case MirrorFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// Mirror reports what happened to the remote copy of a local mutation. The
// local change is kept in every case.
type Mirror struct {
	Status MirrorStatus
	Err    error
}

func (m Mirror) Applied() bool { return m.Status == MirrorApplied }

var skipped = Mirror{Status: MirrorSkipped}

func (c *Coordinator) mirrorFailed(ctx context.Context, op string, err error) Mirror {
	c.logger.Warn(ctx, "remote mirror failed", "op", op, "error", err)
	return Mirror{Status: MirrorFailed, Err: err}
}
