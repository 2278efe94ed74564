// Package system implements the host telemetry use case.
package system

import (
	"context"

	"github.com/bnema/zerowrap"

	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
)

// Service implements the SystemService interface.
type Service struct {
	probe out.SystemProbe
}

// NewService creates a new system service.
func NewService(probe out.SystemProbe) *Service {
	return &Service{probe: probe}
}

// Snapshot returns the current host resource usage.
func (s *Service) Snapshot(ctx context.Context) (domain.SystemSnapshot, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Snapshot",
	})
	log := zerowrap.FromCtx(ctx)

	snap, err := s.probe.Snapshot(ctx)
	if err != nil {
		return domain.SystemSnapshot{}, log.WrapErr(err, "failed to read system snapshot")
	}
	if snap.UsedMemory > snap.TotalMemory {
		snap.UsedMemory = snap.TotalMemory
	}
	if snap.UsedSwap > snap.TotalSwap {
		snap.UsedSwap = snap.TotalSwap
	}

	log.Debug().
		Uint64("total_memory", snap.TotalMemory).
		Float64("cpu_usage", snap.CPUUsage).
		Int("disks", len(snap.Disks)).
		Msg("system snapshot taken")
	return snap, nil
}
