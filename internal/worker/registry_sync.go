package worker

import (
	"context"
	"log/slog"
	"time"

	"queueless/internal/domain/timeslot"
	"queueless/internal/infra/readstore"
	"queueless/internal/pkg/clock"
	"queueless/internal/pkg/errs"

	"github.com/google/uuid"
)

type DirectoryLoader interface {
	LoadDirectory(ctx context.Context) ([]readstore.DepartmentConfig, []error, error)
}

type SlotUsage interface {
	SlotInUse(slotID uuid.UUID, from timeslot.Day) bool
}

// RegistrySync keeps the in-memory slot registry in line with the
// department configuration stored in the database.
type RegistrySync struct {
	loader   DirectoryLoader
	registry *timeslot.Registry
	usage    SlotUsage
	clock    clock.Clock
	logger   *slog.Logger
	periodic *periodic
}

func NewRegistrySync(
	loader DirectoryLoader,
	registry *timeslot.Registry,
	usage SlotUsage,
	clk clock.Clock,
	interval time.Duration,
	logger *slog.Logger,
) *RegistrySync {
	if logger == nil {
		logger = slog.Default()
	}
	w := &RegistrySync{
		loader:   loader,
		registry: registry,
		usage:    usage,
		clock:    clk,
		logger:   logger,
	}
	w.periodic = &periodic{name: "registry_sync", interval: interval, fn: w.Sync, logger: logger}
	return w
}

// Start loads the directory once before returning so the API never serves
// an empty registry.
func (w *RegistrySync) Start(ctx context.Context) error {
	return w.periodic.start(ctx, true)
}

func (w *RegistrySync) Stop(ctx context.Context) error {
	return w.periodic.stop(ctx)
}

// Sync applies one directory snapshot. Departments whose changes would
// disturb admitted tokens keep their current configuration until those
// tokens are gone.
func (w *RegistrySync) Sync(ctx context.Context) error {
	configs, invalid, err := w.loader.LoadDirectory(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to load department directory")
	}
	for _, e := range invalid {
		w.logger.Warn("skipping invalid time slot", "error", e)
	}

	today := timeslot.DayOf(w.clock.Now(), w.registry.Location())
	inUse := func(slotID uuid.UUID) bool {
		return w.usage.SlotInUse(slotID, today)
	}

	seen := make(map[uuid.UUID]struct{}, len(configs))
	applied := 0
	for _, cfg := range configs {
		seen[cfg.Department.ID] = struct{}{}
		if err := w.registry.ReplaceDepartment(cfg.Department, cfg.Slots, inUse); err != nil {
			w.logger.Warn("keeping previous department configuration",
				"department_id", cfg.Department.ID, "department", cfg.Department.Name, "error", err)
			continue
		}
		applied++
	}

	for _, id := range w.registry.DepartmentIDs() {
		if _, ok := seen[id]; ok {
			continue
		}
		if err := w.registry.RemoveDepartment(id, inUse); err != nil {
			w.logger.Warn("keeping deactivated department", "department_id", id, "error", err)
		}
	}

	w.logger.Debug("registry synchronized", "departments", applied, "invalid_slots", len(invalid))
	return nil
}
