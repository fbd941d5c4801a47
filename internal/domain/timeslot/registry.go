package timeslot

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Department is the directory information the queue needs about a department.
type Department struct {
	ID                uuid.UUID
	Name              string
	ServiceCenterID   uuid.UUID
	ServiceCenterName string
}

type departmentEntry struct {
	info  Department
	slots []TimeSlot // sorted by start, non-overlapping
}

// Registry holds the slot configuration of every department. Reads are
// concurrent; replacements are atomic per department.
type Registry struct {
	mu          sync.RWMutex
	loc         *time.Location
	departments map[uuid.UUID]*departmentEntry
}

func NewRegistry(loc *time.Location) *Registry {
	if loc == nil {
		loc = time.UTC
	}
	return &Registry{
		loc:         loc,
		departments: make(map[uuid.UUID]*departmentEntry),
	}
}

func (r *Registry) Location() *time.Location {
	return r.loc
}

func (r *Registry) Department(id uuid.UUID) (Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.departments[id]
	if !ok {
		return Department{}, ErrDepartmentNotFound
	}
	return entry.info, nil
}

func (r *Registry) Departments() []Department {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Department, 0, len(r.departments))
	for _, entry := range r.departments {
		out = append(out, entry.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FindApplicableSlot returns the occurrence of the department slot whose
// window contains at. Instants between slots have no applicable slot.
func (r *Registry) FindApplicableSlot(departmentID uuid.UUID, at time.Time) (Occurrence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.departments[departmentID]
	if !ok {
		return Occurrence{}, ErrDepartmentNotFound
	}
	day := DayOf(at, r.loc)
	for _, slot := range entry.slots {
		occ := slot.On(day, r.loc)
		if occ.Contains(at) {
			return occ, nil
		}
	}
	return Occurrence{}, ErrSlotNotFound
}

// Slots lists the department slots, earliest first.
func (r *Registry) Slots(departmentID uuid.UUID) ([]TimeSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.departments[departmentID]
	if !ok {
		return nil, ErrDepartmentNotFound
	}
	out := make([]TimeSlot, len(entry.slots))
	copy(out, entry.slots)
	return out, nil
}

// OccurrencesOn lists the department slots materialized on day, earliest first.
func (r *Registry) OccurrencesOn(departmentID uuid.UUID, day Day) ([]Occurrence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.departments[departmentID]
	if !ok {
		return nil, ErrDepartmentNotFound
	}
	out := make([]Occurrence, 0, len(entry.slots))
	for _, slot := range entry.slots {
		out = append(out, slot.On(day, r.loc))
	}
	return out, nil
}

// ReplaceDepartment swaps the department configuration in one step.
// inUse reports whether a currently configured slot has admitted tokens; such
// slots must survive the replacement unchanged or the whole call is rejected.
func (r *Registry) ReplaceDepartment(info Department, slots []TimeSlot, inUse func(slotID uuid.UUID) bool) error {
	if info.ID == uuid.Nil {
		return fmt.Errorf("%w: department id is required", ErrInvalidSlot)
	}

	sorted := make([]TimeSlot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start().Before(sorted[j].Start()) })

	for i, slot := range sorted {
		if slot.DepartmentID() != info.ID {
			return fmt.Errorf("%w: slot %s belongs to department %s", ErrInvalidSlot, slot.ID(), slot.DepartmentID())
		}
		if i > 0 && sorted[i-1].Overlaps(slot) {
			return fmt.Errorf("%w: %s-%s and %s-%s", ErrSlotOverlap,
				sorted[i-1].Start(), sorted[i-1].End(), slot.Start(), slot.End())
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.departments[info.ID]; ok && inUse != nil {
		next := make(map[uuid.UUID]TimeSlot, len(sorted))
		for _, slot := range sorted {
			next[slot.ID()] = slot
		}
		for _, old := range current.slots {
			replacement, kept := next[old.ID()]
			if kept && replacement.SameDefinition(old) {
				continue
			}
			if inUse(old.ID()) {
				return fmt.Errorf("%w: %s", ErrSlotInUse, old.ID())
			}
		}
	}

	r.departments[info.ID] = &departmentEntry{info: info, slots: sorted}
	return nil
}

// RemoveDepartment drops a department unless one of its slots is in use.
func (r *Registry) RemoveDepartment(id uuid.UUID, inUse func(slotID uuid.UUID) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.departments[id]
	if !ok {
		return ErrDepartmentNotFound
	}
	if inUse != nil {
		for _, slot := range entry.slots {
			if inUse(slot.ID()) {
				return fmt.Errorf("%w: %s", ErrSlotInUse, slot.ID())
			}
		}
	}
	delete(r.departments, id)
	return nil
}

func (r *Registry) DepartmentIDs() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(r.departments))
	for id := range r.departments {
		ids = append(ids, id)
	}
	return ids
}
