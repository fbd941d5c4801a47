package queries

import (
	"context"
	"sort"

	"queueless/internal/domain/timeslot"
	"queueless/internal/pkg/errs"

	"github.com/google/uuid"
)

// DirectoryQueries lists where a token can be booked.
type DirectoryQueries interface {
	ListDepartments(ctx context.Context) ([]*DepartmentView, error)
}

type DepartmentCatalog interface {
	Departments() []timeslot.Department
	Slots(departmentID uuid.UUID) ([]timeslot.TimeSlot, error)
}

type directoryQueriesImpl struct {
	catalog DepartmentCatalog
}

func NewDirectoryQueries(catalog DepartmentCatalog) DirectoryQueries {
	return &directoryQueriesImpl{catalog: catalog}
}

// ListDepartments is ordered by service center, then department name.
func (q *directoryQueriesImpl) ListDepartments(_ context.Context) ([]*DepartmentView, error) {
	departments := q.catalog.Departments()
	out := make([]*DepartmentView, 0, len(departments))
	for _, dept := range departments {
		slots, err := q.catalog.Slots(dept.ID)
		if errs.Is(err, timeslot.ErrDepartmentNotFound) {
			// removed by a concurrent sync
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, NewDepartmentView(dept, slots))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ServiceCenterName < out[j].ServiceCenterName
	})
	return out, nil
}
