package store

import (
	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Jobs returns all service jobs in insertion order.
func (s *Store) Jobs() []*model.ServiceJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.ServiceJob, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, cloneJob(j))
	}
	return out
}

// Job returns the service job with the given id.
func (s *Store) Job(id uuid.UUID) (*model.ServiceJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := s.findJob(id)
	if j == nil {
		return nil, ErrNotFound
	}
	return cloneJob(j), nil
}

// InsertJob stores a fully built job. Mechanic claiming, when the job
// comes in pre-assigned, happens separately via ClaimMechanic.
func (s *Store) InsertJob(job *model.ServiceJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, cloneJob(job))
}

// AssignJobMechanic attaches the mechanic to the job with overwrite
// semantics: the mechanic snapshot and the diagnosing status are set
// unconditionally, and the mechanic is flagged busy in the same
// critical section. A previously attached mechanic is not released.
// Completed jobs are terminal and stay untouched.
func (s *Store) AssignJobMechanic(jobID uuid.UUID, mech *model.User) (*model.ServiceJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := s.findJob(jobID)
	if j == nil {
		return nil, ErrNotFound
	}
	if j.Status.Terminal() {
		return cloneJob(j), nil
	}
	id := mech.ID
	j.MechanicID = &id
	j.MechanicName = mech.Name
	j.Status = model.JobDiagnosing
	s.setBusy(mech.ID, true)
	return cloneJob(j), nil
}

// UpdateJobStatus writes the status and pickup note. Writing ready or
// completed releases the assigned mechanic inside the same critical
// section, so the release can never happen independently of the
// transition. Completed jobs are terminal and stay untouched.
func (s *Store) UpdateJobStatus(jobID uuid.UUID, status model.JobStatus, note string) (*model.ServiceJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := s.findJob(jobID)
	if j == nil {
		return nil, ErrNotFound
	}
	if j.Status.Terminal() {
		return cloneJob(j), nil
	}
	if status.ReleasesMechanic() && j.MechanicID != nil {
		s.setBusy(*j.MechanicID, false)
	}
	j.Status = status
	j.PickupNote = note
	return cloneJob(j), nil
}

// AttachPart consumes one unit of the item for the job: the stock
// decrement and the parts-used snapshot append happen together or not
// at all. Returns false, mutating nothing, when the job or item is
// unknown or the item is out of stock.
func (s *Store) AttachPart(jobID, itemID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := s.findJob(jobID)
	i := s.findItem(itemID)
	if j == nil || i == nil || i.Stock <= 0 {
		return false
	}
	i.Stock--
	j.PartsUsed = append(j.PartsUsed, model.PartUsed{
		ItemID: i.ID,
		Name:   i.Name,
		Qty:    1,
		Price:  i.Price,
	})
	return true
}

func (s *Store) findJob(id uuid.UUID) *model.ServiceJob {
	for _, j := range s.jobs {
		if j.ID == id {
			return j
		}
	}
	return nil
}
