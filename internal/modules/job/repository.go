package job

import (
	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Repository defines service job data storage. The coordinated
// mutations (mechanic attach, status write with release, part
// consumption) are single calls so the store can make them atomic.
type Repository interface {
	Jobs() []*model.ServiceJob
	Job(id uuid.UUID) (*model.ServiceJob, error)
	InsertJob(job *model.ServiceJob)
	AssignJobMechanic(jobID uuid.UUID, mech *model.User) (*model.ServiceJob, error)
	UpdateJobStatus(jobID uuid.UUID, status model.JobStatus, note string) (*model.ServiceJob, error)
	AttachPart(jobID, itemID uuid.UUID) bool
}

// MechanicRoster is the slice of the user store the engine needs:
// resolving a mechanic and atomically claiming a free one.
type MechanicRoster interface {
	User(id uuid.UUID) (*model.User, error)
	ClaimMechanic(id uuid.UUID) (*model.User, bool)
}

// Notifier pushes fire-and-forget messages to users.
type Notifier interface {
	PushNotification(userID uuid.UUID, message string) *model.Notification
}

// Ledger records completed monetary events.
type Ledger interface {
	AppendTransaction(t *model.Transaction)
}
