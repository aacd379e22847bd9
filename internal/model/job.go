package model

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the lifecycle state of a service job.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobDiagnosing JobStatus = "diagnosing"
	JobRepairing  JobStatus = "repairing"
	JobWashing    JobStatus = "washing"
	JobReady      JobStatus = "ready"
	JobCompleted  JobStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobPending, JobDiagnosing, JobRepairing, JobWashing, JobReady, JobCompleted:
		return true
	}
	return false
}

// Terminal reports whether a job in this status accepts further transitions.
func (s JobStatus) Terminal() bool { return s == JobCompleted }

// ReleasesMechanic reports whether writing this status frees the
// assigned mechanic. The release always happens in the same critical
// section as the status write.
func (s JobStatus) ReleasesMechanic() bool { return s == JobReady || s == JobCompleted }

// PartUsed is a price-at-time-of-use snapshot of an inventory item
// consumed by a job. Later price changes never alter recorded entries.
type PartUsed struct {
	ItemID uuid.UUID `json:"item_id"`
	Name   string    `json:"name"`
	Qty    int       `json:"qty"`
	Price  int64     `json:"price"`
}

// ServiceJob is one vehicle in the workshop. MechanicName is a snapshot
// taken at assignment, not a live join against the user record.
type ServiceJob struct {
	ID           uuid.UUID  `json:"id"`
	UniqueCode   string     `json:"unique_code"`
	OwnerName    string     `json:"owner_name"`
	PlateNumber  string     `json:"plate_number"`
	VehicleType  string     `json:"vehicle_type"`
	Dept         Dept       `json:"dept"`
	Complaint    string     `json:"complaint"`
	Status       JobStatus  `json:"status"`
	MechanicID   *uuid.UUID `json:"mechanic_id,omitempty"`
	MechanicName string     `json:"mechanic_name,omitempty"`
	CostEstimate int64      `json:"cost_estimate"`
	PartsUsed    []PartUsed `json:"parts_used"`
	EntryTime    time.Time  `json:"entry_time"`
	PickupNote   string     `json:"pickup_note"`
}
