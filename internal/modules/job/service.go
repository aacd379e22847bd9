package job

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/satriamaulana/bengkel-backend/internal/model"
	"github.com/satriamaulana/bengkel-backend/internal/store"
)

// BaseLaborFee is the flat service fee billed on every job, in the
// smallest currency unit.
const BaseLaborFee int64 = 50000

// Service defines the service job lifecycle engine.
type Service interface {
	Register(req RegisterRequest) (*model.ServiceJob, error)
	// Assign attaches the mechanic with overwrite semantics and forces
	// the job to diagnosing. Unknown mechanics are a silent no-op.
	Assign(jobID, mechanicID uuid.UUID) (*model.ServiceJob, error)
	// UpdateStatus writes status and pickup note; ready and completed
	// release the assigned mechanic together with the write.
	UpdateStatus(jobID uuid.UUID, status model.JobStatus, note string) (*model.ServiceJob, error)
	// AttachPart consumes one unit of stock and snapshots it onto the
	// job, or reports false leaving both sides untouched.
	AttachPart(jobID, itemID uuid.UUID) bool
	// ComputeTotal is a pure projection: base labor fee plus the
	// recorded part prices.
	ComputeTotal(j *model.ServiceJob) int64
	// Complete records the Service transaction for the job. Closing the
	// job status is a separate UpdateStatus call.
	Complete(jobID uuid.UUID, total int64) (*model.Transaction, error)

	Get(id uuid.UUID) (*model.ServiceJob, error)
	List() []*model.ServiceJob
	Track(query string) (*model.ServiceJob, error)
	Search(q string) []*model.ServiceJob
	Stats() Stats
}

// RegisterRequest holds data for registering a vehicle.
type RegisterRequest struct {
	OwnerName   string     `json:"owner_name" validate:"required"`
	PlateNumber string     `json:"plate_number" validate:"required"`
	VehicleType string     `json:"vehicle_type"`
	Dept        model.Dept `json:"dept" validate:"required,oneof=TKRO TBSM FB"`
	Complaint   string     `json:"complaint"`
	MechanicID  string     `json:"mechanic_id,omitempty"`
}

// Stats aggregates job counts per dashboard bucket.
type Stats struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Ready      int `json:"ready"`
	Completed  int `json:"completed"`
}

type service struct {
	repo     Repository
	roster   MechanicRoster
	notifier Notifier
	ledger   Ledger
	log      *logrus.Logger
}

// NewService creates a new job lifecycle service.
func NewService(repo Repository, roster MechanicRoster, notifier Notifier, ledger Ledger, log *logrus.Logger) Service {
	return &service{repo: repo, roster: roster, notifier: notifier, ledger: ledger, log: log}
}

func (s *service) Register(req RegisterRequest) (*model.ServiceJob, error) {
	if strings.TrimSpace(req.OwnerName) == "" || strings.TrimSpace(req.PlateNumber) == "" {
		return nil, fmt.Errorf("%w: owner name and plate number are required", store.ErrValidation)
	}

	j := &model.ServiceJob{
		ID:          uuid.New(),
		UniqueCode:  newServiceCode(),
		OwnerName:   req.OwnerName,
		PlateNumber: strings.ToUpper(req.PlateNumber),
		VehicleType: req.VehicleType,
		Dept:        req.Dept,
		Complaint:   req.Complaint,
		Status:      model.JobPending,
		PartsUsed:   []model.PartUsed{},
		EntryTime:   time.Now(),
		PickupNote:  "Dalam antrian",
	}

	// A pre-selected mechanic only sticks when the claim succeeds:
	// the free check and the busy flip are one atomic store call. A
	// busy or unknown mechanic leaves the job pending and unassigned.
	if req.MechanicID != "" {
		if mechID, err := uuid.Parse(req.MechanicID); err == nil {
			if mech, ok := s.roster.ClaimMechanic(mechID); ok {
				id := mech.ID
				j.MechanicID = &id
				j.MechanicName = mech.Name
				j.Status = model.JobDiagnosing
				s.notifier.PushNotification(mech.ID,
					fmt.Sprintf("Pelanggan Baru: %s (%s) memilih Anda.", j.PlateNumber, j.OwnerName))
			}
		}
	}

	s.repo.InsertJob(j)
	s.log.WithFields(logrus.Fields{
		"job_id": j.ID,
		"code":   j.UniqueCode,
		"status": j.Status,
	}).Info("service job registered")
	return j, nil
}

func (s *service) Assign(jobID, mechanicID uuid.UUID) (*model.ServiceJob, error) {
	mech, err := s.roster.User(mechanicID)
	if err != nil {
		// Unknown mechanic: deliberate silent no-op, the job is
		// returned unchanged.
		return s.repo.Job(jobID)
	}
	j, err := s.repo.AssignJobMechanic(jobID, mech)
	if err != nil {
		return nil, err
	}
	if j.Status.Terminal() {
		// The store declined the assignment; the completed job comes
		// back unchanged and the mechanic must not be notified.
		return j, nil
	}
	s.notifier.PushNotification(mech.ID,
		fmt.Sprintf("Anda ditugaskan untuk service %s.", j.UniqueCode))
	s.log.WithFields(logrus.Fields{"job_id": jobID, "mechanic_id": mech.ID}).Info("mechanic assigned")
	return j, nil
}

func (s *service) UpdateStatus(jobID uuid.UUID, status model.JobStatus, note string) (*model.ServiceJob, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", store.ErrValidation, status)
	}
	j, err := s.repo.UpdateJobStatus(jobID, status, note)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"job_id": jobID, "status": j.Status}).Info("job status updated")
	return j, nil
}

func (s *service) AttachPart(jobID, itemID uuid.UUID) bool {
	ok := s.repo.AttachPart(jobID, itemID)
	if ok {
		s.log.WithFields(logrus.Fields{"job_id": jobID, "item_id": itemID}).Info("part attached")
	}
	return ok
}

func (s *service) ComputeTotal(j *model.ServiceJob) int64 {
	total := BaseLaborFee
	for _, p := range j.PartsUsed {
		total += p.Price
	}
	return total
}

func (s *service) Complete(jobID uuid.UUID, total int64) (*model.Transaction, error) {
	j, err := s.repo.Job(jobID)
	if err != nil {
		return nil, err
	}
	if total <= 0 {
		total = s.ComputeTotal(j)
	}

	items := make([]model.TransactionItem, 0, len(j.PartsUsed)+1)
	items = append(items, model.TransactionItem{
		Name:  fmt.Sprintf("Service Jasa (%s)", j.UniqueCode),
		Qty:   1,
		Price: BaseLaborFee,
	})
	for _, p := range j.PartsUsed {
		items = append(items, model.TransactionItem{Name: p.Name, Qty: p.Qty, Price: p.Price})
	}

	t := &model.Transaction{
		ID:      uuid.New(),
		Date:    time.Now(),
		Total:   total,
		Items:   items,
		Type:    model.TransactionService,
		RefCode: j.UniqueCode,
	}
	s.ledger.AppendTransaction(t)
	s.log.WithFields(logrus.Fields{"job_id": jobID, "ref_code": t.RefCode, "total": t.Total}).Info("service billed")
	return t, nil
}

func (s *service) Get(id uuid.UUID) (*model.ServiceJob, error) { return s.repo.Job(id) }

func (s *service) List() []*model.ServiceJob { return s.repo.Jobs() }

// Track finds a job by plate number (whitespace and case insensitive)
// or by unique code.
func (s *service) Track(query string) (*model.ServiceJob, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(query, " ", ""))
	if normalized == "" {
		return nil, fmt.Errorf("%w: tracking query is required", store.ErrValidation)
	}
	for _, j := range s.repo.Jobs() {
		plate := strings.ToUpper(strings.ReplaceAll(j.PlateNumber, " ", ""))
		if plate == normalized || strings.ToUpper(j.UniqueCode) == normalized {
			return j, nil
		}
	}
	return nil, store.ErrNotFound
}

// Search matches plate, owner, or code, newest entries first. An empty
// query yields no results.
func (s *service) Search(q string) []*model.ServiceJob {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []*model.ServiceJob
	for _, j := range s.repo.Jobs() {
		if strings.Contains(strings.ToLower(j.PlateNumber), q) ||
			strings.Contains(strings.ToLower(j.OwnerName), q) ||
			strings.Contains(strings.ToLower(j.UniqueCode), q) {
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].EntryTime.After(out[b].EntryTime) })
	return out
}

func (s *service) Stats() Stats {
	var st Stats
	for _, j := range s.repo.Jobs() {
		switch j.Status {
		case model.JobPending:
			st.Pending++
		case model.JobDiagnosing, model.JobRepairing, model.JobWashing:
			st.InProgress++
		case model.JobReady:
			st.Ready++
		case model.JobCompleted:
			st.Completed++
		}
	}
	return st
}

// newServiceCode generates the human-facing display code. Codes are
// short by design and not guaranteed globally unique; jobs are keyed
// by their internal id.
func newServiceCode() string {
	return fmt.Sprintf("SRV-%04d", 1000+rand.Intn(9000))
}
