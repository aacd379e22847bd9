package store

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

func seedJob(t *testing.T, s *Store, status model.JobStatus, mechID *uuid.UUID) *model.ServiceJob {
	t.Helper()
	j := &model.ServiceJob{
		ID:          uuid.New(),
		UniqueCode:  "SRV-1234",
		OwnerName:   "Pak Joko",
		PlateNumber: "AB 1234 XY",
		Dept:        model.DeptTKRO,
		Status:      status,
		MechanicID:  mechID,
		PartsUsed:   []model.PartUsed{},
		EntryTime:   time.Now(),
	}
	s.InsertJob(j)
	return j
}

func seedMechanic(t *testing.T, s *Store, busy bool) *model.User {
	t.Helper()
	u := &model.User{ID: uuid.New(), Name: "Mekanik Uji", Role: model.RoleMechanic, IsBusy: busy}
	s.mu.Lock()
	s.users = append(s.users, u)
	s.mu.Unlock()
	return u
}

func TestClaimMechanic(t *testing.T) {
	s := New()
	free := seedMechanic(t, s, false)
	busy := seedMechanic(t, s, true)

	if _, ok := s.ClaimMechanic(busy.ID); ok {
		t.Fatalf("expected claim of busy mechanic to fail")
	}
	mech, ok := s.ClaimMechanic(free.ID)
	if !ok {
		t.Fatalf("expected claim of free mechanic to succeed")
	}
	if !mech.IsBusy {
		t.Fatalf("expected claimed mechanic to be flagged busy")
	}
	// The claim flipped the flag, so a second claim must fail.
	if _, ok := s.ClaimMechanic(free.ID); ok {
		t.Fatalf("expected second claim to fail")
	}
}

func TestClaimMechanicRejectsNonMechanics(t *testing.T) {
	s := New()
	s.mu.Lock()
	cashier := &model.User{ID: uuid.New(), Name: "Lina", Role: model.RoleCashier}
	s.users = append(s.users, cashier)
	s.mu.Unlock()

	if _, ok := s.ClaimMechanic(cashier.ID); ok {
		t.Fatalf("expected claim of non-mechanic to fail")
	}
	if _, ok := s.ClaimMechanic(uuid.New()); ok {
		t.Fatalf("expected claim of unknown id to fail")
	}
}

func TestMarkBusyFreeNoOpForNonMechanics(t *testing.T) {
	s := New()
	s.mu.Lock()
	admin := &model.User{ID: uuid.New(), Name: "Admin", Role: model.RoleAdmin}
	s.users = append(s.users, admin)
	s.mu.Unlock()

	s.MarkBusy(admin.ID)
	u, err := s.User(admin.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.IsBusy {
		t.Fatalf("expected busy flag to stay false for non-mechanic")
	}
	s.MarkFree(uuid.New()) // unknown id must not panic
}

func TestAttachPartDecrementsAndSnapshots(t *testing.T) {
	s := New()
	item, err := s.CreateItem(model.InventoryItem{Name: "Busi NGK", Dept: model.DeptTBSM, Stock: 3, Price: 15000})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	j := seedJob(t, s, model.JobDiagnosing, nil)

	if !s.AttachPart(j.ID, item.ID) {
		t.Fatalf("expected attach to succeed")
	}

	got, _ := s.Item(item.ID)
	if got.Stock != 2 {
		t.Fatalf("expected stock 2, got %d", got.Stock)
	}
	jobNow, _ := s.Job(j.ID)
	if len(jobNow.PartsUsed) != 1 {
		t.Fatalf("expected exactly one parts-used entry, got %d", len(jobNow.PartsUsed))
	}
	p := jobNow.PartsUsed[0]
	if p.ItemID != item.ID || p.Qty != 1 || p.Price != 15000 || p.Name != "Busi NGK" {
		t.Fatalf("unexpected snapshot: %+v", p)
	}
}

func TestAttachPartSnapshotSurvivesPriceChange(t *testing.T) {
	s := New()
	item, _ := s.CreateItem(model.InventoryItem{Name: "Oli Mesin", Dept: model.DeptTKRO, Stock: 5, Price: 65000})
	j := seedJob(t, s, model.JobRepairing, nil)

	s.AttachPart(j.ID, item.ID)

	newPrice := int64(99000)
	if _, err := s.UpdateItem(item.ID, model.InventoryItemPatch{Price: &newPrice}); err != nil {
		t.Fatalf("update item: %v", err)
	}

	jobNow, _ := s.Job(j.ID)
	if jobNow.PartsUsed[0].Price != 65000 {
		t.Fatalf("expected price-at-use snapshot 65000, got %d", jobNow.PartsUsed[0].Price)
	}
}

func TestAttachPartFailsWithoutMutation(t *testing.T) {
	s := New()
	empty, _ := s.CreateItem(model.InventoryItem{Name: "Kampas Rem", Dept: model.DeptTKRO, Stock: 0, Price: 250000})
	j := seedJob(t, s, model.JobDiagnosing, nil)

	if s.AttachPart(j.ID, empty.ID) {
		t.Fatalf("expected attach to fail on zero stock")
	}
	jobNow, _ := s.Job(j.ID)
	if len(jobNow.PartsUsed) != 0 {
		t.Fatalf("expected no parts-used entry, got %d", len(jobNow.PartsUsed))
	}

	stocked, _ := s.CreateItem(model.InventoryItem{Name: "Busi", Dept: model.DeptTBSM, Stock: 4, Price: 15000})
	if s.AttachPart(uuid.New(), stocked.ID) {
		t.Fatalf("expected attach to fail for unknown job")
	}
	got, _ := s.Item(stocked.ID)
	if got.Stock != 4 {
		t.Fatalf("expected stock untouched at 4, got %d", got.Stock)
	}
}

func TestUpdateJobStatusReleasesMechanic(t *testing.T) {
	s := New()
	mech := seedMechanic(t, s, true)
	id := mech.ID
	j := seedJob(t, s, model.JobRepairing, &id)

	if _, err := s.UpdateJobStatus(j.ID, model.JobReady, "Siap diambil"); err != nil {
		t.Fatalf("update status: %v", err)
	}

	u, _ := s.User(mech.ID)
	if u.IsBusy {
		t.Fatalf("expected mechanic to be freed on ready")
	}
	jobNow, _ := s.Job(j.ID)
	if jobNow.Status != model.JobReady || jobNow.PickupNote != "Siap diambil" {
		t.Fatalf("unexpected job state: %s %q", jobNow.Status, jobNow.PickupNote)
	}
}

func TestUpdateJobStatusCompletedIsTerminal(t *testing.T) {
	s := New()
	j := seedJob(t, s, model.JobCompleted, nil)

	got, err := s.UpdateJobStatus(j.ID, model.JobPending, "reopened")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.JobCompleted {
		t.Fatalf("expected terminal job to stay completed, got %s", got.Status)
	}
	if got.PickupNote == "reopened" {
		t.Fatalf("expected pickup note untouched on terminal job")
	}
}

func TestAssignJobMechanicCompletedIsTerminal(t *testing.T) {
	s := New()
	mech := seedMechanic(t, s, false)
	j := seedJob(t, s, model.JobCompleted, nil)

	got, err := s.AssignJobMechanic(j.ID, mech)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.JobCompleted {
		t.Fatalf("expected terminal job to stay completed, got %s", got.Status)
	}
	if got.MechanicID != nil {
		t.Fatalf("expected no mechanic attached to terminal job")
	}
	u, _ := s.User(mech.ID)
	if u.IsBusy {
		t.Fatalf("expected mechanic to stay free")
	}
}

func TestUpdateJobStatusUnknownJob(t *testing.T) {
	s := New()
	if _, err := s.UpdateJobStatus(uuid.New(), model.JobReady, ""); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobReadsAreCopies(t *testing.T) {
	s := New()
	item, _ := s.CreateItem(model.InventoryItem{Name: "Oli", Dept: model.DeptTBSM, Stock: 2, Price: 45000})
	j := seedJob(t, s, model.JobDiagnosing, nil)
	s.AttachPart(j.ID, item.ID)

	got, _ := s.Job(j.ID)
	got.PartsUsed[0].Price = 1
	got.Status = model.JobCompleted

	again, _ := s.Job(j.ID)
	if again.PartsUsed[0].Price != 45000 || again.Status != model.JobDiagnosing {
		t.Fatalf("store state leaked through a read copy")
	}
}
