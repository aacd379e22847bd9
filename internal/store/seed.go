package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Seed loads the workshop's demo dataset: the staff roster, the opening
// inventory for every department, and two jobs already on the floor.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	mek1 := &model.User{ID: uuid.New(), Name: "Ahmad (Mekanik 1)", Role: model.RoleMechanic}
	mek2 := &model.User{ID: uuid.New(), Name: "Siti (Mekanik 2)", Role: model.RoleMechanic, IsBusy: true}
	mek3 := &model.User{ID: uuid.New(), Name: "Rudi (Mekanik 3)", Role: model.RoleMechanic}
	s.users = []*model.User{
		{ID: uuid.New(), Name: "Super Admin", Role: model.RoleAdmin},
		{ID: uuid.New(), Name: "Budi (SA)", Role: model.RoleServiceAdvisor},
		mek1,
		mek2,
		mek3,
		{ID: uuid.New(), Name: "Lina (Kasir)", Role: model.RoleCashier},
	}

	s.items = []*model.InventoryItem{
		{ID: uuid.New(), Name: "Oli Mesin 10W-40", Dept: model.DeptTKRO, Stock: 50, Price: 65000, Category: "Oil"},
		{ID: uuid.New(), Name: "Kampas Rem Avanza", Dept: model.DeptTKRO, Stock: 12, Price: 250000, Category: "Sparepart"},
		{ID: uuid.New(), Name: "Oli Matic Beat", Dept: model.DeptTBSM, Stock: 100, Price: 45000, Category: "Oil"},
		{ID: uuid.New(), Name: "Busi NGK", Dept: model.DeptTBSM, Stock: 200, Price: 15000, Category: "Sparepart"},
		{ID: uuid.New(), Name: "Teh Botol", Dept: model.DeptFB, Stock: 48, Price: 5000, Category: "Drink"},
		{ID: uuid.New(), Name: "Roti O", Dept: model.DeptFB, Stock: 20, Price: 12000, Category: "Snack"},
	}

	mek2ID := mek2.ID
	s.jobs = []*model.ServiceJob{
		{
			ID:           uuid.New(),
			UniqueCode:   "SRV-8821",
			OwnerName:    "Pak Joko",
			PlateNumber:  "AB 1234 XY",
			VehicleType:  "Toyota Avanza",
			Dept:         model.DeptTKRO,
			Complaint:    "Rem bunyi",
			Status:       model.JobRepairing,
			MechanicID:   &mek2ID,
			MechanicName: mek2.Name,
			CostEstimate: 250000,
			PartsUsed:    []model.PartUsed{},
			EntryTime:    time.Now(),
			PickupNote:   "Estimasi selesai jam 2 siang",
		},
		{
			ID:           uuid.New(),
			UniqueCode:   "SRV-9901",
			OwnerName:    "Mas Andi",
			PlateNumber:  "AB 5555 ZZ",
			VehicleType:  "Honda Beat",
			Dept:         model.DeptTBSM,
			Complaint:    "Ganti Oli",
			Status:       model.JobPending,
			CostEstimate: 45000,
			PartsUsed:    []model.PartUsed{},
			EntryTime:    time.Now(),
			PickupNote:   "Menunggu antrian",
		},
	}
}
