package model

import "github.com/google/uuid"

// Dept is the workshop department an item or job belongs to:
// TKRO (car repair), TBSM (motorcycle repair), FB (food & beverage).
type Dept string

const (
	DeptTKRO Dept = "TKRO"
	DeptTBSM Dept = "TBSM"
	DeptFB   Dept = "FB"
)

// InventoryItem is a sellable or consumable stock item. Prices are in
// the smallest currency unit. Stock never goes below zero.
type InventoryItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Dept     Dept      `json:"dept"`
	Stock    int       `json:"stock"`
	Price    int64     `json:"price"`
	Category string    `json:"category"` // Sparepart, Oil, Snack, Drink
}

// InventoryItemPatch carries a partial update; nil fields are left alone.
type InventoryItemPatch struct {
	Name     *string `json:"name,omitempty"`
	Dept     *Dept   `json:"dept,omitempty"`
	Stock    *int    `json:"stock,omitempty"`
	Price    *int64  `json:"price,omitempty"`
	Category *string `json:"category,omitempty"`
}

// CartLine is one retail checkout line.
type CartLine struct {
	ItemID uuid.UUID `json:"item_id"`
	Qty    int       `json:"qty"`
}
