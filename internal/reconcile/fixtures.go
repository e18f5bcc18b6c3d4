package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/supplyline/planning-api/internal/domain"
)

// Demo data served when the backend is unreachable. Every SKU starts
// with an empty warehouse set; assignments made in demo mode live only
// for the session.

func DemoWarehouses() []domain.Warehouse {
	return []domain.Warehouse{
		{ID: "west", Code: "West", Name: "West Warehouse", Location: "Los Angeles, CA"},
		{ID: "south", Code: "South", Name: "South Warehouse", Location: "Houston, TX"},
		{ID: "east", Code: "East", Name: "East Warehouse", Location: "New York, NY"},
		{ID: "north", Code: "North", Name: "Central Warehouse", Location: "Chicago, IL"},
	}
}

func DemoSkus() []domain.Sku {
	return []domain.Sku{
		{ID: 1, SKU: "SKU001", Name: "Wireless Headphones", Category: "Electronics", Brand: "AudioTech", Price: decimal.RequireFromString("129.99"), Stock: 150, Warehouses: domain.NewWarehouseSet()},
		{ID: 2, SKU: "SKU002", Name: "Cotton T-Shirt", Category: "Clothing", Brand: "BasicWear", Price: decimal.RequireFromString("24.99"), Stock: 300, Warehouses: domain.NewWarehouseSet()},
		{ID: 3, SKU: "SKU003", Name: "Coffee Maker", Category: "Home Goods", Brand: "BrewMaster", Price: decimal.RequireFromString("89.99"), Stock: 75, Warehouses: domain.NewWarehouseSet()},
		{ID: 4, SKU: "SKU004", Name: "Smart Watch", Category: "Electronics", Brand: "TechWear", Price: decimal.RequireFromString("249.99"), Stock: 200, Warehouses: domain.NewWarehouseSet()},
		{ID: 5, SKU: "SKU005", Name: "Jeans", Category: "Clothing", Brand: "DenimCo", Price: decimal.RequireFromString("59.99"), Stock: 180, Warehouses: domain.NewWarehouseSet()},
		{ID: 6, SKU: "SKU006", Name: "Board Game", Category: "Toys", Brand: "FamilyFun", Price: decimal.RequireFromString("34.99"), Stock: 120, Warehouses: domain.NewWarehouseSet()},
	}
}
