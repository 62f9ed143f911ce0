package services

import (
	"context"
	"fmt"
	"log"

	"inductra/internal/models"
	"inductra/internal/repositories"
)

// Brands serviced by the workshop, in showcase order.
var Brands = []string{
	"Siemens", "ABB", "Schneider", "Fanuc", "Yaskawa", "Omron", "Lenze",
	"Mitsubishi", "Danfoss", "Delta", "Beckhoff", "Allen Bradley", "Fuji", "Eaton",
}

func defaultCatalog() []models.ProductInput {
	price := func(v int64) *int64 { return &v }
	outOfStock := false
	return []models.ProductInput{
		{Name: "SINAMICS G120 Control Unit", Brand: "Siemens", Category: "Inverter", Description: "CU240E-2 control unit, tested and refurbished", Price: price(1850000)},
		{Name: "SIMATIC S7-300 CPU 315-2 DP", Brand: "Siemens", Category: "PLC", Price: price(2400000)},
		{Name: "ACS880 Power Board", Brand: "ABB", Category: "Inverter", Description: "Main power board for ACS880 drives"},
		{Name: "Altivar 71 Control Card", Brand: "Schneider", Category: "Inverter", Price: price(960000)},
		{Name: "Alpha i Servo Amplifier", Brand: "Fanuc", Category: "Servo", Description: "Servo amplifier module, bench tested under load"},
		{Name: "Sigma-5 Servopack", Brand: "Yaskawa", Category: "Servo", Price: price(1320000), InStock: &outOfStock},
		{Name: "CJ2M CPU Unit", Brand: "Omron", Category: "PLC", Price: price(780000)},
		{Name: "8400 StateLine Inverter", Brand: "Lenze", Category: "Inverter"},
		{Name: "FR-A800 Control Board", Brand: "Mitsubishi", Category: "Inverter", Price: price(890000)},
		{Name: "VLT FC302 Power Card", Brand: "Danfoss", Category: "Inverter"},
		{Name: "ASDA-A2 Servo Drive", Brand: "Delta", Category: "Servo", Price: price(640000)},
		{Name: "CX5130 Embedded PC", Brand: "Beckhoff", Category: "Industrial PC"},
		{Name: "PowerFlex 755 Main Control Board", Brand: "Allen Bradley", Category: "Inverter", Price: price(2150000)},
		{Name: "FRENIC-Mega Control PCB", Brand: "Fuji", Category: "Inverter"},
		{Name: "PowerXL DG1 Keypad", Brand: "Eaton", Category: "Operator Panel", Price: price(210000)},
	}
}

// SeedCatalog populates an empty repository with the default catalog.
// A repository that already holds products is left untouched.
func SeedCatalog(ctx context.Context, repo repositories.ProductRepository) error {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog before seeding: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("Catalog already holds %d products, skipping seed", len(existing))
		return nil
	}

	for _, input := range defaultCatalog() {
		product := input.ToProduct()
		if err := repo.Create(ctx, &product); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", input.Name, err)
		}
		log.Printf("Seeded product: %s (ID: %s)", product.Name, product.ID)
	}
	return nil
}
