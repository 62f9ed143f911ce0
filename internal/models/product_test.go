package models_test

import (
	"testing"

	"inductra/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProductInput_ToProductDefaultsInStock(t *testing.T) {
	price := int64(15000)
	input := models.ProductInput{Name: "Drive Card X1", Brand: "Siemens", Category: "Inverter", Price: &price}

	product := input.ToProduct()

	assert.Empty(t, product.ID)
	assert.True(t, product.InStock)
	assert.Equal(t, "Drive Card X1", product.Name)
	assert.Equal(t, int64(15000), *product.Price)

	outOfStock := false
	input.InStock = &outOfStock
	assert.False(t, input.ToProduct().InStock)
}

func TestProductInput_Normalize(t *testing.T) {
	input := models.ProductInput{Name: "  Servo  ", Brand: " Fanuc", Category: "Servo "}
	input.Normalize()

	assert.Equal(t, "Servo", input.Name)
	assert.Equal(t, "Fanuc", input.Brand)
	assert.Equal(t, "Servo", input.Category)
}

func TestProductPatch_Apply(t *testing.T) {
	price := int64(100)
	product := models.Product{ID: "p-1", Name: "Old", Brand: "ABB", Category: "PLC", Price: &price, InStock: true}

	newPrice := int64(80)
	inStock := false
	patch := models.ProductPatch{Name: strPtr("New"), Price: &newPrice, InStock: &inStock}
	patch.Apply(&product)

	assert.Equal(t, "p-1", product.ID)
	assert.Equal(t, "New", product.Name)
	assert.Equal(t, "ABB", product.Brand)
	assert.Equal(t, "PLC", product.Category)
	assert.Equal(t, int64(80), *product.Price)
	assert.False(t, product.InStock)

	// The patch must not alias the caller's value.
	newPrice = 1
	assert.Equal(t, int64(80), *product.Price)
}

func TestProductPatch_IsEmpty(t *testing.T) {
	assert.True(t, models.ProductPatch{}.IsEmpty())
	assert.False(t, models.ProductPatch{Category: strPtr("Servo")}.IsEmpty())
}

func TestContactRequest_Normalize(t *testing.T) {
	req := models.ContactRequest{Name: " Ayşe ", Email: "a@x.com ", Message: "\tArıza var\n"}
	req.Normalize()

	assert.Equal(t, "Ayşe", req.Name)
	assert.Equal(t, "a@x.com", req.Email)
	assert.Equal(t, "Arıza var", req.Message)
}
