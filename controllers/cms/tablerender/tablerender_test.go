package tablerender

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
)

func TestRender(t *testing.T) {
	columns := []Column[models.Product]{
		{Header: "Name", Value: func(p models.Product) string { return p.Name }},
		{Header: "Price", Value: func(p models.Product) string { return fmt.Sprintf("$%.2f", p.Price) }},
	}
	products := []models.Product{
		{Name: "Linen Throw Blanket", Price: 45},
		{Name: "Cedar Scented Candle", Price: 24},
	}

	table := Render(products, columns)

	assert.Equal(t, []string{"Name", "Price"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Linen Throw Blanket", "$45.00"}, table.Rows[0])
	assert.Equal(t, []string{"Cedar Scented Candle", "$24.00"}, table.Rows[1])
}

func TestRenderEmptyEntities(t *testing.T) {
	columns := []Column[models.User]{
		{Header: "Email", Value: func(u models.User) string { return u.Email }},
	}

	table := Render(nil, columns)

	assert.Equal(t, []string{"Email"}, table.Headers)
	assert.Empty(t, table.Rows)
}
