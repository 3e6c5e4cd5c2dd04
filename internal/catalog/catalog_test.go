package catalog

import (
	"testing"

	"coffeehouse/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	items := c.Items()
	require.Len(t, items, 9)

	seen := make(map[int]bool)
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
		assert.NotEmpty(t, item.Name)
		assert.Greater(t, item.Price, 0.0)
	}

	assert.Equal(t, "Cappuccino", items[0].Name)
	assert.Equal(t, "Affogato", items[8].Name)
}

func TestItems_ReturnsCopy(t *testing.T) {
	c := Default()

	items := c.Items()
	items[0].Name = "Decaf Sludge"

	assert.Equal(t, "Cappuccino", c.Items()[0].Name)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		items   []model.MenuItem
		wantErr string
	}{
		{
			name:    "empty menu",
			items:   nil,
			wantErr: "at least one item",
		},
		{
			name: "duplicate id",
			items: []model.MenuItem{
				{ID: 1, Name: "Espresso", Price: 49},
				{ID: 1, Name: "Americano", Price: 49},
			},
			wantErr: "duplicate catalog item id 1",
		},
		{
			name: "invalid id",
			items: []model.MenuItem{
				{ID: 0, Name: "Espresso", Price: 49},
			},
			wantErr: "invalid id",
		},
		{
			name: "missing name",
			items: []model.MenuItem{
				{ID: 1, Price: 49},
			},
			wantErr: "has no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultStoreInfo(t *testing.T) {
	info := DefaultStoreInfo()
	assert.Equal(t, "Mon-Fri: 8am to 2pm", info.Weekdays)
	assert.Equal(t, "Sat-Sun: 11am to 4pm", info.Weekends)
	assert.NotEmpty(t, info.Phone)
}
