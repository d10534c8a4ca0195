package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(name string, qty int) CartItem {
	return CartItem{
		ProductName: name,
		Price:       "199",
		Rating:      "4.5",
		Features:    []string{"sans fil", "bluetooth"},
		ImageLink:   "https://example.com/" + name + ".jpg",
		Qty:         qty,
	}
}

func TestMergeItemAccumulatesQuantity(t *testing.T) {
	cart := Cart{Email: "client@example.com"}

	cart.MergeItem(item("casque", 3))
	cart.MergeItem(item("casque", 2))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Qty)
}

func TestMergeItemAppendsNewProduct(t *testing.T) {
	cart := Cart{Email: "client@example.com"}

	cart.MergeItem(item("casque", 1))
	cart.MergeItem(item("clavier", 2))

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "clavier", cart.Items[1].ProductName)
	assert.Equal(t, 2, cart.Items[1].Qty)
}

func TestSetQtyReplacesNeverAdds(t *testing.T) {
	cart := Cart{Items: []CartItem{item("casque", 3)}}

	updated, found := cart.SetQty("casque", 7)
	require.True(t, found)
	assert.Equal(t, 7, updated.Qty)

	updated, found = cart.SetQty("casque", 2)
	require.True(t, found)
	assert.Equal(t, 2, updated.Qty)
	assert.Equal(t, 2, cart.Items[0].Qty)
}

func TestSetQtyMissingItem(t *testing.T) {
	cart := Cart{Items: []CartItem{item("casque", 3)}}

	_, found := cart.SetQty("clavier", 1)
	assert.False(t, found)
}

func TestRemoveItemFiltersAllMatches(t *testing.T) {
	// L'invariant interdit les doublons, mais la suppression filtre
	// toutes les entrées correspondantes au cas où il serait violé.
	cart := Cart{Items: []CartItem{item("casque", 1), item("clavier", 2), item("casque", 4)}}

	cart.RemoveItem("casque")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "clavier", cart.Items[0].ProductName)
}

func TestRemoveItemNoMatchKeepsCart(t *testing.T) {
	cart := Cart{Items: []CartItem{item("casque", 1)}}

	cart.RemoveItem("souris")

	assert.Len(t, cart.Items, 1)
}

func TestFindItems(t *testing.T) {
	cart := Cart{Items: []CartItem{item("casque", 1), item("clavier", 2)}}

	assert.Len(t, cart.FindItems("casque"), 1)
	assert.Empty(t, cart.FindItems("souris"))
}
