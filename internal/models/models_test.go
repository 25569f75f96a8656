package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesRoundTrip(t *testing.T) {
	attrs := Attributes{"color": "black", "ram": "16GB"}

	value, err := attrs.Value()
	require.NoError(t, err)

	var decoded Attributes
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, attrs, decoded)
}

func TestAttributesNil(t *testing.T) {
	var attrs Attributes

	value, err := attrs.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	var decoded Attributes
	require.NoError(t, decoded.Scan(nil))
	assert.Nil(t, decoded)
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderStatusPending))
	assert.True(t, ValidOrderStatus(OrderStatusShipped))
	assert.True(t, ValidOrderStatus(OrderStatusDelivered))
	assert.False(t, ValidOrderStatus("cancelled"))
	assert.False(t, ValidOrderStatus(""))
}
