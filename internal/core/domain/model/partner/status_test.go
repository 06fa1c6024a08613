package partner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcommerce/internal/core/domain/model/partner"
)

func TestStatus_Validate(t *testing.T) {
	assert.NoError(t, partner.Available.Validate())
	assert.NoError(t, partner.Busy.Validate())
	assert.NoError(t, partner.Offline.Validate())

	assert.Error(t, partner.Unknown.Validate())
	assert.Error(t, partner.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Available", partner.Available.String())
	assert.Equal(t, "Busy", partner.Busy.String())
	assert.Equal(t, "Offline", partner.Offline.String())
	assert.Equal(t, "Unknown", partner.Unknown.String())
	assert.Equal(t, "Unknown", partner.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		value string
		want  partner.Status
	}{
		{"Available", partner.Available},
		{"Busy", partner.Busy},
		{"Offline", partner.Offline},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := partner.ParseStatus(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	for _, value := range []string{"", "Unknown", "available", "BUSY", "Sleeping"} {
		t.Run(value, func(t *testing.T) {
			_, err := partner.ParseStatus(value)
			assert.Error(t, err)
		})
	}
}
