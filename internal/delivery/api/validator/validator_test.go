package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type windowRequest struct {
	Start string  `validate:"omitempty,clock"`
	Lat   float64 `validate:"gte=-90,lte=90"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     windowRequest
		wantErr string
	}{
		{name: "valid", req: windowRequest{Start: "07:30", Lat: 37.5}},
		{name: "empty clock allowed", req: windowRequest{Lat: 0}},
		{name: "hour out of range", req: windowRequest{Start: "24:00"}, wantErr: "Start failed on 'clock'"},
		{name: "not digits", req: windowRequest{Start: "ab:cd"}, wantErr: "Start failed on 'clock'"},
		{name: "latitude out of range", req: windowRequest{Lat: 91}, wantErr: "Lat failed on 'lte' (90)"},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
