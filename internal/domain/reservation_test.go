package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FieldService/pkg/types"
)

func TestReservation_Overlaps(t *testing.T) {
	existing := &Reservation{StartTime: "10:00", EndTime: "11:00"}

	tests := []struct {
		name       string
		start, end types.TimeString
		want       bool
	}{
		{name: "partial overlap at the end", start: "10:30", end: "11:30", want: true},
		{name: "partial overlap at the start", start: "09:30", end: "10:30", want: true},
		{name: "contained", start: "10:15", end: "10:45", want: true},
		{name: "containing", start: "09:00", end: "12:00", want: true},
		{name: "identical", start: "10:00", end: "11:00", want: true},
		{name: "adjacent after", start: "11:00", end: "12:00", want: false},
		{name: "adjacent before", start: "09:00", end: "10:00", want: false},
		{name: "disjoint", start: "13:00", end: "14:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.start, tt.end))
		})
	}
}
