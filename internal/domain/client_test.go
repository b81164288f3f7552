package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextClientCode(t *testing.T) {
	t.Run("first code starts at 5000", func(t *testing.T) {
		assert.Equal(t, "5000-JUAN-PEREZ", NextClientCode(0, false, "Juan Perez"))
	})

	t.Run("increments the highest existing number", func(t *testing.T) {
		last := 0
		for _, code := range []string{"5000-FOO", "5001-BAR"} {
			n, ok := ClientCodeNumber(code)
			assert.True(t, ok)
			if n > last {
				last = n
			}
		}
		assert.Equal(t, "5002-BAZ-QUX", NextClientCode(last, true, "baz qux"))
	})

	t.Run("collapses repeated spaces", func(t *testing.T) {
		assert.Equal(t, "5010-ANA-MARIA-ROJAS", NextClientCode(5009, true, "  ana  maria rojas "))
	})
}

func TestClientCodeNumber(t *testing.T) {
	tests := []struct {
		code   string
		want   int
		wantOK bool
	}{
		{code: "5000-FOO", want: 5000, wantOK: true},
		{code: "51234-LONG-NAME", want: 51234, wantOK: true},
		{code: "4000-OTHER", wantOK: false},
		{code: "5X00-BROKEN", wantOK: false},
		{code: "5000", wantOK: false},
		{code: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := ClientCodeNumber(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClient_IsOverdue(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	todayMidnight := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&Client{NextPaymentDate: &yesterday}).IsOverdue(today))
	assert.False(t, (&Client{NextPaymentDate: &todayMidnight}).IsOverdue(today))
	assert.False(t, (&Client{}).IsOverdue(today))
}
