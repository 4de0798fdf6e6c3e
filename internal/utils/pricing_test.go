package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	t.Run("Five days at R$120 per day", func(t *testing.T) {
		q := Quote(12000, 5)
		assert.Equal(t, int64(60000), q.BaseCents)      // R$600.00
		assert.Equal(t, int64(6000), q.ServiceFeeCents) // R$60.00
		assert.Equal(t, int64(66000), q.TotalCents)     // R$660.00
	})

	t.Run("Zero duration quotes to zero", func(t *testing.T) {
		q := Quote(12000, 0)
		assert.Equal(t, int64(0), q.BaseCents)
		assert.Equal(t, int64(0), q.ServiceFeeCents)
		assert.Equal(t, int64(0), q.TotalCents)
	})

	t.Run("Fee rounds half up", func(t *testing.T) {
		// base 605 centavos -> 10% = 60.5 -> 61
		q := Quote(605, 1)
		assert.Equal(t, int64(61), q.ServiceFeeCents)
		// base 604 centavos -> 10% = 60.4 -> 60
		q = Quote(604, 1)
		assert.Equal(t, int64(60), q.ServiceFeeCents)
	})

	t.Run("Total always equals base plus fee", func(t *testing.T) {
		for days := int32(0); days <= 60; days++ {
			q := Quote(8350, days)
			assert.Equal(t, q.BaseCents+q.ServiceFeeCents, q.TotalCents)
		}
	})
}
