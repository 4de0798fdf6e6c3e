package utils

// ServiceFeePercent is the marketplace surcharge applied on the base
// rental cost.
const ServiceFeePercent = 10

// RentalQuote is the monetary breakdown for a rental, in centavos.
type RentalQuote struct {
	BaseCents       int64
	ServiceFeeCents int64
	TotalCents      int64
}

// Quote computes the cost of renting at dailyRateCents for durationDays.
// The service fee is rounded half-up to the nearest centavo. Pure and
// deterministic; a zero duration quotes to zero across the board.
func Quote(dailyRateCents int64, durationDays int32) RentalQuote {
	base := dailyRateCents * int64(durationDays)
	fee := roundHalfUpPercent(base, ServiceFeePercent)
	return RentalQuote{
		BaseCents:       base,
		ServiceFeeCents: fee,
		TotalCents:      base + fee,
	}
}

func roundHalfUpPercent(amount int64, percent int64) int64 {
	return (amount*percent + 50) / 100
}
