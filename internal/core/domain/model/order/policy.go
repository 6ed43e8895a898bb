package order

// IsRevenueCounted reports whether an order in status s contributes to the
// dashboard's order count, revenue and active users. Pending orders are not yet
// money and cancelled ones were reversed, so only confirmed and shipped count.
func IsRevenueCounted(s Status) bool {
	switch s {
	case Confirmed, Shipped:
		return true
	default:
		return false
	}
}

// IsSuccessfulForCustomerCount reports whether an order in status s counts toward a
// customer's order count and total spent. It is deliberately looser than
// IsRevenueCounted: a pending order still counts as an order attempt here.
// Keep the two predicates separate.
func IsSuccessfulForCustomerCount(s Status) bool {
	switch s {
	case Pending, Confirmed, Shipped:
		return true
	default:
		return false
	}
}
