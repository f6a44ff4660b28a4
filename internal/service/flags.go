package service

import "vendorflow/internal/models"

// DeriveFlags computes the designer flags from the active orders of its vendors.
// pending: some order has not been sent yet. sent: some sent order is still
// awaiting receipt.
func DeriveFlags(orders []models.VendorOrder) (pending, sent bool) {
	for _, o := range orders {
		switch {
		case !o.OrderedAll:
			pending = true
		case !o.ReceivedAll:
			sent = true
		}
	}
	return pending, sent
}

// fullyReceived reports whether every ordered variant has all its units in.
// Orders with nothing ordered yet never count as received.
func fullyReceived(variants []models.VendorOrderVariant) bool {
	ordered := 0
	for _, v := range variants {
		if !v.Ordered {
			continue
		}
		ordered++
		if v.Received < v.Units {
			return false
		}
	}
	return ordered > 0
}
