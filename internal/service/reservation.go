package service

import "vendorflow/internal/models"

type Reservation struct {
	OrderProductID string
	Units          int
}

// ReservationPlan splits received units between customer demand and free stock.
// Reserved + Unreserved == Increment.
type ReservationPlan struct {
	Increment    int
	Reserved     int
	Unreserved   int
	Reservations []Reservation
}

// PlanReservation walks demand in order and reserves against every line that
// still needs units until the increment is used up. A non-positive increment
// yields an empty plan.
func PlanReservation(increment int, demand []models.OrderProduct) ReservationPlan {
	if increment <= 0 {
		return ReservationPlan{}
	}

	plan := ReservationPlan{Increment: increment}
	remaining := increment
	for _, p := range demand {
		if remaining == 0 {
			break
		}
		need := p.Need()
		if need <= 0 {
			continue
		}
		n := min(need, remaining)
		plan.Reservations = append(plan.Reservations, Reservation{OrderProductID: p.ObjectID, Units: n})
		plan.Reserved += n
		remaining -= n
	}
	plan.Unreserved = increment - plan.Reserved
	return plan
}
