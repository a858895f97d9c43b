package calendar

// Summarize computa el resumen de la agenda sobre el set de eventos
// recibido. Opera sobre lo que le pasen: el caller decide si las
// estadísticas reflejan datos pre o post filtro.
func Summarize(events []Event) Stats {
	var s Stats
	s.Total = len(events)

	for _, e := range events {
		switch CategoryOf(e.ID.Kind) {
		case CategoryHealth:
			s.Health++
		case CategoryOperational:
			s.Operational++
		case CategoryFinancial:
			s.Financial++
		}

		switch e.Status {
		case StatusOverdue:
			s.Overdue++
		case StatusUpcoming:
			s.Upcoming++
		}

		switch e.ID.Kind {
		case KindCheckin:
			s.Checkins++
		case KindCheckout:
			s.Checkouts++
		case KindPaymentIncome:
			s.Income += e.Amount
		case KindPaymentExpense:
			s.Expense += e.Amount
		}
	}

	s.Balance = s.Income - s.Expense
	return s
}
