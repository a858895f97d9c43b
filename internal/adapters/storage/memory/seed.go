package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pet-daycare-calendar/internal/domain/calendar"
	"pet-daycare-calendar/internal/domain/pets"
)

// NewSeededStore arma el set completo de adapters en memoria con datos de
// ejemplo alrededor de now: algo vencido, algo próximo, una estadía en
// curso y movimientos del mes. Es el modo demo cuando no hay DB_DSN.
func NewSeededStore(now time.Time) (calendar.Sources, pets.Repository) {
	ctx := context.Background()

	petsRepo := NewPetsRepo()
	vaccs := NewVaccinationsRepo()
	meds := NewMedicationsRepo()
	prevs := NewPreventivesRepo()
	stays := NewStaysRepo()
	txs := NewTransactionsRepo()
	credits := NewCreditsRepo()

	luna := pets.Pet{
		ID:         uuid.NewString(),
		Name:       "Luna",
		Species:    pets.SpeciesDog,
		Breed:      "Border Collie",
		TutorName:  "Carla Méndez",
		TutorPhone: "+54 9 11 5555-0101",
		Notes:      "come dos veces por día, se lleva bien con todos",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	milo := pets.Pet{
		ID:         uuid.NewString(),
		Name:       "Milo",
		Species:    pets.SpeciesCat,
		Breed:      "Común europeo",
		TutorName:  "Javier Sosa",
		TutorPhone: "+54 9 11 5555-0202",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_ = petsRepo.Create(ctx, luna)
	_ = petsRepo.Create(ctx, milo)

	// Vacuna vencida hace 5 días y otra dentro de la ventana de próximos.
	_, _ = vaccs.Create(ctx, calendar.VaccinationRecord{
		PetID:       luna.ID,
		PetName:     luna.Name,
		VaccineName: "Antirrábica",
		NextDueDate: now.AddDate(0, 0, -5),
	})
	_, _ = vaccs.Create(ctx, calendar.VaccinationRecord{
		PetID:       milo.ID,
		PetName:     milo.Name,
		VaccineName: "Triple felina",
		NextDueDate: now.AddDate(0, 0, 3),
	})

	_, _ = meds.Create(ctx, calendar.MedicationRecord{
		PetID:          luna.ID,
		PetName:        luna.Name,
		MedicationName: "Antibiótico",
		EndDate:        now.AddDate(0, 0, 2),
		Notes:          "cada 12 horas con comida",
	})

	_, _ = prevs.CreateFlea(ctx, calendar.PreventiveRecord{
		PetID:       luna.ID,
		PetName:     luna.Name,
		ProductName: "Pipeta mensual",
		NextDueDate: now.AddDate(0, 0, 10),
	})
	_, _ = prevs.CreateDeworming(ctx, calendar.PreventiveRecord{
		PetID:       milo.ID,
		PetName:     milo.Name,
		ProductName: "Desparasitario oral",
		NextDueDate: now.AddDate(0, 0, -2),
	})

	// Estadía en curso: entró ayer, sale en tres días.
	stay, _ := stays.Create(ctx, calendar.StayRecord{
		PetID:        luna.ID,
		PetName:      luna.Name,
		CheckInDate:  now.AddDate(0, 0, -1),
		CheckOutDate: now.AddDate(0, 0, 3),
		Notes:        "trae su manta",
	})

	_, _ = txs.Create(ctx, calendar.TransactionRecord{
		PetID:       luna.ID,
		PetName:     luna.Name,
		Type:        calendar.TransactionIncome,
		Category:    "hospedaje",
		Description: "Estadía " + stay.ID,
		Amount:      1200000,
		Date:        now.AddDate(0, 0, -1),
	})
	_, _ = txs.Create(ctx, calendar.TransactionRecord{
		Type:        calendar.TransactionExpense,
		Category:    "alimento",
		Description: "Bolsa 15kg",
		Amount:      450000,
		Date:        now.AddDate(0, 0, -3),
	})

	_ = credits.Add(ctx, CreditUsage{PetID: luna.ID, PetName: luna.Name, UsageDate: now.AddDate(0, 0, -1)})
	_ = credits.Add(ctx, CreditUsage{PetID: luna.ID, PetName: luna.Name, UsageDate: now})
	_ = credits.Add(ctx, CreditUsage{PetID: milo.ID, PetName: milo.Name, UsageDate: now.AddDate(0, 0, -4)})

	return calendar.Sources{
		Vaccinations: vaccs,
		Medications:  meds,
		Preventives:  prevs,
		Stays:        stays,
		Transactions: txs,
		Credits:      credits,
	}, petsRepo
}
