package data

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/aamuros/hardware-store-sub002/internal/domain"
	"github.com/aamuros/hardware-store-sub002/pkg/phone"
	"github.com/aamuros/hardware-store-sub002/pkg/slug"
)

// Customers returns the static registered-customer pool.
func Customers() []domain.Customer {
	return []domain.Customer{
		{Email: "mark.delacruz@gmail.com", Name: "Mark Dela Cruz", Phone: "09171234567"},
		{Email: "jenny.santos@yahoo.com", Name: "Jenny Santos", Phone: "09183456781"},
		{Email: "ramon.reyes@gmail.com", Name: "Ramon Reyes", Phone: "09209876543"},
		{Email: "liza.garcia@gmail.com", Name: "Liza Garcia", Phone: "09155557777"},
		{Email: "paulo.mendoza@outlook.com", Name: "Paulo Mendoza", Phone: "09291112233"},
		{Email: "grace.aquino@gmail.com", Name: "Grace Aquino", Phone: "09178889900"},
		{Email: "dennis.villanueva@yahoo.com", Name: "Dennis Villanueva", Phone: "09054445566"},
		{Email: "karen.bautista@gmail.com", Name: "Karen Bautista", Phone: "09996660011"},
		{Email: "joel.ramos@gmail.com", Name: "Joel Ramos", Phone: "09472223344"},
		{Email: "aileen.torres@yahoo.com", Name: "Aileen Torres", Phone: "09187771234"},
		{Email: "rico.flores@gmail.com", Name: "Rico Flores", Phone: "09305556677"},
		{Email: "mae.gonzales@gmail.com", Name: "Mae Gonzales", Phone: "09912345678"},
		{Email: "arnel.castro@outlook.com", Name: "Arnel Castro", Phone: "09224567890"},
		{Email: "cherry.navarro@gmail.com", Name: "Cherry Navarro", Phone: "09166543210"},
		{Email: "bong.salazar@yahoo.com", Name: "Bong Salazar", Phone: "09981237654"},
	}
}

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com"}

// ExpandCustomers appends n generated customers to the base pool. Names
// come from gofakeit; phone numbers are built from known PH telco
// prefixes so they classify to a real network.
func ExpandCustomers(base []domain.Customer, n int, rng *rand.Rand) []domain.Customer {
	if n <= 0 {
		return base
	}
	faker := gofakeit.New(rng.Int63())
	prefixes := phone.Prefixes()

	out := make([]domain.Customer, 0, len(base)+n)
	out = append(out, base...)
	for i := 0; i < n; i++ {
		first := faker.FirstName()
		last := faker.LastName()
		email := fmt.Sprintf("%s.%s%d@%s",
			slug.Generate(first), slug.Generate(last), rng.Intn(100),
			emailDomains[rng.Intn(len(emailDomains))])
		msisdn := prefixes[rng.Intn(len(prefixes))] + fmt.Sprintf("%07d", rng.Intn(10_000_000))
		out = append(out, domain.Customer{
			Email: email,
			Name:  strings.TrimSpace(first + " " + last),
			Phone: msisdn,
		})
	}
	return out
}
