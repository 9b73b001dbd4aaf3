package data

import "github.com/aamuros/hardware-store-sub002/internal/domain"

// Addresses returns the static delivery-address pool.
func Addresses() []domain.Address {
	return []domain.Address{
		{Address: "123 Mabini St", Barangay: "Poblacion", Landmarks: "Near the public market"},
		{Address: "45 Rizal Ave", Barangay: "San Isidro", Landmarks: "Beside Mercury Drug"},
		{Address: "Blk 7 Lot 12, Villa Esperanza Subd", Barangay: "Santo Niño", Landmarks: "White gate, mango tree in front"},
		{Address: "88 National Highway", Barangay: "Bagong Silang", Landmarks: "In front of the elementary school"},
		{Address: "Purok 3, Sitio Malinis", Barangay: "San Roque", Landmarks: "After the basketball court, turn left"},
		{Address: "210 Del Pilar St", Barangay: "Poblacion", Landmarks: "Green two-storey house"},
		{Address: "Unit 4, Chua Apartment, Burgos St", Barangay: "San Jose", Landmarks: "Above the sari-sari store"},
		{Address: "Km 12, Maharlika Highway", Barangay: "Malvar", Landmarks: "Vulcanizing shop at the corner"},
		{Address: "Blk 2 Lot 9, Greenfields Homes", Barangay: "Santa Cruz", Landmarks: "Near the covered court"},
		{Address: "67 Bonifacio St", Barangay: "Concepcion", Landmarks: ""},
		{Address: "Purok 5", Barangay: "Bagumbayan", Landmarks: "Behind the barangay hall"},
		{Address: "19 Aguinaldo St", Barangay: "San Antonio", Landmarks: "Blue gate, beware of dog"},
	}
}

// OrderNotes returns the pool of optional delivery notes. Several
// entries contain commas on purpose to exercise CSV quoting.
func OrderNotes() []string {
	return []string{
		"Please call before delivery",
		"Leave at gate, beware of dog",
		"Deliver in the morning only",
		"Cash on delivery, prepare change for 1000",
		"Landmark: red gate, knock loudly",
		"Second floor, carry up please",
		"Text when near",
		"Fragile items, handle with care",
	}
}
