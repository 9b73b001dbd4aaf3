package domain

import "fmt"

// Centavos converts a whole-peso amount to centavos. Handy for price
// table literals.
func Centavos(pesos int64) int64 {
	return pesos * 100
}

// FormatCentavos renders a centavo amount as a decimal peso string with
// exactly two fraction digits, e.g. 123456 → "1234.56".
func FormatCentavos(v int64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}
