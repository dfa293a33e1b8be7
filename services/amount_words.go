package services

import "math"

// Spelled-out currency tables for Peruvian soles. Tens join their units with
// "Y" ("VEINTE Y CINCO"), teens are irregular, and 100 is "CIEN" only when exact.
var (
	unidades   = []string{"", "UN", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE"}
	decenas    = []string{"", "DIEZ", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA"}
	especiales = []string{"DIEZ", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE", "DIECISÉIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE"}
	centenas   = []string{"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS"}
)

const (
	invalidAmountText = "El monto debe ser un número positivo."
	outOfRangeText    = "CANTIDAD FUERA DE RANGO"
)

// AmountToWords converts a soles amount into the legal amount-in-words line
// printed on quotations, e.g. 125.50 → "SON: CIENTO VEINTE Y CINCO CON 50/100 SOLES".
// Negative amounts return a fixed sentinel instead of failing; amounts of
// 100,000 or more are outside the supported range and return a fixed sentinel
// in place of the integer part.
func AmountToWords(amount float64) string {
	if amount < 0 {
		return invalidAmountText
	}

	cents := int(math.Round(amount * 100))
	entero := cents / 100
	decimal := cents % 100

	var texto string
	switch {
	case entero == 0:
		texto = "CERO"
	case entero < 100000:
		texto = milesToWords(entero)
	default:
		texto = outOfRangeText
	}

	return "SON: " + texto + " CON " + twoDigits(decimal) + "/100 SOLES"
}

// milesToWords spells out 1..99999.
func milesToWords(n int) string {
	if n < 1000 {
		return shortToWords(n)
	}

	miles := n / 1000
	resto := n % 1000

	texto := "MIL"
	if miles > 1 {
		texto = shortToWords(miles) + " MIL"
	}
	if resto > 0 {
		texto += " " + shortToWords(resto)
	}
	return texto
}

// shortToWords spells out 0..999.
func shortToWords(n int) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return unidades[n]
	case n < 20:
		return especiales[n-10]
	case n < 100:
		texto := decenas[n/10]
		if n%10 != 0 {
			texto += " Y " + unidades[n%10]
		}
		return texto
	default:
		centena := n / 100
		resto := n % 100
		if centena == 1 && resto == 0 {
			return "CIEN"
		}
		texto := centenas[centena]
		if resto > 0 {
			texto += " " + shortToWords(resto)
		}
		return texto
	}
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
