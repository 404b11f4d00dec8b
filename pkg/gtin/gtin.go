package gtin

import "strings"

// Prefijo para GTIN sintetizados a partir de barcodes no numéricos.
const importedPrefix = "IMP"

// Derive deriva un GTIN de 14 caracteres a partir de un barcode.
// Barcodes numéricos de 13 o 14 dígitos se rellenan con ceros a la izquierda
// hasta 14 (GTIN-14 estándar). Cualquier otro barcode recibe el prefijo "IMP"
// más los primeros 11 caracteres rellenados con ceros a la derecha, de modo
// que importaciones repetidas del mismo barcode produzcan el mismo GTIN.
func Derive(barcode string) string {
	if (len(barcode) == 13 || len(barcode) == 14) && isDigits(barcode) {
		return strings.Repeat("0", 14-len(barcode)) + barcode
	}
	body := barcode
	if len(body) > 11 {
		body = body[:11]
	}
	if len(body) < 11 {
		body += strings.Repeat("0", 11-len(body))
	}
	return importedPrefix + body
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
