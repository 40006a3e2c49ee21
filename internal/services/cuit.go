package services

import (
	"fmt"

	"auditor-esg/internal/models"
)

// Multiplicadores por posición del dígito verificador del CUIT (AFIP)
var multiplicadoresCuit = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// ValidarCUIT verifica el formato y el dígito verificador del CUIT argentino.
// Acepta cualquier formato (XX-XXXXXXXX-X, con espacios, etc.): todo lo que no
// sea dígito se descarta antes de validar. Función pura, sin red.
func ValidarCUIT(cuit string) models.ResultadoCriterio {
	resultado := models.ResultadoCriterio{
		Criterio:  "CUIT válido",
		Resultado: models.ResultadoFail,
	}

	var digitos []int
	for _, c := range cuit {
		if c >= '0' && c <= '9' {
			digitos = append(digitos, int(c-'0'))
		}
	}

	if len(digitos) != 11 {
		resultado.Detalles = "CUIT inválido: debe tener 11 dígitos"
		resultado.Alertas = append(resultado.Alertas, "Formato de CUIT incorrecto")
		return resultado
	}

	suma := 0
	for i, m := range multiplicadoresCuit {
		suma += digitos[i] * m
	}

	verificador := 11 - suma%11
	switch verificador {
	case 11:
		verificador = 0
	case 10:
		verificador = 9
	}

	if digitos[10] == verificador {
		resultado.Resultado = models.ResultadoPass
		resultado.Score = 100
		resultado.Detalles = fmt.Sprintf("CUIT %s verificado correctamente", cuit)
	} else {
		resultado.Detalles = "CUIT inválido: dígito verificador incorrecto"
		resultado.Alertas = append(resultado.Alertas, "Dígito verificador no coincide")
	}

	return resultado
}
