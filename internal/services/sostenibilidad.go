package services

import (
	"fmt"

	"auditor-esg/internal/models"
)

// Constantes de la política de detección de reportes. Los umbrales (un PDF o
// dos keywords para PASS, una keyword para PARTIAL con score 50) son política
// fija del área de compliance, no configuración.
const (
	minKeywordsReporte  = 2
	maxEnlacesInforme   = 3
	scoreReporteParcial = 50
)

// DetectarReporteSostenibilidad evalúa la evidencia ambiental: enlaces a PDFs
// de reportes o densidad de keywords de sostenibilidad en el texto agregado.
// El score solo puede valer 100, 50 o 0.
func (s *AuditorService) DetectarReporteSostenibilidad(texto string, enlacesPDF []string) models.ResultadoCriterio {
	resultado := models.ResultadoCriterio{
		Criterio:  "Reporte de sostenibilidad publicado",
		Resultado: models.ResultadoFail,
	}

	coincidencias := 0
	for _, re := range s.keywordsSostenibilidad {
		if re.MatchString(texto) {
			coincidencias++
		}
	}

	switch {
	case len(enlacesPDF) > 0 || coincidencias >= minKeywordsReporte:
		resultado.Resultado = models.ResultadoPass
		resultado.Score = 100
		if len(enlacesPDF) > 0 {
			limite := maxEnlacesInforme
			if len(enlacesPDF) < limite {
				limite = len(enlacesPDF)
			}
			resultado.Hallazgos = enlacesPDF[:limite]
			resultado.Detalles = fmt.Sprintf("Se encontraron %d reportes de sostenibilidad", len(enlacesPDF))
		} else {
			resultado.Detalles = fmt.Sprintf("Se encontró información de sostenibilidad (keywords: %d)", coincidencias)
		}
	case coincidencias == 1:
		resultado.Resultado = models.ResultadoPartial
		resultado.Score = scoreReporteParcial
		resultado.Detalles = "Información limitada de sostenibilidad encontrada"
		resultado.Alertas = append(resultado.Alertas, "Reporte de sostenibilidad no claramente publicado")
	default:
		resultado.Detalles = "No se encontró reporte de sostenibilidad publicado"
		resultado.Alertas = append(resultado.Alertas, "Sin reporte de sostenibilidad verificable")
	}

	return resultado
}
