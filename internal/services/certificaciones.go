package services

import (
	"fmt"
	"regexp"
	"strings"

	"auditor-esg/internal/config"
	"auditor-esg/internal/models"
)

// certificacionCompilada es una etiqueta del catálogo con sus patrones ya
// compilados. Se compilan una sola vez al crear el servicio, no por proveedor.
type certificacionCompilada struct {
	nombre   string
	patrones []*regexp.Regexp
}

func compilarCertificaciones(catalogo []config.Certificacion) ([]certificacionCompilada, error) {
	compiladas := make([]certificacionCompilada, 0, len(catalogo))
	for _, cert := range catalogo {
		cc := certificacionCompilada{nombre: cert.Nombre}
		for _, p := range cert.Patrones {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("patrón inválido para %s: %w", cert.Nombre, err)
			}
			cc.patrones = append(cc.patrones, re)
		}
		compiladas = append(compiladas, cc)
	}
	return compiladas, nil
}

// DetectarCertificaciones busca cada certificación del catálogo en el texto
// agregado del sitio. Una etiqueta cuenta como encontrada si cualquiera de sus
// variantes de patrón aparece. El score es la proporción encontradas/total.
func (s *AuditorService) DetectarCertificaciones(texto string) models.ResultadoCriterio {
	resultado := models.ResultadoCriterio{
		Criterio:  "Certificaciones laborales",
		Resultado: models.ResultadoFail,
	}

	var faltantes []string
	for _, cert := range s.certificaciones {
		if coincideAlguno(cert.patrones, texto) {
			resultado.Hallazgos = append(resultado.Hallazgos, cert.nombre)
		} else {
			faltantes = append(faltantes, cert.nombre)
		}
	}

	total := len(s.certificaciones)
	encontradas := len(resultado.Hallazgos)
	if total > 0 {
		resultado.Score = redondear(100 * float64(encontradas) / float64(total))
	}

	switch {
	case total > 0 && encontradas == total:
		resultado.Resultado = models.ResultadoPass
		resultado.Detalles = "Todas las certificaciones encontradas: " + strings.Join(resultado.Hallazgos, ", ")
	case encontradas > 0:
		resultado.Resultado = models.ResultadoPartial
		resultado.Detalles = "Certificaciones encontradas: " + strings.Join(resultado.Hallazgos, ", ")
	default:
		resultado.Detalles = "No se encontraron certificaciones laborales"
	}

	for _, nombre := range faltantes {
		resultado.Alertas = append(resultado.Alertas, nombre+" no encontrada")
	}

	return resultado
}

func coincideAlguno(patrones []*regexp.Regexp, texto string) bool {
	for _, re := range patrones {
		if re.MatchString(texto) {
			return true
		}
	}
	return false
}
