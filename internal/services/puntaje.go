package services

import (
	"fmt"
	"math"
	"strings"

	"auditor-esg/internal/models"
)

// Pesos de consolidación del score ESG
const (
	pesoGovernance    = 0.4
	pesoSocial        = 0.3
	pesoEnvironmental = 0.3

	// UmbralConformidad es el score total mínimo para declarar conforme al proveedor
	UmbralConformidad = 70
)

// Consolidado es la salida del motor de puntaje
type Consolidado struct {
	ScoreTotal      int
	Conformidad     bool
	NoConformidades []string
	Tareas          []string
}

// Consolidar combina los tres pilares en el score total ponderado
// (0.4/0.3/0.3), el veredicto de conformidad (>= 70) y las tareas de
// remediación. Las alertas se concatenan en orden governance, social,
// environmental. El redondeo es half-away-from-zero (math.Round).
func (s *AuditorService) Consolidar(governance, social, environmental models.ResultadoCriterio) Consolidado {
	c := Consolidado{
		ScoreTotal: redondear(pesoGovernance*float64(governance.Score) +
			pesoSocial*float64(social.Score) +
			pesoEnvironmental*float64(environmental.Score)),
	}
	c.Conformidad = c.ScoreTotal >= UmbralConformidad

	c.NoConformidades = append(c.NoConformidades, governance.Alertas...)
	c.NoConformidades = append(c.NoConformidades, social.Alertas...)
	c.NoConformidades = append(c.NoConformidades, environmental.Alertas...)

	if governance.Resultado != models.ResultadoPass {
		c.Tareas = append(c.Tareas, "Verificar y corregir CUIT registrado")
	}
	if social.Score < 100 {
		c.Tareas = append(c.Tareas, fmt.Sprintf(
			"Obtener certificaciones laborales faltantes (%s)",
			strings.Join(s.etiquetasCertificaciones(), ", ")))
	}
	if environmental.Score < 100 {
		c.Tareas = append(c.Tareas, "Publicar reporte de sostenibilidad en sitio web corporativo")
	}

	return c
}

func (s *AuditorService) etiquetasCertificaciones() []string {
	nombres := make([]string, len(s.certificaciones))
	for i, cert := range s.certificaciones {
		nombres[i] = cert.nombre
	}
	return nombres
}

func redondear(x float64) int {
	return int(math.Round(x))
}

// ResumenDeLote calcula las estadísticas agregadas de un lote de informes.
// Es una vista derivada: no agrega información nueva al lote.
func ResumenDeLote(informes []models.InformeAuditoria) models.ResumenLote {
	resumen := models.ResumenLote{Total: len(informes)}
	if resumen.Total == 0 {
		return resumen
	}

	var sumaTotal, sumaGov, sumaSoc, sumaEnv int
	for _, inf := range informes {
		if inf.Conformidad {
			resumen.Conformes++
		}
		sumaTotal += inf.ScoreTotal
		sumaGov += inf.Auditoria.Governance.Score
		sumaSoc += inf.Auditoria.Social.Score
		sumaEnv += inf.Auditoria.Environmental.Score
	}

	resumen.NoConformes = resumen.Total - resumen.Conformes
	resumen.PorcentajeConformes = redondear(100 * float64(resumen.Conformes) / float64(resumen.Total))
	resumen.ScorePromedio = redondear(float64(sumaTotal) / float64(resumen.Total))
	resumen.PromedioGovernance = redondear(float64(sumaGov) / float64(resumen.Total))
	resumen.PromedioSocial = redondear(float64(sumaSoc) / float64(resumen.Total))
	resumen.PromedioEnvironmental = redondear(float64(sumaEnv) / float64(resumen.Total))
	return resumen
}
