package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auditor-esg/internal/config"
	"auditor-esg/internal/models"
)

// nuevoAuditorDePrueba arma un servicio sin base de datos con el catálogo dado
func nuevoAuditorDePrueba(t *testing.T, cat config.Catalogos) *AuditorService {
	t.Helper()
	auditor, err := NewAuditorService(nil, cat, 2*time.Second)
	require.NoError(t, err)
	return auditor
}

func catalogoSintetico(certs ...config.Certificacion) config.Catalogos {
	cat := config.CatalogosPorDefecto()
	cat.Certificaciones = certs
	return cat
}

func TestDetectarCertificaciones(t *testing.T) {
	auditor := nuevoAuditorDePrueba(t, config.CatalogosPorDefecto())

	t.Run("todas encontradas es PASS 100", func(t *testing.T) {
		resultado := auditor.DetectarCertificaciones("certificados iso 45001 y sa8000 vigentes")

		assert.Equal(t, models.ResultadoPass, resultado.Resultado)
		assert.Equal(t, 100, resultado.Score)
		assert.Equal(t, []string{"ISO 45001", "SA8000"}, resultado.Hallazgos)
		assert.Equal(t, "Todas las certificaciones encontradas: ISO 45001, SA8000", resultado.Detalles)
		assert.Empty(t, resultado.Alertas)
	})

	t.Run("una de dos es PARTIAL 50 con alerta por la faltante", func(t *testing.T) {
		resultado := auditor.DetectarCertificaciones("contamos con iso 45001")

		assert.Equal(t, models.ResultadoPartial, resultado.Resultado)
		assert.Equal(t, 50, resultado.Score)
		assert.Equal(t, []string{"ISO 45001"}, resultado.Hallazgos)
		assert.Equal(t, []string{"SA8000 no encontrada"}, resultado.Alertas)
	})

	t.Run("ninguna encontrada es FAIL 0 con una alerta por etiqueta", func(t *testing.T) {
		resultado := auditor.DetectarCertificaciones("página institucional sin certificados")

		assert.Equal(t, models.ResultadoFail, resultado.Resultado)
		assert.Equal(t, 0, resultado.Score)
		assert.Empty(t, resultado.Hallazgos)
		assert.Equal(t, "No se encontraron certificaciones laborales", resultado.Detalles)
		assert.Equal(t, []string{"ISO 45001 no encontrada", "SA8000 no encontrada"}, resultado.Alertas)
	})

	t.Run("cualquier variante de patrón cuenta", func(t *testing.T) {
		for _, texto := range []string{"iso 45001", "iso-45001", "iso45001", "ISO 45001"} {
			resultado := auditor.DetectarCertificaciones(texto)
			assert.Contains(t, resultado.Hallazgos, "ISO 45001", "texto %q", texto)
		}
	})

	t.Run("el score es la proporción redondeada sobre el catálogo", func(t *testing.T) {
		auditor := nuevoAuditorDePrueba(t, catalogoSintetico(
			config.Certificacion{Nombre: "A", Patrones: []string{`etiqueta-a`}},
			config.Certificacion{Nombre: "B", Patrones: []string{`etiqueta-b`}},
			config.Certificacion{Nombre: "C", Patrones: []string{`etiqueta-c`}},
		))

		assert.Equal(t, 33, auditor.DetectarCertificaciones("etiqueta-a").Score)
		assert.Equal(t, 67, auditor.DetectarCertificaciones("etiqueta-a etiqueta-b").Score)
		assert.Equal(t, 100, auditor.DetectarCertificaciones("etiqueta-a etiqueta-b etiqueta-c").Score)
	})

	t.Run("el score nunca baja al satisfacer más patrones", func(t *testing.T) {
		auditor := nuevoAuditorDePrueba(t, catalogoSintetico(
			config.Certificacion{Nombre: "A", Patrones: []string{`etiqueta-a`}},
			config.Certificacion{Nombre: "B", Patrones: []string{`etiqueta-b`}},
		))

		textos := []string{"", "etiqueta-a", "etiqueta-a etiqueta-b"}
		anterior := -1
		for _, texto := range textos {
			score := auditor.DetectarCertificaciones(texto).Score
			assert.GreaterOrEqual(t, score, anterior)
			anterior = score
		}
	})
}
