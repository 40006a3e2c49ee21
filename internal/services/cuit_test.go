package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"auditor-esg/internal/models"
)

func TestValidarCUIT(t *testing.T) {
	t.Run("CUIT válido con formato estándar", func(t *testing.T) {
		resultado := ValidarCUIT("20-12345678-6")

		assert.Equal(t, models.ResultadoPass, resultado.Resultado)
		assert.Equal(t, 100, resultado.Score)
		assert.Equal(t, "CUIT 20-12345678-6 verificado correctamente", resultado.Detalles)
		assert.Empty(t, resultado.Alertas)
	})

	t.Run("el formato no importa, solo los dígitos", func(t *testing.T) {
		// El mismo CUIT con guiones, con espacios y pelado valida igual
		for _, cuit := range []string{"20-12345678-6", "20 12345678 6", "20123456786"} {
			resultado := ValidarCUIT(cuit)
			assert.Equal(t, models.ResultadoPass, resultado.Resultado, "cuit %q", cuit)
			assert.Equal(t, 100, resultado.Score)
		}
	})

	t.Run("tabla de CUITs conocidos", func(t *testing.T) {
		casos := []struct {
			cuit   string
			valido bool
		}{
			{"20-12345678-6", true},
			{"27-39284510-6", true},
			{"30-50000000-3", true},
			// verificador calculado 11 -> se normaliza a 0
			{"00000000000", true},
			// verificador calculado 10 -> se normaliza a 9
			{"03000000009", true},
			// dígito verificador alterado
			{"20-12345678-5", false},
			{"20-12345678-7", false},
			{"30-50000000-4", false},
			// un dígito del cuerpo alterado
			{"30-12345678-6", false},
			{"20-12345679-6", false},
		}

		for _, c := range casos {
			resultado := ValidarCUIT(c.cuit)
			if c.valido {
				assert.Equal(t, models.ResultadoPass, resultado.Resultado, "cuit %q", c.cuit)
				assert.Equal(t, 100, resultado.Score, "cuit %q", c.cuit)
			} else {
				assert.Equal(t, models.ResultadoFail, resultado.Resultado, "cuit %q", c.cuit)
				assert.Equal(t, 0, resultado.Score, "cuit %q", c.cuit)
				assert.Contains(t, resultado.Alertas, "Dígito verificador no coincide", "cuit %q", c.cuit)
			}
		}
	})

	t.Run("longitud distinta de 11 dígitos es FAIL de formato", func(t *testing.T) {
		for _, cuit := range []string{"", "123", "20-1234567-8", "201234567861", "abc", "  -  "} {
			resultado := ValidarCUIT(cuit)
			assert.Equal(t, models.ResultadoFail, resultado.Resultado, "cuit %q", cuit)
			assert.Equal(t, 0, resultado.Score, "cuit %q", cuit)
			assert.Equal(t, "CUIT inválido: debe tener 11 dígitos", resultado.Detalles, "cuit %q", cuit)
			assert.Equal(t, []string{"Formato de CUIT incorrecto"}, resultado.Alertas, "cuit %q", cuit)
		}
	})

	t.Run("es determinística", func(t *testing.T) {
		a := ValidarCUIT("20-12345678-6")
		b := ValidarCUIT("20-12345678-6")
		assert.Equal(t, a, b)
	})
}
