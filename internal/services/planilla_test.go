package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeerPlanilla(t *testing.T) {
	t.Run("planilla completa con columnas en cualquier orden", func(t *testing.T) {
		csv := strings.Join([]string{
			"nombre,proveedor_id,sitio_web,cuit",
			"Textil Norte SA,001,https://textilnorte.example.com,20-12345678-6",
			"Química Andina SRL,002,,30-50000000-3",
		}, "\n")

		proveedores, err := LeerPlanilla(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, proveedores, 2)

		assert.Equal(t, "001", proveedores[0].Id)
		assert.Equal(t, "Textil Norte SA", proveedores[0].Nombre)
		assert.Equal(t, "20-12345678-6", proveedores[0].Cuit)
		assert.Equal(t, "https://textilnorte.example.com", proveedores[0].SitioWeb)

		assert.Equal(t, "002", proveedores[1].Id)
		assert.Empty(t, proveedores[1].SitioWeb)
	})

	t.Run("sitio_web puede faltar como columna", func(t *testing.T) {
		csv := "proveedor_id,nombre,cuit\n003,Logística Sur,27-39284510-6\n"

		proveedores, err := LeerPlanilla(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, proveedores, 1)
		assert.Empty(t, proveedores[0].SitioWeb)
	})

	t.Run("columna obligatoria ausente", func(t *testing.T) {
		_, err := LeerPlanilla(strings.NewReader("proveedor_id,nombre\n001,Sin CUIT\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"cuit"`)
	})

	t.Run("planilla vacía devuelve cero proveedores", func(t *testing.T) {
		proveedores, err := LeerPlanilla(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, proveedores)
	})

	t.Run("solo encabezados devuelve cero proveedores", func(t *testing.T) {
		proveedores, err := LeerPlanilla(strings.NewReader("proveedor_id,nombre,cuit,sitio_web\n"))
		require.NoError(t, err)
		assert.Empty(t, proveedores)
	})

	t.Run("espacios alrededor de los campos se descartan", func(t *testing.T) {
		csv := "proveedor_id, nombre, cuit\n004, Frigorífico Este , 20-12345678-6 \n"

		proveedores, err := LeerPlanilla(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, proveedores, 1)
		assert.Equal(t, "Frigorífico Este", proveedores[0].Nombre)
		assert.Equal(t, "20-12345678-6", proveedores[0].Cuit)
	})
}

func TestLeerPlanillaArchivo(t *testing.T) {
	t.Run("lee desde disco", func(t *testing.T) {
		ruta := filepath.Join(t.TempDir(), "proveedores.csv")
		contenido := "proveedor_id,nombre,cuit,sitio_web\n001,Proveedor Uno,20-12345678-6,\n"
		require.NoError(t, os.WriteFile(ruta, []byte(contenido), 0644))

		proveedores, err := LeerPlanillaArchivo(ruta)
		require.NoError(t, err)
		require.Len(t, proveedores, 1)
		assert.Equal(t, "Proveedor Uno", proveedores[0].Nombre)
	})

	t.Run("archivo inexistente", func(t *testing.T) {
		_, err := LeerPlanillaArchivo(filepath.Join(t.TempDir(), "no-existe.csv"))
		assert.Error(t, err)
	})
}
