package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"auditor-esg/internal/models"
)

// LeerPlanilla parsea la planilla CSV de proveedores. La primera fila son los
// encabezados (proveedor_id, nombre, cuit, sitio_web); sitio_web puede faltar
// o venir vacío. Una planilla vacía devuelve cero proveedores sin error.
func LeerPlanilla(r io.Reader) ([]models.Proveedor, error) {
	lector := csv.NewReader(r)
	lector.TrimLeadingSpace = true

	encabezados, err := lector.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("encabezados inválidos: %w", err)
	}

	columnas := make(map[string]int, len(encabezados))
	for i, h := range encabezados {
		columnas[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, obligatoria := range []string{"proveedor_id", "nombre", "cuit"} {
		if _, ok := columnas[obligatoria]; !ok {
			return nil, fmt.Errorf("falta la columna %q en la planilla", obligatoria)
		}
	}

	var proveedores []models.Proveedor
	for {
		fila, err := lector.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fila inválida en la planilla: %w", err)
		}

		campo := func(nombre string) string {
			i, ok := columnas[nombre]
			if !ok || i >= len(fila) {
				return ""
			}
			return strings.TrimSpace(fila[i])
		}

		proveedores = append(proveedores, models.Proveedor{
			Id:       campo("proveedor_id"),
			Nombre:   campo("nombre"),
			Cuit:     campo("cuit"),
			SitioWeb: campo("sitio_web"),
		})
	}
	return proveedores, nil
}

// LeerPlanillaArchivo abre y parsea la planilla desde disco
func LeerPlanillaArchivo(ruta string) ([]models.Proveedor, error) {
	f, err := os.Open(ruta)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LeerPlanilla(f)
}
