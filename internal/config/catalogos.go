package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Certificacion es una etiqueta del catálogo laboral con sus variantes de patrón
// (regex, se compilan case-insensitive en el servicio)
type Certificacion struct {
	Nombre   string   `yaml:"nombre"`
	Patrones []string `yaml:"patrones"`
}

// Catalogos reúne todo lo que el motor de auditoría busca en los sitios:
// certificaciones, keywords de sostenibilidad, rutas candidatas e indicadores
// de PDF. Se inyecta al servicio para poder auditar con catálogos sintéticos
// en los tests.
type Catalogos struct {
	Certificaciones        []Certificacion `yaml:"certificaciones"`
	KeywordsSostenibilidad []string        `yaml:"keywords_sostenibilidad"`
	RutasCertificaciones   []string        `yaml:"rutas_certificaciones"`
	RutasSostenibilidad    []string        `yaml:"rutas_sostenibilidad"`
	IndicadoresPDF         []string        `yaml:"indicadores_pdf"`
}

// CatalogosPorDefecto devuelve los catálogos de producción
func CatalogosPorDefecto() Catalogos {
	return Catalogos{
		Certificaciones: []Certificacion{
			{Nombre: "ISO 45001", Patrones: []string{`iso[\s-]?45001`, `iso45001`}},
			{Nombre: "SA8000", Patrones: []string{`sa[\s-]?8000`, `sa8000`}},
		},
		KeywordsSostenibilidad: []string{
			`reporte\s+de\s+sostenibilidad`,
			`sustainability\s+report`,
			`informe\s+de\s+responsabilidad\s+social`,
			`memoria\s+de\s+sostenibilidad`,
			`esg\s+report`,
			`rse`,
			`gri\s+report`,
		},
		RutasCertificaciones: []string{
			"/certificaciones", "/calidad", "/sostenibilidad", "/about", "/nosotros",
		},
		RutasSostenibilidad: []string{
			"/sostenibilidad", "/sustainability", "/responsabilidad-social",
			"/esg", "/reportes", "/downloads",
		},
		IndicadoresPDF: []string{"sostenibilidad", "sustainability", "esg", "rse"},
	}
}

// CargarCatalogos lee un YAML de catálogos. Las secciones que el archivo no
// define caen al catálogo por defecto, así un override puede tocar solo las
// certificaciones sin repetir las rutas.
func CargarCatalogos(ruta string) (Catalogos, error) {
	datos, err := os.ReadFile(ruta)
	if err != nil {
		return Catalogos{}, fmt.Errorf("no se pudo leer el catálogo %s: %w", ruta, err)
	}

	var cargado Catalogos
	if err := yaml.Unmarshal(datos, &cargado); err != nil {
		return Catalogos{}, fmt.Errorf("catálogo %s inválido: %w", ruta, err)
	}

	base := CatalogosPorDefecto()
	if len(cargado.Certificaciones) > 0 {
		base.Certificaciones = cargado.Certificaciones
	}
	if len(cargado.KeywordsSostenibilidad) > 0 {
		base.KeywordsSostenibilidad = cargado.KeywordsSostenibilidad
	}
	if len(cargado.RutasCertificaciones) > 0 {
		base.RutasCertificaciones = cargado.RutasCertificaciones
	}
	if len(cargado.RutasSostenibilidad) > 0 {
		base.RutasSostenibilidad = cargado.RutasSostenibilidad
	}
	if len(cargado.IndicadoresPDF) > 0 {
		base.IndicadoresPDF = cargado.IndicadoresPDF
	}
	return base, nil
}
