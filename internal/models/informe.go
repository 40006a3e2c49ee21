package models

import "time"

// Veredictos posibles de un criterio auditado
const (
	ResultadoPass    = "PASS"
	ResultadoPartial = "PARTIAL"
	ResultadoFail    = "FAIL"
)

// Proveedor es el registro de entrada de la planilla. Nunca se modifica.
type Proveedor struct {
	Id       string `json:"proveedor_id"`
	Nombre   string `json:"nombre"`
	Cuit     string `json:"cuit"`
	SitioWeb string `json:"sitio_web"`
}

// ResultadoCriterio es la evaluación de un pilar ESG (PASS/PARTIAL/FAIL + score 0-100)
type ResultadoCriterio struct {
	Criterio  string   `json:"criterio"`
	Resultado string   `json:"resultado"`
	Score     int      `json:"score"`
	Detalles  string   `json:"detalles"`
	Hallazgos []string `json:"hallazgos,omitempty"`
	Alertas   []string `json:"alertas"`
}

// AuditoriaESG agrupa los tres pilares evaluados
type AuditoriaESG struct {
	Governance    ResultadoCriterio `json:"governance"`
	Social        ResultadoCriterio `json:"social"`
	Environmental ResultadoCriterio `json:"environmental"`
}

// InformeAuditoria es el documento completo de la auditoría de un proveedor
type InformeAuditoria struct {
	Id              int          `json:"id,omitempty"`
	Codigo          string       `json:"codigo,omitempty"`
	Timestamp       time.Time    `json:"timestamp"`
	Proveedor       Proveedor    `json:"proveedor"`
	Auditoria       AuditoriaESG `json:"auditoria_esg"`
	ScoreTotal      int          `json:"score_total"`
	Conformidad     bool         `json:"conformidad"`
	NoConformidades []string     `json:"no_conformidades"`
	TareasProveedor []string     `json:"tareas_proveedor"`
}

// EvidenciaWeb es el material recolectado del sitio del proveedor en una pasada:
// texto agregado (ya en minúsculas) por juego de rutas y los PDFs de sostenibilidad
type EvidenciaWeb struct {
	TextoCertificaciones string
	TextoSostenibilidad  string
	EnlacesPDF           []string
}

// ResumenLote son las estadísticas derivadas de un lote de informes
type ResumenLote struct {
	Total                 int `json:"total"`
	Conformes             int `json:"conformes"`
	NoConformes           int `json:"no_conformes"`
	PorcentajeConformes   int `json:"porcentaje_conformes"`
	ScorePromedio         int `json:"score_promedio"`
	PromedioGovernance    int `json:"promedio_governance"`
	PromedioSocial        int `json:"promedio_social"`
	PromedioEnvironmental int `json:"promedio_environmental"`
}

// Credenciales para registro y login de la API
type Credenciales struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}
