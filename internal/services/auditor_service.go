package services

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"time"

	"auditor-esg/internal/config"
	"auditor-esg/internal/models"
	"auditor-esg/internal/repositories"
)

// AuditorService orquesta el pipeline ESG completo: validación de CUIT,
// recolección de evidencia web, detección de certificaciones y reportes,
// y consolidación del puntaje. También expone las operaciones que consumen
// los handlers de la API.
type AuditorService struct {
	repo       *repositories.AuditoriaRepository
	recolector *RecolectorEvidencia

	certificaciones        []certificacionCompilada
	keywordsSostenibilidad []*regexp.Regexp
}

// NewAuditorService compila los catálogos una sola vez y arma el servicio.
// repo puede ser nil para el modo lote sin base de datos.
func NewAuditorService(repo *repositories.AuditoriaRepository, cat config.Catalogos, timeoutHTTP time.Duration) (*AuditorService, error) {
	certificaciones, err := compilarCertificaciones(cat.Certificaciones)
	if err != nil {
		return nil, err
	}

	keywords := make([]*regexp.Regexp, 0, len(cat.KeywordsSostenibilidad))
	for _, k := range cat.KeywordsSostenibilidad {
		re, err := regexp.Compile("(?i)" + k)
		if err != nil {
			return nil, fmt.Errorf("keyword de sostenibilidad inválida %q: %w", k, err)
		}
		keywords = append(keywords, re)
	}

	return &AuditorService{
		repo:                   repo,
		recolector:             NewRecolectorEvidencia(cat, timeoutHTTP),
		certificaciones:        certificaciones,
		keywordsSostenibilidad: keywords,
	}, nil
}

// AuditarProveedor corre el pipeline completo para un proveedor. Sin sitio web
// declarado, los dos criterios web quedan en FAIL sin tocar la red; el CUIT se
// valida igual. Ningún modo de falla escapa del informe del proveedor.
func (s *AuditorService) AuditarProveedor(ctx context.Context, p models.Proveedor) models.InformeAuditoria {
	governance := ValidarCUIT(p.Cuit)

	var social, environmental models.ResultadoCriterio
	if p.SitioWeb == "" {
		social = sinSitioWeb("Certificaciones laborales")
		environmental = sinSitioWeb("Reporte de sostenibilidad publicado")
	} else {
		evidencia := s.recolector.Recolectar(ctx, p.SitioWeb)
		social = s.DetectarCertificaciones(evidencia.TextoCertificaciones)
		environmental = s.DetectarReporteSostenibilidad(evidencia.TextoSostenibilidad, evidencia.EnlacesPDF)
	}

	consolidado := s.Consolidar(governance, social, environmental)

	return models.InformeAuditoria{
		Timestamp: time.Now(),
		Proveedor: p,
		Auditoria: models.AuditoriaESG{
			Governance:    governance,
			Social:        social,
			Environmental: environmental,
		},
		ScoreTotal:      consolidado.ScoreTotal,
		Conformidad:     consolidado.Conformidad,
		NoConformidades: consolidado.NoConformidades,
		TareasProveedor: consolidado.Tareas,
	}
}

// sinSitioWeb arma el resultado FAIL de un criterio web cuando el proveedor
// no declaró sitio
func sinSitioWeb(criterio string) models.ResultadoCriterio {
	return models.ResultadoCriterio{
		Criterio:  criterio,
		Resultado: models.ResultadoFail,
		Detalles:  "No se proporcionó sitio web",
		Alertas:   []string{"Sitio web no disponible para verificación"},
	}
}

// AuditarLote procesa los proveedores en orden de entrada, cada uno con estado
// propio. Cero proveedores produce cero informes sin error.
func (s *AuditorService) AuditarLote(ctx context.Context, proveedores []models.Proveedor) []models.InformeAuditoria {
	informes := make([]models.InformeAuditoria, 0, len(proveedores))
	for _, p := range proveedores {
		informes = append(informes, s.AuditarProveedor(ctx, p))
	}
	return informes
}

// === OPERACIONES DE LA API (requieren repo) ===

// EjecutarAuditoria audita un proveedor y persiste el informe con su código
func (s *AuditorService) EjecutarAuditoria(ctx context.Context, p models.Proveedor, userId int) (*models.InformeAuditoria, error) {
	informe := s.AuditarProveedor(ctx, p)
	informe.Codigo = generarCodigo()

	id, err := s.repo.GuardarInforme(userId, &informe)
	if err != nil {
		return nil, err
	}
	informe.Id = id
	return &informe, nil
}

// EjecutarLote audita y persiste una planilla completa
func (s *AuditorService) EjecutarLote(ctx context.Context, proveedores []models.Proveedor, userId int) ([]models.InformeAuditoria, error) {
	informes := make([]models.InformeAuditoria, 0, len(proveedores))
	for _, p := range proveedores {
		informe, err := s.EjecutarAuditoria(ctx, p, userId)
		if err != nil {
			return nil, err
		}
		informes = append(informes, *informe)
	}
	return informes, nil
}

func (s *AuditorService) RegistrarUsuario(usuario, contrasena string) error {
	return s.repo.CrearUsuario(usuario, contrasena)
}

func (s *AuditorService) AutenticarUsuario(usuario, contrasena string) (map[string]interface{}, error) {
	return s.repo.BuscarUsuarioLogin(usuario, contrasena)
}

func (s *AuditorService) ListarHistorico(userId int) ([]map[string]interface{}, error) {
	return s.repo.ListarInformes(userId)
}

func (s *AuditorService) ObtenerInforme(id int) (*models.InformeAuditoria, error) {
	return s.repo.GetInformeCompleto(id)
}

func (s *AuditorService) ResumenGeneral() (models.ResumenLote, error) {
	return s.repo.ResumenGeneral()
}

// generarCodigo produce un código legible tipo 2026XK0042 para el informe
func generarCodigo() string {
	ano := time.Now().Year()
	letras := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	l1 := string(letras[rand.Intn(len(letras))])
	l2 := string(letras[rand.Intn(len(letras))])
	return fmt.Sprintf("%d%s%s%04d", ano, l1, l2, rand.Intn(10000))
}
