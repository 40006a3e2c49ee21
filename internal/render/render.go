// Package render genera los reportes HTML por proveedor y el dashboard del
// lote. Es capa de presentación pura: consume los informes ya armados y no
// los altera.
package render

import (
	"html/template"
	"io"
	"strings"

	"auditor-esg/internal/models"
)

var funciones = template.FuncMap{
	"lower": strings.ToLower,
}

var (
	plantillaInforme   = template.Must(template.New("informe").Funcs(funciones).Parse(htmlInforme))
	plantillaDashboard = template.Must(template.New("dashboard").Funcs(funciones).Parse(htmlDashboard))
)

// Informe escribe el reporte HTML individual de un proveedor
func Informe(w io.Writer, informe *models.InformeAuditoria) error {
	return plantillaInforme.Execute(w, informe)
}

type datosDashboard struct {
	Resumen  models.ResumenLote
	Informes []models.InformeAuditoria
}

// Dashboard escribe el resumen HTML de todo el lote
func Dashboard(w io.Writer, informes []models.InformeAuditoria, resumen models.ResumenLote) error {
	return plantillaDashboard.Execute(w, datosDashboard{Resumen: resumen, Informes: informes})
}

const htmlInforme = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<title>Auditoría ESG - {{.Proveedor.Nombre}}</title>
<style>
body { font-family: 'Segoe UI', sans-serif; background: #f5f7fa; padding: 20px; }
.container { max-width: 1000px; margin: 0 auto; background: white; border-radius: 10px; padding: 40px; }
.header { text-align: center; border-bottom: 3px solid #3498db; padding-bottom: 20px; margin-bottom: 30px; }
.score-total { text-align: center; padding: 30px; background: #667eea; color: white; border-radius: 8px; margin-bottom: 30px; }
.conformidad { display: inline-block; padding: 10px 30px; border-radius: 5px; font-weight: bold; color: white; }
.conforme { background: #27ae60; }
.no-conforme { background: #e74c3c; }
.criterio { background: #f8f9fa; border-left: 5px solid #3498db; padding: 20px; border-radius: 5px; margin-bottom: 20px; }
.badge { padding: 5px 15px; border-radius: 20px; font-size: 0.8em; font-weight: bold; color: white; }
.badge-pass { background: #27ae60; }
.badge-partial { background: #f39c12; }
.badge-fail { background: #e74c3c; }
.alertas { background: #fff3cd; border-left: 5px solid #ffc107; padding: 15px; margin-top: 15px; }
.tareas { background: #d4edda; border-left: 5px solid #28a745; padding: 20px; border-radius: 5px; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>AUDITORÍA ESG</h1>
    <p>Reporte de Trazabilidad de Proveedor</p>
  </div>
  <h2>{{.Proveedor.Nombre}}</h2>
  <p><strong>ID Proveedor:</strong> {{.Proveedor.Id}}</p>
  <p><strong>CUIT:</strong> {{.Proveedor.Cuit}}</p>
  <p><strong>Sitio Web:</strong> {{if .Proveedor.SitioWeb}}{{.Proveedor.SitioWeb}}{{else}}N/A{{end}}</p>
  <p><strong>Fecha Auditoría:</strong> {{.Timestamp.Format "02/01/2006 15:04"}}</p>
  <div class="score-total">
    <h2>{{.ScoreTotal}}%</h2>
    {{if .Conformidad}}<span class="conformidad conforme">CONFORME</span>{{else}}<span class="conformidad no-conforme">NO CONFORME</span>{{end}}
  </div>
  {{template "pilar" .Auditoria.Governance}}
  {{template "pilar" .Auditoria.Social}}
  {{template "pilar" .Auditoria.Environmental}}
  {{if .TareasProveedor}}
  <div class="tareas">
    <h3>Tareas Requeridas para el Proveedor</h3>
    <ul>{{range .TareasProveedor}}<li>{{.}}</li>{{end}}</ul>
  </div>
  {{end}}
</div>
</body>
</html>
{{define "pilar"}}
<div class="criterio">
  <h3>{{.Criterio}} <span class="badge badge-{{lower .Resultado}}">{{.Resultado}}</span></h3>
  <p><strong>Score:</strong> {{.Score}}%</p>
  <p><strong>Detalle:</strong> {{.Detalles}}</p>
  {{if .Hallazgos}}<p><strong>Hallazgos:</strong> {{range .Hallazgos}}{{.}} {{end}}</p>{{end}}
  {{if .Alertas}}
  <div class="alertas">
    <h4>Alertas</h4>
    <ul>{{range .Alertas}}<li>{{.}}</li>{{end}}</ul>
  </div>
  {{end}}
</div>
{{end}}`

const htmlDashboard = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<title>Dashboard ESG - Auditoría de Proveedores</title>
<style>
body { font-family: 'Segoe UI', sans-serif; background: #f5f7fa; padding: 20px; }
.container { max-width: 1400px; margin: 0 auto; }
.header { text-align: center; background: #667eea; color: white; padding: 40px; border-radius: 10px; margin-bottom: 30px; }
.stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 20px; margin-bottom: 30px; }
.stat-card { background: white; padding: 25px; border-radius: 10px; text-align: center; }
.stat-card .numero { font-size: 3em; font-weight: bold; color: #2c3e50; }
table { width: 100%; border-collapse: collapse; background: white; }
th { background: #34495e; color: white; padding: 15px; text-align: left; }
td { padding: 15px; border-bottom: 1px solid #ecf0f1; }
tr.conforme { background: #d4edda; }
tr.no-conforme { background: #f8d7da; }
.badge { padding: 8px 20px; border-radius: 5px; font-weight: bold; font-size: 0.9em; color: white; }
.badge-pass { background: #27ae60; }
.badge-fail { background: #e74c3c; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>DASHBOARD ESG</h1>
    <p>Sistema de Auditoría y Trazabilidad de Proveedores</p>
  </div>
  <div class="stats">
    <div class="stat-card"><h3>Total Proveedores</h3><div class="numero">{{.Resumen.Total}}</div></div>
    <div class="stat-card"><h3>Conformes</h3><div class="numero">{{.Resumen.Conformes}}</div><p>{{.Resumen.PorcentajeConformes}}%</p></div>
    <div class="stat-card"><h3>No Conformes</h3><div class="numero">{{.Resumen.NoConformes}}</div></div>
    <div class="stat-card"><h3>Score Promedio</h3><div class="numero">{{.Resumen.ScorePromedio}}%</div></div>
  </div>
  <div class="stats">
    <div class="stat-card"><h3>GOVERNANCE</h3><div class="numero">{{.Resumen.PromedioGovernance}}%</div></div>
    <div class="stat-card"><h3>SOCIAL</h3><div class="numero">{{.Resumen.PromedioSocial}}%</div></div>
    <div class="stat-card"><h3>ENVIRONMENTAL</h3><div class="numero">{{.Resumen.PromedioEnvironmental}}%</div></div>
  </div>
  <table>
    <thead>
      <tr>
        <th>Proveedor</th><th>CUIT</th><th>Score Total</th>
        <th>Governance</th><th>Social</th><th>Environmental</th>
        <th>Estado</th><th>Detalle</th>
      </tr>
    </thead>
    <tbody>
      {{range .Informes}}
      <tr class="{{if .Conformidad}}conforme{{else}}no-conforme{{end}}">
        <td><strong>{{.Proveedor.Nombre}}</strong></td>
        <td>{{.Proveedor.Cuit}}</td>
        <td>{{.ScoreTotal}}%</td>
        <td>{{.Auditoria.Governance.Score}}%</td>
        <td>{{.Auditoria.Social.Score}}%</td>
        <td>{{.Auditoria.Environmental.Score}}%</td>
        <td>{{if .Conformidad}}<span class="badge badge-pass">CONFORME</span>{{else}}<span class="badge badge-fail">NO CONFORME</span>{{end}}</td>
        <td><a href="informe_{{.Proveedor.Id}}.html" target="_blank">Ver Detalle</a></td>
      </tr>
      {{end}}
    </tbody>
  </table>
</div>
</body>
</html>`
