// Modo lote: audita la planilla completa de proveedores sin base de datos.
// Genera auditoria_esg.json, un reporte HTML por proveedor y dashboard.html.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"auditor-esg/internal/config"
	"auditor-esg/internal/models"
	"auditor-esg/internal/render"
	"auditor-esg/internal/services"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	rutaPlanilla := "proveedores.csv"
	if len(os.Args) > 1 {
		rutaPlanilla = os.Args[1]
	}
	dirSalida := "."
	if len(os.Args) > 2 {
		dirSalida = os.Args[2]
	}

	catalogos := config.CatalogosPorDefecto()
	if cfg.RutaCatalogos != "" {
		var err error
		catalogos, err = config.CargarCatalogos(cfg.RutaCatalogos)
		if err != nil {
			log.Fatal(err)
		}
	}

	auditor, err := services.NewAuditorService(nil, catalogos, cfg.TimeoutHTTP)
	if err != nil {
		log.Fatal("catálogos inválidos:", err)
	}

	fmt.Println("============================================================")
	fmt.Println("🌍 SISTEMA DE AUDITORÍA ESG - TRAZABILIDAD DE PROVEEDORES")
	fmt.Println("============================================================")
	fmt.Println("📋 Procesando planilla:", rutaPlanilla)

	proveedores, err := services.LeerPlanillaArchivo(rutaPlanilla)
	if err != nil {
		// Planilla ausente o ilegible: lote vacío, no es fatal
		fmt.Println("❌ Error:", err)
	}
	fmt.Printf("✓ %d proveedores cargados\n", len(proveedores))

	ctx := context.Background()
	informes := make([]models.InformeAuditoria, 0, len(proveedores))
	for _, p := range proveedores {
		fmt.Printf("\n🔍 Auditando: %s (ID: %s)\n", p.Nombre, p.Id)
		informe := auditor.AuditarProveedor(ctx, p)
		informes = append(informes, informe)

		fmt.Printf("  ✓ Governance: %d%% - %s\n", informe.Auditoria.Governance.Score, informe.Auditoria.Governance.Resultado)
		fmt.Printf("  ✓ Social: %d%% - %s\n", informe.Auditoria.Social.Score, informe.Auditoria.Social.Resultado)
		fmt.Printf("  ✓ Environmental: %d%% - %s\n", informe.Auditoria.Environmental.Score, informe.Auditoria.Environmental.Resultado)
		fmt.Printf("  📊 Score Total: %d%%\n", informe.ScoreTotal)
		if informe.Conformidad {
			fmt.Println("  ✅ CONFORME")
		} else {
			fmt.Println("  ❌ NO CONFORME")
		}
	}

	if len(informes) == 0 {
		fmt.Println("\n❌ No se procesaron proveedores")
		return
	}

	if err := exportarJSON(informes, filepath.Join(dirSalida, "auditoria_esg.json")); err != nil {
		log.Fatal("error exportando JSON:", err)
	}

	fmt.Println("\n📄 Generando reportes individuales...")
	for i := range informes {
		nombre := fmt.Sprintf("informe_%s.html", informes[i].Proveedor.Id)
		if err := escribirHTML(filepath.Join(dirSalida, nombre), &informes[i]); err != nil {
			log.Fatal(err)
		}
		fmt.Println("  ✓", nombre)
	}

	resumen := services.ResumenDeLote(informes)
	if err := escribirDashboard(filepath.Join(dirSalida, "dashboard.html"), informes, resumen); err != nil {
		log.Fatal(err)
	}
	fmt.Println("📊 Dashboard generado: dashboard.html")

	fmt.Println("\n📈 RESUMEN GENERAL:")
	fmt.Printf("  Total proveedores auditados: %d\n", resumen.Total)
	fmt.Printf("  Conformes: %d (%d%%)\n", resumen.Conformes, resumen.PorcentajeConformes)
	fmt.Printf("  No conformes: %d\n", resumen.NoConformes)
}

func exportarJSON(informes []models.InformeAuditoria, ruta string) error {
	datos, err := json.MarshalIndent(informes, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(ruta, datos, 0o644); err != nil {
		return err
	}
	fmt.Println("\n💾 Resultados exportados a:", ruta)
	return nil
}

func escribirHTML(ruta string, informe *models.InformeAuditoria) error {
	f, err := os.Create(ruta)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.Informe(f, informe)
}

func escribirDashboard(ruta string, informes []models.InformeAuditoria, resumen models.ResumenLote) error {
	f, err := os.Create(ruta)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.Dashboard(f, informes, resumen)
}
