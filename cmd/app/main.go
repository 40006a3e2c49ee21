package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"auditor-esg/internal/config"
	"auditor-esg/internal/handlers"
	"auditor-esg/internal/repositories"
	"auditor-esg/internal/services"
)

func main() {
	// .env es opcional: en producción las variables vienen del entorno
	_ = godotenv.Load()
	cfg := config.Load()

	// 1. Conexión a la base
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Reintento simple: la base puede tardar en levantar (docker compose)
	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatal("base de datos inaccesible:", err)
	}

	// 2. Catálogos: por defecto, o desde YAML si CATALOGOS está seteado
	catalogos := config.CatalogosPorDefecto()
	if cfg.RutaCatalogos != "" {
		catalogos, err = config.CargarCatalogos(cfg.RutaCatalogos)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("📚 Catálogos cargados desde", cfg.RutaCatalogos)
	}

	// 3. Inyección de dependencias: repo -> servicio -> handlers
	repo := repositories.NewAuditoriaRepository(db)
	if err := repo.InicializarTablas(); err != nil {
		log.Fatal("fallo al inicializar la base de datos:", err)
	}

	auditor, err := services.NewAuditorService(repo, catalogos, cfg.TimeoutHTTP)
	if err != nil {
		log.Fatal("catálogos inválidos:", err)
	}

	auditoriaHandler := handlers.NewAuditoriaHandler(auditor)
	informeHandler := handlers.NewInformeHandler(auditor)
	authHandler := handlers.NewAuthHandler(auditor)

	// 4. Frontend estático
	http.Handle("/", http.FileServer(http.Dir(cfg.DirEstaticos)))

	// 5. Rutas de la API
	http.HandleFunc("/api/auditar", auditoriaHandler.Auditar)
	http.HandleFunc("/api/auditar-lote", auditoriaHandler.AuditarLote)
	http.HandleFunc("/api/historico", informeHandler.ListarHistorico)
	http.HandleFunc("/api/informe", informeHandler.Detalles)
	http.HandleFunc("/api/informe-html", informeHandler.DetallesHTML)
	http.HandleFunc("/api/resumen", informeHandler.Resumen)
	http.HandleFunc("/api/registrar", authHandler.Registrar)
	http.HandleFunc("/api/login", authHandler.Login)

	fmt.Println("🌍 Auditor ESG escuchando en el puerto:", cfg.Puerto)
	log.Fatal(http.ListenAndServe(":"+cfg.Puerto, nil))
}
