package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"auditor-esg/internal/config"
)

func catalogoDeRutas(rutasCert, rutasSost []string) config.Catalogos {
	cat := config.CatalogosPorDefecto()
	cat.RutasCertificaciones = rutasCert
	cat.RutasSostenibilidad = rutasSost
	return cat
}

func TestRecolectorEvidencia(t *testing.T) {
	t.Run("agrega el texto en minúsculas de todas las páginas alcanzables", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "Portada Con ISO 45001")
		})
		mux.HandleFunc("/certificaciones", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "Certificado SA8000 Vigente")
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		recolector := NewRecolectorEvidencia(catalogoDeRutas([]string{"/certificaciones"}, nil), 2*time.Second)
		evidencia := recolector.Recolectar(context.Background(), srv.URL)

		assert.Contains(t, evidencia.TextoCertificaciones, "portada con iso 45001")
		assert.Contains(t, evidencia.TextoCertificaciones, "certificado sa8000 vigente")
		// La portada también forma parte de la evidencia de sostenibilidad
		assert.Contains(t, evidencia.TextoSostenibilidad, "portada con iso 45001")
	})

	t.Run("extrae solo los PDFs con indicador de sostenibilidad", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/sostenibilidad", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body>
				<a href="/docs/Reporte-Sostenibilidad-2024.PDF">Reporte</a>
				<a href="/docs/informe-rse.pdf">RSE</a>
				<a href="/docs/manual-usuario.pdf">Manual</a>
				<a href="/sustainability">Página</a>
			</body></html>`)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		recolector := NewRecolectorEvidencia(catalogoDeRutas(nil, []string{"/sostenibilidad"}), 2*time.Second)
		evidencia := recolector.Recolectar(context.Background(), srv.URL)

		assert.Equal(t, []string{
			"/docs/reporte-sostenibilidad-2024.pdf",
			"/docs/informe-rse.pdf",
		}, evidencia.EnlacesPDF)
	})

	t.Run("una URL que falla se saltea sin cortar la recolección", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		mux.HandleFunc("/calidad", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "texto de calidad")
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		recolector := NewRecolectorEvidencia(catalogoDeRutas([]string{"/calidad"}, nil), 2*time.Second)
		evidencia := recolector.Recolectar(context.Background(), srv.URL)

		assert.Equal(t, "texto de calidad", evidencia.TextoCertificaciones)
	})

	t.Run("cada URL candidata se pide una sola vez, sin reintentos", func(t *testing.T) {
		var mu sync.Mutex
		pedidos := map[string]int{}
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			pedidos[r.URL.Path]++
			mu.Unlock()
			if r.URL.Path == "/calidad" {
				http.Error(w, "no disponible", http.StatusServiceUnavailable)
				return
			}
			fmt.Fprint(w, "ok")
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		recolector := NewRecolectorEvidencia(catalogoDeRutas([]string{"/calidad", "/about"}, []string{"/esg"}), 2*time.Second)
		recolector.Recolectar(context.Background(), srv.URL)

		mu.Lock()
		defer mu.Unlock()
		// raíz: una vez por juego de rutas
		assert.Equal(t, 2, pedidos["/"])
		assert.Equal(t, 1, pedidos["/calidad"])
		assert.Equal(t, 1, pedidos["/about"])
		assert.Equal(t, 1, pedidos["/esg"])
	})

	t.Run("sitio totalmente inaccesible deja evidencia vacía", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // cerrado a propósito: toda conexión falla

		recolector := NewRecolectorEvidencia(config.CatalogosPorDefecto(), 500*time.Millisecond)
		evidencia := recolector.Recolectar(context.Background(), srv.URL)

		assert.Empty(t, evidencia.TextoCertificaciones)
		assert.Empty(t, evidencia.TextoSostenibilidad)
		assert.Empty(t, evidencia.EnlacesPDF)
	})

	t.Run("una URL base rota no rompe la recolección", func(t *testing.T) {
		recolector := NewRecolectorEvidencia(config.CatalogosPorDefecto(), 500*time.Millisecond)
		evidencia := recolector.Recolectar(context.Background(), "::no-es-una-url")

		assert.Empty(t, evidencia.TextoCertificaciones)
		assert.Empty(t, evidencia.EnlacesPDF)
	})
}
