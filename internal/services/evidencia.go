package services

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"auditor-esg/internal/config"
	"auditor-esg/internal/models"
)

// RecolectorEvidencia descarga las páginas candidatas del sitio de un proveedor.
// Cada URL se intenta una sola vez: timeout, error de conexión o status distinto
// de 200 descartan esa página y se sigue con la próxima. Nunca devuelve error
// hacia arriba y no guarda nada entre proveedores.
type RecolectorEvidencia struct {
	cliente        *http.Client
	rutasCert      []string
	rutasSost      []string
	indicadoresPDF []string
}

func NewRecolectorEvidencia(cat config.Catalogos, timeout time.Duration) *RecolectorEvidencia {
	// Cliente tolerante: muchos sitios de proveedores tienen certificados
	// vencidos o TLS viejo, y eso no puede frenar la auditoría
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
			MinVersion:         tls.VersionTLS10,
		},
	}
	return &RecolectorEvidencia{
		cliente:        &http.Client{Transport: tr, Timeout: timeout},
		rutasCert:      cat.RutasCertificaciones,
		rutasSost:      cat.RutasSostenibilidad,
		indicadoresPDF: cat.IndicadoresPDF,
	}
}

// Recolectar junta en una sola pasada la evidencia de los dos juegos de rutas:
// texto agregado en minúsculas para cada detector y, sobre las rutas de
// sostenibilidad, los enlaces a PDFs de reportes.
func (r *RecolectorEvidencia) Recolectar(ctx context.Context, sitioWeb string) models.EvidenciaWeb {
	var ev models.EvidenciaWeb
	ev.TextoCertificaciones = r.recolectarTexto(ctx, sitioWeb, r.rutasCert, nil)
	ev.TextoSostenibilidad = r.recolectarTexto(ctx, sitioWeb, r.rutasSost, &ev.EnlacesPDF)
	return ev
}

func (r *RecolectorEvidencia) recolectarTexto(ctx context.Context, sitio string, rutas []string, pdfs *[]string) string {
	var acumulado strings.Builder
	for _, u := range candidatas(sitio, rutas) {
		cuerpo, ok := r.descargar(ctx, u)
		if !ok {
			continue
		}
		acumulado.WriteString(strings.ToLower(cuerpo))
		if pdfs != nil {
			*pdfs = append(*pdfs, r.extraerEnlacesPDF(cuerpo)...)
		}
	}
	return acumulado.String()
}

// candidatas arma la lista ordenada de URLs absolutas: el sitio base primero y
// después cada ruta resuelta contra él
func candidatas(sitio string, rutas []string) []string {
	urls := []string{sitio}
	base, err := url.Parse(sitio)
	if err != nil {
		return urls
	}
	for _, ruta := range rutas {
		ref, err := url.Parse(ruta)
		if err != nil {
			continue
		}
		urls = append(urls, base.ResolveReference(ref).String())
	}
	return urls
}

func (r *RecolectorEvidencia) descargar(ctx context.Context, urlObjetivo string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlObjetivo, nil)
	if err != nil {
		return "", false
	}
	// Headers de navegador: varios sitios rechazan clientes sin User-Agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	res, err := r.cliente.Do(req)
	if err != nil {
		return "", false
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", false
	}

	cuerpo, err := io.ReadAll(res.Body)
	if err != nil {
		return "", false
	}
	return string(cuerpo), true
}

// extraerEnlacesPDF busca <a href> apuntando a PDFs cuyo nombre sugiera un
// reporte de sostenibilidad (sostenibilidad, sustainability, esg, rse)
func (r *RecolectorEvidencia) extraerEnlacesPDF(cuerpo string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(cuerpo))
	if err != nil {
		return nil
	}

	var enlaces []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.ToLower(strings.TrimSpace(sel.AttrOr("href", "")))
		if !strings.HasSuffix(href, ".pdf") {
			return
		}
		for _, indicador := range r.indicadoresPDF {
			if strings.Contains(href, indicador) {
				enlaces = append(enlaces, href)
				break
			}
		}
	})
	return enlaces
}
