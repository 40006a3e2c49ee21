package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"auditor-esg/internal/render"
	"auditor-esg/internal/services"
)

type InformeHandler struct {
	Service *services.AuditorService
}

func NewInformeHandler(service *services.AuditorService) *InformeHandler {
	return &InformeHandler{Service: service}
}

// ListarHistorico atiende GET /api/historico?user_id=
func (h *InformeHandler) ListarHistorico(w http.ResponseWriter, r *http.Request) {
	userId, _ := strconv.Atoi(r.URL.Query().Get("user_id"))

	lista, err := h.Service.ListarHistorico(userId)
	if err != nil {
		http.Error(w, "Error al buscar histórico", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// Detalles atiende GET /api/informe?id=
func (h *InformeHandler) Detalles(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "ID obligatorio", http.StatusBadRequest)
		return
	}

	informe, err := h.Service.ObtenerInforme(id)
	if err != nil {
		http.Error(w, "Informe no encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(informe)
}

// DetallesHTML atiende GET /api/informe-html?id= con el reporte imprimible
func (h *InformeHandler) DetallesHTML(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "ID obligatorio", http.StatusBadRequest)
		return
	}

	informe, err := h.Service.ObtenerInforme(id)
	if err != nil {
		http.Error(w, "Informe no encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Informe(w, informe); err != nil {
		http.Error(w, "Error al generar el reporte", http.StatusInternalServerError)
	}
}

// Resumen atiende GET /api/resumen con las estadísticas generales
func (h *InformeHandler) Resumen(w http.ResponseWriter, r *http.Request) {
	resumen, err := h.Service.ResumenGeneral()
	if err != nil {
		http.Error(w, "Error al calcular resumen", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumen)
}
