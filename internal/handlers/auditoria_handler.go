package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"auditor-esg/internal/models"
	"auditor-esg/internal/services"
)

type AuditoriaHandler struct {
	Service *services.AuditorService
}

func NewAuditoriaHandler(service *services.AuditorService) *AuditoriaHandler {
	return &AuditoriaHandler{Service: service}
}

// Auditar atiende POST /api/auditar: audita un proveedor y devuelve el informe
func (h *AuditoriaHandler) Auditar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método inválido", http.StatusMethodNotAllowed)
		return
	}

	var pedido struct {
		models.Proveedor
		UserId int `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&pedido); err != nil {
		http.Error(w, "Cuerpo inválido", http.StatusBadRequest)
		return
	}

	log.Printf("🔍 Auditando proveedor %s (%s)", pedido.Nombre, pedido.Id)

	informe, err := h.Service.EjecutarAuditoria(r.Context(), pedido.Proveedor, pedido.UserId)
	if err != nil {
		http.Error(w, "Error en la auditoría: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(informe)
}

// AuditarLote atiende POST /api/auditar-lote: recibe la planilla CSV de
// proveedores en el cuerpo y audita todos en orden
func (h *AuditoriaHandler) AuditarLote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método inválido", http.StatusMethodNotAllowed)
		return
	}

	userId, _ := strconv.Atoi(r.URL.Query().Get("user_id"))

	proveedores, err := services.LeerPlanilla(r.Body)
	if err != nil {
		http.Error(w, "Planilla inválida: "+err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("📋 Lote recibido: %d proveedores", len(proveedores))

	informes, err := h.Service.EjecutarLote(r.Context(), proveedores, userId)
	if err != nil {
		http.Error(w, "Error en el lote: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(informes)
}
