package handlers

import (
	"encoding/json"
	"net/http"

	"auditor-esg/internal/models"
	"auditor-esg/internal/services"
)

type AuthHandler struct {
	Service *services.AuditorService
}

func NewAuthHandler(service *services.AuditorService) *AuthHandler {
	return &AuthHandler{Service: service}
}

func (h *AuthHandler) Registrar(w http.ResponseWriter, r *http.Request) {
	var creds models.Credenciales
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Cuerpo inválido", http.StatusBadRequest)
		return
	}

	if err := h.Service.RegistrarUsuario(creds.Usuario, creds.Contrasena); err != nil {
		http.Error(w, "Error al crear usuario: "+err.Error(), http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"msg": "Creado con éxito"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credenciales
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Cuerpo inválido", http.StatusBadRequest)
		return
	}

	usuario, err := h.Service.AutenticarUsuario(creds.Usuario, creds.Contrasena)
	if err != nil {
		http.Error(w, "Login inválido", http.StatusUnauthorized)
		return
	}

	json.NewEncoder(w).Encode(usuario)
}
