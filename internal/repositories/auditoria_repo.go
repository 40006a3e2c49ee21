package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"auditor-esg/internal/models"
)

// AuditoriaRepository conecta el servicio con Postgres
type AuditoriaRepository struct {
	DB *sql.DB
}

func NewAuditoriaRepository(db *sql.DB) *AuditoriaRepository {
	return &AuditoriaRepository{DB: db}
}

// ==========================================
// ===        FUNCIONES DE INFORME        ===
// ==========================================

// GuardarInforme persiste el informe y sus tres criterios en una transacción
func (r *AuditoriaRepository) GuardarInforme(userId int, informe *models.InformeAuditoria) (int, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}

	var informeId int
	err = tx.QueryRow(`
		INSERT INTO auditorias (codigo, user_id, proveedor_id, nombre, cuit, sitio_web, score_total, conformidad, tareas)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		informe.Codigo, userId, informe.Proveedor.Id, informe.Proveedor.Nombre,
		informe.Proveedor.Cuit, informe.Proveedor.SitioWeb,
		informe.ScoreTotal, informe.Conformidad, pq.Array(informe.TareasProveedor),
	).Scan(&informeId)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	criterios := []struct {
		pilar     string
		resultado models.ResultadoCriterio
	}{
		{"governance", informe.Auditoria.Governance},
		{"social", informe.Auditoria.Social},
		{"environmental", informe.Auditoria.Environmental},
	}
	for _, c := range criterios {
		_, err := tx.Exec(`
			INSERT INTO criterios_auditoria (auditoria_id, pilar, criterio, resultado, score, detalles, hallazgos, alertas)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			informeId, c.pilar, c.resultado.Criterio, c.resultado.Resultado,
			c.resultado.Score, c.resultado.Detalles,
			pq.Array(c.resultado.Hallazgos), pq.Array(c.resultado.Alertas))
		if err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	return informeId, tx.Commit()
}

// ListarInformes devuelve el histórico: el admin ve todo, el resto solo lo suyo
func (r *AuditoriaRepository) ListarInformes(userId int) ([]map[string]interface{}, error) {
	var esAdmin bool
	err := r.DB.QueryRow("SELECT is_admin FROM usuarios WHERE id = $1", userId).Scan(&esAdmin)
	if err != nil {
		return nil, fmt.Errorf("error verificando permisos: %w", err)
	}

	var rows *sql.Rows
	if esAdmin {
		rows, err = r.DB.Query(`
			SELECT a.id, a.codigo, a.nombre, a.cuit, a.score_total, a.conformidad,
			       to_char(a.fecha_auditoria, 'DD/MM/YYYY HH24:MI:SS'), u.username
			FROM auditorias a
			JOIN usuarios u ON a.user_id = u.id
			ORDER BY a.fecha_auditoria DESC`)
	} else {
		rows, err = r.DB.Query(`
			SELECT a.id, a.codigo, a.nombre, a.cuit, a.score_total, a.conformidad,
			       to_char(a.fecha_auditoria, 'DD/MM/YYYY HH24:MI:SS'), u.username
			FROM auditorias a
			JOIN usuarios u ON a.user_id = u.id
			WHERE a.user_id = $1
			ORDER BY a.fecha_auditoria DESC`, userId)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lista := []map[string]interface{}{}
	for rows.Next() {
		var id, scoreTotal int
		var conformidad bool
		var codigo, nombre, cuit, fecha, usuario string
		if err := rows.Scan(&id, &codigo, &nombre, &cuit, &scoreTotal, &conformidad, &fecha, &usuario); err != nil {
			continue
		}
		lista = append(lista, map[string]interface{}{
			"id":          id,
			"codigo":      codigo,
			"nombre":      nombre,
			"cuit":        cuit,
			"score_total": scoreTotal,
			"conformidad": conformidad,
			"fecha":       fecha,
			"usuario":     usuario,
		})
	}
	return lista, rows.Err()
}

// GetInformeCompleto reconstruye un informe con sus tres criterios
func (r *AuditoriaRepository) GetInformeCompleto(id int) (*models.InformeAuditoria, error) {
	var informe models.InformeAuditoria

	err := r.DB.QueryRow(`
		SELECT id, codigo, proveedor_id, nombre, cuit, coalesce(sitio_web, ''),
		       score_total, conformidad, tareas, fecha_auditoria
		FROM auditorias
		WHERE id = $1`, id).Scan(
		&informe.Id, &informe.Codigo, &informe.Proveedor.Id, &informe.Proveedor.Nombre,
		&informe.Proveedor.Cuit, &informe.Proveedor.SitioWeb,
		&informe.ScoreTotal, &informe.Conformidad,
		pq.Array(&informe.TareasProveedor), &informe.Timestamp)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT pilar, criterio, resultado, score, coalesce(detalles, ''), hallazgos, alertas
		FROM criterios_auditoria
		WHERE auditoria_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pilar string
		var criterio models.ResultadoCriterio
		if err := rows.Scan(&pilar, &criterio.Criterio, &criterio.Resultado, &criterio.Score,
			&criterio.Detalles, pq.Array(&criterio.Hallazgos), pq.Array(&criterio.Alertas)); err != nil {
			return nil, err
		}
		switch pilar {
		case "governance":
			informe.Auditoria.Governance = criterio
		case "social":
			informe.Auditoria.Social = criterio
		case "environmental":
			informe.Auditoria.Environmental = criterio
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Las no conformidades no se guardan aparte: son la concatenación ordenada
	// de las alertas de los tres pilares
	informe.NoConformidades = append(informe.NoConformidades, informe.Auditoria.Governance.Alertas...)
	informe.NoConformidades = append(informe.NoConformidades, informe.Auditoria.Social.Alertas...)
	informe.NoConformidades = append(informe.NoConformidades, informe.Auditoria.Environmental.Alertas...)

	return &informe, nil
}

// ResumenGeneral agrega las estadísticas de todas las auditorías guardadas
func (r *AuditoriaRepository) ResumenGeneral() (models.ResumenLote, error) {
	var resumen models.ResumenLote

	err := r.DB.QueryRow(`
		SELECT count(*),
		       count(*) FILTER (WHERE conformidad),
		       coalesce(round(avg(score_total)), 0)
		FROM auditorias`).Scan(&resumen.Total, &resumen.Conformes, &resumen.ScorePromedio)
	if err != nil {
		return resumen, err
	}
	resumen.NoConformes = resumen.Total - resumen.Conformes
	if resumen.Total > 0 {
		resumen.PorcentajeConformes = int(float64(resumen.Conformes)/float64(resumen.Total)*100 + 0.5)
	}

	rows, err := r.DB.Query(`
		SELECT pilar, coalesce(round(avg(score)), 0)
		FROM criterios_auditoria
		GROUP BY pilar`)
	if err != nil {
		return resumen, err
	}
	defer rows.Close()

	for rows.Next() {
		var pilar string
		var promedio int
		if err := rows.Scan(&pilar, &promedio); err != nil {
			return resumen, err
		}
		switch pilar {
		case "governance":
			resumen.PromedioGovernance = promedio
		case "social":
			resumen.PromedioSocial = promedio
		case "environmental":
			resumen.PromedioEnvironmental = promedio
		}
	}
	return resumen, rows.Err()
}

// ==========================================
// ===        FUNCIONES DE USUARIO        ===
// ==========================================

func (r *AuditoriaRepository) CrearUsuario(usuario, contrasena string) error {
	// El hash se genera acá para garantizar que nunca se guarda texto plano
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), 10)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec("INSERT INTO usuarios (username, password_hash) VALUES ($1, $2)", usuario, string(hash))
	return err
}

func (r *AuditoriaRepository) BuscarUsuarioLogin(usuario, contrasena string) (map[string]interface{}, error) {
	var id int
	var hashGuardado, usuarioDb string
	var esAdmin bool

	err := r.DB.QueryRow("SELECT id, username, password_hash, is_admin FROM usuarios WHERE username=$1", usuario).
		Scan(&id, &usuarioDb, &hashGuardado, &esAdmin)
	if err != nil {
		return nil, fmt.Errorf("usuario no encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashGuardado), []byte(contrasena)); err != nil {
		return nil, fmt.Errorf("contraseña incorrecta")
	}

	return map[string]interface{}{
		"id":       id,
		"username": usuarioDb,
		"is_admin": esAdmin,
	}, nil
}

// InicializarTablas crea la estructura de la base y el usuario admin por defecto
func (r *AuditoriaRepository) InicializarTablas() error {
	_, err := r.DB.Exec(`CREATE TABLE IF NOT EXISTS usuarios (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN DEFAULT FALSE
	);`)
	if err != nil {
		return fmt.Errorf("error tabla usuarios: %w", err)
	}

	contrasenaAdmin := "auditor123"
	hashAdmin, _ := bcrypt.GenerateFromPassword([]byte(contrasenaAdmin), 10)
	// ON CONFLICT evita duplicarlo si ya existe
	_, err = r.DB.Exec(`INSERT INTO usuarios (id, username, password_hash, is_admin)
             VALUES (1, 'Auditor Jefe', $1, TRUE)
             ON CONFLICT (id) DO NOTHING`, string(hashAdmin))
	if err != nil {
		return fmt.Errorf("error creando admin: %w", err)
	}

	_, err = r.DB.Exec(`CREATE TABLE IF NOT EXISTS auditorias (
		id SERIAL PRIMARY KEY,
		codigo TEXT UNIQUE NOT NULL,
		user_id INT REFERENCES usuarios(id),
		proveedor_id TEXT NOT NULL,
		nombre TEXT NOT NULL,
		cuit TEXT NOT NULL,
		sitio_web TEXT,
		score_total INT NOT NULL,
		conformidad BOOLEAN NOT NULL,
		tareas TEXT[] NOT NULL DEFAULT '{}',
		fecha_auditoria TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	);`)
	if err != nil {
		return fmt.Errorf("error tabla auditorias: %w", err)
	}

	_, err = r.DB.Exec(`CREATE TABLE IF NOT EXISTS criterios_auditoria (
		id SERIAL PRIMARY KEY,
		auditoria_id INT REFERENCES auditorias(id) ON DELETE CASCADE,
		pilar TEXT NOT NULL,
		criterio TEXT NOT NULL,
		resultado TEXT NOT NULL,
		score INT NOT NULL,
		detalles TEXT,
		hallazgos TEXT[] NOT NULL DEFAULT '{}',
		alertas TEXT[] NOT NULL DEFAULT '{}'
	);`)
	if err != nil {
		return fmt.Errorf("error tabla criterios: %w", err)
	}

	return nil
}
