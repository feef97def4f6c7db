// seed crea el esquema del almacén de documentos y siembra el bosque de
// lugares por defecto. Los lugares solo se crean por esta vía: la API los
// trata como de solo lectura.
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables de entorno que cmd/api
// (DATABASE_URL o DB_HOST/DB_PORT/...).
package main

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-lugares/internal/domain/places"
	"github.com/jhoicas/inventario-lugares/internal/infrastructure/document"
	"github.com/jhoicas/inventario-lugares/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-lugares/pkg/config"
	"github.com/jhoicas/inventario-lugares/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS places (
	id  TEXT PRIMARY KEY,
	doc JSONB NOT NULL,
	seq SERIAL
);

CREATE TABLE IF NOT EXISTS inventory (
	id  TEXT PRIMARY KEY,
	doc JSONB NOT NULL,
	seq SERIAL
);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL DEFAULT 'editor',
	status        TEXT NOT NULL DEFAULT 'active',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema verificado")

	// Upsert por ID: re-ejecutar el seed actualiza nombre y parts sin
	// duplicar lugares ni tocar el inventario existente.
	const upsert = `
		INSERT INTO places (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`

	forest := places.DefaultForest()
	for _, place := range forest {
		doc, err := document.EncodePlace(place)
		if err != nil {
			log.Fatal().Err(err).Str("place_id", place.ID).Msg("codificar lugar")
		}
		if _, err := pool.Exec(ctx, upsert, place.ID, doc); err != nil {
			log.Fatal().Err(err).Str("place_id", place.ID).Msg("sembrar lugar")
		}
		log.Info().Str("place_id", place.ID).Str("name", place.Name).Msg("lugar sembrado")
	}

	log.Info().Int("lugares", len(forest)).Msg("siembra completada")
}
