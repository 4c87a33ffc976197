// seed crea el administrador inicial y las categorías raíz del catálogo.
//
// Uso: go run ./cmd/seed -email admin@interiores.co -password <secreto>
// Es idempotente: lo que ya existe se deja como está.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/usecase"
	"github.com/jhoicas/Interiores-api/internal/application/validation"
	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Interiores-api/pkg/config"
	"github.com/jhoicas/Interiores-api/pkg/logger"
)

var rootCategories = []dto.CreateCategoryRequest{
	{Name: "Sala", Description: "Sofás, mesas de centro y muebles de TV"},
	{Name: "Comedor", Description: "Mesas, sillas y aparadores"},
	{Name: "Dormitorio", Description: "Camas, mesas de noche y armarios"},
	{Name: "Cocina", Description: "Islas, taburetes y almacenamiento"},
	{Name: "Iluminación", Description: "Lámparas de techo, pie y mesa"},
	{Name: "Decoración", Description: "Textiles, espejos y accesorios"},
}

func main() {
	email := flag.String("email", os.Getenv("SEED_ADMIN_EMAIL"), "email del administrador")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "password del administrador (mín. 8)")
	name := flag.String("name", "Administrador", "nombre del administrador")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *email != "" {
		users := usecase.NewUserUseCase(postgres.NewUserRepository(pool))
		in := dto.CreateUserRequest{Email: *email, Password: *password, Name: *name, Role: "ADMIN"}
		if err := validation.Struct(in); err != nil {
			log.Fatal().Err(err).Msg("datos del administrador")
		}
		_, err := users.Create(ctx, in)
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			log.Info().Str("email", *email).Msg("administrador ya existe")
		case err != nil:
			log.Fatal().Err(err).Msg("crear administrador")
		default:
			log.Info().Str("email", *email).Msg("administrador creado")
		}
	} else {
		log.Warn().Msg("sin -email: no se crea administrador")
	}

	categories := usecase.NewCategoryUseCase(
		postgres.NewCategoryRepository(pool),
		postgres.NewProductRepository(pool),
		postgres.NewTxRunner(pool),
		nil,
	)
	created := 0
	for _, in := range rootCategories {
		if _, err := categories.Create(ctx, in); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				continue
			}
			log.Fatal().Err(err).Str("category", in.Name).Msg("crear categoría")
		}
		created++
	}
	log.Info().Int("created", created).Int("total", len(rootCategories)).Msg("categorías raíz")
}
