package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Portal-empleo-api/pkg/config"
)

// Crea el super_admin inicial si no existe. Idempotente: si el email ya está
// registrado no toca nada.
// Uso: go run ./cmd/seed -email admin@ejemplo.com -password <contraseña> [-name Nombre]
func main() {
	var (
		email    = flag.String("email", "", "email del super_admin inicial")
		password = flag.String("password", "", "contraseña (mínimo 8 caracteres)")
		name     = flag.String("name", "Super Administrador", "nombre para mostrar")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("uso: seed -email <email> -password <contraseña> [-name <nombre>]")
	}
	if len(*password) < 8 {
		log.Fatal("la contraseña debe tener al menos 8 caracteres")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)
	existing, err := repo.GetByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("verificar email: %v", err)
	}
	if existing != nil {
		log.Printf("el usuario %s ya existe, nada que hacer", *email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("generar hash: %v", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        *email,
		PasswordHash: string(hash),
		Name:         *name,
		Role:         entity.RoleSuperAdmin,
		IsActive:     true,
		Approval:     entity.AutoApproved(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, user); err != nil {
		log.Fatalf("crear super_admin: %v", err)
	}
	log.Printf("super_admin creado: %s (%s)", *email, user.ID)
}
