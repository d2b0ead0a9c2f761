package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/jhoicas/Portal-empleo-api/pkg/config"
)

// Aplica las migraciones SQL de ./migrations contra la base configurada.
// Uso: go run ./cmd/migrate -command up|down|version|force [-steps N] [-version N]
func main() {
	var (
		command = flag.String("command", "up", "comando: up, down, version, force")
		steps   = flag.Int("steps", 0, "número de pasos para up/down")
		version = flag.Int("version", 0, "versión destino para force")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("conexión a PostgreSQL: %v", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatalf("driver de migración: %v", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		log.Fatalf("instancia de migración: %v", err)
	}
	defer m.Close()

	switch *command {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
		if err != nil && err != migrate.ErrNoChange {
			log.Fatalf("migración up: %v", err)
		}
		if err == migrate.ErrNoChange {
			fmt.Println("sin migraciones pendientes")
		} else {
			fmt.Println("migraciones aplicadas")
		}
	case "down":
		n := *steps
		if n <= 0 {
			n = 1
		}
		if err := m.Steps(-n); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("migración down: %v", err)
		}
		fmt.Println("migraciones revertidas")
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("leer versión: %v", err)
		}
		fmt.Printf("versión actual: %d (dirty=%v)\n", v, dirty)
	case "force":
		if *version == 0 {
			log.Fatal("force requiere -version")
		}
		if err := m.Force(*version); err != nil {
			log.Fatalf("force: %v", err)
		}
		fmt.Printf("versión forzada a %d\n", *version)
	default:
		log.Fatalf("comando desconocido: %s", *command)
	}
}
