// create_admin заводит учётную запись администратора. Публичной регистрации нет,
// поэтому первый администратор создаётся только так.
//
//	go run ./cmd/create_admin -email owner@studio.test -password ... -config ./config/local.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"studio_cms/internal/app"
	"studio_cms/internal/config"
	"studio_cms/internal/domain/models"
	"studio_cms/internal/lib/logger/handlers/slogdiscard"
	"studio_cms/internal/lib/validate"
	"studio_cms/internal/repository"
	"studio_cms/internal/services/auth"
)

func main() {
	var email, password, role string

	// флаги объявляются до MustLoad: он сам вызывает flag.Parse
	flag.StringVar(&email, "email", "", "admin email")
	flag.StringVar(&password, "password", "", "admin password, at least 8 characters")
	flag.StringVar(&role, "role", string(models.RoleAdmin), "admin or editor")

	cfg := config.MustLoad()

	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "email and password are required")
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(cfg, email, password, models.AdminRole(role)))
}

// run возвращает код выхода; отложенные вызовы выполняются до os.Exit
func run(cfg *config.Config, email, password string, role models.AdminRole) int {
	store, err := app.NewStore(cfg.Storage)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	defer func() { _ = store.Close(ctx) }()

	repo := repository.NewRepository(store, validate.New())

	// токены здесь не выпускаются, хранилище отзыва не нужно
	authService := auth.New(slogdiscard.NewDiscardLogger(), repo.Admins, repository.NewMemoryTokenRepo(time.Minute), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	admin, err := authService.RegisterAdmin(ctx, email, password, role)
	if err != nil {
		var ve *validate.ValidationError
		switch {
		case errors.As(err, &ve):
			fmt.Fprintln(os.Stderr, ve.Details())
		case errors.Is(err, auth.ErrAdminExists):
			fmt.Fprintf(os.Stderr, "admin %s already exists\n", email)
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}

	fmt.Printf("admin %s created with role %s\n", admin.Email, admin.Role)

	return 0
}
