package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/crm-leads/internal/application/auth"
	"github.com/tu-usuario/crm-leads/internal/application/usecase"
	"github.com/tu-usuario/crm-leads/internal/infrastructure/rest"
	"github.com/tu-usuario/crm-leads/pkg/config"
	"github.com/tu-usuario/crm-leads/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando cliente CRM")

	ctx := context.Background()

	client := rest.NewClient(rest.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	}, log.Component("rest"))

	authUC := auth.NewAuthUseCase(rest.NewAuthRemote(client), log.Component("auth"))
	sess, err := authUC.Login(ctx, cfg.Auth.Email, cfg.Auth.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("login")
	}
	client.SetTokenProvider(sess.BearerToken)
	defer func() {
		_ = authUC.Logout(ctx)
	}()

	lifecycleUC := usecase.NewLifecycleUseCase(
		rest.NewCompanyRemote(client),
		rest.NewUserRemote(client),
		rest.NewCommentRemote(client),
		sess,
		log.Component("lifecycle"),
	)
	if err := lifecycleUC.Refresh(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar colección")
	}

	stats := lifecycleUC.CollectionStats()
	fmt.Printf("Hola, %s\n", sess.User.FullName())
	fmt.Printf("Empresas: %d en total, %d tuyas, %d pendientes, %d cerradas\n",
		stats.Total, stats.Mine, stats.Pending, stats.Closed)

	reminders := lifecycleUC.Reminders()
	if len(reminders) == 0 {
		fmt.Println("Sin avisos para hoy.")
		return
	}
	fmt.Printf("Avisos (%s):\n", time.Now().Format("2006-01-02"))
	for _, r := range reminders {
		fmt.Printf("  [%s] %s (empresa %d)\n", r.Severity, r.Message, r.CompanyID)
	}
}
