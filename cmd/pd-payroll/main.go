package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/diillson/pd-payroll-go/internal/adapter/driven/aws"
	"github.com/diillson/pd-payroll-go/internal/adapter/driven/config"
	"github.com/diillson/pd-payroll-go/internal/adapter/driven/export"
	"github.com/diillson/pd-payroll-go/internal/adapter/driven/pagerduty"
	"github.com/diillson/pd-payroll-go/internal/adapter/driving/cli"
	"github.com/diillson/pd-payroll-go/internal/application/usecase"
	"github.com/diillson/pd-payroll-go/internal/shared/clock"
	"github.com/diillson/pd-payroll-go/pkg/console"
	"github.com/diillson/pd-payroll-go/pkg/version"
)

func main() {
	// .env é opcional
	_ = godotenv.Load()

	consoleImpl := console.NewConsole()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, consoleImpl)

	// Inicializa os repositórios
	pagerDutyFactory := pagerduty.NewPagerDutyFactory(os.Getenv("PAGERDUTY_API_URL"))
	exportRepo := export.NewExportRepository()
	archiveRepo := aws.NewS3Archive()

	// Inicializa o caso de uso
	payrollUseCase := usecase.NewPayrollUseCase(
		pagerDutyFactory,
		config.NewConfigRepository,
		exportRepo,
		archiveRepo,
		consoleImpl,
		clock.System{},
		os.Getenv,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetPayrollUseCase(payrollUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		if app.JSONOutput() {
			out, _ := json.Marshal(map[string]string{"error": err.Error()})
			fmt.Fprintln(os.Stderr, string(out))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
