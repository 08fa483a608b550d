package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diillson/pd-payroll-go/internal/application/usecase"
	"github.com/diillson/pd-payroll-go/internal/shared/types"
	"github.com/diillson/pd-payroll-go/pkg/console"
	"github.com/diillson/pd-payroll-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	payrollUseCase *usecase.PayrollUseCase
	console        *console.Console
	version        string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, con *console.Console) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		console: con,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "pd-payroll [date]",
		Short:         "Generate PagerDuty payroll for current or chosen month",
		Long:          "Generate PagerDuty payroll for current or chosen month.\n\nThe optional date argument accepts YYYY-MM, MM, MM/YYYY or MM-YYYY.\nIf not provided, current month is used.",
		Version:       formattedVersion,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "pd-payroll version: %s\n" .Version}}`)

	flags := rootCmd.Flags()
	flags.StringP("config-file", "C", "", "Path to a JSON, YAML, or TOML configuration file")
	flags.StringP("clear", "c", "", "Clear config field ("+strings.Join(types.ConfigFields, ", ")+") or the entire file")
	flags.Lookup("clear").NoOptDefVal = types.ClearAll
	flags.StringP("schedule", "s", "", "Schedule ID [1]")
	flags.String("schedule-query", "", `Schedule query, e.g. "FE"`)
	flags.Float64P("rate", "r", 0, "Flat hourly rate [1]")
	flags.String("timezone", "", "IANA time zone used for month boundaries (default: local) [1]")
	flags.Bool("json", false, "Raw JSON output (implies --interactive=false)")
	flags.BoolP("interactive", "i", true, "Interactive mode")
	flags.Bool("clean-report", false, "Print report without colors")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("s3-bucket", "", "Upload exported reports to this S3 bucket")
	flags.String("s3-prefix", "", "Key prefix for uploaded reports")
	flags.String("aws-profile", "", "AWS profile used for the S3 upload")
	flags.Bool("debug", false, "Print debug messages")

	rootCmd.MarkFlagsMutuallyExclusive("schedule", "schedule-query")

	rootCmd.SetHelpTemplate(rootCmd.HelpTemplate() + "___\n[1] Provided value will be persisted as default for future usage.\n")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// JSONOutput informa se a saída foi pedida em JSON.
func (app *CLIApp) JSONOutput() bool {
	jsonOutput, _ := app.rootCmd.Flags().GetBool("json")
	return jsonOutput
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command, positional []string) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config-file")
	clearField, _ := flags.GetString("clear")
	schedule, _ := flags.GetString("schedule")
	scheduleQuery, _ := flags.GetString("schedule-query")
	rate, _ := flags.GetFloat64("rate")
	timezone, _ := flags.GetString("timezone")
	jsonOutput, _ := flags.GetBool("json")
	interactive, _ := flags.GetBool("interactive")
	cleanReport, _ := flags.GetBool("clean-report")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	s3Bucket, _ := flags.GetString("s3-bucket")
	s3Prefix, _ := flags.GetString("s3-prefix")
	awsProfile, _ := flags.GetString("aws-profile")
	debug, _ := flags.GetBool("debug")

	var year, month int
	if len(positional) == 1 {
		var err error
		year, month, err = ParseDateArg(positional[0])
		if err != nil {
			return nil, err
		}
	}

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		// Convert to absolute path
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	if jsonOutput {
		interactive = false
	}

	args := &types.CLIArgs{
		ConfigFile:    configFile,
		Year:          year,
		Month:         month,
		Schedule:      strings.TrimSpace(schedule),
		ScheduleQuery: strings.TrimSpace(scheduleQuery),
		Rate:          rate,
		Timezone:      timezone,
		JSON:          jsonOutput,
		Interactive:   interactive,
		CleanReport:   cleanReport,
		Clear:         clearField,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		S3Bucket:      s3Bucket,
		S3Prefix:      s3Prefix,
		AWSProfile:    awsProfile,
		Debug:         debug,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, positional []string) error {
	cliArgs, err := app.parseArgs(cmd, positional)
	if err != nil {
		return err
	}

	app.console.Apply(console.Options{
		Quiet:   cliArgs.JSON || cliArgs.CleanReport,
		NoColor: cliArgs.CleanReport,
		Debug:   cliArgs.Debug,
	})

	if cliArgs.Interactive && !cliArgs.CleanReport {
		// Exibe o banner de boas-vindas
		displayWelcomeBanner(app.version)

		// Verifica a versão mais recente disponível
		go version.CheckLatestVersion(app.version)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.payrollUseCase.RunPayroll(ctx, cliArgs)
}

// SetPayrollUseCase sets the payroll use case for the CLI app.
func (app *CLIApp) SetPayrollUseCase(useCase *usecase.PayrollUseCase) {
	app.payrollUseCase = useCase
}

// SetArgs substitui os argumentos da linha de comando (usado em testes).
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}
