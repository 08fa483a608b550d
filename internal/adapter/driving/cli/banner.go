package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/pd-payroll-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$  /$$$$$$$        /$$$$$$$                                        /$$ /$$
        | $$__  $$| $$__  $$      | $$__  $$                                      | $$| $$
        | $$  \ $$| $$  \ $$      | $$  \ $$ /$$$$$$  /$$   /$$  /$$$$$$  /$$$$$$ | $$| $$
        | $$$$$$$/| $$  | $$      | $$$$$$$/|____  $$| $$  | $$ /$$__  $$/$$__  $$| $$| $$
        | $$____/ | $$  | $$      | $$____/  /$$$$$$$| $$  | $$| $$  \__/ $$  \ $$| $$| $$
        | $$      | $$  | $$      | $$      /$$__  $$| $$  | $$| $$     | $$  | $$| $$| $$
        | $$      | $$$$$$$/      | $$     |  $$$$$$$|  $$$$$$$| $$     |  $$$$$$/| $$| $$
        |__/      |_______/       |__/      \_______/ \____  $$|__/      \______/ |__/|__/
                                                      /$$  | $$
                                                     |  $$$$$$/
                                                      \______/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("PagerDuty Payroll CLI (v%s)", formattedVersion)))
}
