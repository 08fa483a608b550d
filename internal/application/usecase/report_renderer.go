package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/diillson/pd-payroll-go/internal/domain/entity"
)

const (
	reportSeparator   = "------- ------- -------"
	humanDateTimeForm = "02/01/2006 15:04"
)

// FormatPlainReport monta o relatório em texto puro, sem cores.
func FormatPlainReport(report entity.PayrollReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Report for %s\n", report.Date)
	fmt.Fprintf(&sb, "      User: %s [id: %s]\n", report.User.Name, report.User.ID)
	fmt.Fprintf(&sb, "  Schedule: %s [id: %s]\n", report.Schedule.Name, report.Schedule.ID)
	fmt.Fprintf(&sb, "            %s\n", report.Schedule.HTMLURL)
	sb.WriteString(reportSeparator + "\n")
	fmt.Fprintf(&sb, "     Shifts: %d\n", len(report.Shifts))
	fmt.Fprintf(&sb, "       Days: %d\n", report.TotalDays)
	fmt.Fprintf(&sb, "      Hours: %d\n", report.TotalHours)
	sb.WriteString(reportSeparator + "\n")
	fmt.Fprintf(&sb, "       Rate: %s\n", formatRate(report.Rate))
	fmt.Fprintf(&sb, "  Total sum: %s\n", report.Bill.StringFixed(2))
	sb.WriteString(reportSeparator + "\n\n")

	for _, shift := range report.Shifts {
		fmt.Fprintf(&sb, "%s - %s (%s, %s) - %s\n",
			shift.Start.Format(humanDateTimeForm),
			shift.End.Format(humanDateTimeForm),
			pluralize(shift.DaysInShift, "day"),
			pluralize(shift.HoursInShift, "hour"),
			shift.ShiftBill.StringFixed(2),
		)
	}

	return sb.String()
}

// renderReport monta o resumo em uma caixa seguida da tabela de plantões.
func (uc *PayrollUseCase) renderReport(report entity.PayrollReport) string {
	summary := strings.Join([]string{
		fmt.Sprintf("User:      %s [id: %s]", report.User.Name, report.User.ID),
		fmt.Sprintf("Schedule:  %s [id: %s]", report.Schedule.Name, report.Schedule.ID),
		fmt.Sprintf("           %s", report.Schedule.HTMLURL),
		fmt.Sprintf("Timezone:  %s", report.Timezone),
		fmt.Sprintf("Shifts:    %d", len(report.Shifts)),
		fmt.Sprintf("Days:      %s", pterm.FgCyan.Sprint(report.TotalDays)),
		fmt.Sprintf("Hours:     %s", pterm.FgCyan.Sprint(report.TotalHours)),
		fmt.Sprintf("Rate:      %s", formatRate(report.Rate)),
		fmt.Sprintf("Total sum: %s", pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint(report.Bill.StringFixed(2))),
	}, "\n")

	table := uc.console.CreateTable()
	table.AddColumn("#")
	table.AddColumn("Start")
	table.AddColumn("End")
	table.AddColumn("Days")
	table.AddColumn("Hours")
	table.AddColumn("Bill")

	for i, shift := range report.Shifts {
		table.AddRow(
			strconv.Itoa(i+1),
			formatShiftTime(shift.Start),
			formatShiftTime(shift.End),
			strconv.Itoa(shift.DaysInShift),
			strconv.Itoa(shift.HoursInShift),
			shift.ShiftBill.StringFixed(2),
		)
	}

	return uc.console.Box(pterm.FgMagenta.Sprint("Report for "+report.Date.String()), summary) + "\n" + table.Render()
}

func formatShiftTime(t time.Time) string {
	return t.Format(humanDateTimeForm)
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 2, 64)
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
