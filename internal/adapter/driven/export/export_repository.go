package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/diillson/pd-payroll-go/internal/domain/entity"
	"github.com/diillson/pd-payroll-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// HumanDateTime é o formato de data/hora usado nos relatórios.
const HumanDateTime = "02/01/2006 15:04"

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// --- Funções de Exportação do Relatório de Plantão ---

func (r *ExportRepositoryImpl) ExportToCSV(report entity.PayrollReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{"Start", "End", "Days", "Hours", "Bill"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, s := range report.Shifts {
		record := []string{
			s.Start.Format(time.RFC3339),
			s.End.Format(time.RFC3339),
			strconv.Itoa(s.DaysInShift),
			strconv.Itoa(s.HoursInShift),
			s.ShiftBill.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	total := []string{"Total", "", strconv.Itoa(report.TotalDays), strconv.Itoa(report.TotalHours), report.Bill.StringFixed(2)}
	if err := writer.Write(total); err != nil {
		return "", fmt.Errorf("error writing CSV row: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report entity.PayrollReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(report entity.PayrollReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  On-call report for %s", report.Date)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("  User: %s [id: %s]", report.User.Name, report.User.ID)), "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("  Schedule: %s [id: %s]", report.Schedule.Name, report.Schedule.ID)), "", 1, "L", true, 0, "")
	if report.Schedule.HTMLURL != "" {
		pdf.CellFormat(0, 7, tr("  "+report.Schedule.HTMLURL), "", 1, "L", true, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(7)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	summary := [][2]string{
		{"Shifts", strconv.Itoa(len(report.Shifts))},
		{"Days", strconv.Itoa(report.TotalDays)},
		{"Hours", strconv.Itoa(report.TotalHours)},
		{"Rate", fmt.Sprintf("%.2f", report.Rate)},
		{"Total sum", report.Bill.StringFixed(2)},
	}
	for _, row := range summary {
		pdf.CellFormat(40, 6, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, tr(row[1]), "", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	// Tabela de plantões
	widths := []float64{50, 50, 25, 25, 40}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range []string{"Start", "End", "Days", "Hours", "Bill"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, s := range report.Shifts {
		pdf.CellFormat(widths[0], 6, s.Start.Format(HumanDateTime), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, s.End.Format(HumanDateTime), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, strconv.Itoa(s.DaysInShift), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, strconv.Itoa(s.HoursInShift), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, s.ShiftBill.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 10, fmt.Sprintf("Generated %s (%s)", r.now().Format("2006-01-02 15:04"), report.Timezone), "", 0, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToXLSX(report entity.PayrollReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	shiftsSheet := "shifts"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", fmt.Errorf("error preparing XLSX file: %w", err)
	}
	if _, err := f.NewSheet(shiftsSheet); err != nil {
		return "", fmt.Errorf("error preparing XLSX file: %w", err)
	}

	bill, _ := report.Bill.Float64()
	summary := [][]interface{}{
		{"Report", report.Date.String()},
		{"User", report.User.Name},
		{"User ID", report.User.ID},
		{"Schedule", report.Schedule.Name},
		{"Schedule ID", report.Schedule.ID},
		{"Schedule URL", report.Schedule.HTMLURL},
		{"Shifts", len(report.Shifts)},
		{"Days", report.TotalDays},
		{"Hours", report.TotalHours},
		{"Rate", report.Rate},
		{"Total sum", bill},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return "", fmt.Errorf("error writing XLSX summary: %w", err)
		}
	}

	header := []interface{}{"Start", "End", "Days", "Hours", "Bill"}
	if err := f.SetSheetRow(shiftsSheet, "A1", &header); err != nil {
		return "", fmt.Errorf("error writing XLSX header: %w", err)
	}
	for i, s := range report.Shifts {
		shiftBill, _ := s.ShiftBill.Float64()
		row := []interface{}{
			s.Start.Format(HumanDateTime),
			s.End.Format(HumanDateTime),
			s.DaysInShift,
			s.HoursInShift,
			shiftBill,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(shiftsSheet, cell, &row); err != nil {
			return "", fmt.Errorf("error writing XLSX row: %w", err)
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", sanitizeName(base), timestamp, ext)
	return filepath.Join(dir, filename), nil
}

var unsafeNameRegex = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeName troca caracteres problemáticos em nomes de arquivo por "_".
func sanitizeName(name string) string {
	return unsafeNameRegex.ReplaceAllString(name, "_")
}
