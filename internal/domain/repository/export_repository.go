package repository

import (
	"github.com/diillson/pd-payroll-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(report entity.PayrollReport, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.PayrollReport, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.PayrollReport, filename string, outputDir string) (string, error)
	ExportToXLSX(report entity.PayrollReport, filename string, outputDir string) (string, error)
}
