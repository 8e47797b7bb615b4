package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-clinic/internal/apperr"
	"go-clinic/internal/schedule"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FinanceService interface {
	CreateRecord(ctx context.Context, record *Record) (*Record, error)
	GetRecord(ctx context.Context, id string) (*Record, error)
	ListRecords(ctx context.Context, filter ListFilter) ([]Record, Summary, error)
	UpdateRecord(ctx context.Context, id string, record *Record) error
	DeleteRecord(ctx context.Context, id string) error
	Export(ctx context.Context, filter ListFilter) ([]byte, string, error)
}

type FinanceServiceImpl struct {
	Repo FinanceRepository
}

func NewFinanceService(repo FinanceRepository) FinanceService {
	return &FinanceServiceImpl{Repo: repo}
}

func validateRecord(record *Record) error {
	if strings.TrimSpace(record.Descricao) == "" {
		return apperr.NewValidation("descricao", "campo obrigatório")
	}
	if record.Tipo != TipoReceita && record.Tipo != TipoDespesa {
		return apperr.NewValidation("tipo", "valor inválido")
	}
	if record.Valor <= 0 {
		return apperr.NewValidation("valor", "deve ser maior que zero")
	}
	if _, err := schedule.ParseDate(record.Data); err != nil {
		return apperr.NewValidation("data", "formato esperado DD/MM/AAAA")
	}
	return nil
}

func (s *FinanceServiceImpl) CreateRecord(ctx context.Context, record *Record) (*Record, error) {
	if err := validateRecord(record); err != nil {
		return nil, err
	}

	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *FinanceServiceImpl) GetRecord(ctx context.Context, id string) (*Record, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *FinanceServiceImpl) ListRecords(ctx context.Context, filter ListFilter) ([]Record, Summary, error) {
	records, err := s.Repo.List(ctx, filterQuery(filter))
	if err != nil {
		return nil, Summary{}, err
	}

	var summary Summary
	for _, r := range records {
		switch r.Tipo {
		case TipoReceita:
			summary.TotalReceitas += r.Valor
		case TipoDespesa:
			summary.TotalDespesas += r.Valor
		}
	}
	summary.Saldo = summary.TotalReceitas - summary.TotalDespesas

	return records, summary, nil
}

func filterQuery(filter ListFilter) bson.M {
	q := bson.M{}
	if filter.Cidade != "" {
		q["cidade"] = filter.Cidade
	}
	if filter.Tipo != "" {
		q["tipo"] = filter.Tipo
	}
	return q
}

func (s *FinanceServiceImpl) UpdateRecord(ctx context.Context, id string, record *Record) error {
	if err := validateRecord(record); err != nil {
		return err
	}
	return s.Repo.Update(ctx, id, bson.M{
		"descricao":  record.Descricao,
		"tipo":       record.Tipo,
		"valor":      record.Valor,
		"data":       record.Data,
		"cidade":     record.Cidade,
		"categoria":  record.Categoria,
		"updated_at": time.Now(),
	})
}

func (s *FinanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// Export renders the filtered records as an xlsx workbook.
func (s *FinanceServiceImpl) Export(ctx context.Context, filter ListFilter) ([]byte, string, error) {
	records, summary, err := s.ListRecords(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Registros"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	columns := []string{"Data", "Descrição", "Tipo", "Categoria", "Cidade", "Valor (R$)"}
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, r := range records {
		row := rowIdx + 2
		values := []interface{}{
			r.Data,
			r.Descricao,
			r.Tipo,
			r.Categoria,
			r.Cidade,
			float64(r.Valor) / 100,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	summaryRow := len(records) + 3
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	f.SetCellValue(sheetName, cell, "Saldo")
	cell, _ = excelize.CoordinatesToCellName(6, summaryRow)
	f.SetCellValue(sheetName, cell, float64(summary.Saldo)/100)

	for i := range columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("registros_financeiros_%s.xlsx", time.Now().Format("02-01-2006"))
	return buffer.Bytes(), filename, nil
}
