package importer

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Row — одна строка импорта, еще без привязки к справочникам.
type Row struct {
	Title         string
	ProjectName   string
	AssigneeName  string
	StatusLabel   string
	PriorityLabel string
	DueDateRaw    string
	Description   string
}

// ErrEmptyFile — в файле нет ни одной строки данных.
var ErrEmptyFile = errors.New("file không có dữ liệu")

// MissingColumnsError — в шапке отсутствуют обязательные колонки.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("file thiếu cột bắt buộc: %s", strings.Join(e.Columns, ", "))
}

// Канонические ключи колонок
const (
	colTitle       = "title"
	colProject     = "project"
	colAssignee    = "assignee"
	colStatus      = "status"
	colPriority    = "priority"
	colDueDate     = "due"
	colDescription = "description"
)

// Шапки файла в том виде, как их выгружает фронтенд (вьетнамские метки),
// плюс английские варианты для файлов, собранных вручную.
var headerAliases = map[string]string{
	"tiêu đề":         colTitle,
	"tên công việc":   colTitle,
	"title":           colTitle,
	"dự án":           colProject,
	"project":         colProject,
	"người được giao": colAssignee,
	"người thực hiện": colAssignee,
	"assignee":        colAssignee,
	"trạng thái":      colStatus,
	"status":          colStatus,
	"ưu tiên":         colPriority,
	"độ ưu tiên":      colPriority,
	"priority":        colPriority,
	"ngày hết hạn":    colDueDate,
	"hạn chót":        colDueDate,
	"due date":        colDueDate,
	"mô tả":           colDescription,
	"description":     colDescription,
}

// Локализованные имена обязательных колонок для сообщения об ошибке.
var requiredColumns = []struct {
	key   string
	label string
}{
	{colTitle, "Tiêu đề"},
	{colProject, "Dự án"},
}

// Parse декодирует первый лист книги в упорядоченный список Row.
// Содержимое строк здесь не проверяется — это работа Reconcile.
func Parse(data []byte, filename string) ([]Row, error) {
	cells, err := readCells(data, filename)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, ErrEmptyFile
	}

	columns := make(map[string]int)
	for idx, header := range cells[0] {
		if key, ok := headerAliases[normalizeHeader(header)]; ok {
			if _, taken := columns[key]; !taken {
				columns[key] = idx
			}
		}
	}

	var missing []string
	for _, req := range requiredColumns {
		if _, ok := columns[req.key]; !ok {
			missing = append(missing, req.label)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var rows []Row
	for _, line := range cells[1:] {
		row := Row{
			Title:         cellValue(line, columns, colTitle),
			ProjectName:   cellValue(line, columns, colProject),
			AssigneeName:  cellValue(line, columns, colAssignee),
			StatusLabel:   cellValue(line, columns, colStatus),
			PriorityLabel: cellValue(line, columns, colPriority),
			DueDateRaw:    cellValue(line, columns, colDueDate),
			Description:   cellValue(line, columns, colDescription),
		}
		if row == (Row{}) {
			continue // полностью пустая строка
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rows, nil
}

// readCells выбирает декодер по расширению: legacy .xls или xlsx.
func readCells(data []byte, filename string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".xls") {
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, err
		}
		if workbook.NumSheets() == 0 {
			return nil, ErrEmptyFile
		}
		return workbook.ReadAllCells(100000), nil
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrEmptyFile
	}
	return file.GetRows(sheetName)
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(line []string, columns map[string]int, key string) string {
	idx, ok := columns[key]
	if !ok || idx < 0 || idx >= len(line) {
		return ""
	}
	return strings.TrimSpace(line[idx])
}
