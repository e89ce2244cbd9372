package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/NguyenChiHuynh2003/kba-admin-dash-44178/internal/app"
)

// Встроенные словари меток. Расширяются из config.json (AppContext),
// незнакомая или пустая метка дает значение по умолчанию, а не ошибку.
var defaultStatusLabels = map[string]string{
	"chờ xử lý":      app.StatusPending,
	"đang thực hiện": app.StatusInProgress,
	"hoàn thành":     app.StatusCompleted,
	"quá hạn":        app.StatusOverdue,
	"pending":        app.StatusPending,
	"in_progress":    app.StatusInProgress,
	"in progress":    app.StatusInProgress,
	"completed":      app.StatusCompleted,
	"overdue":        app.StatusOverdue,
}

var defaultPriorityLabels = map[string]string{
	"thấp":       app.PriorityLow,
	"trung bình": app.PriorityMedium,
	"cao":        app.PriorityHigh,
	"low":        app.PriorityLow,
	"medium":     app.PriorityMedium,
	"high":       app.PriorityHigh,
}

func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

func StatusFromLabel(label string, extra map[string]string) string {
	norm := NormalizeLabel(label)
	if v, ok := extra[norm]; ok {
		return v
	}
	if v, ok := defaultStatusLabels[norm]; ok {
		return v
	}
	return app.StatusPending
}

func PriorityFromLabel(label string, extra map[string]string) string {
	norm := NormalizeLabel(label)
	if v, ok := extra[norm]; ok {
		return v
	}
	if v, ok := defaultPriorityLabels[norm]; ok {
		return v
	}
	return app.PriorityMedium
}

// DueDateFromRaw приводит значение ячейки к ISO-дате (YYYY-MM-DD).
// Принимает числовой Excel-серийник, текст "день/месяц/год" и строки,
// уже содержащие дефис (обрезаются до датной части). Все остальное
// дает пустую строку: отсутствующий дедлайн не фатален.
func DueDateFromRaw(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		parsed, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return ""
		}
		return parsed.Format("2006-01-02")
	}

	if strings.Contains(raw, "/") {
		if parsed, err := time.Parse("2/1/2006", raw); err == nil {
			return parsed.Format("2006-01-02")
		}
		return ""
	}

	if strings.Contains(raw, "-") {
		if i := strings.IndexAny(raw, "T "); i >= 0 {
			return raw[:i]
		}
		return raw
	}

	return ""
}
