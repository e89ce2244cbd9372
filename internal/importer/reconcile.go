package importer

import (
	"fmt"
	"strings"
)

// Lookup — снимок справочника "имя -> id", снятый один раз на сессию
// импорта. Ключи нормализованы, сравнение без учета регистра.
type Lookup map[string]string

func (l Lookup) Add(name, id string) {
	l[strings.ToLower(strings.TrimSpace(name))] = id
}

func (l Lookup) Resolve(name string) (string, bool) {
	id, ok := l[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// Task — валидная задача, готовая к записи в хранилище.
type Task struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     string
	ProjectID   string
	AssigneeID  string
	CreatedBy   string
}

// TaskWriter вставляет одну задачу. В проде — PocketBase (register.go),
// в тестах — фейк.
type TaskWriter interface {
	Insert(t Task) error
}

// Result — итог сессии импорта.
type Result struct {
	Inserted int
	Errors   []string
}

// Reconcile обрабатывает строки строго по порядку. Ошибка строки не
// прерывает остальные. Пользователь видит номера строк файла: +1 за
// шапку и +1 за 1-индексацию, то есть строка данных i -> "Dòng i+2".
func Reconcile(rows []Row, projects, employees Lookup, createdBy string, statusLabels, priorityLabels map[string]string, writer TaskWriter) Result {
	var result Result
	for i, row := range rows {
		line := i + 2

		projectID, ok := projects.Resolve(row.ProjectName)
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("Dòng %d: không tìm thấy dự án %q", line, row.ProjectName))
			continue
		}

		title := strings.TrimSpace(row.Title)
		if title == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Dòng %d: thiếu tiêu đề", line))
			continue
		}

		task := Task{
			Title:       title,
			Description: row.Description,
			Status:      StatusFromLabel(row.StatusLabel, statusLabels),
			Priority:    PriorityFromLabel(row.PriorityLabel, priorityLabels),
			DueDate:     DueDateFromRaw(row.DueDateRaw),
			ProjectID:   projectID,
			CreatedBy:   createdBy,
		}
		// Исполнитель опционален: нераспознанное имя просто не привязывается.
		if row.AssigneeName != "" {
			if assigneeID, ok := employees.Resolve(row.AssigneeName); ok {
				task.AssigneeID = assigneeID
			}
		}

		if err := writer.Insert(task); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Dòng %d: %v", line, err))
			continue
		}
		result.Inserted++
	}
	return result
}
