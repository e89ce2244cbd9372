package app

// AppContext содержит зависимости приложения, загружаемые при старте.
// StatusMap и PriorityMap расширяют встроенные словари меток из config.json.
type AppContext struct {
	StatusMap      map[string]string
	PriorityMap    map[string]string
	BootstrapToken string
}

// Константы для исключения магических строк
const (
	CollectionUsers      = "users"
	CollectionProfiles   = "profiles"
	CollectionUserRoles  = "user_roles"
	CollectionProjects   = "projects"
	CollectionEmployees  = "employees"
	CollectionTasks      = "tasks"
	CollectionImportLogs = "import_logs"

	FieldUser      = "user"
	FieldRole      = "role"
	FieldName      = "name"
	FieldFullName  = "full_name"
	FieldTitle     = "title"
	FieldProject   = "project"
	FieldAssignee  = "assignee"
	FieldStatus    = "status"
	FieldPriority  = "priority"
	FieldDueDate   = "due_date"
	FieldCreatedBy = "created_by"

	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"

	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusOverdue    = "overdue"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	MaxFetchLimit = 2000
)
