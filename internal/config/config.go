package config

// Структуры конфигурации (config.json)

type StatusConfig struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Type  string `json:"type"` // "pending", "in_progress", "completed", "overdue"
}

type PriorityConfig struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Level string `json:"level"` // "low", "medium", "high"
}

type AppConfig struct {
	BootstrapToken string           `json:"bootstrap_token"`
	Statuses       []StatusConfig   `json:"statuses"`
	Priorities     []PriorityConfig `json:"priorities"`
}
