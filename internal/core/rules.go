package core

// PocketBase API Rules (Constants)
const (
	RuleAuthOnly  = "@request.auth.id != ''"
	RuleAdminOnly = "@request.auth.id != '' && @collection.user_roles.user ?= @request.auth.id && @collection.user_roles.role ?= 'admin'"

	// Правила для ЗАДАЧ
	RuleTaskView   = "@request.auth.id != ''"
	RuleTaskUpdate = "@request.auth.id != '' && (@request.auth.id = created_by || @collection.user_roles.user ?= @request.auth.id && @collection.user_roles.role ?= 'admin')"
	RuleTaskDelete = RuleTaskUpdate

	// Профили: каждый видит и правит только свой
	RuleProfileOwner = "@request.auth.id != '' && @request.auth.id = user"
)
