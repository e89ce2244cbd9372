package core

import (
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"github.com/NguyenChiHuynh2003/kba-admin-dash-44178/internal/app"
)

// EnsureCoreCollections создает/обновляет все коллекции приложения.
// Вызывается в OnServe, когда БД уже готова. Идемпотентно.
func EnsureCoreCollections(pbApp core.App) error {
	users, err := pbApp.FindCollectionByNameOrId(app.CollectionUsers)
	if err != nil {
		return err
	}
	users.ListRule = types.Pointer(RuleAuthOnly)
	users.ViewRule = types.Pointer(RuleAuthOnly)
	if err := pbApp.Save(users); err != nil {
		return err
	}

	profiles, err := pbApp.FindCollectionByNameOrId(app.CollectionProfiles)
	if err != nil {
		profiles = core.NewBaseCollection(app.CollectionProfiles)
		profiles.Fields.Add(&core.RelationField{Name: app.FieldUser, CollectionId: users.Id, MaxSelect: 1, Required: true})
		profiles.Fields.Add(&core.TextField{Name: app.FieldFullName, Required: true})
		profiles.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		profiles.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		if err := pbApp.Save(profiles); err != nil {
			return err
		}
		profiles.AddIndex("idx_profiles_user", true, app.FieldUser, "")
	}
	profiles.ListRule = types.Pointer(RuleAuthOnly)
	profiles.ViewRule = types.Pointer(RuleAuthOnly)
	profiles.UpdateRule = types.Pointer(RuleProfileOwner)
	if err := pbApp.Save(profiles); err != nil {
		return err
	}

	roles, err := pbApp.FindCollectionByNameOrId(app.CollectionUserRoles)
	if err != nil {
		roles = core.NewBaseCollection(app.CollectionUserRoles)
		roles.Fields.Add(&core.RelationField{Name: app.FieldUser, CollectionId: users.Id, MaxSelect: 1, Required: true})
		roles.Fields.Add(&core.SelectField{Name: app.FieldRole, Required: true, MaxSelect: 1, Values: []string{app.RoleAdmin, app.RoleManager, app.RoleStaff}})
		roles.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		if err := pbApp.Save(roles); err != nil {
			return err
		}
		roles.AddIndex("idx_user_roles_user_role", true, app.FieldUser+","+app.FieldRole, "")
	}
	roles.ListRule = types.Pointer(RuleAuthOnly)
	roles.ViewRule = types.Pointer(RuleAuthOnly)
	if err := pbApp.Save(roles); err != nil {
		return err
	}

	projects, err := pbApp.FindCollectionByNameOrId(app.CollectionProjects)
	if err != nil {
		projects = core.NewBaseCollection(app.CollectionProjects)
		projects.Fields.Add(&core.TextField{Name: app.FieldName, Required: true})
		projects.Fields.Add(&core.TextField{Name: "description"})
		projects.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		if err := pbApp.Save(projects); err != nil {
			return err
		}
		projects.AddIndex("idx_projects_name", true, app.FieldName, "")
	}
	projects.ListRule = types.Pointer(RuleAuthOnly)
	projects.ViewRule = types.Pointer(RuleAuthOnly)
	if err := pbApp.Save(projects); err != nil {
		return err
	}

	employees, err := pbApp.FindCollectionByNameOrId(app.CollectionEmployees)
	if err != nil {
		employees = core.NewBaseCollection(app.CollectionEmployees)
		employees.Fields.Add(&core.TextField{Name: app.FieldName, Required: true})
		employees.Fields.Add(&core.TextField{Name: "email"})
		employees.Fields.Add(&core.TextField{Name: "position"})
		employees.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		if err := pbApp.Save(employees); err != nil {
			return err
		}
	}
	employees.ListRule = types.Pointer(RuleAuthOnly)
	employees.ViewRule = types.Pointer(RuleAuthOnly)
	if err := pbApp.Save(employees); err != nil {
		return err
	}

	tasks, err := pbApp.FindCollectionByNameOrId(app.CollectionTasks)
	if err != nil {
		tasks = core.NewBaseCollection(app.CollectionTasks)
		tasks.Fields.Add(&core.TextField{Name: app.FieldTitle, Required: true})
		tasks.Fields.Add(&core.TextField{Name: "description"})
		tasks.Fields.Add(&core.SelectField{Name: app.FieldStatus, MaxSelect: 1, Values: []string{app.StatusPending, app.StatusInProgress, app.StatusCompleted, app.StatusOverdue}})
		tasks.Fields.Add(&core.SelectField{Name: app.FieldPriority, MaxSelect: 1, Values: []string{app.PriorityLow, app.PriorityMedium, app.PriorityHigh}})
		tasks.Fields.Add(&core.DateField{Name: app.FieldDueDate})
		tasks.Fields.Add(&core.RelationField{Name: app.FieldProject, CollectionId: projects.Id, MaxSelect: 1, Required: true})
		tasks.Fields.Add(&core.RelationField{Name: app.FieldAssignee, CollectionId: employees.Id, MaxSelect: 1})
		tasks.Fields.Add(&core.RelationField{Name: app.FieldCreatedBy, CollectionId: users.Id, MaxSelect: 1})
		tasks.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		tasks.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		if err := pbApp.Save(tasks); err != nil {
			return err
		}
	}
	tasks.ListRule = types.Pointer(RuleTaskView)
	tasks.ViewRule = types.Pointer(RuleTaskView)
	tasks.CreateRule = types.Pointer(RuleAuthOnly)
	tasks.UpdateRule = types.Pointer(RuleTaskUpdate)
	tasks.DeleteRule = types.Pointer(RuleTaskDelete)

	idxList := []struct {
		Name    string
		Columns string
	}{
		{"idx_tasks_project", app.FieldProject},
		{"idx_tasks_status", app.FieldStatus},
		{"idx_tasks_assignee", app.FieldAssignee},
	}
	for _, idx := range idxList {
		found := false
		for _, existing := range tasks.Indexes {
			if strings.Contains(existing, idx.Name) {
				found = true
				break
			}
		}
		if !found {
			tasks.AddIndex(idx.Name, false, idx.Columns, "")
		}
	}
	if err := pbApp.Save(tasks); err != nil {
		return err
	}

	importLogs, err := pbApp.FindCollectionByNameOrId(app.CollectionImportLogs)
	if err != nil {
		importLogs = core.NewBaseCollection(app.CollectionImportLogs)
		importLogs.Fields.Add(&core.TextField{Name: "batch_id", Required: true})
		importLogs.Fields.Add(&core.TextField{Name: "file_name"})
		importLogs.Fields.Add(&core.RelationField{Name: "imported_by", CollectionId: users.Id, MaxSelect: 1})
		importLogs.Fields.Add(&core.NumberField{Name: "inserted"})
		importLogs.Fields.Add(&core.NumberField{Name: "failed"})
		importLogs.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		if err := pbApp.Save(importLogs); err != nil {
			return err
		}
	}
	importLogs.ListRule = types.Pointer(RuleAdminOnly)
	importLogs.ViewRule = types.Pointer(RuleAdminOnly)
	return pbApp.Save(importLogs)
}
