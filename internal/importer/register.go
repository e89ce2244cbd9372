package importer

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	appModel "github.com/NguyenChiHuynh2003/kba-admin-dash-44178/internal/app"
)

const maxImportFileSize = 5 << 20 // совпадает с лимитом file-поля в схеме

// Register подключает эндпоинт импорта задач из Excel.
func Register(pbApp *pocketbase.PocketBase, appCtx *appModel.AppContext) error {
	pbApp.OnServe().BindFunc(func(e *core.ServeEvent) error {
		e.Router.POST("/api/tasks/import", func(e *core.RequestEvent) error {
			return handleImport(pbApp, appCtx, e)
		})
		return e.Next()
	})
	return nil
}

func handleImport(pbApp *pocketbase.PocketBase, appCtx *appModel.AppContext, e *core.RequestEvent) error {
	auth := e.Auth
	if auth == nil {
		return e.UnauthorizedError("Login required", nil)
	}

	file, header, err := e.Request.FormFile("file")
	if err != nil {
		return e.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Missing import file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportFileSize+1))
	if err != nil {
		log.Printf("[ERROR] Import: reading upload %q failed: %v", header.Filename, err)
		return e.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Failed to read import file",
		})
	}
	if len(data) > maxImportFileSize {
		return e.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Import file is too large (max 5MB)",
		})
	}

	rows, err := Parse(data, header.Filename)
	if err != nil {
		var missing *MissingColumnsError
		if errors.Is(err, ErrEmptyFile) || errors.As(err, &missing) {
			return e.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": err.Error(),
			})
		}
		log.Printf("[ERROR] Import: decoding %q failed: %v", header.Filename, err)
		return e.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Failed to decode spreadsheet file",
		})
	}

	projects, err := loadLookup(pbApp, appModel.CollectionProjects)
	if err != nil {
		log.Printf("[ERROR] Import: fetching projects failed: %v", err)
		return e.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Failed to load project list",
		})
	}
	employees, err := loadLookup(pbApp, appModel.CollectionEmployees)
	if err != nil {
		log.Printf("[ERROR] Import: fetching employees failed: %v", err)
		return e.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Failed to load employee list",
		})
	}

	writer, err := newRecordWriter(pbApp)
	if err != nil {
		log.Printf("[ERROR] Import: tasks collection unavailable: %v", err)
		return e.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Task storage is unavailable",
		})
	}

	result := Reconcile(rows, projects, employees, auth.Id, appCtx.StatusMap, appCtx.PriorityMap, writer)
	logImportSession(pbApp, header.Filename, auth.Id, result)
	log.Printf("[INFO] Import: %q by %s: %d inserted, %d errors", header.Filename, auth.Id, result.Inserted, len(result.Errors))

	errorList := result.Errors
	if errorList == nil {
		errorList = []string{}
	}
	return e.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"inserted": result.Inserted,
		"errors":   errorList,
	})
}

func loadLookup(pbApp *pocketbase.PocketBase, collection string) (Lookup, error) {
	records, err := pbApp.FindRecordsByFilter(collection, "id != ''", "", appModel.MaxFetchLimit, 0, nil)
	if err != nil {
		return nil, err
	}
	lookup := make(Lookup, len(records))
	for _, r := range records {
		lookup.Add(r.GetString(appModel.FieldName), r.Id)
	}
	return lookup, nil
}

// recordWriter реализует TaskWriter поверх PocketBase.
type recordWriter struct {
	app        core.App
	collection *core.Collection
}

func newRecordWriter(pbApp core.App) (*recordWriter, error) {
	collection, err := pbApp.FindCollectionByNameOrId(appModel.CollectionTasks)
	if err != nil {
		return nil, err
	}
	return &recordWriter{app: pbApp, collection: collection}, nil
}

func (w *recordWriter) Insert(t Task) error {
	record := core.NewRecord(w.collection)
	record.Set(appModel.FieldTitle, t.Title)
	record.Set("description", t.Description)
	record.Set(appModel.FieldStatus, t.Status)
	record.Set(appModel.FieldPriority, t.Priority)
	record.Set(appModel.FieldProject, t.ProjectID)
	record.Set(appModel.FieldCreatedBy, t.CreatedBy)
	if t.DueDate != "" {
		record.Set(appModel.FieldDueDate, t.DueDate)
	}
	if t.AssigneeID != "" {
		record.Set(appModel.FieldAssignee, t.AssigneeID)
	}
	return w.app.Save(record)
}

// logImportSession пишет аудит-запись сессии. Best-effort: сбой только
// логируется, результат импорта от него не зависит.
func logImportSession(pbApp core.App, fileName, importedBy string, result Result) {
	collection, err := pbApp.FindCollectionByNameOrId(appModel.CollectionImportLogs)
	if err != nil {
		log.Printf("[WARN] Import: import_logs collection unavailable: %v", err)
		return
	}
	record := core.NewRecord(collection)
	record.Set("batch_id", uuid.NewString())
	record.Set("file_name", fileName)
	record.Set("imported_by", importedBy)
	record.Set("inserted", result.Inserted)
	record.Set("failed", len(result.Errors))
	if err := pbApp.Save(record); err != nil {
		log.Printf("[WARN] Import: failed to write import log for %q: %v", fileName, err)
	}
}
