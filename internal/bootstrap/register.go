package bootstrap

import (
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	appModel "github.com/NguyenChiHuynh2003/kba-admin-dash-44178/internal/app"
)

const (
	maxAttempts   = 5
	attemptWindow = time.Minute
)

// Register подключает bootstrap-эндпоинт первого администратора.
func Register(pbApp *pocketbase.PocketBase, appCtx *appModel.AppContext) error {
	limiter := NewFixedWindowLimiter(maxAttempts, attemptWindow)

	pbApp.OnServe().BindFunc(func(e *core.ServeEvent) error {
		e.Router.Route(http.MethodOptions, "/api/bootstrap/admin", func(e *core.RequestEvent) error {
			applyCORS(e)
			return e.String(http.StatusOK, "")
		})
		e.Router.POST("/api/bootstrap/admin", func(e *core.RequestEvent) error {
			return handleBootstrap(pbApp, appCtx, limiter, e)
		})
		return e.Next()
	})

	return nil
}

func handleBootstrap(pbApp *pocketbase.PocketBase, appCtx *appModel.AppContext, limiter Limiter, e *core.RequestEvent) error {
	applyCORS(e)

	addr := clientAddr(e)
	if limiter.IsLimited(addr) {
		log.Printf("[WARN] Bootstrap: rate limit hit for %s", addr)
		return e.JSON(http.StatusTooManyRequests, map[string]interface{}{
			"error": "Too many requests. Please try again later.",
		})
	}

	if appCtx.BootstrapToken != "" && e.Request.Header.Get("x-bootstrap-token") != appCtx.BootstrapToken {
		log.Printf("[WARN] Bootstrap: invalid token from %s", addr)
		return e.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error": "Invalid bootstrap token",
		})
	}

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"fullName"`
	}{}
	if err := e.BindBody(&body); err != nil {
		log.Printf("[WARN] Bootstrap: invalid body from %s: %v", addr, err)
		return e.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid request body",
		})
	}

	candidate := Candidate{Email: body.Email, Password: body.Password, FullName: body.FullName}
	if err := ValidateCandidate(candidate); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": err.Error(),
		})
	}

	result, err := NewProvisioner(NewStore(pbApp)).Provision(candidate)
	if err != nil {
		var inconsistent *InconsistentStateError
		switch {
		case errors.Is(err, ErrAdminExists):
			log.Printf("[WARN] Bootstrap: admin already exists, rejected request from %s", addr)
			return e.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": "An admin account already exists. Use the normal sign-up flow instead.",
			})
		case errors.As(err, &inconsistent):
			log.Printf("[ERROR] Bootstrap: inconsistent account state for %s: %v", body.Email, err)
			return e.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": "Account state is inconsistent, contact support",
			})
		default:
			log.Printf("[ERROR] Bootstrap: provisioning failed for %s: %v", body.Email, err)
			return e.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	for _, w := range result.Warnings {
		log.Printf("[WARN] Bootstrap: best-effort step failed for %s: %s", result.UserID, w)
	}
	log.Printf("[INFO] Bootstrap: admin %s provisioned (user %s, from %s)", result.Email, result.UserID, addr)

	return e.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Admin account created successfully",
		"user": map[string]interface{}{
			"id":    result.UserID,
			"email": result.Email,
		},
	})
}

func applyCORS(e *core.RequestEvent) {
	h := e.Response.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type, x-bootstrap-token")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
}

func clientAddr(e *core.RequestEvent) string {
	if ip := e.RealIP(); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(e.Request.RemoteAddr)
	if err != nil {
		return e.Request.RemoteAddr
	}
	return host
}
