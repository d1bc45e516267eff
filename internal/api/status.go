package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"tanim-backend/internal/database"
	"tanim-backend/pkg/api"
)

// maxCollections caps how many table names the diagnostic payload lists.
const maxCollections = 10

// maxErrorDetail caps how much of an internal error message leaks into the
// diagnostic payload.
const maxErrorDetail = 50

type StatusService struct {
	db           *gorm.DB
	databaseURL  string
	databaseName string
}

func NewStatusService(db *gorm.DB, databaseURL, databaseName string) *StatusService {
	return &StatusService{
		db:           db,
		databaseURL:  databaseURL,
		databaseName: databaseName,
	}
}

func (s *StatusService) AddRoutes(r chi.Router) {
	r.Get("/", RestHandler(s.Root))
	r.Get("/api/hello", RestHandler(s.Hello))
	r.Get("/test", RestHandler(s.Status))
}

func (s *StatusService) Root(r *http.Request) (any, error) {
	return api.MessageResponse{Message: "Tanim AI Backend is running"}, nil
}

func (s *StatusService) Hello(r *http.Request) (any, error) {
	return api.MessageResponse{Message: "Hello from Tanim AI backend API!"}, nil
}

// Status is diagnostic-only and never fails the request. Each probe is
// guarded independently so one failing check cannot block the others from
// reporting; failures downgrade their own field instead of erroring out.
func (s *StatusService) Status(r *http.Request) (any, error) {
	resp := api.StatusResponse{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if s.db != nil {
		resp.Database = "available"

		if err := database.Ping(r.Context(), s.db); err != nil {
			resp.Database = "error: " + truncateDetail(err.Error())
		} else {
			resp.ConnectionStatus = "connected"

			if tables, err := s.db.Migrator().GetTables(); err != nil {
				resp.Database = "connected but error: " + truncateDetail(err.Error())
			} else {
				if len(tables) > maxCollections {
					tables = tables[:maxCollections]
				}
				resp.Collections = tables
				resp.Database = "connected and working"
			}
		}
	}

	resp.DatabaseURL = envStatus(s.databaseURL)
	resp.DatabaseName = envStatus(s.databaseName)

	return resp, nil
}

func truncateDetail(detail string) string {
	if len(detail) > maxErrorDetail {
		return detail[:maxErrorDetail]
	}
	return detail
}

func envStatus(value string) string {
	if value != "" {
		return "set"
	}
	return "not set"
}
