package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux; no third-party routing
// dependency needed for a route table this small.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	corsHeaders(w, req)
	if req.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	r.mux.ServeHTTP(w, req)
}

// corsHeaders mirrors the permissive policy the admin frontend relies on.
func corsHeaders(w http.ResponseWriter, req *http.Request) {
	if origin := req.Header.Get("Origin"); origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")
	} else {
		w.Header().Set("Access-Control-Allow-Origin", "*")
	}
	w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS,HEAD")
	requested := req.Header.Get("Access-Control-Request-Headers")
	if requested == "" {
		requested = "Content-Type, Authorization"
	}
	w.Header().Set("Access-Control-Allow-Headers", requested)
}

// RegisterDirectoryRoutes wires the full API surface.
func (r *Router) RegisterDirectoryRoutes(
	floors *FloorsHandler,
	rooms *RoomsHandler,
	employees *EmployeesHandler,
	directory *DirectoryHandler,
	imports *ImportHandler,
	exports *ExportHandler,
	auth *AuthHandler,
) {
	r.Handle("/api/floors", floors.Collection)
	r.Handle("/api/floors/", floors.Item)

	r.Handle("/api/rooms", rooms.Collection)
	r.Handle("/api/rooms/", rooms.Item)

	r.Handle("/api/employees", employees.Collection)
	r.Handle("/api/employees/", employees.Item)

	r.Handle("/api/taxonomy", directory.Taxonomy)
	r.Handle("/api/health-db", directory.Health)

	r.Handle("/api/import/xml", imports.ImportXML)
	r.Handle("/api/import/", imports.ImportTable)
	r.Handle("/api/export/", exports.ExportTable)

	r.Handle("/api/auth/login", auth.Login)
	r.Handle("/api/auth/me", auth.Me)
	r.Handle("/api/auth/logout", auth.Logout)
}
