package router

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"petstore/internal/handlers"
	"petstore/internal/middleware"
	"petstore/internal/services"
	"petstore/internal/store"
)

// SetupRouter wires the API over st. Product writes require a bearer token;
// listing and the auth routes are public.
func SetupRouter(st store.Store, authService *services.AuthService, logger zerolog.Logger) http.Handler {
	productService := services.NewProductService(st.Products(), logger)
	userService := services.NewUserService(st.Users(), logger)

	productHandler := handlers.NewProductHandler(productService, logger)
	authHandler := handlers.NewAuthHandler(userService, authService, logger)

	r := mux.NewRouter()
	r.NotFoundHandler = jsonStatus(http.StatusNotFound, "Not found")
	r.MethodNotAllowedHandler = jsonStatus(http.StatusMethodNotAllowed, "Method not allowed")

	r.Use(middleware.PerformanceMonitoring(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Hello Pet Store!"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	r.HandleFunc("/products", productHandler.ListProducts).Methods(http.MethodGet)

	protected := r.NewRoute().Subrouter()
	protected.Use(middleware.Authentication(authService, logger))
	protected.HandleFunc("/products", productHandler.CreateProduct).Methods(http.MethodPost)
	protected.HandleFunc("/products/{id}", productHandler.UpdateProduct).Methods(http.MethodPut)
	protected.HandleFunc("/products/{id}", productHandler.DeleteProduct).Methods(http.MethodDelete)

	return withOuterMiddleware(r, logger)
}

// withOuterMiddleware applies the middleware that must also cover unmatched
// routes, which mux's Use does not reach.
func withOuterMiddleware(r *mux.Router, logger zerolog.Logger) http.Handler {
	return middleware.ErrorHandling(logger)(middleware.CORS()(r))
}

func jsonStatus(code int, msg string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, code, map[string]string{"message": msg})
	})
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
