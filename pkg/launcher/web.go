package launcher

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/farescout/farescout/pkg/api"
)

// RunWeb starts the FareScout web server.
func RunWeb(port int) error {
	router := mux.NewRouter()

	search := api.NewSearchHandler(api.GetSessionManager())
	api.RegisterRoutes(router, search)

	router.HandleFunc("/", handleIndex).Methods("GET")

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting FareScout on http://localhost:%d", port)
	log.Printf("Open your browser to search for flight fares")

	return http.ListenAndServe(addr, router)
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, htmlTemplate)
}
