package main

import (
	"flag"
	"fmt"
	_ "lintang/wayfinder/docs"
	"lintang/wayfinder/pkg/geocoder"
	"lintang/wayfinder/pkg/kv"
	"lintang/wayfinder/pkg/osmparser"
	"lintang/wayfinder/pkg/server/rest"
	"lintang/wayfinder/pkg/server/rest/service"
	"lintang/wayfinder/pkg/traffic"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "net/http/pprof"

	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var (
	listenAddr = flag.String("listenaddr", ":5000", "server listen address")
	mapFile    = flag.String("f", "surakarta.osm.pbf", "openstreeetmap file buat road network graphnya")
	region     = flag.String("region", "Surakarta, Indonesia", "nama region map filenya, dipakai buat key region cache & geocoding")
)

//	@title			wayfinder API
//	@version		1.0
//	@description	openstreetmap route diversification engine in go

//	@contact.name	lintang birda saputra
//	@description 	openstreetmap route diversification engine in go. Weighted A* dengan 4 traffic profile + used-edge penalty buat route alternatif yang beda-beda

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	db, err := pebble.Open("wayfinderDB", &pebble.Options{})
	if err != nil {
		log.Fatal(err)
	}

	kvDB := kv.NewKVDB(db)
	defer kvDB.Close()

	osmParser := osmparser.NewOSMParser()
	tomtom := traffic.NewTomTomClient(os.Getenv("TOMTOM_API_KEY"))
	trafficSvc := traffic.NewService(tomtom)
	nominatim := geocoder.NewNominatimClient("wayfinder/1.0")

	navigationSvc := service.NewNavigationService(nominatim, kvDB, osmParser,
		trafficSvc, *mapFile, *region)

	go func() {
		// road network gede, load duluan biar query pertama gak nunggu parsing
		if err := navigationSvc.WarmUp(); err != nil {
			log.Printf("error warming up road network: %v", err)
			return
		}
		fmt.Printf("\nroad network %s ready!!", *region)
		fmt.Printf("\nserver started at %s\n", *listenAddr)
	}()

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:5000/swagger/doc.json"), //The url pointing to API definition
	))

	rest.WayfinderRouter(r, navigationSvc, m)

	log.Fatal(http.ListenAndServe(*listenAddr, r))
}
