package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"plateplanner/internal/cache"
	"plateplanner/internal/categories"
	"plateplanner/internal/config"
	"plateplanner/internal/ingredients"
	"plateplanner/internal/mealplan"
	"plateplanner/internal/pricing"
	"plateplanner/internal/shopping"
	"plateplanner/internal/units"
)

func main() {
	var plan string
	var user string
	var serve bool
	var addr string
	var help bool

	flag.StringVar(&plan, "plan", "", "Generate a shopping list for a meal plan id and print it")
	flag.StringVar(&plan, "p", "", "Generate a shopping list for a meal plan id (short form)")
	flag.StringVar(&user, "user", "", "User id owning the generated list")
	flag.BoolVar(&serve, "serve", false, "Run HTTP server mode")
	flag.StringVar(&addr, "addr", "", "Address to bind in server mode (overrides ADDR)")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message")
	flag.Parse()

	if help {
		showHelp()
		return
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	c, err := cache.MakeCache()
	if err != nil {
		log.Fatalf("failed to create cache: %v", err)
	}

	builder := makeBuilder(cfg, c)
	storage := shopping.NewStorage(c)

	if serve {
		if err := runServer(cfg, builder, storage); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	if plan == "" {
		fmt.Println("Error: a meal plan id is required (or use -serve for server mode)")
		showHelp()
		os.Exit(1)
	}

	list, err := builder.Build(context.Background(), shopping.GenerateRequest{UserID: user, PlanID: plan})
	if err != nil {
		log.Fatalf("failed to generate shopping list: %v", err)
	}
	if err := storage.Save(list); err != nil {
		log.Fatalf("failed to save shopping list: %v", err)
	}

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")
	if err := out.Encode(list); err != nil {
		log.Fatalf("failed to print shopping list: %v", err)
	}
}

func makeBuilder(cfg *config.Config, c cache.Cache) *shopping.Builder {
	var consolidator *shopping.Consolidator
	if cfg.Units.ExactOnly {
		slog.Info("unit conversion disabled, consolidating per exact unit")
		consolidator = shopping.NewExactUnitConsolidator()
	} else {
		consolidator = shopping.NewConsolidator(units.NewConverter())
	}

	var priceClient *pricing.Client
	if cfg.Pricing.Endpoint != "" {
		priceClient = pricing.NewClient(cfg.Pricing.Endpoint, cfg.Pricing.APIKey)
	}

	return shopping.NewBuilder(
		mealplan.NewSource(c),
		ingredients.NewResolver(ingredients.DefaultSynonyms()),
		consolidator,
		categories.NewClassifier(),
		pricing.NewEstimator(priceClient),
		cfg.Matching.Threshold,
	)
}

func runServer(cfg *config.Config, builder *shopping.Builder, storage *shopping.Storage) error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	var priceClient *pricing.Client
	if cfg.Pricing.Endpoint != "" {
		priceClient = pricing.NewClient(cfg.Pricing.Endpoint, cfg.Pricing.APIKey)
	}
	handler := shopping.NewHandler(builder, storage, categories.NewClassifier(), pricing.NewEstimator(priceClient))
	handler.Register(mux)

	slog.Info("starting server", "addr", cfg.Server.Addr)
	return http.ListenAndServe(cfg.Server.Addr, mux)
}

func showHelp() {
	fmt.Println("plateplanner - consolidate meal plan ingredients into a shopping list")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  plateplanner -plan <plan-id> [-user <user-id>]   Generate and print a list")
	fmt.Println("  plateplanner -serve [-addr :8080]                Run the HTTP API")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  ADDR                 server bind address (default :8080)")
	fmt.Println("  CACHE_BACKEND        'memory' or file cache (default)")
	fmt.Println("  CACHE_DIR            file cache directory (default ./cache)")
	fmt.Println("  MATCH_THRESHOLD      fuzzy grouping threshold 0-100 (default 85)")
	fmt.Println("  UNITS_EXACT_ONLY     'true' disables cross-unit conversion")
	fmt.Println("  PRICE_API_ENDPOINT   optional store price API")
}
