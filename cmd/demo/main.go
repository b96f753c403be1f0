// Command demo walks through the Judge0 client API against a live
// instance (JUDGE0_URL) or, when unset, an in-process mock service.
// It installs the instrumented transport and dumps the gathered client
// metrics at the end.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"judge0-go/pkg/debug"
	"judge0-go/pkg/judge0"
	"judge0-go/pkg/observability"
)

func main() {
	debug.Init("", "")

	fmt.Println("=== judge0 client demo ===")
	fmt.Println()

	baseURL := os.Getenv("JUDGE0_URL")
	if baseURL == "" {
		mock := startMockService()
		defer mock.Close()
		baseURL = mock.URL
		fmt.Printf("JUDGE0_URL not set, using in-process mock at %s\n\n", baseURL)
	}

	cfg := judge0.DefaultConfig()
	cfg.AuthenticationToken = os.Getenv("JUDGE0_AUTH_TOKEN")
	cfg.Wait = true

	client := judge0.NewClientWithTransport(baseURL, cfg, observability.NewInstrumentedTransport(nil))
	ctx := context.Background()

	// 1. Service metadata
	about, err := client.About(ctx)
	if err != nil {
		fmt.Printf("about: %v\n", err)
		return
	}
	fmt.Printf("[1] Service: Judge0 %s (%s)\n", about.Version, about.Homepage)

	// 2. Language catalog
	langs, err := client.Languages(ctx)
	if err != nil {
		fmt.Printf("languages: %v\n", err)
		return
	}
	fmt.Printf("[2] %d active languages, e.g. %s\n", len(langs), langs[0].Name)

	// 3. Status catalog
	statuses, err := client.Statuses(ctx)
	if err != nil {
		fmt.Printf("statuses: %v\n", err)
		return
	}
	fmt.Printf("[3] %d execution statuses\n", len(statuses))

	// 4. Create a submission; with Wait=true the service blocks until
	// execution finishes and the result comes back in one exchange.
	sub := judge0.Submission{
		SourceCode: `print("hello from the sandbox")`,
		LanguageID: langs[0].ID,
	}
	result, err := client.CreateSubmission(ctx, sub)
	if err != nil {
		fmt.Printf("create submission: %v\n", err)
		return
	}

	var pretty map[string]any
	if err := json.Unmarshal(result, &pretty); err != nil {
		fmt.Printf("decode result: %v\n", err)
		return
	}
	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Printf("[4] Submission result:\n%s\n", out)

	// 5. Client metrics recorded by the instrumented transport
	fmt.Println("\n[5] Client metrics:")
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		fmt.Printf("gather: %v\n", err)
		return
	}
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), "judge0_client_") {
			fmt.Printf("  %s: %d series\n", mf.GetName(), len(mf.GetMetric()))
		}
	}
}

// startMockService serves just enough of the Judge0 API for the demo.
func startMockService() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /about", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"version":"1.13.0","homepage":"https://judge0.com","source_code":"https://github.com/judge0/judge0","maintainer":"mock"}`)
	})
	mux.HandleFunc("GET /languages", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":71,"name":"Python (3.8.1)"}]`)
	})
	mux.HandleFunc("GET /statuses", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":1,"description":"In Queue"},{"id":2,"description":"Processing"},{"id":3,"description":"Accepted"}]`)
	})
	mux.HandleFunc("POST /submissions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"token":"mock-token","stdout":"hello from the sandbox\n","status":{"id":3,"description":"Accepted"},"time":"0.012","memory":3344.0}`)
	})
	return httptest.NewServer(mux)
}
