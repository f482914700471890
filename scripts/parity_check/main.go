// Command parity_check replays read-only portal requests against both the
// legacy backend and this API and reports status/body differences. Used while
// the two run side by side during cutover.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"
)

type target struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Critical bool   `json:"critical"`
}

type config struct {
	Targets []target `json:"targets"`
}

type comparison struct {
	Target       target
	LegacyStatus int
	NewStatus    int
	StatusMatch  bool
	BodyMatch    bool
	Err          error
}

// volatileFields are dropped before body comparison: the two backends
// generate them independently.
var volatileFields = map[string]struct{}{
	"id":         {},
	"created_at": {},
	"updated_at": {},
}

func main() {
	var (
		newBase     string
		legacyBase  string
		token       string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&newBase, "new-base", "http://localhost:8080", "new API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:5000", "legacy portal base URL")
	flag.StringVar(&token, "token", "", "bearer token sent to both backends")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "parity_check", "targets.json"), "path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	breaking := 0
	for _, t := range targets {
		comp := compareTarget(client, newBase, legacyBase, token, t)
		printComparison(comp)
		if t.Critical && (comp.Err != nil || !comp.StatusMatch || !comp.BodyMatch) {
			breaking++
		}
	}

	fmt.Printf("breaking diffs: %d\n", breaking)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return cfg.Targets, nil
}

func compareTarget(client *http.Client, newBase, legacyBase, token string, tgt target) comparison {
	comp := comparison{Target: tgt}

	newStatus, newBody, err := fetch(client, newBase, token, tgt)
	if err != nil {
		comp.Err = fmt.Errorf("new backend: %w", err)
		return comp
	}
	legacyStatus, legacyBody, err := fetch(client, legacyBase, token, tgt)
	if err != nil {
		comp.Err = fmt.Errorf("legacy backend: %w", err)
		return comp
	}

	comp.NewStatus = newStatus
	comp.LegacyStatus = legacyStatus
	comp.StatusMatch = newStatus == legacyStatus
	comp.BodyMatch = bodiesEqual(newBody, legacyBody)
	return comp
}

func fetch(client *http.Client, base, token string, tgt target) (int, []byte, error) {
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequest(method, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return 0, nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func bodiesEqual(a, b []byte) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	normalize(&aj)
	normalize(&bj)
	return reflect.DeepEqual(aj, bj)
}

func normalize(v *interface{}) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for key := range val {
			if _, volatile := volatileFields[key]; volatile {
				delete(val, key)
			}
		}
		for k, v2 := range val {
			normalize(&v2)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			normalize(&v2)
			val[i] = v2
		}
	}
}

func printComparison(comp comparison) {
	label := fmt.Sprintf("%-6s %s", comp.Target.Method, comp.Target.Path)
	switch {
	case comp.Err != nil:
		fmt.Printf("ERROR  %s: %v\n", label, comp.Err)
	case comp.StatusMatch && comp.BodyMatch:
		fmt.Printf("OK     %s\n", label)
	default:
		fmt.Printf("DIFF   %s: status %d vs %d, body match %v\n",
			label, comp.NewStatus, comp.LegacyStatus, comp.BodyMatch)
	}
}
