package startup

import (
	"fmt"
	"maps"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"music-scheduler/internal/logging"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// RouteInfo is one method/path pair registered on a router.
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

// ServerConfig holds what LogServerStarted reports.
type ServerConfig struct {
	Port            string
	MetricsPort     string
	MetricsEnabled  bool
	StartupDuration time.Duration
}

const rule = "------------------------------------------------------------"

// section starts a titled block in the startup log.
func section(title string, args ...any) {
	logging.Info("")
	logging.Info(rule)
	logging.Info(title, args...)
	logging.Info(rule)
}

func printBanner() {
	fmt.Println(`
` + rule + `
   __  ___         _        ____     __          __     __
  /  |/  /_ _____ (_)___   / __/____/ /  ___ ___/ /_ __/ /__ ____
 / /|_/ / // (_-</ / __/  _\ \/ __/ _ \/ -_) _  / // / / -_) __/
/_/  /_/\_,_/___/_/\__/  /___/\__/_//_/\__/\_,_/\_,_/_/\__/_/

` + rule)
	info := GetBuildInfo()
	logging.Info("  Version:    %s (%s)", info.Version, info.Commit)
	logging.Info("  Built:      %s with %s", info.BuildTime, info.GoVersion)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
}

func logSystemInfo() {
	section("SYSTEM INFORMATION")
	logging.Info("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Info("  CPUs:            %d (GOMAXPROCS %d)", runtime.NumCPU(), runtime.GOMAXPROCS(0))
	if host, err := os.Hostname(); err == nil {
		logging.Debug("  Hostname:        %s", host)
	}
}

// LogDatabaseInit reports how long opening the database took.
func LogDatabaseInit(duration time.Duration) {
	section("DATABASE")
	logging.Info("  [OK] Database ready in %v", duration)
}

// LogPlayerInit logs the restored playlist and the starting volume.
func LogPlayerInit(songs, volume int) {
	section("PLAYER")
	logging.Info("  Songs restored:  %d", songs)
	logging.Info("  Volume:          %d", volume)
}

// LogSchedulerInit logs the schedule check cadence.
func LogSchedulerInit(interval time.Duration, loc *time.Location) {
	section("SCHEDULER")
	logging.Info("  Check interval:  %v", interval)
	logging.Info("  Time zone:       %s", loc)
	logging.Info("  Local time now:  %s", time.Now().In(loc).Format("15:04"))
}

func LogSchedulerStarted() {
	logging.Info("  [OK] Scheduler started")
}

// GetRoutes lists every method/path pair on router. Routes registered without
// a method matcher are reported with method "*".
func GetRoutes(router *mux.Router) ([]RouteInfo, error) {
	var routes []RouteInfo
	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return err
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}
		for _, m := range methods {
			routes = append(routes, RouteInfo{Method: m, Path: path, Name: route.GetName()})
		}
		return nil
	})
	return routes, err
}

// LogHTTPRoutes reports access logging settings and, at debug level, the
// registered routes grouped by prefix.
func LogHTTPRoutes(router *mux.Router, logHealthChecks bool) {
	section("HTTP SERVER")
	logging.Info("  Access log:      W3C extended format")
	logging.Info("  Health probes:   %s", strings.ToLower(enabledString(logHealthChecks)))

	if !logging.IsDebugEnabled() {
		return
	}
	routes, err := GetRoutes(router)
	if err != nil {
		logging.Warn("  Walking routes: %v", err)
	}

	groups := make(map[string][]RouteInfo)
	for _, r := range routes {
		g := getRouteGroup(r.Path)
		if g == "" {
			g = "root"
		}
		groups[g] = append(groups[g], r)
	}

	logging.Debug("  %d routes:", len(routes))
	for _, g := range slices.Sorted(maps.Keys(groups)) {
		logging.Debug("  [%s]", g)
		for _, r := range groups[g] {
			logging.Debug("    %-6s %s", r.Method, r.Path)
		}
	}
}

// getRouteGroup returns the first path segment, or "api/<resource>" for API
// routes.
func getRouteGroup(path string) string {
	first, rest, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if first == "api" && rest != "" {
		resource, _, _ := strings.Cut(rest, "/")
		return "api/" + resource
	}
	return first
}

// LogServerStarted prints the listening endpoints.
func LogServerStarted(config ServerConfig) {
	section("SERVER STARTED in %v", config.StartupDuration)
	logging.Info("  API:             http://0.0.0.0:%s/api", config.Port)
	logging.Info("  Players:         ws://0.0.0.0:%s/ws/player", config.Port)
	if config.MetricsEnabled {
		logging.Info("  Metrics:         http://0.0.0.0:%s/metrics", config.MetricsPort)
	} else {
		logging.Info("  Metrics:         %s", enabledString(false))
	}
	logging.Info(rule)
}

func LogShutdownInitiated(signal string) {
	section("SHUTDOWN (received %s)", signal)
}

func LogShutdownStep(step string) {
	logging.Debug("  %s...", step)
}

func LogShutdownStepComplete(step string) {
	logging.Info("  [OK] %s", step)
}

func LogShutdownComplete() {
	logging.Info("  [OK] Shutdown complete")
}

// LogFatal logs at fatal level and exits.
func LogFatal(format string, args ...any) {
	logging.Fatal(format, args...)
}

func enabledString(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}
