// Command passcheck checks candidate passwords against the configured
// policy for a role. Candidates are read one per line from stdin unless
// --password is given; the exit status is 1 if any candidate is rejected.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/qamarshahid/techprocessing/internal/config"
	"github.com/qamarshahid/techprocessing/internal/policy"
	"github.com/qamarshahid/techprocessing/pkg/logger"
	"github.com/qamarshahid/techprocessing/pkg/metrics"
	"github.com/qamarshahid/techprocessing/pkg/validator"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("passcheck", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config.yml (default: search ., ./config, /app/config)")
	role := fs.String("role", policy.DefaultRole, "policy role: default, admin, agent or client")
	userInfo := fs.StringSlice("user-info", nil, "personal information the password must not contain (repeatable)")
	password := fs.String("password", "", "candidate to check instead of reading stdin")
	summary := fs.Bool("summary", false, "print the policy requirements and exit")
	asJSON := fs.Bool("json", false, "print one JSON result per candidate")
	fs.String("log-level", "", "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	v := viper.New()
	if err := v.BindPFlag("log.level", fs.Lookup("log-level")); err != nil {
		fmt.Fprintf(stderr, "passcheck: %v\n", err)
		return exitUsage
	}

	cfg, err := config.LoadWithViper(v, *configPath)
	if err != nil {
		fmt.Fprintf(stderr, "passcheck: %v\n", err)
		return exitUsage
	}

	log := logger.NewLogger(&logger.Config{
		Level:   logger.ParseLevel(cfg.Log.Level),
		Output:  stderr,
		Console: cfg.Log.Console,
	})

	registry, err := policy.NewRegistry(cfg.Password)
	if err != nil {
		log.Error(err, "failed to build policy registry")
		return exitUsage
	}
	if _, ok := registry.Lookup(*role); !ok {
		log.Warn("unknown role, using default policy", "role", *role, "roles", registry.Roles())
	}
	pol := registry.Get(*role)

	if *summary {
		fmt.Fprintln(stdout, pol.Summary())
		return exitOK
	}

	var (
		m    *metrics.Metrics
		prom *prometheus.Registry
	)
	if cfg.Metrics.Enabled {
		prom = prometheus.NewRegistry()
		m = metrics.New(cfg.Metrics.Namespace, prom)
	}

	check := validator.New(
		validator.WithPolicy(pol),
		validator.WithPolicyName(*role),
		validator.WithLogger(log),
		validator.WithMetrics(m),
	)

	var candidates []string
	if fs.Changed("password") {
		candidates = []string{*password}
	} else {
		candidates, err = readCandidates(stdin)
		if err != nil {
			log.Error(err, "failed to read candidates")
			return exitUsage
		}
	}

	rejected := 0
	enc := json.NewEncoder(stdout)
	for _, candidate := range candidates {
		res := check.Check(candidate, *userInfo...)
		if !res.Valid {
			rejected++
		}

		switch {
		case *asJSON:
			if err := enc.Encode(res); err != nil {
				log.Error(err, "failed to write result")
				return exitUsage
			}
		case res.Valid:
			fmt.Fprintln(stdout, "OK")
		default:
			fmt.Fprintf(stdout, "REJECTED: %s\n", res.Reason)
		}
	}

	if prom != nil {
		if err := writeMetrics(stderr, prom); err != nil {
			log.Error(err, "failed to write metrics")
		}
	}

	log.Debug("done", "checked", len(candidates), "rejected", rejected)
	if rejected > 0 {
		return exitRejected
	}
	return exitOK
}

// readCandidates returns the non-blank lines of r.
func readCandidates(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
