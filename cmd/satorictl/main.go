// satorictl decodes a stream of Satori gateway payloads (newline-delimited
// JSON) and reports each one as a typed summary or a typed failure. It is the
// operational harness around internal/protocol: point it at a capture file or
// pipe a live stream into it.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"satorigw/internal/observability"
	"satorigw/internal/protocol"
)

type options struct {
	configPath string
	input      string
	logLevel   string
	listenAddr string
	failFast   bool
}

type streamStats struct {
	total  int
	ok     int
	failed int
}

func main() {
	opts, explicit := parseFlags()

	cfg := defaultConfig()
	if opts.configPath != "" {
		loaded, err := loadConfig(opts.configPath)
		if err != nil {
			fatalf("%v", err)
		}
		cfg = loaded
	}
	applyFlagOverrides(&cfg, opts, explicit)

	logger := observability.InitLogger("satorictl", cfg.LogLevel)

	if cfg.ListenAddr != "" {
		observability.RegisterMetrics()
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
				logger.Error().Err(err).Str("addr", cfg.ListenAddr).Msg("metrics listener failed")
			}
		}()
	}

	// The decoder's diagnostic sink only ever warns about the missing-content
	// degrade, so a warn-level hook doubles as the degrade counter.
	decodeLogger := logger.Hook(degradeCounter{})
	dec := protocol.NewDecoder(protocol.WithLogger(decodeLogger))

	in, err := openInput(cfg.Input)
	if err != nil {
		fatalf("%v", err)
	}
	defer in.Close()

	stats, err := processStream(dec, in, logger, cfg.FailFast)
	if err != nil {
		fatalf("%v", err)
	}

	logger.Info().
		Int("total", stats.total).
		Int("ok", stats.ok).
		Int("failed", stats.failed).
		Msg("stream complete")

	if stats.failed > 0 {
		os.Exit(1)
	}
}

func parseFlags() (options, map[string]bool) {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to TOML config")
	flag.StringVar(&opts.input, "input", "", `payload stream, NDJSON; empty or "-" reads stdin`)
	flag.StringVar(&opts.logLevel, "log-level", "", "zerolog level (trace..error)")
	flag.StringVar(&opts.listenAddr, "listen", "", "serve prometheus metrics on this address")
	flag.BoolVar(&opts.failFast, "fail-fast", false, "stop at the first payload that fails to decode")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	return opts, explicit
}

// applyFlagOverrides layers explicitly-set flags over the file config.
func applyFlagOverrides(cfg *toolConfig, opts options, explicit map[string]bool) {
	if explicit["input"] {
		cfg.Input = opts.input
	}
	if explicit["log-level"] {
		cfg.LogLevel = opts.logLevel
	}
	if explicit["listen"] {
		cfg.ListenAddr = opts.listenAddr
	}
	if explicit["fail-fast"] {
		cfg.FailFast = opts.failFast
	}
}

func openInput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func processStream(dec *protocol.Decoder, in *os.File, logger zerolog.Logger, failFast bool) (streamStats, error) {
	var stats streamStats

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		stats.total++

		payload, err := dec.DecodeBytes(raw)
		observability.RecordDecode(opcodeLabel(payload, err), err)
		if err != nil {
			stats.failed++
			logger.Error().Int("line", line).Err(err).Msg("decode failed")
			if failFast {
				return stats, fmt.Errorf("line %d: %w", line, err)
			}
			continue
		}

		stats.ok++
		logPayload(logger, line, payload)
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read stream: %w", err)
	}
	return stats, nil
}

// opcodeLabel picks the metrics label for one decode attempt: the opcode name
// when the envelope got that far, "unknown" for out-of-set opcodes, "invalid"
// when the envelope itself was unusable.
func opcodeLabel(payload protocol.Payload, err error) string {
	if payload != nil {
		return payload.Opcode().String()
	}
	var unknown *protocol.UnknownOpcodeError
	if errors.As(err, &unknown) {
		return "unknown"
	}
	return "invalid"
}

func logPayload(logger zerolog.Logger, line int, payload protocol.Payload) {
	ev := logger.Info().Int("line", line).Stringer("op", payload.Opcode())
	switch p := payload.(type) {
	case *protocol.EventPayload:
		ev = ev.
			Int64("event_id", p.Event.ID).
			Str("type", p.Event.Type).
			Str("platform", p.Event.Platform).
			Str("self_id", p.Event.SelfID).
			Time("timestamp", p.Event.Timestamp)
		if p.Event.Message != nil {
			ev = ev.Str("message_id", p.Event.Message.ID)
		}
	case *protocol.ReadyPayload:
		ev = ev.Int("logins", len(p.Ready.Logins))
	case *protocol.IdentifyPayload:
		if p.Identify.Sequence != nil {
			ev = ev.Int64("sequence", *p.Identify.Sequence)
		}
	}
	ev.Msg("payload decoded")
}

// degradeCounter feeds the missing-content warning into metrics.
type degradeCounter struct{}

func (degradeCounter) Run(e *zerolog.Event, level zerolog.Level, message string) {
	if level == zerolog.WarnLevel {
		observability.RecordContentDegrade()
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "satorictl: "+format+"\n", args...)
	os.Exit(1)
}
