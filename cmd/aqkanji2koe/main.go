package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/hsiuhsiu/aqkanji2koe-go/internal/config"
	"github.com/hsiuhsiu/aqkanji2koe-go/pkg/aqkanji2koe"
	"github.com/hsiuhsiu/aqkanji2koe-go/pkg/aquestalk"
	"github.com/hsiuhsiu/aqkanji2koe-go/pkg/logging"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "aqkanji2koe: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	dic        string
	text       string
	out        string
	speed      int
	kanjiKey   string
	talkKey    string
	logLevel   string
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("aqkanji2koe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "JSON configuration file")
	fs.StringVar(&o.dic, "dic", "", "system dictionary directory (overrides config)")
	fs.StringVar(&o.text, "text", "", "text to convert; read from stdin when empty")
	fs.StringVar(&o.out, "out", "", "write synthesized WAV to this file (\"-\" for stdout)")
	fs.IntVar(&o.speed, "speed", 0, "AquesTalk speed, 50-300 (overrides config)")
	fs.StringVar(&o.kanjiKey, "kanji-key", "", "AqKanji2Koe license key")
	fs.StringVar(&o.talkKey, "talk-key", "", "AquesTalk license key")
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.text == "" && fs.NArg() > 0 {
		o.text = strings.Join(fs.Args(), " ")
	}
	return o, nil
}

func newLogger(level string, stderr io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(stderr), lvl)
	return zap.New(core), nil
}

func resolveConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv(os.LookupEnv)
	if o.dic != "" {
		cfg.Dictionary = o.dic
	}
	if o.out != "" {
		cfg.Output = o.out
	}
	if o.speed != 0 {
		cfg.Speed = o.speed
	}
	if o.kanjiKey != "" {
		cfg.KanjiDevKey = o.kanjiKey
	}
	if o.talkKey != "" {
		cfg.TalkDevKey = o.talkKey
	}
	return cfg, cfg.Validate()
}

func readText(o options, stdin io.Reader) (string, error) {
	if o.text != "" {
		return o.text, nil
	}
	data, err := io.ReadAll(bufio.NewReader(stdin))
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimRight(string(data), "\r\n")
	if text == "" {
		return "", errors.New("no input text")
	}
	return text, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.version {
		fmt.Fprintf(stdout, "aqkanji2koe-go %s (native %s, linked=%t)\n",
			aqkanji2koe.WrapperVersion(), aqkanji2koe.NativeVersion(), aqkanji2koe.Linked())
		return nil
	}

	zl, err := newLogger(o.logLevel, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()
	log := logging.NewZap(zl)

	cfg, err := resolveConfig(o)
	if err != nil {
		return err
	}
	text, err := readText(o, stdin)
	if err != nil {
		return err
	}

	if cfg.KanjiDevKey != "" {
		if err := aqkanji2koe.SetDevKey(cfg.KanjiDevKey); err != nil {
			return err
		}
		log.Info(ctx, "aqkanji2koe license key applied", logging.Redacted("key"))
	}

	koe, err := aqkanji2koe.ConvertOnce(cfg.Dictionary, text, aqkanji2koe.WithLogger(log))
	if err != nil {
		if errors.Is(err, aqkanji2koe.ErrNotBuilt) {
			log.Error(ctx, "native library unavailable", "err", err)
		}
		return err
	}

	if cfg.Output == "" {
		_, err := fmt.Fprintln(stdout, koe)
		return err
	}
	return synthesize(ctx, log, cfg, koe, stdout)
}

func synthesize(ctx context.Context, log logging.Logger, cfg config.Config, koe string, stdout io.Writer) error {
	if cfg.Output == "-" {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("refusing to write WAV data to a terminal")
		}
	}

	if cfg.TalkDevKey != "" {
		if err := aquestalk.SetDevKey(cfg.TalkDevKey); err != nil {
			return err
		}
		log.Info(ctx, "aquestalk license key applied", logging.Redacted("key"))
	}

	wav, err := aquestalk.Synthesize(koe, cfg.Speed)
	if err != nil {
		return err
	}
	if info, err := aquestalk.ParseWaveHeader(wav); err != nil {
		log.Warn(ctx, "unrecognised WAV header", "err", err)
	} else {
		log.Info(ctx, "synthesized",
			"koe", koe,
			"sample_rate", info.SampleRate,
			"channels", info.Channels,
			"duration", info.Duration().String(),
		)
	}

	if cfg.Output == "-" {
		_, err := stdout.Write(wav)
		return err
	}
	path := filepath.Clean(cfg.Output)
	if err := os.WriteFile(path, wav, 0o644); err != nil { // #nosec G306 -- audio output is not sensitive
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	return nil
}
