// Command fatls lists directories and hex dumps files from a local directory
// or a MinIO bucket, in the layout of a FAT volume listing.
//
// Usage:
//
//	fatls [flags] [path...]
//
// Without --dump each path is listed (default "/"). With --dump every path
// must be a file; files are read concurrently and printed in argument order.
package main

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/fatls/billy"
	"github.com/jmgilman/go/fatls/core"
	"github.com/jmgilman/go/fatls/errors"
	"github.com/jmgilman/go/fatls/fatprint"
	"github.com/jmgilman/go/fatls/handle"
	"github.com/jmgilman/go/fatls/internal/config"
	"github.com/jmgilman/go/fatls/minio"
)

// maxParallelDumps bounds concurrent store reads in dump mode.
const maxParallelDumps = 4

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := config.Flags("fatls")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if stderrors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(stderr, "fatls: %v\n", err)
		return 2
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store, err := openStore(cfg)
	if err != nil {
		logFailure(logger, err)
		return 1
	}
	logger.Debug("store ready", "type", store.Type().String())

	hidden, err := hiddenFunc(cfg.List.Hide)
	if err != nil {
		logFailure(logger, err)
		return 2
	}
	opts := []handle.Option{handle.WithHiddenFunc(hidden), handle.WithLogger(logger)}

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"/"}
	}

	out := bufio.NewWriter(stdout)

	printer := fatprint.New(fatprint.WithLogger(logger))
	if cfg.Dump.Enabled {
		err = dumpAll(ctx, out, store, printer, paths, cfg.Dump, opts)
	} else {
		err = listAll(out, store, printer, paths, cfg.ListFlags(), opts)
	}
	if err != nil {
		_ = out.Flush()
		logFailure(logger, err)
		return 1
	}
	if err := out.Flush(); err != nil {
		logFailure(logger, errors.Wrap(err, errors.CodeInternal, "write failed"))
		return 1
	}
	return 0
}

func openStore(cfg *config.Config) (core.Store, error) {
	switch cfg.Store.Type {
	case config.StoreMinIO:
		return minio.New(cfg.MinIO())
	default:
		return billy.NewLocal(cfg.Store.Root, billy.WithBoundOS()), nil
	}
}

func logFailure(logger *slog.Logger, err error) {
	logger.Error("fatls failed",
		"code", errors.GetCode(err),
		"retryable", errors.IsRetryable(err),
		"error", err,
	)
}

// open wraps handle.Open and converts store errors at the command boundary.
func open(store core.Store, name string, opts []handle.Option) (*handle.Entry, error) {
	h, err := handle.Open(store, name, opts...)
	if err != nil {
		return nil, errors.WithContext(errors.FromStore(err, errors.CodeInternal, "open failed"), "path", name)
	}
	return h, nil
}

func listAll(w core.Sink, store core.Store, p *fatprint.Printer, paths []string, flags fatprint.ListFlags, opts []handle.Option) error {
	for i, name := range paths {
		if len(paths) > 1 {
			if i > 0 {
				_, _ = io.WriteString(w, "\r\n")
			}
			_, _ = io.WriteString(w, name+":\r\n")
		}
		if err := listOne(w, store, p, name, flags, opts); err != nil {
			return err
		}
	}
	return nil
}

func listOne(w core.Sink, store core.Store, p *fatprint.Printer, name string, flags fatprint.ListFlags, opts []handle.Option) error {
	dir, err := open(store, name, opts)
	if err != nil {
		return err
	}
	defer func() { _ = dir.Close() }()
	return p.List(w, dir, flags, 0)
}

// dumpAll renders every file into its own buffer and writes the buffers in
// argument order once all reads have finished.
func dumpAll(ctx context.Context, w io.Writer, store core.Store, p *fatprint.Printer, paths []string, cfg config.DumpConfig, opts []handle.Option) error {
	bufs := make([]bytes.Buffer, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDumps)
	for i, name := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return dumpOne(&bufs[i], store, p, name, cfg, len(paths) > 1, opts)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range bufs {
		if _, err := bufs[i].WriteTo(w); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "write failed")
		}
	}
	return nil
}

func dumpOne(w core.Sink, store core.Store, p *fatprint.Printer, name string, cfg config.DumpConfig, header bool, opts []handle.Option) error {
	f, err := open(store, name, opts)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if f.IsDir() {
		return errors.WithContext(errors.New(errors.CodeInvalidInput, "cannot dump a directory"), "path", name)
	}
	if header {
		_, _ = io.WriteString(w, name+":")
	}
	p.Dump(w, f, cfg.Offset, cfg.Count)
	return nil
}
