package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/hexdump/internal/ctxlog"
	"github.com/specialistvlad/hexdump/internal/hexfmt"
	"github.com/specialistvlad/hexdump/internal/reader"
)

// Run reads the configured file and writes its dump. The whole input is read
// before formatting starts, so a read failure never leaves partial output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "path", a.config.FilePath)

	data, err := reader.ReadFile(ctx, a.config.FilePath, a.config.Limit)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if err := hexfmt.Write(a.outW, data); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.", "bytes", len(data), "lines", (len(data)+hexfmt.BytesPerLine-1)/hexfmt.BytesPerLine)
	return nil
}
