// Package worker drains the mirror queue into the spreadsheet backend.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"warsha/internal/amqp"
	"warsha/internal/sheets"
)

type MirrorWorker struct {
	appender sheets.Appender
}

func NewMirrorWorker(appender sheets.Appender) *MirrorWorker {
	return &MirrorWorker{appender: appender}
}

// HandleMirrorMessage appends one queued record to its target sheet.
// Returning an error requeues the message.
func (w *MirrorWorker) HandleMirrorMessage(ctx context.Context, msg *amqp.MirrorMessage) error {
	if w.appender == nil {
		slog.WarnContext(ctx, "No appender configured, dropping mirror message", "target", msg.Target)
		return nil
	}

	if err := w.appender.Append(ctx, msg.Target, msg.Record); err != nil {
		return fmt.Errorf("append to %q: %w", msg.Target, err)
	}

	slog.InfoContext(ctx, "Mirrored record",
		"target", msg.Target,
		"queued_at", msg.Timestamp)
	return nil
}
