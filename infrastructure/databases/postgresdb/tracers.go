package postgresdb

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
)

// LoggingQueryTracer logs every query with its arguments at debug level.
type LoggingQueryTracer struct {
	logger *slog.Logger
}

func NewLoggingQueryTracer(logger *slog.Logger) *LoggingQueryTracer {
	return &LoggingQueryTracer{logger: logger}
}

func (l *LoggingQueryTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	l.logger.DebugContext(ctx, "query start", "sql", prettyPrintSQL(data.SQL), "args", data.Args)
	return ctx
}

func (l *LoggingQueryTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	if data.Err != nil {
		l.logger.DebugContext(ctx, "query end", "err", data.Err)
		return
	}
	l.logger.DebugContext(ctx, "query end", "rows", data.CommandTag.RowsAffected())
}

var (
	replaceTabs   = regexp.MustCompile(`\t+`)
	replaceSpaces = regexp.MustCompile(`\s+`)
)

// prettyPrintSQL collapses a multi-line query into one log-friendly line.
func prettyPrintSQL(sql string) string {
	pretty := strings.Join(strings.Split(sql, "\n"), " ")
	pretty = replaceTabs.ReplaceAllString(pretty, " ")
	pretty = replaceSpaces.ReplaceAllString(pretty, " ")
	return strings.TrimSpace(pretty)
}
