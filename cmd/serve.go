package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/worksheetz/internal/server"
)

const sentryFlushTimeout = 2 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the worksheet API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd, runtimeOptions{})
		if err != nil {
			return err
		}
		defer rt.Close()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			rt.cfg.Server.Addr = addr
		}

		if rt.cfg.Sentry.DSN != "" {
			if err := sentry.Init(sentry.ClientOptions{
				Dsn:              rt.cfg.Sentry.DSN,
				Environment:      rt.cfg.Env,
				Release:          "worksheetz@" + buildVersion(),
				EnableTracing:    true,
				TracesSampleRate: rt.cfg.Sentry.TracesSampleRate,
				Debug:            !rt.cfg.Production(),
				BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
					if event.Request != nil {
						event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
					}
					return event
				},
			}); err != nil {
				rt.log.Warn("failed to initialize sentry", zap.Error(err))
			} else {
				rt.log.Info("sentry initialized", zap.String("environment", rt.cfg.Env))
				defer sentry.Flush(sentryFlushTimeout)
			}
		}

		if rt.cfg.Production() {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(rt.cfg.Server, rt.dispatcher, rt.log, buildVersion())
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string, len(headers))
	sensitive := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"x-api-key":     true,
	}
	for k, v := range headers {
		if sensitive[strings.ToLower(k)] {
			filtered[k] = "[REDACTED]"
		} else {
			filtered[k] = v
		}
	}
	return filtered
}

// commandContext returns cmd's context, or Background when run outside
// Execute (tests).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
