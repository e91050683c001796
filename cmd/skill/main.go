package main

import (
	"flag"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bitbucket.org/sotavant/greetings-skill/internal/logger"
	"bitbucket.org/sotavant/greetings-skill/internal/quote"
	"bitbucket.org/sotavant/greetings-skill/internal/skill"
)

func main() {
	if err := parseFlags(flag.CommandLine, os.Args[1:]); err != nil {
		panic(err)
	}
	if err := run(); err != nil {
		panic(err)
	}
}

func gzipMiddleware(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ow := w

		acceptEncoding := r.Header.Get("Accept-Encoding")
		supportGzip := strings.Contains(acceptEncoding, "gzip")

		if supportGzip {
			cw := newCompressWriter(w)
			ow = cw
			defer func(cw *compressWriter) {
				if err := cw.Close(); err != nil {
					logger.Log.Debug("compressWriterError", zap.Error(err))
				}
			}(cw)
		}

		contentEncoding := r.Header.Get("Content-Encoding")

		sendsGzip := strings.Contains(contentEncoding, "gzip")
		if sendsGzip {
			cr, err := newCompressReader(r.Body)
			if err != nil {
				logger.Log.Debug("newCompressReaderError", zap.Error(err))
				ow.WriteHeader(http.StatusBadRequest)
				return
			}
			r.Body = cr
			defer func(cr *compressReader) {
				if err := cr.Close(); err != nil {
					logger.Log.Debug("closeCompressReaderError", zap.Error(err))
				}
			}(cr)
		}

		h.ServeHTTP(ow, r)
	}
}

func newRouter(a *app) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", gzipMiddleware(a.webhook))
	return logger.RequestLogger(mux)
}

func run() error {
	if err := logger.Initialize(flagLogLevel); err != nil {
		return err
	}
	defer logger.Log.Sync()

	quotes := quote.NewClient(flagQuoteURL, quote.WithLogger(logger.Log))
	d := skill.NewDispatcher(quotes, logger.Log, skill.WithImageURL(flagImageURL))

	logger.Log.Info("Running server",
		zap.String("address", flagRunAddr),
		zap.String("quote_url", flagQuoteURL),
		zap.Bool("debug", flagDebug),
	)

	return http.ListenAndServe(flagRunAddr, newRouter(newApp(d)))
}
