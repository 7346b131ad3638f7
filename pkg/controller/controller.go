/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package controller

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/scoir/canis-exchange/pkg/framework"
)

const (
	APIKeyHeaderName = "X-API-Key"
)

var logger = logrus.WithField("module", "controller")

// ShutdownTimeout bounds how long in flight admin requests may take once Launch's context is done.
var ShutdownTimeout = 10 * time.Second

type AgentController interface {
	http.Handler
}

type Runner struct {
	ac       AgentController
	host     string
	port     int
	apiToken string
}

type provider interface {
	APIEndpoint() (*framework.Endpoint, error)
}

func New(ctx provider, ac AgentController) (*Runner, error) {
	ep, err := ctx.APIEndpoint()
	if err != nil {
		return nil, errors.Wrap(err, "unable to create controller")
	}

	r := &Runner{
		ac:       ac,
		host:     ep.Host,
		port:     ep.Port,
		apiToken: ep.Token,
	}

	return r, nil
}

// Handler is the controller wrapped in CORS and, when a token is configured, API key checks.
func (r *Runner) Handler() http.Handler {
	var h http.Handler = r.ac
	if r.apiToken != "" {
		h = r.basicTokenAuth(h)
	}

	return CorsHandler()(h)
}

// Launch serves the admin API until ctx is done.
func (r *Runner) Launch(ctx context.Context) error {
	ep := framework.Endpoint{Host: r.host, Port: r.port}
	srv := &http.Server{
		Addr:    ep.Address(),
		Handler: r.Handler(),
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	logger.WithField("address", srv.Addr).Info("admin API listening")
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}

	return err
}

func (r *Runner) basicTokenAuth(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		authHeader := req.Header.Get(APIKeyHeaderName)
		if authHeader == "" {
			http.Error(w, "Not authorized", http.StatusUnauthorized)
			return
		}

		givenToken := sha256.Sum256([]byte(authHeader))
		requiredToken := sha256.Sum256([]byte(r.apiToken))

		if subtle.ConstantTimeCompare(givenToken[:], requiredToken[:]) != 1 {
			http.Error(w, "Not authorized", http.StatusUnauthorized)
			return
		}

		h.ServeHTTP(w, req)
	}
}

func CorsHandler() func(h http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Authentication", "Authorization", "Accept",
			"If-Modified-Since", "Cache-Control", "Pragma", APIKeyHeaderName},
		ExposedHeaders:   []string{"Content-Length", "Content-Type", "Cache-Control", "Last-Modified"},
		AllowCredentials: true,
	})
	return c.Handler
}
