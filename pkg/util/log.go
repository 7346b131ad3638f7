/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is a backoff.Notify that logs each failed attempt.
func Logger(err error, next time.Duration) {
	logrus.WithError(err).WithField("retry_in", next.String()).Warn("operation failed, retrying")
}

// Trace logs artifact as JSON at debug level under msg.
func Trace(log *logrus.Entry, msg string, artifact interface{}) {
	if !log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	d, err := json.Marshal(artifact)
	if err != nil {
		log.WithError(err).Debug(msg)
		return
	}

	log.WithField("artifact", string(d)).Debug(msg)
}
