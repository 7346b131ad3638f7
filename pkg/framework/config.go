/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package framework

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

type Endpoint struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Token    string `mapstructure:"token"`
}

func (r Endpoint) Address() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type AMQPConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	VHost    string `mapstructure:"vhost"`
}

func (r *AMQPConfig) Endpoint() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/%s", r.User, r.Password, r.Host, r.Port, r.VHost)
}

// AgentConfig describes who the agent is and whom it already knows.
type AgentConfig struct {
	EndpointDID     string          `mapstructure:"endpointDID"`
	EndpointSeed    string          `mapstructure:"endpointSeed"`
	AutoAccept      bool            `mapstructure:"autoAccept"`
	PendingTTL      time.Duration   `mapstructure:"pendingTTL"`
	JanitorInterval time.Duration   `mapstructure:"janitorInterval"`
	Relationships   []*Relationship `mapstructure:"relationships"`
	Webhooks        []*Webhook      `mapstructure:"webhooks"`
}

// Relationship is a pairwise connection established out of band.
type Relationship struct {
	TheirDID            string `mapstructure:"theirDID"`
	TheirVerKey         string `mapstructure:"theirVerKey"`
	TheirEndpointDID    string `mapstructure:"theirEndpointDID"`
	TheirEndpointVerKey string `mapstructure:"theirEndpointVerKey"`
	MyDID               string `mapstructure:"myDID"`
	MySeed              string `mapstructure:"mySeed"`
}

// Webhook receives the events published on Topic.
type Webhook struct {
	Topic string `mapstructure:"topic"`
	URL   string `mapstructure:"url"`
}

func (r *AgentConfig) Validate() error {
	if r.EndpointDID == "" {
		return errors.New("agent endpointDID is required")
	}

	for i, rel := range r.Relationships {
		if rel.TheirDID == "" || rel.MyDID == "" || rel.TheirEndpointDID == "" {
			return errors.Errorf("relationship %d needs theirDID, myDID and theirEndpointDID", i)
		}
	}

	for i, hook := range r.Webhooks {
		if hook.Topic == "" || hook.URL == "" {
			return errors.Errorf("webhook %d needs topic and url", i)
		}
	}

	return nil
}
