/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package transport moves protocol messages between agents: authcrypt for the pairwise layer, anoncrypt
// to the recipient's endpoint, and a loopback for messages an agent sends to itself.
package transport

import (
	"context"

	"github.com/scoir/canis-exchange/pkg/schema"
)

// SelfDID addresses the agent itself.
const SelfDID = "_self_"

//go:generate mockery -name=Messenger
type Messenger interface {
	Authcrypt(ctx context.Context, myDID, theirDID string, typ schema.MessageType, payload schema.Payload) (*schema.Envelope, error)
	AuthDecrypt(ctx context.Context, myDID string, env *schema.Envelope, out schema.Payload) error
	SendAnoncrypted(ctx context.Context, endpointDID string, env *schema.Envelope) error
}

// Outbound delivers sealed bytes to an endpoint DID.
//go:generate mockery -name=Outbound
type Outbound interface {
	Deliver(ctx context.Context, endpointDID string, msg []byte) error
}

// Handler receives envelopes once the anoncrypt layer is removed.
//go:generate mockery -name=Handler
type Handler interface {
	Handle(ctx context.Context, env *schema.Envelope) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, env *schema.Envelope) error

func (f HandlerFunc) Handle(ctx context.Context, env *schema.Envelope) error {
	return f(ctx, env)
}
