// Copyright (C) 2025 Chatforge, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package disco enriches service discovery responses for chat rooms with
// operator-defined extension forms, as described in XEP-0128.
package disco

import (
	"context"

	"github.com/chatforge/mucext/xdata"
)

// Identity is one identity element of a discovery response.
type Identity struct {
	Category string
	Type     string
	Name     string
}

// InfoProvider supplies service discovery information for an entity,
// identified by name, node, and the address of the requesting sender. This
// mirrors the host server's discovery provider capability; an Enricher both
// consumes and implements it so it can stand in for the provider it wraps.
type InfoProvider interface {
	Identities(ctx context.Context, name, node, sender string) []Identity
	Features(ctx context.Context, name, node, sender string) []string
	ExtendedInfos(ctx context.Context, name, node, sender string) []*xdata.DataForm
	HasInfo(ctx context.Context, name, node, sender string) bool
}
