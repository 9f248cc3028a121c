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

package disco

import (
	"context"

	"github.com/chatforge/mucext/extinfo"
	"github.com/chatforge/mucext/internal/logctx"
	"github.com/chatforge/mucext/xdata"
)

// FormSource supplies the stored extension forms for a room. A nil result
// means no forms are stored for the room; lookup failures surface the same
// way, so a source never fails a discovery response.
type FormSource interface {
	RetrieveFormsForRoom(ctx context.Context, room string) []extinfo.ExtDataForm
}

// Enricher is an InfoProvider that delegates to another provider and merges
// stored extension forms into the delegate's extended info. Identity,
// feature, and presence-of-info queries pass through unchanged.
//
// The integration layer installs an Enricher in place of the provider it
// wraps, and can restore the original via Delegate.
type Enricher struct {
	delegate      InfoProvider
	source        FormSource
	serviceDomain string
}

// NewEnricher wraps delegate, sourcing extension forms for rooms on the
// given chat service domain.
func NewEnricher(delegate InfoProvider, source FormSource, serviceDomain string) *Enricher {
	return &Enricher{
		delegate:      delegate,
		source:        source,
		serviceDomain: serviceDomain,
	}
}

// Delegate returns the wrapped provider, so an integration layer can put the
// original back when the extension is unloaded.
func (e *Enricher) Delegate() InfoProvider {
	return e.delegate
}

func (e *Enricher) Identities(ctx context.Context, name, node, sender string) []Identity {
	return e.delegate.Identities(ctx, name, node, sender)
}

func (e *Enricher) Features(ctx context.Context, name, node, sender string) []string {
	return e.delegate.Features(ctx, name, node, sender)
}

func (e *Enricher) HasInfo(ctx context.Context, name, node, sender string) bool {
	return e.delegate.HasInfo(ctx, name, node, sender)
}

// ExtendedInfos returns the delegate's data forms with every stored
// extension form for the queried room merged in.
func (e *Enricher) ExtendedInfos(ctx context.Context, name, node, sender string) []*xdata.DataForm {
	ll := logctx.FromContext(ctx)
	ll.Debug("getting extended info",
		"name", name, "node", node, "sender", sender)

	result := e.delegate.ExtendedInfos(ctx, name, node, sender)

	room := extinfo.RoomAddress(name, e.serviceDomain)
	forms := e.source.RetrieveFormsForRoom(ctx, room)
	ll.Debug("retrieved stored extension forms",
		"room", room, "delegateForms", len(result), "storedForms", len(forms))

	for i := range forms {
		result = Merge(result, &forms[i])
	}
	return result
}

// ExtendedInfo returns the first form of ExtendedInfos, or nil when there
// are none.
func (e *Enricher) ExtendedInfo(ctx context.Context, name, node, sender string) *xdata.DataForm {
	forms := e.ExtendedInfos(ctx, name, node, sender)
	if len(forms) == 0 {
		return nil
	}
	return forms[0]
}
