// Package resolver matches extracted candidates against existing records:
// counterparties by VAT number or name, invoices by number or composite
// near-match.
package resolver

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/nexonbooks/docintake/internal/entity"
	"github.com/nexonbooks/docintake/internal/extract"
)

// Match is the result of a counterparty lookup. ID is nil when no
// existing record matched; Confidence then reflects the candidate's own
// extraction confidence, which gates auto-commit downstream.
type Match struct {
	ID         *uuid.UUID
	Confidence float64
}

// CounterpartyResolver matches a candidate against a workspace's
// existing customers. It never creates records itself; creation is the
// pipeline's call when no match is found.
type CounterpartyResolver struct {
	logger *slog.Logger
}

func NewCounterpartyResolver(logger *slog.Logger) *CounterpartyResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &CounterpartyResolver{logger: logger}
}

// Resolve scans existing counterparties for the candidate. A VAT-number
// hit (format-insensitive) short-circuits with the candidate's
// confidence unchanged. Otherwise names are compared with a
// case-insensitive bidirectional substring test; the first hit wins.
// Multiple substring hits have no tie-break rule, so record order
// decides. That ambiguity is inherited behavior; callers relying on it
// should pass records in a stable order.
func (r *CounterpartyResolver) Resolve(cand extract.CounterpartyCandidate, existing []entity.Customer) Match {
	if vat := extract.NormalizeVATNumber(cand.VATNumber); vat != "" {
		for i := range existing {
			if extract.NormalizeVATNumber(existing[i].VATNumber) == vat {
				r.logger.Debug("resolve.vat_match", "customer_id", existing[i].ID, "vat", vat)
				return Match{ID: &existing[i].ID, Confidence: cand.MatchConfidence}
			}
		}
	}

	if name := strings.ToLower(strings.TrimSpace(cand.Name)); name != "" {
		for i := range existing {
			have := strings.ToLower(strings.TrimSpace(existing[i].Name))
			if have == "" {
				continue
			}
			if strings.Contains(have, name) || strings.Contains(name, have) {
				r.logger.Debug("resolve.name_match", "customer_id", existing[i].ID, "name", existing[i].Name)
				return Match{ID: &existing[i].ID, Confidence: cand.MatchConfidence}
			}
		}
	}

	return Match{Confidence: cand.MatchConfidence}
}
