package encoder

import (
	"github.com/chaisql/kjson/types"
	"go.uber.org/zap"
)

// lookup returns the symbols of the named domain.
// Each domain is resolved once, failures included.
func (e *Encoder) lookup(name string) ([]types.Symbol, bool) {
	if r, ok := e.domains[name]; ok {
		return r.syms, r.ok
	}

	var r resolved
	if e.opts.Domains == nil {
		e.opts.Logger.Debug("no symbol domain resolver", zap.String("domain", name))
	} else {
		syms, err := e.opts.Domains.Lookup(name)
		if err != nil {
			e.opts.Logger.Debug("cannot resolve symbol domain", zap.String("domain", name), zap.Error(err))
		} else {
			r = resolved{syms: syms, ok: true}
		}
	}

	e.domains[name] = r
	return r.syms, r.ok
}

// enumerated writes the symbol at index x of syms, or null if x
// is a sentinel or falls outside of the domain.
func (e *Encoder) enumerated(syms []types.Symbol, x types.Enum) {
	if x < 0 || x == types.InfEnum || x >= types.Enum(len(syms)) {
		e.w.Null()
		return
	}

	e.w.String(string(syms[x]))
}

func (e *Encoder) enumAtom(a types.EnumAtom) {
	syms, ok := e.lookup(a.DomainName())
	if !ok {
		e.w.Null()
		return
	}

	e.enumerated(syms, a.Index)
}

// an enumeration whose domain cannot be resolved is written as a single null.
func (e *Encoder) enumVector(v types.EnumVector, sel Selector) {
	syms, ok := e.lookup(v.DomainName())
	if !ok {
		e.w.Null()
		return
	}

	if i, ok := sel.Row(); ok {
		e.enumerated(syms, v.Indices[i])
		return
	}

	e.w.StartArray()
	for _, x := range v.Indices {
		e.enumerated(syms, x)
	}
	e.w.EndArray()
}
