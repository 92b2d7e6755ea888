// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package export

import (
	"errors"

	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2), so equal arenas
// encode to identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("export: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("export: CBOR decoder initialization failed: " + err.Error())
	}
}

// wireArena is the encoded form of an Arena.
type wireArena struct {
	Nodes []Node `cbor:"1,keyasint"`
	Pairs []Pair `cbor:"2,keyasint,omitempty"`
	Text  []byte `cbor:"3,keyasint,omitempty"`
	Error string `cbor:"4,keyasint,omitempty"`
}

// MarshalCBOR encodes a as a CBOR map using Core Deterministic Encoding. If
// the root of a has TagError, the text of the error is included.
func (a *Arena) MarshalCBOR() ([]byte, error) {
	a.checkLive()
	w := wireArena{Nodes: a.Nodes, Pairs: a.Pairs, Text: a.Text}
	if a.err != nil {
		w.Error = a.err.Error()
	}
	return encMode.Marshal(w)
}

// UnmarshalArena decodes an arena from data in the format written by
// MarshalCBOR. The result is checked for consistency with Import.
func UnmarshalArena(data []byte) (*Arena, error) {
	var w wireArena
	if err := decMode.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	if len(w.Nodes) == 0 {
		return nil, errors.New("export: arena has no root")
	}
	a := &Arena{Nodes: w.Nodes, Pairs: w.Pairs, Text: w.Text}
	if w.Error != "" {
		a.err = errors.New(w.Error)
	}
	if a.Nodes[0].Tag != TagError {
		if _, err := a.Import(); err != nil {
			return nil, err
		}
	}
	return a, nil
}
