package main

import (
	"bytes"
	"encoding/binary"
	"errors"

	"pifp_protocol/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount handling consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress canonicalizes the address before writing, so later parsing is easyer.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(AddressToString(a))
}

// writeAsset just dumps the ticker string, nothing fancy but consistent.
func (w *binWriter) writeAsset(a sdk.Asset) {
	w.writeString(AssetToString(a))
}

// EncodeProjectConfig packs the immutable project record into deterministic bytes.
// Example payload: EncodeProjectConfig(&ProjectConfig{ID: 1, Goal: 1000})
func EncodeProjectConfig(cfg *ProjectConfig) []byte {
	w := newWriter()
	w.writeUint64(cfg.ID)
	w.writeAddress(cfg.Creator)
	w.writeVarUint(uint64(len(cfg.AcceptedTokens)))
	for _, t := range cfg.AcceptedTokens {
		w.writeAsset(t)
	}
	w.writeAmount(cfg.Goal)
	w.writeString(cfg.ProofHash)
	w.writeInt64(cfg.Deadline)
	return w.bytes()
}

// EncodeProjectState packs the small mutable record so hot paths rewrite few bytes.
// Example payload: EncodeProjectState(&ProjectState{Status: StatusActive, DonationCount: 3})
func EncodeProjectState(state *ProjectState) []byte {
	w := newWriter()
	w.buf.WriteByte(byte(state.Status))
	w.writeVarUint(state.DonationCount)
	return w.bytes()
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor, errors on EOF.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readUint64 decodes big endian integers for ids and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readAmount rebuilds a Amount using the int64 path so handling stays synced.
func (r *binReader) readAmount() (Amount, error) {
	val, err := r.readInt64()
	if err != nil {
		return 0, err
	}
	return Amount(val), nil
}

// readString reads the varint length then slices out the utf8 chunk.
func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *binReader) readAsset() (sdk.Asset, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.Asset(""), err
	}
	return AssetFromString(s), nil
}

// DecodeProjectConfig reverses EncodeProjectConfig, exact field order.
// Example payload: DecodeProjectConfig(EncodeProjectConfig(&ProjectConfig{ID: 1}))
func DecodeProjectConfig(data []byte) (*ProjectConfig, error) {
	r := newReader(data)
	cfg := &ProjectConfig{}
	var err error
	if cfg.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	creator, err := r.readString()
	if err != nil {
		return nil, err
	}
	cfg.Creator = AddressFromString(creator)
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	cfg.AcceptedTokens = make([]sdk.Asset, 0, count)
	for i := uint64(0); i < count; i++ {
		asset, err := r.readAsset()
		if err != nil {
			return nil, err
		}
		cfg.AcceptedTokens = append(cfg.AcceptedTokens, asset)
	}
	if cfg.Goal, err = r.readAmount(); err != nil {
		return nil, err
	}
	if cfg.ProofHash, err = r.readString(); err != nil {
		return nil, err
	}
	if cfg.Deadline, err = r.readInt64(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeProjectState rebuilds the mutable record written by EncodeProjectState.
// Example payload: DecodeProjectState(EncodeProjectState(&ProjectState{Status: StatusFunding}))
func DecodeProjectState(data []byte) (*ProjectState, error) {
	r := newReader(data)
	state := &ProjectState{}
	statusByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	state.Status = ProjectStatus(statusByte)
	if state.DonationCount, err = r.readVarUint(); err != nil {
		return nil, err
	}
	return state, nil
}
