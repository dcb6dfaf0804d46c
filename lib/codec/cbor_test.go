// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package codec_test

import (
	"bytes"
	"testing"

	"github.com/foryouflowerai/eticketer/lib/codec"
)

type wireRecord struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestMarshalRoundtrip(t *testing.T) {
	want := wireRecord{ID: 3, Name: "Expo", Price: 24.5}

	data, err := codec.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got wireRecord
	if err := codec.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != want {
		t.Errorf("roundtrip: got %+v, want %+v", got, want)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	// Map iteration order is randomized in Go; deterministic encoding
	// must produce identical bytes anyway.
	value := map[string]any{
		"zulu":  1,
		"alpha": 2,
		"mike":  3,
	}

	first, err := codec.Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := codec.Marshal(value)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("encoding differs between runs:\n%x\n%x", first, again)
		}
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	data, err := codec.Marshal(map[string]any{
		"id":      uint64(9),
		"name":    "Gala",
		"price":   10.0,
		"comment": "not a wireRecord field",
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got wireRecord
	if err := codec.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.ID != 9 || got.Name != "Gala" {
		t.Errorf("got %+v", got)
	}
}

func TestDecoderDefaultMapType(t *testing.T) {
	data, err := codec.Marshal(map[string]any{"outer": map[string]any{"inner": 1}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got any
	if err := codec.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	outer, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("decoded type: got %T, want map[string]any", got)
	}
	if _, ok := outer["outer"].(map[string]any); !ok {
		t.Fatalf("nested type: got %T, want map[string]any", outer["outer"])
	}
}

func TestStreamEncoderDecoder(t *testing.T) {
	var buf bytes.Buffer
	enc := codec.NewEncoder(&buf)
	records := []wireRecord{
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b"},
	}
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	dec := codec.NewDecoder(&buf)
	for i, want := range records {
		var got wireRecord
		if err := dec.Decode(&got); err != nil {
			t.Fatalf("Decode %d: %v", i, err)
		}
		if got != want {
			t.Errorf("record %d: got %+v, want %+v", i, got, want)
		}
	}
}
