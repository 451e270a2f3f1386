package dictionary

import (
	"context"
	"testing"

	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/provider"
	"github.com/pkg/errors"
)

func TestStrongNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"H7225", "H7225", true},
		{"g26", "G26", true},
		{" h1 ", "H1", true},
		{"G12345", "", false},
		{"X12", "", false},
		{"H", "", false},
		{"love", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseStrongNumber(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseStrongNumber(%q) = %q, %v", tt.in, got, ok)
		}
		if IsStrongNumber(tt.in) != tt.ok {
			t.Errorf("IsStrongNumber(%q) = %v", tt.in, !tt.ok)
		}
	}
}

type fakeSource struct {
	dict, term string
	defs       []model.Definition
	err        error
}

func (f *fakeSource) Define(ctx context.Context, dict, term string) ([]model.Definition, error) {
	f.dict, f.term = dict, term
	return f.defs, f.err
}

func TestLookup(t *testing.T) {
	src := &fakeSource{defs: []model.Definition{{Topic: "G26", Lexeme: "ἀγάπη", ShortDefinition: "love"}}}
	s := NewService(src, provider.NewMonitor(true), "BDBT")

	defs := s.Lookup(context.Background(), "g26", "")
	if len(defs) != 1 || defs[0].ShortDefinition != "love" {
		t.Fatalf("defs = %+v", defs)
	}
	if src.dict != "BDBT" || src.term != "G26" {
		t.Errorf("request went to %s/%s", src.dict, src.term)
	}

	s.Lookup(context.Background(), "grace", "RUSD")
	if src.dict != "RUSD" || src.term != "grace" {
		t.Errorf("request went to %s/%s", src.dict, src.term)
	}
}

func TestLookupFailSoft(t *testing.T) {
	failing := NewService(&fakeSource{err: errors.New("down")}, provider.NewMonitor(true), "BDBT")
	if defs := failing.Lookup(context.Background(), "H1", ""); defs == nil || len(defs) != 0 {
		t.Fatalf("defs = %v", defs)
	}

	src := &fakeSource{}
	offline := NewService(src, provider.NewMonitor(false), "BDBT")
	if defs := offline.Lookup(context.Background(), "H1", ""); len(defs) != 0 || src.term != "" {
		t.Fatalf("offline lookup should not reach the source")
	}
}
