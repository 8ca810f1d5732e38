package core

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitParams(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"nil", nil, nil},
		{"single", []string{"Clinique"}, []string{"Clinique"}},
		{"comma separated", []string{"Clinique, Prada"}, []string{"Clinique", "Prada"}},
		{"repeated and mixed", []string{"a,b", "c"}, []string{"a", "b", "c"}},
		{"blanks dropped", []string{" , ", ""}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitParams(tt.values); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitParams(%q) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestService_ResolveFields(t *testing.T) {
	svc := NewService(staticSource{}, ServiceConfig{})
	fallback := []string{"Id"}

	got, err := svc.ResolveFields("std", []string{"Price"}, fallback)
	if err != nil || !reflect.DeepEqual(got, []string{"Price"}) {
		t.Errorf("explicit fields: got %v, %v", got, err)
	}

	got, err = svc.ResolveFields("std", nil, fallback)
	if err != nil || len(got) != 7 || got[0] != "Id" || got[6] != "Image" {
		t.Errorf("profile fields: got %v, %v", got, err)
	}

	got, err = svc.ResolveFields("", nil, fallback)
	if err != nil || !reflect.DeepEqual(got, fallback) {
		t.Errorf("fallback fields: got %v, %v", got, err)
	}

	if _, err := svc.ResolveFields("nope", nil, fallback); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("unknown profile err = %v, want ErrProfileNotFound", err)
	}
}
